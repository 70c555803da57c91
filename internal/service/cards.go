package service

import (
	"context"
	"math/rand"

	"github.com/d-chambers/prolix/internal/models"
	"github.com/samber/lo"
	"go.uber.org/zap"
)

// CardsS runs flip-style flashcard sessions.
type CardsS struct {
	words WordStoreI
	repo  UserRI
	log   *zap.Logger
}

func NewCardsService(words WordStoreI, repo UserRI, log *zap.Logger) *CardsS {
	return &CardsS{
		words: words,
		repo:  repo,
		log:   log,
	}
}

// CardSession holds the live deck. Keeping a card leaves the deck alone,
// so a kept word can come up again; discarding removes the word for good,
// both from the deck and, when a user is set, from future sessions.
type CardSession struct {
	svc  *CardsS
	user string
	side models.Side

	deck []models.WordEntry
	card *models.Card
	done bool
}

// StartCardSession deals a deck of every stored word minus the user's
// previously discarded ones and draws the first card.
func (c *CardsS) StartCardSession(ctx context.Context, side models.Side, user string) (*CardSession, error) {
	entries, err := c.words.All(ctx)
	if err != nil {
		return nil, err
	}

	if user != "" {
		discarded, err := c.repo.DiscardedWords(ctx, user)
		if err != nil {
			return nil, err
		}
		gone := lo.SliceToMap(discarded, func(w string) (string, struct{}) { return w, struct{}{} })
		entries = lo.Filter(entries, func(e models.WordEntry, _ int) bool {
			_, hit := gone[e.Word]
			return !hit
		})
	}

	s := &CardSession{
		svc:  c,
		user: user,
		side: side,
		deck: entries,
	}
	s.draw()
	return s, nil
}

// Keep draws the next card without touching the deck.
func (s *CardSession) Keep(ctx context.Context) error {
	if s.done {
		return models.ErrSessionDone
	}
	s.draw()
	return nil
}

// Discard removes the current card's word from the deck permanently and,
// when a user is set, persists the discard so the word stays gone in
// later sessions. Then the next card is drawn.
func (s *CardSession) Discard(ctx context.Context) error {
	if s.done {
		return models.ErrSessionDone
	}

	word := s.card.Word
	s.deck = lo.Reject(s.deck, func(e models.WordEntry, _ int) bool { return e.Word == word })

	if s.user != "" {
		if err := s.svc.repo.DiscardWord(ctx, s.user, word); err != nil {
			s.svc.log.Warn("failed to persist discard",
				zap.String("user", s.user), zap.String("word", word), zap.Error(err))
		}
	}

	s.draw()
	return nil
}

// Flip turns the current card over. The new side becomes the preferred
// starting side for cards drawn afterwards.
func (s *CardSession) Flip() {
	if s.done {
		return
	}
	s.card.Flip()
	s.side = s.card.Side
}

func (s *CardSession) Card() *models.Card { return s.card }
func (s *CardSession) Remaining() int     { return len(s.deck) }
func (s *CardSession) Done() bool         { return s.done }

func (s *CardSession) draw() {
	if len(s.deck) == 0 {
		s.card = nil
		s.done = true
		return
	}
	entry := s.deck[rand.Intn(len(s.deck))]
	s.card = models.NewCard(entry)
	if s.side == models.SideDefinition {
		s.card.Flip()
	}
}
