package service

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/d-chambers/prolix/internal/models"
	"github.com/samber/lo"
	"go.uber.org/zap"
)

// QuizS builds multiple-choice questions and runs quiz sessions.
type QuizS struct {
	words WordStoreI
	repo  UserRI
	log   *zap.Logger
}

func NewQuizService(words WordStoreI, repo UserRI, log *zap.Logger) *QuizS {
	return &QuizS{
		words: words,
		repo:  repo,
		log:   log,
	}
}

// BuildQuiz assembles a question for the given word. Decoys are sampled
// without replacement from the store minus the true entry, then the true
// choice is inserted at a uniformly random position. The choice list never
// holds duplicates; when the store has fewer distinct candidates than
// choiceCount the list simply comes out shorter, with the true choice
// still present.
func (q *QuizS) BuildQuiz(ctx context.Context, word string, choiceCount int, dir models.Direction) (models.WordQuiz, error) {
	if choiceCount < 1 {
		return models.WordQuiz{}, fmt.Errorf("choice count must be at least 1, got %d", choiceCount)
	}

	entries, err := q.words.All(ctx)
	if err != nil {
		return models.WordQuiz{}, err
	}

	target, found := lo.Find(entries, func(e models.WordEntry) bool { return e.Word == word })
	if !found {
		return models.WordQuiz{}, fmt.Errorf("%q: %w", word, models.ErrWordNotFound)
	}

	trueChoice := choiceText(target, dir)

	pool := lo.FilterMap(entries, func(e models.WordEntry, _ int) (string, bool) {
		text := choiceText(e, dir)
		return text, e.Word != target.Word && text != trueChoice
	})
	pool = lo.Uniq(pool)
	rand.Shuffle(len(pool), func(i, j int) { pool[i], pool[j] = pool[j], pool[i] })

	if len(pool) > choiceCount-1 {
		pool = pool[:choiceCount-1]
	}

	correct := rand.Intn(len(pool) + 1)
	choices := make([]string, 0, len(pool)+1)
	choices = append(choices, pool[:correct]...)
	choices = append(choices, trueChoice)
	choices = append(choices, pool[correct:]...)

	return models.WordQuiz{
		Word:       target.Word,
		Definition: target.Definition,
		Direction:  dir,
		Choices:    choices,
		Correct:    correct,
	}, nil
}

// RandomQuiz builds a question for a uniformly sampled word.
func (q *QuizS) RandomQuiz(ctx context.Context, choiceCount int, dir models.Direction) (models.WordQuiz, error) {
	entry, err := q.words.Random(ctx)
	if err != nil {
		return models.WordQuiz{}, err
	}
	return q.BuildQuiz(ctx, entry.Word, choiceCount, dir)
}

func choiceText(entry models.WordEntry, dir models.Direction) string {
	if dir == models.DefinitionToWord {
		return entry.Word
	}
	return entry.Definition.String()
}
