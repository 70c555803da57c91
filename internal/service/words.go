package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/d-chambers/prolix/internal/models"
	"github.com/samber/lo"
	"go.uber.org/zap"
)

// WordS covers the word list: ingestion of new words through the
// dictionary clients, listing, and the per-user scoreboard.
type WordS struct {
	dictionary DictionaryAPII
	speller    SpellerAPII
	words      WordStoreI
	repo       UserRI
	log        *zap.Logger
}

func NewWordService(api APII, words WordStoreI, repo UserRI, log *zap.Logger) *WordS {
	return &WordS{
		dictionary: api,
		speller:    api,
		words:      words,
		repo:       repo,
		log:        log,
	}
}

// AddWords spell-checks the candidates, fetches definitions for the ones
// not already stored, and appends them to the word store. Words the
// dictionary cannot define are skipped, not fatal. The added words are
// returned in the order they were accepted.
func (w *WordS) AddWords(ctx context.Context, raw []string) ([]string, error) {
	existing, err := w.words.All(ctx)
	if err != nil {
		return nil, err
	}
	known := lo.SliceToMap(existing, func(e models.WordEntry) (string, struct{}) {
		return e.Word, struct{}{}
	})

	var (
		entries []models.WordEntry
		added   []string
	)
	for _, candidate := range raw {
		word := strings.ToLower(strings.TrimSpace(candidate))
		if word == "" {
			continue
		}

		corrected, err := w.speller.Suggest(ctx, word)
		if err != nil {
			w.log.Warn("spell check failed, keeping word as given",
				zap.String("word", word), zap.Error(err))
		} else if corrected != "" && corrected != word {
			w.log.Warn("word not recognized, correcting",
				zap.String("word", word), zap.String("corrected", corrected))
			word = corrected
		}

		if _, dup := known[word]; dup {
			continue
		}

		def, err := w.dictionary.Define(ctx, word)
		if err != nil {
			w.log.Warn("failed to fetch definition, skipping word",
				zap.String("word", word), zap.Error(err))
			continue
		}
		if def.Empty() {
			w.log.Warn("dictionary returned no senses, skipping word",
				zap.String("word", word))
			continue
		}

		known[word] = struct{}{}
		entries = append(entries, models.WordEntry{Word: word, Definition: def})
		added = append(added, word)
	}

	if len(entries) == 0 {
		return nil, nil
	}
	if _, err := w.words.Append(ctx, entries); err != nil {
		return nil, fmt.Errorf("failed to store new words: %w", err)
	}
	return added, nil
}

// List returns every stored word entry, sorted by word.
func (w *WordS) List(ctx context.Context) ([]models.WordEntry, error) {
	return w.words.All(ctx)
}

// Scoreboard maps every stored word to the user's (right, wrong) counters,
// defaulting to (0, 0) for words the user never answered.
func (w *WordS) Scoreboard(ctx context.Context, user string) (map[string]models.WordScore, error) {
	entries, err := w.words.All(ctx)
	if err != nil {
		return nil, err
	}

	board := lo.SliceToMap(entries, func(e models.WordEntry) (string, models.WordScore) {
		return e.Word, models.WordScore{Word: e.Word}
	})

	scores, err := w.repo.Scores(ctx, user)
	if err != nil {
		return nil, err
	}
	for _, score := range scores {
		board[score.Word] = score
	}
	return board, nil
}
