package service

import (
	"context"

	"github.com/d-chambers/prolix/internal/models"
	"go.uber.org/zap"
)

type DictionaryAPII interface {
	Define(ctx context.Context, word string) (models.Definition, error)
}

type SpellerAPII interface {
	Suggest(ctx context.Context, word string) (string, error)
}

type APII interface {
	DictionaryAPII
	SpellerAPII
}

type WordStoreI interface {
	All(ctx context.Context) ([]models.WordEntry, error)
	Lookup(ctx context.Context, word string) (models.WordEntry, error)
	Random(ctx context.Context) (models.WordEntry, error)
	Append(ctx context.Context, entries []models.WordEntry) (int, error)
}

type UserRI interface {
	GetOrCreate(ctx context.Context, name string) (models.UserRecord, error)
	SetCurrent(ctx context.Context, name string) error
	Current(ctx context.Context) (string, error)
	Delete(ctx context.Context, name string) error
	RecordResult(ctx context.Context, name, word string, outcome models.Outcome) error
	DiscardWord(ctx context.Context, name, word string) error
	DiscardedWords(ctx context.Context, name string) ([]string, error)
	Scores(ctx context.Context, name string) ([]models.WordScore, error)
}

type Service struct {
	*QuizS
	*CardsS
	*WordS
	*UserS
}

func InitServices(api APII, words WordStoreI, repo UserRI, log *zap.Logger) *Service {
	quiz := NewQuizService(words, repo, log)
	return &Service{
		QuizS:  quiz,
		CardsS: NewCardsService(words, repo, log),
		WordS:  NewWordService(api, words, repo, log),
		UserS:  NewUserService(repo, log),
	}
}
