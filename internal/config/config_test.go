package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInit_Defaults(t *testing.T) {
	cfg, err := Init()
	require.NoError(t, err)

	assert.Equal(t, "production", cfg.Env)
	assert.Equal(t, 15, cfg.Quiz.QuestionCount)
	assert.Equal(t, 4, cfg.Quiz.ChoiceCount)
	assert.Equal(t, "words.csv", filepath.Base(cfg.Store.WordsPath))
	assert.Equal(t, "prolix.db", filepath.Base(cfg.Store.DBPath))
}

func TestInit_EnvOverrides(t *testing.T) {
	t.Setenv("PROLIX_ENV", "development")
	t.Setenv("PROLIX_WORDS_PATH", "/tmp/vocab.csv")
	t.Setenv("PROLIX_DB_PATH", "/tmp/vocab.db")
	t.Setenv("PROLIX_QUESTION_COUNT", "5")
	t.Setenv("PROLIX_CHOICE_COUNT", "3")

	cfg, err := Init()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, "/tmp/vocab.csv", cfg.Store.WordsPath)
	assert.Equal(t, "/tmp/vocab.db", cfg.Store.DBPath)
	assert.Equal(t, 5, cfg.Quiz.QuestionCount)
	assert.Equal(t, 3, cfg.Quiz.ChoiceCount)
}

func TestInit_Validation(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{name: "choice count below two", key: "PROLIX_CHOICE_COUNT", value: "1"},
		{name: "choice count above nine", key: "PROLIX_CHOICE_COUNT", value: "26"},
		{name: "question count below one", key: "PROLIX_QUESTION_COUNT", value: "0"},
		{name: "unknown env", key: "PROLIX_ENV", value: "outer-space"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)

			_, err := Init()
			require.Error(t, err)
		})
	}
}
