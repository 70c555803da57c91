package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/d-chambers/prolix/pkg/validator"
	"github.com/spf13/viper"
)

type Config struct {
	Store StoreConfig `mapstructure:"store" validate:"required"`
	Quiz  QuizConfig  `mapstructure:"quiz" validate:"required"`
	Env   string      `mapstructure:"env" validate:"oneof=development production staging"`
}

type StoreConfig struct {
	// WordsPath is the CSV word table.
	WordsPath string `mapstructure:"words_path" validate:"required"`
	// DBPath is the SQLite file holding per-user stats and discards.
	DBPath string `mapstructure:"db_path" validate:"required"`
}

type QuizConfig struct {
	QuestionCount int `mapstructure:"question_count" validate:"min=1"`
	// ChoiceCount stays single-keystroke selectable, hence max 9.
	ChoiceCount int `mapstructure:"choice_count" validate:"min=2,max=9"`
}

func Init() (*Config, error) {
	v := viper.New()

	v.SetEnvPrefix("PROLIX")
	v.AutomaticEnv()

	dataDir := defaultDataDir()
	v.SetDefault("store.words_path", filepath.Join(dataDir, "words.csv"))
	v.SetDefault("store.db_path", filepath.Join(dataDir, "prolix.db"))
	v.SetDefault("quiz.question_count", 15)
	v.SetDefault("quiz.choice_count", 4)
	v.SetDefault("env", "production")

	if err := v.BindEnv("env", "PROLIX_ENV"); err != nil {
		return nil, fmt.Errorf("failed to bind PROLIX_ENV: %w", err)
	}
	if err := v.BindEnv("store.words_path", "PROLIX_WORDS_PATH"); err != nil {
		return nil, fmt.Errorf("failed to bind PROLIX_WORDS_PATH: %w", err)
	}
	if err := v.BindEnv("store.db_path", "PROLIX_DB_PATH"); err != nil {
		return nil, fmt.Errorf("failed to bind PROLIX_DB_PATH: %w", err)
	}
	if err := v.BindEnv("quiz.question_count", "PROLIX_QUESTION_COUNT"); err != nil {
		return nil, fmt.Errorf("failed to bind PROLIX_QUESTION_COUNT: %w", err)
	}
	if err := v.BindEnv("quiz.choice_count", "PROLIX_CHOICE_COUNT"); err != nil {
		return nil, fmt.Errorf("failed to bind PROLIX_CHOICE_COUNT: %w", err)
	}

	v.SetConfigName("config")
	v.AddConfigPath(dataDir)
	v.AddConfigPath("configs")
	if err := v.ReadInConfig(); err != nil {
		// the config file is optional, defaults plus env are enough
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	cfg := Config{}
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validator.ValidateStruct(cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func defaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".prolix"
	}
	return filepath.Join(home, ".prolix")
}
