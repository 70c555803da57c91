package db

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/d-chambers/prolix/internal/config"
	_ "github.com/mattn/go-sqlite3"

	"github.com/jmoiron/sqlx"
)

// schema is the fixed user-store layout: composite (user, word) keys
// instead of tables generated per user.
const schema = `
CREATE TABLE IF NOT EXISTS users (
	name TEXT PRIMARY KEY
);

CREATE TABLE IF NOT EXISTS quiz_results (
	user_name   TEXT    NOT NULL REFERENCES users(name) ON DELETE CASCADE,
	word        TEXT    NOT NULL,
	right_count INTEGER NOT NULL DEFAULT 0,
	wrong_count INTEGER NOT NULL DEFAULT 0,
	PRIMARY KEY (user_name, word)
);

CREATE TABLE IF NOT EXISTS discards (
	user_name TEXT NOT NULL REFERENCES users(name) ON DELETE CASCADE,
	word      TEXT NOT NULL,
	PRIMARY KEY (user_name, word)
);

CREATE TABLE IF NOT EXISTS app_state (
	key   TEXT PRIMARY KEY,
	value TEXT NOT NULL
);
`

func InitDB(cfg config.StoreConfig) (*sqlx.DB, error) {
	if dir := filepath.Dir(cfg.DBPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create db dir: %w", err)
		}
	}

	db, err := sqlx.Open("sqlite3", cfg.DBPath+"?_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("failed open db connect: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed db ping: %w", err)
	}

	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to apply schema: %w", err)
	}

	return db, nil
}
