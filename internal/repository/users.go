package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/d-chambers/prolix/internal/models"
)

// currentUserKey is the app_state row that names the current user.
const currentUserKey = "current_user"

type UsersR struct {
	db QueryI
}

func NewUsersRepository(db QueryI) *UsersR {
	return &UsersR{db: db}
}

// GetOrCreate ensures a user row exists and returns it.
func (u *UsersR) GetOrCreate(ctx context.Context, name string) (models.UserRecord, error) {
	if name == "" {
		return models.UserRecord{}, errors.New("user name must not be empty")
	}

	query := `INSERT INTO users (name) VALUES (?) ON CONFLICT (name) DO NOTHING`
	if _, err := u.db.ExecContext(ctx, query, name); err != nil {
		return models.UserRecord{}, fmt.Errorf("failed to create user %q: %w", name, err)
	}

	return models.UserRecord{Name: name}, nil
}

// SetCurrent stores the current-user pointer. An empty name clears it.
func (u *UsersR) SetCurrent(ctx context.Context, name string) error {
	if name == "" {
		query := `DELETE FROM app_state WHERE key = ?`
		if _, err := u.db.ExecContext(ctx, query, currentUserKey); err != nil {
			return fmt.Errorf("failed to clear current user: %w", err)
		}
		return nil
	}

	if _, err := u.GetOrCreate(ctx, name); err != nil {
		return err
	}

	query := `
		INSERT INTO app_state (key, value) VALUES (?, ?)
		ON CONFLICT (key) DO UPDATE SET value = excluded.value
	`
	if _, err := u.db.ExecContext(ctx, query, currentUserKey, name); err != nil {
		return fmt.Errorf("failed to set current user: %w", err)
	}
	return nil
}

// Current returns the current user name, or "" when none is set.
func (u *UsersR) Current(ctx context.Context) (string, error) {
	query := `SELECT value FROM app_state WHERE key = ?`

	var name string
	err := u.db.GetContext(ctx, &name, query, currentUserKey)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", nil
		}
		return "", fmt.Errorf("failed to read current user: %w", err)
	}
	return name, nil
}

// Delete removes a user and everything hanging off it. Deleting an
// absent user is a no-op.
func (u *UsersR) Delete(ctx context.Context, name string) error {
	queries := []string{
		`DELETE FROM quiz_results WHERE user_name = ?`,
		`DELETE FROM discards WHERE user_name = ?`,
		`DELETE FROM users WHERE name = ?`,
	}
	for _, query := range queries {
		if _, err := u.db.ExecContext(ctx, query, name); err != nil {
			return fmt.Errorf("failed to delete user %q: %w", name, err)
		}
	}

	clear := `DELETE FROM app_state WHERE key = ? AND value = ?`
	if _, err := u.db.ExecContext(ctx, clear, currentUserKey, name); err != nil {
		return fmt.Errorf("failed to clear current user %q: %w", name, err)
	}
	return nil
}

// RecordResult increments the right or wrong counter for (user, word),
// creating a zero-initialized row first when absent.
func (u *UsersR) RecordResult(ctx context.Context, name, word string, outcome models.Outcome) error {
	if !outcome.Valid() {
		return fmt.Errorf("unknown outcome %q", outcome)
	}

	if _, err := u.GetOrCreate(ctx, name); err != nil {
		return err
	}

	right, wrong := 0, 0
	if outcome == models.OutcomeRight {
		right = 1
	} else {
		wrong = 1
	}

	query := `
		INSERT INTO quiz_results (user_name, word, right_count, wrong_count)
		VALUES (?, ?, ?, ?)
		ON CONFLICT (user_name, word) DO UPDATE SET
			right_count = right_count + excluded.right_count,
			wrong_count = wrong_count + excluded.wrong_count
	`
	if _, err := u.db.ExecContext(ctx, query, name, word, right, wrong); err != nil {
		return fmt.Errorf("failed to record %s for %q/%q: %w", outcome, name, word, err)
	}
	return nil
}

// DiscardWord adds the word to the user's discarded set. Discarding twice
// has no additional effect.
func (u *UsersR) DiscardWord(ctx context.Context, name, word string) error {
	if _, err := u.GetOrCreate(ctx, name); err != nil {
		return err
	}

	query := `
		INSERT INTO discards (user_name, word) VALUES (?, ?)
		ON CONFLICT (user_name, word) DO NOTHING
	`
	if _, err := u.db.ExecContext(ctx, query, name, word); err != nil {
		return fmt.Errorf("failed to discard %q for %q: %w", word, name, err)
	}
	return nil
}

// DiscardedWords lists the user's discarded words. An unknown user simply
// has none.
func (u *UsersR) DiscardedWords(ctx context.Context, name string) ([]string, error) {
	query := `SELECT word FROM discards WHERE user_name = ? ORDER BY word`

	words := make([]string, 0)
	if err := u.db.SelectContext(ctx, &words, query, name); err != nil {
		return nil, fmt.Errorf("failed to list discards for %q: %w", name, err)
	}
	return words, nil
}

// Scores returns the recorded counter rows for the user. Words the user
// never answered have no row here; the scoreboard service fills those in.
func (u *UsersR) Scores(ctx context.Context, name string) ([]models.WordScore, error) {
	query := `
		SELECT word, right_count, wrong_count
		FROM quiz_results
		WHERE user_name = ?
		ORDER BY word
	`

	scores := make([]models.WordScore, 0)
	if err := u.db.SelectContext(ctx, &scores, query, name); err != nil {
		return nil, fmt.Errorf("failed to load scores for %q: %w", name, err)
	}
	return scores, nil
}
