package service

import (
	"context"

	"github.com/d-chambers/prolix/internal/models"
	"go.uber.org/zap"
)

// UserS manages user records and the persisted current-user pointer.
type UserS struct {
	repo UserRI
	log  *zap.Logger
}

func NewUserService(repo UserRI, log *zap.Logger) *UserS {
	return &UserS{
		repo: repo,
		log:  log,
	}
}

// SetUser creates the user when needed and makes it the current user.
func (u *UserS) SetUser(ctx context.Context, name string) (models.UserRecord, error) {
	record, err := u.repo.GetOrCreate(ctx, name)
	if err != nil {
		return models.UserRecord{}, err
	}
	if err := u.repo.SetCurrent(ctx, name); err != nil {
		return models.UserRecord{}, err
	}
	return record, nil
}

// CurrentUser returns the persisted current user name, "" when unset.
func (u *UserS) CurrentUser(ctx context.Context) (string, error) {
	return u.repo.Current(ctx)
}

// DeleteUser removes the user and all of its counters and discards.
// Deleting a user that does not exist is a no-op.
func (u *UserS) DeleteUser(ctx context.Context, name string) error {
	return u.repo.Delete(ctx, name)
}

// Resolve picks the user a command should act for: the explicit name when
// given, otherwise the persisted current user. An empty result means
// stats are simply not kept.
func (u *UserS) Resolve(ctx context.Context, name string) (string, error) {
	if name != "" {
		if _, err := u.repo.GetOrCreate(ctx, name); err != nil {
			return "", err
		}
		return name, nil
	}
	return u.repo.Current(ctx)
}
