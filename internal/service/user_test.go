package service

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/d-chambers/prolix/internal/models"
	mock_service "github.com/d-chambers/prolix/internal/service/mock"
)

func TestUserS_SetUser(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock_service.NewMockUserRI(ctrl)
	gomock.InOrder(
		repo.EXPECT().
			GetOrCreate(gomock.Any(), "alice").
			Return(models.UserRecord{Name: "alice"}, nil),
		repo.EXPECT().
			SetCurrent(gomock.Any(), "alice").
			Return(nil),
	)

	svc := NewUserService(repo, zap.NewNop())

	record, err := svc.SetUser(context.Background(), "alice")
	require.NoError(t, err)
	assert.Equal(t, "alice", record.Name)
}

func TestUserS_Resolve(t *testing.T) {
	t.Parallel()

	t.Run("explicit name wins", func(t *testing.T) {
		t.Parallel()

		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := mock_service.NewMockUserRI(ctrl)
		repo.EXPECT().
			GetOrCreate(gomock.Any(), "bob").
			Return(models.UserRecord{Name: "bob"}, nil)

		svc := NewUserService(repo, zap.NewNop())

		name, err := svc.Resolve(context.Background(), "bob")
		require.NoError(t, err)
		assert.Equal(t, "bob", name)
	})

	t.Run("falls back to the current user", func(t *testing.T) {
		t.Parallel()

		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := mock_service.NewMockUserRI(ctrl)
		repo.EXPECT().Current(gomock.Any()).Return("alice", nil)

		svc := NewUserService(repo, zap.NewNop())

		name, err := svc.Resolve(context.Background(), "")
		require.NoError(t, err)
		assert.Equal(t, "alice", name)
	})

	t.Run("no user anywhere resolves to empty", func(t *testing.T) {
		t.Parallel()

		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := mock_service.NewMockUserRI(ctrl)
		repo.EXPECT().Current(gomock.Any()).Return("", nil)

		svc := NewUserService(repo, zap.NewNop())

		name, err := svc.Resolve(context.Background(), "")
		require.NoError(t, err)
		assert.Empty(t, name)
	})
}

func TestUserS_DeleteUser(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock_service.NewMockUserRI(ctrl)
	repo.EXPECT().Delete(gomock.Any(), "alice").Return(nil)

	svc := NewUserService(repo, zap.NewNop())
	require.NoError(t, svc.DeleteUser(context.Background(), "alice"))
}
