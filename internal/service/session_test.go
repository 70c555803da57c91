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

func newSessionFixture(t *testing.T) (*QuizS, *mock_service.MockUserRI) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	entries := testEntries()
	words := mock_service.NewMockWordStoreI(ctrl)
	words.EXPECT().All(gomock.Any()).Return(entries, nil).AnyTimes()
	words.EXPECT().Random(gomock.Any()).Return(entries[0], nil).AnyTimes()

	repo := mock_service.NewMockUserRI(ctrl)
	return NewQuizService(words, repo, zap.NewNop()), repo
}

func correctLabel(s *QuizSession) string {
	return models.ChoiceLabel(s.Current().Correct)
}

func wrongLabel(s *QuizSession) string {
	quiz := s.Current()
	return models.ChoiceLabel((quiz.Correct + 1) % len(quiz.Choices))
}

func TestQuizSession_AllCorrect(t *testing.T) {
	t.Parallel()

	svc, repo := newSessionFixture(t)
	ctx := context.Background()

	repo.EXPECT().
		RecordResult(gomock.Any(), "alice", "cat", models.OutcomeRight).
		Return(nil).
		Times(3)

	s, err := svc.StartQuizSession(ctx, 3, "alice", 4, models.WordToDefinition)
	require.NoError(t, err)
	require.Equal(t, 3, s.Remaining())

	for i := 0; i < 2; i++ {
		res, err := s.Submit(ctx, correctLabel(s))
		require.NoError(t, err)
		assert.True(t, res.Correct)
		assert.False(t, res.Done)
	}

	res, err := s.Submit(ctx, correctLabel(s))
	require.NoError(t, err)
	assert.True(t, res.Correct)
	assert.True(t, res.Done)
	assert.True(t, s.Done())

	_, err = s.Submit(ctx, "a")
	require.ErrorIs(t, err, models.ErrSessionDone)
}

func TestQuizSession_MissedQuestionEarnsNoCredit(t *testing.T) {
	t.Parallel()

	svc, repo := newSessionFixture(t)
	ctx := context.Background()

	// two misses record two wrongs; the eventual right answer records nothing
	repo.EXPECT().
		RecordResult(gomock.Any(), "alice", "cat", models.OutcomeWrong).
		Return(nil).
		Times(2)

	s, err := svc.StartQuizSession(ctx, 1, "alice", 4, models.WordToDefinition)
	require.NoError(t, err)

	for i := 0; i < 2; i++ {
		res, err := s.Submit(ctx, wrongLabel(s))
		require.NoError(t, err)
		assert.False(t, res.Correct)
		assert.False(t, res.Done)
		assert.Equal(t, s.Current().Correct, res.CorrectIndex)
		// the question stays up until it is answered correctly
		assert.Equal(t, 1, s.Remaining())
	}

	res, err := s.Submit(ctx, correctLabel(s))
	require.NoError(t, err)
	assert.True(t, res.Correct)
	assert.True(t, res.Done)
}

func TestQuizSession_AnonymousKeepsNoStats(t *testing.T) {
	t.Parallel()

	svc, _ := newSessionFixture(t)
	ctx := context.Background()

	s, err := svc.StartQuizSession(ctx, 1, "", 4, models.WordToDefinition)
	require.NoError(t, err)

	_, err = s.Submit(ctx, wrongLabel(s))
	require.NoError(t, err)

	res, err := s.Submit(ctx, correctLabel(s))
	require.NoError(t, err)
	assert.True(t, res.Done)
}

func TestQuizSession_ToggleDirection(t *testing.T) {
	t.Parallel()

	svc, _ := newSessionFixture(t)
	ctx := context.Background()

	s, err := svc.StartQuizSession(ctx, 2, "", 4, models.WordToDefinition)
	require.NoError(t, err)

	// the flip applies to the next question, not the one on screen
	s.ToggleDirection()
	assert.Equal(t, models.WordToDefinition, s.Current().Direction)

	_, err = s.Submit(ctx, correctLabel(s))
	require.NoError(t, err)
	assert.Equal(t, models.DefinitionToWord, s.Current().Direction)
}

func TestQuizSession_RecordFailureDoesNotStopSession(t *testing.T) {
	t.Parallel()

	svc, repo := newSessionFixture(t)
	ctx := context.Background()

	repo.EXPECT().
		RecordResult(gomock.Any(), "alice", "cat", models.OutcomeRight).
		Return(assert.AnError)

	s, err := svc.StartQuizSession(ctx, 1, "alice", 4, models.WordToDefinition)
	require.NoError(t, err)

	res, err := s.Submit(ctx, correctLabel(s))
	require.NoError(t, err)
	assert.True(t, res.Correct)
	assert.True(t, res.Done)
}
