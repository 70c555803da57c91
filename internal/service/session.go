package service

import (
	"context"

	"github.com/d-chambers/prolix/internal/models"
	"go.uber.org/zap"
)

// QuizSession drives a bounded run of questions. The session advances past
// a question only on a correct answer; a question missed at least once
// earns no right credit when it is finally answered.
type QuizSession struct {
	svc  *QuizS
	user string // "" means no stats are kept

	choiceCount int
	direction   models.Direction // direction of the current question
	pending     models.Direction // direction the next question will use

	remaining int
	quiz      models.WordQuiz
	missed    bool
	done      bool
}

// SubmitResult reports what a single submission did to the session.
type SubmitResult struct {
	Correct      bool
	Done         bool
	CorrectIndex int
}

// StartQuizSession builds the first question and returns the live session.
func (q *QuizS) StartQuizSession(ctx context.Context, questionCount int, user string, choiceCount int, dir models.Direction) (*QuizSession, error) {
	s := &QuizSession{
		svc:         q,
		user:        user,
		choiceCount: choiceCount,
		direction:   dir,
		pending:     dir,
		remaining:   questionCount,
	}
	quiz, err := q.RandomQuiz(ctx, choiceCount, dir)
	if err != nil {
		return nil, err
	}
	s.quiz = quiz
	return s, nil
}

// Submit evaluates a choice against the current question and updates the
// session. Counter updates are committed per submission; a recording
// failure is logged but does not stop the session.
func (s *QuizSession) Submit(ctx context.Context, choice string) (SubmitResult, error) {
	if s.done {
		return SubmitResult{}, models.ErrSessionDone
	}

	res := SubmitResult{CorrectIndex: s.quiz.Correct}

	if !s.quiz.Answer(choice) {
		s.missed = true
		s.record(ctx, models.OutcomeWrong)
		return res, nil
	}

	res.Correct = true
	if !s.missed {
		s.record(ctx, models.OutcomeRight)
	}

	s.remaining--
	if s.remaining <= 0 {
		s.done = true
		res.Done = true
		return res, nil
	}

	s.direction = s.pending
	quiz, err := s.svc.RandomQuiz(ctx, s.choiceCount, s.direction)
	if err != nil {
		return res, err
	}
	s.quiz = quiz
	s.missed = false
	return res, nil
}

// ToggleDirection flips the quiz direction starting with the next question.
func (s *QuizSession) ToggleDirection() {
	s.pending = s.pending.Toggle()
}

func (s *QuizSession) Current() models.WordQuiz { return s.quiz }
func (s *QuizSession) Remaining() int           { return s.remaining }
func (s *QuizSession) Done() bool               { return s.done }

func (s *QuizSession) record(ctx context.Context, outcome models.Outcome) {
	if s.user == "" {
		return
	}
	if err := s.svc.repo.RecordResult(ctx, s.user, s.quiz.Word, outcome); err != nil {
		s.svc.log.Warn("failed to record quiz result",
			zap.String("user", s.user),
			zap.String("word", s.quiz.Word),
			zap.String("outcome", string(outcome)),
			zap.Error(err))
	}
}
