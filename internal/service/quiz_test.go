package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"ndmedia/internal/domain"
	"ndmedia/internal/dto"
	"ndmedia/internal/logger"
)

func TestQuizService_FullSession(t *testing.T) {
	s := newTestServices(t)
	ctx := context.Background()
	id := s.enter(t, domain.PageGuidelines)

	// correct answers are 1, 2, 3
	picks := []int{1, 0, 3}
	for i, pick := range picks {
		sel, err := s.quiz.SelectOption(ctx, id, pick)
		require.NoError(t, err)
		assert.True(t, sel.Changed)
		assert.Equal(t, domain.QuizAnswered, sel.Quiz.Status)
		require.NotNil(t, sel.Quiz.CorrectOption)
		assert.NotEmpty(t, sel.Quiz.Explanation)

		if i < len(picks)-1 {
			assert.Equal(t, "Next Question", sel.Quiz.AdvanceLabel)
		} else {
			assert.Equal(t, "Show Results", sel.Quiz.AdvanceLabel)
		}

		_, err = s.quiz.Advance(ctx, id)
		require.NoError(t, err)
	}

	q, err := s.quiz.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, domain.QuizComplete, q.Status)
	assert.Equal(t, 2, q.Score)
	assert.Equal(t, "2 / 3", q.Result)
	assert.Empty(t, q.Options)

	restarted, err := s.quiz.Restart(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, domain.QuizAsking, restarted.Status)
	assert.Equal(t, 0, restarted.Score)
	assert.Equal(t, 0, restarted.CurrentIndex)
	assert.Nil(t, restarted.SelectedOption)
}

func TestQuizService_OptionOutcomes(t *testing.T) {
	s := newTestServices(t)
	ctx := context.Background()
	id := s.enter(t, domain.PageGuidelines)

	before, err := s.quiz.Get(ctx, id)
	require.NoError(t, err)
	assert.Nil(t, before.CorrectOption)
	assert.Empty(t, before.Explanation)
	for _, o := range before.Options {
		assert.Empty(t, o.Outcome)
	}

	sel, err := s.quiz.SelectOption(ctx, id, 3)
	require.NoError(t, err)

	outcomes := make([]string, len(sel.Quiz.Options))
	for i, o := range sel.Quiz.Options {
		outcomes[i] = o.Outcome
	}
	assert.Equal(t, []string{dto.OutcomeNeutral, dto.OutcomeCorrect, dto.OutcomeNeutral, dto.OutcomeWrong}, outcomes)
	assert.True(t, sel.Quiz.Options[3].Selected)
}

func TestQuizService_SecondSelectionIsIgnored(t *testing.T) {
	s := newTestServices(t)
	ctx := context.Background()
	id := s.enter(t, domain.PageGuidelines)

	_, err := s.quiz.SelectOption(ctx, id, 1)
	require.NoError(t, err)

	again, err := s.quiz.SelectOption(ctx, id, 0)
	require.NoError(t, err)
	assert.False(t, again.Changed)
	assert.Equal(t, 1, again.Quiz.Score)
	require.NotNil(t, again.Quiz.SelectedOption)
	assert.Equal(t, 1, *again.Quiz.SelectedOption)
}

func TestQuizService_InvalidOption(t *testing.T) {
	s := newTestServices(t)
	ctx := context.Background()
	id := s.enter(t, domain.PageGuidelines)

	_, err := s.quiz.SelectOption(ctx, id, 4)
	requireCode(t, err, domain.CodeInvalidOption)

	q, err := s.quiz.Get(ctx, id)
	require.NoError(t, err)
	assert.False(t, q.IsAnswered)
}

func TestQuizService_AdvanceBeforeAnswering(t *testing.T) {
	s := newTestServices(t)
	ctx := context.Background()
	id := s.enter(t, domain.PageGuidelines)

	q, err := s.quiz.Advance(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, 0, q.CurrentIndex)
	assert.Equal(t, domain.QuizAsking, q.Status)
}

func TestQuizService_WrongPage(t *testing.T) {
	s := newTestServices(t)
	ctx := context.Background()
	id := s.enter(t, domain.PageContact)

	_, err := s.quiz.SelectOption(ctx, id, 0)
	requireCode(t, err, domain.CodeFeatureUnavailable)

	_, err = s.quiz.Get(ctx, "01JMISSING")
	requireCode(t, err, domain.CodeViewNotFound)
}

func TestQuizService_CompletionLoggedOnce(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	restore := logger.Replace(zap.New(core))
	defer restore()

	s := newTestServices(t)
	ctx := context.Background()
	id := s.enter(t, domain.PageGuidelines)

	for _, pick := range []int{1, 2, 3} {
		_, err := s.quiz.SelectOption(ctx, id, pick)
		require.NoError(t, err)
		_, err = s.quiz.Advance(ctx, id)
		require.NoError(t, err)
	}

	// advancing a finished quiz is a no-op and must not log again
	for i := 0; i < 3; i++ {
		q, err := s.quiz.Advance(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, domain.QuizComplete, q.Status)
	}

	completed := logs.FilterMessage("Quiz completed").All()
	require.Len(t, completed, 1)
	assert.Equal(t, int64(3), completed[0].ContextMap()["score"])
	assert.Equal(t, id, completed[0].ContextMap()["view_id"])
}
