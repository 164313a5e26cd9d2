package service

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"ndmedia/internal/content"
	"ndmedia/internal/domain"
	"ndmedia/internal/dto"
	"ndmedia/internal/logger"
)

// QuizService drives the guidelines quiz of a view.
type QuizService interface {
	Get(ctx context.Context, viewID string) (*dto.QuizResponse, error)
	SelectOption(ctx context.Context, viewID string, option int) (*dto.QuizSelectResponse, error)
	Advance(ctx context.Context, viewID string) (*dto.QuizResponse, error)
	Restart(ctx context.Context, viewID string) (*dto.QuizResponse, error)
}

type quizService struct {
	store     *ViewStore
	presenter viewPresenter
}

func NewQuizService(store *ViewStore, c *content.Content) QuizService {
	return &quizService{store: store, presenter: viewPresenter{content: c}}
}

func (s *quizService) Get(ctx context.Context, viewID string) (*dto.QuizResponse, error) {
	view, err := s.store.load(ctx, viewID)
	if err != nil {
		return nil, err
	}
	q, err := s.presenter.quiz(view)
	if err != nil {
		return nil, err
	}
	resp := PresentQuiz(q)
	return &resp, nil
}

// mutate applies fn to the view's quiz and writes the new state back.
func (s *quizService) mutate(ctx context.Context, viewID string, fn func(*domain.Quiz) error) (*domain.Quiz, error) {
	var quiz *domain.Quiz
	_, err := s.store.update(ctx, viewID, func(v *domain.View) error {
		q, err := s.presenter.quiz(v)
		if err != nil {
			return err
		}
		if err := fn(q); err != nil {
			return err
		}
		state := q.State()
		v.Quiz = &state
		quiz = q
		return nil
	})
	if err != nil {
		return nil, err
	}
	return quiz, nil
}

func (s *quizService) SelectOption(ctx context.Context, viewID string, option int) (*dto.QuizSelectResponse, error) {
	var changed bool
	q, err := s.mutate(ctx, viewID, func(q *domain.Quiz) error {
		var err error
		changed, err = q.SelectOption(option)
		if errors.Is(err, domain.ErrOptionOutOfRange) {
			return domain.NewInvalidOptionError(option, len(q.Current().Options))
		}
		return err
	})
	if err != nil {
		return nil, err
	}

	logger.Get().Debug("Quiz option selected",
		zap.String("view_id", viewID),
		zap.Int("option", option),
		zap.Bool("changed", changed),
		zap.Int("score", q.State().Score),
	)
	return &dto.QuizSelectResponse{Changed: changed, Quiz: PresentQuiz(q)}, nil
}

func (s *quizService) Advance(ctx context.Context, viewID string) (*dto.QuizResponse, error) {
	var moved bool
	q, err := s.mutate(ctx, viewID, func(q *domain.Quiz) error {
		moved = q.Advance()
		return nil
	})
	if err != nil {
		return nil, err
	}
	if moved && q.Status() == domain.QuizComplete {
		logger.Get().Info("Quiz completed",
			zap.String("view_id", viewID),
			zap.Int("score", q.State().Score),
			zap.Int("questions", q.QuestionCount()),
		)
	}
	resp := PresentQuiz(q)
	return &resp, nil
}

func (s *quizService) Restart(ctx context.Context, viewID string) (*dto.QuizResponse, error) {
	q, err := s.mutate(ctx, viewID, func(q *domain.Quiz) error {
		q.Restart()
		return nil
	})
	if err != nil {
		return nil, err
	}
	resp := PresentQuiz(q)
	return &resp, nil
}
