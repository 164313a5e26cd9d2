package service

import (
	"context"

	"github.com/stretchr/testify/mock"

	"ndmedia/internal/domain"
)

// --- MockViewRepository ---
type MockViewRepository struct {
	mock.Mock
}

func (m *MockViewRepository) Get(ctx context.Context, viewID string) (*domain.View, error) {
	args := m.Called(ctx, viewID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.View), args.Error(1)
}

func (m *MockViewRepository) Save(ctx context.Context, view *domain.View) error {
	args := m.Called(ctx, view)
	return args.Error(0)
}

func (m *MockViewRepository) Delete(ctx context.Context, viewID string) error {
	args := m.Called(ctx, viewID)
	return args.Error(0)
}
