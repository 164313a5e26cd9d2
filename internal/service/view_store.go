package service

import (
	"context"

	"github.com/moby/locker"

	"ndmedia/internal/domain"
)

// ViewStore serializes read-modify-write cycles on a single view. Different
// views never block each other.
type ViewStore struct {
	repo  domain.ViewRepository
	locks *locker.Locker
}

func NewViewStore(repo domain.ViewRepository) *ViewStore {
	return &ViewStore{repo: repo, locks: locker.New()}
}

func (s *ViewStore) load(ctx context.Context, viewID string) (*domain.View, error) {
	return s.repo.Get(ctx, viewID)
}

// update loads the view, applies fn and saves the result. fn returning an
// error aborts without saving.
func (s *ViewStore) update(ctx context.Context, viewID string, fn func(*domain.View) error) (*domain.View, error) {
	s.locks.Lock(viewID)
	defer s.locks.Unlock(viewID)

	view, err := s.repo.Get(ctx, viewID)
	if err != nil {
		return nil, err
	}
	if err := fn(view); err != nil {
		return nil, err
	}
	if err := s.repo.Save(ctx, view); err != nil {
		return nil, err
	}
	return view, nil
}

func (s *ViewStore) create(ctx context.Context, view *domain.View) error {
	s.locks.Lock(view.ID)
	defer s.locks.Unlock(view.ID)
	return s.repo.Save(ctx, view)
}

func (s *ViewStore) remove(ctx context.Context, viewID string) error {
	s.locks.Lock(viewID)
	defer s.locks.Unlock(viewID)
	return s.repo.Delete(ctx, viewID)
}
