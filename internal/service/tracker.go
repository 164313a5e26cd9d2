package service

import (
	"context"
	"errors"

	"ndmedia/internal/content"
	"ndmedia/internal/domain"
	"ndmedia/internal/dto"
)

// TrackerService receives scroll notifications from a mounted page. Each
// notification updates the active sidebar section and the header style.
// Notifications for a view that has exited fail with VIEW_NOT_FOUND.
type TrackerService interface {
	Scroll(ctx context.Context, viewID string, event domain.ScrollEvent) (*dto.ScrollResponse, error)
	SelectSection(ctx context.Context, viewID, sectionID string, offsetTop float64) (*dto.SectionSelectResponse, error)
}

type trackerService struct {
	store     *ViewStore
	presenter viewPresenter
}

func NewTrackerService(store *ViewStore, c *content.Content, settings domain.TrackerSettings) TrackerService {
	return &trackerService{store: store, presenter: viewPresenter{content: c, settings: settings}}
}

func (s *trackerService) Scroll(ctx context.Context, viewID string, event domain.ScrollEvent) (*dto.ScrollResponse, error) {
	view, err := s.store.update(ctx, viewID, func(v *domain.View) error {
		tracker := s.presenter.tracker(v)
		tracker.Observe(event)
		v.Tracker = tracker.State()
		v.Shell.ObserveScroll(event.ScrollY)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &dto.ScrollResponse{
		ActiveSectionID: view.Tracker.ActiveSectionID,
		HeaderScrolled:  view.Shell.HeaderScrolled,
	}, nil
}

func (s *trackerService) SelectSection(ctx context.Context, viewID, sectionID string, offsetTop float64) (*dto.SectionSelectResponse, error) {
	var target domain.ScrollTarget
	view, err := s.store.update(ctx, viewID, func(v *domain.View) error {
		tracker := s.presenter.tracker(v)
		t, err := tracker.Select(sectionID, offsetTop)
		if errors.Is(err, domain.ErrUnknownSection) {
			return domain.NewUnknownSectionError(sectionID)
		}
		if err != nil {
			return err
		}
		target = t
		v.Tracker = tracker.State()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &dto.SectionSelectResponse{
		ActiveSectionID: view.Tracker.ActiveSectionID,
		Target:          target,
	}, nil
}
