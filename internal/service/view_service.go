package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"ndmedia/internal/content"
	"ndmedia/internal/domain"
	"ndmedia/internal/dto"
	"ndmedia/internal/logger"
	"ndmedia/internal/util"
)

// ViewService owns the lifecycle of page views: a view is built fresh when a
// page is entered and thrown away when the visitor leaves it.
type ViewService interface {
	// Enter starts a new view of page. Views of other pages, including other
	// tabs of the same visitor, are left alone.
	Enter(ctx context.Context, page domain.Page) (*dto.ViewResponse, error)
	Get(ctx context.Context, viewID string) (*dto.ViewResponse, error)
	// Exit discards a view. Exiting an unknown view is not an error.
	Exit(ctx context.Context, viewID string) error
	ToggleSidebar(ctx context.Context, viewID string) (domain.ShellState, error)
	ToggleMenu(ctx context.Context, viewID string) (domain.ShellState, error)
	Ping(ctx context.Context) error
}

type viewService struct {
	store     *ViewStore
	presenter viewPresenter
	cache     domain.Cache
	now       func() time.Time
	newID     func() string
}

// NewViewService creates a view service. cache is only used for health checks.
func NewViewService(store *ViewStore, cache domain.Cache, c *content.Content, settings domain.TrackerSettings) ViewService {
	return &viewService{
		store:     store,
		presenter: viewPresenter{content: c, settings: settings},
		cache:     cache,
		now:       time.Now,
		newID:     util.NewULID,
	}
}

func (s *viewService) Enter(ctx context.Context, page domain.Page) (*dto.ViewResponse, error) {
	c := s.presenter.content
	view := domain.NewView(s.newID(), page, s.now().UTC(), len(c.Quiz) > 0, len(c.WorkshopSlides.Slides))
	if err := s.store.create(ctx, view); err != nil {
		return nil, err
	}

	logger.Get().Debug("View entered",
		zap.String("view_id", view.ID),
		zap.String("page", page.String()),
		zap.Bool("quiz", view.Quiz != nil),
		zap.Bool("carousel", view.Carousel != nil),
	)
	return s.presenter.present(view)
}

func (s *viewService) Get(ctx context.Context, viewID string) (*dto.ViewResponse, error) {
	view, err := s.store.load(ctx, viewID)
	if err != nil {
		return nil, err
	}
	return s.presenter.present(view)
}

func (s *viewService) Exit(ctx context.Context, viewID string) error {
	if err := s.store.remove(ctx, viewID); err != nil {
		return err
	}
	logger.Get().Debug("View exited", zap.String("view_id", viewID))
	return nil
}

func (s *viewService) ToggleSidebar(ctx context.Context, viewID string) (domain.ShellState, error) {
	view, err := s.store.update(ctx, viewID, func(v *domain.View) error {
		v.Shell.ToggleSidebar()
		return nil
	})
	if err != nil {
		return domain.ShellState{}, err
	}
	return view.Shell, nil
}

func (s *viewService) ToggleMenu(ctx context.Context, viewID string) (domain.ShellState, error) {
	view, err := s.store.update(ctx, viewID, func(v *domain.View) error {
		v.Shell.ToggleMenu()
		return nil
	})
	if err != nil {
		return domain.ShellState{}, err
	}
	return view.Shell, nil
}

func (s *viewService) Ping(ctx context.Context) error {
	if s.cache == nil {
		return nil
	}
	return s.cache.Ping(ctx)
}
