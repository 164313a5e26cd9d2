package service

import (
	"context"

	"ndmedia/internal/content"
	"ndmedia/internal/domain"
	"ndmedia/internal/dto"
)

// CarouselService moves the workshop slideshow of a view.
type CarouselService interface {
	Get(ctx context.Context, viewID string) (*dto.CarouselResponse, error)
	Next(ctx context.Context, viewID string) (*dto.CarouselResponse, error)
	Previous(ctx context.Context, viewID string) (*dto.CarouselResponse, error)
	// JumpTo ignores indexes outside the slide list.
	JumpTo(ctx context.Context, viewID string, index int) (*dto.CarouselResponse, error)
}

type carouselService struct {
	store     *ViewStore
	presenter viewPresenter
}

func NewCarouselService(store *ViewStore, c *content.Content) CarouselService {
	return &carouselService{store: store, presenter: viewPresenter{content: c}}
}

func (s *carouselService) slides() []string {
	return s.presenter.content.WorkshopSlides.Slides
}

func (s *carouselService) Get(ctx context.Context, viewID string) (*dto.CarouselResponse, error) {
	view, err := s.store.load(ctx, viewID)
	if err != nil {
		return nil, err
	}
	c, err := s.presenter.carousel(view)
	if err != nil {
		return nil, err
	}
	resp := PresentCarousel(c, s.slides())
	return &resp, nil
}

func (s *carouselService) move(ctx context.Context, viewID string, fn func(*domain.Carousel)) (*dto.CarouselResponse, error) {
	var carousel *domain.Carousel
	_, err := s.store.update(ctx, viewID, func(v *domain.View) error {
		c, err := s.presenter.carousel(v)
		if err != nil {
			return err
		}
		fn(c)
		state := c.State()
		v.Carousel = &state
		carousel = c
		return nil
	})
	if err != nil {
		return nil, err
	}
	resp := PresentCarousel(carousel, s.slides())
	return &resp, nil
}

func (s *carouselService) Next(ctx context.Context, viewID string) (*dto.CarouselResponse, error) {
	return s.move(ctx, viewID, func(c *domain.Carousel) { c.Next() })
}

func (s *carouselService) Previous(ctx context.Context, viewID string) (*dto.CarouselResponse, error) {
	return s.move(ctx, viewID, func(c *domain.Carousel) { c.Previous() })
}

func (s *carouselService) JumpTo(ctx context.Context, viewID string, index int) (*dto.CarouselResponse, error) {
	return s.move(ctx, viewID, func(c *domain.Carousel) { c.JumpTo(index) })
}
