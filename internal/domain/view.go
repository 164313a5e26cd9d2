package domain

import (
	"context"
	"time"
)

// View is everything transient about one visit to one page. It is created
// when the page is entered and discarded when the visitor leaves; nothing in
// it outlives the visit or is shared with another view.
type View struct {
	ID        string         `json:"id"`
	Page      Page           `json:"page"`
	EnteredAt time.Time      `json:"entered_at"`
	Shell     ShellState     `json:"shell"`
	Quiz      *QuizState     `json:"quiz,omitempty"`
	Carousel  *CarouselState `json:"carousel,omitempty"`
	Tracker   TrackerState   `json:"tracker"`
}

// NewView builds the initial state for a page. quizAvailable and slideCount
// say whether the page's quiz and slideshow have anything to show.
func NewView(id string, page Page, now time.Time, quizAvailable bool, slideCount int) *View {
	v := &View{
		ID:        id,
		Page:      page,
		EnteredAt: now,
		Shell:     NewShellState(page),
	}
	if page.HasQuiz() && quizAvailable {
		v.Quiz = &QuizState{}
	}
	if page.HasCarousel() && slideCount > 0 {
		v.Carousel = &CarouselState{}
	}
	return v
}

// ViewRepository stores views for the length of a visit.
type ViewRepository interface {
	// Get returns a *DomainError with CodeViewNotFound when the view is unknown or expired.
	Get(ctx context.Context, viewID string) (*View, error)
	Save(ctx context.Context, view *View) error
	Delete(ctx context.Context, viewID string) error
}
