package handler_test

import (
	"context"
	"io"

	"ndmedia/internal/domain"
	"ndmedia/internal/dto"
	"ndmedia/internal/render"
)

// --- Manual Mocks ---

// MockViewService
type MockViewService struct {
	EnterFunc         func(ctx context.Context, page domain.Page) (*dto.ViewResponse, error)
	GetFunc           func(ctx context.Context, viewID string) (*dto.ViewResponse, error)
	ExitFunc          func(ctx context.Context, viewID string) error
	ToggleSidebarFunc func(ctx context.Context, viewID string) (domain.ShellState, error)
	ToggleMenuFunc    func(ctx context.Context, viewID string) (domain.ShellState, error)
	PingFunc          func(ctx context.Context) error
}

func (m *MockViewService) Enter(ctx context.Context, page domain.Page) (*dto.ViewResponse, error) {
	if m.EnterFunc != nil {
		return m.EnterFunc(ctx, page)
	}
	panic("MockViewService.EnterFunc not implemented")
}
func (m *MockViewService) Get(ctx context.Context, viewID string) (*dto.ViewResponse, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, viewID)
	}
	panic("MockViewService.GetFunc not implemented")
}
func (m *MockViewService) Exit(ctx context.Context, viewID string) error {
	if m.ExitFunc != nil {
		return m.ExitFunc(ctx, viewID)
	}
	panic("MockViewService.ExitFunc not implemented")
}
func (m *MockViewService) ToggleSidebar(ctx context.Context, viewID string) (domain.ShellState, error) {
	if m.ToggleSidebarFunc != nil {
		return m.ToggleSidebarFunc(ctx, viewID)
	}
	panic("MockViewService.ToggleSidebarFunc not implemented")
}
func (m *MockViewService) ToggleMenu(ctx context.Context, viewID string) (domain.ShellState, error) {
	if m.ToggleMenuFunc != nil {
		return m.ToggleMenuFunc(ctx, viewID)
	}
	panic("MockViewService.ToggleMenuFunc not implemented")
}
func (m *MockViewService) Ping(ctx context.Context) error {
	if m.PingFunc != nil {
		return m.PingFunc(ctx)
	}
	panic("MockViewService.PingFunc not implemented")
}

// MockQuizService
type MockQuizService struct {
	GetFunc          func(ctx context.Context, viewID string) (*dto.QuizResponse, error)
	SelectOptionFunc func(ctx context.Context, viewID string, option int) (*dto.QuizSelectResponse, error)
	AdvanceFunc      func(ctx context.Context, viewID string) (*dto.QuizResponse, error)
	RestartFunc      func(ctx context.Context, viewID string) (*dto.QuizResponse, error)
}

func (m *MockQuizService) Get(ctx context.Context, viewID string) (*dto.QuizResponse, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, viewID)
	}
	panic("MockQuizService.GetFunc not implemented")
}
func (m *MockQuizService) SelectOption(ctx context.Context, viewID string, option int) (*dto.QuizSelectResponse, error) {
	if m.SelectOptionFunc != nil {
		return m.SelectOptionFunc(ctx, viewID, option)
	}
	panic("MockQuizService.SelectOptionFunc not implemented")
}
func (m *MockQuizService) Advance(ctx context.Context, viewID string) (*dto.QuizResponse, error) {
	if m.AdvanceFunc != nil {
		return m.AdvanceFunc(ctx, viewID)
	}
	panic("MockQuizService.AdvanceFunc not implemented")
}
func (m *MockQuizService) Restart(ctx context.Context, viewID string) (*dto.QuizResponse, error) {
	if m.RestartFunc != nil {
		return m.RestartFunc(ctx, viewID)
	}
	panic("MockQuizService.RestartFunc not implemented")
}

// MockCarouselService
type MockCarouselService struct {
	GetFunc      func(ctx context.Context, viewID string) (*dto.CarouselResponse, error)
	NextFunc     func(ctx context.Context, viewID string) (*dto.CarouselResponse, error)
	PreviousFunc func(ctx context.Context, viewID string) (*dto.CarouselResponse, error)
	JumpToFunc   func(ctx context.Context, viewID string, index int) (*dto.CarouselResponse, error)
}

func (m *MockCarouselService) Get(ctx context.Context, viewID string) (*dto.CarouselResponse, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, viewID)
	}
	panic("MockCarouselService.GetFunc not implemented")
}
func (m *MockCarouselService) Next(ctx context.Context, viewID string) (*dto.CarouselResponse, error) {
	if m.NextFunc != nil {
		return m.NextFunc(ctx, viewID)
	}
	panic("MockCarouselService.NextFunc not implemented")
}
func (m *MockCarouselService) Previous(ctx context.Context, viewID string) (*dto.CarouselResponse, error) {
	if m.PreviousFunc != nil {
		return m.PreviousFunc(ctx, viewID)
	}
	panic("MockCarouselService.PreviousFunc not implemented")
}
func (m *MockCarouselService) JumpTo(ctx context.Context, viewID string, index int) (*dto.CarouselResponse, error) {
	if m.JumpToFunc != nil {
		return m.JumpToFunc(ctx, viewID, index)
	}
	panic("MockCarouselService.JumpToFunc not implemented")
}

// MockTrackerService
type MockTrackerService struct {
	ScrollFunc        func(ctx context.Context, viewID string, event domain.ScrollEvent) (*dto.ScrollResponse, error)
	SelectSectionFunc func(ctx context.Context, viewID, sectionID string, offsetTop float64) (*dto.SectionSelectResponse, error)
}

func (m *MockTrackerService) Scroll(ctx context.Context, viewID string, event domain.ScrollEvent) (*dto.ScrollResponse, error) {
	if m.ScrollFunc != nil {
		return m.ScrollFunc(ctx, viewID, event)
	}
	panic("MockTrackerService.ScrollFunc not implemented")
}
func (m *MockTrackerService) SelectSection(ctx context.Context, viewID, sectionID string, offsetTop float64) (*dto.SectionSelectResponse, error) {
	if m.SelectSectionFunc != nil {
		return m.SelectSectionFunc(ctx, viewID, sectionID, offsetTop)
	}
	panic("MockTrackerService.SelectSectionFunc not implemented")
}

// MockRenderer
type MockRenderer struct {
	RenderFunc     func(w io.Writer, d render.PageData) error
	RenderQuizFunc func(w io.Writer, quiz dto.QuizResponse) error
}

func (m *MockRenderer) NewPageData(view *dto.ViewResponse, year int) render.PageData {
	return render.PageData{Page: view.Page, View: view, ViewID: view.ID, Shell: view.Shell, Year: year}
}
func (m *MockRenderer) Render(w io.Writer, d render.PageData) error {
	if m.RenderFunc != nil {
		return m.RenderFunc(w, d)
	}
	panic("MockRenderer.RenderFunc not implemented")
}
func (m *MockRenderer) RenderQuiz(w io.Writer, quiz dto.QuizResponse) error {
	if m.RenderQuizFunc != nil {
		return m.RenderQuizFunc(w, quiz)
	}
	panic("MockRenderer.RenderQuizFunc not implemented")
}
