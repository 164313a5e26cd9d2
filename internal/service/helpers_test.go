package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"ndmedia/internal/adapter"
	"ndmedia/internal/content"
	"ndmedia/internal/domain"
	"ndmedia/internal/repository"
)

var testNow = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

type testServices struct {
	content  *content.Content
	cache    *adapter.MemoryCacheAdapter
	repo     domain.ViewRepository
	views    *viewService
	quiz     QuizService
	carousel CarouselService
	tracker  TrackerService
}

func newTestServices(t *testing.T) *testServices {
	t.Helper()

	c, err := content.Default()
	require.NoError(t, err)

	memory := adapter.NewMemoryCacheAdapter()
	repo := repository.NewViewRepository(memory, time.Hour)
	store := NewViewStore(repo)

	views := NewViewService(store, memory, c, domain.DefaultTrackerSettings).(*viewService)
	views.now = func() time.Time { return testNow }
	seq := 0
	views.newID = func() string {
		seq++
		return fmt.Sprintf("01JTESTVIEW%015d", seq)
	}

	return &testServices{
		content:  c,
		cache:    memory,
		repo:     repo,
		views:    views,
		quiz:     NewQuizService(store, c),
		carousel: NewCarouselService(store, c),
		tracker:  NewTrackerService(store, c, domain.DefaultTrackerSettings),
	}
}

func (s *testServices) enter(t *testing.T, page domain.Page) string {
	t.Helper()
	v, err := s.views.Enter(context.Background(), page)
	require.NoError(t, err)
	return v.ID
}

func requireCode(t *testing.T, err error, code domain.ErrorCode) {
	t.Helper()
	var domainErr *domain.DomainError
	require.ErrorAs(t, err, &domainErr)
	require.Equal(t, code, domainErr.Code)
}
