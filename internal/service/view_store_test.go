package service

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ndmedia/internal/domain"
)

func TestViewStore_UpdatesOfOneViewDoNotOverlap(t *testing.T) {
	s := newTestServices(t)
	ctx := context.Background()
	id := s.enter(t, domain.PageResearch)
	store := s.views.store

	var inside, maxInside int32
	var wg sync.WaitGroup
	for i := 0; i < 30; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := store.update(ctx, id, func(v *domain.View) error {
				n := atomic.AddInt32(&inside, 1)
				for {
					m := atomic.LoadInt32(&maxInside)
					if n <= m || atomic.CompareAndSwapInt32(&maxInside, m, n) {
						break
					}
				}
				time.Sleep(time.Millisecond)
				v.Shell.ToggleMenu()
				atomic.AddInt32(&inside, -1)
				return nil
			})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), atomic.LoadInt32(&maxInside))
	// an even number of toggles with no lost update leaves the menu closed
	got, err := s.views.Get(ctx, id)
	require.NoError(t, err)
	assert.False(t, got.Shell.MenuOpen)
}

func TestViewStore_DifferentViewsDoNotBlock(t *testing.T) {
	s := newTestServices(t)
	ctx := context.Background()
	first := s.enter(t, domain.PageHome)
	second := s.enter(t, domain.PagePosters)
	store := s.views.store

	held := make(chan struct{})
	release := make(chan struct{})
	go func() {
		_, _ = store.update(ctx, first, func(v *domain.View) error {
			close(held)
			<-release
			return nil
		})
	}()
	<-held

	done := make(chan error, 1)
	go func() {
		_, err := store.update(ctx, second, func(v *domain.View) error { return nil })
		done <- err
	}()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("update of a second view waited on the first")
	}
	close(release)
}
