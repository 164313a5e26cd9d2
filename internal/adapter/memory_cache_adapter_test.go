package adapter

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ndmedia/internal/domain"
)

func TestMemoryCacheAdapter_GetSet(t *testing.T) {
	m := NewMemoryCacheAdapter()
	ctx := context.Background()

	_, err := m.Get(ctx, "missing")
	assert.ErrorIs(t, err, domain.ErrCacheMiss)

	require.NoError(t, m.Set(ctx, "k", "v1", 0))
	require.NoError(t, m.Set(ctx, "k", "v2", 0))

	val, err := m.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "v2", val)
	assert.Equal(t, 1, m.Len())
}

func TestMemoryCacheAdapter_Expiration(t *testing.T) {
	m := NewMemoryCacheAdapter()
	ctx := context.Background()

	require.NoError(t, m.Set(ctx, "k", "v", 50*time.Millisecond))
	require.NoError(t, m.Set(ctx, "forever", "v", 0))

	_, err := m.Get(ctx, "k")
	assert.NoError(t, err)

	assert.Eventually(t, func() bool {
		_, err := m.Get(ctx, "k")
		return err == domain.ErrCacheMiss
	}, time.Second, 10*time.Millisecond)

	_, err = m.Get(ctx, "forever")
	assert.NoError(t, err)
}

func TestMemoryCacheAdapter_GetDoesNotExtend(t *testing.T) {
	m := NewMemoryCacheAdapter()
	ctx := context.Background()

	require.NoError(t, m.Set(ctx, "k", "v", 150*time.Millisecond))
	time.Sleep(100 * time.Millisecond)
	_, err := m.Get(ctx, "k")
	require.NoError(t, err)

	time.Sleep(100 * time.Millisecond)
	_, err = m.Get(ctx, "k")
	assert.ErrorIs(t, err, domain.ErrCacheMiss)
}

func TestMemoryCacheAdapter_Expire(t *testing.T) {
	ctx := context.Background()

	t.Run("same ttl restarts the countdown", func(t *testing.T) {
		m := NewMemoryCacheAdapter()
		require.NoError(t, m.Set(ctx, "k", "v", 200*time.Millisecond))
		time.Sleep(120 * time.Millisecond)
		require.NoError(t, m.Expire(ctx, "k", 200*time.Millisecond))

		time.Sleep(120 * time.Millisecond)
		val, err := m.Get(ctx, "k")
		require.NoError(t, err)
		assert.Equal(t, "v", val)
	})

	t.Run("new ttl replaces the old one", func(t *testing.T) {
		m := NewMemoryCacheAdapter()
		require.NoError(t, m.Set(ctx, "k", "v", 200*time.Millisecond))
		require.NoError(t, m.Expire(ctx, "k", time.Hour))

		time.Sleep(250 * time.Millisecond)
		_, err := m.Get(ctx, "k")
		assert.NoError(t, err)
	})

	t.Run("missing and expired keys", func(t *testing.T) {
		m := NewMemoryCacheAdapter()
		assert.ErrorIs(t, m.Expire(ctx, "missing", time.Minute), domain.ErrCacheMiss)

		require.NoError(t, m.Set(ctx, "k", "v", 20*time.Millisecond))
		time.Sleep(50 * time.Millisecond)
		assert.ErrorIs(t, m.Expire(ctx, "k", time.Minute), domain.ErrCacheMiss)
	})
}

func TestMemoryCacheAdapter_DeleteAndCleanup(t *testing.T) {
	m := NewMemoryCacheAdapter()
	ctx := context.Background()

	go m.Start()
	defer m.Stop()

	require.NoError(t, m.Set(ctx, "a", "1", 30*time.Millisecond))
	require.NoError(t, m.Set(ctx, "b", "2", time.Hour))
	require.NoError(t, m.Set(ctx, "c", "3", 0))

	require.NoError(t, m.Delete(ctx, "c"))
	require.NoError(t, m.Delete(ctx, "c"))

	assert.Eventually(t, func() bool { return m.Len() == 1 }, time.Second, 10*time.Millisecond)
	_, err := m.Get(ctx, "b")
	assert.NoError(t, err)
	assert.NoError(t, m.Ping(ctx))
}
