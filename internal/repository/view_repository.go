package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"ndmedia/internal/cache"
	"ndmedia/internal/domain"
	"ndmedia/internal/logger"
)

// viewCacheRepository keeps each view as a JSON document in the cache.
// Every successful read or write pushes the expiry out by ttl.
type viewCacheRepository struct {
	cache domain.Cache
	ttl   time.Duration
}

// NewViewRepository creates a view store on top of a cache port.
func NewViewRepository(c domain.Cache, ttl time.Duration) domain.ViewRepository {
	return &viewCacheRepository{cache: c, ttl: ttl}
}

func (r *viewCacheRepository) Get(ctx context.Context, viewID string) (*domain.View, error) {
	key := cache.ViewStateKey(viewID)
	data, err := r.cache.Get(ctx, key)
	if err != nil {
		if errors.Is(err, domain.ErrCacheMiss) {
			logger.Get().Debug("View cache miss", zap.String("key", key))
			return nil, domain.NewViewNotFoundError(viewID)
		}
		logger.Get().Error("Failed to get view from cache", zap.Error(err), zap.String("key", key))
		return nil, domain.NewInternalError(fmt.Sprintf("failed to get view %s", viewID), err)
	}
	if data == "" {
		return nil, domain.NewViewNotFoundError(viewID)
	}

	var view domain.View
	if err := json.Unmarshal([]byte(data), &view); err != nil {
		logger.Get().Error("Failed to unmarshal view from cache", zap.Error(err), zap.String("key", key))
		return nil, domain.NewInternalError(fmt.Sprintf("failed to decode view %s", viewID), err)
	}

	if err := r.cache.Expire(ctx, key, r.ttl); err != nil && !errors.Is(err, domain.ErrCacheMiss) {
		logger.Get().Warn("Failed to refresh view TTL", zap.Error(err), zap.String("key", key))
	}
	return &view, nil
}

func (r *viewCacheRepository) Save(ctx context.Context, view *domain.View) error {
	if view == nil || view.ID == "" {
		return domain.NewInvalidInputError("cannot save a view without an ID")
	}

	key := cache.ViewStateKey(view.ID)
	data, err := json.Marshal(view)
	if err != nil {
		return domain.NewInternalError(fmt.Sprintf("failed to encode view %s", view.ID), err)
	}
	if err := r.cache.Set(ctx, key, string(data), r.ttl); err != nil {
		logger.Get().Error("Failed to store view", zap.Error(err), zap.String("key", key))
		return domain.NewInternalError(fmt.Sprintf("failed to store view %s", view.ID), err)
	}
	return nil
}

func (r *viewCacheRepository) Delete(ctx context.Context, viewID string) error {
	key := cache.ViewStateKey(viewID)
	if err := r.cache.Delete(ctx, key); err != nil {
		logger.Get().Error("Failed to delete view", zap.Error(err), zap.String("key", key))
		return domain.NewInternalError(fmt.Sprintf("failed to delete view %s", viewID), err)
	}
	return nil
}
