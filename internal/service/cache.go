// internal/service/cache.go
package service

import (
	"context"
	"time"

	"github.com/rukunhub/rukunhub/internal/cache"
	"github.com/rukunhub/rukunhub/internal/model"
)

// CacheService fronts the in-memory TTL cache for read-mostly lookups,
// currently the per-RW role label maps. Authorization decisions are never
// cached; membership is re-verified on every mutating call.
type CacheService struct {
	cache *cache.InMemoryCache
}

// CacheConfig holds configuration for the cache service
type CacheConfig struct {
	TTL         time.Duration
	CleanupFreq time.Duration
}

// NewCacheService creates a new cache service
func NewCacheService(config CacheConfig) *CacheService {
	c := cache.NewInMemoryCache(config.TTL, config.CleanupFreq)
	c.StartCleanup(context.Background())

	return &CacheService{cache: c}
}

// GetLabels returns a cached role label map, if present.
func (s *CacheService) GetLabels(ctx context.Context, key string) (map[model.RoleType]string, bool) {
	value, found := s.cache.Get(ctx, key)
	if !found {
		return nil, false
	}
	mapping, ok := value.(map[model.RoleType]string)
	return mapping, ok
}

// SetLabels stores a role label map under key.
func (s *CacheService) SetLabels(ctx context.Context, key string, mapping map[model.RoleType]string) {
	s.cache.Set(ctx, key, mapping)
}

// Invalidate drops key from the cache. Called after every label mutation so
// readers never see a stale map beyond the write.
func (s *CacheService) Invalidate(ctx context.Context, key string) {
	s.cache.Delete(ctx, key)
}

// Close stops the background cleanup.
func (s *CacheService) Close() {
	s.cache.Close()
}
