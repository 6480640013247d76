package middleware

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/atapsolar/authhub/internal/pkg/logger"
)

// OriginLister reads the full durable origin allow-list
type OriginLister interface {
	ListOrigins(ctx context.Context) ([]string, error)
}

// AllowlistCache is a time-bounded snapshot of the durable origin allow-list.
// Reads are guaranteed accurate only to within the TTL window: admin mutations
// are picked up by the next refresh, not immediately.
type AllowlistCache struct {
	lister OriginLister
	ttl    time.Duration

	mu          sync.RWMutex
	snapshot    map[string]struct{}
	refreshedAt time.Time
}

// NewAllowlistCache creates an allow-list cache over the given lister
func NewAllowlistCache(lister OriginLister, ttl time.Duration) *AllowlistCache {
	return &AllowlistCache{
		lister:   lister,
		ttl:      ttl,
		snapshot: make(map[string]struct{}),
	}
}

// IsAllowed refreshes the snapshot if it is stale, then checks exact membership
func (c *AllowlistCache) IsAllowed(ctx context.Context, origin string) bool {
	c.refreshIfStale(ctx)

	c.mu.RLock()
	defer c.mu.RUnlock()
	_, ok := c.snapshot[origin]
	return ok
}

// refreshIfStale replaces the snapshot with a fresh read of the durable list
// when the snapshot is older than the TTL or empty. A failed read keeps the
// previous snapshot in place.
func (c *AllowlistCache) refreshIfStale(ctx context.Context) {
	c.mu.RLock()
	fresh := time.Since(c.refreshedAt) < c.ttl && len(c.snapshot) > 0
	c.mu.RUnlock()
	if fresh {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	// Another request may have refreshed while we waited for the lock
	if time.Since(c.refreshedAt) < c.ttl && len(c.snapshot) > 0 {
		return
	}

	origins, err := c.lister.ListOrigins(ctx)
	if err != nil {
		logger.Error("Failed to refresh CORS origin allow-list", logger.Err(err))
		return
	}

	snapshot := make(map[string]struct{}, len(origins))
	for _, origin := range origins {
		snapshot[origin] = struct{}{}
	}

	c.snapshot = snapshot
	c.refreshedAt = time.Now()
}

// DynamicCORSMiddleware creates CORS middleware backed by the allow-list
// cache. Requests without an Origin header (non-browser callers) bypass the
// allow-list check entirely.
func DynamicCORSMiddleware(cache *AllowlistCache) echo.MiddlewareFunc {
	return echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOriginFunc: func(origin string) (bool, error) {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			return cache.IsAllowed(ctx, origin), nil
		},
		AllowCredentials: true,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders:     []string{echo.HeaderContentType, echo.HeaderAuthorization},
	})
}
