package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubCache is an in-process CacheProvider for exercising the middleware
// without Redis.
type stubCache struct {
	entries map[string][]byte
	purges  int
}

func newStubCache() *stubCache {
	return &stubCache{entries: make(map[string][]byte)}
}

func (c *stubCache) Get(ctx context.Context, key string) ([]byte, error) {
	if value, ok := c.entries[key]; ok {
		return value, nil
	}
	return nil, context.Canceled // any error means miss
}

func (c *stubCache) Set(ctx context.Context, key string, value []byte, ttlSeconds int) error {
	c.entries[key] = value
	return nil
}

func (c *stubCache) Delete(ctx context.Context, key string) error {
	delete(c.entries, key)
	return nil
}

func (c *stubCache) DeletePattern(ctx context.Context, pattern string) error {
	c.purges++
	prefix := strings.TrimSuffix(pattern, "*")
	for key := range c.entries {
		if strings.HasPrefix(key, prefix) {
			delete(c.entries, key)
		}
	}
	return nil
}

func (c *stubCache) Exists(ctx context.Context, key string) (bool, error) {
	_, ok := c.entries[key]
	return ok, nil
}

func newCountingHandler(hits *int) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*hits++
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"ok":true}`))
	})
}

func TestCacheMiddlewareServesSecondGETFromCache(t *testing.T) {
	cache := newStubCache()
	hits := 0
	handler := NewCacheMiddleware(cache, nil).Middleware(newCountingHandler(&hits))

	first := httptest.NewRecorder()
	handler.ServeHTTP(first, httptest.NewRequest(http.MethodGet, "/api/v1/users", nil))
	assert.Equal(t, "MISS", first.Header().Get("X-Cache"))
	assert.Equal(t, 1, hits)

	second := httptest.NewRecorder()
	handler.ServeHTTP(second, httptest.NewRequest(http.MethodGet, "/api/v1/users", nil))
	assert.Equal(t, "HIT", second.Header().Get("X-Cache"))
	assert.Equal(t, 1, hits)
	assert.Equal(t, first.Body.String(), second.Body.String())
}

func TestCacheMiddlewareKeysIncludeQuery(t *testing.T) {
	cache := newStubCache()
	hits := 0
	handler := NewCacheMiddleware(cache, nil).Middleware(newCountingHandler(&hits))

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/v1/places", nil))
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/v1/places?page=2", nil))
	assert.Equal(t, 2, hits)
}

func TestCacheMiddlewarePurgesOnSuccessfulWrite(t *testing.T) {
	cache := newStubCache()
	hits := 0
	handler := NewCacheMiddleware(cache, nil).Middleware(newCountingHandler(&hits))

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/v1/users", nil))
	require.Len(t, cache.entries, 1)

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/api/v1/users", nil))
	assert.Equal(t, 1, cache.purges)
	assert.Empty(t, cache.entries)

	// the next GET goes back to the origin
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/v1/users", nil))
	assert.Equal(t, 3, hits)
}

func TestCacheMiddlewareSkipsFailedWritePurge(t *testing.T) {
	cache := newStubCache()
	failing := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	})
	handler := NewCacheMiddleware(cache, nil).Middleware(failing)

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/api/v1/users", nil))
	assert.Zero(t, cache.purges)
}

func TestCacheMiddlewareIgnoresNonAPIPaths(t *testing.T) {
	cache := newStubCache()
	hits := 0
	handler := NewCacheMiddleware(cache, nil).Middleware(newCountingHandler(&hits))

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Empty(t, cache.entries)
	assert.Equal(t, 1, hits)
}

func TestCacheMiddlewareDoesNotCacheErrors(t *testing.T) {
	cache := newStubCache()
	failing := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"error":"user not found"}`))
	})
	handler := NewCacheMiddleware(cache, nil).Middleware(failing)

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/v1/users/ghost", nil))
	assert.Empty(t, cache.entries)
}
