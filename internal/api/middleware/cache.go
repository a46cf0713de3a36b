package middleware

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/http"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/stayhub/stayhub/internal/domain/providers"
	"github.com/stayhub/stayhub/internal/infrastructure/observability"
)

const (
	cacheKeyPrefix  = "http:cache:"
	cacheTTLSeconds = 60
	cachedPathRoot  = "/api/v1/"
)

// CacheMiddleware provides read-through HTTP response caching for GET
// endpoints. Because the data set is fully mutable through the same API,
// any successful mutating request purges the whole cache namespace so
// reads never observe stale entities.
type CacheMiddleware struct {
	cache   providers.CacheProvider
	metrics *observability.Metrics
}

// NewCacheMiddleware creates a new cache middleware
func NewCacheMiddleware(cache providers.CacheProvider, metrics *observability.Metrics) *CacheMiddleware {
	return &CacheMiddleware{cache: cache, metrics: metrics}
}

// Middleware returns the cache middleware handler
func (m *CacheMiddleware) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if m.cache == nil || !strings.HasPrefix(r.URL.Path, cachedPathRoot) {
			next.ServeHTTP(w, r)
			return
		}

		if r.Method != http.MethodGet {
			m.serveAndPurge(w, r, next)
			return
		}

		cacheKey := m.generateCacheKey(r)

		if cached, err := m.cache.Get(r.Context(), cacheKey); err == nil {
			if m.metrics != nil {
				observability.RecordCacheHit(r.Context(), m.metrics, r.URL.Path)
			}
			w.Header().Set("X-Cache", "HIT")
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusOK)
			w.Write(cached)
			return
		}

		if m.metrics != nil {
			observability.RecordCacheMiss(r.Context(), m.metrics, r.URL.Path)
		}
		w.Header().Set("X-Cache", "MISS")

		recorder := &responseRecorder{
			ResponseWriter: w,
			statusCode:     http.StatusOK,
			body:           &bytes.Buffer{},
		}
		next.ServeHTTP(recorder, r)

		if recorder.statusCode == http.StatusOK && recorder.body.Len() > 0 {
			if err := m.cache.Set(r.Context(), cacheKey, recorder.body.Bytes(), cacheTTLSeconds); err != nil {
				log.Warn().Err(err).Str("key", cacheKey).Msg("failed to cache response")
			}
		}
	})
}

// serveAndPurge serves a mutating request and, when it succeeds, drops the
// cached GET responses that may now be stale.
func (m *CacheMiddleware) serveAndPurge(w http.ResponseWriter, r *http.Request, next http.Handler) {
	recorder := &responseRecorder{
		ResponseWriter: w,
		statusCode:     http.StatusOK,
		body:           &bytes.Buffer{},
	}
	next.ServeHTTP(recorder, r)

	if recorder.statusCode < http.StatusBadRequest {
		if err := m.cache.DeletePattern(r.Context(), cacheKeyPrefix+"*"); err != nil {
			log.Warn().Err(err).Msg("failed to purge response cache")
		}
	}
}

// generateCacheKey generates a cache key from the request
func (m *CacheMiddleware) generateCacheKey(r *http.Request) string {
	key := fmt.Sprintf("%s:%s", r.Method, r.URL.Path)
	if r.URL.RawQuery != "" {
		key += "?" + r.URL.RawQuery
	}

	// Hash the key to keep it a reasonable length
	hash := sha256.Sum256([]byte(key))
	return cacheKeyPrefix + hex.EncodeToString(hash[:])
}

// responseRecorder captures the response body for caching
type responseRecorder struct {
	http.ResponseWriter
	statusCode int
	body       *bytes.Buffer
}

func (r *responseRecorder) WriteHeader(statusCode int) {
	r.statusCode = statusCode
	r.ResponseWriter.WriteHeader(statusCode)
}

func (r *responseRecorder) Write(data []byte) (int, error) {
	r.body.Write(data)
	return r.ResponseWriter.Write(data)
}
