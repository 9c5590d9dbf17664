package middleware_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stockpile/internal/domain"
	"stockpile/internal/pkg/cache"
	"stockpile/internal/pkg/logger"
	"stockpile/internal/pkg/middleware"
)

// fakeCache guarda contadores em memória; failWith força erro em todas as leituras.
type fakeCache struct {
	mu       sync.Mutex
	counts   map[string]int
	failWith error
}

func newFakeCache() *fakeCache {
	return &fakeCache{counts: make(map[string]int)}
}

func (f *fakeCache) GetInt(_ context.Context, key string) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failWith != nil {
		return 0, f.failWith
	}
	v, ok := f.counts[key]
	if !ok {
		return 0, cache.ErrCacheMiss
	}
	return v, nil
}

func (f *fakeCache) Set(_ context.Context, key string, value interface{}, _ time.Duration) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.counts[key] = value.(int)
	return nil
}

func (f *fakeCache) Incr(_ context.Context, key string) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.counts[key]++
	return int64(f.counts[key]), nil
}

func (f *fakeCache) Close() error { return nil }

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func doRequest(h http.Handler, remoteAddr string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/api/stores", nil)
	req.RemoteAddr = remoteAddr
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestRateLimiter_BlocksAfterLimit(t *testing.T) {
	h := middleware.RateLimiter(newFakeCache(), 2, time.Minute, logger.NewNop())(okHandler())

	first := doRequest(h, "10.0.0.1:5000")
	second := doRequest(h, "10.0.0.1:5001")
	third := doRequest(h, "10.0.0.1:5002")

	assert.Equal(t, http.StatusOK, first.Code)
	assert.Equal(t, "1", first.Header().Get("X-RateLimit-Remaining"))
	assert.Equal(t, http.StatusOK, second.Code)
	assert.Equal(t, "0", second.Header().Get("X-RateLimit-Remaining"))
	require.Equal(t, http.StatusTooManyRequests, third.Code)

	var body domain.ErrorResponse
	require.NoError(t, json.Unmarshal(third.Body.Bytes(), &body))
	assert.Equal(t, "RATE_LIMITED", body.Error.Code)
	assert.NotNil(t, body.Error.Details)
}

func TestRateLimiter_CountsPerIP(t *testing.T) {
	h := middleware.RateLimiter(newFakeCache(), 1, time.Minute, logger.NewNop())(okHandler())

	assert.Equal(t, http.StatusOK, doRequest(h, "10.0.0.1:1").Code)
	assert.Equal(t, http.StatusTooManyRequests, doRequest(h, "10.0.0.1:2").Code)
	assert.Equal(t, http.StatusOK, doRequest(h, "10.0.0.2:1").Code)
}

func TestRateLimiter_FailsOpenOnCacheError(t *testing.T) {
	fc := newFakeCache()
	fc.failWith = errors.New("redis down")
	h := middleware.RateLimiter(fc, 1, time.Minute, logger.NewNop())(okHandler())

	assert.Equal(t, http.StatusOK, doRequest(h, "10.0.0.1:1").Code)
	assert.Equal(t, http.StatusOK, doRequest(h, "10.0.0.1:1").Code)
}
