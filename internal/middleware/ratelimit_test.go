package middleware_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/helpboard/backend/internal/middleware"
)

// fakeClock is a manually advanced time source.
type fakeClock struct{ t time.Time }

func (c *fakeClock) Now() time.Time          { return c.t }
func (c *fakeClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

func newLimiter(rps float64, burst int) (*middleware.RateLimiter, *fakeClock) {
	clock := &fakeClock{t: time.Date(2024, 3, 5, 12, 0, 0, 0, time.UTC)}
	l := middleware.NewRateLimiter(rps, burst, 10*time.Minute)
	l.SetClock(clock.Now)
	return l, clock
}

func doRequest(h http.Handler, method, remoteAddr string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, "/requests", nil)
	req.RemoteAddr = remoteAddr
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestRateLimiter_AllowsBurstThenRejects(t *testing.T) {
	l, _ := newLimiter(1, 3)
	h := l.Handler(trivialHandler)

	for i := range 3 {
		require.Equal(t, http.StatusOK, doRequest(h, http.MethodPost, "10.0.0.1:5000").Code, "request %d", i)
	}

	rec := doRequest(h, http.MethodPost, "10.0.0.1:5000")
	require.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "1", rec.Header().Get("Retry-After"))

	var body map[string]map[string]string
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, "rate_limited", body["error"]["code"])
}

func TestRateLimiter_RefillsOverTime(t *testing.T) {
	l, clock := newLimiter(2, 1)
	h := l.Handler(trivialHandler)

	require.Equal(t, http.StatusOK, doRequest(h, http.MethodPost, "10.0.0.1:5000").Code)
	require.Equal(t, http.StatusTooManyRequests, doRequest(h, http.MethodPost, "10.0.0.1:5000").Code)

	clock.Advance(500 * time.Millisecond)

	assert.Equal(t, http.StatusOK, doRequest(h, http.MethodPost, "10.0.0.1:5000").Code)
}

func TestRateLimiter_RejectedRequestsDoNotConsumeTokens(t *testing.T) {
	l, clock := newLimiter(1, 1)
	h := l.Handler(trivialHandler)

	require.Equal(t, http.StatusOK, doRequest(h, http.MethodPost, "10.0.0.1:5000").Code)
	for range 5 {
		require.Equal(t, http.StatusTooManyRequests, doRequest(h, http.MethodPost, "10.0.0.1:5000").Code)
	}

	clock.Advance(time.Second)

	assert.Equal(t, http.StatusOK, doRequest(h, http.MethodPost, "10.0.0.1:5000").Code)
}

func TestRateLimiter_ClientsAreIndependent(t *testing.T) {
	l, _ := newLimiter(1, 1)
	h := l.Handler(trivialHandler)

	require.Equal(t, http.StatusOK, doRequest(h, http.MethodPost, "10.0.0.1:5000").Code)
	require.Equal(t, http.StatusTooManyRequests, doRequest(h, http.MethodPost, "10.0.0.1:6000").Code,
		"same host on another port shares the bucket")
	assert.Equal(t, http.StatusOK, doRequest(h, http.MethodPost, "10.0.0.2:5000").Code)
}

func TestRateLimiter_ReadsAreNotLimited(t *testing.T) {
	l, _ := newLimiter(1, 1)
	h := l.Handler(trivialHandler)

	for range 10 {
		require.Equal(t, http.StatusOK, doRequest(h, http.MethodGet, "10.0.0.1:5000").Code)
	}
	assert.Equal(t, 0, l.Len(), "reads do not create buckets")
}

func TestRateLimiter_Sweep(t *testing.T) {
	l, clock := newLimiter(1, 1)
	h := l.Handler(trivialHandler)

	doRequest(h, http.MethodPost, "10.0.0.1:5000")
	clock.Advance(9 * time.Minute)
	doRequest(h, http.MethodPost, "10.0.0.2:5000")
	require.Equal(t, 2, l.Len())

	clock.Advance(2 * time.Minute)

	assert.Equal(t, 1, l.Sweep(), "only the client idle past the window is dropped")
	assert.Equal(t, 1, l.Len())
}
