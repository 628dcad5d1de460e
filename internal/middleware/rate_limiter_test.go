package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"finance-tracker/internal/config"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func callWithIP(e *echo.Echo, h echo.HandlerFunc, ip string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/api/income", nil)
	req.RemoteAddr = ip + ":51000"
	rec := httptest.NewRecorder()
	_ = h(e.NewContext(req, rec))
	return rec
}

func okHandler(c echo.Context) error {
	return c.NoContent(http.StatusOK)
}

func TestRateLimiter_RejectsBeyondBurst(t *testing.T) {
	e := echo.New()
	rl := NewRateLimiter(config.SecurityConfig{RateLimitPerSecond: 1, RateLimitBurst: 3})
	h := rl.Middleware()(okHandler)

	for i := 0; i < 3; i++ {
		assert.Equal(t, http.StatusOK, callWithIP(e, h, "10.1.1.1").Code, "request %d", i)
	}

	rec := callWithIP(e, h, "10.1.1.1")
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Contains(t, rec.Body.String(), "SYSTEM_006")
}

func TestRateLimiter_TracksClientsSeparately(t *testing.T) {
	e := echo.New()
	rl := NewRateLimiter(config.SecurityConfig{RateLimitPerSecond: 1, RateLimitBurst: 1})
	h := rl.Middleware()(okHandler)

	assert.Equal(t, http.StatusOK, callWithIP(e, h, "10.1.1.1").Code)
	assert.Equal(t, http.StatusTooManyRequests, callWithIP(e, h, "10.1.1.1").Code)
	assert.Equal(t, http.StatusOK, callWithIP(e, h, "10.2.2.2").Code)
	assert.Equal(t, 2, rl.visitorCount())
}

func TestNewRateLimiter_BurstNeverBelowRate(t *testing.T) {
	rl := NewRateLimiter(config.SecurityConfig{RateLimitPerSecond: 10, RateLimitBurst: 2})

	assert.Equal(t, 10, rl.burst)
}

func TestRateLimiter_EvictsIdleVisitors(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	rl := NewRateLimiter(config.SecurityConfig{RateLimitPerSecond: 5, RateLimitBurst: 5})
	rl.now = func() time.Time { return now }

	rl.allow("10.1.1.1")
	now = now.Add(2 * time.Minute)
	rl.allow("10.2.2.2")
	now = now.Add(2 * time.Minute)

	rl.evictIdle()

	require.Equal(t, 1, rl.visitorCount())
	_, kept := rl.visitors["10.2.2.2"]
	assert.True(t, kept)
}

func TestRateLimiter_RunStopsOnCancel(t *testing.T) {
	rl := NewRateLimiter(config.SecurityConfig{RateLimitPerSecond: 5, RateLimitBurst: 5})
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		rl.Run(ctx, time.Millisecond)
		close(done)
	}()
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancel")
	}
}
