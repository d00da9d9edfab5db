package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bobfit/backend/internal/testdb"
)

func testLimiter(t *testing.T, limit int, prefix string) *RateLimiter {
	t.Helper()
	return NewRateLimiter(testdb.SetupRedis(t), RateLimitConfig{
		Window:    time.Hour,
		Limit:     limit,
		KeyPrefix: prefix,
	})
}

func withUser(userID uint) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("user_id", userID)
		c.Next()
	}
}

func TestIsAllowedEnforcesLimit(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping container-backed test in short mode")
	}

	limiter := testLimiter(t, 2, "rate_limit:isallowed")
	ctx := context.Background()

	for want := 1; want >= 0; want-- {
		allowed, remaining, _, err := limiter.IsAllowed(ctx, "7")
		require.NoError(t, err)
		assert.True(t, allowed)
		assert.Equal(t, want, remaining)
	}

	allowed, remaining, resetTime, err := limiter.IsAllowed(ctx, "7")
	require.NoError(t, err)
	assert.False(t, allowed)
	assert.Zero(t, remaining)
	assert.True(t, resetTime.After(time.Now()))

	// Another user has a separate counter.
	allowed, _, _, err = limiter.IsAllowed(ctx, "8")
	require.NoError(t, err)
	assert.True(t, allowed)
}

func TestGetRemainingRequestsDoesNotConsume(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping container-backed test in short mode")
	}

	limiter := testLimiter(t, 5, "rate_limit:quota")
	ctx := context.Background()

	remaining, _, err := limiter.GetRemainingRequests(ctx, "9")
	require.NoError(t, err)
	assert.Equal(t, 5, remaining)

	// Reading the quota leaves the counter untouched.
	remaining, _, err = limiter.GetRemainingRequests(ctx, "9")
	require.NoError(t, err)
	assert.Equal(t, 5, remaining)

	_, _, _, err = limiter.IsAllowed(ctx, "9")
	require.NoError(t, err)

	remaining, _, err = limiter.GetRemainingRequests(ctx, "9")
	require.NoError(t, err)
	assert.Equal(t, 4, remaining)
}

func TestRateLimitMiddlewareCapsRequests(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping container-backed test in short mode")
	}

	limiter := testLimiter(t, 1, "rate_limit:mw")

	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.POST("/recommendations", withUser(3), limiter.RateLimitMiddleware(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/recommendations", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "1", w.Header().Get("X-RateLimit-Limit"))
	assert.Equal(t, "0", w.Header().Get("X-RateLimit-Remaining"))

	w = httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/recommendations", nil))
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
}

func TestQuotaHandler(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping container-backed test in short mode")
	}

	limiter := testLimiter(t, 10, "rate_limit:handler")

	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.GET("/limit", withUser(4), limiter.QuotaHandler())
	engine.POST("/consume", withUser(4), limiter.RateLimitMiddleware(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	quota := func() (limit, remaining int) {
		t.Helper()
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/limit", nil))
		require.Equal(t, http.StatusOK, w.Code)
		var body struct {
			Limit     int   `json:"limit"`
			Remaining int   `json:"remaining"`
			Reset     int64 `json:"reset"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.NotZero(t, body.Reset)
		return body.Limit, body.Remaining
	}

	limit, remaining := quota()
	assert.Equal(t, 10, limit)
	assert.Equal(t, 10, remaining)

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/consume", nil))
	require.Equal(t, http.StatusOK, w.Code)

	_, remaining = quota()
	assert.Equal(t, 9, remaining)
}
