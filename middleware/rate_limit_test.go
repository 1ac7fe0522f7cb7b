package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/jstrehler/portfolio-backend/config"
	"github.com/jstrehler/portfolio-backend/logger"
	"github.com/jstrehler/portfolio-backend/services"
	"github.com/jstrehler/portfolio-backend/store/memory"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
	logger.IsTest = true
}

func TestClientIdentifier(t *testing.T) {
	tests := []struct {
		name     string
		headers  map[string]string
		expected string
	}{
		{
			name:     "x-forwarded-for single",
			headers:  map[string]string{"X-Forwarded-For": "203.0.113.7"},
			expected: "203.0.113.7",
		},
		{
			name:     "x-forwarded-for takes the first hop",
			headers:  map[string]string{"X-Forwarded-For": "203.0.113.7, 10.0.0.1, 10.0.0.2"},
			expected: "203.0.113.7",
		},
		{
			name:     "x-forwarded-for wins over x-real-ip",
			headers:  map[string]string{"X-Forwarded-For": "203.0.113.7", "X-Real-IP": "198.51.100.1"},
			expected: "203.0.113.7",
		},
		{
			name:     "x-real-ip fallback",
			headers:  map[string]string{"X-Real-IP": "198.51.100.1"},
			expected: "198.51.100.1",
		},
		{
			name:     "no headers",
			headers:  nil,
			expected: "unknown",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := gin.CreateTestContext(httptest.NewRecorder())
			req, _ := http.NewRequest("POST", "/api/feedback", nil)
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			c.Request = req

			assert.Equal(t, tt.expected, ClientIdentifier(c))
		})
	}
}

func newLimitedRouter(limiter services.RateLimiterInterface, limit int) *gin.Engine {
	r := gin.New()
	r.Use(ErrorHandler())
	r.POST("/test", SubmissionRateLimiter(limiter, limit), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return r
}

func TestSubmissionRateLimiter(t *testing.T) {
	limiter := services.NewRateLimitService(memory.NewRateLimitStore(), &config.RateLimitConfig{
		MaxSubmissions: 2,
		WindowSeconds:  60,
	})
	r := newLimitedRouter(limiter, 2)

	for i := 0; i < 2; i++ {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/test", nil)
		req.Header.Set("X-Forwarded-For", "203.0.113.7")
		r.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "2", w.Header().Get("X-RateLimit-Limit"))
	}

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/test", nil)
	req.Header.Set("X-Forwarded-For", "203.0.113.7")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "0", w.Header().Get("X-RateLimit-Remaining"))
	assert.NotEmpty(t, w.Header().Get("Retry-After"))
	assert.NotEmpty(t, w.Header().Get("X-RateLimit-Reset"))
	assert.JSONEq(t, `{"error":"Too many requests. Please try again later."}`, w.Body.String())
}

type failingLimiter struct{}

func (failingLimiter) CheckLimit(context.Context, string) (bool, time.Duration, error) {
	return false, 0, assert.AnError
}

// A broken limiter store must not take the contact form down with it.
func TestSubmissionRateLimiterFailsOpen(t *testing.T) {
	r := newLimitedRouter(failingLimiter{}, 5)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/test", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}
