package middleware

import (
	"strconv"
	"strings"
	"time"

	apperrors "github.com/jstrehler/portfolio-backend/errors"
	"github.com/jstrehler/portfolio-backend/logger"
	"github.com/jstrehler/portfolio-backend/services"
	"github.com/gin-gonic/gin"
)

// ClientIdentifier derives the rate-limit key from request metadata:
// the first hop of X-Forwarded-For, then X-Real-IP, then the literal
// "unknown". All clients without forwarding headers share one bucket.
func ClientIdentifier(c *gin.Context) string {
	if forwarded := c.GetHeader("X-Forwarded-For"); forwarded != "" {
		ips := strings.Split(forwarded, ",")
		if first := strings.TrimSpace(ips[0]); first != "" {
			return first
		}
	}
	if realIP := c.GetHeader("X-Real-IP"); realIP != "" {
		return realIP
	}
	return "unknown"
}

// SubmissionRateLimiter guards the feedback endpoint with the configured
// fixed-window limiter. The denial body is the generic 429 contract; the
// standard rate-limit headers are additive.
//
// Limiter store errors fail open so the contact form stays available when a
// shared Redis store is down.
func SubmissionRateLimiter(limiter services.RateLimiterInterface, limit int) gin.HandlerFunc {
	return func(c *gin.Context) {
		identifier := ClientIdentifier(c)

		allowed, retryAfter, err := limiter.CheckLimit(c.Request.Context(), identifier)
		if err != nil {
			logger.GetLogger().Warnw("Rate limit check failed, allowing request",
				"identifier", identifier,
				"error", err)
			c.Next()
			return
		}

		if !allowed {
			c.Header("X-RateLimit-Limit", strconv.Itoa(limit))
			c.Header("X-RateLimit-Remaining", "0")
			if retryAfter > 0 {
				c.Header("X-RateLimit-Reset", strconv.FormatInt(time.Now().Add(retryAfter).Unix(), 10))
				c.Header("Retry-After", strconv.Itoa(int(retryAfter.Seconds())))
			}

			_ = c.Error(apperrors.RateLimitExceeded(int(retryAfter.Seconds())))
			c.Abort()
			return
		}

		c.Header("X-RateLimit-Limit", strconv.Itoa(limit))
		c.Next()
	}
}
