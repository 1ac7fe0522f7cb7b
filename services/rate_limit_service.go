package services

import (
	"context"
	"time"

	"github.com/jstrehler/portfolio-backend/config"
	"github.com/jstrehler/portfolio-backend/logger"
	"github.com/jstrehler/portfolio-backend/store"
)

// RateLimiterInterface defines the contract for the feedback submission
// limiter.
type RateLimiterInterface interface {
	// CheckLimit decides whether the given client identifier may submit.
	// retryAfter is non-zero only when the decision is a denial.
	CheckLimit(ctx context.Context, identifier string) (allowed bool, retryAfter time.Duration, err error)
}

// RateLimitService applies a fixed-window limit per client identifier. The
// counter table lives behind store.RateLimitStore so the decision logic is
// identical whether counters are process-local or shared via Redis.
type RateLimitService struct {
	store  store.RateLimitStore
	limit  int
	window time.Duration
}

// NewRateLimitService creates a limiter with the configured parameters
// (defaults: 5 submissions per hour).
func NewRateLimitService(s store.RateLimitStore, cfg *config.RateLimitConfig) *RateLimitService {
	return &RateLimitService{
		store:  s,
		limit:  cfg.MaxSubmissions,
		window: cfg.Window(),
	}
}

// Limit returns the maximum admitted submissions per window.
func (s *RateLimitService) Limit() int {
	return s.limit
}

// Window returns the window duration.
func (s *RateLimitService) Window() time.Duration {
	return s.window
}

// CheckLimit implements RateLimiterInterface.
func (s *RateLimitService) CheckLimit(ctx context.Context, identifier string) (bool, time.Duration, error) {
	allowed, resetIn, err := s.store.Take(ctx, identifier, s.limit, s.window)
	if err != nil {
		return false, 0, err
	}
	if !allowed {
		logger.GetLogger().Infow("Submission rate limited",
			"identifier", identifier,
			"limit", s.limit,
			"reset_in", resetIn)
	}
	return allowed, resetIn, nil
}
