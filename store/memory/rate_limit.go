// Package memory provides process-local store implementations: the default
// rate-limit counter table and the embedded-catalog content store.
package memory

import (
	"context"
	"sync"
	"time"
)

// record tracks one client identifier's submission count within the current
// window.
type record struct {
	count   int
	resetAt time.Time
}

// RateLimitStore is an in-memory fixed-window counter table.
//
// Records are never evicted: the table accumulates one entry per distinct
// identifier for the lifetime of the process. A restart clears all counters.
// In a multi-instance deployment each process keeps its own table, so the
// effective limit is limit x instance count; use the redis store when a
// shared view is needed.
type RateLimitStore struct {
	mu      sync.Mutex
	records map[string]*record
	now     func() time.Time
}

// NewRateLimitStore creates an empty counter table using the wall clock.
func NewRateLimitStore() *RateLimitStore {
	return &RateLimitStore{
		records: make(map[string]*record),
		now:     time.Now,
	}
}

// NewRateLimitStoreWithClock creates a counter table with an injectable
// clock for deterministic window tests.
func NewRateLimitStoreWithClock(now func() time.Time) *RateLimitStore {
	return &RateLimitStore{
		records: make(map[string]*record),
		now:     now,
	}
}

// Take implements store.RateLimitStore. A denied attempt does not mutate the
// record.
func (s *RateLimitStore) Take(_ context.Context, key string, limit int, window time.Duration) (bool, time.Duration, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()

	rec, ok := s.records[key]
	if !ok || !now.Before(rec.resetAt) {
		s.records[key] = &record{count: 1, resetAt: now.Add(window)}
		return true, 0, nil
	}

	if rec.count < limit {
		rec.count++
		return true, 0, nil
	}

	return false, rec.resetAt.Sub(now), nil
}

// Len reports the number of tracked identifiers. Used by the health service
// to expose table growth.
func (s *RateLimitStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.records)
}
