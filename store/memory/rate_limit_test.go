package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testWindow = time.Hour

// fakeClock lets tests advance time without sleeping.
type fakeClock struct {
	now time.Time
}

func (f *fakeClock) Now() time.Time          { return f.now }
func (f *fakeClock) Advance(d time.Duration) { f.now = f.now.Add(d) }

func newTestStore() (*RateLimitStore, *fakeClock) {
	clock := &fakeClock{now: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}
	return NewRateLimitStoreWithClock(clock.Now), clock
}

func TestTakeAdmitsUpToLimit(t *testing.T) {
	s, _ := newTestStore()
	ctx := context.Background()

	for i := 1; i <= 5; i++ {
		allowed, _, err := s.Take(ctx, "1.2.3.4", 5, testWindow)
		require.NoError(t, err)
		assert.True(t, allowed, "submission %d should be admitted", i)
	}

	allowed, resetIn, err := s.Take(ctx, "1.2.3.4", 5, testWindow)
	require.NoError(t, err)
	assert.False(t, allowed, "sixth submission within the window should be denied")
	assert.Equal(t, testWindow, resetIn)
}

func TestTakeResetsAfterWindowElapses(t *testing.T) {
	s, clock := newTestStore()
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		allowed, _, err := s.Take(ctx, "1.2.3.4", 5, testWindow)
		require.NoError(t, err)
		require.True(t, allowed)
	}
	allowed, _, err := s.Take(ctx, "1.2.3.4", 5, testWindow)
	require.NoError(t, err)
	require.False(t, allowed)

	clock.Advance(testWindow)

	// Window elapsed: the counter restarts at 1, so another full batch of
	// five is admitted before the next denial.
	for i := 1; i <= 5; i++ {
		allowed, _, err := s.Take(ctx, "1.2.3.4", 5, testWindow)
		require.NoError(t, err)
		assert.True(t, allowed, "submission %d after reset should be admitted", i)
	}
	allowed, _, err = s.Take(ctx, "1.2.3.4", 5, testWindow)
	require.NoError(t, err)
	assert.False(t, allowed)
}

func TestTakeIsolatesIdentifiers(t *testing.T) {
	s, _ := newTestStore()
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		allowed, _, err := s.Take(ctx, "1.2.3.4", 5, testWindow)
		require.NoError(t, err)
		require.True(t, allowed)
	}
	allowed, _, err := s.Take(ctx, "1.2.3.4", 5, testWindow)
	require.NoError(t, err)
	require.False(t, allowed)

	// A different identifier is unaffected by the exhausted one.
	allowed, _, err = s.Take(ctx, "5.6.7.8", 5, testWindow)
	require.NoError(t, err)
	assert.True(t, allowed)
	assert.Equal(t, 2, s.Len())
}

func TestTakeDenialDoesNotMutate(t *testing.T) {
	s, clock := newTestStore()
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, _, err := s.Take(ctx, "1.2.3.4", 3, testWindow)
		require.NoError(t, err)
	}

	// Denied attempts must not extend the window or grow the counter.
	clock.Advance(30 * time.Minute)
	for i := 0; i < 10; i++ {
		allowed, resetIn, err := s.Take(ctx, "1.2.3.4", 3, testWindow)
		require.NoError(t, err)
		require.False(t, allowed)
		assert.Equal(t, 30*time.Minute, resetIn)
	}

	clock.Advance(30 * time.Minute)
	allowed, _, err := s.Take(ctx, "1.2.3.4", 3, testWindow)
	require.NoError(t, err)
	assert.True(t, allowed, "window rolled over despite earlier denials")
}

func TestTakeAtWindowBoundary(t *testing.T) {
	s, clock := newTestStore()
	ctx := context.Background()

	_, _, err := s.Take(ctx, "1.2.3.4", 1, testWindow)
	require.NoError(t, err)

	// Exactly at windowResetAt the record is replaced, not incremented.
	clock.Advance(testWindow)
	allowed, _, err := s.Take(ctx, "1.2.3.4", 1, testWindow)
	require.NoError(t, err)
	assert.True(t, allowed)
}
