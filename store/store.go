// Package store defines the storage interfaces behind the feedback rate
// limiter and the site content catalog. Implementations live in subpackages
// (memory, redis) so the limiter's decision logic never depends on where the
// counters live.
package store

import (
	"context"
	"time"

	"github.com/jstrehler/portfolio-backend/types"
)

// RateLimitStore maintains fixed-window submission counters per client
// identifier.
type RateLimitStore interface {
	// Take records an attempt for key within a fixed window and reports
	// whether it is admitted. On a first attempt or an expired window the
	// counter restarts at 1 and the window is extended by window from now.
	// When the counter has reached limit the attempt is denied and resetIn
	// reports how long until the window rolls over.
	Take(ctx context.Context, key string, limit int, window time.Duration) (allowed bool, resetIn time.Duration, err error)
}

// ContentStore serves the read-only site catalog.
type ContentStore interface {
	// ListPhotos returns all photos, optionally filtered by tag.
	ListPhotos(ctx context.Context, tag string) ([]types.Photo, error)
	// GetPhoto returns the photo with the given id.
	GetPhoto(ctx context.Context, id string) (*types.Photo, error)
	// ListProjects returns all projects, optionally only featured ones.
	ListProjects(ctx context.Context, featuredOnly bool) ([]types.Project, error)
	// GetProject returns the project with the given slug.
	GetProject(ctx context.Context, slug string) (*types.Project, error)
	// ListRoadmapItems returns roadmap items, optionally filtered by area
	// and/or status.
	ListRoadmapItems(ctx context.Context, area, status string) ([]types.RoadmapItem, error)
}

// ErrNotFound is returned by ContentStore lookups for unknown ids or slugs.
var ErrNotFound = errNotFound{}

type errNotFound struct{}

func (errNotFound) Error() string { return "not found" }
