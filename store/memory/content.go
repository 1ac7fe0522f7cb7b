package memory

import (
	"context"

	"github.com/jstrehler/portfolio-backend/data"
	"github.com/jstrehler/portfolio-backend/store"
	"github.com/jstrehler/portfolio-backend/types"
)

// ContentStore serves the embedded site catalog. The catalog is immutable
// after construction, so reads need no synchronization.
type ContentStore struct {
	catalog *data.Catalog
}

// NewContentStore wraps a loaded catalog.
func NewContentStore(catalog *data.Catalog) *ContentStore {
	return &ContentStore{catalog: catalog}
}

// ListPhotos returns all photos, optionally filtered by tag.
func (s *ContentStore) ListPhotos(_ context.Context, tag string) ([]types.Photo, error) {
	if tag == "" {
		return s.catalog.Photos, nil
	}
	filtered := make([]types.Photo, 0, len(s.catalog.Photos))
	for _, p := range s.catalog.Photos {
		for _, t := range p.Tags {
			if t == tag {
				filtered = append(filtered, p)
				break
			}
		}
	}
	return filtered, nil
}

// GetPhoto returns the photo with the given id.
func (s *ContentStore) GetPhoto(_ context.Context, id string) (*types.Photo, error) {
	for i := range s.catalog.Photos {
		if s.catalog.Photos[i].ID == id {
			return &s.catalog.Photos[i], nil
		}
	}
	return nil, store.ErrNotFound
}

// ListProjects returns all projects, optionally only featured ones.
// Featured projects sort ahead of the rest, preserving catalog order within
// each group.
func (s *ContentStore) ListProjects(_ context.Context, featuredOnly bool) ([]types.Project, error) {
	projects := make([]types.Project, 0, len(s.catalog.Projects))
	for _, p := range s.catalog.Projects {
		if p.Featured {
			projects = append(projects, p)
		}
	}
	if featuredOnly {
		return projects, nil
	}
	for _, p := range s.catalog.Projects {
		if !p.Featured {
			projects = append(projects, p)
		}
	}
	return projects, nil
}

// GetProject returns the project with the given slug.
func (s *ContentStore) GetProject(_ context.Context, slug string) (*types.Project, error) {
	for i := range s.catalog.Projects {
		if s.catalog.Projects[i].Slug == slug {
			return &s.catalog.Projects[i], nil
		}
	}
	return nil, store.ErrNotFound
}

// ListRoadmapItems returns roadmap items, optionally filtered by area and/or
// status.
func (s *ContentStore) ListRoadmapItems(_ context.Context, area, status string) ([]types.RoadmapItem, error) {
	if area == "" && status == "" {
		return s.catalog.RoadmapItems, nil
	}
	filtered := make([]types.RoadmapItem, 0, len(s.catalog.RoadmapItems))
	for _, item := range s.catalog.RoadmapItems {
		if area != "" && item.Area != area {
			continue
		}
		if status != "" && item.Status != status {
			continue
		}
		filtered = append(filtered, item)
	}
	return filtered, nil
}
