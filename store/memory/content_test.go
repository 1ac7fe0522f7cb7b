package memory

import (
	"context"
	"testing"

	"github.com/jstrehler/portfolio-backend/data"
	"github.com/jstrehler/portfolio-backend/store"
	"github.com/jstrehler/portfolio-backend/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCatalog() *data.Catalog {
	return &data.Catalog{
		Photos: []types.Photo{
			{ID: "img-1", Title: "Matterhorn", Tags: []string{"winter", "mountains"}},
			{ID: "img-2", Title: "Waterfall", Tags: []string{"summer", "water"}},
		},
		Projects: []types.Project{
			{Slug: "second", Name: "Second", Featured: false},
			{Slug: "first", Name: "First", Featured: true},
		},
		RoadmapItems: []types.RoadmapItem{
			{ID: "a", Area: types.RoadmapAreaPortfolio, Status: types.RoadmapStatusPlanned},
			{ID: "b", Area: types.RoadmapAreaCLI, Status: types.RoadmapStatusInProgress},
			{ID: "c", Area: types.RoadmapAreaCLI, Status: types.RoadmapStatusPlanned},
		},
	}
}

func TestListPhotosFiltersByTag(t *testing.T) {
	s := NewContentStore(testCatalog())
	ctx := context.Background()

	all, err := s.ListPhotos(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	winter, err := s.ListPhotos(ctx, "winter")
	require.NoError(t, err)
	require.Len(t, winter, 1)
	assert.Equal(t, "img-1", winter[0].ID)

	none, err := s.ListPhotos(ctx, "desert")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestGetPhoto(t *testing.T) {
	s := NewContentStore(testCatalog())
	ctx := context.Background()

	photo, err := s.GetPhoto(ctx, "img-2")
	require.NoError(t, err)
	assert.Equal(t, "Waterfall", photo.Title)

	_, err = s.GetPhoto(ctx, "missing")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestListProjectsFeaturedFirst(t *testing.T) {
	s := NewContentStore(testCatalog())
	ctx := context.Background()

	all, err := s.ListProjects(ctx, false)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "first", all[0].Slug, "featured projects sort first")

	featured, err := s.ListProjects(ctx, true)
	require.NoError(t, err)
	require.Len(t, featured, 1)
	assert.Equal(t, "first", featured[0].Slug)
}

func TestGetProject(t *testing.T) {
	s := NewContentStore(testCatalog())
	ctx := context.Background()

	project, err := s.GetProject(ctx, "second")
	require.NoError(t, err)
	assert.Equal(t, "Second", project.Name)

	_, err = s.GetProject(ctx, "missing")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestListRoadmapItemsFilters(t *testing.T) {
	s := NewContentStore(testCatalog())
	ctx := context.Background()

	all, err := s.ListRoadmapItems(ctx, "", "")
	require.NoError(t, err)
	assert.Len(t, all, 3)

	cli, err := s.ListRoadmapItems(ctx, types.RoadmapAreaCLI, "")
	require.NoError(t, err)
	assert.Len(t, cli, 2)

	cliPlanned, err := s.ListRoadmapItems(ctx, types.RoadmapAreaCLI, types.RoadmapStatusPlanned)
	require.NoError(t, err)
	require.Len(t, cliPlanned, 1)
	assert.Equal(t, "c", cliPlanned[0].ID)
}
