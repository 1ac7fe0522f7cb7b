package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jstrehler/portfolio-backend/data"
	"github.com/jstrehler/portfolio-backend/middleware"
	"github.com/jstrehler/portfolio-backend/store/memory"
	"github.com/jstrehler/portfolio-backend/types"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newContentRouter(t *testing.T) *gin.Engine {
	t.Helper()
	catalog := &data.Catalog{
		Photos: []types.Photo{
			{ID: "img-1", Title: "Matterhorn", Tags: []string{"winter"}},
			{ID: "img-2", Title: "Waterfall", Tags: []string{"summer"}},
		},
		Projects: []types.Project{
			{Slug: "clix-cli", Name: "CLI_X", Featured: true},
			{Slug: "webshop", Name: "Shop", Featured: false},
		},
		RoadmapItems: []types.RoadmapItem{
			{ID: "a", Area: "portfolio", Status: "planned"},
			{ID: "b", Area: "cli", Status: "in-progress"},
		},
	}
	handler := NewContentHandler(memory.NewContentStore(catalog))

	r := gin.New()
	r.Use(middleware.ErrorHandler())
	r.GET("/v1/photos", handler.ListPhotos)
	r.GET("/v1/photos/:id", handler.GetPhoto)
	r.GET("/v1/projects", handler.ListProjects)
	r.GET("/v1/projects/:slug", handler.GetProject)
	r.GET("/v1/roadmap", handler.ListRoadmapItems)
	return r
}

func get(r *gin.Engine, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", path, nil)
	r.ServeHTTP(w, req)
	return w
}

func TestListPhotos(t *testing.T) {
	r := newContentRouter(t)

	w := get(r, "/v1/photos")
	assert.Equal(t, http.StatusOK, w.Code)

	var photos []types.Photo
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &photos))
	assert.Len(t, photos, 2)

	w = get(r, "/v1/photos?tag=winter")
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &photos))
	require.Len(t, photos, 1)
	assert.Equal(t, "img-1", photos[0].ID)
}

func TestGetPhotoNotFound(t *testing.T) {
	r := newContentRouter(t)

	w := get(r, "/v1/photos/img-2")
	assert.Equal(t, http.StatusOK, w.Code)

	w = get(r, "/v1/photos/missing")
	assert.Equal(t, http.StatusNotFound, w.Code)

	var resp types.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Photo not found", resp.Error)
}

func TestListProjects(t *testing.T) {
	r := newContentRouter(t)

	w := get(r, "/v1/projects?featured=true")
	assert.Equal(t, http.StatusOK, w.Code)

	var projects []types.Project
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &projects))
	require.Len(t, projects, 1)
	assert.Equal(t, "clix-cli", projects[0].Slug)
}

func TestGetProject(t *testing.T) {
	r := newContentRouter(t)

	w := get(r, "/v1/projects/webshop")
	assert.Equal(t, http.StatusOK, w.Code)

	w = get(r, "/v1/projects/missing")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListRoadmap(t *testing.T) {
	r := newContentRouter(t)

	w := get(r, "/v1/roadmap?area=cli")
	assert.Equal(t, http.StatusOK, w.Code)

	var items []types.RoadmapItem
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &items))
	require.Len(t, items, 1)
	assert.Equal(t, "b", items[0].ID)
}
