package handlers

import (
	"errors"
	"net/http"

	apperrors "github.com/jstrehler/portfolio-backend/errors"
	"github.com/jstrehler/portfolio-backend/store"
	"github.com/gin-gonic/gin"
)

// ContentHandler serves the read-only site catalog: photo gallery metadata,
// the projects showcase and the public roadmap.
type ContentHandler struct {
	contentStore store.ContentStore
}

// NewContentHandler creates a new ContentHandler.
func NewContentHandler(contentStore store.ContentStore) *ContentHandler {
	return &ContentHandler{contentStore: contentStore}
}

// ListPhotos godoc
// @Summary      List gallery photos
// @Produce      json
// @Param        tag  query  string  false  "Filter by tag"
// @Success      200  {array}  types.Photo
// @Router       /v1/photos [get]
func (h *ContentHandler) ListPhotos(c *gin.Context) {
	photos, err := h.contentStore.ListPhotos(c.Request.Context(), c.Query("tag"))
	if err != nil {
		_ = c.Error(apperrors.InternalServerError(err))
		return
	}
	c.JSON(http.StatusOK, photos)
}

// GetPhoto godoc
// @Summary      Get one photo by id
// @Produce      json
// @Param        id  path  string  true  "Photo ID"
// @Success      200  {object}  types.Photo
// @Failure      404  {object}  types.ErrorResponse
// @Router       /v1/photos/{id} [get]
func (h *ContentHandler) GetPhoto(c *gin.Context) {
	id := c.Param("id")
	photo, err := h.contentStore.GetPhoto(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			_ = c.Error(apperrors.NotFound("Photo", id))
			return
		}
		_ = c.Error(apperrors.InternalServerError(err))
		return
	}
	c.JSON(http.StatusOK, photo)
}

// ListProjects godoc
// @Summary      List showcase projects
// @Produce      json
// @Param        featured  query  bool  false  "Only featured projects"
// @Success      200  {array}  types.Project
// @Router       /v1/projects [get]
func (h *ContentHandler) ListProjects(c *gin.Context) {
	featuredOnly := c.Query("featured") == "true"
	projects, err := h.contentStore.ListProjects(c.Request.Context(), featuredOnly)
	if err != nil {
		_ = c.Error(apperrors.InternalServerError(err))
		return
	}
	c.JSON(http.StatusOK, projects)
}

// GetProject godoc
// @Summary      Get one project by slug
// @Produce      json
// @Param        slug  path  string  true  "Project slug"
// @Success      200  {object}  types.Project
// @Failure      404  {object}  types.ErrorResponse
// @Router       /v1/projects/{slug} [get]
func (h *ContentHandler) GetProject(c *gin.Context) {
	slug := c.Param("slug")
	project, err := h.contentStore.GetProject(c.Request.Context(), slug)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			_ = c.Error(apperrors.NotFound("Project", slug))
			return
		}
		_ = c.Error(apperrors.InternalServerError(err))
		return
	}
	c.JSON(http.StatusOK, project)
}

// ListRoadmapItems godoc
// @Summary      List roadmap items
// @Produce      json
// @Param        area    query  string  false  "Filter by area"
// @Param        status  query  string  false  "Filter by status"
// @Success      200  {array}  types.RoadmapItem
// @Router       /v1/roadmap [get]
func (h *ContentHandler) ListRoadmapItems(c *gin.Context) {
	items, err := h.contentStore.ListRoadmapItems(c.Request.Context(), c.Query("area"), c.Query("status"))
	if err != nil {
		_ = c.Error(apperrors.InternalServerError(err))
		return
	}
	c.JSON(http.StatusOK, items)
}
