package handlers

import (
	"net/http"

	"github.com/jstrehler/portfolio-backend/services"
	"github.com/jstrehler/portfolio-backend/types"
	"github.com/gin-gonic/gin"
)

// HealthHandler exposes liveness, readiness and detailed health endpoints.
type HealthHandler struct {
	healthService *services.HealthService
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(healthService *services.HealthService) *HealthHandler {
	return &HealthHandler{healthService: healthService}
}

// DetailedHealth reports per-component health.
func (h *HealthHandler) DetailedHealth(c *gin.Context) {
	health := h.healthService.CheckHealth(c.Request.Context())

	statusCode := http.StatusOK
	if health.Status == types.HealthStatusDown {
		statusCode = http.StatusServiceUnavailable
	}
	c.JSON(statusCode, health)
}

// LivenessCheck reports that the process is running.
func (h *HealthHandler) LivenessCheck(c *gin.Context) {
	c.JSON(http.StatusOK, types.StatusResponse{Status: "alive"})
}

// ReadinessCheck reports whether the service can accept traffic.
func (h *HealthHandler) ReadinessCheck(c *gin.Context) {
	if !h.healthService.IsReady(c.Request.Context()) {
		c.JSON(http.StatusServiceUnavailable, types.StatusResponse{Status: "not ready"})
		return
	}
	c.JSON(http.StatusOK, types.StatusResponse{Status: "ready"})
}
