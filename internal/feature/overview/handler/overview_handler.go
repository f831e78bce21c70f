// Package handler provides the HTTP handlers for the dashboard statistics.
package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"academy_backend/internal/api"
	"academy_backend/internal/feature/overview/usecase"
)

// OverviewService defines the aggregation operations the handler depends
// on. Satisfied by the usecase directly or by its caching decorator.
type OverviewService interface {
	GetOverviewStats(ctx context.Context) (*usecase.OverviewStats, error)
	GetTopCourses(ctx context.Context) (*usecase.TopCourses, error)
	GetUserGrowthStats(ctx context.Context) ([]usecase.MonthlyGrowth, error)
}

// OverviewHandler handles the /overview endpoints.
type OverviewHandler struct {
	overview OverviewService
}

// NewOverviewHandler wires the handler with its service.
func NewOverviewHandler(overview OverviewService) *OverviewHandler {
	return &OverviewHandler{overview: overview}
}

// Stats handles GET /overview.
func (h *OverviewHandler) Stats(c *gin.Context) {
	stats, err := h.overview.GetOverviewStats(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	api.Data(c, http.StatusOK, stats)
}

// TopCourses handles GET /overview/courses.
func (h *OverviewHandler) TopCourses(c *gin.Context) {
	top, err := h.overview.GetTopCourses(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	api.Data(c, http.StatusOK, gin.H{"courses": top})
}

// UserGrowth handles GET /overview/user-growth.
func (h *OverviewHandler) UserGrowth(c *gin.Context) {
	growth, err := h.overview.GetUserGrowthStats(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	api.Data(c, http.StatusOK, gin.H{"growth": growth})
}
