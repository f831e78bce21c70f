// Package handler provides platform-level HTTP handlers.
package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// HealthHandler serves the unauthenticated health endpoint.
type HealthHandler struct {
	start time.Time
}

// NewHealthHandler creates a HealthHandler anchored to the process start.
func NewHealthHandler() *HealthHandler {
	return &HealthHandler{start: time.Now()}
}

type healthResponse struct {
	Status    string  `json:"status"`
	Uptime    float64 `json:"uptime"`
	Timestamp string  `json:"timestamp"`
}

// Handle responds with the service status, uptime in seconds and the
// current timestamp.
func (h *HealthHandler) Handle(c *gin.Context) {
	c.Header("Cache-Control", "no-store")
	c.JSON(http.StatusOK, healthResponse{
		Status:    "ok",
		Uptime:    time.Since(h.start).Seconds(),
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}
