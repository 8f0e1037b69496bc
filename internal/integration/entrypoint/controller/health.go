// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"context"
	"log/slog"
	"net/http"
	"sort"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/finance-tracker/ledger/internal/application/adapter"
)

// HealthCheck probes one dependency.
type HealthCheck func(ctx context.Context) error

// HealthController handles health check endpoints.
type HealthController struct {
	checks map[string]HealthCheck
	clock  adapter.Clock
}

// HealthResponse represents the health check response.
type HealthResponse struct {
	Status       string            `json:"status"`
	Dependencies map[string]string `json:"dependencies"`
	Database     string            `json:"database"`
	Timestamp    string            `json:"timestamp"`
}

// NewHealthController creates a health controller over the named checks.
// A check named "database" is also reported in the top-level database field.
func NewHealthController(checks map[string]HealthCheck, clock adapter.Clock) *HealthController {
	return &HealthController{
		checks: checks,
		clock:  clock,
	}
}

// Check handles GET /health requests. It answers 503 when any dependency is down.
func (h *HealthController) Check(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	names := make([]string, 0, len(h.checks))
	for name := range h.checks {
		names = append(names, name)
	}
	sort.Strings(names)

	response := HealthResponse{
		Status:       "ok",
		Dependencies: make(map[string]string, len(names)),
		Database:     "disconnected",
		Timestamp:    h.clock.Now().UTC().Format(time.RFC3339),
	}
	for _, name := range names {
		state := "connected"
		if err := h.checks[name](ctx); err != nil {
			slog.Warn("Health check failed", "dependency", name, "error", err)
			state = "disconnected"
			response.Status = "degraded"
		}
		response.Dependencies[name] = state
	}
	if state, ok := response.Dependencies["database"]; ok {
		response.Database = state
	}

	status := http.StatusOK
	if response.Status != "ok" {
		status = http.StatusServiceUnavailable
	}
	c.JSON(status, response)
}
