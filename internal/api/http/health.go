package http

import (
	"net/http"

	"github.com/planit-app/planit-server/internal/api/respond"
)

// healthReporter is the slice of the service health checker the handler needs.
type healthReporter interface {
	IsHealthy() bool
}

type HealthHandler struct {
	checker healthReporter
}

func NewHealthHandler(checker healthReporter) *HealthHandler {
	return &HealthHandler{checker: checker}
}

// Health GET /api/health
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	if h.checker != nil && !h.checker.IsHealthy() {
		respond.WriteJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unhealthy"})
		return
	}
	respond.WriteJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}
