package handlers

import (
	"net/http"
	"time"

	"github.com/ilyra-ai/ilyra-sub000/internal/pkg/utils"
)

// HealthHandler serves liveness information
type HealthHandler struct {
	startedAt time.Time
	version   string
}

// NewHealthHandler creates a health handler
func NewHealthHandler(version string) *HealthHandler {
	return &HealthHandler{startedAt: time.Now(), version: version}
}

// Health reports process liveness and uptime
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	utils.WriteSuccess(w, http.StatusOK, map[string]interface{}{
		"status":  "ok",
		"version": h.version,
		"uptime":  time.Since(h.startedAt).String(),
	})
}

// Ready reports readiness. All state is in process, so the server is
// ready as soon as it serves requests.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	utils.WriteSuccess(w, http.StatusOK, map[string]interface{}{
		"status": "ready",
	})
}
