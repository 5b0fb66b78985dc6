package handler

import (
	"net/http"

	"github.com/shopkori/assistant-platform/internal/events"
	"github.com/shopkori/assistant-platform/internal/session"
)

// HealthHandler handles health check endpoints.
type HealthHandler struct {
	eventsClient *events.Client
	registry     *session.Registry
}

// NewHealthHandler creates a new health handler. eventsClient may be
// nil when transcript publishing is disabled.
func NewHealthHandler(eventsClient *events.Client, registry *session.Registry) *HealthHandler {
	return &HealthHandler{
		eventsClient: eventsClient,
		registry:     registry,
	}
}

// Health handles GET /health
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status": "healthy",
	})
}

// Ready handles GET /ready
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	// A configured but disconnected event stream makes the instance
	// not ready; running without one at all is fine.
	if h.eventsClient != nil && !h.eventsClient.IsConnected() {
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{
			"status": "not ready",
			"reason": "NATS not connected",
		})
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":   "ready",
		"sessions": h.registry.Count(),
	})
}
