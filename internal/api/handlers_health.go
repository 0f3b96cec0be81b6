package api

import (
	"net/http"

	"github.com/tanav-bollam/UHACCS-Hackathon/internal/models"
	"github.com/tanav-bollam/UHACCS-Hackathon/internal/store"
)

const appName = "FocusTutor"

// HealthHandler reports service health.
type HealthHandler struct {
	db *store.DB
}

// NewHealthHandler creates a new health handler.
func NewHealthHandler(db *store.DB) *HealthHandler {
	return &HealthHandler{db: db}
}

// Health handles GET /api/health
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	resp := models.HealthResponse{
		Status: "ok",
		App:    appName,
	}

	if _, err := h.db.SessionCount(); err != nil {
		resp.Status = "degraded"
		writeJSON(w, http.StatusServiceUnavailable, resp)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}
