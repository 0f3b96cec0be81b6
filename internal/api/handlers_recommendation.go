package api

import (
	"net/http"

	"github.com/tanav-bollam/UHACCS-Hackathon/internal/models"
	"github.com/tanav-bollam/UHACCS-Hackathon/internal/tracker"
)

// RecommendationHandler serves tutor recommendations.
type RecommendationHandler struct {
	svc *tracker.Service
}

// NewRecommendationHandler creates a new recommendation handler.
func NewRecommendationHandler(svc *tracker.Service) *RecommendationHandler {
	return &RecommendationHandler{svc: svc}
}

// Get handles GET /recommendation
func (h *RecommendationHandler) Get(w http.ResponseWriter, r *http.Request) {
	sessionID := r.URL.Query().Get("session_id")

	action, confidence := h.svc.Recommend(sessionID)

	writeJSON(w, http.StatusOK, models.RecommendationResponse{
		Action:     string(action),
		Confidence: confidence,
	})
}
