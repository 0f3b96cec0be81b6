package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/tanav-bollam/UHACCS-Hackathon/internal/models"
	"github.com/tanav-bollam/UHACCS-Hackathon/internal/tracker"
)

// SessionHandler handles study session HTTP requests.
type SessionHandler struct {
	svc *tracker.Service
}

// NewSessionHandler creates a new session handler.
func NewSessionHandler(svc *tracker.Service) *SessionHandler {
	return &SessionHandler{svc: svc}
}

// Start handles POST /session/start
func (h *SessionHandler) Start(w http.ResponseWriter, r *http.Request) {
	id, err := h.svc.StartSession()
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, models.SessionStartResponse{
		SessionID: id,
		Message:   "Session started",
	})
}

// Stop handles POST /session/stop
func (h *SessionHandler) Stop(w http.ResponseWriter, r *http.Request) {
	var req models.SessionStopRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	if req.SessionID == "" {
		writeError(w, http.StatusBadRequest, "session_id is required")
		return
	}

	summary, err := h.svc.StopSession(req.SessionID)
	if errors.Is(err, tracker.ErrSessionNotFound) {
		writeError(w, http.StatusNotFound, "Session not found or already stopped")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, models.SessionStopResponse{
		SessionID:         summary.SessionID,
		DurationMinutes:   summary.DurationMinutes,
		ProductivityScore: summary.ProductivityScore,
		Message:           "Session stopped",
	})
}

// Get handles GET /session/{id}
func (h *SessionHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	sess, err := h.svc.GetSession(id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if sess == nil {
		writeError(w, http.StatusNotFound, "Session not found")
		return
	}

	writeJSON(w, http.StatusOK, models.SessionSummaryResponse{Session: sess})
}

// List handles GET /sessions
func (h *SessionHandler) List(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	sessions, err := h.svc.ListRecent(limit)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	if sessions == nil {
		sessions = []*models.Session{}
	}
	writeJSON(w, http.StatusOK, models.SessionListResponse{Sessions: sessions})
}
