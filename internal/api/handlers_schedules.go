package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/tanav-bollam/UHACCS-Hackathon/internal/models"
	"github.com/tanav-bollam/UHACCS-Hackathon/internal/store"
)

// ScheduleHandler handles study schedule HTTP requests.
type ScheduleHandler struct {
	schedules *store.ScheduleStore
}

// NewScheduleHandler creates a new schedule handler.
func NewScheduleHandler(schedules *store.ScheduleStore) *ScheduleHandler {
	return &ScheduleHandler{schedules: schedules}
}

// Submit handles POST /schedule
func (h *ScheduleHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var schedule models.StudySchedule
	if err := decodeJSON(r, &schedule); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	if schedule.ID == "" {
		writeError(w, http.StatusBadRequest, "id is required")
		return
	}
	for _, task := range schedule.Tasks {
		if !task.Validate() {
			writeError(w, http.StatusBadRequest, "tasks require an id and a duration of at least 1 minute")
			return
		}
	}

	if err := h.schedules.Save(&schedule); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, models.ScheduleResponse{
		ScheduleID: schedule.ID,
		Message:    "Schedule saved",
	})
}

// Get handles GET /schedule/{id}
func (h *ScheduleHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	schedule, err := h.schedules.GetByID(id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if schedule == nil {
		writeError(w, http.StatusNotFound, "Schedule not found")
		return
	}

	writeJSON(w, http.StatusOK, schedule)
}
