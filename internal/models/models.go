// Package models defines the session and schedule records plus the
// request/response schemas for the HTTP API. JSON field names match the
// original service so existing persisted data and frontend clients keep
// working.
package models

import "time"

// Session is a single study session record. Created at session start with
// only ID and StartTime; the remaining fields are written once when the
// session stops.
type Session struct {
	ID                string     `json:"id"`
	StartTime         *time.Time `json:"start_time"`
	EndTime           *time.Time `json:"end_time"`
	DurationMinutes   float64    `json:"duration_minutes"`
	ProductivityScore float64    `json:"productivity_score"`
	ProductiveSeconds float64    `json:"productive_seconds"`
}

// Task is a single task within a study schedule.
type Task struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	DurationMinutes int    `json:"duration_minutes"`
	Completed       bool   `json:"completed"`
}

// Validate reports whether the task is well-formed.
func (t Task) Validate() bool {
	return t.ID != "" && t.DurationMinutes >= 1
}

// StudySchedule is an ordered list of study tasks with optional break
// intervals (minutes) and an optional recurrence pattern such as "daily".
type StudySchedule struct {
	ID         string `json:"id"`
	Tasks      []Task `json:"tasks"`
	Intervals  []int  `json:"intervals,omitempty"`
	Recurrence string `json:"recurrence,omitempty"`
}

// SessionStopRequest is the body for POST /session/stop.
type SessionStopRequest struct {
	SessionID string `json:"session_id"`
}

// SessionStartResponse is returned from POST /session/start.
type SessionStartResponse struct {
	SessionID string `json:"session_id"`
	Message   string `json:"message"`
}

// SessionStopResponse is returned from POST /session/stop.
type SessionStopResponse struct {
	SessionID         string  `json:"session_id"`
	DurationMinutes   float64 `json:"duration_minutes"`
	ProductivityScore float64 `json:"productivity_score"`
	Message           string  `json:"message"`
}

// SessionSummaryResponse is returned from GET /session/{id}.
type SessionSummaryResponse struct {
	Session *Session `json:"session"`
}

// SessionListResponse is returned from GET /sessions.
type SessionListResponse struct {
	Sessions []*Session `json:"sessions"`
}

// ScheduleResponse is returned from POST /schedule.
type ScheduleResponse struct {
	ScheduleID string `json:"schedule_id"`
	Message    string `json:"message"`
}

// RecommendationResponse is returned from GET /recommendation.
type RecommendationResponse struct {
	Action     string  `json:"action"`
	Confidence float64 `json:"confidence"`
}

// HealthResponse is returned from GET /api/health.
type HealthResponse struct {
	Status string `json:"status"`
	App    string `json:"app"`
}
