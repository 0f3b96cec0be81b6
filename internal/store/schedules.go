package store

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/tanav-bollam/UHACCS-Hackathon/internal/models"
)

// ScheduleStore handles study schedule CRUD on SQLite. Tasks and break
// intervals are stored as JSON columns, matching the existing schema.
type ScheduleStore struct {
	db *DB
}

// NewScheduleStore creates a new schedule store.
func NewScheduleStore(db *DB) *ScheduleStore {
	return &ScheduleStore{db: db}
}

// Save inserts or replaces a schedule.
func (s *ScheduleStore) Save(schedule *models.StudySchedule) error {
	tasksJSON, err := json.Marshal(schedule.Tasks)
	if err != nil {
		return fmt.Errorf("marshal tasks: %w", err)
	}

	var intervalsJSON any
	if schedule.Intervals != nil {
		b, err := json.Marshal(schedule.Intervals)
		if err != nil {
			return fmt.Errorf("marshal intervals: %w", err)
		}
		intervalsJSON = string(b)
	}

	var recurrence any
	if schedule.Recurrence != "" {
		recurrence = schedule.Recurrence
	}

	_, err = s.db.Exec(`
		INSERT OR REPLACE INTO schedules (id, tasks_json, intervals_json, recurrence)
		VALUES (?, ?, ?, ?)
	`, schedule.ID, string(tasksJSON), intervalsJSON, recurrence)
	if err != nil {
		return fmt.Errorf("save schedule: %w", err)
	}
	return nil
}

// GetByID fetches a schedule by ID. Returns (nil, nil) when not found.
func (s *ScheduleStore) GetByID(id string) (*models.StudySchedule, error) {
	var schedule models.StudySchedule
	var tasksJSON string
	var intervalsJSON, recurrence sql.NullString

	err := s.db.QueryRow(`
		SELECT id, tasks_json, intervals_json, recurrence
		FROM schedules WHERE id = ?
	`, id).Scan(&schedule.ID, &tasksJSON, &intervalsJSON, &recurrence)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get schedule: %w", err)
	}

	if err := json.Unmarshal([]byte(tasksJSON), &schedule.Tasks); err != nil {
		return nil, fmt.Errorf("unmarshal tasks: %w", err)
	}
	if intervalsJSON.Valid && intervalsJSON.String != "" {
		if err := json.Unmarshal([]byte(intervalsJSON.String), &schedule.Intervals); err != nil {
			return nil, fmt.Errorf("unmarshal intervals: %w", err)
		}
	}
	if recurrence.Valid {
		schedule.Recurrence = recurrence.String
	}
	return &schedule, nil
}
