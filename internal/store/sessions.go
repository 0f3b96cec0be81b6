package store

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/tanav-bollam/UHACCS-Hackathon/internal/models"
)

// SessionStore handles session record CRUD on SQLite.
type SessionStore struct {
	db *DB
}

// NewSessionStore creates a new session store.
func NewSessionStore(db *DB) *SessionStore {
	return &SessionStore{db: db}
}

// Create inserts a new session record.
func (s *SessionStore) Create(sess *models.Session) error {
	_, err := s.db.Exec(`
		INSERT INTO sessions (id, start_time, end_time, duration_minutes, productivity_score, productive_seconds)
		VALUES (?, ?, ?, ?, ?, ?)
	`, sess.ID, formatTime(sess.StartTime), formatTime(sess.EndTime),
		sess.DurationMinutes, sess.ProductivityScore, sess.ProductiveSeconds)
	if err != nil {
		return fmt.Errorf("insert session: %w", err)
	}
	return nil
}

// GetByID fetches a session by ID. Returns (nil, nil) when not found.
func (s *SessionStore) GetByID(id string) (*models.Session, error) {
	row := s.db.QueryRow(`
		SELECT id, start_time, end_time, duration_minutes, productivity_score, productive_seconds
		FROM sessions WHERE id = ?
	`, id)

	sess, err := scanSession(row.Scan)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get session: %w", err)
	}
	return sess, nil
}

// Update overwrites the mutable fields of an existing session record.
func (s *SessionStore) Update(sess *models.Session) error {
	_, err := s.db.Exec(`
		UPDATE sessions
		SET start_time = ?, end_time = ?, duration_minutes = ?, productivity_score = ?, productive_seconds = ?
		WHERE id = ?
	`, formatTime(sess.StartTime), formatTime(sess.EndTime),
		sess.DurationMinutes, sess.ProductivityScore, sess.ProductiveSeconds, sess.ID)
	if err != nil {
		return fmt.Errorf("update session: %w", err)
	}
	return nil
}

// ListRecent returns the most recent sessions, ordered by end time falling
// back to start time, newest first.
func (s *SessionStore) ListRecent(limit int) ([]*models.Session, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(`
		SELECT id, start_time, end_time, duration_minutes, productivity_score, productive_seconds
		FROM sessions
		ORDER BY COALESCE(end_time, start_time) DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	defer rows.Close()

	var sessions []*models.Session
	for rows.Next() {
		sess, err := scanSession(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scan session: %w", err)
		}
		sessions = append(sessions, sess)
	}
	return sessions, rows.Err()
}

func scanSession(scan func(dest ...any) error) (*models.Session, error) {
	var sess models.Session
	var startTime, endTime sql.NullString

	if err := scan(&sess.ID, &startTime, &endTime,
		&sess.DurationMinutes, &sess.ProductivityScore, &sess.ProductiveSeconds); err != nil {
		return nil, err
	}

	var err error
	if sess.StartTime, err = parseTime(startTime); err != nil {
		return nil, fmt.Errorf("parse start_time: %w", err)
	}
	if sess.EndTime, err = parseTime(endTime); err != nil {
		return nil, fmt.Errorf("parse end_time: %w", err)
	}
	return &sess, nil
}

// Timestamps are stored as RFC 3339 text so the table stays readable and
// compatible with the ISO strings already persisted.
func formatTime(t *time.Time) any {
	if t == nil {
		return nil
	}
	return t.UTC().Format(time.RFC3339Nano)
}

func parseTime(v sql.NullString) (*time.Time, error) {
	if !v.Valid || v.String == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339Nano, v.String)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
