// Package tracker orchestrates live study sessions: it owns the timer
// pair for every open session, feeds them periodic attention samples, and
// queries the recommendation agent against live metrics.
package tracker

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/tanav-bollam/UHACCS-Hackathon/internal/analytics"
	"github.com/tanav-bollam/UHACCS-Hackathon/internal/models"
	"github.com/tanav-bollam/UHACCS-Hackathon/internal/rl"
	"github.com/tanav-bollam/UHACCS-Hackathon/internal/timers"
	"github.com/tanav-bollam/UHACCS-Hackathon/internal/vision"
)

// ErrSessionNotFound is returned when stopping or syncing a session id
// that is not currently open.
var ErrSessionNotFound = errors.New("session not found")

// SessionRecorder persists session records. Failures are not retried
// here; they propagate to the request boundary.
type SessionRecorder interface {
	Create(sess *models.Session) error
	GetByID(id string) (*models.Session, error)
	Update(sess *models.Session) error
	ListRecent(limit int) ([]*models.Session, error)
}

// FrameSource supplies camera frames for attention sampling.
type FrameSource interface {
	CaptureFrame() (*vision.Frame, error)
}

// AttentionChecker decides whether a frame shows an attentive user.
type AttentionChecker interface {
	IsAttentive(frame *vision.Frame) bool
}

// liveSession is the timer pair for one open session.
type liveSession struct {
	sessionTimer      *timers.SessionTimer
	productivityTimer *timers.ProductivityTimer
}

// Summary is the result of stopping a session.
type Summary struct {
	SessionID         string
	DurationMinutes   float64
	ProductivityScore float64
	ProductiveSeconds float64
}

// Service coordinates timers, attention sampling, persistence, and the
// recommendation agent. All mutable state (open sessions, the shared
// environment, the Q-table) is guarded by one mutex; the agent and
// environment are shared across sessions, with no per-session isolation.
type Service struct {
	mu       sync.Mutex
	live     map[string]*liveSession
	records  SessionRecorder
	camera   FrameSource
	detector AttentionChecker
	agent    *rl.Agent
	env      *rl.Environment
	interval time.Duration
	clock    func() time.Time
	logger   *slog.Logger
}

// New creates the orchestrator service. interval is the cadence of the
// background attention sampling loop.
func New(
	records SessionRecorder,
	camera FrameSource,
	detector AttentionChecker,
	agent *rl.Agent,
	env *rl.Environment,
	interval time.Duration,
	logger *slog.Logger,
) *Service {
	return &Service{
		live:     make(map[string]*liveSession),
		records:  records,
		camera:   camera,
		detector: detector,
		agent:    agent,
		env:      env,
		interval: interval,
		clock:    time.Now,
		logger:   logger,
	}
}

// StartSession opens a new study session: starts its timer pair, persists
// the initial record, and returns the fresh session id.
func (s *Service) StartSession() (string, error) {
	id := uuid.New().String()

	sessionTimer := timers.NewSessionTimerWithClock(s.clock)
	productivityTimer := timers.NewProductivityTimerWithClock(s.clock)
	sessionTimer.Start()
	productivityTimer.Start()

	now := s.clock()
	if err := s.records.Create(&models.Session{ID: id, StartTime: &now}); err != nil {
		return "", fmt.Errorf("create session record: %w", err)
	}

	s.mu.Lock()
	s.live[id] = &liveSession{
		sessionTimer:      sessionTimer,
		productivityTimer: productivityTimer,
	}
	s.mu.Unlock()

	s.logger.Info("session started", "session_id", id)
	return id, nil
}

// StopSession closes an open session: takes one final attention sample,
// stops both timers, computes the productivity score, finalizes the
// persisted record, and returns the summary. Returns ErrSessionNotFound
// for an unknown or already-closed id.
func (s *Service) StopSession(id string) (*Summary, error) {
	s.mu.Lock()
	entry, ok := s.live[id]
	if !ok {
		s.mu.Unlock()
		return nil, ErrSessionNotFound
	}
	delete(s.live, id)
	s.mu.Unlock()

	if frame, err := s.camera.CaptureFrame(); err == nil {
		entry.productivityTimer.Update(s.detector.IsAttentive(frame))
	}

	entry.sessionTimer.Stop()
	entry.productivityTimer.Stop()

	totalSeconds := entry.sessionTimer.Elapsed()
	productiveSeconds := entry.productivityTimer.ProductiveSeconds()
	score := analytics.Score(productiveSeconds, totalSeconds)

	summary := &Summary{
		SessionID:         id,
		DurationMinutes:   totalSeconds / 60,
		ProductivityScore: score,
		ProductiveSeconds: productiveSeconds,
	}

	record, err := s.records.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("load session record: %w", err)
	}
	if record != nil {
		now := s.clock()
		record.EndTime = &now
		record.DurationMinutes = summary.DurationMinutes
		record.ProductivityScore = score
		record.ProductiveSeconds = productiveSeconds
		if err := s.records.Update(record); err != nil {
			return nil, fmt.Errorf("finalize session record: %w", err)
		}
	}

	s.logger.Info("session stopped",
		"session_id", id,
		"duration_minutes", summary.DurationMinutes,
		"productivity_score", score,
	)
	return summary, nil
}

// GetSession fetches a persisted session record. Returns (nil, nil) when
// the id is unknown.
func (s *Service) GetSession(id string) (*models.Session, error) {
	return s.records.GetByID(id)
}

// ListRecent returns the most recent session records. limit is clamped to
// [1, 100], defaulting to 20.
func (s *Service) ListRecent(limit int) ([]*models.Session, error) {
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	return s.records.ListRecent(limit)
}

// Recommend asks the agent for a tutoring action. When sessionID names an
// open session, the shared environment is first synced with that
// session's live metrics. The resulting transition is applied back to the
// agent as a training update.
func (s *Service) Recommend(sessionID string) (rl.Action, float64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if sessionID != "" {
		if entry, ok := s.live[sessionID]; ok {
			total := entry.productivityTimer.TotalElapsed()
			productive := entry.productivityTimer.ProductiveSeconds()
			ratio := 0.0
			if total > 0 {
				ratio = productive / total
			}
			s.env.SetState(rl.StateUpdate{
				AttentionLevel:       &ratio,
				TimeInSessionSeconds: &total,
				ProductiveRatio:      &ratio,
			})
		}
	}

	state := s.env.State()
	action, confidence := s.agent.SelectAction(state)
	next, reward, _ := s.env.Step(action)
	s.agent.Update(state, action, reward, &next)
	return action, confidence
}

// ActiveSessions returns the number of currently open sessions.
func (s *Service) ActiveSessions() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.live)
}
