package tracker

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sort"
	"testing"
	"time"

	"github.com/tanav-bollam/UHACCS-Hackathon/internal/models"
	"github.com/tanav-bollam/UHACCS-Hackathon/internal/rl"
	"github.com/tanav-bollam/UHACCS-Hackathon/internal/vision"
)

// memRecorder is an in-memory SessionRecorder for tests.
type memRecorder struct {
	sessions map[string]*models.Session
}

func newMemRecorder() *memRecorder {
	return &memRecorder{sessions: make(map[string]*models.Session)}
}

func (m *memRecorder) Create(sess *models.Session) error {
	cp := *sess
	m.sessions[sess.ID] = &cp
	return nil
}

func (m *memRecorder) GetByID(id string) (*models.Session, error) {
	sess, ok := m.sessions[id]
	if !ok {
		return nil, nil
	}
	cp := *sess
	return &cp, nil
}

func (m *memRecorder) Update(sess *models.Session) error {
	cp := *sess
	m.sessions[sess.ID] = &cp
	return nil
}

func (m *memRecorder) ListRecent(limit int) ([]*models.Session, error) {
	var out []*models.Session
	for _, sess := range m.sessions {
		cp := *sess
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// scriptedDetector reports a settable attention value.
type scriptedDetector struct {
	attentive bool
}

func (d *scriptedDetector) IsAttentive(frame *vision.Frame) bool {
	return d.attentive
}

// failingCamera always fails to capture.
type failingCamera struct{}

func (failingCamera) CaptureFrame() (*vision.Frame, error) {
	return nil, errors.New("capture failed")
}

type fixture struct {
	svc      *Service
	recorder *memRecorder
	detector *scriptedDetector
	clock    *fakeClock
}

type fakeClock struct {
	t time.Time
}

func (c *fakeClock) now() time.Time {
	return c.t
}

func (c *fakeClock) advance(d time.Duration) {
	c.t = c.t.Add(d)
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	recorder := newMemRecorder()
	detector := &scriptedDetector{attentive: true}
	clock := &fakeClock{t: time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)}

	svc := New(
		recorder,
		vision.NewCamera(0, true),
		detector,
		rl.NewAgentConfigured(rl.DefaultLearningRate, rl.DefaultGamma, 0),
		rl.NewEnvironment(),
		2*time.Second,
		slog.New(slog.NewTextHandler(io.Discard, nil)),
	)
	svc.clock = clock.now
	return &fixture{svc: svc, recorder: recorder, detector: detector, clock: clock}
}

func TestStartSession(t *testing.T) {
	fx := newFixture(t)

	id, err := fx.svc.StartSession()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id == "" {
		t.Fatal("expected non-empty session id")
	}
	if fx.svc.ActiveSessions() != 1 {
		t.Fatalf("expected 1 active session, got %d", fx.svc.ActiveSessions())
	}

	record, err := fx.svc.GetSession(id)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if record == nil {
		t.Fatal("expected persisted record")
	}
	if record.StartTime == nil {
		t.Fatal("expected start time on fresh record")
	}
	if record.EndTime != nil {
		t.Fatal("expected nil end time on fresh record")
	}
}

func TestStopSession(t *testing.T) {
	t.Run("unknown id fails with not found", func(t *testing.T) {
		fx := newFixture(t)
		if _, err := fx.svc.StopSession("nope"); !errors.Is(err, ErrSessionNotFound) {
			t.Fatalf("expected ErrSessionNotFound, got %v", err)
		}
	})

	t.Run("second stop fails with not found", func(t *testing.T) {
		fx := newFixture(t)
		id, _ := fx.svc.StartSession()
		if _, err := fx.svc.StopSession(id); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := fx.svc.StopSession(id); !errors.Is(err, ErrSessionNotFound) {
			t.Fatalf("expected ErrSessionNotFound, got %v", err)
		}
	})

	t.Run("finalizes record with score and duration", func(t *testing.T) {
		fx := newFixture(t)
		id, _ := fx.svc.StartSession()

		// 100 seconds, sampled every second: 80 attentive, 20 not,
		// evenly spaced.
		for i := 0; i < 100; i++ {
			fx.clock.advance(time.Second)
			fx.detector.attentive = i%5 != 4
			fx.svc.sampleOnce()
		}
		fx.detector.attentive = true

		summary, err := fx.svc.StopSession(id)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		wantMinutes := 100.0 / 60.0
		if diff := summary.DurationMinutes - wantMinutes; diff > 1e-9 || diff < -1e-9 {
			t.Fatalf("expected %f minutes, got %f", wantMinutes, summary.DurationMinutes)
		}
		if diff := summary.ProductivityScore - 0.8; diff > 1e-9 || diff < -1e-9 {
			t.Fatalf("expected score 0.8, got %f", summary.ProductivityScore)
		}
		if diff := summary.ProductiveSeconds - 80; diff > 1e-9 || diff < -1e-9 {
			t.Fatalf("expected 80 productive seconds, got %f", summary.ProductiveSeconds)
		}

		record, err := fx.svc.GetSession(id)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if record.EndTime == nil {
			t.Fatal("expected end time on finalized record")
		}
		if record.ProductivityScore != summary.ProductivityScore {
			t.Fatalf("record score %f != summary score %f",
				record.ProductivityScore, summary.ProductivityScore)
		}
		if fx.svc.ActiveSessions() != 0 {
			t.Fatalf("expected 0 active sessions, got %d", fx.svc.ActiveSessions())
		}
	})
}

func TestSampling(t *testing.T) {
	t.Run("one sample feeds every open session", func(t *testing.T) {
		fx := newFixture(t)
		a, _ := fx.svc.StartSession()
		b, _ := fx.svc.StartSession()

		fx.clock.advance(2 * time.Second)
		fx.svc.sampleOnce()

		fx.detector.attentive = false
		sa, _ := fx.svc.StopSession(a)
		sb, _ := fx.svc.StopSession(b)
		if sa.ProductiveSeconds != 2 || sb.ProductiveSeconds != 2 {
			t.Fatalf("expected 2 productive seconds each, got %f and %f",
				sa.ProductiveSeconds, sb.ProductiveSeconds)
		}
	})

	t.Run("capture failure is swallowed", func(t *testing.T) {
		fx := newFixture(t)
		fx.svc.camera = failingCamera{}
		id, _ := fx.svc.StartSession()

		fx.clock.advance(2 * time.Second)
		fx.svc.sampleOnce() // must not panic or count time

		summary, err := fx.svc.StopSession(id)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if summary.ProductiveSeconds != 0 {
			t.Fatalf("expected 0 productive seconds, got %f", summary.ProductiveSeconds)
		}
	})

	t.Run("run exits on cancellation", func(t *testing.T) {
		fx := newFixture(t)
		fx.svc.interval = 5 * time.Millisecond

		ctx, cancel := context.WithCancel(context.Background())
		done := make(chan struct{})
		go func() {
			fx.svc.Run(ctx)
			close(done)
		}()

		time.Sleep(20 * time.Millisecond)
		cancel()

		select {
		case <-done:
		case <-time.After(time.Second):
			t.Fatal("sampler did not stop after cancellation")
		}
	})
}

func TestRecommend(t *testing.T) {
	t.Run("returns a known action with unit confidence", func(t *testing.T) {
		fx := newFixture(t)
		action, confidence := fx.svc.Recommend("")
		switch action {
		case rl.ActionContinue, rl.ActionTakeBreak, rl.ActionEncourage:
		default:
			t.Fatalf("unexpected action %q", action)
		}
		if confidence < 0 || confidence > 1 {
			t.Fatalf("confidence %f out of range", confidence)
		}
	})

	t.Run("repeated calls without session id do not fail", func(t *testing.T) {
		fx := newFixture(t)
		fx.svc.Recommend("")
		fx.svc.Recommend("")
	})

	t.Run("open session syncs environment metrics", func(t *testing.T) {
		fx := newFixture(t)
		id, _ := fx.svc.StartSession()

		fx.clock.advance(10 * time.Second)
		fx.svc.sampleOnce()
		fx.detector.attentive = false
		fx.clock.advance(10 * time.Second)
		fx.svc.sampleOnce()

		fx.svc.Recommend(id)

		// The recommendation stepped the environment once after syncing,
		// so time_in_session survives while attention may have moved.
		state := fx.svc.env.State()
		if state.TimeInSessionSeconds != 20 {
			t.Fatalf("expected 20s in session, got %f", state.TimeInSessionSeconds)
		}
	})

	t.Run("closed session id is ignored", func(t *testing.T) {
		fx := newFixture(t)
		id, _ := fx.svc.StartSession()
		fx.svc.StopSession(id)
		fx.svc.Recommend(id) // must not fail
	})
}
