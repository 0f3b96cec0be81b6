// Package timers provides the two clocks behind a study session: a
// wall-clock session timer and a productivity timer that only accumulates
// time while the user is attentive.
package timers

import "time"

// SessionTimer tracks total elapsed time for a study session, from Start
// to Stop regardless of attention state.
type SessionTimer struct {
	now       func() time.Time
	startTime time.Time
	stopTime  time.Time
	started   bool
	stopped   bool
}

// NewSessionTimer creates a session timer using the real clock.
func NewSessionTimer() *SessionTimer {
	return &SessionTimer{now: time.Now}
}

// NewSessionTimerWithClock creates a session timer with an injected clock.
func NewSessionTimerWithClock(now func() time.Time) *SessionTimer {
	return &SessionTimer{now: now}
}

// Start records the current instant as the session start and clears any
// previous stop instant.
func (t *SessionTimer) Start() {
	t.startTime = t.now()
	t.started = true
	t.stopped = false
}

// Stop records the current instant as the session end. Repeated calls
// overwrite the stop instant.
func (t *SessionTimer) Stop() {
	t.stopTime = t.now()
	t.stopped = true
}

// IsRunning reports whether the timer has been started and not stopped.
func (t *SessionTimer) IsRunning() bool {
	return t.started && !t.stopped
}

// Elapsed returns total elapsed seconds since Start. If stopped, it is the
// duration from start to stop; if running, from start to now; if never
// started, 0.
func (t *SessionTimer) Elapsed() float64 {
	if !t.started {
		return 0
	}
	end := t.now()
	if t.stopped {
		end = t.stopTime
	}
	d := end.Sub(t.startTime).Seconds()
	if d < 0 {
		return 0
	}
	return d
}
