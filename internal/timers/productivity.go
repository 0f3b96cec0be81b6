package timers

import "time"

// ProductivityTimer accumulates seconds during which the user was
// attentive. Call Update periodically with the latest attention sample;
// the elapsed time since the previous update is counted only when the
// sample is attentive. TotalElapsed mirrors wall-clock time from Start so
// callers can compute productive/total ratios.
type ProductivityTimer struct {
	clock             func() time.Time
	startTime         time.Time
	stopTime          time.Time
	lastUpdate        time.Time
	productiveSeconds float64
	started           bool
	stopped           bool
}

// NewProductivityTimer creates a productivity timer using the real clock.
func NewProductivityTimer() *ProductivityTimer {
	return &ProductivityTimer{clock: time.Now}
}

// NewProductivityTimerWithClock creates a productivity timer with an
// injected clock.
func NewProductivityTimerWithClock(clock func() time.Time) *ProductivityTimer {
	return &ProductivityTimer{clock: clock}
}

// Start resets accumulated productive time and begins a new run.
func (t *ProductivityTimer) Start() {
	now := t.clock()
	t.startTime = now
	t.lastUpdate = now
	t.productiveSeconds = 0
	t.started = true
	t.stopped = false
}

// Stop ends the run. Subsequent Update calls are no-ops.
func (t *ProductivityTimer) Stop() {
	t.stopTime = t.clock()
	t.stopped = true
}

// Update advances the timer with one attention sample. If attentive, the
// time elapsed since the previous Update (or Start) is added to the
// productive total; otherwise it is discarded. No-op when the timer is not
// running. Callers must supply non-decreasing sample instants.
func (t *ProductivityTimer) Update(attentive bool) {
	if !t.started || t.stopped {
		return
	}
	now := t.clock()
	delta := now.Sub(t.lastUpdate).Seconds()
	t.lastUpdate = now
	if attentive && delta > 0 {
		t.productiveSeconds += delta
	}
}

// ProductiveSeconds returns the seconds counted as productive so far.
func (t *ProductivityTimer) ProductiveSeconds() float64 {
	return t.productiveSeconds
}

// TotalElapsed returns wall-clock seconds from Start to Stop, or to now if
// still running. Returns 0 if never started.
func (t *ProductivityTimer) TotalElapsed() float64 {
	if !t.started {
		return 0
	}
	end := t.clock()
	if t.stopped {
		end = t.stopTime
	}
	d := end.Sub(t.startTime).Seconds()
	if d < 0 {
		return 0
	}
	return d
}
