package tracker

import (
	"context"
	"time"
)

// Run drives the periodic attention sampling loop until ctx is cancelled.
// Each tick captures one frame and applies the same attention sample to
// every open session's productivity timer. A failed capture is swallowed
// and the loop re-arms unconditionally. The caller must wait for Run to
// return before releasing the camera.
func (s *Service) Run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("attention sampler started", "interval", s.interval)
	for {
		select {
		case <-ctx.Done():
			s.logger.Info("attention sampler stopped")
			return
		case <-ticker.C:
			s.sampleOnce()
		}
	}
}

// sampleOnce applies one attention sample to all open sessions.
func (s *Service) sampleOnce() {
	frame, err := s.camera.CaptureFrame()
	if err != nil {
		return
	}
	attentive := s.detector.IsAttentive(frame)

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, entry := range s.live {
		entry.productivityTimer.Update(attentive)
	}
}
