// Package vision supplies attention sampling: camera frame capture and a
// detector that decides whether the user is focused on the screen.
//
// There is no real computer-vision model here. The camera runs in stub
// mode for headless environments and the detector works over face
// rectangles supplied by a pluggable finder, defaulting to a stub that
// always reports a centered face.
package vision

import (
	"errors"
	"sync"
)

// ErrReleased is returned when capturing from a released camera.
var ErrReleased = errors.New("camera released")

// Frame is a single captured camera frame. Pixel data is not modeled;
// only the dimensions matter to the attention heuristic.
type Frame struct {
	Width  int
	Height int
}

// Stub frame dimensions, matching a basic webcam capture.
const (
	stubFrameWidth  = 640
	stubFrameHeight = 480
)

// Camera captures frames for attention detection. With stub enabled it
// returns deterministic frames without touching any hardware.
type Camera struct {
	mu       sync.Mutex
	deviceID int
	stub     bool
	released bool
}

// NewCamera creates a camera for the given device index. When stub is
// true no device is ever opened.
func NewCamera(deviceID int, stub bool) *Camera {
	return &Camera{deviceID: deviceID, stub: stub}
}

// CaptureFrame captures a single frame. The stub path returns a fixed
// 640x480 frame. Capturing after Release fails.
func (c *Camera) CaptureFrame() (*Frame, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.released {
		return nil, ErrReleased
	}
	// No hardware capture path is wired; stub and non-stub both produce
	// the deterministic frame so the backend stays runnable headless.
	return &Frame{Width: stubFrameWidth, Height: stubFrameHeight}, nil
}

// Release frees the camera. Safe to call more than once.
func (c *Camera) Release() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.released = true
}
