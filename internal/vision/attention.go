package vision

// Rect is a face bounding box within a frame.
type Rect struct {
	X, Y          int
	Width, Height int
}

// FaceFinder locates faces in a frame. Implementations may wrap a real
// detector; the default stub reports one centered face so the backend is
// runnable without camera hardware.
type FaceFinder interface {
	DetectFaces(frame *Frame) []Rect
}

// stubFinder reports a single face in the middle of every frame.
type stubFinder struct{}

func (stubFinder) DetectFaces(frame *Frame) []Rect {
	w := frame.Width / 4
	h := frame.Height / 4
	return []Rect{{
		X:      frame.Width/2 - w/2,
		Y:      frame.Height/2 - h/2,
		Width:  w,
		Height: h,
	}}
}

// Detector decides whether the user is attentive: a face whose center
// falls within the middle 60% of the frame counts as attentive.
type Detector struct {
	finder FaceFinder
}

// NewDetector creates a detector backed by the stub face finder.
func NewDetector() *Detector {
	return &Detector{finder: stubFinder{}}
}

// NewDetectorWithFinder creates a detector backed by a custom face finder.
func NewDetectorWithFinder(finder FaceFinder) *Detector {
	return &Detector{finder: finder}
}

// IsAttentive reports whether the frame shows an attentive user. A nil
// frame is never attentive.
func (d *Detector) IsAttentive(frame *Frame) bool {
	if frame == nil {
		return false
	}
	faces := d.finder.DetectFaces(frame)
	if len(faces) == 0 {
		return false
	}

	xMin := float64(frame.Width) * 0.2
	xMax := float64(frame.Width) * 0.8
	yMin := float64(frame.Height) * 0.2
	yMax := float64(frame.Height) * 0.8

	for _, face := range faces {
		cx := float64(face.X) + float64(face.Width)/2
		cy := float64(face.Y) + float64(face.Height)/2
		if cx >= xMin && cx <= xMax && cy >= yMin && cy <= yMax {
			return true
		}
	}
	return false
}
