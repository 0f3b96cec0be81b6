// Package analytics computes session productivity metrics.
package analytics

// Score returns the productivity ratio productive/total clamped to
// [0.0, 1.0]. Returns 0.0 when total is zero or negative. Clamping guards
// against sampling jitter pushing the raw ratio slightly out of range.
func Score(productiveSeconds, totalSeconds float64) float64 {
	if totalSeconds <= 0 {
		return 0.0
	}
	ratio := productiveSeconds / totalSeconds
	if ratio < 0 {
		return 0.0
	}
	if ratio > 1 {
		return 1.0
	}
	return ratio
}
