// Package interpolation provides sample interpolation helpers for buffer readers.
package interpolation

import "math"

// Linear performs linear interpolation between two samples.
// frac is the fractional position between y0 and y1 (0.0 to 1.0).
func Linear(y0, y1, frac float32) float32 {
	return y0 + (y1-y0)*frac
}

// Split breaks a non-negative read position into the index of the sample at
// or below it and the fractional distance to the next sample.
func Split(pos float64) (int, float32) {
	floor := math.Floor(pos)
	return int(floor), float32(pos - floor)
}
