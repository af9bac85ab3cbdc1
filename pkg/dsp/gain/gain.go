// Package gain provides level conversion and gain application.
package gain

import (
	"math"

	"github.com/tphakala/simd/f32"
)

// MinDB is the level reported for silence (effectively -infinity)
const MinDB = -200.0

// LinearToDb converts a linear amplitude value to decibels.
// Returns MinDB for values <= 0.
func LinearToDb(linear float64) float64 {
	if linear <= 0 {
		return MinDB
	}
	return max(MinDB, 20.0*math.Log10(linear))
}

// DbToLinear converts a decibel value to linear amplitude.
// Values <= MinDB return 0.
func DbToLinear(db float64) float64 {
	if db <= MinDB {
		return 0
	}
	return math.Pow(10.0, db/20.0)
}

// ApplyBuffer applies gain to an entire buffer in-place.
func ApplyBuffer(buffer []float32, gain float32) {
	f32.Scale(buffer, buffer, gain)
}

// ApplyDbBuffer applies dB gain to an entire buffer in-place.
func ApplyDbBuffer(buffer []float32, db float64) {
	if db == 0 {
		return
	}
	ApplyBuffer(buffer, float32(DbToLinear(db)))
}
