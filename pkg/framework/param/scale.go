package param

import "github.com/ametisf/snaprepeat/pkg/dsp/debug"

// LinearScale is an affine mapping between a normalized host value in [0,1]
// and an engineering-unit value in [Low, High].
//
// Both conversions are only defined inside their domain. Out-of-domain
// arguments are a caller defect and are checked in debug builds only.
type LinearScale struct {
	Low  float64
	High float64
}

// ToNorm converts a scaled value to its normalized form.
func (s LinearScale) ToNorm(scaled float64) float64 {
	debug.Assert(s.Low <= scaled && scaled <= s.High,
		"param: scaled value %g outside [%g, %g]", scaled, s.Low, s.High)
	return (scaled - s.Low) / (s.High - s.Low)
}

// ToScaled converts a normalized value to engineering units.
func (s LinearScale) ToScaled(norm float64) float64 {
	debug.Assert(0 <= norm && norm <= 1,
		"param: normalized value %g outside [0, 1]", norm)
	return s.Low + norm*(s.High-s.Low)
}

// Clamp limits a scaled value to [Low, High].
func (s LinearScale) Clamp(scaled float64) float64 {
	if scaled < s.Low {
		return s.Low
	}
	if scaled > s.High {
		return s.High
	}
	return scaled
}

// Valid reports whether the range is non-empty.
func (s LinearScale) Valid() bool {
	return s.High > s.Low
}

// Contains reports whether scaled lies in [Low, High].
func (s LinearScale) Contains(scaled float64) bool {
	return s.Low <= scaled && scaled <= s.High
}
