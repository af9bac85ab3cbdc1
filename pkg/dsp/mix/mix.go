// Package mix provides dry/wet mixing.
package mix

// DryWet performs a dry/wet mix between two signals.
// amount parameter: 0.0 = 100% dry, 1.0 = 100% wet
func DryWet(dry, wet, amount float32) float32 {
	return dry*(1.0-amount) + wet*amount
}

// DryWetBufferTo performs dry/wet mixing into a destination buffer, which may
// alias dry or wet. Only the overlapping length of the three is written.
// amount parameter: 0.0 = 100% dry, 1.0 = 100% wet
func DryWetBufferTo(dry, wet []float32, amount float32, dst []float32) {
	if amount == 1 {
		copy(dst, wet)
		return
	}

	n := min(len(dry), len(wet), len(dst))
	for i := range n {
		dst[i] = DryWet(dry[i], wet[i], amount)
	}
}
