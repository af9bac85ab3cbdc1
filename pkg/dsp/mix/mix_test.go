package mix

import (
	"math"
	"testing"
)

func TestDryWet(t *testing.T) {
	tests := []struct {
		name     string
		dry      float32
		wet      float32
		amount   float32
		expected float32
	}{
		{"100% dry", 1.0, 0.5, 0.0, 1.0},
		{"100% wet", 1.0, 0.5, 1.0, 0.5},
		{"50/50 mix", 1.0, 0.5, 0.5, 0.75},
		{"25% wet", 1.0, 0.0, 0.25, 0.75},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := DryWet(tt.dry, tt.wet, tt.amount)
			if math.Abs(float64(result-tt.expected)) > 0.001 {
				t.Errorf("DryWet(%f, %f, %f) = %f, want %f",
					tt.dry, tt.wet, tt.amount, result, tt.expected)
			}
		})
	}
}

func TestDryWetBufferTo(t *testing.T) {
	dry := []float32{1.0, 1.0, 1.0, 1.0}
	wet := []float32{0.0, 0.0, 0.0, 0.0}

	DryWetBufferTo(dry, wet, 0.5, wet)

	for i, v := range wet {
		expected := float32(0.5) // 50% of 1.0 + 50% of 0.0
		if math.Abs(float64(v-expected)) > 0.001 {
			t.Errorf("DryWetBufferTo: wet[%d] = %f, want %f", i, v, expected)
		}
	}
}

func TestDryWetBufferToShortDestination(t *testing.T) {
	dry := []float32{1, 1, 1}
	wet := []float32{3, 3, 3}
	dst := make([]float32, 2)

	DryWetBufferTo(dry, wet, 0.5, dst)
	if dst[0] != 2 || dst[1] != 2 {
		t.Errorf("DryWetBufferTo = %v, want [2 2]", dst)
	}

	DryWetBufferTo(dry, wet, 1, dst)
	if dst[0] != 3 || dst[1] != 3 {
		t.Errorf("DryWetBufferTo fully wet = %v, want [3 3]", dst)
	}
}
