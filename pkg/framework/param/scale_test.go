package param

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLinearScaleRoundTrip(t *testing.T) {
	scales := []struct {
		name  string
		scale LinearScale
	}{
		{"samples", LinearScale{Low: 1, High: 441000}},
		{"rate", LinearScale{Low: 0.01, High: 100}},
		{"unit", LinearScale{Low: 0, High: 1}},
	}

	for _, tt := range scales {
		t.Run(tt.name, func(t *testing.T) {
			s := tt.scale
			span := s.High - s.Low
			for i := 0; i <= 100; i++ {
				x := s.Low + span*float64(i)/100
				assert.InDelta(t, x, s.ToScaled(s.ToNorm(x)), span*1e-12, "scaled %g", x)

				n := float64(i) / 100
				assert.InDelta(t, n, s.ToNorm(s.ToScaled(n)), 1e-12, "norm %g", n)
			}
		})
	}
}

func TestLinearScaleEndpoints(t *testing.T) {
	s := LinearScale{Low: 0.01, High: 100}

	assert.Equal(t, 0.0, s.ToNorm(0.01))
	assert.Equal(t, 1.0, s.ToNorm(100))
	assert.Equal(t, 0.01, s.ToScaled(0))
	assert.InDelta(t, 100.0, s.ToScaled(1), 1e-12)
}

func TestLinearScaleClamp(t *testing.T) {
	s := LinearScale{Low: 1, High: 10}

	assert.Equal(t, 1.0, s.Clamp(-5))
	assert.Equal(t, 10.0, s.Clamp(11))
	assert.Equal(t, 4.5, s.Clamp(4.5))
	assert.True(t, s.Valid())
	assert.False(t, LinearScale{Low: 3, High: 3}.Valid())
	assert.True(t, s.Contains(1))
	assert.True(t, s.Contains(10))
	assert.False(t, s.Contains(10.5))
	assert.False(t, s.Contains(math.NaN()))
}
