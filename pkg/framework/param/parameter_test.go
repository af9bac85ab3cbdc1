package param

import (
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParameterDefaults(t *testing.T) {
	p := SamplesParameter(0, "Period", 441000, 44100).Build()

	assert.InDelta(t, 44100, p.GetPlainValue(), 1e-6)
	assert.Equal(t, "44100.00 samples", p.DisplayText())
	assert.Equal(t, p.DefaultValue, p.GetValue())
}

func TestParameterSetValueClamps(t *testing.T) {
	p := New(1, "Mix").Range(0, 100).Build()

	tests := []struct {
		name string
		in   float64
		want float64
	}{
		{"in range", 0.25, 0.25},
		{"below", -1, 0},
		{"above", 2, 1},
		{"NaN", math.NaN(), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p.SetValue(tt.in)
			assert.Equal(t, tt.want, p.GetValue())
		})
	}
}

func TestParameterPlainValue(t *testing.T) {
	p := MultiplierParameter(2, "Playback rate", 0.01, 100, 1).Build()

	p.SetPlainValue(2.5)
	assert.InDelta(t, 2.5, p.GetPlainValue(), 1e-9)
	assert.Equal(t, "2.50x", p.DisplayText())

	// Out of range plain values clamp to the scale
	p.SetPlainValue(1000)
	assert.Equal(t, 1.0, p.GetValue())
	p.SetPlainValue(0)
	assert.Equal(t, 0.0, p.GetValue())
}

func TestParameterParseValue(t *testing.T) {
	p := SamplesParameter(0, "Period", 441000, 44100).Build()

	norm, err := p.ParseValue("1000 samples")
	require.NoError(t, err)
	assert.InDelta(t, 1000, p.Denormalize(norm), 1e-6)

	_, err = p.ParseValue("lots")
	assert.Error(t, err)

	plain := New(9, "Plain").Range(0, 10).Build()
	norm, err = plain.ParseValue("5")
	require.NoError(t, err)
	assert.Equal(t, 0.5, norm)
	assert.Equal(t, "5.00", plain.FormatValue(0.5))
}

func TestParameterConcurrentAccess(t *testing.T) {
	p := New(0, "Shared").Build()
	values := []float64{0.125, 0.5, 0.875}

	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		for i := 0; i < 10000; i++ {
			p.SetValue(values[i%len(values)])
		}
	}()

	seen := make([]float64, 0, 10000)
	go func() {
		defer wg.Done()
		for i := 0; i < 10000; i++ {
			seen = append(seen, p.GetValue())
		}
	}()

	wg.Wait()

	// Every observed value is one that was written in full
	for _, v := range seen {
		assert.Contains(t, append(values, 0), v)
	}
}
