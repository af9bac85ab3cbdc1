package debug

import (
	"bytes"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAnalyze(t *testing.T) {
	a := NewAudioAnalyzer()

	t.Run("Levels", func(t *testing.T) {
		r := a.Analyze([]float32{0.5, -0.5, 0.5, -0.5})

		assert.Equal(t, 4, r.Samples)
		assert.InDelta(t, 0.5, r.Peak, 1e-9)
		assert.InDelta(t, 0.5, r.RMS, 1e-9)
		assert.InDelta(t, 0, r.DC, 1e-9)
		assert.False(t, r.Silent)
		assert.False(t, r.Clipping())
	})

	t.Run("Empty", func(t *testing.T) {
		r := a.Analyze(nil)

		assert.True(t, r.Silent)
		assert.Zero(t, r.Peak)
	})

	t.Run("NaN", func(t *testing.T) {
		nan := float32(math.NaN())
		r := a.Analyze([]float32{nan, 1, float32(math.Inf(1))})

		assert.Equal(t, 2, r.NaNCount)
		assert.Equal(t, 1, r.ClippedSamples)
		assert.InDelta(t, 1, r.Peak, 1e-9)
	})

	t.Run("Silence", func(t *testing.T) {
		r := a.Analyze(make([]float32, 64))

		assert.True(t, r.Silent)
		assert.Contains(t, r.String(), "peak 0.0000 (-200.0 dBFS)")
	})
}

func TestCheck(t *testing.T) {
	a := NewAudioAnalyzer()

	assert.Empty(t, a.Check([]float32{0.1, -0.1}, "ok"))

	issues := a.Check([]float32{1, 1, 1}, "bad")
	assert.Len(t, issues, 2)
	assert.Contains(t, issues[0], "bad: Clipping detected (3 samples)")
	assert.Contains(t, issues[1], "bad: DC offset detected")
}

func TestLogBufferStats(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, "", FlagLevel)

	logger.LogBufferStats(NewAudioAnalyzer(), []float32{1, -1}, "out")

	assert.Contains(t, buf.String(), "[INFO] out: 2 samples, peak 1.0000 (0.0 dBFS)")
	assert.Contains(t, buf.String(), "[WARN] out: Clipping detected (2 samples)")
}
