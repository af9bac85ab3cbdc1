package snaprepeat

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ametisf/snaprepeat/pkg/framework/param"
)

func newTestParams() *Params {
	return newParams(param.NewRegistry())
}

func TestParamsDefaults(t *testing.T) {
	p := newTestParams()

	require.Equal(t, int32(3), p.Count())
	assert.Equal(t, "Period", p.ParameterName(0))
	assert.Equal(t, "Capture length", p.ParameterName(1))
	assert.Equal(t, "Playback rate", p.ParameterName(2))

	assert.Equal(t, "44100.00 samples", p.ParameterText(0))
	assert.Equal(t, "44100.00 samples", p.ParameterText(1))
	assert.Equal(t, "1.00x", p.ParameterText(2))

	assert.InDelta(t, 44099.0/440999.0, p.GetParameter(0), 1e-12)
	assert.InDelta(t, 0.99/99.99, p.GetParameter(2), 1e-12)

	assert.InDelta(t, 44100, p.Period(), 1e-6)
	assert.InDelta(t, 44100, p.CaptureLength(), 1e-6)
	assert.InDelta(t, 1, p.PlaybackRate(), 1e-9)
}

func TestParamsOutOfRange(t *testing.T) {
	p := newTestParams()
	before := []float64{p.GetParameter(0), p.GetParameter(1), p.GetParameter(2)}

	for _, index := range []int32{-1, 3, 100} {
		assert.Zero(t, p.GetParameter(index))
		assert.Empty(t, p.ParameterName(index))
		assert.Empty(t, p.ParameterText(index))
		p.SetParameter(index, 0.5)
	}

	assert.Equal(t, before, []float64{p.GetParameter(0), p.GetParameter(1), p.GetParameter(2)})
}

func TestParamsSetParameter(t *testing.T) {
	p := newTestParams()

	p.SetParameter(ParamPeriod, 1)
	assert.Equal(t, 1.0, p.GetParameter(ParamPeriod))
	assert.Equal(t, "441000.00 samples", p.ParameterText(ParamPeriod))
	assert.Equal(t, float64(MaxSamples), p.Period())

	p.SetParameter(ParamCaptureLength, 0)
	assert.Equal(t, "1.00 samples", p.ParameterText(ParamCaptureLength))
	assert.Equal(t, 1.0, p.CaptureLength())

	p.SetParameter(ParamPlaybackRate, 0.5)
	assert.Equal(t, 0.5, p.GetParameter(ParamPlaybackRate))
	assert.InDelta(t, 50.005, p.PlaybackRate(), 1e-9)

	// Host values outside [0, 1] are clamped
	p.SetParameter(ParamPlaybackRate, 1.5)
	assert.Equal(t, 1.0, p.GetParameter(ParamPlaybackRate))
	assert.InDelta(t, 100, p.PlaybackRate(), 1e-9)
	assert.Equal(t, "100.00x", p.ParameterText(ParamPlaybackRate))

	p.SetParameter(ParamPlaybackRate, -2)
	assert.Zero(t, p.GetParameter(ParamPlaybackRate))
	assert.InDelta(t, 0.01, p.PlaybackRate(), 1e-12)
}

func TestParamsSettings(t *testing.T) {
	p := newTestParams()
	p.SetParameter(ParamPeriod, 1)
	p.SetParameter(ParamCaptureLength, 0)
	p.SetParameter(ParamPlaybackRate, 1)

	s := p.Settings()
	assert.Equal(t, float64(MaxSamples), s.Period)
	assert.Equal(t, 1.0, s.CaptureLength)
	assert.InDelta(t, 100, s.PlaybackRate, 1e-9)
}

func TestParamsConcurrentAccess(t *testing.T) {
	p := newTestParams()

	var wg sync.WaitGroup
	for w := 0; w < 4; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 1000; i++ {
				p.SetParameter(int32(i%3), float64(i%11)/10)
			}
		}()
	}
	for r := 0; r < 4; r++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 1000; i++ {
				s := p.Settings()
				if s.Period < 1 || s.Period > MaxSamples {
					t.Errorf("period %v out of range", s.Period)
					return
				}
			}
		}()
	}
	wg.Wait()
}
