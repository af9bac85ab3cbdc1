package snaprepeat

import (
	"fmt"

	"github.com/ametisf/snaprepeat/pkg/dsp/snapshot"
	"github.com/ametisf/snaprepeat/pkg/framework/param"
)

// Parameter indices. They double as parameter IDs.
const (
	ParamPeriod = iota
	ParamCaptureLength
	ParamPlaybackRate

	numParams
)

const (
	// ReferenceSampleRate is the rate the sample ranges are defined against.
	// Ranges are not rescaled to the host rate.
	ReferenceSampleRate = 44100

	// MaxSamples is the upper bound of the period and capture length, ten
	// seconds at ReferenceSampleRate.
	MaxSamples = 10 * ReferenceSampleRate

	minPlaybackRate = 0.01
	maxPlaybackRate = 100.0
)

// Params is the index based parameter surface of the effect. All methods are
// safe for concurrent use; values are stored normalized to [0, 1].
type Params struct {
	registry *param.Registry

	period  *param.Parameter
	capture *param.Parameter
	rate    *param.Parameter
}

func newParams(registry *param.Registry) *Params {
	p := &Params{
		registry: registry,
		period:   param.SamplesParameter(ParamPeriod, "Period", MaxSamples, ReferenceSampleRate).Build(),
		capture:  param.SamplesParameter(ParamCaptureLength, "Capture length", MaxSamples, ReferenceSampleRate).Build(),
		rate: param.MultiplierParameter(ParamPlaybackRate, "Playback rate", minPlaybackRate, maxPlaybackRate, 1).
			Build(),
	}

	// IDs are constants; a failure here is a programming error.
	if err := registry.Add(p.period, p.capture, p.rate); err != nil {
		panic(fmt.Sprintf("snaprepeat: register parameters: %v", err))
	}
	return p
}

// Count returns the number of parameters.
func (p *Params) Count() int32 {
	return numParams
}

// GetParameter returns the normalized value at index, or 0 for an unknown index.
func (p *Params) GetParameter(index int32) float64 {
	if prm := p.registry.GetByIndex(index); prm != nil {
		return prm.GetValue()
	}
	return 0
}

// SetParameter stores a normalized value at index. Values are clamped to
// [0, 1]; unknown indices are ignored.
func (p *Params) SetParameter(index int32, value float64) {
	if prm := p.registry.GetByIndex(index); prm != nil {
		prm.SetValue(value)
	}
}

// ParameterName returns the display name at index, or "" for an unknown index.
func (p *Params) ParameterName(index int32) string {
	if prm := p.registry.GetByIndex(index); prm != nil {
		return prm.Name
	}
	return ""
}

// ParameterText returns the formatted scaled value at index, or "" for an
// unknown index.
func (p *Params) ParameterText(index int32) string {
	if prm := p.registry.GetByIndex(index); prm != nil {
		return prm.DisplayText()
	}
	return ""
}

// Period returns the scaled period in samples.
func (p *Params) Period() float64 {
	return p.period.GetPlainValue()
}

// CaptureLength returns the scaled capture length in samples.
func (p *Params) CaptureLength() float64 {
	return p.capture.GetPlainValue()
}

// PlaybackRate returns the scaled playback rate multiplier.
func (p *Params) PlaybackRate() float64 {
	return p.rate.GetPlainValue()
}

// Settings samples all three scaled values. Each value is read atomically;
// the three reads together are not.
func (p *Params) Settings() snapshot.Settings {
	return snapshot.Settings{
		Period:        p.Period(),
		CaptureLength: p.CaptureLength(),
		PlaybackRate:  p.PlaybackRate(),
	}
}
