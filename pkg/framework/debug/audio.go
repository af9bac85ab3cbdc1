package debug

import (
	"fmt"
	"math"

	"github.com/ametisf/snaprepeat/pkg/dsp/gain"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// AudioAnalyzer measures levels and sanity of audio buffers. It is meant for
// offline use; Analyze allocates.
type AudioAnalyzer struct {
	clippingThreshold float64
	dcThreshold       float64
	silenceThreshold  float64
}

// NewAudioAnalyzer creates a new audio analyzer with default settings.
func NewAudioAnalyzer() *AudioAnalyzer {
	return &AudioAnalyzer{
		clippingThreshold: 0.99,
		dcThreshold:       0.01,
		silenceThreshold:  0.0001,
	}
}

// AnalysisResult contains the results of audio buffer analysis.
type AnalysisResult struct {
	Samples        int
	Peak           float64
	RMS            float64
	DC             float64
	ClippedSamples int
	Silent         bool
	NaNCount       int
}

// Clipping reports whether any sample reached the clipping threshold.
func (r AnalysisResult) Clipping() bool {
	return r.ClippedSamples > 0
}

// Analyze computes peak, RMS and DC of a buffer. NaN and infinite samples
// are counted and left out of the level figures.
func (a *AudioAnalyzer) Analyze(buffer []float32) AnalysisResult {
	result := AnalysisResult{Samples: len(buffer)}

	x := make([]float64, 0, len(buffer))
	for _, s := range buffer {
		v := float64(s)
		if math.IsNaN(v) || math.IsInf(v, 0) {
			result.NaNCount++
			continue
		}
		if math.Abs(v) >= a.clippingThreshold {
			result.ClippedSamples++
		}
		x = append(x, v)
	}

	if len(x) == 0 {
		result.Silent = true
		return result
	}

	result.Peak = floats.Norm(x, math.Inf(1))
	result.RMS = floats.Norm(x, 2) / math.Sqrt(float64(len(x)))
	result.DC = stat.Mean(x, nil)
	result.Silent = result.RMS < a.silenceThreshold

	return result
}

// Check returns human readable problems found in a buffer.
func (a *AudioAnalyzer) Check(buffer []float32, name string) []string {
	var issues []string

	result := a.Analyze(buffer)

	if result.NaNCount > 0 {
		issues = append(issues, fmt.Sprintf("%s: Contains %d NaN or Inf values", name, result.NaNCount))
	}
	if result.Clipping() {
		issues = append(issues, fmt.Sprintf("%s: Clipping detected (%d samples)", name, result.ClippedSamples))
	}
	if math.Abs(result.DC) > a.dcThreshold {
		issues = append(issues, fmt.Sprintf("%s: DC offset detected (%.3f)", name, result.DC))
	}

	return issues
}

// String formats the result as a single report line.
func (r AnalysisResult) String() string {
	return fmt.Sprintf("%d samples, peak %.4f (%.1f dBFS), rms %.4f (%.1f dBFS), dc %+.5f",
		r.Samples, r.Peak, gain.LinearToDb(r.Peak), r.RMS, gain.LinearToDb(r.RMS), r.DC)
}

// LogBufferStats logs statistics about an audio buffer and warns about
// problems found in it.
func (l *Logger) LogBufferStats(analyzer *AudioAnalyzer, buffer []float32, name string) {
	l.Info("%s: %s", name, analyzer.Analyze(buffer))
	for _, issue := range analyzer.Check(buffer, name) {
		l.Warn("%s", issue)
	}
}
