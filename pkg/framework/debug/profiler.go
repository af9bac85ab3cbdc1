package debug

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"gonum.org/v1/gonum/stat"
)

// AudioProcessProfiler records the wall time of processed blocks and
// compares it against the real-time budget of each block.
//
// Record does not allocate; timings are kept in a ring of fixed size.
type AudioProcessProfiler struct {
	sampleRate float64

	durations   []float64 // seconds, ring buffer
	next        int
	filled      bool
	blocks      uint64
	samples     uint64
	total       time.Duration
	budget      time.Duration
	overruns    uint64
	worstLoad   float64
	longestSeen time.Duration
}

// BlockStats summarizes the recorded blocks.
type BlockStats struct {
	Blocks    uint64
	Samples   uint64
	Total     time.Duration
	Mean      time.Duration
	Median    time.Duration
	P99       time.Duration
	Max       time.Duration
	Overruns  uint64  // blocks that took longer than their audio duration
	Load      float64 // total processing time over total audio time, in percent
	WorstLoad float64 // highest single block load, in percent
}

// NewAudioProcessProfiler creates a profiler keeping the last window block
// timings for percentile estimates.
func NewAudioProcessProfiler(sampleRate float64, window int) *AudioProcessProfiler {
	return &AudioProcessProfiler{
		sampleRate: sampleRate,
		durations:  make([]float64, max(window, 1)),
	}
}

// Start begins timing a block of numSamples samples. Call the returned
// function once the block is done.
func (a *AudioProcessProfiler) Start(numSamples int) func() {
	start := time.Now()
	return func() {
		a.Record(time.Since(start), numSamples)
	}
}

// Record adds one block timing.
func (a *AudioProcessProfiler) Record(elapsed time.Duration, numSamples int) {
	a.durations[a.next] = elapsed.Seconds()
	a.next++
	if a.next == len(a.durations) {
		a.next = 0
		a.filled = true
	}

	a.blocks++
	a.samples += uint64(numSamples)
	a.total += elapsed
	a.longestSeen = max(a.longestSeen, elapsed)

	budget := a.blockDuration(numSamples)
	a.budget += budget
	if elapsed > budget {
		a.overruns++
	}
	if budget > 0 {
		a.worstLoad = max(a.worstLoad, 100*float64(elapsed)/float64(budget))
	}
}

func (a *AudioProcessProfiler) blockDuration(numSamples int) time.Duration {
	if a.sampleRate <= 0 {
		return 0
	}
	return time.Duration(float64(numSamples) / a.sampleRate * float64(time.Second))
}

// Stats returns a summary of the recorded blocks.
func (a *AudioProcessProfiler) Stats() BlockStats {
	s := BlockStats{
		Blocks:    a.blocks,
		Samples:   a.samples,
		Total:     a.total,
		Max:       a.longestSeen,
		Overruns:  a.overruns,
		WorstLoad: a.worstLoad,
	}
	if a.blocks == 0 {
		return s
	}

	s.Mean = a.total / time.Duration(a.blocks)
	if a.budget > 0 {
		s.Load = 100 * float64(a.total) / float64(a.budget)
	}

	n := a.next
	if a.filled {
		n = len(a.durations)
	}
	sorted := slices.Clone(a.durations[:n])
	slices.Sort(sorted)
	s.Median = seconds(stat.Quantile(0.5, stat.Empirical, sorted, nil))
	s.P99 = seconds(stat.Quantile(0.99, stat.Empirical, sorted, nil))

	return s
}

func seconds(v float64) time.Duration {
	return time.Duration(v * float64(time.Second))
}

// Reset clears all recorded blocks.
func (a *AudioProcessProfiler) Reset() {
	*a = AudioProcessProfiler{
		sampleRate: a.sampleRate,
		durations:  a.durations,
	}
}

// Report generates a performance report.
func (a *AudioProcessProfiler) Report() string {
	s := a.Stats()
	if s.Blocks == 0 {
		return "No measurements recorded"
	}

	var sb strings.Builder
	sb.WriteString("Performance Report:\n")
	sb.WriteString("==================\n")
	fmt.Fprintf(&sb, "  Blocks:    %d (%d samples at %.0f Hz)\n", s.Blocks, s.Samples, a.sampleRate)
	fmt.Fprintf(&sb, "  Total:     %v\n", s.Total)
	fmt.Fprintf(&sb, "  Average:   %v\n", s.Mean)
	fmt.Fprintf(&sb, "  Median:    %v\n", s.Median)
	fmt.Fprintf(&sb, "  P99:       %v\n", s.P99)
	fmt.Fprintf(&sb, "  Max:       %v\n", s.Max)
	fmt.Fprintf(&sb, "  CPU Load:  %.2f%% (worst block %.2f%%)\n", s.Load, s.WorstLoad)
	fmt.Fprintf(&sb, "  Overruns:  %d\n", s.Overruns)

	return sb.String()
}
