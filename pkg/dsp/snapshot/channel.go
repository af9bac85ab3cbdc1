// Package snapshot implements the capture and playback state machine of the
// snapshot repeat effect.
//
// A Channel records a window of its input into a capture buffer while it
// loops the previously captured window as a wavetable. Every Period samples
// the two buffers trade places: the freshly captured window starts playing
// and capturing starts over.
//
// Both buffers are preallocated when the Channel is created, so Process never
// allocates.
package snapshot

import (
	"math"

	"github.com/ametisf/snaprepeat/pkg/dsp/debug"
	"github.com/ametisf/snaprepeat/pkg/dsp/interpolation"
)

// Settings are the scaled control values for one block.
type Settings struct {
	Period        float64 // samples between recaptures
	CaptureLength float64 // samples captured per period
	PlaybackRate  float64 // wavetable scan speed multiplier
}

// Channel is the capture/playback state of one audio channel.
type Channel struct {
	current     []float32 // wavetable played this period
	pos         float64   // scan position in current, in samples, [0, len(current))
	offsetTotal int       // samples processed since the last rollover
	period      int       // samples until the next rollover

	next    []float32 // buffer being captured
	nextLen int       // samples written into next

	backing [2][]float32 // full-capacity arrays behind current and next
	nextIdx int          // index into backing holding next
	ptrs    [2]uintptr   // backing array pointers, checked in debug builds

	interp Interpolation
}

// NewChannel creates an empty channel. It outputs silence until the first
// snapshot has been captured.
func NewChannel(opts ...Option) *Channel {
	cfg := ApplyOptions(opts...)

	c := &Channel{interp: cfg.Interpolation}
	for i := range c.backing {
		c.backing[i] = make([]float32, cfg.MaxCapture)
		c.ptrs[i] = debug.VerifyBufferReuse(c.backing[i], "snapshot", 0)
	}
	c.Reset()
	return c
}

// Reset returns the channel to its initial empty state. The preallocated
// buffers are kept.
func (c *Channel) Reset() {
	c.nextIdx = 0
	c.next = c.backing[0][:0]
	c.current = c.backing[1][:0]
	c.nextLen = 0
	c.pos = 0
	c.offsetTotal = 0
	c.period = 0
}

// Process runs one block: it rolls the buffers over when the period has
// elapsed, captures in into the next snapshot and fills out by scanning the
// current snapshot. s is read once for the whole block.
func (c *Channel) Process(s Settings, in, out []float32) {
	debug.Assert(len(in) == len(out), "snapshot: block length mismatch: in %d, out %d", len(in), len(out))

	if c.offsetTotal >= c.period {
		c.rollover(s)
	}
	c.offsetTotal += len(in)

	c.capture(in)

	if len(c.current) == 0 {
		clear(out)
		return
	}

	c.scan(s.PlaybackRate, out)
}

// rollover starts a new period. The overshoot of the previous period is
// dropped, so timing error accumulates when the block length does not divide
// the period.
func (c *Channel) rollover(s Settings) {
	period := roundSamples(s.Period)
	size := min(roundSamples(s.CaptureLength), period, cap(c.backing[0]))

	c.period = period
	c.offsetTotal = 0

	// The finished capture becomes the wavetable; the old wavetable's array
	// is recycled for the next capture.
	c.current = c.next
	c.nextIdx ^= 1
	c.next = c.backing[c.nextIdx][:size]
	clear(c.next)
	c.nextLen = 0
	c.pos = 0

	debug.VerifyBufferReuse(c.next, "snapshot", c.ptrs[c.nextIdx])
}

// capture appends as much of in as still fits into the next snapshot.
func (c *Channel) capture(in []float32) {
	if c.nextLen >= len(c.next) {
		return
	}
	n := copy(c.next[c.nextLen:], in)
	c.nextLen += n

	debug.Assert(c.nextLen <= len(c.next), "snapshot: capture overrun: %d > %d", c.nextLen, len(c.next))
}

// scan reads the current snapshot as a wavetable at the given rate. The read
// position is kept in samples so that whole-sample rates stay exact.
func (c *Channel) scan(rate float64, out []float32) {
	buf := c.current
	length := len(buf)
	size := float64(length)
	pos := c.pos

	for i := range out {
		low, fract := interpolation.Split(pos)
		// pos+size can round up to size for a tiny negative pos
		if low >= length {
			low -= length
		}

		switch c.interp {
		case InterpolationLinear:
			high := low + 1
			if high == length {
				high = 0
			}
			out[i] = interpolation.Linear(buf[low], buf[high], fract)
		default:
			out[i] = buf[low]
		}

		pos += rate
		if pos >= size || pos < 0 {
			pos = math.Mod(pos, size)
			if pos < 0 {
				pos += size
			}
		}
	}

	c.pos = pos
}

// offsetNorm returns the scan position as a fraction of the snapshot length.
func (c *Channel) offsetNorm() float64 {
	if len(c.current) == 0 {
		return 0
	}
	return c.pos / float64(len(c.current))
}

// roundSamples rounds a scaled sample count to the nearest whole sample,
// half away from zero. Non-positive counts become zero.
func roundSamples(v float64) int {
	if !(v > 0) {
		return 0
	}
	return int(math.Round(v))
}
