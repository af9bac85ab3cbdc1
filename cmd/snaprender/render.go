package main

import (
	"math/rand/v2"

	"github.com/ametisf/snaprepeat/pkg/framework/debug"
	"github.com/ametisf/snaprepeat/pkg/framework/plugin"
	"github.com/ametisf/snaprepeat/pkg/framework/process"
)

// blockPlanner hands out block sizes of block±jitter samples.
type blockPlanner struct {
	block  int
	jitter int
	rng    *rand.Rand
}

func newBlockPlanner(block, jitter int, seed uint64) *blockPlanner {
	return &blockPlanner{
		block:  block,
		jitter: jitter,
		rng:    rand.New(rand.NewPCG(seed, seed)),
	}
}

// maxBlock is the largest size next can return.
func (b *blockPlanner) maxBlock() int {
	return b.block + b.jitter
}

// next returns the size of the next block, at least 1 and at most remaining.
func (b *blockPlanner) next(remaining int) int {
	n := b.block
	if b.jitter > 0 {
		n += b.rng.IntN(2*b.jitter+1) - b.jitter
	}
	return max(1, min(n, remaining))
}

// render runs in through proc block by block and returns the output
// channels. Each block is timed with prof.
func render(proc plugin.Processor, in [][]float32, sampleRate float64, planner *blockPlanner, prof *debug.AudioProcessProfiler) [][]float32 {
	frames := 0
	if len(in) > 0 {
		frames = len(in[0])
	}

	out := make([][]float32, len(in))
	for ch := range out {
		out[ch] = make([]float32, frames)
	}

	ctx := process.NewContext(len(in), sampleRate)
	for pos := 0; pos < frames; {
		n := planner.next(frames - pos)
		ctx.SetBlock(in, out, pos, pos+n)

		stop := prof.Start(n)
		proc.ProcessAudio(ctx)
		stop()

		pos += n
	}

	return out
}

// withTail returns the channels extended by tail samples of silence.
func withTail(channels [][]float32, tail int) [][]float32 {
	if tail <= 0 {
		return channels
	}
	extended := make([][]float32, len(channels))
	for ch, data := range channels {
		extended[ch] = make([]float32, len(data)+tail)
		copy(extended[ch], data)
	}
	return extended
}
