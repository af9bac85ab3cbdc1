package snaprepeat

import (
	"math"

	dspdebug "github.com/ametisf/snaprepeat/pkg/dsp/debug"
	"github.com/ametisf/snaprepeat/pkg/dsp/snapshot"
	"github.com/ametisf/snaprepeat/pkg/framework/bus"
	"github.com/ametisf/snaprepeat/pkg/framework/debug"
	"github.com/ametisf/snaprepeat/pkg/framework/plugin"
	"github.com/ametisf/snaprepeat/pkg/framework/process"
)

// Processor runs the snapshot repeat effect on a stereo bus.
type Processor struct {
	*plugin.BaseProcessor

	params   *Params
	channels []*snapshot.Channel
	logger   *debug.Logger
}

var _ plugin.Processor = (*Processor)(nil)

// NewProcessor creates a processor with default parameter values. Channel
// buffers are allocated here, never while processing.
func NewProcessor(opts ...Option) *Processor {
	cfg := applyOptions(opts)

	p := &Processor{
		BaseProcessor: plugin.NewBaseProcessor(bus.NewStereoConfiguration()),
		logger:        cfg.logger.With("snaprepeat"),
	}
	p.params = newParams(p.Parameters())

	n := p.GetBuses().MainChannelCount(bus.DirectionOutput)
	p.channels = make([]*snapshot.Channel, n)
	for i := range p.channels {
		p.channels[i] = snapshot.NewChannel(cfg.channelOpts...)
	}

	p.OnInitialize(func(sampleRate float64, maxBlockSize int32) error {
		p.logger.Info("initialize: %.0f Hz, max block %d, %d channels, capacity %d samples, %s interpolation",
			sampleRate, maxBlockSize, len(p.channels), p.channels[0].Capacity(), p.channels[0].Interpolation())
		if sampleRate != ReferenceSampleRate {
			p.logger.Debug("sample ranges are fixed at %d Hz", ReferenceSampleRate)
		}
		return nil
	})
	p.OnSetActive(func(active bool) error {
		p.logger.Debug("set active: %v", active)
		return nil
	})
	p.OnReset(p.reset)
	p.OnStateLoad(func() {
		s := p.params.Settings()
		p.logger.Info("state loaded: period %.0f, capture %.0f, rate %.2fx",
			s.Period, s.CaptureLength, s.PlaybackRate)
	})

	return p
}

// Params returns the index based parameter surface.
func (p *Processor) Params() *Params {
	return p.params
}

// Channel returns the state of channel ch, or nil if there is no such channel.
func (p *Processor) Channel(ch int) *snapshot.Channel {
	if ch < 0 || ch >= len(p.channels) {
		return nil
	}
	return p.channels[ch]
}

// ProcessAudio processes one block. Parameters are sampled once for the
// whole block and applied to every channel alike. Channels beyond the
// stereo pair are left untouched. An inactive processor outputs silence.
func (p *Processor) ProcessAudio(ctx *process.Context) {
	if !p.IsActive() {
		ctx.Clear()
		return
	}
	dspdebug.Assert(ctx.NumSamples() <= int(p.MaxBlockSize()),
		"snaprepeat: block of %d samples exceeds max block size %d", ctx.NumSamples(), p.MaxBlockSize())

	s := p.params.Settings()
	ctx.ProcessStereo(func(ch int, input, output []float32) {
		p.channels[ch].Process(s, input, output)
	})
}

// GetTailSamples reports how long the effect keeps sounding after the
// input stops: the snapshot playing now, plus one period for the snapshot
// that was captured while it played.
func (p *Processor) GetTailSamples() int32 {
	return int32(2 * math.Round(p.params.Period()))
}

func (p *Processor) reset() {
	for _, c := range p.channels {
		c.Reset()
	}
	p.logger.Debug("channels reset")
}
