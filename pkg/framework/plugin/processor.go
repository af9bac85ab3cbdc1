// Package plugin provides the processor contract and a base processor that
// removes boilerplate from effect implementations.
package plugin

import (
	"io"

	"github.com/ametisf/snaprepeat/pkg/framework/bus"
	"github.com/ametisf/snaprepeat/pkg/framework/param"
	"github.com/ametisf/snaprepeat/pkg/framework/process"
	"github.com/ametisf/snaprepeat/pkg/framework/state"
)

// Plugin describes a plugin and creates its processors
type Plugin interface {
	GetInfo() Info
	CreateProcessor() Processor
}

// Processor is the interface the host drives
type Processor interface {
	// Initialize is called before processing starts
	Initialize(sampleRate float64, maxBlockSize int32) error

	// ProcessAudio processes one block - zero allocations allowed!
	ProcessAudio(ctx *process.Context)

	GetParameters() *param.Registry
	GetBuses() *bus.Configuration

	SetActive(active bool) error
	GetLatencySamples() int32
	GetTailSamples() int32

	// GetState and SetState persist the parameter values
	GetState(w io.Writer) error
	SetState(r io.Reader) error
}

// BaseProcessor provides common functionality for audio processors
type BaseProcessor struct {
	params       *param.Registry
	buses        *bus.Configuration
	state        *state.Manager
	sampleRate   float64
	maxBlockSize int32
	active       bool

	// Optional callbacks for customization
	onInitialize func(sampleRate float64, maxBlockSize int32) error
	onSetActive  func(active bool) error
	onReset      func()
	onStateLoad  func()
}

// NewBaseProcessor creates a new base processor with the given bus configuration
func NewBaseProcessor(buses *bus.Configuration) *BaseProcessor {
	if buses == nil {
		buses = bus.NewStereoConfiguration() // Default to stereo
	}

	params := param.NewRegistry()
	return &BaseProcessor{
		params: params,
		buses:  buses,
		state:  state.NewManager(params),
	}
}

// Initialize implements the Processor interface
func (b *BaseProcessor) Initialize(sampleRate float64, maxBlockSize int32) error {
	b.sampleRate = sampleRate
	b.maxBlockSize = maxBlockSize

	if b.onInitialize != nil {
		return b.onInitialize(sampleRate, maxBlockSize)
	}

	return nil
}

// GetParameters implements the Processor interface
func (b *BaseProcessor) GetParameters() *param.Registry {
	return b.params
}

// GetBuses implements the Processor interface
func (b *BaseProcessor) GetBuses() *bus.Configuration {
	return b.buses
}

// SetActive implements the Processor interface. Deactivation resets the
// processor state.
func (b *BaseProcessor) SetActive(active bool) error {
	b.active = active

	if !active && b.onReset != nil {
		b.onReset()
	}

	if b.onSetActive != nil {
		return b.onSetActive(active)
	}

	return nil
}

// IsActive reports the last value passed to SetActive
func (b *BaseProcessor) IsActive() bool {
	return b.active
}

// GetLatencySamples implements the Processor interface - default no latency
func (b *BaseProcessor) GetLatencySamples() int32 {
	return 0
}

// GetTailSamples implements the Processor interface - default no tail
func (b *BaseProcessor) GetTailSamples() int32 {
	return 0
}

// GetState implements the Processor interface
func (b *BaseProcessor) GetState(w io.Writer) error {
	return b.state.Save(w)
}

// SetState implements the Processor interface
func (b *BaseProcessor) SetState(r io.Reader) error {
	if err := b.state.Load(r); err != nil {
		return err
	}
	if b.onStateLoad != nil {
		b.onStateLoad()
	}
	return nil
}

// SampleRate returns the current sample rate
func (b *BaseProcessor) SampleRate() float64 {
	return b.sampleRate
}

// MaxBlockSize returns the block size passed to Initialize
func (b *BaseProcessor) MaxBlockSize() int32 {
	return b.maxBlockSize
}

// Parameters returns the parameter registry for adding parameters
func (b *BaseProcessor) Parameters() *param.Registry {
	return b.params
}

// OnInitialize sets a callback for initialization
func (b *BaseProcessor) OnInitialize(fn func(sampleRate float64, maxBlockSize int32) error) {
	b.onInitialize = fn
}

// OnSetActive sets a callback for activation/deactivation
func (b *BaseProcessor) OnSetActive(fn func(active bool) error) {
	b.onSetActive = fn
}

// OnReset sets a callback for when the processor should reset its state
func (b *BaseProcessor) OnReset(fn func()) {
	b.onReset = fn
}

// OnStateLoad sets a callback invoked after a state was applied
func (b *BaseProcessor) OnStateLoad(fn func()) {
	b.onStateLoad = fn
}
