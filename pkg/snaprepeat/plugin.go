// Package snaprepeat is the snapshot repeat effect: every Period samples it
// captures up to CaptureLength samples of its input and loops that window
// at PlaybackRate until the next snapshot replaces it.
package snaprepeat

import (
	"github.com/ametisf/snaprepeat/pkg/framework/plugin"
)

// Plugin describes the effect and creates processors for it.
type Plugin struct {
	opts []Option
}

var _ plugin.Plugin = (*Plugin)(nil)

// New creates the plugin. opts are applied to every processor it creates.
func New(opts ...Option) *Plugin {
	return &Plugin{opts: opts}
}

// GetInfo returns the identity of the effect.
func (*Plugin) GetInfo() plugin.Info {
	return plugin.Info{
		ID:         "com.ametisf.snaprepeat",
		Name:       "Snapshot Repeat",
		Vendor:     "ametisf",
		UniqueID:   141375252,
		Version:    1,
		Inputs:     2,
		Outputs:    2,
		Parameters: numParams,
		Category:   plugin.CategoryEffect,
	}
}

// CreateProcessor returns a new processor.
func (pl *Plugin) CreateProcessor() plugin.Processor {
	return NewProcessor(pl.opts...)
}
