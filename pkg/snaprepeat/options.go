package snaprepeat

import (
	"github.com/ametisf/snaprepeat/pkg/dsp/snapshot"
	"github.com/ametisf/snaprepeat/pkg/framework/debug"
)

type config struct {
	channelOpts []snapshot.Option
	logger      *debug.Logger
}

// Option configures a Processor.
type Option func(*config)

// WithChannelOptions passes options to every channel the processor creates.
func WithChannelOptions(opts ...snapshot.Option) Option {
	return func(c *config) {
		c.channelOpts = append(c.channelOpts, opts...)
	}
}

// WithLogger sets the logger used for lifecycle messages. A nil logger is ignored.
func WithLogger(l *debug.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

func applyOptions(opts []Option) config {
	cfg := config{logger: debug.Default()}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}
