package snapshot

// Interpolation selects how the wavetable scan reads between samples.
type Interpolation int

const (
	// InterpolationNearest outputs the sample at or below the read position.
	InterpolationNearest Interpolation = iota
	// InterpolationLinear blends the two samples around the read position.
	InterpolationLinear
)

// String returns the mode name.
func (i Interpolation) String() string {
	switch i {
	case InterpolationNearest:
		return "nearest"
	case InterpolationLinear:
		return "linear"
	default:
		return "unknown"
	}
}

// DefaultMaxCapture is ten seconds at the 44.1 kHz reference rate, the upper
// bound of both the period and capture length parameters.
const DefaultMaxCapture = 441000

// Config holds construction settings for a Channel.
type Config struct {
	MaxCapture    int
	Interpolation Interpolation
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig returns the settings used when no options are given.
func DefaultConfig() Config {
	return Config{
		MaxCapture:    DefaultMaxCapture,
		Interpolation: InterpolationNearest,
	}
}

// WithMaxCapture sets the capacity preallocated for each snapshot buffer.
// Capture lengths above it are cut to it.
func WithMaxCapture(samples int) Option {
	return func(cfg *Config) {
		if samples >= 0 {
			cfg.MaxCapture = samples
		}
	}
}

// WithInterpolation sets the wavetable read mode.
func WithInterpolation(mode Interpolation) Option {
	return func(cfg *Config) {
		if mode == InterpolationNearest || mode == InterpolationLinear {
			cfg.Interpolation = mode
		}
	}
}

// ApplyOptions applies zero or more options to the default config.
func ApplyOptions(opts ...Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}
