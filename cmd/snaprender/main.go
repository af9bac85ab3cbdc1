// Command snaprender runs a WAV file through the snapshot repeat effect.
//
// Usage:
//
//	snaprender -period 22050 -capture 4410 -rate 2 input.wav output.wav
//	snaprender -block 64 -jitter 48 -interp linear input.wav output.wav
//	snaprender -mix 0.5 -gain -6 -tail input.wav output.wav
//	snaprender -log-level warn input.wav output.wav
//
// The effect is driven the way a host would drive it: the file is split into
// blocks (of varying size with -jitter), parameters are set once up front and
// every block is timed against its real-time budget.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/ametisf/snaprepeat/pkg/dsp/gain"
	"github.com/ametisf/snaprepeat/pkg/dsp/mix"
	"github.com/ametisf/snaprepeat/pkg/dsp/snapshot"
	"github.com/ametisf/snaprepeat/pkg/framework/debug"
	"github.com/ametisf/snaprepeat/pkg/snaprepeat"
)

const (
	defaultBlock    = 512
	profilerWindow  = 4096
	minRequiredArgs = 2
)

var errUsage = errors.New("usage")

type options struct {
	period     float64
	capture    float64
	rate       float64
	block      int
	jitter     int
	seed       uint64
	interp     string
	mix        float64
	gainDB     float64
	tail       bool
	verbose    bool
	logLevel   string
	level      debug.LogLevel
	inputPath  string
	outputPath string
}

func main() {
	logger := debug.New(os.Stderr, "snaprender", debug.FlagLevel|debug.FlagPrefix)
	if err := run(os.Args[1:], os.Stdout, os.Stderr, logger); err != nil {
		if !errors.Is(err, errUsage) {
			logger.Error("%v", err)
		}
		os.Exit(1)
	}
}

func parseFlags(args []string, stderr io.Writer) (*options, error) {
	fs := flag.NewFlagSet("snaprender", flag.ContinueOnError)
	fs.SetOutput(stderr)

	o := &options{}
	fs.Float64Var(&o.period, "period", snaprepeat.ReferenceSampleRate, "Samples between snapshots (1 to 441000)")
	fs.Float64Var(&o.capture, "capture", snaprepeat.ReferenceSampleRate, "Samples captured per snapshot (1 to 441000)")
	fs.Float64Var(&o.rate, "rate", 1, "Playback rate multiplier (0.01 to 100)")
	fs.IntVar(&o.block, "block", defaultBlock, "Block size in samples")
	fs.IntVar(&o.jitter, "jitter", 0, "Vary each block size randomly by up to this many samples")
	fs.Uint64Var(&o.seed, "seed", 1, "Seed for -jitter")
	fs.StringVar(&o.interp, "interp", snapshot.InterpolationNearest.String(), "Snapshot read mode: nearest, linear")
	fs.Float64Var(&o.mix, "mix", 1, "Dry/wet mix, 0 = dry, 1 = wet")
	fs.Float64Var(&o.gainDB, "gain", 0, "Output gain in dB")
	fs.BoolVar(&o.tail, "tail", false, "Append the effect tail after the input ends")
	fs.BoolVar(&o.verbose, "v", false, "Verbose output, same as -log-level debug")
	fs.StringVar(&o.logLevel, "log-level", "", "Log level: debug, info, warn, error, off (default info)")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: snaprender [options] input.wav output.wav\n\nOptions:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return nil, errUsage
	}
	if fs.NArg() < minRequiredArgs {
		fs.Usage()
		return nil, errUsage
	}
	o.inputPath, o.outputPath = fs.Arg(0), fs.Arg(1)

	if o.block < 1 {
		return nil, fmt.Errorf("block size must be positive, got %d", o.block)
	}
	if o.jitter < 0 || o.jitter >= o.block {
		return nil, fmt.Errorf("jitter must be in [0, %d), got %d", o.block, o.jitter)
	}
	if !(o.mix >= 0 && o.mix <= 1) {
		return nil, fmt.Errorf("mix must be in [0, 1], got %g", o.mix)
	}
	if o.logLevel != "" {
		level, err := debug.ParseLevel(o.logLevel)
		if err != nil {
			return nil, err
		}
		o.level = level
	}
	if o.verbose {
		o.logLevel, o.level = debug.LogLevelDebug.String(), debug.LogLevelDebug
	}
	return o, nil
}

func parseInterpolation(s string) (snapshot.Interpolation, error) {
	for _, mode := range []snapshot.Interpolation{snapshot.InterpolationNearest, snapshot.InterpolationLinear} {
		if s == mode.String() {
			return mode, nil
		}
	}
	return 0, fmt.Errorf("unknown interpolation %q", s)
}

// setScaled sets a parameter from its scaled value, rejecting values out of range.
func setScaled(proc *snaprepeat.Processor, id uint32, value float64) error {
	p := proc.GetParameters().Get(id)
	if !p.Scale.Contains(value) {
		return fmt.Errorf("%s must be in [%g, %g], got %g", p.Name, p.Scale.Low, p.Scale.High, value)
	}
	p.SetPlainValue(value)
	return nil
}

func run(args []string, stdout, stderr io.Writer, logger *debug.Logger) error {
	o, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}
	if o.logLevel != "" {
		logger.SetLevel(o.level)
	}

	info := snaprepeat.New().GetInfo()
	if err := info.Validate(); err != nil {
		return err
	}
	uid := info.UID()
	logger.Debug("%s %s v%d, uid %X", info.Vendor, info.Name, info.Version, uid[:])

	mode, err := parseInterpolation(o.interp)
	if err != nil {
		return err
	}

	proc := snaprepeat.NewProcessor(
		snaprepeat.WithLogger(logger),
		snaprepeat.WithChannelOptions(snapshot.WithInterpolation(mode)),
	)
	for _, s := range []struct {
		id    uint32
		value float64
	}{
		{snaprepeat.ParamPeriod, o.period},
		{snaprepeat.ParamCaptureLength, o.capture},
		{snaprepeat.ParamPlaybackRate, o.rate},
	} {
		if err := setScaled(proc, s.id, s.value); err != nil {
			return err
		}
	}

	in, err := readWAV(o.inputPath)
	if err != nil {
		return err
	}
	logger.Debug("input: %d Hz, %d channels, %d-bit, %d frames",
		in.sampleRate, len(in.channels), in.bitDepth, in.frames())

	planner := newBlockPlanner(o.block, o.jitter, o.seed)
	if err := proc.Initialize(float64(in.sampleRate), int32(planner.maxBlock())); err != nil {
		return fmt.Errorf("initialize: %w", err)
	}
	if err := proc.SetActive(true); err != nil {
		return fmt.Errorf("activate: %w", err)
	}

	params := proc.Params()
	for i := range params.Count() {
		logger.Info("%s: %s", params.ParameterName(i), params.ParameterText(i))
	}

	source := in.channels
	if o.tail {
		source = withTail(source, int(proc.GetTailSamples()))
	}

	prof := debug.NewAudioProcessProfiler(float64(in.sampleRate), profilerWindow)
	out := &clip{
		sampleRate: in.sampleRate,
		bitDepth:   in.bitDepth,
		channels:   render(proc, source, float64(in.sampleRate), planner, prof),
	}

	if err := proc.SetActive(false); err != nil {
		return fmt.Errorf("deactivate: %w", err)
	}

	for ch, wet := range out.channels {
		mix.DryWetBufferTo(source[ch], wet, float32(o.mix), wet)
		gain.ApplyDbBuffer(wet, o.gainDB)
	}

	if err := writeWAV(o.outputPath, out); err != nil {
		return err
	}

	analyzer := debug.NewAudioAnalyzer()
	for ch := range in.channels {
		logger.LogBufferStats(analyzer, in.channels[ch], fmt.Sprintf("in[%d]", ch))
		logger.LogBufferStats(analyzer, out.channels[ch], fmt.Sprintf("out[%d]", ch))
	}

	fmt.Fprintf(stdout, "Rendered %s -> %s (%d frames)\n",
		filepath.Base(o.inputPath), filepath.Base(o.outputPath), out.frames())
	fmt.Fprint(stdout, prof.Report())
	return nil
}
