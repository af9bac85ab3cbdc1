package main

import (
	"errors"
	"fmt"
	"math"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/tphakala/simd/f32"
)

const (
	monoChannels   = 1
	stereoChannels = 2

	pcmFormat = 1 // WAVE_FORMAT_PCM
)

var errUnsupportedFormat = errors.New("unsupported WAV format")

// clip is a decoded WAV file held as one float32 slice per channel, scaled
// to [-1, 1].
type clip struct {
	sampleRate int
	bitDepth   int
	channels   [][]float32
}

func (c *clip) frames() int {
	if len(c.channels) == 0 {
		return 0
	}
	return len(c.channels[0])
}

// maxValue returns the largest positive integer sample of a PCM bit depth.
func maxValue(bitDepth int) (float64, error) {
	switch bitDepth {
	case 16, 24, 32:
		return math.Pow(2, float64(bitDepth-1)) - 1, nil
	default:
		return 0, fmt.Errorf("%w: %d-bit samples", errUnsupportedFormat, bitDepth)
	}
}

// readWAV decodes a mono or stereo PCM WAV file.
func readWAV(path string) (*clip, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open input file: %w", err)
	}
	defer func() { _ = f.Close() }()

	decoder := wav.NewDecoder(f)
	if !decoder.IsValidFile() {
		return nil, fmt.Errorf("invalid WAV file: %s", path)
	}

	format := decoder.Format()
	if format.NumChannels != monoChannels && format.NumChannels != stereoChannels {
		return nil, fmt.Errorf("%w: %d channels, want mono or stereo", errUnsupportedFormat, format.NumChannels)
	}

	bitDepth := int(decoder.BitDepth)
	maxVal, err := maxValue(bitDepth)
	if err != nil {
		return nil, err
	}

	buf, err := decoder.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to read samples: %w", err)
	}

	return &clip{
		sampleRate: format.SampleRate,
		bitDepth:   bitDepth,
		channels:   deinterleave(buf.Data, format.NumChannels, float32(1/maxVal)),
	}, nil
}

// deinterleave splits interleaved integer samples into channels and scales
// them by gain.
func deinterleave(data []int, numChannels int, gain float32) [][]float32 {
	frames := len(data) / numChannels
	channels := make([][]float32, numChannels)
	for ch := range channels {
		channels[ch] = make([]float32, frames)
		for i := range frames {
			channels[ch][i] = float32(data[i*numChannels+ch])
		}
		f32.Scale(channels[ch], channels[ch], gain)
	}
	return channels
}

// interleave scales channels by maxVal and interleaves them into integer
// samples, rounding and clipping to [-maxVal-1, maxVal].
func interleave(channels [][]float32, maxVal float64) []int {
	frames := 0
	if len(channels) > 0 {
		frames = len(channels[0])
	}

	scaled := make([][]float32, len(channels))
	for ch := range channels {
		scaled[ch] = make([]float32, frames)
		f32.Scale(scaled[ch], channels[ch], float32(maxVal))
	}

	var flat []float32
	if len(scaled) == stereoChannels {
		flat = make([]float32, 2*frames)
		f32.Interleave2(flat, scaled[0], scaled[1])
	} else {
		flat = make([]float32, 0, len(scaled)*frames)
		for i := range frames {
			for ch := range scaled {
				flat = append(flat, scaled[ch][i])
			}
		}
	}

	lo, hi := -maxVal-1, maxVal
	data := make([]int, len(flat))
	for i, v := range flat {
		data[i] = int(math.Max(lo, math.Min(hi, math.Round(float64(v)))))
	}
	return data
}

// writeWAV encodes c as PCM at its bit depth.
func writeWAV(path string, c *clip) (err error) {
	maxVal, err := maxValue(c.bitDepth)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close output file: %w", cerr)
		}
	}()

	numChannels := len(c.channels)
	encoder := wav.NewEncoder(f, c.sampleRate, c.bitDepth, numChannels, pcmFormat)
	buf := &audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: numChannels,
			SampleRate:  c.sampleRate,
		},
		Data:           interleave(c.channels, maxVal),
		SourceBitDepth: c.bitDepth,
	}
	if err := encoder.Write(buf); err != nil {
		return fmt.Errorf("failed to write samples: %w", err)
	}
	if err := encoder.Close(); err != nil {
		return fmt.Errorf("failed to finalize WAV: %w", err)
	}
	return nil
}
