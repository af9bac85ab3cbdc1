package plugin

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ametisf/snaprepeat/pkg/framework/param"
	"github.com/ametisf/snaprepeat/pkg/framework/state"
)

func TestBaseProcessorDefaults(t *testing.T) {
	b := NewBaseProcessor(nil)

	require.NotNil(t, b.GetBuses())
	assert.Equal(t, 2, b.GetBuses().MainChannelCount(0))
	assert.Same(t, b.Parameters(), b.GetParameters())
	assert.Zero(t, b.GetLatencySamples())
	assert.Zero(t, b.GetTailSamples())
	assert.False(t, b.IsActive())
}

func TestBaseProcessorCallbacks(t *testing.T) {
	b := NewBaseProcessor(nil)

	var gotRate float64
	var gotBlock int32
	b.OnInitialize(func(sampleRate float64, maxBlockSize int32) error {
		gotRate, gotBlock = sampleRate, maxBlockSize
		return nil
	})
	resets := 0
	b.OnReset(func() { resets++ })
	errInactive := errors.New("inactive")
	b.OnSetActive(func(active bool) error {
		if !active {
			return errInactive
		}
		return nil
	})

	require.NoError(t, b.Initialize(48000, 256))
	assert.Equal(t, 48000.0, gotRate)
	assert.Equal(t, int32(256), gotBlock)
	assert.Equal(t, 48000.0, b.SampleRate())
	assert.Equal(t, int32(256), b.MaxBlockSize())

	require.NoError(t, b.SetActive(true))
	assert.True(t, b.IsActive())
	assert.Zero(t, resets)

	assert.ErrorIs(t, b.SetActive(false), errInactive)
	assert.Equal(t, 1, resets)
}

func TestBaseProcessorState(t *testing.T) {
	src := NewBaseProcessor(nil)
	require.NoError(t, src.Parameters().Add(param.New(7, "Mix").Default(0.5).Build()))
	src.Parameters().Get(7).SetValue(0.125)

	var buf bytes.Buffer
	require.NoError(t, src.GetState(&buf))

	dst := NewBaseProcessor(nil)
	require.NoError(t, dst.Parameters().Add(param.New(7, "Mix").Default(0.5).Build()))
	loaded := false
	dst.OnStateLoad(func() { loaded = true })

	require.NoError(t, dst.SetState(&buf))
	assert.True(t, loaded)
	assert.Equal(t, 0.125, dst.Parameters().Get(7).GetValue())

	loaded = false
	err := dst.SetState(bytes.NewBufferString("garbage"))
	assert.ErrorIs(t, err, state.ErrInvalidFormat)
	assert.False(t, loaded)
}
