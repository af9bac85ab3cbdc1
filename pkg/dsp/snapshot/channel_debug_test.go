//go:build debug

package snapshot

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChannelBlockLengthMismatch(t *testing.T) {
	c := NewChannel(WithMaxCapture(8))

	assert.Panics(t, func() {
		c.Process(settings(4, 4, 1), make([]float32, 4), make([]float32, 3))
	})
}
