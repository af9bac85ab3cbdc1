//go:build debug

package debug

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAssert(t *testing.T) {
	assert.NotPanics(t, func() { Assert(true, "never shown") })

	assert.PanicsWithValue(t, "value 3 out of range", func() {
		Assert(false, "value %d out of range", 3)
	})
}

func TestVerifyBufferReuse(t *testing.T) {
	buffer := make([]float32, 128)

	ptr1 := VerifyBufferReuse(buffer, "reuse_test", 0)
	assert.NotZero(t, ptr1)

	// Reslicing keeps the backing array
	ptr2 := VerifyBufferReuse(buffer[:16], "reuse_test", ptr1)
	assert.Equal(t, ptr1, ptr2)

	assert.Panics(t, func() {
		VerifyBufferReuse(make([]float32, 128), "reuse_test", ptr1)
	})
}

func TestVerifyBufferReuseEmpty(t *testing.T) {
	assert.Zero(t, VerifyBufferReuse(nil, "empty", 0))
}
