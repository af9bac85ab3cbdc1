//go:build debug

package debug

import (
	"fmt"
	"unsafe"
)

// Enabled reports whether consistency checks are compiled in.
const Enabled = true

// Assert panics with the formatted message when cond is false.
func Assert(cond bool, format string, args ...any) {
	if !cond {
		panic(fmt.Sprintf(format, args...))
	}
}

// VerifyBufferReuse checks that a buffer still points at the same backing
// array as on a previous call. Pass 0 as expectedPtr on the first call and
// feed the returned pointer back on later calls.
func VerifyBufferReuse(buffer []float32, name string, expectedPtr uintptr) uintptr {
	if cap(buffer) == 0 {
		return 0
	}

	ptr := uintptr(unsafe.Pointer(unsafe.SliceData(buffer)))
	if expectedPtr != 0 && ptr != expectedPtr {
		panic(fmt.Sprintf("Buffer %s was reallocated! Expected ptr %x, got %x",
			name, expectedPtr, ptr))
	}

	return ptr
}
