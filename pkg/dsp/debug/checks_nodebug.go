//go:build !debug

package debug

// Enabled reports whether consistency checks are compiled in.
const Enabled = false

// Assert is a no-op when not in debug mode
func Assert(cond bool, format string, args ...any) {}

// VerifyBufferReuse is a no-op when not in debug mode
func VerifyBufferReuse(buffer []float32, name string, expectedPtr uintptr) uintptr {
	return 0
}
