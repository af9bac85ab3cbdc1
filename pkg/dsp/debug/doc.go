// Package debug provides consistency checks for DSP code.
//
// The checks are only compiled in when building with the 'debug' build tag.
// Release builds get no-op versions that the compiler inlines away, so the
// checks can sit directly in the audio path.
//
// Usage:
//
//	// Build or test with checks enabled
//	go test -tags debug ./...
//
//	func (c *Channel) Process(in, out []float32) {
//	    debug.Assert(len(in) == len(out), "block length mismatch: %d != %d", len(in), len(out))
//	    c.ptr = debug.VerifyBufferReuse(c.buffer, "capture", c.ptr)
//	    // ... audio processing ...
//	}
//
// A failed check panics with the formatted message. Violating the same
// condition in a release build is undefined behaviour of the caller, not a
// reported error.
package debug
