package snapshot

// Status is a read-only view of a Channel's progress.
type Status struct {
	PlaybackLength int     // length of the snapshot being played
	Offset         float64 // normalized scan position, [0, 1)
	Elapsed        int     // samples processed in the current period
	Period         int     // length of the current period
	CaptureLength  int     // length of the snapshot being captured
	Captured       int     // samples captured so far
}

// Status reports the channel's current progress. It must not be called
// concurrently with Process.
func (c *Channel) Status() Status {
	return Status{
		PlaybackLength: len(c.current),
		Offset:         c.offsetNorm(),
		Elapsed:        c.offsetTotal,
		Period:         c.period,
		CaptureLength:  len(c.next),
		Captured:       c.nextLen,
	}
}

// Interpolation returns the channel's read mode.
func (c *Channel) Interpolation() Interpolation {
	return c.interp
}

// Capacity returns the preallocated size of each snapshot buffer.
func (c *Channel) Capacity() int {
	return cap(c.backing[0])
}
