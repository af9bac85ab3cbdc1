// Package process provides the audio processing context handed to processors once per block.
package process

// Context provides a clean API for audio processing with zero allocations
type Context struct {
	Input      [][]float32
	Output     [][]float32
	SampleRate float64

	// Channel headers reused by SetBlock
	inputs  [][]float32
	outputs [][]float32
}

// NewContext creates a new process context able to carry maxChannels channels
// per direction without allocating
func NewContext(maxChannels int, sampleRate float64) *Context {
	return &Context{
		SampleRate: sampleRate,
		inputs:     make([][]float32, 0, maxChannels),
		outputs:    make([][]float32, 0, maxChannels),
	}
}

// SetBlock points the context at a new block. Channel slices are taken
// from in and out as [start:end]; the header slices are reused.
func (c *Context) SetBlock(in, out [][]float32, start, end int) {
	c.inputs = c.inputs[:0]
	for _, ch := range in {
		c.inputs = append(c.inputs, ch[start:end])
	}
	c.outputs = c.outputs[:0]
	for _, ch := range out {
		c.outputs = append(c.outputs, ch[start:end])
	}
	c.Input = c.inputs
	c.Output = c.outputs
}

// NumSamples returns the number of samples to process
func (c *Context) NumSamples() int {
	if len(c.Input) > 0 && len(c.Input[0]) > 0 {
		return len(c.Input[0])
	}
	if len(c.Output) > 0 && len(c.Output[0]) > 0 {
		return len(c.Output[0])
	}
	return 0
}

// NumInputChannels returns the number of input channels
func (c *Context) NumInputChannels() int {
	return len(c.Input)
}

// NumOutputChannels returns the number of output channels
func (c *Context) NumOutputChannels() int {
	return len(c.Output)
}

// Clear zeros the output buffers
func (c *Context) Clear() {
	for ch := range c.Output {
		clear(c.Output[ch])
	}
}
