package process

// ProcessStereo processes up to 2 channels (stereo) with the given function
func (ctx *Context) ProcessStereo(fn func(ch int, input, output []float32)) {
	numChannels := ctx.GetNumStereoChannels()
	for ch := 0; ch < numChannels; ch++ {
		fn(ch, ctx.Input[ch], ctx.Output[ch])
	}
}

// GetNumChannels returns the minimum of input and output channels
func (ctx *Context) GetNumChannels() int {
	return min(ctx.NumInputChannels(), ctx.NumOutputChannels())
}

// GetNumStereoChannels returns the number of channels capped at 2
func (ctx *Context) GetNumStereoChannels() int {
	return min(ctx.GetNumChannels(), 2)
}
