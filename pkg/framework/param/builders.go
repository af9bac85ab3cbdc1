package param

// Common parameter helpers

// SamplesParameter creates a sample count parameter ranging from one sample to max
func SamplesParameter(id uint32, name string, max, defaultVal float64) *Builder {
	return New(id, name).
		Range(1, max).
		Default(defaultVal).
		Unit("samples").
		Formatter(SamplesFormatter, SamplesParser)
}

// MultiplierParameter creates a speed/ratio multiplier parameter
func MultiplierParameter(id uint32, name string, min, max, defaultVal float64) *Builder {
	return New(id, name).
		Range(min, max).
		Default(defaultVal).
		Unit("x").
		Formatter(MultiplierFormatter, MultiplierParser)
}
