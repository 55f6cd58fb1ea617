package rough

// offsetRange returns a random offset in [min, max) scaled by the
// configured roughness and the given gain. The random draw always executes,
// even at roughness 0, so the stream position stays consistent whether or
// not jitter is enabled.
func offsetRange(min, max float64, o *Options, gain float64) float64 {
	return o.Roughness * gain * (o.random().Next()*(max-min) + min)
}

// offsetSymmetric returns a random offset in [-x, x) scaled by roughness
// and gain.
func offsetSymmetric(x float64, o *Options, gain float64) float64 {
	return offsetRange(-x, x, o, gain)
}

// jitter is offsetSymmetric with unit gain, the common case.
func jitter(x float64, o *Options) float64 {
	return offsetSymmetric(x, o, 1)
}
