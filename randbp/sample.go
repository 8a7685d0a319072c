package randbp

// ShouldSampleWithRate draws a float64 in [0, 1) from the shared generator and
// checks it against rate.
//
// rate should be in the range of [0, 1].
// When rate <= 0 this function always returns false;
// When rate >= 1 this function always returns true.
func ShouldSampleWithRate(rate float64) bool {
	return Float64() < rate
}

// ShouldSampleWithRateFrom is ShouldSampleWithRate drawing from g instead.
func ShouldSampleWithRateFrom(g Generator, rate float64) bool {
	return g.Float64() < rate
}
