package workload

import (
	"math"
	"math/rand"
)

// LengthSampler generates token count samples.
type LengthSampler interface {
	// Sample returns a positive token count (>= 1).
	Sample(rng *rand.Rand) int
}

// GaussianSampler produces normally-distributed token lengths, floored to an
// integer and clamped to a minimum of 1. Token counts below 1 are nonsensical
// and must never be emitted.
type GaussianSampler struct {
	mean, stdDev float64
}

// NewGaussianSampler creates a sampler with the given mean and standard
// deviation in tokens.
func NewGaussianSampler(mean, stdDev float64) *GaussianSampler {
	return &GaussianSampler{mean: mean, stdDev: stdDev}
}

func (s *GaussianSampler) Sample(rng *rand.Rand) int {
	val := rng.NormFloat64()*s.stdDev + s.mean
	result := int(math.Floor(val))
	if result < 1 {
		return 1
	}
	return result
}
