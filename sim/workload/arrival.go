package workload

import "math/rand"

// ArrivalSampler generates inter-arrival times for the request stream.
type ArrivalSampler interface {
	// SampleIAT returns the next inter-arrival time in seconds.
	// Always returns a non-negative value.
	SampleIAT(rng *rand.Rand) float64
}

// PoissonSampler realizes a Poisson arrival process by drawing
// exponentially-distributed inter-arrival gaps (CV=1).
type PoissonSampler struct {
	ratePerSec float64 // requests per second
}

// NewPoissonSampler creates a sampler for the given rate in requests/minute.
func NewPoissonSampler(requestsPerMinute float64) *PoissonSampler {
	return &PoissonSampler{ratePerSec: requestsPerMinute / 60.0}
}

func (s *PoissonSampler) SampleIAT(rng *rand.Rand) float64 {
	return rng.ExpFloat64() / s.ratePerSec
}
