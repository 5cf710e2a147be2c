package workload

import (
	"fmt"
	"math/rand"

	"github.com/inference-sim/capacity-sim/sim"
)

// Spec holds the statistical parameters for a generated workload.
type Spec struct {
	RequestsPerMinute float64 // Offered load
	DurationMinutes   float64 // Length of the generation window

	InputTokensMean    float64
	InputTokensStdDev  float64
	OutputTokensMean   float64
	OutputTokensStdDev float64

	// MaxLatencyMillis attaches an SLA deadline of arrival + MaxLatencyMillis
	// to every request when EnforceSLA is set.
	MaxLatencyMillis float64
	EnforceSLA       bool
}

// Validate reports the first configuration problem with the spec, or nil.
func (s *Spec) Validate() error {
	if s.RequestsPerMinute < 0 {
		return fmt.Errorf("workload: requests per minute must be non-negative, got %v", s.RequestsPerMinute)
	}
	if s.DurationMinutes < 0 {
		return fmt.Errorf("workload: duration must be non-negative, got %v minutes", s.DurationMinutes)
	}
	if s.InputTokensMean <= 0 || s.OutputTokensMean <= 0 {
		return fmt.Errorf("workload: token count means must be positive, got input=%v output=%v",
			s.InputTokensMean, s.OutputTokensMean)
	}
	if s.EnforceSLA && s.MaxLatencyMillis <= 0 {
		return fmt.Errorf("workload: SLA enforcement requires a positive max latency, got %v ms", s.MaxLatencyMillis)
	}
	return nil
}

// GenerateRequests creates a time-ordered request sequence from a Spec.
// Arrivals follow a Poisson process; token counts are Gaussian clamped to
// >= 1. The total count is floor(rate x duration); a count of 0 produces an
// empty sequence, not an error. IDs are assigned in generation order from 0.
//
// All randomness comes from the passed-in rng, so generation is reproducible
// for a fixed seed and RNG algorithm.
func GenerateRequests(spec *Spec, rng *rand.Rand) ([]*sim.Request, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}

	numRequests := int(spec.RequestsPerMinute * spec.DurationMinutes)
	if numRequests == 0 {
		return nil, nil
	}

	arrivalSampler := NewPoissonSampler(spec.RequestsPerMinute)
	inputSampler := NewGaussianSampler(spec.InputTokensMean, spec.InputTokensStdDev)
	outputSampler := NewGaussianSampler(spec.OutputTokensMean, spec.OutputTokensStdDev)

	requests := make([]*sim.Request, 0, numRequests)
	currentTime := 0.0
	for i := 0; i < numRequests; i++ {
		currentTime += arrivalSampler.SampleIAT(rng)

		req := sim.NewRequest(int64(i), currentTime, inputSampler.Sample(rng), outputSampler.Sample(rng))
		if spec.EnforceSLA {
			req.Deadline = currentTime + spec.MaxLatencyMillis/1000.0
		}
		requests = append(requests, req)
	}
	return requests, nil
}
