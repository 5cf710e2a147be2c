package workload

import (
	"math"
	"math/rand"
	"testing"
)

func TestPoissonSampler_MeanMatchesRate(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	// 600 rpm = 10 requests/sec, so mean inter-arrival gap = 0.1s
	s := NewPoissonSampler(600)

	n := 100000
	sum := 0.0
	for i := 0; i < n; i++ {
		sum += s.SampleIAT(rng)
	}
	mean := sum / float64(n)
	if math.Abs(mean-0.1)/0.1 > 0.05 {
		t.Errorf("poisson mean IAT = %.4f, want ≈ 0.1 (within 5%%)", mean)
	}
}

func TestPoissonSampler_AlwaysNonNegative(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	s := NewPoissonSampler(60)
	for i := 0; i < 10000; i++ {
		if iat := s.SampleIAT(rng); iat < 0 {
			t.Fatalf("sample %d: negative inter-arrival time %v", i, iat)
		}
	}
}
