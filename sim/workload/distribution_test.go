package workload

import (
	"math"
	"math/rand"
	"testing"
)

func TestGaussianSampler_MeanMatchesParam(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	s := NewGaussianSampler(512, 128)

	n := 10000
	sum := 0
	for i := 0; i < n; i++ {
		sum += s.Sample(rng)
	}
	mean := float64(sum) / float64(n)
	if math.Abs(mean-512)/512 > 0.05 {
		t.Errorf("gaussian mean = %.1f, want ≈ 512 (within 5%%)", mean)
	}
}

func TestGaussianSampler_ClampedToOne(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	// Mean far below 1 so nearly every raw draw is negative
	s := NewGaussianSampler(-100, 10)
	for i := 0; i < 10000; i++ {
		if v := s.Sample(rng); v < 1 {
			t.Fatalf("sample %d: token count %d below 1", i, v)
		}
	}
}

func TestGaussianSampler_ZeroStdDevIsConstant(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	s := NewGaussianSampler(256, 0)
	for i := 0; i < 100; i++ {
		if v := s.Sample(rng); v != 256 {
			t.Fatalf("sample %d: got %d, want 256", i, v)
		}
	}
}
