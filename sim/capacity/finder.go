// Package capacity searches for the highest offered load a cluster sustains
// within a latency bound, using the simulator as a black-box oracle.
package capacity

import (
	"fmt"
	"math/rand"

	"github.com/sirupsen/logrus"

	"github.com/inference-sim/capacity-sim/sim"
	"github.com/inference-sim/capacity-sim/sim/workload"
)

const (
	// searchIterations bounds the binary search; 10 halvings give roughly
	// 0.1% relative precision on the bracket.
	searchIterations = 10

	// throughputFraction is the keeping-up criterion: a candidate load is
	// saturated if realized throughput falls below this fraction of it.
	throughputFraction = 0.95

	// searchHeadroom widens the upper bracket past the theoretical maximum
	// so the search can observe the cluster actually failing.
	searchHeadroom = 1.5
)

// Finder estimates the maximum sustainable request rate for a fixed cluster
// configuration and workload shape. Each evaluation generates a fresh
// workload and drives a freshly constructed Cluster and Simulator, so no
// busy-time accumulators or stale busy flags carry over between candidates.
//
// The oracle is noisy: every evaluation uses fresh random sampling, so the
// answer carries bounded sampling variance. Callers needing tighter
// confidence should average multiple Find calls with different seeds.
type Finder struct {
	NumDevices int
	TTFTMillis float64
	DecodeRate float64

	InputTokensMean    float64
	InputTokensStdDev  float64
	OutputTokensMean   float64
	OutputTokensStdDev float64

	rng *rand.Rand
}

// Result is the capacity-search output.
type Result struct {
	SustainableRPM    float64 // Best load classified sustainable; 0 if none found
	TheoreticalMaxRPM float64 // Closed-form bound used to seed the search
}

// NewFinder validates the cluster configuration and creates a Finder drawing
// workload randomness from rng.
func NewFinder(numDevices int, ttftMillis, decodeRate float64,
	inputTokensMean, inputTokensStdDev, outputTokensMean, outputTokensStdDev float64,
	rng *rand.Rand) (*Finder, error) {

	// Construct a throwaway cluster to reuse its configuration validation.
	if _, err := sim.NewCluster(numDevices, ttftMillis, decodeRate); err != nil {
		return nil, err
	}
	if inputTokensMean <= 0 || outputTokensMean <= 0 {
		return nil, fmt.Errorf("capacity: token count means must be positive, got input=%v output=%v",
			inputTokensMean, outputTokensMean)
	}
	return &Finder{
		NumDevices:         numDevices,
		TTFTMillis:         ttftMillis,
		DecodeRate:         decodeRate,
		InputTokensMean:    inputTokensMean,
		InputTokensStdDev:  inputTokensStdDev,
		OutputTokensMean:   outputTokensMean,
		OutputTokensStdDev: outputTokensStdDev,
		rng:                rng,
	}, nil
}

// TheoreticalMaxRPM is the closed-form upper bound on sustainable load:
// every device serving back-to-back requests of mean output length. It seeds
// the search bracket and is never returned as the answer itself.
func (f *Finder) TheoreticalMaxRPM() float64 {
	serviceTime := f.TTFTMillis/1000.0 + f.OutputTokensMean/f.DecodeRate
	return float64(f.NumDevices) / serviceTime * 60.0
}

// evaluate runs one simulation at the given offered load over an isolated
// cluster and returns its statistics.
func (f *Finder) evaluate(rpm, durationMin float64) (*sim.Stats, error) {
	spec := &workload.Spec{
		RequestsPerMinute:  rpm,
		DurationMinutes:    durationMin,
		InputTokensMean:    f.InputTokensMean,
		InputTokensStdDev:  f.InputTokensStdDev,
		OutputTokensMean:   f.OutputTokensMean,
		OutputTokensStdDev: f.OutputTokensStdDev,
	}
	requests, err := workload.GenerateRequests(spec, f.rng)
	if err != nil {
		return nil, err
	}

	cluster, err := sim.NewCluster(f.NumDevices, f.TTFTMillis, f.DecodeRate)
	if err != nil {
		return nil, err
	}
	s := sim.NewSimulator(cluster)
	if err := s.Run(requests); err != nil {
		return nil, err
	}
	return s.Stats(), nil
}

// Find binary-searches offered load in [1, headroom x theoretical max] for
// the highest rate the cluster sustains. A candidate is sustainable iff
// realized throughput stays within throughputFraction of the offered load
// and average latency stays at or below maxLatencySec. Each candidate is
// evaluated over durationMin simulated minutes.
func (f *Finder) Find(maxLatencySec, durationMin float64) (Result, error) {
	if maxLatencySec <= 0 {
		return Result{}, fmt.Errorf("capacity: latency threshold must be positive, got %v s", maxLatencySec)
	}
	if durationMin <= 0 {
		return Result{}, fmt.Errorf("capacity: evaluation duration must be positive, got %v minutes", durationMin)
	}

	theoretical := f.TheoreticalMaxRPM()
	logrus.Infof("Capacity search: theoretical max %.2f rpm across %d devices", theoretical, f.NumDevices)

	low := 1.0
	high := theoretical * searchHeadroom
	best := 0.0

	for i := 0; i < searchIterations; i++ {
		mid := (low + high) / 2
		stats, err := f.evaluate(mid, durationMin)
		if err != nil {
			return Result{}, err
		}

		sustainable := stats.ThroughputRPM >= mid*throughputFraction &&
			stats.AvgLatencySec <= maxLatencySec
		logrus.Debugf("Capacity search iter %d: offered %.2f rpm, realized %.2f rpm, avg latency %.3fs, sustainable=%v",
			i, mid, stats.ThroughputRPM, stats.AvgLatencySec, sustainable)

		if sustainable {
			best = mid
			low = mid
		} else {
			high = mid
		}
	}

	if best == 0 {
		logrus.Warnf("Capacity search found no sustainable rate under %.2fs latency bound", maxLatencySec)
	}
	return Result{SustainableRPM: best, TheoreticalMaxRPM: theoretical}, nil
}
