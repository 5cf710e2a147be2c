// sim/metrics_utils.go
package sim

import (
	"math"
	"sort"
)

// CalculatePercentile returns the p-th percentile of sorted data using linear
// interpolation between ranks. Input must be sorted ascending. Returns 0 for
// empty input.
func CalculatePercentile(sorted []float64, p float64) float64 {
	n := len(sorted)
	if n == 0 {
		return 0
	}
	if n == 1 {
		return sorted[0]
	}

	rank := p / 100.0 * float64(n-1)
	lowerIdx := int(math.Floor(rank))
	upperIdx := int(math.Ceil(rank))
	if upperIdx >= n {
		return sorted[n-1]
	}
	if lowerIdx == upperIdx {
		return sorted[lowerIdx]
	}
	frac := rank - float64(lowerIdx)
	return sorted[lowerIdx] + frac*(sorted[upperIdx]-sorted[lowerIdx])
}

// CalculateMean returns the arithmetic mean of a data list, 0 for empty input.
func CalculateMean(numbers []float64) float64 {
	if len(numbers) == 0 {
		return 0
	}
	sum := 0.0
	for _, number := range numbers {
		sum += number
	}
	return sum / float64(len(numbers))
}

// sortedCopy returns an ascending-sorted copy, leaving the input untouched.
func sortedCopy(values []float64) []float64 {
	out := make([]float64, len(values))
	copy(out, values)
	sort.Float64s(out)
	return out
}
