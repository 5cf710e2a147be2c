// Aggregates simulation-wide statistics for final reporting: latency
// distribution, throughput, SLA accounting and per-device utilization.

package sim

import "fmt"

// Stats is the aggregate output of one simulation run. All latencies are in
// seconds, throughput in requests per minute, utilizations in [0, 1].
type Stats struct {
	TotalRequests      int // Number of requests offered to the run
	CompletedRequests  int // Number of requests that finished service
	DroppedRequests    int // Completed requests that missed their deadline (reporting only)
	CompletedWithinSLA int // Completed requests that met their deadline (or had none)

	AvgLatencySec float64
	P50LatencySec float64
	P90LatencySec float64
	P99LatencySec float64
	MaxLatencySec float64

	ThroughputRPM float64   // completed / elapsed simulated time, in requests/minute
	ElapsedSec    float64   // final simulation clock
	Utilization   []float64 // per-device cumulative busy time / elapsed time
}

// Saturation thresholds mirrored from the capacity-planning guidance the
// statistics feed into: above High the cluster is bottlenecked, below Low it
// is a downscaling candidate.
const (
	SaturationHigh = 0.95
	SaturationLow  = 0.30
)

// Stats computes run statistics from the completed ledger. It reads but never
// mutates simulator state, so calling it repeatedly on the same finished run
// yields identical results. A run with zero completed requests yields
// well-defined zero statistics rather than an error.
func (sim *Simulator) Stats() *Stats {
	s := &Stats{
		TotalRequests: sim.TotalRequests,
		ElapsedSec:    sim.Clock,
		Utilization:   make([]float64, len(sim.Cluster.Devices)),
	}

	if sim.Clock > 0 {
		for i, d := range sim.Cluster.Devices {
			s.Utilization[i] = d.TotalBusyTime / sim.Clock
		}
	}

	s.CompletedRequests = len(sim.CompletedRequests)
	if s.CompletedRequests == 0 {
		return s
	}

	latencies := make([]float64, 0, s.CompletedRequests)
	for _, req := range sim.CompletedRequests {
		lat := req.Latency()
		latencies = append(latencies, lat)
		if lat > s.MaxLatencySec {
			s.MaxLatencySec = lat
		}
		if req.MissedDeadline() {
			s.DroppedRequests++
		} else {
			s.CompletedWithinSLA++
		}
	}

	s.AvgLatencySec = CalculateMean(latencies)
	sorted := sortedCopy(latencies)
	s.P50LatencySec = CalculatePercentile(sorted, 50)
	s.P90LatencySec = CalculatePercentile(sorted, 90)
	s.P99LatencySec = CalculatePercentile(sorted, 99)

	if sim.Clock > 0 {
		s.ThroughputRPM = float64(s.CompletedRequests) / sim.Clock * 60.0
	}
	return s
}

// AvgUtilization returns the mean utilization across all devices.
func (s *Stats) AvgUtilization() float64 {
	if len(s.Utilization) == 0 {
		return 0
	}
	sum := 0.0
	for _, u := range s.Utilization {
		sum += u
	}
	return sum / float64(len(s.Utilization))
}

// Saturated reports whether the cluster ran bottlenecked for the whole run.
func (s *Stats) Saturated() bool {
	return s.AvgUtilization() > SaturationHigh
}

// Underutilized reports whether the cluster could likely be downscaled.
func (s *Stats) Underutilized() bool {
	return s.AvgUtilization() < SaturationLow
}

// Print displays aggregated statistics at the end of the simulation.
func (s *Stats) Print() {
	fmt.Println("=== Simulation Statistics ===")
	fmt.Printf("Requests Offered     : %d\n", s.TotalRequests)
	fmt.Printf("Requests Completed   : %d\n", s.CompletedRequests)
	if s.DroppedRequests > 0 || s.CompletedWithinSLA != s.CompletedRequests {
		fmt.Printf("Within SLA           : %d\n", s.CompletedWithinSLA)
		fmt.Printf("Dropped (SLA missed) : %d\n", s.DroppedRequests)
	}
	if s.CompletedRequests > 0 {
		fmt.Printf("Average Latency      : %.3f s\n", s.AvgLatencySec)
		fmt.Printf("P50 / P90 / P99      : %.3f / %.3f / %.3f s\n", s.P50LatencySec, s.P90LatencySec, s.P99LatencySec)
		fmt.Printf("Max Latency          : %.3f s\n", s.MaxLatencySec)
		fmt.Printf("Throughput           : %.2f requests/min\n", s.ThroughputRPM)
	}
	fmt.Printf("Simulated Time       : %.2f s\n", s.ElapsedSec)
	for i, u := range s.Utilization {
		fmt.Printf("Device %-2d Utilization: %.1f%%\n", i, u*100)
	}
	if len(s.Utilization) > 0 {
		fmt.Printf("Average Utilization  : %.1f%%\n", s.AvgUtilization()*100)
	}
}
