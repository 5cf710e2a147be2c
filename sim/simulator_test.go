package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mustCluster builds a cluster or fails the test.
func mustCluster(t *testing.T, numDevices int, ttftMillis, decodeRate float64) *Cluster {
	t.Helper()
	c, err := NewCluster(numDevices, ttftMillis, decodeRate)
	require.NoError(t, err)
	return c
}

// uniformRequests builds n requests with the given output token count,
// arriving intervalSec apart starting at t=0.
func uniformRequests(n, outputTokens int, intervalSec float64) []*Request {
	requests := make([]*Request, n)
	for i := range requests {
		requests[i] = NewRequest(int64(i), float64(i)*intervalSec, 50, outputTokens)
	}
	return requests
}

func TestSimulator_EmptyWorkload(t *testing.T) {
	s := NewSimulator(mustCluster(t, 2, 100, 50))
	require.NoError(t, s.Run(nil))

	stats := s.Stats()
	assert.Equal(t, 0, stats.TotalRequests)
	assert.Equal(t, 0, stats.CompletedRequests)
	assert.Equal(t, 0.0, stats.ThroughputRPM)
	assert.Equal(t, 0.0, stats.AvgLatencySec)
}

// Two devices, ttft=100ms, decode=50 tok/s, 10 requests of 100 output tokens
// arriving every 0.1s. Per-request service time = 0.1 + 100/50 = 2.1s.
// Devices 0 and 1 each serve five requests; queued requests complete in FIFO
// order at 2.1s steps behind their predecessor on the same device.
func TestSimulator_TwoDeviceScenario(t *testing.T) {
	cluster := mustCluster(t, 2, 100, 50)
	s := NewSimulator(cluster)
	requests := uniformRequests(10, 100, 0.1)
	require.NoError(t, s.Run(requests))

	assert.InDelta(t, 2.1, requests[0].CompletionTime, 1e-9)
	assert.InDelta(t, 2.2, requests[1].CompletionTime, 1e-9)
	// Request 2 queued behind request 0 on device 0
	assert.InDelta(t, 2.1, requests[2].StartTime, 1e-9)
	assert.InDelta(t, 4.2, requests[2].CompletionTime, 1e-9)
	assert.InDelta(t, 4.3, requests[3].CompletionTime, 1e-9)
	// Last request: fifth in line on device 1
	assert.InDelta(t, 10.6, requests[9].CompletionTime, 1e-9)

	stats := s.Stats()
	assert.Equal(t, 10, stats.CompletedRequests)

	// Each device served 5 requests of 2.1s each
	for _, d := range cluster.Devices {
		assert.InDelta(t, 5*2.1, d.TotalBusyTime, 1e-9)
	}
}

// A single device never serves two requests at once: with both arriving at
// t=0, the second starts no earlier than the first finishes.
func TestSimulator_SingleDeviceSerializes(t *testing.T) {
	s := NewSimulator(mustCluster(t, 1, 100, 50))
	requests := []*Request{
		NewRequest(0, 0, 50, 100),
		NewRequest(1, 0, 50, 100),
	}
	require.NoError(t, s.Run(requests))

	serviceTime := 2.1
	assert.InDelta(t, 0.0, requests[0].StartTime, 1e-9)
	assert.GreaterOrEqual(t, requests[1].StartTime, serviceTime)
	assert.InDelta(t, 2*serviceTime, requests[1].CompletionTime, 1e-9)
}

// N simultaneous arrivals on N devices all complete in parallel; the
// (N+k)-th waits for a free device, reflecting FIFO queuing.
func TestSimulator_ParallelThenQueued(t *testing.T) {
	n := 4
	s := NewSimulator(mustCluster(t, n, 100, 50))
	requests := uniformRequests(n+2, 100, 0)
	require.NoError(t, s.Run(requests))

	serviceTime := 2.1
	for i := 0; i < n; i++ {
		assert.InDelta(t, serviceTime, requests[i].CompletionTime, 1e-9)
	}
	for i := n; i < n+2; i++ {
		assert.InDelta(t, 2*serviceTime, requests[i].CompletionTime, 1e-9)
		assert.GreaterOrEqual(t, requests[i].StartTime, serviceTime)
	}
}

func TestSimulator_TimestampsRespectInvariants(t *testing.T) {
	s := NewSimulator(mustCluster(t, 2, 100, 50))
	requests := uniformRequests(20, 80, 0.05)
	require.NoError(t, s.Run(requests))

	for _, req := range requests {
		require.True(t, req.Completed())
		assert.LessOrEqual(t, req.ArrivalTime, req.StartTime)
		assert.LessOrEqual(t, req.StartTime, req.CompletionTime)
	}
	// Ledger is in completion order
	prev := 0.0
	for _, req := range s.CompletedRequests {
		assert.GreaterOrEqual(t, req.CompletionTime, prev)
		prev = req.CompletionTime
	}
}

// A rogue event referencing an unregistered request aborts the run instead
// of silently skipping.
func TestSimulator_UnknownRequestAbortsRun(t *testing.T) {
	s := NewSimulator(mustCluster(t, 1, 100, 50))
	s.Schedule(&Event{Timestamp: 1.0, Kind: EventDeviceFree, RequestID: 99, DeviceID: 0})

	err := s.Run(nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unregistered request")
}

func TestSimulator_UnknownEventKindAbortsRun(t *testing.T) {
	s := NewSimulator(mustCluster(t, 1, 100, 50))
	req := NewRequest(0, 0, 10, 10)
	s.requests[req.ID] = req
	s.Schedule(&Event{Timestamp: 1.0, Kind: EventKind("BOGUS"), RequestID: 0})

	err := s.Run(nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown event kind")
}

func TestSimulator_RunTwicePanics(t *testing.T) {
	s := NewSimulator(mustCluster(t, 1, 100, 50))
	require.NoError(t, s.Run(nil))
	assert.Panics(t, func() { _ = s.Run(nil) })
}
