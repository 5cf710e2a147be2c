package sim

import "fmt"

// Device models one unit of compute capacity: a fixed time-to-first-token
// plus a steady-state decode rate. The Device itself is passive; the busy
// flag and current request are mutated only by the Simulator.
type Device struct {
	ID            int     // Index within the cluster (0..N-1)
	TTFTMillis    float64 // Time to first token in milliseconds
	DecodeRate    float64 // Steady-state output speed in tokens/second
	Busy          bool
	Current       *Request // Request currently owned; nil iff not Busy
	TotalBusyTime float64  // Cumulative service time in seconds across the run
}

// NewDevice validates the hardware parameters and creates an idle device.
func NewDevice(id int, ttftMillis, decodeRate float64) (*Device, error) {
	if ttftMillis <= 0 {
		return nil, fmt.Errorf("device %d: time-to-first-token must be positive, got %v ms", id, ttftMillis)
	}
	if decodeRate <= 0 {
		return nil, fmt.Errorf("device %d: decode rate must be positive, got %v tokens/sec", id, decodeRate)
	}
	return &Device{ID: id, TTFTMillis: ttftMillis, DecodeRate: decodeRate}, nil
}

// ServiceDuration returns the time in seconds this device needs to fully
// serve req: TTFT plus decode time for every output token. Pure function,
// no side effects.
func (d *Device) ServiceDuration(req *Request) float64 {
	return d.TTFTMillis/1000.0 + float64(req.OutputTokens)/d.DecodeRate
}
