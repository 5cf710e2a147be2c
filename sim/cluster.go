package sim

import "fmt"

// Cluster owns a fixed-size, ordered pool of identical devices and the
// dispatch policy for picking one to serve an incoming request. It holds no
// request-level state; queueing happens in the Simulator.
type Cluster struct {
	Devices []*Device
}

// NewCluster creates numDevices identical devices. Device count, TTFT and
// decode rate must all be positive; anything else is a configuration error
// reported before any simulation runs.
func NewCluster(numDevices int, ttftMillis, decodeRate float64) (*Cluster, error) {
	if numDevices <= 0 {
		return nil, fmt.Errorf("cluster: device count must be positive, got %d", numDevices)
	}
	devices := make([]*Device, numDevices)
	for i := range devices {
		d, err := NewDevice(i, ttftMillis, decodeRate)
		if err != nil {
			return nil, fmt.Errorf("cluster: %w", err)
		}
		devices[i] = d
	}
	return &Cluster{Devices: devices}, nil
}

// SelectDevice implements the first-available dispatch policy: scan devices
// in index order and return the first idle one. Returns nil when every
// device is busy, signalling the caller to enqueue the request. Ties among
// idle devices always resolve to the lowest index, keeping dispatch
// deterministic.
func (c *Cluster) SelectDevice() *Device {
	for _, d := range c.Devices {
		if !d.Busy {
			return d
		}
	}
	return nil
}

// Size returns the number of devices in the cluster.
func (c *Cluster) Size() int {
	return len(c.Devices)
}
