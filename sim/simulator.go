// sim/simulator.go
package sim

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// Simulator is the core object that holds simulation time, system state, and
// the event loop. It owns the event queue, the FIFO wait queue and the
// completed-request ledger, and advances a logical clock strictly forward.
//
// A Simulator is consumed by a single Run call and is not reusable. Device
// busy-time accumulators live on the Cluster, so callers must construct a
// fresh Cluster per run unless they intentionally measure cumulative
// utilization across runs. Not safe for concurrent use; concurrent simulators
// must not share a Cluster instance.
type Simulator struct {
	Clock   float64
	Cluster *Cluster
	// EventQueue holds all pending arrival and device-free events
	EventQueue *EventQueue
	// WaitQ aka request waiting queue before a device frees up
	WaitQ *WaitQueue
	// CompletedRequests is the ledger of requests that finished service,
	// in completion order
	CompletedRequests []*Request
	// TotalRequests is the number of requests offered to Run
	TotalRequests int

	// requests maps request identity to entity for event resolution
	requests map[int64]*Request
	hasRun   bool
}

// NewSimulator creates a Simulator driving the given cluster.
func NewSimulator(cluster *Cluster) *Simulator {
	return &Simulator{
		Cluster:    cluster,
		EventQueue: NewEventQueue(),
		WaitQ:      &WaitQueue{},
		requests:   make(map[int64]*Request),
	}
}

// Schedule pushes an event into the simulator's EventQueue.
func (sim *Simulator) Schedule(ev *Event) {
	sim.EventQueue.Push(ev)
}

// Run executes the simulation to completion: every request is registered and
// its arrival scheduled, then events are processed in timestamp order until
// the queue drains. The clock only moves forward because the queue is a
// min-heap.
//
// Run returns an error only on an internal-consistency violation (unknown
// event kind or an event referencing an unregistered request); the run is
// aborted rather than producing silently wrong statistics. Panics if called
// more than once (run-once semantics).
func (sim *Simulator) Run(requests []*Request) error {
	if sim.hasRun {
		panic("Simulator.Run() called more than once")
	}
	sim.hasRun = true

	sim.TotalRequests = len(requests)
	for _, req := range requests {
		sim.requests[req.ID] = req
		sim.Schedule(&Event{
			Timestamp: req.ArrivalTime,
			Kind:      EventArrival,
			RequestID: req.ID,
		})
	}

	for sim.EventQueue.Len() > 0 {
		// get the next event to be simulated
		ev := sim.EventQueue.Pop()
		// advance the clock
		sim.Clock = ev.Timestamp
		logrus.Debugf("[t=%09.3f] Executing %s for request %d", sim.Clock, ev.Kind, ev.RequestID)
		// process the event
		if err := sim.execute(ev); err != nil {
			return fmt.Errorf("simulation aborted at t=%.3f: %w", sim.Clock, err)
		}
	}
	logrus.Debugf("[t=%09.3f] Simulation ended with %d completed requests", sim.Clock, len(sim.CompletedRequests))
	return nil
}

func (sim *Simulator) execute(ev *Event) error {
	req, ok := sim.requests[ev.RequestID]
	if !ok {
		return fmt.Errorf("event %s references unregistered request %d", ev.Kind, ev.RequestID)
	}
	switch ev.Kind {
	case EventArrival:
		sim.handleArrival(req)
		return nil
	case EventDeviceFree:
		return sim.handleCompletion(req, ev.DeviceID)
	default:
		return fmt.Errorf("unknown event kind %q", ev.Kind)
	}
}

// handleArrival dispatches an arriving request to the first available device,
// or parks it in the wait queue when the whole cluster is busy.
func (sim *Simulator) handleArrival(req *Request) {
	logrus.Debugf("<< Arrival: request %d at t=%.3f", req.ID, sim.Clock)
	if device := sim.Cluster.SelectDevice(); device != nil {
		sim.startService(device, req)
		return
	}
	sim.WaitQ.Enqueue(req)
}

// handleCompletion records the completion, frees the device, and immediately
// starts service for the oldest waiter if one exists. Draining one waiter per
// completion is what guarantees the loop terminates with an empty wait queue.
func (sim *Simulator) handleCompletion(req *Request, deviceID int) error {
	if deviceID < 0 || deviceID >= len(sim.Cluster.Devices) {
		return fmt.Errorf("device-free event references unknown device %d", deviceID)
	}
	device := sim.Cluster.Devices[deviceID]

	req.CompletionTime = sim.Clock
	sim.CompletedRequests = append(sim.CompletedRequests, req)
	logrus.Debugf(">> Completion: request %d on device %d at t=%.3f (latency %.3fs)",
		req.ID, device.ID, sim.Clock, req.Latency())

	device.Busy = false
	device.Current = nil

	if next := sim.WaitQ.Dequeue(); next != nil {
		sim.startService(device, next)
	}
	return nil
}

// startService marks the device busy, stamps the request's start time, and
// schedules the device-free event at clock + service duration.
func (sim *Simulator) startService(device *Device, req *Request) {
	device.Busy = true
	device.Current = req
	req.StartTime = sim.Clock

	duration := device.ServiceDuration(req)
	device.TotalBusyTime += duration

	sim.Schedule(&Event{
		Timestamp: sim.Clock + duration,
		Kind:      EventDeviceFree,
		RequestID: req.ID,
		DeviceID:  device.ID,
	})
}
