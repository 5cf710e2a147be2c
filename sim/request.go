// Defines the Request struct that models an individual inference request in the
// simulation. Tracks arrival, dispatch and completion timestamps.

package sim

import "fmt"

// timeUnset is the sentinel for the StartTime/CompletionTime fields of a
// Request that has not yet reached that point of its lifecycle.
const timeUnset = -1.0

// Request models a single request's lifecycle in the simulation.
// The identity and token counts are fixed at generation time; the timing
// fields are written exactly twice by the Simulator: StartTime on dispatch,
// CompletionTime on completion.
type Request struct {
	ID int64 // Unique sequence number, assigned in generation order from 0

	ArrivalTime  float64 // Arrival time in seconds from simulation start
	InputTokens  int     // Prompt token count (>= 1)
	OutputTokens int     // Output token count (>= 1)

	// Deadline is the absolute simulation time after which the request counts
	// as an SLA violation. Zero means no deadline was attached.
	Deadline float64

	StartTime      float64 // Set once on dispatch; timeUnset until then
	CompletionTime float64 // Set once on completion; timeUnset until then
}

// NewRequest creates a Request with unset timing fields.
func NewRequest(id int64, arrivalTime float64, inputTokens, outputTokens int) *Request {
	return &Request{
		ID:             id,
		ArrivalTime:    arrivalTime,
		InputTokens:    inputTokens,
		OutputTokens:   outputTokens,
		StartTime:      timeUnset,
		CompletionTime: timeUnset,
	}
}

// Started reports whether the request has been dispatched to a device.
func (r *Request) Started() bool {
	return r.StartTime >= 0
}

// Completed reports whether the request has finished service.
func (r *Request) Completed() bool {
	return r.CompletionTime >= 0
}

// Latency returns completion minus arrival time in seconds.
// Valid only once the request has completed; returns 0 otherwise.
func (r *Request) Latency() float64 {
	if !r.Completed() {
		return 0
	}
	return r.CompletionTime - r.ArrivalTime
}

// HasDeadline reports whether an SLA deadline was attached at generation time.
func (r *Request) HasDeadline() bool {
	return r.Deadline > 0
}

// MissedDeadline reports whether the request completed after its deadline.
// Always false for requests without a deadline.
func (r *Request) MissedDeadline() bool {
	return r.HasDeadline() && r.Completed() && r.CompletionTime > r.Deadline
}

func (r Request) String() string {
	return fmt.Sprintf("Request: (ID: %d, ArrivalTime: %.3f, InputTokens: %d, OutputTokens: %d)",
		r.ID, r.ArrivalTime, r.InputTokens, r.OutputTokens)
}
