package sim

import "container/heap"

// EventKind discriminates the two instructions the event loop understands.
type EventKind string

const (
	// EventArrival marks a request entering the system at its arrival time.
	EventArrival EventKind = "ARRIVAL"
	// EventDeviceFree marks a device finishing service of its current request.
	EventDeviceFree EventKind = "DEVICE_FREE"
)

// Event is a timestamped instruction to the simulation clock. Events are
// transient: created when scheduled, consumed and discarded when popped.
// DeviceID is meaningful only for EventDeviceFree.
type Event struct {
	Timestamp float64
	Kind      EventKind
	RequestID int64
	DeviceID  int

	// seq is a monotonically increasing insertion counter assigned by the
	// EventQueue. Ties on Timestamp are broken by seq so the pop order is
	// identical across runs and heap implementations.
	seq int64
}

// EventQueue is a min-heap of events ordered by timestamp, then insertion
// order. See the canonical container/heap example:
// https://pkg.go.dev/container/heap#example-package-PriorityQueue
type EventQueue struct {
	events  eventHeap
	nextSeq int64
}

// NewEventQueue creates an empty event queue.
func NewEventQueue() *EventQueue {
	eq := &EventQueue{events: make(eventHeap, 0)}
	heap.Init(&eq.events)
	return eq
}

// Push schedules an event, stamping it with the next insertion sequence number.
func (eq *EventQueue) Push(ev *Event) {
	ev.seq = eq.nextSeq
	eq.nextSeq++
	heap.Push(&eq.events, ev)
}

// Pop removes and returns the earliest event, or nil if the queue is empty.
func (eq *EventQueue) Pop() *Event {
	if eq.Len() == 0 {
		return nil
	}
	return heap.Pop(&eq.events).(*Event)
}

// Len returns the number of pending events.
func (eq *EventQueue) Len() int {
	return eq.events.Len()
}

// eventHeap implements heap.Interface for *Event.
type eventHeap []*Event

func (h eventHeap) Len() int { return len(h) }

func (h eventHeap) Less(i, j int) bool {
	if h[i].Timestamp != h[j].Timestamp {
		return h[i].Timestamp < h[j].Timestamp
	}
	return h[i].seq < h[j].seq
}

func (h eventHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *eventHeap) Push(x any) {
	*h = append(*h, x.(*Event))
}

func (h *eventHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[0 : n-1]
	return item
}
