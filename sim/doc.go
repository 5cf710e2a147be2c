// Package sim provides the core discrete-event simulation engine for
// estimating the capacity, latency, and throughput of an LLM inference
// cluster serving a stream of variable-cost requests.
//
// # Reading Guide
//
// Start with these files to understand the simulation kernel:
//   - request.go: Request identity, token counts, and timing lifecycle
//   - event.go: The two event kinds (arrival, device-free) and the
//     deterministic min-heap event queue
//   - device.go, cluster.go: The device state machine and the
//     first-available dispatch policy
//   - simulator.go: The event loop, FIFO wait queue, and completion ledger
//   - metrics.go: Aggregate run statistics (latency percentiles,
//     throughput, SLA accounting, per-device utilization)
//
// Sub-packages build on the engine:
//   - sim/workload/: Poisson arrival + Gaussian token-length generation
//   - sim/capacity/: Binary search for the maximum sustainable request rate
//
// The engine is single-threaded and runs each simulation to completion
// synchronously. A Simulator and its Cluster are consumed by exactly one run;
// construct fresh instances per run.
package sim
