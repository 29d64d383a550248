package finalizerkit

// Default configuration values for NewMutator.
// These constants are exported so callers can reference the defaults when
// building custom configurations relative to them.
const (
	// DefaultBatchLimit is the maximum number of concurrent per-object
	// operations in AddFinalizerAll and RemoveFinalizerAll. Each operation
	// is two short API round trips, so a small bound keeps batch calls
	// from flooding the apiserver while still overlapping network latency.
	DefaultBatchLimit = 10
)
