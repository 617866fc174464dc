package parameter

const (
	// EventQueueSize is the contact event ring buffer capacity.
	// Must be a power of two for mask-based indexing
	EventQueueSize  = 4096
	EventBufferMask = EventQueueSize - 1

	// DefaultResolverWorkers is the worker count for the parallel
	// resolution phase when the caller does not set one
	DefaultResolverWorkers = 4
)
