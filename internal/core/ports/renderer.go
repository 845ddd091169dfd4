package ports

import "time"

// Renderer decouples the graph builder's span events from how they are
// presented. render.Linear, a flat CI-safe log, is its implementation
// in this module.
//
//go:generate mockgen -source=renderer.go -destination=mocks/mock_renderer.go -package=mocks
type Renderer interface {
	// Start initializes the renderer and begins its lifecycle. For
	// asynchronous renderers, this may launch background goroutines.
	Start() error

	// Stop signals the renderer to stop accepting new events and flush
	// any buffered output.
	Stop() error

	// Wait blocks until the renderer has fully terminated. Synchronous
	// renderers may return immediately.
	Wait() error

	// OnPlanEmit is called once construction's BFS queue has been seeded
	// with the user's requested targets.
	OnPlanEmit(seedTargets []string)

	// OnNodeStart is called when processing a target begins.
	// spanID: unique identifier for this processing span
	// parentID: spanID of the span that enqueued this target (empty if a seed)
	// name: the target's full_path
	// startTime: when processing started
	OnNodeStart(spanID, parentID, name string, startTime time.Time)

	// OnNodeComplete is called when processing a target finishes.
	// spanID: identifier for the span
	// endTime: when processing completed
	// err: nil if successful, error otherwise
	OnNodeComplete(spanID string, endTime time.Time, err error)
}
