package ports

import "context"

// SpanConfig carries span-creation options. It is a placeholder today,
// mirroring the teacher's own forward-compatible shape for Start's
// variadic options.
type SpanConfig struct{}

// SpanOption configures a SpanConfig.
type SpanOption func(*SpanConfig)

// Span is one traced unit of graph-construction work, e.g. loading one
// specification file or expanding one plugin key.
type Span interface {
	// End completes the span.
	End()

	// RecordError attaches a fatal error to the span.
	RecordError(err error)

	// SetAttribute attaches a key/value pair to the span for later
	// inspection.
	SetAttribute(key string, value any)
}

// Tracer instruments graph construction. The core calls Start around
// the whole Build run and around each add_file; it never reads back span
// data, so implementations are free to discard it entirely.
//
//go:generate mockgen -source=tracer.go -destination=mocks/mock_tracer.go -package=mocks
type Tracer interface {
	// Start begins a span named name, returning a context carrying it
	// and the span itself.
	Start(ctx context.Context, name string, opts ...SpanOption) (context.Context, Span)

	// EmitPlan announces the set of user-requested targets the BFS was
	// seeded with.
	EmitPlan(ctx context.Context, seedTargets []string)
}
