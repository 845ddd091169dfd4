package telemetry

import (
	"context"
	"errors"

	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
	"go.trai.ch/samegraph/internal/core/ports"
)

// Bridge implements sdktrace.SpanProcessor, translating every Builder
// span into ports.Renderer calls so a terminal tree or linear log can
// show construction progress without depending on OpenTelemetry itself.
type Bridge struct {
	renderer ports.Renderer
}

// NewBridge returns a new Bridge targeting renderer.
func NewBridge(renderer ports.Renderer) *Bridge {
	return &Bridge{renderer: renderer}
}

var _ sdktrace.SpanProcessor = (*Bridge)(nil)

// OnStart is called when a span starts.
func (b *Bridge) OnStart(parent context.Context, s sdktrace.ReadWriteSpan) {
	if b.renderer == nil {
		return
	}

	sc := s.SpanContext()
	if !sc.IsValid() {
		return
	}

	var parentID string
	if parentSpan := trace.SpanFromContext(parent); parentSpan.SpanContext().IsValid() {
		parentID = parentSpan.SpanContext().SpanID().String()
	}

	b.renderer.OnNodeStart(
		sc.SpanID().String(),
		parentID,
		s.Name(),
		s.StartTime(),
	)
}

// OnEnd is called when a span ends.
func (b *Bridge) OnEnd(s sdktrace.ReadOnlySpan) {
	if b.renderer == nil {
		return
	}

	sc := s.SpanContext()
	if !sc.IsValid() {
		return
	}

	var err error
	if s.Status().Code == codes.Error {
		desc := s.Status().Description
		if desc == "" {
			desc = "node processing failed"
		}
		err = errors.New(desc)
	}

	b.renderer.OnNodeComplete(
		sc.SpanID().String(),
		s.EndTime(),
		err,
	)
}

// ForceFlush does nothing; the bridge has no buffering of its own.
func (b *Bridge) ForceFlush(_ context.Context) error { return nil }

// Shutdown does nothing; the bridge has no resources of its own.
func (b *Bridge) Shutdown(_ context.Context) error { return nil }
