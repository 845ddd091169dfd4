// Package parser exposes the graph-construction engine as a single
// reusable facade, the way internal/app exposes the teacher's scheduler
// to its commands.
package parser

import (
	"context"

	"go.trai.ch/samegraph/internal/core/domain"
	"go.trai.ch/samegraph/internal/core/ports"
	"go.trai.ch/samegraph/internal/engine/graph"
)

// Parser runs one specification set's worth of graph construction at a
// time. It owns the node-kind registry, which is fixed for the process's
// lifetime, and is otherwise stateless between calls to Parse.
type Parser struct {
	source ports.SourceProvider
	logger ports.Logger
	tracer ports.Tracer

	registerKinds func(*domain.NodeBuilderSet)
}

// New creates a Parser. registerKinds installs every known node
// constructor into a fresh NodeBuilderSet at the start of each Parse
// call; wiring supplies this once, at startup, from the fixed set of
// kinds the binary knows how to build.
func New(source ports.SourceProvider, logger ports.Logger, tracer ports.Tracer, registerKinds func(*domain.NodeBuilderSet)) *Parser {
	return &Parser{
		source:        source,
		logger:        logger,
		tracer:        tracer,
		registerKinds: registerKinds,
	}
}

// Parse runs graph construction for input's requested targets and
// returns the fully linked, pruned, classified result. Each call is
// independent: node kinds are re-registered against a fresh
// NodeBuilderSet bound to this input, so a CCBinary constructed on one
// call never leaks state into another.
func (p *Parser) Parse(ctx context.Context, input *domain.Input) (*graph.Result, error) {
	builders := domain.NewNodeBuilderSet(input)
	p.registerKinds(builders)

	b := graph.NewBuilder(input, builders, p.source, p.logger, p.tracer)
	return b.Build(ctx)
}

// Reset is a no-op today; it exists so a long-lived Parser (e.g. the
// inspector's watch mode) has an explicit seam to drop any caching this
// facade grows in the future without changing its call sites.
func (p *Parser) Reset() {}
