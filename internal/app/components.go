package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/samegraph/internal/adapters/logger"
	"go.trai.ch/samegraph/internal/adapters/source"
	"go.trai.ch/samegraph/internal/adapters/telemetry"
	"go.trai.ch/samegraph/internal/core/ports"
	"go.trai.ch/samegraph/internal/kinds"
	"go.trai.ch/samegraph/internal/parser"
)

// Components is the fully wired set of top-level services cmd/samegraph
// needs: the App itself plus anything a command wants direct access to
// (the logger, for reporting a startup failure before the App exists).
type Components struct {
	App    *App
	Logger ports.Logger
}

// NodeID is the unique identifier for the top-level Components Graft node.
const NodeID graft.ID = "app.components"

func init() {
	graft.Register(graft.Node[*Components]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{source.NodeID, logger.NodeID},
		Run: func(ctx context.Context) (*Components, error) {
			src, err := graft.Dep[ports.SourceProvider](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			tracer := telemetry.NewOTelTracer("samegraph")
			p := parser.New(src, log, tracer, kinds.Register)

			return &Components{
				App:    New(p, log),
				Logger: log,
			}, nil
		},
	})
}
