// Package app wires the parser facade to a resolved output mode: it is
// the thin layer between a cobra command and internal/parser.Parser,
// responsible only for turning CLI-shaped arguments into a domain.Input,
// picking a renderer, and relaying span lifecycle events to it while
// construction runs.
package app

import (
	"context"

	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.trai.ch/samegraph/internal/adapters/detector"
	"go.trai.ch/samegraph/internal/adapters/inspect"
	"go.trai.ch/samegraph/internal/adapters/render"
	"go.trai.ch/samegraph/internal/adapters/telemetry"
	"go.trai.ch/samegraph/internal/core/domain"
	"go.trai.ch/samegraph/internal/core/ports"
	"go.trai.ch/samegraph/internal/engine/graph"
	"go.trai.ch/samegraph/internal/parser"
)

// App is the application layer for samegraph.
type App struct {
	parser *parser.Parser
	logger ports.Logger
}

// New creates a new App instance.
func New(p *parser.Parser, logger ports.Logger) *App {
	return &App{parser: p, logger: logger}
}

// RunOptions configures one Run call.
type RunOptions struct {
	RootDir        string
	ObjectDir      string
	ToolchainFlags []string
	OutputMode     string
	Inspect        bool
}

// Run parses targetNames into a domain.Input, resolves the graph, and
// (depending on opts.OutputMode) streams progress through a linear
// renderer as construction happens or, once construction is done and
// only if opts.Inspect is also set, opens the interactive inspector over
// the finished result.
func (a *App) Run(ctx context.Context, targetNames []string, opts RunOptions) (*graph.Result, error) {
	if len(targetNames) == 0 {
		return nil, domain.ErrNoTargetsSpecified
	}

	targets := make([]domain.TargetInfo, 0, len(targetNames))
	for _, name := range targetNames {
		t, err := domain.NewTargetInfo(name, "")
		if err != nil {
			return nil, err
		}
		targets = append(targets, t)
	}

	input := domain.NewInput(targets, opts.RootDir, opts.ObjectDir, opts.ToolchainFlags)

	autoMode := detector.DetectEnvironment()
	mode := detector.ResolveMode(autoMode, opts.OutputMode)

	// The linear renderer streams one line per span as construction
	// happens, since Build is synchronous; the inspector has nothing to
	// show until construction is finished, so it stays silent during
	// Parse and only starts once a complete *graph.Result exists.
	if mode == detector.ModeLinear {
		renderer := render.NewLinear(nil, nil)
		bridge := telemetry.NewBridge(renderer)
		setupOTel(bridge)
	}

	result, err := a.parser.Parse(ctx, input)
	if err != nil {
		return nil, err
	}

	if mode == detector.ModeInspect && opts.Inspect {
		if err := inspect.Run(result); err != nil {
			return result, err
		}
	}

	return result, nil
}

// setupOTel registers bridge as the global SpanProcessor so every span
// the parser's tracer opens during this Run is forwarded to whichever
// renderer this call chose.
func setupOTel(bridge *telemetry.Bridge) {
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(bridge))
	otel.SetTracerProvider(tp)
}
