package graph

import (
	"context"
	"path"

	"go.trai.ch/samegraph/internal/core/domain"
	"go.trai.ch/samegraph/internal/core/ports"
	"go.trai.ch/zerr"
)

// Builder is the graph construction engine described by the top-level
// algorithm: seed a BFS queue with the user's requested targets, load and
// parse every specification file that closure touches, then link,
// classify, and validate the result. Construction is strictly
// single-threaded; SourceProvider reads block the caller and there is no
// cancellation short of ctx being used for tracing only.
type Builder struct {
	input    *domain.Input
	builders *domain.NodeBuilderSet
	source   ports.SourceProvider
	logger   ports.Logger
	tracer   ports.Tracer

	buildFiles map[string]*domain.BuildFile
	nodes      map[string]domain.Node
	ordered    []domain.Node

	toProcess     []string
	alreadyQueued map[string]struct{}
	processed     map[string]struct{}
}

// NewBuilder constructs a Builder for one parse. input and builders are
// borrowed for the lifetime of Build; source, logger, and tracer are the
// core's only collaborators with the outside world.
func NewBuilder(input *domain.Input, builders *domain.NodeBuilderSet, source ports.SourceProvider, logger ports.Logger, tracer ports.Tracer) *Builder {
	return &Builder{
		input:         input,
		builders:      builders,
		source:        source,
		logger:        logger,
		tracer:        tracer,
		buildFiles:    make(map[string]*domain.BuildFile),
		nodes:         make(map[string]domain.Node),
		alreadyQueued: make(map[string]struct{}),
		processed:     make(map[string]struct{}),
	}
}

// Build runs the full construction pipeline and returns the linked,
// pruned, classified result.
func (b *Builder) Build(ctx context.Context) (*Result, error) {
	ctx, span := b.tracer.Start(ctx, "graph.Build")
	defer span.End()

	seed := make([]string, 0, len(b.input.BuildTargets))
	for _, t := range b.input.BuildTargets {
		seed = append(seed, t.FullPath())
	}
	b.tracer.EmitPlan(ctx, seed)

	for _, fp := range seed {
		b.enqueue(fp)
	}

	for len(b.toProcess) > 0 {
		t := b.toProcess[0]
		b.toProcess = b.toProcess[1:]
		b.processed[t] = struct{}{}
		b.logger.Info("processing target " + t)
		if err := b.processTarget(ctx, t); err != nil {
			span.RecordError(err)
			return nil, err
		}
	}

	b.prune()

	if err := b.link(); err != nil {
		span.RecordError(err)
		return nil, err
	}

	inputNodes := b.classifyInputs()

	for _, n := range b.ordered {
		if err := n.PostParse(); err != nil {
			span.RecordError(err)
			return nil, err
		}
	}

	return &Result{
		InputNodes:      inputNodes,
		AllNodes:        b.nodes,
		AllNodesOrdered: b.ordered,
		BuildFiles:      b.buildFiles,
	}, nil
}

func (b *Builder) enqueue(fullPath string) {
	if _, ok := b.alreadyQueued[fullPath]; ok {
		return
	}
	b.alreadyQueued[fullPath] = struct{}{}
	b.toProcess = append(b.toProcess, fullPath)
}

// processTarget implements §4.5.1: ensure the target's owning
// specification (and its ancestor chain) is loaded, then expand its
// edges into the queue.
func (b *Builder) processTarget(ctx context.Context, t string) error {
	target, err := domain.NewTargetInfo(t, "")
	if err != nil {
		return err
	}
	if _, err := b.addFile(ctx, target.BuildFile()); err != nil {
		return err
	}
	return b.expandTarget(t)
}

// expandTarget implements §4.5.4: enqueue every dependency and required-
// parent target of the node at t.
func (b *Builder) expandTarget(t string) error {
	node, ok := b.nodes[t]
	if !ok {
		return zerr.With(domain.ErrUnresolvedDependency, "target", t)
	}
	for _, dep := range node.Base().DepTargets() {
		b.enqueue(dep.FullPath())
	}
	for _, rp := range node.Base().RequiredParents() {
		b.enqueue(rp.FullPath())
	}
	return nil
}

// prune implements §4.5 step 3: drop any node whose full_path was never
// popped from the BFS queue. Nodes reached only because their
// specification was loaded for an ancestor's sake, or as a sibling
// top-level object the user never referenced, are unreachable.
func (b *Builder) prune() {
	kept := make(map[string]domain.Node, len(b.processed))
	orderedKept := make([]domain.Node, 0, len(b.processed))
	for _, n := range b.ordered {
		fp := n.Base().Target().FullPath()
		if _, ok := b.processed[fp]; !ok {
			continue
		}
		kept[fp] = n
		orderedKept = append(orderedKept, n)
	}
	b.nodes = kept
	b.ordered = orderedKept
}

// link implements §4.5 step 4: resolve every dep_target to a Node
// pointer. Dependency cycles are not detected here; a cyclic graph is
// linked as is.
func (b *Builder) link() error {
	for _, n := range b.ordered {
		deps := n.Base().DepTargets()
		resolved := make([]domain.Node, 0, len(deps))
		for _, d := range deps {
			dn, ok := b.nodes[d.FullPath()]
			if !ok {
				return zerr.With(zerr.With(domain.ErrUnresolvedDependency, "target", n.Base().Target().FullPath()), "dep_target", d.FullPath())
			}
			resolved = append(resolved, dn)
		}
		n.Base().SetDependencyNodes(resolved)
	}
	return nil
}

// classifyInputs implements §4.5 step 5: a node is a user input if it was
// directly requested, or is recursively a required parent of one.
func (b *Builder) classifyInputs() []domain.Node {
	inSet := make(map[string]struct{})
	var order []string
	var queue []string

	for _, t := range b.input.BuildTargets {
		fp := t.FullPath()
		if _, ok := inSet[fp]; ok {
			continue
		}
		inSet[fp] = struct{}{}
		order = append(order, fp)
		queue = append(queue, fp)
	}

	for len(queue) > 0 {
		fp := queue[0]
		queue = queue[1:]

		n, ok := b.nodes[fp]
		if !ok {
			continue
		}
		for _, rp := range n.Base().RequiredParents() {
			rfp := rp.FullPath()
			if _, ok := inSet[rfp]; ok {
				continue
			}
			inSet[rfp] = struct{}{}
			order = append(order, rfp)
			queue = append(queue, rfp)
		}
	}

	nodes := make([]domain.Node, 0, len(order))
	for _, fp := range order {
		if n, ok := b.nodes[fp]; ok {
			nodes = append(nodes, n)
		}
	}
	return nodes
}

// directoryOfFilename returns the directory component of a specification
// path, e.g. "lib/sub/BUILD" -> "lib/sub", "BUILD" -> "".
func directoryOfFilename(filename string) string {
	d := path.Dir(filename)
	if d == "." {
		return ""
	}
	return d
}

// parentDirectory returns dir's parent in the canonical target-directory
// space, where "" denotes the workspace root and is its own fixed point.
func parentDirectory(dir string) string {
	if dir == "" {
		return ""
	}
	p := path.Dir(dir)
	if p == "." {
		return ""
	}
	return p
}
