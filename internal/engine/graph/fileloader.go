package graph

import (
	"context"

	"go.trai.ch/samegraph/internal/core/domain"
	"go.trai.ch/zerr"
)

// addFile implements §4.5.2: memoised, recursive specification loading.
// It fetches filename through the SourceProvider, merges in its ancestor
// chain's inherited environment and base dependencies, parses its
// attribute tree, runs both parse passes over its top-level objects, and
// wires the resulting nodes' base dependencies.
func (b *Builder) addFile(ctx context.Context, filename string) (*domain.BuildFile, error) {
	if file, ok := b.buildFiles[filename]; ok {
		return file, nil
	}

	ctx, span := b.tracer.Start(ctx, "graph.addFile")
	defer span.End()
	span.SetAttribute("filename", filename)

	if err := b.source.InitializeForFile(filename); err != nil {
		wrapped := zerr.With(zerr.Wrap(err, domain.ErrSourceUnavailable.Error()), "filename", filename)
		span.RecordError(wrapped)
		return nil, wrapped
	}

	file := domain.NewBuildFile(filename)
	// Insert before recursing: a diamond ancestor layout (two files
	// sharing a distant common ancestor) must resolve the shared
	// ancestor once, not loop.
	b.buildFiles[filename] = file

	if err := b.mergeAncestors(ctx, file, filename); err != nil {
		span.RecordError(err)
		return nil, err
	}

	text, err := b.source.ReadToString(filename)
	if err != nil {
		wrapped := zerr.With(zerr.Wrap(err, domain.ErrIO.Error()), "filename", filename)
		span.RecordError(wrapped)
		return nil, wrapped
	}

	if err := file.Parse([]byte(text)); err != nil {
		span.RecordError(err)
		return nil, err
	}

	fileNodes, err := b.parseFileBody(ctx, file)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	if err := b.wireBaseDependencies(file, fileNodes); err != nil {
		span.RecordError(err)
		return nil, err
	}

	return file, nil
}

// mergeAncestors walks from filename's directory up to the workspace
// root, merging each ancestor specification's inherited_env and
// base_dependencies into file. Nearer ancestors are merged first, so
// their values take precedence over more distant ones (MergeParent only
// fills keys the child doesn't already have).
func (b *Builder) mergeAncestors(ctx context.Context, file *domain.BuildFile, filename string) error {
	current := directoryOfFilename(filename)
	for current != "" {
		parentDir := parentDirectory(current)
		parentFile, err := b.addFile(ctx, domain.BuildFilePath(parentDir))
		if err != nil {
			return err
		}
		file.MergeParent(parentFile)
		current = parentDir
	}
	return nil
}

// parseFileBody runs the first pass (config/plugin), pre-parse dependency
// loading, the plugin expansion fixpoint, and the second pass (every
// other top-level object), returning every node produced from this file
// in insertion order.
func (b *Builder) parseFileBody(ctx context.Context, file *domain.BuildFile) ([]domain.Node, error) {
	var fileNodes []domain.Node

	var firstPass []domain.Node
	for _, obj := range file.AttributeNodes() {
		for _, m := range obj.Members() {
			if m.Key != "config" && m.Key != "plugin" {
				continue
			}
			nodes, err := b.parseSingleNode(file, m.Value, m.Key)
			if err != nil {
				return nil, err
			}
			firstPass = append(firstPass, nodes...)
			fileNodes = append(fileNodes, nodes...)
		}
	}

	for _, n := range firstPass {
		for _, pp := range n.Base().PreParse() {
			depFile, err := b.addFile(ctx, pp.BuildFile())
			if err != nil {
				return nil, err
			}
			file.MergeDependency(depFile)
		}
	}

	for _, obj := range file.AttributeNodes() {
		if err := b.expandObject(file, obj); err != nil {
			return nil, err
		}
	}

	for _, obj := range file.AttributeNodes() {
		for _, m := range obj.Members() {
			if m.Key == "config" || m.Key == "plugin" {
				continue
			}
			nodes, err := b.parseSingleNode(file, m.Value, m.Key)
			if err != nil {
				return nil, err
			}
			fileNodes = append(fileNodes, nodes...)
		}
	}

	return fileNodes, nil
}

// wireBaseDependencies implements §4.5.2 step 9: every base dependency of
// file is appended to the dep_targets of every node parsed from file,
// except the base dependency's own node.
func (b *Builder) wireBaseDependencies(file *domain.BuildFile, fileNodes []domain.Node) error {
	for _, dep := range file.BaseDependencies() {
		depNode, ok := b.nodes[dep]
		if !ok {
			return zerr.With(zerr.With(domain.ErrUnresolvedDependency, "filename", file.Filename()), "base_dependency", dep)
		}
		for _, n := range fileNodes {
			if n.Base().Target().FullPath() == dep {
				continue
			}
			n.Base().AddDepTarget(depNode.Base().Target())
		}
	}
	return nil
}
