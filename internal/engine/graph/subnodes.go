package graph

import (
	"go.trai.ch/samegraph/internal/core/domain"
	"go.trai.ch/zerr"
)

// parseSingleNode implements §4.5.3: build the node's TargetInfo,
// construct it via the builder set, parse it, pull out any subnodes it
// spawned via NewSubnode / NewSubnodeWithCurrentDeps, and insert the
// whole family into the global node population, children before parent
// so a parent's PostParse can assume its subnodes are already indexed.
func (b *Builder) parseSingleNode(file *domain.BuildFile, attr *domain.AttributeTree, kind string) ([]domain.Node, error) {
	name, ok := attr.Get("name").String()
	if !ok || name == "" {
		name = file.NextName("auto_")
	}

	target, err := domain.NewTargetInfo(":"+name, directoryOfFilename(file.Filename()))
	if err != nil {
		return nil, err
	}

	node, err := b.builders.New(kind, target)
	if err != nil {
		return nil, zerr.With(err, "filename", file.Filename())
	}

	if err := node.Parse(file, attr); err != nil {
		return nil, err
	}

	var subnodes []domain.Node
	node.ExtractSubnodes(&subnodes)

	all := append(subnodes, node)
	if err := b.insertNodes(file, all); err != nil {
		return nil, err
	}

	return all, nil
}

// insertNodes adds every node in nodes to the builder's global
// population, in order, failing with ErrDuplicateTarget on collision.
func (b *Builder) insertNodes(file *domain.BuildFile, nodes []domain.Node) error {
	for _, n := range nodes {
		fullPath := n.Base().Target().FullPath()
		if _, exists := b.nodes[fullPath]; exists {
			return zerr.With(zerr.With(domain.ErrDuplicateTarget, "full_path", fullPath), "filename", file.Filename())
		}
		b.nodes[fullPath] = n
		b.ordered = append(b.ordered, n)
	}
	return nil
}
