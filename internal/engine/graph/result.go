// Package graph implements the parse/resolve engine: specification
// discovery, parent inheritance, plugin expansion, and the BFS closure
// over dependency and required-parent edges that produces a fully-linked
// node population.
package graph

import "go.trai.ch/samegraph/internal/core/domain"

// Result is everything graph construction produces, ready for a Parser
// facade to expose to downstream emitters.
type Result struct {
	// InputNodes are the user-requested roots plus every node
	// recursively promoted via required-parent membership.
	InputNodes []domain.Node

	// AllNodes maps full_path to Node for every node that survived
	// pruning.
	AllNodes map[string]domain.Node

	// AllNodesOrdered is AllNodes in stable insertion order, for
	// emitters that require a deterministic walk.
	AllNodesOrdered []domain.Node

	// BuildFiles maps filename to the BuildFile parsed from it.
	BuildFiles map[string]*domain.BuildFile
}
