// Package wiring registers every Graft node the binary needs: the leaf
// adapters (source, logger) and the top-level Components node that
// assembles them into an App.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/samegraph/internal/adapters/logger"
	_ "go.trai.ch/samegraph/internal/adapters/source"
	// Register the top-level app node.
	_ "go.trai.ch/samegraph/internal/app"
)
