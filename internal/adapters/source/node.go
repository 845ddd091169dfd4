package source

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/samegraph/internal/core/domain"
	"go.trai.ch/samegraph/internal/core/ports"
)

// NodeID is the unique identifier for the source provider Graft node.
const NodeID graft.ID = "adapter.source_provider"

func init() {
	graft.Register(graft.Node[ports.SourceProvider]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.SourceProvider, error) {
			root := "."
			local := NewLocal(root)
			return NewCAS(local, domain.DefaultSourceCachePath(root)), nil
		},
	})
}
