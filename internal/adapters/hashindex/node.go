package hashindex

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/teammap/internal/core/ports"
)

// NodeID is the unique identifier for the identity hasher Graft node.
const NodeID graft.ID = "adapter.hashindex"

func init() {
	graft.Register(graft.Node[ports.IdentityHasher]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{},
		Run: func(_ context.Context) (ports.IdentityHasher, error) {
			return NewHasher(), nil
		},
	})
}
