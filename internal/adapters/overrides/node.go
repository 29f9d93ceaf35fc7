package overrides

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/teammap/internal/core/ports"
)

// NodeID is the unique identifier for the override loader Graft node.
const NodeID graft.ID = "adapter.overrides"

func init() {
	graft.Register(graft.Node[ports.OverrideLoader]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{},
		Run: func(_ context.Context) (ports.OverrideLoader, error) {
			return NewLoader(), nil
		},
	})
}
