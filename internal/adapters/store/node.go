package store

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/teammap/internal/core/ports"
)

// NodeID is the unique identifier for the dataset store Graft node.
const NodeID graft.ID = "adapter.dataset_store"

func init() {
	graft.Register(graft.Node[ports.DatasetStore]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{},
		Run: func(_ context.Context) (ports.DatasetStore, error) {
			return NewStore(), nil
		},
	})
}
