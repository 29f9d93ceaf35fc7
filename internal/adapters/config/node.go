package config

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/teammap/internal/core/domain"
)

// NodeID is the unique identifier for the settings Graft node.
const NodeID graft.ID = "adapter.config"

func init() {
	graft.Register(graft.Node[*domain.Settings]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{},
		Run: func(_ context.Context) (*domain.Settings, error) {
			return Load()
		},
	})
}
