package roster

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/teammap/internal/adapters/config"
	"go.trai.ch/teammap/internal/core/domain"
	"go.trai.ch/teammap/internal/core/ports"
)

// NodeID is the unique identifier for the roster loader Graft node.
const NodeID graft.ID = "adapter.roster"

func init() {
	graft.Register(graft.Node[ports.RosterLoader]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.NodeID},
		Run: func(ctx context.Context) (ports.RosterLoader, error) {
			settings, err := graft.Dep[*domain.Settings](ctx)
			if err != nil {
				return nil, err
			}
			return NewLoader(settings.PictureBaseURL), nil
		},
	})
}
