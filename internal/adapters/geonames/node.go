package geonames

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/teammap/internal/adapters/config"
	"go.trai.ch/teammap/internal/core/domain"
	"go.trai.ch/teammap/internal/core/ports"
)

// NodeID is the unique identifier for the GeoNames client Graft node.
const NodeID graft.ID = "adapter.geonames"

func init() {
	graft.Register(graft.Node[ports.Geocoder]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.NodeID},
		Run: func(ctx context.Context) (ports.Geocoder, error) {
			settings, err := graft.Dep[*domain.Settings](ctx)
			if err != nil {
				return nil, err
			}
			return NewClient(settings.GeoNamesBaseURL, settings.GeoNamesUsername, settings.HTTPTimeout), nil
		},
	})
}
