package geojson

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/teammap/internal/core/ports"
)

// NodeID is the unique identifier for the GeoJSON exporter Graft node.
const NodeID graft.ID = "adapter.geojson"

func init() {
	graft.Register(graft.Node[ports.FeatureExporter]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{},
		Run: func(_ context.Context) (ports.FeatureExporter, error) {
			return NewExporter(), nil
		},
	})
}
