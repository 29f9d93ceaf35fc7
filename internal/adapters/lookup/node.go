package lookup

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/teammap/internal/core/ports"
)

const (
	// CountriesNodeID is the unique identifier for the country table Graft node.
	CountriesNodeID graft.ID = "adapter.lookup.countries"
	// StatesNodeID is the unique identifier for the US state table Graft node.
	StatesNodeID graft.ID = "adapter.lookup.states"
)

func init() {
	graft.Register(graft.Node[ports.CountryCodes]{
		ID:        CountriesNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{},
		Run: func(_ context.Context) (ports.CountryCodes, error) {
			return NewCountries()
		},
	})

	graft.Register(graft.Node[ports.StateCodes]{
		ID:        StatesNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{},
		Run: func(_ context.Context) (ports.StateCodes, error) {
			return NewStates()
		},
	})
}
