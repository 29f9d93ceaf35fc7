package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/teammap/internal/adapters/config"    //nolint:depguard // Wired in app layer
	"go.trai.ch/teammap/internal/adapters/geojson"   //nolint:depguard // Wired in app layer
	"go.trai.ch/teammap/internal/adapters/geonames"  //nolint:depguard // Wired in app layer
	"go.trai.ch/teammap/internal/adapters/hashindex" //nolint:depguard // Wired in app layer
	"go.trai.ch/teammap/internal/adapters/logger"    //nolint:depguard // Wired in app layer
	"go.trai.ch/teammap/internal/adapters/lookup"    //nolint:depguard // Wired in app layer
	"go.trai.ch/teammap/internal/adapters/overrides" //nolint:depguard // Wired in app layer
	"go.trai.ch/teammap/internal/adapters/roster"    //nolint:depguard // Wired in app layer
	"go.trai.ch/teammap/internal/adapters/store"     //nolint:depguard // Wired in app layer
	"go.trai.ch/teammap/internal/core/domain"
	"go.trai.ch/teammap/internal/core/ports"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			logger.NodeID,
			store.NodeID,
			roster.NodeID,
			hashindex.NodeID,
			geonames.NodeID,
			lookup.CountriesNodeID,
			lookup.StatesNodeID,
			overrides.NodeID,
			geojson.NodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			app, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return &Components{App: app, Logger: log}, nil
		},
	})
}

//nolint:cyclop // one lookup per dependency
func runAppNode(ctx context.Context) (*App, error) {
	settings, err := graft.Dep[*domain.Settings](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	datasetStore, err := graft.Dep[ports.DatasetStore](ctx)
	if err != nil {
		return nil, err
	}

	rosterLoader, err := graft.Dep[ports.RosterLoader](ctx)
	if err != nil {
		return nil, err
	}

	hasher, err := graft.Dep[ports.IdentityHasher](ctx)
	if err != nil {
		return nil, err
	}

	geocoder, err := graft.Dep[ports.Geocoder](ctx)
	if err != nil {
		return nil, err
	}

	countries, err := graft.Dep[ports.CountryCodes](ctx)
	if err != nil {
		return nil, err
	}

	states, err := graft.Dep[ports.StateCodes](ctx)
	if err != nil {
		return nil, err
	}

	overrideLoader, err := graft.Dep[ports.OverrideLoader](ctx)
	if err != nil {
		return nil, err
	}

	exporter, err := graft.Dep[ports.FeatureExporter](ctx)
	if err != nil {
		return nil, err
	}

	return New(
		settings,
		log,
		datasetStore,
		rosterLoader,
		hasher,
		geocoder,
		countries,
		states,
		overrideLoader,
		exporter,
	), nil
}
