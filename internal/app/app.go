// Package app implements the application layer for teammap.
package app

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"

	"go.trai.ch/teammap/internal/core/domain"
	"go.trai.ch/teammap/internal/core/ports"
	"go.trai.ch/teammap/internal/engine/geocode"
	"go.trai.ch/teammap/internal/engine/pipeline"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	settings  *domain.Settings
	logger    ports.Logger
	store     ports.DatasetStore
	roster    ports.RosterLoader
	hasher    ports.IdentityHasher
	geocoder  ports.Geocoder
	countries ports.CountryCodes
	states    ports.StateCodes
	overrides ports.OverrideLoader
	exporter  ports.FeatureExporter
}

// New creates a new App instance.
func New(
	settings *domain.Settings,
	log ports.Logger,
	store ports.DatasetStore,
	roster ports.RosterLoader,
	hasher ports.IdentityHasher,
	geocoder ports.Geocoder,
	countries ports.CountryCodes,
	states ports.StateCodes,
	overrides ports.OverrideLoader,
	exporter ports.FeatureExporter,
) *App {
	return &App{
		settings:  settings,
		logger:    log,
		store:     store,
		roster:    roster,
		hasher:    hasher,
		geocoder:  geocoder,
		countries: countries,
		states:    states,
		overrides: overrides,
		exporter:  exporter,
	}
}

// ResolveOptions configuration for the Resolve method.
// Zero values fall back to the loaded settings.
type ResolveOptions struct {
	RosterPath    string
	DatasetPath   string
	OverridesPath string
	Concurrency   int
}

// Resolve maps every roster member to a location and writes the dataset.
func (a *App) Resolve(ctx context.Context, opts ResolveOptions) error {
	opts = a.resolveDefaults(opts)

	table, err := a.overrides.Load(opts.OverridesPath)
	if err != nil {
		return zerr.Wrap(err, "failed to load override tables")
	}

	resolver := geocode.NewResolver(a.geocoder, a.countries, a.states, table, a.logger)
	driver := pipeline.NewDriver(a.store, a.roster, a.hasher, a.countries, resolver, a.logger)

	report, err := driver.Run(ctx, pipeline.Options{
		RosterPath:        opts.RosterPath,
		DatasetPath:       opts.DatasetPath,
		Concurrency:       opts.Concurrency,
		ExcludedCountries: a.settings.ExcludedCountries,
	})
	if err != nil {
		return err
	}

	a.logger.Info(fmt.Sprintf(
		"Mapped all %d members on the team page (%d cached, %d resolved, %d removed) and wrote results to %s",
		report.Members, report.Cached, report.Resolved, report.Evicted, opts.DatasetPath,
	))
	return nil
}

func (a *App) resolveDefaults(opts ResolveOptions) ResolveOptions {
	if opts.RosterPath == "" {
		opts.RosterPath = a.settings.RosterPath
	}
	if opts.DatasetPath == "" {
		opts.DatasetPath = a.settings.DatasetPath
	}
	if opts.OverridesPath == "" {
		opts.OverridesPath = a.settings.OverridesPath
	}
	if opts.Concurrency < 1 {
		opts.Concurrency = a.settings.Concurrency
	}
	return opts
}

// ExportOptions configuration for the Export method.
type ExportOptions struct {
	DatasetPath string
	OutputPath  string
}

// Export converts the dataset into a GeoJSON feature collection.
func (a *App) Export(_ context.Context, opts ExportOptions) error {
	if opts.DatasetPath == "" {
		opts.DatasetPath = a.settings.DatasetPath
	}
	if opts.OutputPath == "" {
		opts.OutputPath = a.settings.GeoJSONPath
	}

	dataset, err := a.store.Load(opts.DatasetPath)
	if err != nil {
		return err
	}
	if dataset == nil {
		return zerr.With(domain.ErrDatasetReadFailed, "path", opts.DatasetPath)
	}

	var buf bytes.Buffer
	if err := a.exporter.Export(&buf, *dataset); err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(opts.OutputPath), domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrGeoJSONWriteFailed.Error()), "path", opts.OutputPath)
	}
	//nolint:gosec // Path is provided by trusted caller
	if err := os.WriteFile(opts.OutputPath, buf.Bytes(), domain.FilePerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrGeoJSONWriteFailed.Error()), "path", opts.OutputPath)
	}

	a.logger.Info(fmt.Sprintf("Wrote %d features to %s", len(dataset.Team), opts.OutputPath))
	return nil
}
