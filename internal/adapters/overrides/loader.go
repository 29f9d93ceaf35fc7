// Package overrides loads the alias and static location tables.
package overrides

import (
	_ "embed"
	"os"
	"path/filepath"

	"go.trai.ch/teammap/internal/core/domain"
	"go.trai.ch/teammap/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaults []byte

var _ ports.OverrideLoader = (*Loader)(nil)

// document is the on-disk layout shared by the built-in table and user files.
type document struct {
	Aliases   map[string]*string                 `yaml:"aliases"`
	Locations map[string]domain.ResolvedLocation `yaml:"locations"`
}

// Loader reads override tables.
type Loader struct{}

// NewLoader creates a new Loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load returns the built-in tables, with entries from the file at path taking precedence.
func (l *Loader) Load(path string) (*domain.OverrideTable, error) {
	table, err := Parse(defaults)
	if err != nil {
		return nil, err
	}

	if path == "" {
		return table, nil
	}

	//nolint:gosec // Path is provided by trusted caller
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrOverridesReadFailed.Error()), "path", path)
	}

	extra, err := Parse(data)
	if err != nil {
		return nil, zerr.With(err, "path", path)
	}

	table.Merge(extra)
	return table, nil
}

// Parse decodes a single override document.
func Parse(data []byte) (*domain.OverrideTable, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, zerr.Wrap(err, domain.ErrOverridesParseFailed.Error())
	}

	table := domain.NewOverrideTable()
	for k, v := range doc.Aliases {
		table.Aliases[k] = v
	}
	for k, v := range doc.Locations {
		table.Locations[k] = v
	}
	return table, nil
}
