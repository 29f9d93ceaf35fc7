// Package store persists the resolved dataset as a versioned JSON file.
package store

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/teammap/internal/core/domain"
	"go.trai.ch/teammap/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.DatasetStore = (*Store)(nil)

// Store implements ports.DatasetStore on the local filesystem.
type Store struct {
	version int
}

// NewStore creates a Store that accepts datasets written with domain.DatasetVersion.
func NewStore() *Store {
	return &Store{version: domain.DatasetVersion}
}

// Load reads the dataset at path.
func (s *Store) Load(path string) (*domain.Dataset, error) {
	//nolint:gosec // Path is provided by trusted caller
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, zerr.With(zerr.Wrap(err, domain.ErrDatasetReadFailed.Error()), "path", path)
	}

	if len(data) == 0 {
		return nil, nil
	}

	var dataset domain.Dataset
	if err := json.Unmarshal(data, &dataset); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrDatasetUnmarshalFailed.Error()), "path", path)
	}

	if dataset.Version != s.version {
		err := zerr.With(domain.ErrDatasetVersionMismatch, "expected", s.version)
		return nil, zerr.With(err, "found", dataset.Version)
	}

	return &dataset, nil
}

// Save writes dataset to path through a temporary file in the same directory,
// so that readers never observe a partial dataset.
func (s *Store) Save(path string, dataset domain.Dataset) error {
	path = filepath.Clean(path)
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrDatasetWriteFailed.Error()), "path", path)
	}

	if dataset.Team == nil {
		dataset.Team = []domain.CacheEntry{}
	}

	data, err := json.MarshalIndent(dataset, "", "  ")
	if err != nil {
		return zerr.Wrap(err, domain.ErrDatasetMarshalFailed.Error())
	}
	data = append(data, '\n')

	tmpFile, err := os.CreateTemp(dir, "dataset-*.json")
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrDatasetWriteFailed.Error()), "path", path)
	}
	tmpName := tmpFile.Name()

	defer func() {
		if _, err := os.Stat(tmpName); err == nil {
			_ = os.Remove(tmpName)
		}
	}()

	if _, err := tmpFile.Write(data); err != nil {
		_ = tmpFile.Close()
		return zerr.With(zerr.Wrap(err, domain.ErrDatasetWriteFailed.Error()), "path", path)
	}

	if err := tmpFile.Close(); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrDatasetWriteFailed.Error()), "path", path)
	}

	if err := os.Chmod(tmpName, domain.FilePerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrDatasetWriteFailed.Error()), "path", path)
	}

	if err := os.Rename(tmpName, path); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrDatasetWriteFailed.Error()), "path", path)
	}

	return nil
}
