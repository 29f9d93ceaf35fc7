package ports

import "go.trai.ch/teammap/internal/core/domain"

// DatasetStore defines the interface for persisting the resolved dataset.
//
//go:generate mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type DatasetStore interface {
	// Load reads the dataset at path.
	// Returns nil, nil if the file does not exist. A dataset written with a
	// different version is reported as domain.ErrDatasetVersionMismatch.
	Load(path string) (*domain.Dataset, error)

	// Save replaces the dataset at path.
	Save(path string, dataset domain.Dataset) error
}
