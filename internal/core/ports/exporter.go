package ports

import (
	"io"

	"go.trai.ch/teammap/internal/core/domain"
)

// FeatureExporter renders the dataset for map consumption.
//
//go:generate mockgen -source=exporter.go -destination=mocks/mock_exporter.go -package=mocks
type FeatureExporter interface {
	// Export writes the dataset to w.
	Export(w io.Writer, dataset domain.Dataset) error
}
