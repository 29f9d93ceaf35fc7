// Package geojson renders the dataset as a GeoJSON FeatureCollection.
package geojson

import (
	"encoding/json"
	"io"

	"go.trai.ch/teammap/internal/core/domain"
	"go.trai.ch/teammap/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.FeatureExporter = (*Exporter)(nil)

type featureCollection struct {
	Type     string    `json:"type"`
	Features []feature `json:"features"`
}

type feature struct {
	Type       string     `json:"type"`
	Properties properties `json:"properties"`
	Geometry   point      `json:"geometry"`
}

// properties is the allow-list of display fields. Empty values are dropped.
type properties struct {
	Name      string `json:"name,omitempty"`
	Picture   string `json:"picture,omitempty"`
	Country   string `json:"country,omitempty"`
	Locality  string `json:"locality,omitempty"`
	StateCode string `json:"stateCode,omitempty"`
}

type point struct {
	Type        string     `json:"type"`
	Coordinates [2]float64 `json:"coordinates"`
}

// Exporter implements ports.FeatureExporter.
type Exporter struct{}

// NewExporter creates a new Exporter.
func NewExporter() *Exporter {
	return &Exporter{}
}

// Export writes one Point feature per dataset entry to w.
func (e *Exporter) Export(w io.Writer, dataset domain.Dataset) error {
	fc := featureCollection{
		Type:     "FeatureCollection",
		Features: make([]feature, 0, len(dataset.Team)),
	}

	for _, entry := range dataset.Team {
		fc.Features = append(fc.Features, feature{
			Type: "Feature",
			Properties: properties{
				Name:      entry.Name,
				Picture:   entry.Picture,
				Country:   entry.Country,
				Locality:  entry.Locality,
				StateCode: entry.StateCode,
			},
			// GeoJSON positions are [longitude, latitude].
			Geometry: point{
				Type:        "Point",
				Coordinates: [2]float64{entry.Location.Lng(), entry.Location.Lat()},
			},
		})
	}

	if err := json.NewEncoder(w).Encode(fc); err != nil {
		return zerr.Wrap(err, domain.ErrGeoJSONWriteFailed.Error())
	}
	return nil
}
