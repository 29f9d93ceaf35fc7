package geocode

import (
	"github.com/golang/geo/s2"
	"go.trai.ch/teammap/internal/core/domain"
)

// Centroid returns the midpoint of the (north, west) and (south, east) corners of
// the box, averaged as unit vectors so that boxes crossing the antimeridian work.
func Centroid(box domain.CountryRecord) (lat, lng float64) {
	nw := s2.PointFromLatLng(s2.LatLngFromDegrees(box.North, box.West))
	se := s2.PointFromLatLng(s2.LatLngFromDegrees(box.South, box.East))

	mid := s2.LatLngFromPoint(s2.Point{Vector: nw.Add(se.Vector)})
	return mid.Lat.Degrees(), mid.Lng.Degrees()
}
