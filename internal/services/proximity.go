package services

import (
	"github.com/twpayne/go-geom"
)

const (
	// DefaultRadiusKm applies when the caller gives no radius.
	DefaultRadiusKm = 5.0

	// degreesPerKm is a flat-earth approximation: 0.01° ≈ 1 km. It ignores the
	// shrinking of longitude degrees away from the equator.
	degreesPerKm = 0.01
)

// SearchBounds converts a radius into the axis-aligned box used by FindNear.
// X is longitude and Y is latitude. Points in the corners can be up to √2·radius away.
func SearchBounds(latitude, longitude, radiusKm float64) *geom.Bounds {
	offset := radiusKm * degreesPerKm
	return geom.NewBounds(geom.XY).Set(
		longitude-offset, latitude-offset,
		longitude+offset, latitude+offset,
	)
}
