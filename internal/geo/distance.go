// Package geo implements great-circle distance and coordinate checks on
// orb.Point values, which are always [longitude, latitude].
package geo

import (
	"math"

	"github.com/paulmach/orb"
)

// EarthRadiusKm is the mean Earth radius used by every distance in the system.
const EarthRadiusKm = 6371.0

const degToRad = math.Pi / 180

// Distance returns the haversine great-circle distance between a and b in kilometers.
func Distance(a, b orb.Point) float64 {
	lat1 := a.Lat() * degToRad
	lat2 := b.Lat() * degToRad
	deltaLat := lat2 - lat1
	deltaLng := (b.Lon() - a.Lon()) * degToRad

	h := math.Sin(deltaLat/2)*math.Sin(deltaLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*
			math.Sin(deltaLng/2)*math.Sin(deltaLng/2)

	// Rounding can push h just outside [0, 1] for antipodal points.
	h = math.Min(1, math.Max(0, h))
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return EarthRadiusKm * c
}

// KmToMeters converts kilometers to the meters used by geospatial index queries.
func KmToMeters(km float64) float64 {
	return km * 1000
}

// KmToRadians converts a distance to the angular radius used by spherical index queries.
func KmToRadians(km float64) float64 {
	return km / EarthRadiusKm
}

// RoundKm rounds a distance to two decimals for display. Never use it before a comparison.
func RoundKm(km float64) float64 {
	return math.Round(km*100) / 100
}
