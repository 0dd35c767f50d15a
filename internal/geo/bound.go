package geo

import (
	"math"

	"github.com/paulmach/orb"
)

// BoundAround returns a lon/lat box that contains every point within radiusKm of center.
// The box is conservative: near the poles or across the antimeridian it widens to
// the full longitude range instead of splitting in two.
func BoundAround(center orb.Point, radiusKm float64) orb.Bound {
	angular := radiusKm / EarthRadiusKm
	latDelta := angular / degToRad

	minLat := center.Lat() - latDelta
	maxLat := center.Lat() + latDelta

	fullLon := orb.Bound{
		Min: orb.Point{-180, math.Max(-90, minLat)},
		Max: orb.Point{180, math.Min(90, maxLat)},
	}
	if minLat <= -90 || maxLat >= 90 || angular >= math.Pi/2 {
		return fullLon
	}

	sinRatio := math.Sin(angular) / math.Cos(center.Lat()*degToRad)
	if sinRatio >= 1 {
		return fullLon
	}
	lonDelta := math.Asin(sinRatio) / degToRad

	minLon := center.Lon() - lonDelta
	maxLon := center.Lon() + lonDelta
	if minLon < -180 || maxLon > 180 {
		return fullLon
	}

	return orb.Bound{
		Min: orb.Point{minLon, minLat},
		Max: orb.Point{maxLon, maxLat},
	}
}
