package geo

import (
	"math"

	"github.com/paulmach/orb"
	"github.com/pkg/errors"
)

// Coordinate validation errors.
var (
	ErrMalformedCoordinates = errors.New("coordinates must be [longitude, latitude]")
	ErrLongitudeOutOfRange  = errors.New("longitude must be within [-180, 180]")
	ErrLatitudeOutOfRange   = errors.New("latitude must be within [-90, 90]")
)

// Validate rejects NaN, infinities and out-of-range values.
func Validate(p orb.Point) error {
	lon, lat := p.Lon(), p.Lat()
	if math.IsNaN(lon) || math.IsInf(lon, 0) || lon < -180 || lon > 180 {
		return ErrLongitudeOutOfRange
	}
	if math.IsNaN(lat) || math.IsInf(lat, 0) || lat < -90 || lat > 90 {
		return ErrLatitudeOutOfRange
	}

	return nil
}

// PointFromSlice builds a validated point from a [longitude, latitude] pair.
func PointFromSlice(coords []float64) (orb.Point, error) {
	if len(coords) != 2 {
		return orb.Point{}, ErrMalformedCoordinates
	}

	p := orb.Point{coords[0], coords[1]}
	if err := Validate(p); err != nil {
		return orb.Point{}, err
	}

	return p, nil
}

// NewPoint builds a validated point from separate longitude and latitude values.
func NewPoint(lon, lat float64) (orb.Point, error) {
	return PointFromSlice([]float64{lon, lat})
}
