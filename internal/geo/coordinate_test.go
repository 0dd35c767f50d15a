package geo

import (
	"math"
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	t.Parallel()

	valid := []orb.Point{
		{121.5654, 25.0330},
		{151.2093, -33.8688},
		{0, 0},
		{180, 90},
		{-180, -90},
	}
	for _, p := range valid {
		assert.NoError(t, Validate(p), "%v should be valid", p)
	}

	tests := []struct {
		point orb.Point
		want  error
	}{
		{point: orb.Point{0, 91}, want: ErrLatitudeOutOfRange},
		{point: orb.Point{0, -91}, want: ErrLatitudeOutOfRange},
		{point: orb.Point{181, 0}, want: ErrLongitudeOutOfRange},
		{point: orb.Point{-181, 0}, want: ErrLongitudeOutOfRange},
		{point: orb.Point{math.NaN(), 0}, want: ErrLongitudeOutOfRange},
		{point: orb.Point{0, math.Inf(1)}, want: ErrLatitudeOutOfRange},
	}
	for _, tt := range tests {
		assert.ErrorIs(t, Validate(tt.point), tt.want, "%v", tt.point)
	}
}

func TestPointFromSlice_KeepsLonLatOrder(t *testing.T) {
	t.Parallel()

	p, err := PointFromSlice([]float64{-74.0, 40.71})
	require.NoError(t, err)
	assert.InDelta(t, -74.0, p.Lon(), tolerance)
	assert.InDelta(t, 40.71, p.Lat(), tolerance)

	// A swapped pair puts 100 in the latitude slot.
	_, err = PointFromSlice([]float64{40.71, 100})
	assert.ErrorIs(t, err, ErrLatitudeOutOfRange)

	_, err = PointFromSlice([]float64{1})
	assert.ErrorIs(t, err, ErrMalformedCoordinates)
}
