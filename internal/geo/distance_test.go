package geo

import (
	"math"
	"math/rand"
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tolerance = 1e-9

func randomPoint(r *rand.Rand) orb.Point {
	return orb.Point{r.Float64()*360 - 180, r.Float64()*180 - 90}
}

func TestDistance_KnownValues(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		a, b  orb.Point
		want  float64
		delta float64
	}{
		{name: "same point", a: orb.Point{-74.0, 40.71}, b: orb.Point{-74.0, 40.71}, want: 0, delta: tolerance},
		{name: "manhattan offset", a: orb.Point{-74.006, 40.7128}, b: orb.Point{-74.00, 40.71}, want: 0.58, delta: 0.05},
		{name: "one degree of longitude on the equator", a: orb.Point{0, 0}, b: orb.Point{1, 0}, want: 111.195, delta: 0.01},
		{name: "antipodal", a: orb.Point{0, 0}, b: orb.Point{180, 0}, want: math.Pi * EarthRadiusKm, delta: 1e-6},
		{name: "pole to pole", a: orb.Point{0, 90}, b: orb.Point{0, -90}, want: math.Pi * EarthRadiusKm, delta: 1e-6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.InDelta(t, tt.want, Distance(tt.a, tt.b), tt.delta)
		})
	}
}

func TestDistance_Symmetric(t *testing.T) {
	t.Parallel()

	r := rand.New(rand.NewSource(42))
	for range 1000 {
		a, b := randomPoint(r), randomPoint(r)
		assert.InDelta(t, Distance(a, b), Distance(b, a), tolerance)
		assert.InDelta(t, 0, Distance(a, a), tolerance)
	}
}

func TestDistance_TriangleInequality(t *testing.T) {
	t.Parallel()

	r := rand.New(rand.NewSource(7))
	for range 1000 {
		a, b, c := randomPoint(r), randomPoint(r), randomPoint(r)
		assert.LessOrEqual(t, Distance(a, b), Distance(a, c)+Distance(c, b)+1e-6)
	}
}

func TestDistance_NeverNaN(t *testing.T) {
	t.Parallel()

	r := rand.New(rand.NewSource(99))
	for range 500 {
		a := randomPoint(r)
		antipode := orb.Point{a.Lon() + 180, -a.Lat()}
		if antipode[0] > 180 {
			antipode[0] -= 360
		}
		d := Distance(a, antipode)
		require.False(t, math.IsNaN(d))
		assert.InDelta(t, math.Pi*EarthRadiusKm, d, 1e-3)
	}
}

func TestRoundKm(t *testing.T) {
	t.Parallel()

	assert.InDelta(t, 0.58, RoundKm(0.5849), tolerance)
	assert.InDelta(t, 5.0, RoundKm(4.996), tolerance)
	assert.InDelta(t, 2.35, RoundKm(2.345000001), tolerance)
}

func TestUnitConversions(t *testing.T) {
	t.Parallel()

	assert.InDelta(t, 5000, KmToMeters(5), tolerance)
	assert.InDelta(t, 1, KmToRadians(EarthRadiusKm), tolerance)
}
