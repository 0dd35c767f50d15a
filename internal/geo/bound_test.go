package geo

import (
	"math/rand"
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
)

func TestBoundAround_ContainsEveryPointInRadius(t *testing.T) {
	t.Parallel()

	r := rand.New(rand.NewSource(3))
	for range 200 {
		center := orb.Point{r.Float64()*340 - 170, r.Float64()*160 - 80}
		radius := r.Float64() * 500
		bound := BoundAround(center, radius)

		for range 50 {
			p := orb.Point{
				center.Lon() + (r.Float64()*2-1)*10,
				center.Lat() + (r.Float64()*2-1)*6,
			}
			if Validate(p) != nil || Distance(center, p) > radius {
				continue
			}
			assert.True(t, bound.Contains(p), "center %v radius %.1f point %v", center, radius, p)
		}
	}
}

func TestBoundAround_WidensNearPolesAndAntimeridian(t *testing.T) {
	t.Parallel()

	polar := BoundAround(orb.Point{10, 89.9}, 50)
	assert.InDelta(t, -180, polar.Min.Lon(), tolerance)
	assert.InDelta(t, 180, polar.Max.Lon(), tolerance)
	assert.InDelta(t, 90, polar.Max.Lat(), tolerance)

	dateline := BoundAround(orb.Point{179.99, 0}, 20)
	assert.InDelta(t, -180, dateline.Min.Lon(), tolerance)
	assert.InDelta(t, 180, dateline.Max.Lon(), tolerance)
}

func TestBoundAround_ExcludesFarPoints(t *testing.T) {
	t.Parallel()

	bound := BoundAround(orb.Point{-74.0, 40.71}, 5)
	assert.True(t, bound.Contains(orb.Point{-74.006, 40.7128}))
	assert.False(t, bound.Contains(orb.Point{-73.0, 40.71}))
}
