package geoindex

import (
	"context"
	"math/rand"
	"testing"
	"time"

	"vendorradar/internal/domain/service"
	"vendorradar/internal/geo"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func candidateIDs(positions []service.VendorPosition) map[uuid.UUID]bool {
	ids := make(map[uuid.UUID]bool, len(positions))
	for _, position := range positions {
		ids[position.VendorID] = true
	}

	return ids
}

func TestMemoryStore_PutReplacesPosition(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := NewMemoryStore()
	vendorID := uuid.New()

	require.NoError(t, store.Put(ctx, service.VendorPosition{VendorID: vendorID, Point: orb.Point{-74.0, 40.71}, UpdatedAt: time.Now()}))
	require.NoError(t, store.Put(ctx, service.VendorPosition{VendorID: vendorID, Point: orb.Point{2.35, 48.85}, UpdatedAt: time.Now()}))

	assert.Equal(t, 1, store.Size())

	got, err := store.Get(ctx, []uuid.UUID{vendorID, uuid.New()})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, orb.Point{2.35, 48.85}, got[vendorID].Point)

	nearOld, err := store.Candidates(ctx, orb.Point{-74.0, 40.71}, 5)
	require.NoError(t, err)
	assert.Empty(t, nearOld)

	nearNew, err := store.Candidates(ctx, orb.Point{2.35, 48.85}, 5)
	require.NoError(t, err)
	assert.True(t, candidateIDs(nearNew)[vendorID])
}

func TestMemoryStore_CandidatesAreSuperset(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := NewMemoryStoreWithCellSize(0.05)
	r := rand.New(rand.NewSource(11))

	center := orb.Point{121.5654, 25.0330}
	all := make([]service.VendorPosition, 0, 500)
	for range 500 {
		position := service.VendorPosition{
			VendorID: uuid.New(),
			Point:    orb.Point{center.Lon() + (r.Float64()*2-1)*0.5, center.Lat() + (r.Float64()*2-1)*0.5},
		}
		all = append(all, position)
		require.NoError(t, store.Put(ctx, position))
	}

	for _, radius := range []float64{0.5, 3, 10, 40} {
		got, err := store.Candidates(ctx, center, radius)
		require.NoError(t, err)
		ids := candidateIDs(got)

		for _, position := range all {
			if geo.Distance(center, position.Point) <= radius {
				assert.True(t, ids[position.VendorID], "radius %.1f missing %v", radius, position.Point)
			}
		}
	}
}

func TestMemoryStore_AntimeridianQuery(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := NewMemoryStore()
	east := uuid.New()
	west := uuid.New()

	require.NoError(t, store.Put(ctx, service.VendorPosition{VendorID: east, Point: orb.Point{179.99, 0}}))
	require.NoError(t, store.Put(ctx, service.VendorPosition{VendorID: west, Point: orb.Point{-179.99, 0}}))

	got, err := store.Candidates(ctx, orb.Point{179.995, 0}, 5)
	require.NoError(t, err)
	ids := candidateIDs(got)
	assert.True(t, ids[east])
	assert.True(t, ids[west])
}

func TestMemoryStore_Reset(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := NewMemoryStore()
	require.NoError(t, store.Put(ctx, service.VendorPosition{VendorID: uuid.New(), Point: orb.Point{0, 0}}))

	require.NoError(t, store.Reset(ctx))
	assert.Equal(t, 0, store.Size())

	got, err := store.Candidates(ctx, orb.Point{0, 0}, 10)
	require.NoError(t, err)
	assert.Empty(t, got)
}
