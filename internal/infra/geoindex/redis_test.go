package geoindex

import (
	"context"
	"testing"
	"time"

	"vendorradar/internal/domain/service"
	"vendorradar/internal/geo"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()

	mr, err := miniredis.Run()
	require.NoError(t, err)

	client := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})
	t.Cleanup(func() {
		_ = client.Close()
		mr.Close()
	})

	return mr, client
}

func TestRedisStore_PutAndGet(t *testing.T) {
	_, client := setupTestRedis(t)
	store := NewRedisStore(client, "test:positions", 1.1)
	ctx := context.Background()

	vendorID := uuid.New()
	updatedAt := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	require.NoError(t, store.Put(ctx, service.VendorPosition{VendorID: vendorID, Point: orb.Point{-74.0, 40.71}, UpdatedAt: updatedAt}))

	got, err := store.Get(ctx, []uuid.UUID{vendorID, uuid.New()})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, orb.Point{-74.0, 40.71}, got[vendorID].Point)
	assert.True(t, updatedAt.Equal(got[vendorID].UpdatedAt))
}

func TestRedisStore_Candidates(t *testing.T) {
	_, client := setupTestRedis(t)
	store := NewRedisStore(client, "test:positions", 1.1)
	ctx := context.Background()

	origin := orb.Point{-74.0, 40.71}
	near := uuid.New()
	far := uuid.New()
	require.NoError(t, store.Put(ctx, service.VendorPosition{VendorID: near, Point: orb.Point{-74.006, 40.7128}}))
	require.NoError(t, store.Put(ctx, service.VendorPosition{VendorID: far, Point: orb.Point{-73.5, 41.2}}))

	got, err := store.Candidates(ctx, origin, 5)
	require.NoError(t, err)
	ids := candidateIDs(got)
	assert.True(t, ids[near])
	assert.False(t, ids[far])

	for _, position := range got {
		if position.VendorID == near {
			// Coordinates come back exact, not geohash-quantized.
			assert.Equal(t, orb.Point{-74.006, 40.7128}, position.Point)
			assert.Less(t, geo.Distance(origin, position.Point), 5.0)
		}
	}
}

func TestRedisStore_MoveVendor(t *testing.T) {
	_, client := setupTestRedis(t)
	store := NewRedisStore(client, "test:positions", 1.1)
	ctx := context.Background()

	vendorID := uuid.New()
	require.NoError(t, store.Put(ctx, service.VendorPosition{VendorID: vendorID, Point: orb.Point{-74.0, 40.71}}))
	require.NoError(t, store.Put(ctx, service.VendorPosition{VendorID: vendorID, Point: orb.Point{2.35, 48.85}}))

	old, err := store.Candidates(ctx, orb.Point{-74.0, 40.71}, 5)
	require.NoError(t, err)
	assert.Empty(t, old)

	current, err := store.Candidates(ctx, orb.Point{2.35, 48.85}, 5)
	require.NoError(t, err)
	assert.True(t, candidateIDs(current)[vendorID])
}

func TestRedisStore_PolarVendorsAreAlwaysCandidates(t *testing.T) {
	mr, client := setupTestRedis(t)
	store := NewRedisStore(client, "test:positions", 1.1)
	ctx := context.Background()

	polar := uuid.New()
	require.NoError(t, store.Put(ctx, service.VendorPosition{VendorID: polar, Point: orb.Point{0, 89.5}}))

	isMember, err := mr.SIsMember("test:positions:polar", polar.String())
	require.NoError(t, err)
	assert.True(t, isMember)

	got, err := store.Candidates(ctx, orb.Point{10, 89.0}, 100)
	require.NoError(t, err)
	assert.True(t, candidateIDs(got)[polar])
}

func TestRedisStore_Reset(t *testing.T) {
	mr, client := setupTestRedis(t)
	store := NewRedisStore(client, "test:positions", 1.1)
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, service.VendorPosition{VendorID: uuid.New(), Point: orb.Point{0, 0}}))
	require.NoError(t, store.Reset(ctx))

	assert.False(t, mr.Exists("test:positions"))
	assert.False(t, mr.Exists("test:positions:points"))
}
