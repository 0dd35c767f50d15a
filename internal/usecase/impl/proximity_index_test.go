package impl

import (
	"context"
	"math/rand"
	"testing"
	"time"

	"vendorradar/internal/domain/entity"
	domainerrors "vendorradar/internal/domain/errors"
	"vendorradar/internal/domain/repository"
	"vendorradar/internal/domain/service"
	"vendorradar/internal/geo"
	mockRepo "vendorradar/internal/mocks/repository"
	mockService "vendorradar/internal/mocks/service"
	"vendorradar/internal/usecase"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestProximityIndex_FindWithinMatchesBruteForce(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	rng := rand.New(rand.NewSource(42))
	center := orb.Point{-74.0, 40.71}

	type seeded struct {
		vendor *entity.Vendor
		point  *orb.Point
	}
	var all []seeded
	for i := 0; i < 200; i++ {
		var at *orb.Point
		if i%10 != 0 {
			p := orb.Point{center.Lon() + (rng.Float64()-0.5)*0.6, center.Lat() + (rng.Float64()-0.5)*0.6}
			at = &p
		}
		vendor := env.seedVendor(t, uuid.NewString(), at, i%3 != 0)
		all = append(all, seeded{vendor: vendor, point: at})
	}

	for _, radius := range []float64{0.5, 2, 5, 12, 40} {
		found, err := env.index.FindWithin(ctx, center, radius, nil)
		require.NoError(t, err)

		var want []uuid.UUID
		for _, s := range all {
			if s.point == nil || !s.vendor.IsAvailable {
				continue
			}
			if geo.Distance(center, *s.point) <= radius {
				want = append(want, s.vendor.ID)
			}
		}

		got := make([]uuid.UUID, 0, len(found))
		for i, result := range found {
			got = append(got, result.Vendor.ID)
			assert.True(t, result.Vendor.IsAvailable)
			assert.LessOrEqual(t, result.Distance, radius)
			if i > 0 {
				assert.LessOrEqual(t, found[i-1].Distance, result.Distance, "results must be sorted by distance")
			}
		}

		assert.ElementsMatch(t, want, got, "radius %v", radius)
	}
}

func TestProximityIndex_FindWithinIncludesExactBoundary(t *testing.T) {
	env := newTestEnv(t)
	center := orb.Point{-74.006, 40.7128}
	at := orb.Point{-74.0, 40.71}
	vendor := env.seedVendor(t, "boundary", &at, true)

	radius := geo.Distance(center, at)
	found, err := env.index.FindWithin(context.Background(), center, radius, nil)
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, vendor.ID, found[0].Vendor.ID)
	assert.Equal(t, radius, found[0].Distance)
}

func TestProximityIndex_FindWithinAppliesPredicate(t *testing.T) {
	env := newTestEnv(t)
	center := orb.Point{2.35, 48.85}
	near := pointNorthOf(center, 1)
	a := env.seedVendor(t, "a", &near, true)
	env.seedVendor(t, "b", &near, true)

	found, err := env.index.FindWithin(context.Background(), center, 5, func(vendor *entity.Vendor) bool {
		return vendor.ID == a.ID
	})
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, a.ID, found[0].Vendor.ID)
}

func TestProximityIndex_FindWithinValidation(t *testing.T) {
	store := mockService.NewMockPositionStore(t)
	vendorRepo := mockRepo.NewMockVendorRepository(t)
	idx := newProximityIndex(vendorRepo, store, discardLogger, time.Now)

	_, err := idx.FindWithin(context.Background(), orb.Point{200, 0}, 5, nil)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCoordinates)

	_, err = idx.FindWithin(context.Background(), orb.Point{0, 0}, -1, nil)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestProximityIndex_FindWithinStoreFailure(t *testing.T) {
	store := mockService.NewMockPositionStore(t)
	vendorRepo := mockRepo.NewMockVendorRepository(t)
	idx := newProximityIndex(vendorRepo, store, discardLogger, time.Now)

	store.EXPECT().Candidates(mock.Anything, orb.Point{0, 0}, 5.0).Return(nil, errors.New("connection refused"))

	_, err := idx.FindWithin(context.Background(), orb.Point{0, 0}, 5, nil)
	require.Error(t, err)

	var infraErr *domainerrors.InfrastructureError
	assert.True(t, errors.As(err, &infraErr))
}

func TestProximityIndex_UpdateRejectsInvalidCoordinatesBeforeAnyWrite(t *testing.T) {
	store := mockService.NewMockPositionStore(t)
	vendorRepo := mockRepo.NewMockVendorRepository(t)
	idx := newProximityIndex(vendorRepo, store, discardLogger, time.Now)

	tests := []struct {
		name  string
		input *usecase.LocationInput
	}{
		{name: "nil input", input: nil},
		{name: "longitude out of range", input: &usecase.LocationInput{Coordinates: orb.Point{181, 0}}},
		{name: "latitude out of range", input: &usecase.LocationInput{Coordinates: orb.Point{0, -91}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := idx.Update(context.Background(), uuid.New(), tt.input)
			assert.ErrorIs(t, err, domainerrors.ErrInvalidCoordinates)
		})
	}
}

func TestProximityIndex_UpdateUnknownVendor(t *testing.T) {
	store := mockService.NewMockPositionStore(t)
	vendorRepo := mockRepo.NewMockVendorRepository(t)
	idx := newProximityIndex(vendorRepo, store, discardLogger, time.Now)
	vendorID := uuid.New()

	vendorRepo.EXPECT().FindVendorByID(mock.Anything, vendorID).Return(nil, repository.ErrVendorNotFound)

	_, err := idx.Update(context.Background(), vendorID, &usecase.LocationInput{Coordinates: orb.Point{1, 1}})
	assert.ErrorIs(t, err, domainerrors.ErrVendorNotFound)
}

func TestProximityIndex_UpdateMergesAddressAndWritesStore(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	start := orb.Point{-74.0, 40.71}
	vendor := env.seedVendor(t, "mover", &start, true)

	moved := orb.Point{-73.99, 40.72}
	location, err := env.index.Update(ctx, vendor.ID, &usecase.LocationInput{Coordinates: moved})
	require.NoError(t, err)
	assert.Equal(t, moved, location.Coordinates)
	assert.Equal(t, "1 Market St", location.Address, "omitted address keeps the previous one")

	location, err = env.index.Update(ctx, vendor.ID, &usecase.LocationInput{Coordinates: moved, Address: ptr("2 Pier Rd")})
	require.NoError(t, err)
	assert.Equal(t, "2 Pier Rd", location.Address)

	stored, err := env.vendors.FindVendorByID(ctx, vendor.ID)
	require.NoError(t, err)
	assert.Equal(t, location.Coordinates, stored.Location.Coordinates)

	positions, err := env.store.Get(ctx, []uuid.UUID{vendor.ID})
	require.NoError(t, err)
	assert.Equal(t, moved, positions[vendor.ID].Point)
}

func TestProximityIndex_UpdateTimestampStrictlyIncreases(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	frozen := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	env.index.now = func() time.Time { return frozen }
	vendor := env.seedVendor(t, "stalled-clock", nil, true)

	point := orb.Point{10, 10}
	var last time.Time
	for i := 0; i < 3; i++ {
		location, err := env.index.Update(ctx, vendor.ID, &usecase.LocationInput{Coordinates: point})
		require.NoError(t, err)
		assert.True(t, location.LastUpdateTimestamp.After(last), "update %d must move the timestamp forward", i)
		assert.Equal(t, point, location.Coordinates)
		last = location.LastUpdateTimestamp
	}
	assert.Equal(t, frozen.Add(2*time.Millisecond), last)
}

func TestProximityIndex_UpdateSameCoordinatesIsIdempotent(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	vendor := env.seedVendor(t, "idempotent", nil, true)
	point := orb.Point{-74.0, 40.71}

	for i := 0; i < 2; i++ {
		_, err := env.index.Update(ctx, vendor.ID, &usecase.LocationInput{Coordinates: point})
		require.NoError(t, err)
	}

	assert.Equal(t, 1, env.store.Size())
	stored, err := env.vendors.FindVendorByID(ctx, vendor.ID)
	require.NoError(t, err)
	assert.Equal(t, point, stored.Location.Coordinates)
}

func TestProximityIndex_UpdateStoreFailure(t *testing.T) {
	store := mockService.NewMockPositionStore(t)
	vendorRepo := mockRepo.NewMockVendorRepository(t)
	idx := newProximityIndex(vendorRepo, store, discardLogger, time.Now)
	vendorID := uuid.New()

	vendorRepo.EXPECT().FindVendorByID(mock.Anything, vendorID).Return(&entity.Vendor{ID: vendorID}, nil)
	vendorRepo.EXPECT().UpdateVendorLocation(mock.Anything, vendorID, mock.AnythingOfType("*entity.VendorLocation")).Return(nil)
	store.EXPECT().Put(mock.Anything, mock.MatchedBy(func(p service.VendorPosition) bool {
		return p.VendorID == vendorID && p.Point == orb.Point{3, 4}
	})).Return(errors.New("redis down"))

	_, err := idx.Update(context.Background(), vendorID, &usecase.LocationInput{Coordinates: orb.Point{3, 4}})
	require.Error(t, err)

	var infraErr *domainerrors.InfrastructureError
	assert.True(t, errors.As(err, &infraErr))
}

func TestProximityIndex_WarmRebuildsStore(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	a := orb.Point{1, 1}
	b := orb.Point{2, 2}
	va := env.seedVendor(t, "a", &a, true)
	vb := env.seedVendor(t, "b", &b, false)
	env.seedVendor(t, "nowhere", nil, true)

	// A stale entry for a vendor that no longer exists must disappear.
	require.NoError(t, env.store.Put(ctx, service.VendorPosition{VendorID: uuid.New(), Point: orb.Point{5, 5}}))

	loaded, err := env.index.Warm(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, loaded)
	assert.Equal(t, 2, env.store.Size())

	positions, err := env.store.Get(ctx, []uuid.UUID{va.ID, vb.ID})
	require.NoError(t, err)
	assert.Equal(t, a, positions[va.ID].Point)
	assert.Equal(t, b, positions[vb.ID].Point)
}
