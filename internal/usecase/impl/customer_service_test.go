package impl

import (
	"context"
	"testing"

	"vendorradar/internal/domain/entity"
	domainerrors "vendorradar/internal/domain/errors"
	mockRepo "vendorradar/internal/mocks/repository"
	mockUsecase "vendorradar/internal/mocks/usecase"
	"vendorradar/internal/usecase"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func seedCustomer(t *testing.T, env *testEnv) *entity.Customer {
	t.Helper()

	customer := &entity.Customer{
		Name:            "Ana",
		Email:           uuid.NewString() + "@example.com",
		Preferences:     entity.DefaultPreferences(),
		FavoriteVendors: []uuid.UUID{},
		IsActive:        true,
	}
	require.NoError(t, env.customers.CreateCustomer(context.Background(), customer))

	return customer
}

func TestCustomerService_UpdatePreferences(t *testing.T) {
	env := newTestEnv(t)
	customer := seedCustomer(t, env)
	srv := env.customerService()

	prefs, err := srv.UpdatePreferences(context.Background(), customer.ID, &usecase.UpdatePreferencesInput{
		Categories:    []entity.Category{entity.CategoryBakery},
		MaxDistanceKm: ptr(25.0),
		Organic:       ptr(true),
	})
	require.NoError(t, err)
	assert.Equal(t, []entity.Category{entity.CategoryBakery}, prefs.Categories)
	assert.Equal(t, 25.0, prefs.MaxDistanceKm)
	assert.True(t, prefs.Organic)
	assert.False(t, prefs.Local)

	stored, err := env.customers.FindCustomerByID(context.Background(), customer.ID)
	require.NoError(t, err)
	assert.Equal(t, prefs, stored.Preferences)

	_, err = srv.UpdatePreferences(context.Background(), customer.ID, &usecase.UpdatePreferencesInput{MaxDistanceKm: ptr(0.5)})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	_, err = srv.UpdatePreferences(context.Background(), customer.ID, &usecase.UpdatePreferencesInput{
		Categories: []entity.Category{"toys"},
	})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	_, err = srv.UpdatePreferences(context.Background(), uuid.New(), &usecase.UpdatePreferencesInput{})
	assert.ErrorIs(t, err, domainerrors.ErrCustomerNotFound)
}

func TestCustomerService_UpdateLocationMergesAddress(t *testing.T) {
	env := newTestEnv(t)
	customer := seedCustomer(t, env)
	srv := env.customerService()

	location, err := srv.UpdateLocation(context.Background(), customer.ID, &usecase.LocationInput{
		Coordinates: orb.Point{-74.0, 40.71},
		Address:     ptr("10 Main St"),
		City:        ptr("New York"),
	})
	require.NoError(t, err)
	assert.Equal(t, "New York", location.City)

	location, err = srv.UpdateLocation(context.Background(), customer.ID, &usecase.LocationInput{
		Coordinates: orb.Point{-73.99, 40.73},
		ZipCode:     ptr("10003"),
	})
	require.NoError(t, err)
	assert.Equal(t, orb.Point{-73.99, 40.73}, location.Coordinates)
	assert.Equal(t, "10 Main St", location.Address)
	assert.Equal(t, "New York", location.City)
	assert.Equal(t, "10003", location.ZipCode)

	_, err = srv.UpdateLocation(context.Background(), customer.ID, &usecase.LocationInput{Coordinates: orb.Point{181, 0}})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCoordinates)
}

func TestCustomerService_NearbyVendors(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	customer := seedCustomer(t, env)
	srv := env.customerService()

	_, err := srv.NearbyVendors(ctx, customer.ID, nil)
	assert.ErrorIs(t, err, domainerrors.ErrCustomerLocationNotSet)

	home := orb.Point{-0.1276, 51.5072}
	_, err = srv.UpdateLocation(ctx, customer.ID, &usecase.LocationInput{Coordinates: home})
	require.NoError(t, err)

	for _, km := range []float64{2, 8, 30} {
		at := pointNorthOf(home, km)
		env.seedVendor(t, uuid.NewString(), &at, true)
	}

	found, err := srv.NearbyVendors(ctx, customer.ID, nil)
	require.NoError(t, err)
	assert.Len(t, found, 2, "the preference of 10 km applies")

	found, err = srv.NearbyVendors(ctx, customer.ID, &usecase.NearbyForCustomerInput{MaxDistanceKm: ptr(5.0)})
	require.NoError(t, err)
	assert.Len(t, found, 1, "an explicit distance wins over the preference")

	found, err = srv.NearbyVendors(ctx, customer.ID, &usecase.NearbyForCustomerInput{MaxDistanceKm: ptr(50.0), Limit: 1})
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.InDelta(t, 2, found[0].Distance, 0.01)
}

func TestCustomerService_UpdatePreferencesStoreFailure(t *testing.T) {
	customerRepo := mockRepo.NewMockCustomerRepository(t)
	srv := NewCustomerService(CustomerServiceParams{
		CustomerRepo: customerRepo,
		Index:        mockUsecase.NewMockProximityIndex(t),
		Config:       newTestConfig(),
		Logger:       discardLogger,
	})
	customerID := uuid.New()

	customerRepo.EXPECT().FindCustomerByID(mock.Anything, customerID).
		Return(&entity.Customer{ID: customerID, Preferences: entity.DefaultPreferences()}, nil)
	customerRepo.EXPECT().UpdateCustomerPreferences(mock.Anything, customerID, mock.MatchedBy(func(prefs entity.Preferences) bool {
		return prefs.Local
	})).Return(errors.New("connection reset"))

	_, err := srv.UpdatePreferences(context.Background(), customerID, &usecase.UpdatePreferencesInput{Local: ptr(true)})
	var infraErr *domainerrors.InfrastructureError
	assert.True(t, errors.As(err, &infraErr))
}

func TestCustomerService_NearbyVendorsUsesPreferredRadius(t *testing.T) {
	customerRepo := mockRepo.NewMockCustomerRepository(t)
	index := mockUsecase.NewMockProximityIndex(t)
	srv := NewCustomerService(CustomerServiceParams{
		CustomerRepo: customerRepo,
		Index:        index,
		Config:       newTestConfig(),
		Logger:       discardLogger,
	})
	customerID := uuid.New()
	home := orb.Point{2.35, 48.85}
	prefs := entity.DefaultPreferences()
	prefs.MaxDistanceKm = 7

	customerRepo.EXPECT().FindCustomerByID(mock.Anything, customerID).
		Return(&entity.Customer{ID: customerID, Preferences: prefs, Location: &entity.CustomerLocation{Coordinates: home}}, nil)
	index.EXPECT().FindWithin(mock.Anything, home, 7.0, mock.Anything).Return([]*entity.VendorWithDistance{}, nil)

	found, err := srv.NearbyVendors(context.Background(), customerID, nil)
	require.NoError(t, err)
	assert.Empty(t, found)
}
