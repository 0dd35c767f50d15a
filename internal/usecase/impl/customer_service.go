package impl

import (
	"context"
	"log/slog"
	"math"
	"slices"

	"vendorradar/config"
	deliverycontext "vendorradar/internal/delivery/context"
	"vendorradar/internal/domain/entity"
	domainerrors "vendorradar/internal/domain/errors"
	"vendorradar/internal/domain/repository"
	"vendorradar/internal/geo"
	"vendorradar/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type customerService struct {
	customerRepo repository.CustomerRepository
	index        usecase.ProximityIndex
	searchCfg    *config.SearchConfig
	logger       *slog.Logger
}

// CustomerServiceParams holds dependencies for CustomerService, injected by Fx.
type CustomerServiceParams struct {
	fx.In

	CustomerRepo repository.CustomerRepository
	Index        usecase.ProximityIndex
	Config       *config.Config
	Logger       *slog.Logger
}

// NewCustomerService creates the customer service.
func NewCustomerService(params CustomerServiceParams) usecase.CustomerUsecase {
	var searchCfg *config.SearchConfig
	if params.Config != nil {
		searchCfg = params.Config.Search
	}
	if searchCfg == nil {
		searchCfg = &config.SearchConfig{DefaultMaxDistanceKm: 10, DefaultLimit: 20, MaxLimit: 50}
	}

	logger := params.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &customerService{
		customerRepo: params.CustomerRepo,
		index:        params.Index,
		searchCfg:    searchCfg,
		logger:       logger,
	}
}

func (srv *customerService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// UpdatePreferences applies the supplied preference fields.
func (srv *customerService) UpdatePreferences(
	ctx context.Context,
	customerID uuid.UUID,
	input *usecase.UpdatePreferencesInput,
) (entity.Preferences, error) {
	if input == nil {
		return entity.Preferences{}, domainerrors.ErrValidationFailed.WithDetails("empty preferences update")
	}

	customer, err := srv.findCustomer(ctx, customerID)
	if err != nil {
		return entity.Preferences{}, err
	}

	prefs := customer.Preferences
	if input.Categories != nil {
		for _, category := range input.Categories {
			if !category.IsValid() {
				return entity.Preferences{}, domainerrors.ErrValidationFailed.WithDetails("unknown category " + category.String())
			}
		}
		prefs.Categories = slices.Clone(input.Categories)
	}
	if input.MaxDistanceKm != nil {
		if d := *input.MaxDistanceKm; math.IsNaN(d) || d < 1 || d > 100 {
			return entity.Preferences{}, domainerrors.ErrValidationFailed.WithDetails("max distance must be between 1 and 100 km")
		}
		prefs.MaxDistanceKm = *input.MaxDistanceKm
	}
	if input.Organic != nil {
		prefs.Organic = *input.Organic
	}
	if input.Local != nil {
		prefs.Local = *input.Local
	}

	if err := srv.customerRepo.UpdateCustomerPreferences(ctx, customerID, prefs); err != nil {
		return entity.Preferences{}, srv.mapWriteError(err, "update customer preferences")
	}

	return prefs, nil
}

// UpdateLocation replaces the coordinates and keeps address fields the input leaves out.
func (srv *customerService) UpdateLocation(
	ctx context.Context,
	customerID uuid.UUID,
	input *usecase.LocationInput,
) (*entity.CustomerLocation, error) {
	if input == nil {
		return nil, domainerrors.ErrInvalidCoordinates.WithDetails("coordinates are required")
	}
	if err := geo.Validate(input.Coordinates); err != nil {
		return nil, domainerrors.ErrInvalidCoordinates.WithDetails(err.Error())
	}

	customer, err := srv.findCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}

	location := &entity.CustomerLocation{Coordinates: input.Coordinates}
	if previous := customer.Location; previous != nil {
		location.Address = previous.Address
		location.City = previous.City
		location.State = previous.State
		location.ZipCode = previous.ZipCode
	}
	applyNonEmpty(&location.Address, input.Address)
	applyNonEmpty(&location.City, input.City)
	applyNonEmpty(&location.State, input.State)
	applyNonEmpty(&location.ZipCode, input.ZipCode)

	if err := srv.customerRepo.UpdateCustomerLocation(ctx, customerID, location); err != nil {
		return nil, srv.mapWriteError(err, "update customer location")
	}

	srv.log(ctx).Debug("Customer location updated", slog.String("customer_id", customerID.String()))

	return location, nil
}

// NearbyVendors queries around the customer's saved location.
func (srv *customerService) NearbyVendors(
	ctx context.Context,
	customerID uuid.UUID,
	input *usecase.NearbyForCustomerInput,
) ([]*entity.VendorWithDistance, error) {
	customer, err := srv.findCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}
	if customer.Location == nil {
		return nil, domainerrors.ErrCustomerLocationNotSet
	}

	if input == nil {
		input = &usecase.NearbyForCustomerInput{}
	}

	maxDistance := customer.Preferences.MaxDistanceKm
	if input.MaxDistanceKm != nil && *input.MaxDistanceKm > 0 {
		maxDistance = *input.MaxDistanceKm
	}
	if maxDistance <= 0 {
		maxDistance = srv.searchCfg.DefaultMaxDistanceKm
	}

	vendors, err := srv.index.FindWithin(ctx, customer.Location.Coordinates, maxDistance, nil)
	if err != nil {
		return nil, err
	}

	return truncateVendors(vendors, clampLimit(input.Limit, srv.searchCfg)), nil
}

func (srv *customerService) findCustomer(ctx context.Context, customerID uuid.UUID) (*entity.Customer, error) {
	customer, err := srv.customerRepo.FindCustomerByID(ctx, customerID)
	if err != nil {
		if errors.Is(err, repository.ErrCustomerNotFound) {
			return nil, domainerrors.ErrCustomerNotFound
		}

		return nil, domainerrors.NewInfrastructureError(err, "load customer")
	}

	return customer, nil
}

func (srv *customerService) mapWriteError(err error, details string) error {
	if errors.Is(err, repository.ErrCustomerNotFound) {
		return domainerrors.ErrCustomerNotFound
	}

	return domainerrors.NewInfrastructureError(err, details)
}
