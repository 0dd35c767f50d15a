package impl

import (
	"context"
	"log/slog"
	"regexp"
	"strings"
	"unicode/utf8"

	"vendorradar/config"
	deliverycontext "vendorradar/internal/delivery/context"
	"vendorradar/internal/domain/entity"
	domainerrors "vendorradar/internal/domain/errors"
	"vendorradar/internal/domain/repository"
	"vendorradar/internal/domain/service"
	"vendorradar/internal/geo"
	"vendorradar/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// publicProductsLimit bounds the products listed on a public vendor page.
const publicProductsLimit = 100

var phonePattern = regexp.MustCompile(`^\+?[1-9]\d{0,15}$`)

type vendorService struct {
	vendorRepo  repository.VendorRepository
	productRepo repository.ProductRepository
	index       usecase.ProximityIndex
	events      eventPublisher
	searchCfg   *config.SearchConfig
	logger      *slog.Logger
}

// VendorServiceParams holds dependencies for VendorService, injected by Fx.
type VendorServiceParams struct {
	fx.In

	VendorRepo  repository.VendorRepository
	ProductRepo repository.ProductRepository
	Index       usecase.ProximityIndex
	Broadcaster service.Broadcaster
	Config      *config.Config
	Logger      *slog.Logger
}

// NewVendorService creates the vendor service.
func NewVendorService(params VendorServiceParams) usecase.VendorUsecase {
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

	return &vendorService{
		vendorRepo:  params.VendorRepo,
		productRepo: params.ProductRepo,
		index:       params.Index,
		events:      eventPublisher{broadcaster: params.Broadcaster, logger: logger},
		searchCfg:   searchCfg,
		logger:      logger,
	}
}

func (srv *vendorService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetProfile returns the vendor with its product counters.
func (srv *vendorService) GetProfile(ctx context.Context, vendorID uuid.UUID) (*usecase.VendorProfile, error) {
	vendor, err := srv.findVendor(ctx, vendorID)
	if err != nil {
		return nil, err
	}

	total, available, err := srv.productRepo.CountProductsByVendor(ctx, vendorID)
	if err != nil {
		return nil, domainerrors.NewInfrastructureError(err, "count vendor products")
	}

	return &usecase.VendorProfile{
		Vendor:                 vendor,
		ProductsCount:          total,
		AvailableProductsCount: available,
	}, nil
}

// UpdateProfile writes the supplied profile fields.
func (srv *vendorService) UpdateProfile(ctx context.Context, vendorID uuid.UUID, input *usecase.UpdateVendorProfileInput) (*entity.Vendor, error) {
	if input == nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("empty profile update")
	}

	vendor, err := srv.findVendor(ctx, vendorID)
	if err != nil {
		return nil, err
	}

	if err := applyProfileUpdate(vendor, input); err != nil {
		return nil, err
	}

	if err := srv.vendorRepo.UpdateVendorProfile(ctx, vendor); err != nil {
		if errors.Is(err, repository.ErrVendorNotFound) {
			return nil, domainerrors.ErrVendorNotFound
		}

		return nil, domainerrors.NewInfrastructureError(err, "update vendor profile")
	}

	srv.log(ctx).Info("Vendor profile updated", slog.String("vendor_id", vendorID.String()))

	return vendor, nil
}

func applyProfileUpdate(vendor *entity.Vendor, input *usecase.UpdateVendorProfileInput) error {
	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if n := utf8.RuneCountInString(name); n < 2 || n > 50 {
			return domainerrors.ErrValidationFailed.WithDetails("name must be between 2 and 50 characters")
		}
		vendor.Name = name
	}
	if input.Phone != nil {
		if !phonePattern.MatchString(*input.Phone) {
			return domainerrors.ErrValidationFailed.WithDetails("invalid phone number")
		}
		vendor.Phone = *input.Phone
	}
	if input.BusinessName != nil {
		businessName := strings.TrimSpace(*input.BusinessName)
		if n := utf8.RuneCountInString(businessName); n < 2 || n > 100 {
			return domainerrors.ErrValidationFailed.WithDetails("business name must be between 2 and 100 characters")
		}
		vendor.BusinessName = businessName
	}
	if input.Description != nil {
		description := strings.TrimSpace(*input.Description)
		if utf8.RuneCountInString(description) > 500 {
			return domainerrors.ErrValidationFailed.WithDetails("description cannot exceed 500 characters")
		}
		vendor.Description = description
	}
	if input.OperatingHours != nil {
		if !input.OperatingHours.IsValid() {
			return domainerrors.ErrValidationFailed.WithDetails("operating hours must be HH:MM")
		}
		vendor.OperatingHours = *input.OperatingHours
	}

	return nil
}

// UpdateLocation stores a REST-reported position and announces it. Availability is left untouched.
func (srv *vendorService) UpdateLocation(ctx context.Context, vendorID uuid.UUID, input *usecase.LocationInput) (*entity.VendorLocation, error) {
	location, err := srv.index.Update(ctx, vendorID, input)
	if err != nil {
		return nil, err
	}

	srv.events.locationUpdated(ctx, vendorID, location)

	return location, nil
}

// UpdateAvailability sets the online flag and announces it.
func (srv *vendorService) UpdateAvailability(ctx context.Context, vendorID uuid.UUID, isAvailable bool) (bool, error) {
	if err := srv.vendorRepo.UpdateVendorAvailability(ctx, vendorID, isAvailable); err != nil {
		if errors.Is(err, repository.ErrVendorNotFound) {
			return false, domainerrors.ErrVendorNotFound
		}

		return false, domainerrors.NewInfrastructureError(err, "update vendor availability")
	}

	srv.log(ctx).Info("Vendor availability updated",
		slog.String("vendor_id", vendorID.String()),
		slog.Bool("is_available", isAvailable))
	srv.events.availabilityUpdated(ctx, vendorID, isAvailable)

	return isAvailable, nil
}

// GetPublicVendor returns a vendor with its products.
func (srv *vendorService) GetPublicVendor(ctx context.Context, vendorID uuid.UUID) (*usecase.PublicVendor, error) {
	vendor, err := srv.findVendor(ctx, vendorID)
	if err != nil {
		return nil, err
	}

	products, _, err := srv.productRepo.FindProductsByVendor(ctx, vendorID, repository.Page{Number: 1, Size: publicProductsLimit})
	if err != nil {
		return nil, domainerrors.NewInfrastructureError(err, "list vendor products")
	}

	return &usecase.PublicVendor{Vendor: vendor, Products: products}, nil
}

// FindNearby lists the available vendors around a point, nearest first.
func (srv *vendorService) FindNearby(ctx context.Context, input *usecase.NearbyVendorsInput) ([]*entity.VendorWithDistance, error) {
	if input == nil {
		return nil, domainerrors.ErrInvalidCoordinates.WithDetails("origin is required")
	}
	if err := geo.Validate(input.Origin); err != nil {
		return nil, domainerrors.ErrInvalidCoordinates.WithDetails(err.Error())
	}

	maxDistance := input.MaxDistanceKm
	if maxDistance <= 0 {
		maxDistance = srv.searchCfg.DefaultMaxDistanceKm
	}

	vendors, err := srv.index.FindWithin(ctx, input.Origin, maxDistance, nil)
	if err != nil {
		return nil, err
	}

	return truncateVendors(vendors, clampLimit(input.Limit, srv.searchCfg)), nil
}

func (srv *vendorService) findVendor(ctx context.Context, vendorID uuid.UUID) (*entity.Vendor, error) {
	vendor, err := srv.vendorRepo.FindVendorByID(ctx, vendorID)
	if err != nil {
		if errors.Is(err, repository.ErrVendorNotFound) {
			return nil, domainerrors.ErrVendorNotFound
		}

		return nil, domainerrors.NewInfrastructureError(err, "load vendor")
	}

	return vendor, nil
}

func clampLimit(limit int, cfg *config.SearchConfig) int {
	switch {
	case limit <= 0:
		return cfg.DefaultLimit
	case limit > cfg.MaxLimit:
		return cfg.MaxLimit
	default:
		return limit
	}
}

func truncateVendors(vendors []*entity.VendorWithDistance, limit int) []*entity.VendorWithDistance {
	if len(vendors) > limit {
		return vendors[:limit]
	}

	return vendors
}
