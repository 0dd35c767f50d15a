package usecase

import (
	"context"

	"vendorradar/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
)

// VendorProfile is the vendor's own view with product counters.
type VendorProfile struct {
	Vendor                 *entity.Vendor
	ProductsCount          int64
	AvailableProductsCount int64
}

// PublicVendor is what customers see for a single vendor.
type PublicVendor struct {
	Vendor   *entity.Vendor
	Products []*entity.Product
}

// UpdateVendorProfileInput carries the editable profile fields; nil keeps the current value.
type UpdateVendorProfileInput struct {
	Name           *string
	Phone          *string
	BusinessName   *string
	Description    *string
	OperatingHours *entity.OperatingHours
}

// NearbyVendorsInput is a public radius query. Zero values use the configured defaults.
type NearbyVendorsInput struct {
	Origin        orb.Point
	MaxDistanceKm float64
	Limit         int
}

// VendorUsecase covers the vendor-facing operations and public vendor lookups.
type VendorUsecase interface {
	GetProfile(ctx context.Context, vendorID uuid.UUID) (*VendorProfile, error)
	UpdateProfile(ctx context.Context, vendorID uuid.UUID, input *UpdateVendorProfileInput) (*entity.Vendor, error)

	// UpdateLocation stores a position sent over REST and broadcasts vendor:locationUpdated.
	UpdateLocation(ctx context.Context, vendorID uuid.UUID, input *LocationInput) (*entity.VendorLocation, error)

	// UpdateAvailability sets the online flag and broadcasts vendor:availabilityUpdated.
	UpdateAvailability(ctx context.Context, vendorID uuid.UUID, isAvailable bool) (bool, error)

	GetPublicVendor(ctx context.Context, vendorID uuid.UUID) (*PublicVendor, error)
	FindNearby(ctx context.Context, input *NearbyVendorsInput) ([]*entity.VendorWithDistance, error)
}
