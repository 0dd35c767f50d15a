package usecase

import (
	"context"

	"vendorradar/internal/domain/entity"

	"github.com/google/uuid"
)

// UpdatePreferencesInput carries the preference fields to change; nil keeps the current value.
type UpdatePreferencesInput struct {
	Categories    []entity.Category
	MaxDistanceKm *float64
	Organic       *bool
	Local         *bool
}

// NearbyForCustomerInput queries around the customer's saved location.
// Nil MaxDistanceKm uses the customer's preference.
type NearbyForCustomerInput struct {
	MaxDistanceKm *float64
	Limit         int
}

// CustomerUsecase covers the customer-facing operations.
type CustomerUsecase interface {
	UpdatePreferences(ctx context.Context, customerID uuid.UUID, input *UpdatePreferencesInput) (entity.Preferences, error)

	// UpdateLocation replaces the coordinates and merges the address fields with the previous location.
	UpdateLocation(ctx context.Context, customerID uuid.UUID, input *LocationInput) (*entity.CustomerLocation, error)

	NearbyVendors(ctx context.Context, customerID uuid.UUID, input *NearbyForCustomerInput) ([]*entity.VendorWithDistance, error)
}
