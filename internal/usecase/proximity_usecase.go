// Package usecase defines the application's use cases and their input/output shapes.
package usecase

import (
	"context"

	"vendorradar/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
)

// VendorPredicate narrows a proximity query; nil accepts every available vendor.
type VendorPredicate func(vendor *entity.Vendor) bool

// LocationInput is a reported vendor position. Nil address fields keep the previous value.
type LocationInput struct {
	Coordinates orb.Point `json:"coordinates"`
	Address     *string   `json:"address,omitempty"`
	City        *string   `json:"city,omitempty"`
	State       *string   `json:"state,omitempty"`
	ZipCode     *string   `json:"zipCode,omitempty"`
}

// ProximityIndex answers radius queries over the last known vendor positions.
type ProximityIndex interface {
	// FindWithin returns the available vendors within radiusKm of center, nearest first.
	FindWithin(ctx context.Context, center orb.Point, radiusKm float64, predicate VendorPredicate) ([]*entity.VendorWithDistance, error)

	// Update validates and stores the vendor's new position, replacing the previous one.
	Update(ctx context.Context, vendorID uuid.UUID, input *LocationInput) (*entity.VendorLocation, error)

	// Warm rebuilds the position store from vendor records and returns the number of positions loaded.
	Warm(ctx context.Context) (int, error)
}
