package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
)

// VendorPosition is one entry of the position store: the last known coordinate of a vendor.
type VendorPosition struct {
	VendorID  uuid.UUID
	Point     orb.Point // [longitude, latitude]
	UpdatedAt time.Time
}

// PositionStore is a key-value store vendorID -> position backed by a geospatial index.
// Implementations only return infrastructure errors; coordinates are validated by callers.
type PositionStore interface {
	// Put replaces the stored position of a vendor (last write wins).
	Put(ctx context.Context, position VendorPosition) error

	// Get returns the stored positions for the given vendors, skipping unknown ones.
	Get(ctx context.Context, vendorIDs []uuid.UUID) (map[uuid.UUID]VendorPosition, error)

	// Candidates returns the positions that may lie within radiusKm of center.
	// The result is a superset: callers recheck every candidate with the exact distance.
	Candidates(ctx context.Context, center orb.Point, radiusKm float64) ([]VendorPosition, error)
}

// PositionStoreResetter is implemented by stores that can be rebuilt from vendor records.
type PositionStoreResetter interface {
	Reset(ctx context.Context) error
}
