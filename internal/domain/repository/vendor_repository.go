// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"vendorradar/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for vendor persistence.
var (
	// ErrVendorNotFound is returned when a vendor is not found.
	ErrVendorNotFound = errors.New("vendor not found")
	// ErrVendorEmailTaken is returned when registering an email that already belongs to a vendor.
	ErrVendorEmailTaken = errors.New("vendor email already registered")
)

// VendorRepository defines vendor record operations.
type VendorRepository interface {
	// CreateVendor persists a new vendor; ID and timestamps are filled in.
	CreateVendor(ctx context.Context, vendor *entity.Vendor) error

	// FindVendorByID returns ErrVendorNotFound when no vendor has the given ID.
	FindVendorByID(ctx context.Context, id uuid.UUID) (*entity.Vendor, error)

	// FindVendorByEmail returns ErrVendorNotFound when no vendor has the given email.
	FindVendorByEmail(ctx context.Context, email string) (*entity.Vendor, error)

	// FindVendorsByIDs returns the vendors that exist among ids, in no particular order.
	FindVendorsByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Vendor, error)

	// ListLocatedVendors returns every vendor that has a location set.
	ListLocatedVendors(ctx context.Context) ([]*entity.Vendor, error)

	// UpdateVendorLocation replaces the stored location.
	UpdateVendorLocation(ctx context.Context, id uuid.UUID, location *entity.VendorLocation) error

	// UpdateVendorAvailability sets the online/offline flag.
	UpdateVendorAvailability(ctx context.Context, id uuid.UUID, isAvailable bool) error

	// UpdateVendorProfile writes name, phone, business name, description and operating hours.
	UpdateVendorProfile(ctx context.Context, vendor *entity.Vendor) error

	// UpdateVendorPassword replaces the password hash.
	UpdateVendorPassword(ctx context.Context, id uuid.UUID, passwordHash string) error
}
