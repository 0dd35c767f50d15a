package repository

import (
	"context"

	"vendorradar/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for customer persistence.
var (
	// ErrCustomerNotFound is returned when a customer is not found.
	ErrCustomerNotFound = errors.New("customer not found")
	// ErrCustomerEmailTaken is returned when registering an email that already belongs to a customer.
	ErrCustomerEmailTaken = errors.New("customer email already registered")
)

// CustomerRepository defines customer record operations.
type CustomerRepository interface {
	CreateCustomer(ctx context.Context, customer *entity.Customer) error

	// FindCustomerByID returns ErrCustomerNotFound when no customer has the given ID.
	FindCustomerByID(ctx context.Context, id uuid.UUID) (*entity.Customer, error)

	// FindCustomerByEmail returns ErrCustomerNotFound when no customer has the given email.
	FindCustomerByEmail(ctx context.Context, email string) (*entity.Customer, error)

	UpdateCustomerPreferences(ctx context.Context, id uuid.UUID, prefs entity.Preferences) error

	UpdateCustomerLocation(ctx context.Context, id uuid.UUID, location *entity.CustomerLocation) error

	UpdateCustomerPassword(ctx context.Context, id uuid.UUID, passwordHash string) error
}
