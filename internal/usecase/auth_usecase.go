package usecase

import (
	"context"

	"vendorradar/internal/domain/entity"

	"github.com/google/uuid"
)

// RegisterVendorInput represents the input for vendor registration
type RegisterVendorInput struct {
	Name           string
	Email          string
	Password       string
	Phone          string
	BusinessName   string
	Description    string
	Location       *LocationInput
	OperatingHours entity.OperatingHours
}

// RegisterCustomerInput represents the input for customer registration
type RegisterCustomerInput struct {
	Name     string
	Email    string
	Password string
	Phone    string
}

// LoginInput represents the input for email/password login
type LoginInput struct {
	Email    string
	Password string
}

// AuthOutput is returned after a successful registration or login.
// Exactly one of Vendor and Customer is set, matching Role.
type AuthOutput struct {
	Token    string
	Role     entity.Role
	Vendor   *entity.Vendor
	Customer *entity.Customer
}

// ChangePasswordInput represents the input for changing a password
type ChangePasswordInput struct {
	CurrentPassword string
	NewPassword     string
}

// AuthUsecase handles vendor and customer accounts.
type AuthUsecase interface {
	RegisterVendor(ctx context.Context, input *RegisterVendorInput) (*AuthOutput, error)
	RegisterCustomer(ctx context.Context, input *RegisterCustomerInput) (*AuthOutput, error)
	LoginVendor(ctx context.Context, input *LoginInput) (*AuthOutput, error)
	LoginCustomer(ctx context.Context, input *LoginInput) (*AuthOutput, error)

	// Me returns the account behind the token claims.
	Me(ctx context.Context, subject uuid.UUID, role entity.Role) (*AuthOutput, error)

	ChangePassword(ctx context.Context, subject uuid.UUID, role entity.Role, input *ChangePasswordInput) error
}
