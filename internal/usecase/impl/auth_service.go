package impl

import (
	"context"
	"log/slog"
	"strings"
	"unicode/utf8"

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

const minPasswordLength = 6

// authService implements the AuthUsecase interface.
type authService struct {
	vendorRepo   repository.VendorRepository
	customerRepo repository.CustomerRepository
	index        usecase.ProximityIndex
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	VendorRepo   repository.VendorRepository
	CustomerRepo repository.CustomerRepository
	Index        usecase.ProximityIndex
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	logger := params.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &authService{
		vendorRepo:   params.VendorRepo,
		customerRepo: params.CustomerRepo,
		index:        params.Index,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// RegisterVendor creates an offline vendor at its initial location.
func (srv *authService) RegisterVendor(ctx context.Context, input *usecase.RegisterVendorInput) (*usecase.AuthOutput, error) {
	if input == nil || input.Location == nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("vendor location is required")
	}
	if err := geo.Validate(input.Location.Coordinates); err != nil {
		return nil, domainerrors.ErrInvalidCoordinates.WithDetails(err.Error())
	}
	if !input.OperatingHours.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("operating hours must be HH:MM")
	}
	if err := validatePassword(input.Password); err != nil {
		return nil, err
	}

	email := normalizeEmail(input.Email)
	srv.log(ctx).Info("Starting vendor registration", slog.String("email", email))

	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash password during registration")
	}

	vendor := &entity.Vendor{
		ID:             uuid.New(),
		Name:           strings.TrimSpace(input.Name),
		Email:          email,
		PasswordHash:   hash,
		Phone:          input.Phone,
		BusinessName:   strings.TrimSpace(input.BusinessName),
		Description:    strings.TrimSpace(input.Description),
		OperatingHours: input.OperatingHours,
	}
	if err := srv.vendorRepo.CreateVendor(ctx, vendor); err != nil {
		if errors.Is(err, repository.ErrVendorEmailTaken) {
			return nil, domainerrors.ErrVendorAlreadyExists
		}

		return nil, domainerrors.NewInfrastructureError(err, "create vendor")
	}

	// The first position goes through the index so the position store sees it too.
	location, err := srv.index.Update(ctx, vendor.ID, input.Location)
	if err != nil {
		srv.log(ctx).Error("Registered vendor without a stored location",
			slog.String("vendor_id", vendor.ID.String()), slog.Any("error", err))

		return nil, err
	}
	vendor.Location = location

	return srv.issue(vendor.ID, entity.RoleVendor, vendor, nil)
}

// RegisterCustomer creates a customer with the default preferences.
func (srv *authService) RegisterCustomer(ctx context.Context, input *usecase.RegisterCustomerInput) (*usecase.AuthOutput, error) {
	if input == nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("empty registration")
	}
	if err := validatePassword(input.Password); err != nil {
		return nil, err
	}

	email := normalizeEmail(input.Email)
	srv.log(ctx).Info("Starting customer registration", slog.String("email", email))

	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash password during registration")
	}

	customer := &entity.Customer{
		ID:              uuid.New(),
		Name:            strings.TrimSpace(input.Name),
		Email:           email,
		PasswordHash:    hash,
		Phone:           input.Phone,
		Preferences:     entity.DefaultPreferences(),
		FavoriteVendors: []uuid.UUID{},
		IsActive:        true,
	}
	if err := srv.customerRepo.CreateCustomer(ctx, customer); err != nil {
		if errors.Is(err, repository.ErrCustomerEmailTaken) {
			return nil, domainerrors.ErrCustomerAlreadyExists
		}

		return nil, domainerrors.NewInfrastructureError(err, "create customer")
	}

	return srv.issue(customer.ID, entity.RoleCustomer, nil, customer)
}

// LoginVendor checks vendor credentials and issues a token.
func (srv *authService) LoginVendor(ctx context.Context, input *usecase.LoginInput) (*usecase.AuthOutput, error) {
	if input == nil {
		return nil, domainerrors.ErrInvalidCredentials
	}

	vendor, err := srv.vendorRepo.FindVendorByEmail(ctx, normalizeEmail(input.Email))
	if err != nil {
		if errors.Is(err, repository.ErrVendorNotFound) {
			return nil, domainerrors.ErrInvalidCredentials
		}

		return nil, domainerrors.NewInfrastructureError(err, "find vendor by email")
	}

	if !srv.hasher.Check(input.Password, vendor.PasswordHash) {
		srv.log(ctx).Warn("Vendor login rejected", slog.String("vendor_id", vendor.ID.String()))

		return nil, domainerrors.ErrInvalidCredentials
	}

	return srv.issue(vendor.ID, entity.RoleVendor, vendor, nil)
}

// LoginCustomer checks customer credentials and issues a token.
func (srv *authService) LoginCustomer(ctx context.Context, input *usecase.LoginInput) (*usecase.AuthOutput, error) {
	if input == nil {
		return nil, domainerrors.ErrInvalidCredentials
	}

	customer, err := srv.customerRepo.FindCustomerByEmail(ctx, normalizeEmail(input.Email))
	if err != nil {
		if errors.Is(err, repository.ErrCustomerNotFound) {
			return nil, domainerrors.ErrInvalidCredentials
		}

		return nil, domainerrors.NewInfrastructureError(err, "find customer by email")
	}

	if !srv.hasher.Check(input.Password, customer.PasswordHash) {
		srv.log(ctx).Warn("Customer login rejected", slog.String("customer_id", customer.ID.String()))

		return nil, domainerrors.ErrInvalidCredentials
	}

	return srv.issue(customer.ID, entity.RoleCustomer, nil, customer)
}

// Me loads the account behind a validated token.
func (srv *authService) Me(ctx context.Context, subject uuid.UUID, role entity.Role) (*usecase.AuthOutput, error) {
	switch role {
	case entity.RoleVendor:
		vendor, err := srv.vendorRepo.FindVendorByID(ctx, subject)
		if err != nil {
			return nil, accountLookupError(err, repository.ErrVendorNotFound)
		}

		return &usecase.AuthOutput{Role: role, Vendor: vendor}, nil
	case entity.RoleCustomer:
		customer, err := srv.customerRepo.FindCustomerByID(ctx, subject)
		if err != nil {
			return nil, accountLookupError(err, repository.ErrCustomerNotFound)
		}

		return &usecase.AuthOutput{Role: role, Customer: customer}, nil
	default:
		return nil, domainerrors.ErrUnauthorized
	}
}

// ChangePassword verifies the current password before storing the new one.
func (srv *authService) ChangePassword(
	ctx context.Context,
	subject uuid.UUID,
	role entity.Role,
	input *usecase.ChangePasswordInput,
) error {
	if input == nil {
		return domainerrors.ErrValidationFailed.WithDetails("empty password change")
	}
	if err := validatePassword(input.NewPassword); err != nil {
		return err
	}

	account, err := srv.Me(ctx, subject, role)
	if err != nil {
		return err
	}

	currentHash := ""
	if account.Vendor != nil {
		currentHash = account.Vendor.PasswordHash
	} else {
		currentHash = account.Customer.PasswordHash
	}
	if !srv.hasher.Check(input.CurrentPassword, currentHash) {
		return domainerrors.ErrCurrentPasswordIncorrect
	}

	newHash, err := srv.hasher.Hash(input.NewPassword)
	if err != nil {
		return errors.Wrap(err, "failed to hash new password")
	}

	if role == entity.RoleVendor {
		err = srv.vendorRepo.UpdateVendorPassword(ctx, subject, newHash)
	} else {
		err = srv.customerRepo.UpdateCustomerPassword(ctx, subject, newHash)
	}
	if err != nil {
		return domainerrors.NewInfrastructureError(err, "update password")
	}

	srv.log(ctx).Info("Password changed", slog.String("subject", subject.String()), slog.Any("role", role))

	return nil
}

func (srv *authService) issue(subject uuid.UUID, role entity.Role, vendor *entity.Vendor, customer *entity.Customer) (*usecase.AuthOutput, error) {
	token, err := srv.tokenService.GenerateAccessToken(subject, role)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate access token")
	}

	return &usecase.AuthOutput{Token: token, Role: role, Vendor: vendor, Customer: customer}, nil
}

func accountLookupError(err, notFound error) error {
	if errors.Is(err, notFound) {
		return domainerrors.ErrUnauthorized.WithDetails("account not found")
	}

	return domainerrors.NewInfrastructureError(err, "load account")
}

func validatePassword(password string) error {
	if utf8.RuneCountInString(password) < minPasswordLength {
		return domainerrors.ErrValidationFailed.WithDetails("password must be at least 6 characters")
	}

	return nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
