package impl

import (
	"context"
	"testing"

	"vendorradar/internal/domain/entity"
	domainerrors "vendorradar/internal/domain/errors"
	mockService "vendorradar/internal/mocks/service"
	"vendorradar/internal/usecase"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type authFixture struct {
	env    *testEnv
	hasher *mockService.MockPasswordHasher
	tokens *mockService.MockTokenService
	srv    *authService
}

func newAuthFixture(t *testing.T) *authFixture {
	t.Helper()

	env := newTestEnv(t)
	hasher := mockService.NewMockPasswordHasher(t)
	tokens := mockService.NewMockTokenService(t)
	srv := NewAuthService(AuthServiceParams{
		VendorRepo:   env.vendors,
		CustomerRepo: env.customers,
		Index:        env.index,
		Hasher:       hasher,
		TokenService: tokens,
		Logger:       discardLogger,
	}).(*authService)

	return &authFixture{env: env, hasher: hasher, tokens: tokens, srv: srv}
}

func vendorRegistration() *usecase.RegisterVendorInput {
	return &usecase.RegisterVendorInput{
		Name:           "Luis",
		Email:          " Luis@Example.com ",
		Password:       "s3cret!",
		Phone:          "+15550001111",
		BusinessName:   "Luis Tacos",
		Location:       &usecase.LocationInput{Coordinates: orb.Point{-118.24, 34.05}},
		OperatingHours: entity.OperatingHours{Start: "11:00", End: "22:00"},
	}
}

func TestAuthService_RegisterVendorStartsOfflineAtItsLocation(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()

	f.hasher.EXPECT().Hash("s3cret!").Return("hashed", nil)
	f.tokens.EXPECT().GenerateAccessToken(mock.AnythingOfType("uuid.UUID"), entity.RoleVendor).Return("token-v", nil)

	out, err := f.srv.RegisterVendor(ctx, vendorRegistration())
	require.NoError(t, err)
	assert.Equal(t, "token-v", out.Token)
	assert.Equal(t, entity.RoleVendor, out.Role)
	require.NotNil(t, out.Vendor)
	assert.Equal(t, "luis@example.com", out.Vendor.Email)
	assert.False(t, out.Vendor.IsAvailable)
	require.NotNil(t, out.Vendor.Location)
	assert.Equal(t, orb.Point{-118.24, 34.05}, out.Vendor.Location.Coordinates)

	stored, err := f.env.vendors.FindVendorByID(ctx, out.Vendor.ID)
	require.NoError(t, err)
	assert.Equal(t, "hashed", stored.PasswordHash)
	assert.Equal(t, 1, f.env.store.Size(), "the first position reaches the store")

	_, err = f.srv.RegisterVendor(ctx, vendorRegistration())
	assert.ErrorIs(t, err, domainerrors.ErrVendorAlreadyExists)
}

func TestAuthService_RegisterVendorValidation(t *testing.T) {
	f := newAuthFixture(t)

	tests := []struct {
		name   string
		mutate func(input *usecase.RegisterVendorInput)
		want   error
	}{
		{name: "missing location", mutate: func(in *usecase.RegisterVendorInput) { in.Location = nil }, want: domainerrors.ErrValidationFailed},
		{name: "bad coordinates", mutate: func(in *usecase.RegisterVendorInput) {
			in.Location = &usecase.LocationInput{Coordinates: orb.Point{0, 91}}
		}, want: domainerrors.ErrInvalidCoordinates},
		{name: "bad hours", mutate: func(in *usecase.RegisterVendorInput) { in.OperatingHours.End = "9pm" }, want: domainerrors.ErrValidationFailed},
		{name: "short password", mutate: func(in *usecase.RegisterVendorInput) { in.Password = "12345" }, want: domainerrors.ErrValidationFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := vendorRegistration()
			tt.mutate(input)
			_, err := f.srv.RegisterVendor(context.Background(), input)
			assert.ErrorIs(t, err, tt.want)
		})
	}
	assert.Zero(t, f.env.store.Size())
}

func TestAuthService_CustomerRegisterAndLogin(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()

	f.hasher.EXPECT().Hash("hunter22").Return("hashed", nil)
	f.tokens.EXPECT().GenerateAccessToken(mock.AnythingOfType("uuid.UUID"), entity.RoleCustomer).Return("token-c", nil)

	out, err := f.srv.RegisterCustomer(ctx, &usecase.RegisterCustomerInput{
		Name:     "Mia",
		Email:    "mia@example.com",
		Password: "hunter22",
	})
	require.NoError(t, err)
	require.NotNil(t, out.Customer)
	assert.Equal(t, entity.DefaultPreferences(), out.Customer.Preferences)
	assert.True(t, out.Customer.IsActive)

	f.hasher.EXPECT().Check("hunter22", "hashed").Return(true).Once()
	out, err = f.srv.LoginCustomer(ctx, &usecase.LoginInput{Email: "MIA@example.com", Password: "hunter22"})
	require.NoError(t, err)
	assert.Equal(t, "token-c", out.Token)

	f.hasher.EXPECT().Check("wrong", "hashed").Return(false).Once()
	_, err = f.srv.LoginCustomer(ctx, &usecase.LoginInput{Email: "mia@example.com", Password: "wrong"})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)

	_, err = f.srv.LoginCustomer(ctx, &usecase.LoginInput{Email: "nobody@example.com", Password: "hunter22"})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)

	_, err = f.srv.LoginVendor(ctx, &usecase.LoginInput{Email: "mia@example.com", Password: "hunter22"})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials, "a customer cannot log in as a vendor")
}

func TestAuthService_MeAndChangePassword(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()
	vendor := f.env.seedVendor(t, "pw", nil, true)
	require.NoError(t, f.env.vendors.UpdateVendorPassword(ctx, vendor.ID, "old-hash"))

	me, err := f.srv.Me(ctx, vendor.ID, entity.RoleVendor)
	require.NoError(t, err)
	assert.Equal(t, vendor.ID, me.Vendor.ID)

	_, err = f.srv.Me(ctx, vendor.ID, entity.RoleCustomer)
	assert.ErrorIs(t, err, domainerrors.ErrUnauthorized, "the role picks the account table")

	_, err = f.srv.Me(ctx, uuid.New(), entity.RoleVendor)
	assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)

	f.hasher.EXPECT().Check("nope", "old-hash").Return(false).Once()
	err = f.srv.ChangePassword(ctx, vendor.ID, entity.RoleVendor, &usecase.ChangePasswordInput{
		CurrentPassword: "nope",
		NewPassword:     "brand-new",
	})
	assert.ErrorIs(t, err, domainerrors.ErrCurrentPasswordIncorrect)

	f.hasher.EXPECT().Check("old-pass", "old-hash").Return(true).Once()
	f.hasher.EXPECT().Hash("brand-new").Return("new-hash", nil).Once()
	require.NoError(t, f.srv.ChangePassword(ctx, vendor.ID, entity.RoleVendor, &usecase.ChangePasswordInput{
		CurrentPassword: "old-pass",
		NewPassword:     "brand-new",
	}))

	stored, err := f.env.vendors.FindVendorByID(ctx, vendor.ID)
	require.NoError(t, err)
	assert.Equal(t, "new-hash", stored.PasswordHash)

	err = f.srv.ChangePassword(ctx, vendor.ID, entity.RoleVendor, &usecase.ChangePasswordInput{
		CurrentPassword: "old-pass",
		NewPassword:     "abc",
	})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}
