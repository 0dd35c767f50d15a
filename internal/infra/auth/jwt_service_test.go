package auth

import (
	"testing"
	"time"

	"vendorradar/config"
	"vendorradar/internal/domain/entity"
	domainerrors "vendorradar/internal/domain/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestJWTService(t *testing.T) *jwtService {
	t.Helper()

	cfg := &config.Config{Auth: &config.AuthConfig{AccessTokenTTL: time.Hour}}
	cfg.SecretKey.Access = "test_access_secret_key_very_long_for_testing"
	cfg.Env.ServiceName = "vendorradar-test"

	tokenService, err := NewJWTService(cfg)
	require.NoError(t, err)

	return tokenService.(*jwtService)
}

func TestJWTService_GenerateAndValidate(t *testing.T) {
	svc := newTestJWTService(t)
	subject := uuid.New()

	for _, role := range []entity.Role{entity.RoleVendor, entity.RoleCustomer} {
		token, err := svc.GenerateAccessToken(subject, role)
		require.NoError(t, err)
		assert.NotEmpty(t, token)

		claims, err := svc.ValidateAccessToken(token)
		require.NoError(t, err)
		assert.Equal(t, subject, claims.Subject)
		assert.Equal(t, role, claims.Role)
	}
}

func TestJWTService_RequiresSecret(t *testing.T) {
	_, err := NewJWTService(&config.Config{})
	assert.Error(t, err)
}

func TestJWTService_RejectsUnknownRole(t *testing.T) {
	svc := newTestJWTService(t)

	_, err := svc.GenerateAccessToken(uuid.New(), entity.Role("admin"))
	assert.Error(t, err)
}

func TestJWTService_InvalidTokens(t *testing.T) {
	svc := newTestJWTService(t)
	subject := uuid.New()

	other := newTestJWTService(t)
	other.accessSecret = []byte("a_completely_different_secret_value")
	foreign, err := other.GenerateAccessToken(subject, entity.RoleVendor)
	require.NoError(t, err)

	expiredSvc := newTestJWTService(t)
	expiredSvc.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	expired, err := expiredSvc.GenerateAccessToken(subject, entity.RoleVendor)
	require.NoError(t, err)

	none, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"sub":  subject.String(),
		"role": "vendor",
		"exp":  time.Now().Add(time.Hour).Unix(),
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{name: "garbage", token: "clearly-not-a-jwt-token-format"},
		{name: "wrong secret", token: foreign},
		{name: "expired", token: expired},
		{name: "unsigned", token: none},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := svc.ValidateAccessToken(tt.token)
			require.Error(t, err)
			assert.Nil(t, claims)
			assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
		})
	}
}
