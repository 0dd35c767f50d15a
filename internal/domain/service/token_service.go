package service

import (
	"vendorradar/internal/domain/entity"

	"github.com/google/uuid"
)

// Claims is the identity carried by an access token.
type Claims struct {
	Subject uuid.UUID
	Role    entity.Role
}

// TokenService issues and validates access tokens.
type TokenService interface {
	GenerateAccessToken(subject uuid.UUID, role entity.Role) (string, error)

	// ValidateAccessToken rejects expired, malformed or wrongly-signed tokens.
	ValidateAccessToken(token string) (*Claims, error)
}
