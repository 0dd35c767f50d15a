package errors

import (
	"net/http"
	"testing"

	pkgerrors "github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBaseError_WithDetailsStillMatchesSentinel(t *testing.T) {
	err := ErrInvalidCoordinates.WithDetails("latitude out of range")

	assert.ErrorIs(t, err, ErrInvalidCoordinates)
	assert.NotErrorIs(t, err, ErrValidationFailed)
	assert.Equal(t, "Invalid coordinates: latitude out of range", err.Error())
	assert.Equal(t, "latitude out of range", err.Details())
}

func TestBaseError_WrapMessageKeepsAppError(t *testing.T) {
	err := ErrVendorNotFound.WrapMessage("load vendor")

	var appErr AppError
	require.True(t, pkgerrors.As(err, &appErr))
	assert.Equal(t, http.StatusNotFound, appErr.HTTPCode())
	assert.Equal(t, "VENDOR_NOT_FOUND", appErr.ErrorCode())
}

func TestInfrastructureError_UnwrapsDriverError(t *testing.T) {
	driverErr := pkgerrors.New("connection refused")
	err := NewInfrastructureError(driverErr, "redis GEORADIUS")

	assert.ErrorIs(t, err, driverErr)
	assert.Equal(t, http.StatusInternalServerError, err.HTTPCode())
	assert.Contains(t, err.Error(), "redis GEORADIUS")
}
