package validator

import (
	"testing"

	domainerrors "vendorradar/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Name     string    `json:"name" validate:"required,min=2"`
	Category string    `json:"category" validate:"omitempty,category"`
	Unit     string    `query:"unit" validate:"omitempty,unit"`
	Opens    string    `json:"opens" validate:"omitempty,clock"`
	Limit    int       `json:"limit" validate:"omitempty,max=50"`
	Coords   []float64 `json:"coordinates" validate:"omitempty,len=2"`
}

func TestValidate(t *testing.T) {
	v := New()

	assert.NoError(t, v.Validate(&sample{Name: "ok", Category: "dairy", Unit: "kg", Opens: "07:30", Limit: 50, Coords: []float64{1, 2}}))

	err := v.Validate(&sample{Name: "x", Category: "toys", Unit: "ton", Opens: "25:00", Limit: 51, Coords: []float64{1}})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	for _, field := range []string{"name must be at least 2", "category is invalid", "unit is invalid", "opens is invalid", "limit must be at most 50", "coordinates must have 2 items"} {
		assert.Contains(t, appErr.Details(), field)
	}

	err = v.Validate(&sample{})
	require.Error(t, err)
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "name is required", appErr.Details())
}
