// Package handler maps HTTP requests onto the use cases.
package handler

import (
	"time"

	"vendorradar/internal/delivery/api/middleware"
	"vendorradar/internal/delivery/api/response"
	"vendorradar/internal/domain/entity"
	domainerrors "vendorradar/internal/domain/errors"
	"vendorradar/internal/geo"
	"vendorradar/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// bind decodes path, query and body into req, then runs the struct validation rules.
func bind(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("malformed request")
	}

	return c.Validate(req)
}

func subject(c echo.Context) (uuid.UUID, error) {
	id, ok := middleware.GetSubject(c)
	if !ok {
		return uuid.Nil, domainerrors.ErrUnauthorized
	}

	return id, nil
}

func pathID(c echo.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, domainerrors.ErrValidationFailed.WithDetails(name + " is not a valid id")
	}

	return id, nil
}

// locationRequest is a position with optional address fields, shared by vendors and customers.
type locationRequest struct {
	Coordinates []float64 `json:"coordinates" validate:"required,len=2"`
	Address     *string   `json:"address"`
	City        *string   `json:"city"`
	State       *string   `json:"state"`
	ZipCode     *string   `json:"zipCode"`
}

func (r *locationRequest) input() (*usecase.LocationInput, error) {
	point, err := geo.PointFromSlice(r.Coordinates)
	if err != nil {
		return nil, domainerrors.ErrInvalidCoordinates.WithDetails(err.Error())
	}

	return &usecase.LocationInput{
		Coordinates: point,
		Address:     r.Address,
		City:        r.City,
		State:       r.State,
		ZipCode:     r.ZipCode,
	}, nil
}

func originFrom(lon, lat *float64) (*usecase.NearbyVendorsInput, error) {
	point, err := geo.NewPoint(*lon, *lat)
	if err != nil {
		return nil, domainerrors.ErrInvalidCoordinates.WithDetails(err.Error())
	}

	return &usecase.NearbyVendorsInput{Origin: point}, nil
}

// vendorSummary is the vendor shown next to a product match.
type vendorSummary struct {
	ID           uuid.UUID              `json:"id"`
	Name         string                 `json:"name"`
	BusinessName string                 `json:"businessName"`
	Location     *entity.VendorLocation `json:"location,omitempty"`
	Rating       float64                `json:"rating"`
	IsAvailable  bool                   `json:"isAvailable"`
}

type productResult struct {
	*entity.Product
	Vendor   vendorSummary `json:"vendor"`
	Distance float64       `json:"distance"`
}

type vendorResult struct {
	*entity.Vendor
	Distance float64 `json:"distance"`
}

func summarize(v *entity.Vendor) vendorSummary {
	return vendorSummary{
		ID:           v.ID,
		Name:         v.Name,
		BusinessName: v.BusinessName,
		Location:     v.Location,
		Rating:       v.Rating,
		IsAvailable:  v.IsAvailable,
	}
}

func presentProducts(matches []*entity.ProductWithDistance) []productResult {
	out := make([]productResult, 0, len(matches))
	for _, m := range matches {
		out = append(out, productResult{Product: m.Product, Vendor: summarize(m.Vendor), Distance: geo.RoundKm(m.Distance)})
	}

	return out
}

func presentVendors(matches []*entity.VendorWithDistance) []vendorResult {
	out := make([]vendorResult, 0, len(matches))
	for _, m := range matches {
		out = append(out, vendorResult{Vendor: m.Vendor, Distance: geo.RoundKm(m.Distance)})
	}

	return out
}

// valueOf dereferences an optional query value; nil leaves the zero value so the usecase applies its default.
func valueOf[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}

	return *p
}

func nearbyResponse(c echo.Context, matches []*entity.VendorWithDistance) error {
	vendors := presentVendors(matches)

	return response.OK(c, map[string]any{"vendors": vendors, "count": len(vendors)})
}

// HealthCheck reports liveness.
func HealthCheck(c echo.Context) error {
	return response.OK(c, map[string]any{
		"status":    "ok",
		"timestamp": time.Now().UTC(),
	})
}
