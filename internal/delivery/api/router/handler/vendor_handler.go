package handler

import (
	"log/slog"

	"vendorradar/internal/delivery/api/response"
	"vendorradar/internal/domain/entity"
	"vendorradar/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// VendorHandlerParams holds dependencies for VendorHandler, injected by Fx.
type VendorHandlerParams struct {
	fx.In

	VendorUC usecase.VendorUsecase
	Logger   *slog.Logger
}

// VendorHandler serves the vendor dashboard and the public vendor lookups.
type VendorHandler struct {
	vendorUC usecase.VendorUsecase
	logger   *slog.Logger
}

// NewVendorHandler is the constructor for VendorHandler
func NewVendorHandler(params VendorHandlerParams) *VendorHandler {
	return &VendorHandler{vendorUC: params.VendorUC, logger: params.Logger}
}

type hoursRequest struct {
	Start string `json:"start" validate:"required,clock"`
	End   string `json:"end" validate:"required,clock"`
}

func (r hoursRequest) hours() entity.OperatingHours {
	return entity.OperatingHours{Start: r.Start, End: r.End}
}

type updateProfileRequest struct {
	Name           *string       `json:"name" validate:"omitempty,min=2,max=50"`
	Phone          *string       `json:"phone" validate:"omitempty,phone"`
	BusinessName   *string       `json:"businessName" validate:"omitempty,min=2,max=100"`
	Description    *string       `json:"description" validate:"omitempty,max=500"`
	OperatingHours *hoursRequest `json:"operatingHours"`
}

type availabilityRequest struct {
	IsAvailable *bool `json:"isAvailable" validate:"required"`
}

type nearbyRequest struct {
	Longitude   *float64 `query:"longitude" validate:"required,gte=-180,lte=180"`
	Latitude    *float64 `query:"latitude" validate:"required,gte=-90,lte=90"`
	MaxDistance *float64 `query:"maxDistance" validate:"omitempty,min=0.1,max=100"`
	Limit       *int     `query:"limit" validate:"omitempty,min=1,max=50"`
}

type profileView struct {
	*entity.Vendor
	ProductsCount          int64 `json:"productsCount"`
	AvailableProductsCount int64 `json:"availableProductsCount"`
}

// GetProfile handles GET /vendors/profile
func (h *VendorHandler) GetProfile(c echo.Context) error {
	vendorID, err := subject(c)
	if err != nil {
		return err
	}

	profile, err := h.vendorUC.GetProfile(c.Request().Context(), vendorID)
	if err != nil {
		return err
	}

	return response.OK(c, map[string]any{"vendor": profileView{
		Vendor:                 profile.Vendor,
		ProductsCount:          profile.ProductsCount,
		AvailableProductsCount: profile.AvailableProductsCount,
	}})
}

// UpdateProfile handles PUT /vendors/profile
func (h *VendorHandler) UpdateProfile(c echo.Context) error {
	vendorID, err := subject(c)
	if err != nil {
		return err
	}

	var req updateProfileRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	input := &usecase.UpdateVendorProfileInput{
		Name:         req.Name,
		Phone:        req.Phone,
		BusinessName: req.BusinessName,
		Description:  req.Description,
	}
	if req.OperatingHours != nil {
		hours := req.OperatingHours.hours()
		input.OperatingHours = &hours
	}

	vendor, err := h.vendorUC.UpdateProfile(c.Request().Context(), vendorID, input)
	if err != nil {
		return err
	}

	return response.OK(c, map[string]any{"vendor": vendor})
}

// UpdateLocation handles PUT /vendors/location
func (h *VendorHandler) UpdateLocation(c echo.Context) error {
	vendorID, err := subject(c)
	if err != nil {
		return err
	}

	var req locationRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	input, err := req.input()
	if err != nil {
		return err
	}

	location, err := h.vendorUC.UpdateLocation(c.Request().Context(), vendorID, input)
	if err != nil {
		return err
	}

	return response.OK(c, map[string]any{"location": location})
}

// UpdateAvailability handles PUT /vendors/availability
func (h *VendorHandler) UpdateAvailability(c echo.Context) error {
	vendorID, err := subject(c)
	if err != nil {
		return err
	}

	var req availabilityRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	isAvailable, err := h.vendorUC.UpdateAvailability(c.Request().Context(), vendorID, *req.IsAvailable)
	if err != nil {
		return err
	}

	return response.OK(c, map[string]any{"isAvailable": isAvailable})
}

// Nearby handles GET /vendors/nearby
func (h *VendorHandler) Nearby(c echo.Context) error {
	var req nearbyRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	input, err := originFrom(req.Longitude, req.Latitude)
	if err != nil {
		return err
	}
	input.MaxDistanceKm = valueOf(req.MaxDistance)
	input.Limit = valueOf(req.Limit)

	vendors, err := h.vendorUC.FindNearby(c.Request().Context(), input)
	if err != nil {
		return err
	}

	return nearbyResponse(c, vendors)
}

// GetPublicVendor handles GET /vendors/:id
func (h *VendorHandler) GetPublicVendor(c echo.Context) error {
	vendorID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	public, err := h.vendorUC.GetPublicVendor(c.Request().Context(), vendorID)
	if err != nil {
		return err
	}

	return response.OK(c, map[string]any{
		"vendor":   public.Vendor,
		"products": public.Products,
	})
}
