package handler

import (
	"log/slog"

	"vendorradar/internal/delivery/api/response"
	"vendorradar/internal/domain/entity"
	domainerrors "vendorradar/internal/domain/errors"
	"vendorradar/internal/geo"
	"vendorradar/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/paulmach/orb"
	"go.uber.org/fx"
)

// CustomerHandlerParams holds dependencies for CustomerHandler, injected by Fx.
type CustomerHandlerParams struct {
	fx.In

	CustomerUC usecase.CustomerUsecase
	HistoryUC  usecase.HistoryUsecase
	Logger     *slog.Logger
}

// CustomerHandler serves the customer account, its search history and suggestions.
type CustomerHandler struct {
	customerUC usecase.CustomerUsecase
	historyUC  usecase.HistoryUsecase
	logger     *slog.Logger
}

// NewCustomerHandler is the constructor for CustomerHandler
func NewCustomerHandler(params CustomerHandlerParams) *CustomerHandler {
	return &CustomerHandler{
		customerUC: params.CustomerUC,
		historyUC:  params.HistoryUC,
		logger:     params.Logger,
	}
}

type preferencesRequest struct {
	Categories  []string `json:"categories" validate:"omitempty,dive,category"`
	MaxDistance *float64 `json:"maxDistance" validate:"omitempty,min=1,max=100"`
	Organic     *bool    `json:"organic"`
	Local       *bool    `json:"local"`
}

type historyRequest struct {
	Query    string `json:"query" validate:"required"`
	Location *struct {
		Coordinates []float64 `json:"coordinates" validate:"required,len=2"`
	} `json:"location"`
	ResultsCount int `json:"resultsCount" validate:"min=0"`
}

type customerNearbyRequest struct {
	MaxDistance *float64 `query:"maxDistance" validate:"omitempty,min=0.1,max=100"`
	Limit       *int     `query:"limit" validate:"omitempty,min=1,max=50"`
}

type limitRequest struct {
	Limit *int `query:"limit" validate:"omitempty,min=1,max=50"`
}

// UpdatePreferences handles PUT /customers/preferences
func (h *CustomerHandler) UpdatePreferences(c echo.Context) error {
	customerID, err := subject(c)
	if err != nil {
		return err
	}

	var req preferencesRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	input := &usecase.UpdatePreferencesInput{
		MaxDistanceKm: req.MaxDistance,
		Organic:       req.Organic,
		Local:         req.Local,
	}
	if req.Categories != nil {
		input.Categories = make([]entity.Category, 0, len(req.Categories))
		for _, category := range req.Categories {
			input.Categories = append(input.Categories, entity.Category(category))
		}
	}

	prefs, err := h.customerUC.UpdatePreferences(c.Request().Context(), customerID, input)
	if err != nil {
		return err
	}

	return response.OK(c, map[string]any{"preferences": prefs})
}

// UpdateLocation handles PUT /customers/location
func (h *CustomerHandler) UpdateLocation(c echo.Context) error {
	customerID, err := subject(c)
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

	location, err := h.customerUC.UpdateLocation(c.Request().Context(), customerID, input)
	if err != nil {
		return err
	}

	return response.OK(c, map[string]any{"location": location})
}

// NearbyVendors handles GET /customers/nearby-vendors
func (h *CustomerHandler) NearbyVendors(c echo.Context) error {
	customerID, err := subject(c)
	if err != nil {
		return err
	}

	var req customerNearbyRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	vendors, err := h.customerUC.NearbyVendors(c.Request().Context(), customerID, &usecase.NearbyForCustomerInput{
		MaxDistanceKm: req.MaxDistance,
		Limit:         valueOf(req.Limit),
	})
	if err != nil {
		return err
	}

	return nearbyResponse(c, vendors)
}

// AddSearchHistory handles POST /customers/search-history
func (h *CustomerHandler) AddSearchHistory(c echo.Context) error {
	customerID, err := subject(c)
	if err != nil {
		return err
	}

	var req historyRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	input := &usecase.AddHistoryInput{Query: req.Query, ResultsCount: req.ResultsCount}
	if req.Location != nil {
		var point orb.Point
		point, err = geo.PointFromSlice(req.Location.Coordinates)
		if err != nil {
			return domainerrors.ErrInvalidCoordinates.WithDetails(err.Error())
		}
		input.Coordinates = &point
	}

	if err := h.historyUC.AddEntry(c.Request().Context(), customerID, input); err != nil {
		return err
	}

	return response.Created(c, map[string]any{"message": "Search added to history"})
}

// SearchHistory handles GET /customers/search-history
func (h *CustomerHandler) SearchHistory(c echo.Context) error {
	customerID, err := subject(c)
	if err != nil {
		return err
	}

	var req limitRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	history, err := h.historyUC.History(c.Request().Context(), customerID, valueOf(req.Limit))
	if err != nil {
		return err
	}

	return response.OK(c, map[string]any{"history": history})
}

// Suggestions handles GET /customers/suggestions
func (h *CustomerHandler) Suggestions(c echo.Context) error {
	customerID, err := subject(c)
	if err != nil {
		return err
	}

	var req limitRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	suggestions, err := h.historyUC.Suggestions(c.Request().Context(), customerID, valueOf(req.Limit))
	if err != nil {
		return err
	}

	return response.OK(c, map[string]any{"suggestions": suggestions})
}
