package handler

import (
	"log/slog"

	"vendorradar/internal/delivery/api/response"
	"vendorradar/internal/domain/entity"
	"vendorradar/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// SearchHandlerParams holds dependencies for SearchHandler, injected by Fx.
type SearchHandlerParams struct {
	fx.In

	SearchUC usecase.SearchUsecase
	Logger   *slog.Logger
}

// SearchHandler serves the public product search.
type SearchHandler struct {
	searchUC usecase.SearchUsecase
	logger   *slog.Logger
}

// NewSearchHandler is the constructor for SearchHandler
func NewSearchHandler(params SearchHandlerParams) *SearchHandler {
	return &SearchHandler{searchUC: params.SearchUC, logger: params.Logger}
}

type searchRequest struct {
	Query       string   `query:"query" validate:"required"`
	Longitude   *float64 `query:"longitude" validate:"required,gte=-180,lte=180"`
	Latitude    *float64 `query:"latitude" validate:"required,gte=-90,lte=90"`
	MaxDistance *float64 `query:"maxDistance" validate:"omitempty,min=0.1,max=100"`
	Category    string   `query:"category" validate:"omitempty,category"`
	Organic     *bool    `query:"organic"`
	Local       *bool    `query:"local"`
	Limit       *int     `query:"limit" validate:"omitempty,min=1,max=50"`
}

// Search handles GET /search
func (h *SearchHandler) Search(c echo.Context) error {
	var req searchRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	origin, err := originFrom(req.Longitude, req.Latitude)
	if err != nil {
		return err
	}

	query := &usecase.SearchQuery{
		Query:         req.Query,
		Origin:        origin.Origin,
		MaxDistanceKm: valueOf(req.MaxDistance),
		Organic:       req.Organic,
		Local:         req.Local,
		Limit:         valueOf(req.Limit),
	}
	if req.Category != "" {
		category := entity.Category(req.Category)
		query.Category = &category
	}

	result, err := h.searchUC.Search(c.Request().Context(), query)
	if err != nil {
		return err
	}

	products := presentProducts(result.Products)
	vendors := presentVendors(result.Vendors)

	return response.OK(c, map[string]any{
		"products": products,
		"vendors":  vendors,
		"count": map[string]int{
			"products": len(products),
			"vendors":  len(vendors),
		},
	})
}
