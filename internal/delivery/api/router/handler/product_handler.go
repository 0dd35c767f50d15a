package handler

import (
	"log/slog"

	"vendorradar/internal/delivery/api/response"
	"vendorradar/internal/domain/entity"
	"vendorradar/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ProductHandlerParams holds dependencies for ProductHandler, injected by Fx.
type ProductHandlerParams struct {
	fx.In

	ProductUC usecase.ProductUsecase
	Logger    *slog.Logger
}

// ProductHandler serves a vendor's own product catalogue.
type ProductHandler struct {
	productUC usecase.ProductUsecase
	logger    *slog.Logger
}

// NewProductHandler is the constructor for ProductHandler
func NewProductHandler(params ProductHandlerParams) *ProductHandler {
	return &ProductHandler{
		productUC: params.ProductUC,
		logger:    params.Logger,
	}
}

type createProductRequest struct {
	Name        string   `json:"name" validate:"required,min=2,max=100"`
	Description string   `json:"description" validate:"max=500"`
	Category    string   `json:"category" validate:"required,category"`
	Price       float64  `json:"price" validate:"min=0"`
	Unit        string   `json:"unit" validate:"required,unit"`
	Quantity    float64  `json:"quantity" validate:"min=0"`
	Images      []string `json:"images" validate:"omitempty,dive,url"`
	Tags        []string `json:"tags" validate:"omitempty,dive,max=30"`
	Organic     bool     `json:"organic"`
	Local       bool     `json:"local"`
}

type updateProductRequest struct {
	Name        *string  `json:"name" validate:"omitempty,min=2,max=100"`
	Description *string  `json:"description" validate:"omitempty,max=500"`
	Category    *string  `json:"category" validate:"omitempty,category"`
	Price       *float64 `json:"price" validate:"omitempty,min=0"`
	Unit        *string  `json:"unit" validate:"omitempty,unit"`
	Quantity    *float64 `json:"quantity" validate:"omitempty,min=0"`
	IsAvailable *bool    `json:"isAvailable"`
	Images      []string `json:"images" validate:"omitempty,dive,url"`
	Tags        []string `json:"tags" validate:"omitempty,dive,max=30"`
	Organic     *bool    `json:"organic"`
	Local       *bool    `json:"local"`
}

func (r *updateProductRequest) input() *usecase.UpdateProductInput {
	input := &usecase.UpdateProductInput{
		Name:        r.Name,
		Description: r.Description,
		Price:       r.Price,
		Quantity:    r.Quantity,
		IsAvailable: r.IsAvailable,
		Images:      r.Images,
		Tags:        r.Tags,
		Organic:     r.Organic,
		Local:       r.Local,
	}
	if r.Category != nil {
		category := entity.Category(*r.Category)
		input.Category = &category
	}
	if r.Unit != nil {
		unit := entity.Unit(*r.Unit)
		input.Unit = &unit
	}

	return input
}

type pageRequest struct {
	Page  *int `query:"page" validate:"omitempty,min=1"`
	Limit *int `query:"limit" validate:"omitempty,min=1,max=100"`
}

type productAvailabilityRequest struct {
	IsAvailable *bool `json:"isAvailable" validate:"required"`
}

// Create handles POST /products
func (h *ProductHandler) Create(c echo.Context) error {
	vendorID, err := subject(c)
	if err != nil {
		return err
	}

	var req createProductRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	product, err := h.productUC.CreateProduct(c.Request().Context(), vendorID, &usecase.CreateProductInput{
		Name:        req.Name,
		Description: req.Description,
		Category:    entity.Category(req.Category),
		Price:       req.Price,
		Unit:        entity.Unit(req.Unit),
		Quantity:    req.Quantity,
		Images:      req.Images,
		Tags:        req.Tags,
		Organic:     req.Organic,
		Local:       req.Local,
	})
	if err != nil {
		return err
	}

	return response.Created(c, map[string]any{"product": product})
}

// List handles GET /products
func (h *ProductHandler) List(c echo.Context) error {
	vendorID, err := subject(c)
	if err != nil {
		return err
	}

	var req pageRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	page, err := h.productUC.ListProducts(c.Request().Context(), vendorID, valueOf(req.Page), valueOf(req.Limit))
	if err != nil {
		return err
	}

	return response.OK(c, map[string]any{
		"products": page.Products,
		"pagination": map[string]any{
			"page":  page.Page,
			"limit": page.Limit,
			"total": page.Total,
		},
	})
}

// Get handles GET /products/:id
func (h *ProductHandler) Get(c echo.Context) error {
	vendorID, err := subject(c)
	if err != nil {
		return err
	}
	productID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	product, err := h.productUC.GetProduct(c.Request().Context(), vendorID, productID)
	if err != nil {
		return err
	}

	return response.OK(c, map[string]any{"product": product})
}

// Update handles PUT /products/:id
func (h *ProductHandler) Update(c echo.Context) error {
	vendorID, err := subject(c)
	if err != nil {
		return err
	}
	productID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req updateProductRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	product, err := h.productUC.UpdateProduct(c.Request().Context(), vendorID, productID, req.input())
	if err != nil {
		return err
	}

	return response.OK(c, map[string]any{"product": product})
}

// Delete handles DELETE /products/:id
func (h *ProductHandler) Delete(c echo.Context) error {
	vendorID, err := subject(c)
	if err != nil {
		return err
	}
	productID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.productUC.DeleteProduct(c.Request().Context(), vendorID, productID); err != nil {
		return err
	}

	return response.OK(c, map[string]any{"message": "Product deleted successfully"})
}

// UpdateAvailability handles PUT /products/:id/availability
func (h *ProductHandler) UpdateAvailability(c echo.Context) error {
	vendorID, err := subject(c)
	if err != nil {
		return err
	}
	productID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req productAvailabilityRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	product, err := h.productUC.SetAvailability(c.Request().Context(), vendorID, productID, *req.IsAvailable)
	if err != nil {
		return err
	}

	return response.OK(c, map[string]any{"product": product})
}
