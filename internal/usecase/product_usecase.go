package usecase

import (
	"context"

	"vendorradar/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateProductInput represents the input for listing a new product
type CreateProductInput struct {
	Name        string
	Description string
	Category    entity.Category
	Price       float64
	Unit        entity.Unit
	Quantity    float64
	Images      []string
	Tags        []string
	Organic     bool
	Local       bool
}

// UpdateProductInput represents the input for editing a product; nil keeps the current value
type UpdateProductInput struct {
	Name        *string
	Description *string
	Category    *entity.Category
	Price       *float64
	Unit        *entity.Unit
	Quantity    *float64
	IsAvailable *bool
	Images      []string
	Tags        []string
	Organic     *bool
	Local       *bool
}

// ProductPage is one page of a vendor's products.
type ProductPage struct {
	Products []*entity.Product
	Total    int64
	Page     int
	Limit    int
}

// ProductUsecase manages a vendor's own products. Every operation enforces ownership.
type ProductUsecase interface {
	CreateProduct(ctx context.Context, vendorID uuid.UUID, input *CreateProductInput) (*entity.Product, error)
	ListProducts(ctx context.Context, vendorID uuid.UUID, page, limit int) (*ProductPage, error)
	GetProduct(ctx context.Context, vendorID, productID uuid.UUID) (*entity.Product, error)
	UpdateProduct(ctx context.Context, vendorID, productID uuid.UUID, input *UpdateProductInput) (*entity.Product, error)
	DeleteProduct(ctx context.Context, vendorID, productID uuid.UUID) error
	SetAvailability(ctx context.Context, vendorID, productID uuid.UUID, isAvailable bool) (*entity.Product, error)
}
