package repository

import (
	"context"

	"vendorradar/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrProductNotFound is returned when a product is not found.
var ErrProductNotFound = errors.New("product not found")

// ProductFilter narrows the candidate set of the text-match stage.
// Terms are lowercased query tokens; a product is a candidate when any term
// occurs in its name, description or tags. Empty Terms matches everything.
type ProductFilter struct {
	Terms    []string
	Category *entity.Category
	Organic  *bool
	Local    *bool
}

// Page is a 1-based page request.
type Page struct {
	Number int
	Size   int
}

// Offset returns the number of rows to skip.
func (p Page) Offset() int {
	if p.Number < 1 {
		return 0
	}

	return (p.Number - 1) * p.Size
}

// ProductRepository defines product record operations.
type ProductRepository interface {
	CreateProduct(ctx context.Context, product *entity.Product) error

	// FindProductByID returns ErrProductNotFound when no product has the given ID.
	FindProductByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)

	// FindProductsByVendor lists a vendor's products newest first, with the total count.
	FindProductsByVendor(ctx context.Context, vendorID uuid.UUID, page Page) ([]*entity.Product, int64, error)

	// FindAvailableProducts returns available products matching the filter.
	FindAvailableProducts(ctx context.Context, filter ProductFilter) ([]*entity.Product, error)

	// CountProductsByVendor returns the total and the available product counts.
	CountProductsByVendor(ctx context.Context, vendorID uuid.UUID) (total int64, available int64, err error)

	UpdateProduct(ctx context.Context, product *entity.Product) error

	DeleteProduct(ctx context.Context, id uuid.UUID) error
}
