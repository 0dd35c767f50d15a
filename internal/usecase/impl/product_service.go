package impl

import (
	"context"
	"log/slog"
	"math"
	"slices"
	"strings"
	"unicode/utf8"

	deliverycontext "vendorradar/internal/delivery/context"
	"vendorradar/internal/domain/entity"
	domainerrors "vendorradar/internal/domain/errors"
	"vendorradar/internal/domain/repository"
	"vendorradar/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	defaultProductPageSize = 20
	maxProductPageSize     = 100
)

type productService struct {
	productRepo repository.ProductRepository
	logger      *slog.Logger
}

// ProductServiceParams holds dependencies for ProductService, injected by Fx.
type ProductServiceParams struct {
	fx.In

	ProductRepo repository.ProductRepository
	Logger      *slog.Logger
}

// NewProductService creates the product service.
func NewProductService(params ProductServiceParams) usecase.ProductUsecase {
	logger := params.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &productService{
		productRepo: params.ProductRepo,
		logger:      logger,
	}
}

func (srv *productService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateProduct lists a new available product for the vendor.
func (srv *productService) CreateProduct(ctx context.Context, vendorID uuid.UUID, input *usecase.CreateProductInput) (*entity.Product, error) {
	if input == nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("empty product")
	}

	product := &entity.Product{
		ID:          uuid.New(),
		VendorID:    vendorID,
		Name:        strings.TrimSpace(input.Name),
		Description: strings.TrimSpace(input.Description),
		Category:    input.Category,
		Price:       input.Price,
		Unit:        input.Unit,
		Quantity:    input.Quantity,
		IsAvailable: true,
		Images:      nonNil(input.Images),
		Tags:        entity.NormalizeTags(input.Tags),
		Organic:     input.Organic,
		Local:       input.Local,
	}
	if err := validateProduct(product); err != nil {
		return nil, err
	}

	if err := srv.productRepo.CreateProduct(ctx, product); err != nil {
		return nil, srv.mapWriteError(err, "create product")
	}

	srv.log(ctx).Info("Product created",
		slog.String("vendor_id", vendorID.String()),
		slog.String("product_id", product.ID.String()))

	return product, nil
}

// ListProducts returns one page of the vendor's products, newest first.
func (srv *productService) ListProducts(ctx context.Context, vendorID uuid.UUID, page, limit int) (*usecase.ProductPage, error) {
	if page < 1 {
		page = 1
	}
	switch {
	case limit <= 0:
		limit = defaultProductPageSize
	case limit > maxProductPageSize:
		limit = maxProductPageSize
	}

	products, total, err := srv.productRepo.FindProductsByVendor(ctx, vendorID, repository.Page{Number: page, Size: limit})
	if err != nil {
		return nil, domainerrors.NewInfrastructureError(err, "list vendor products")
	}

	return &usecase.ProductPage{Products: products, Total: total, Page: page, Limit: limit}, nil
}

// GetProduct returns one of the vendor's own products.
func (srv *productService) GetProduct(ctx context.Context, vendorID, productID uuid.UUID) (*entity.Product, error) {
	return srv.findOwned(ctx, vendorID, productID)
}

// UpdateProduct applies the supplied fields to one of the vendor's own products.
func (srv *productService) UpdateProduct(
	ctx context.Context,
	vendorID, productID uuid.UUID,
	input *usecase.UpdateProductInput,
) (*entity.Product, error) {
	if input == nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("empty product update")
	}

	product, err := srv.findOwned(ctx, vendorID, productID)
	if err != nil {
		return nil, err
	}

	applyProductUpdate(product, input)
	if err := validateProduct(product); err != nil {
		return nil, err
	}

	if err := srv.productRepo.UpdateProduct(ctx, product); err != nil {
		return nil, srv.mapWriteError(err, "update product")
	}

	return product, nil
}

// DeleteProduct removes one of the vendor's own products.
func (srv *productService) DeleteProduct(ctx context.Context, vendorID, productID uuid.UUID) error {
	if _, err := srv.findOwned(ctx, vendorID, productID); err != nil {
		return err
	}

	if err := srv.productRepo.DeleteProduct(ctx, productID); err != nil {
		return srv.mapWriteError(err, "delete product")
	}

	srv.log(ctx).Info("Product deleted",
		slog.String("vendor_id", vendorID.String()),
		slog.String("product_id", productID.String()))

	return nil
}

// SetAvailability toggles whether a product shows up in searches.
func (srv *productService) SetAvailability(ctx context.Context, vendorID, productID uuid.UUID, isAvailable bool) (*entity.Product, error) {
	return srv.UpdateProduct(ctx, vendorID, productID, &usecase.UpdateProductInput{IsAvailable: &isAvailable})
}

func (srv *productService) findOwned(ctx context.Context, vendorID, productID uuid.UUID) (*entity.Product, error) {
	product, err := srv.productRepo.FindProductByID(ctx, productID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, domainerrors.NewInfrastructureError(err, "load product")
	}

	if product.VendorID != vendorID {
		return nil, domainerrors.ErrProductOwnershipViolation
	}

	return product, nil
}

func (srv *productService) mapWriteError(err error, details string) error {
	var appErr domainerrors.AppError
	switch {
	case errors.Is(err, repository.ErrProductNotFound):
		return domainerrors.ErrProductNotFound
	case errors.As(err, &appErr):
		return err
	default:
		return domainerrors.NewInfrastructureError(err, details)
	}
}

func applyProductUpdate(product *entity.Product, input *usecase.UpdateProductInput) {
	if input.Name != nil {
		product.Name = strings.TrimSpace(*input.Name)
	}
	if input.Description != nil {
		product.Description = strings.TrimSpace(*input.Description)
	}
	if input.Category != nil {
		product.Category = *input.Category
	}
	if input.Price != nil {
		product.Price = *input.Price
	}
	if input.Unit != nil {
		product.Unit = *input.Unit
	}
	if input.Quantity != nil {
		product.Quantity = *input.Quantity
	}
	if input.IsAvailable != nil {
		product.IsAvailable = *input.IsAvailable
	}
	if input.Images != nil {
		product.Images = slices.Clone(input.Images)
	}
	if input.Tags != nil {
		product.Tags = entity.NormalizeTags(input.Tags)
	}
	if input.Organic != nil {
		product.Organic = *input.Organic
	}
	if input.Local != nil {
		product.Local = *input.Local
	}
}

func validateProduct(product *entity.Product) error {
	if n := utf8.RuneCountInString(product.Name); n < 2 || n > 100 {
		return domainerrors.ErrValidationFailed.WithDetails("product name must be 2-100 characters")
	}
	if utf8.RuneCountInString(product.Description) > 500 {
		return domainerrors.ErrValidationFailed.WithDetails("description cannot be more than 500 characters")
	}
	if !product.Category.IsValid() {
		return domainerrors.ErrValidationFailed.WithDetails("invalid category")
	}
	if !product.Unit.IsValid() {
		return domainerrors.ErrValidationFailed.WithDetails("invalid unit")
	}
	if math.IsNaN(product.Price) || product.Price < 0 {
		return domainerrors.ErrValidationFailed.WithDetails("price cannot be negative")
	}
	if math.IsNaN(product.Quantity) || product.Quantity < 0 {
		return domainerrors.ErrValidationFailed.WithDetails("quantity cannot be negative")
	}

	return nil
}

func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}

	return slices.Clone(values)
}
