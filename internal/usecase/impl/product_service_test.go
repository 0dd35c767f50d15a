package impl

import (
	"context"
	"testing"

	"vendorradar/internal/domain/entity"
	domainerrors "vendorradar/internal/domain/errors"
	mockRepo "vendorradar/internal/mocks/repository"
	"vendorradar/internal/infra/persistence/memory"
	"vendorradar/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newProductService(t *testing.T) (*productService, *memory.ProductRepository) {
	t.Helper()

	repo := memory.NewProductRepository()

	return NewProductService(ProductServiceParams{ProductRepo: repo, Logger: discardLogger}).(*productService), repo
}

func validProductInput() *usecase.CreateProductInput {
	return &usecase.CreateProductInput{
		Name:     "Heirloom Tomatoes",
		Category: entity.CategoryVegetables,
		Price:    4.5,
		Unit:     entity.UnitLb,
		Quantity: 20,
		Tags:     []string{" Red ", "red", "Summer"},
	}
}

func TestProductService_CreateProduct(t *testing.T) {
	srv, repo := newProductService(t)
	vendorID := uuid.New()

	product, err := srv.CreateProduct(context.Background(), vendorID, validProductInput())
	require.NoError(t, err)
	assert.Equal(t, vendorID, product.VendorID)
	assert.True(t, product.IsAvailable)
	assert.NotNil(t, product.Images)
	assert.Equal(t, entity.NormalizeTags([]string{" Red ", "red", "Summer"}), product.Tags)

	stored, err := repo.FindProductByID(context.Background(), product.ID)
	require.NoError(t, err)
	assert.Equal(t, product.Name, stored.Name)
}

func TestProductService_CreateProductValidation(t *testing.T) {
	srv, _ := newProductService(t)

	tests := []struct {
		name   string
		mutate func(input *usecase.CreateProductInput)
	}{
		{name: "short name", mutate: func(in *usecase.CreateProductInput) { in.Name = "T" }},
		{name: "unknown category", mutate: func(in *usecase.CreateProductInput) { in.Category = "toys" }},
		{name: "unknown unit", mutate: func(in *usecase.CreateProductInput) { in.Unit = "crate" }},
		{name: "negative price", mutate: func(in *usecase.CreateProductInput) { in.Price = -1 }},
		{name: "negative quantity", mutate: func(in *usecase.CreateProductInput) { in.Quantity = -3 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := validProductInput()
			tt.mutate(input)
			_, err := srv.CreateProduct(context.Background(), uuid.New(), input)
			assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
		})
	}
}

func TestProductService_OwnershipIsEnforced(t *testing.T) {
	srv, _ := newProductService(t)
	ctx := context.Background()
	owner := uuid.New()
	stranger := uuid.New()

	product, err := srv.CreateProduct(ctx, owner, validProductInput())
	require.NoError(t, err)

	_, err = srv.GetProduct(ctx, stranger, product.ID)
	assert.ErrorIs(t, err, domainerrors.ErrProductOwnershipViolation)

	_, err = srv.UpdateProduct(ctx, stranger, product.ID, &usecase.UpdateProductInput{Price: ptr(1.0)})
	assert.ErrorIs(t, err, domainerrors.ErrProductOwnershipViolation)

	assert.ErrorIs(t, srv.DeleteProduct(ctx, stranger, product.ID), domainerrors.ErrProductOwnershipViolation)

	_, err = srv.GetProduct(ctx, owner, uuid.New())
	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
}

func TestProductService_UpdateAndAvailability(t *testing.T) {
	srv, _ := newProductService(t)
	ctx := context.Background()
	vendorID := uuid.New()

	product, err := srv.CreateProduct(ctx, vendorID, validProductInput())
	require.NoError(t, err)

	updated, err := srv.UpdateProduct(ctx, vendorID, product.ID, &usecase.UpdateProductInput{
		Price:   ptr(3.0),
		Organic: ptr(true),
	})
	require.NoError(t, err)
	assert.Equal(t, 3.0, updated.Price)
	assert.True(t, updated.Organic)
	assert.Equal(t, product.Name, updated.Name)

	_, err = srv.UpdateProduct(ctx, vendorID, product.ID, &usecase.UpdateProductInput{Name: ptr("")})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	hidden, err := srv.SetAvailability(ctx, vendorID, product.ID, false)
	require.NoError(t, err)
	assert.False(t, hidden.IsAvailable)

	fetched, err := srv.GetProduct(ctx, vendorID, product.ID)
	require.NoError(t, err)
	assert.False(t, fetched.IsAvailable)
}

func TestProductService_ListAndDelete(t *testing.T) {
	srv, _ := newProductService(t)
	ctx := context.Background()
	vendorID := uuid.New()

	var ids []uuid.UUID
	for i := 0; i < 3; i++ {
		product, err := srv.CreateProduct(ctx, vendorID, validProductInput())
		require.NoError(t, err)
		ids = append(ids, product.ID)
	}
	_, err := srv.CreateProduct(ctx, uuid.New(), validProductInput())
	require.NoError(t, err)

	page, err := srv.ListProducts(ctx, vendorID, 0, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(3), page.Total)
	assert.Equal(t, 1, page.Page)
	assert.Equal(t, 2, page.Limit)
	assert.Len(t, page.Products, 2)

	page, err = srv.ListProducts(ctx, vendorID, 2, 1000)
	require.NoError(t, err)
	assert.Equal(t, maxProductPageSize, page.Limit)
	assert.Empty(t, page.Products)

	require.NoError(t, srv.DeleteProduct(ctx, vendorID, ids[0]))
	_, err = srv.GetProduct(ctx, vendorID, ids[0])
	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
}

func TestProductService_RepositoryFailure(t *testing.T) {
	repo := mockRepo.NewMockProductRepository(t)
	srv := NewProductService(ProductServiceParams{ProductRepo: repo, Logger: discardLogger})

	repo.EXPECT().CreateProduct(mock.Anything, mock.AnythingOfType("*entity.Product")).Return(errors.New("disk full"))

	_, err := srv.CreateProduct(context.Background(), uuid.New(), validProductInput())
	require.Error(t, err)

	var infraErr *domainerrors.InfrastructureError
	assert.True(t, errors.As(err, &infraErr))
}
