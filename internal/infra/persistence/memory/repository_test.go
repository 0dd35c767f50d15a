package memory

import (
	"context"
	"fmt"
	"testing"
	"time"

	"vendorradar/internal/domain/entity"
	"vendorradar/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVendorRepository_EmailUniqueness(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := NewVendorRepository()

	require.NoError(t, repo.CreateVendor(ctx, &entity.Vendor{Name: "Ana", Email: "ana@example.com"}))
	err := repo.CreateVendor(ctx, &entity.Vendor{Name: "Other", Email: "ANA@example.com"})
	assert.ErrorIs(t, err, repository.ErrVendorEmailTaken)
}

func TestVendorRepository_ReturnsCopies(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := NewVendorRepository()
	vendor := &entity.Vendor{
		Name:     "Ana",
		Email:    "ana@example.com",
		Location: &entity.VendorLocation{Coordinates: orb.Point{-74.0, 40.71}},
	}
	require.NoError(t, repo.CreateVendor(ctx, vendor))

	loaded, err := repo.FindVendorByID(ctx, vendor.ID)
	require.NoError(t, err)
	loaded.Location.Coordinates = orb.Point{0, 0}
	loaded.IsAvailable = true

	again, err := repo.FindVendorByID(ctx, vendor.ID)
	require.NoError(t, err)
	assert.Equal(t, orb.Point{-74.0, 40.71}, again.Location.Coordinates)
	assert.False(t, again.IsAvailable)

	located, err := repo.ListLocatedVendors(ctx)
	require.NoError(t, err)
	assert.Len(t, located, 1)

	assert.ErrorIs(t, repo.UpdateVendorAvailability(ctx, uuid.New(), true), repository.ErrVendorNotFound)
}

func TestProductRepository_FilterAndPaging(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := NewProductRepository()
	vendorID := uuid.New()

	for i := range 5 {
		require.NoError(t, repo.CreateProduct(ctx, &entity.Product{
			VendorID:    vendorID,
			Name:        fmt.Sprintf("Apple %d", i),
			Category:    entity.CategoryFruits,
			IsAvailable: i != 4,
			Tags:        []string{"fresh"},
			Organic:     i%2 == 0,
		}))
		time.Sleep(time.Millisecond)
	}
	require.NoError(t, repo.CreateProduct(ctx, &entity.Product{
		VendorID: uuid.New(), Name: "Milk", Category: entity.CategoryDairy, IsAvailable: true,
	}))

	page, total, err := repo.FindProductsByVendor(ctx, vendorID, repository.Page{Number: 2, Size: 2})
	require.NoError(t, err)
	assert.Equal(t, int64(5), total)
	require.Len(t, page, 2)
	assert.Equal(t, "Apple 2", page[0].Name)

	organic := true
	got, err := repo.FindAvailableProducts(ctx, repository.ProductFilter{Terms: []string{"apple"}, Organic: &organic})
	require.NoError(t, err)
	assert.Len(t, got, 2)

	byTag, err := repo.FindAvailableProducts(ctx, repository.ProductFilter{Terms: []string{"fres"}})
	require.NoError(t, err)
	assert.Len(t, byTag, 4)

	total, available, err := repo.CountProductsByVendor(ctx, vendorID)
	require.NoError(t, err)
	assert.Equal(t, int64(5), total)
	assert.Equal(t, int64(4), available)
}

func TestSearchHistoryRepository_CapsAndOrders(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := NewSearchHistoryRepository()
	customerID := uuid.New()

	for i := range 51 {
		require.NoError(t, repo.PrependEntry(ctx, customerID, entity.SearchHistoryEntry{Query: fmt.Sprintf("q%d", i)}, 50))
	}

	entries, err := repo.RecentEntries(ctx, customerID, 100)
	require.NoError(t, err)
	require.Len(t, entries, 50)
	assert.Equal(t, "q50", entries[0].Query)
	assert.Equal(t, "q1", entries[49].Query)

	top, err := repo.RecentEntries(ctx, customerID, 3)
	require.NoError(t, err)
	assert.Equal(t, []string{"q50", "q49", "q48"}, []string{top[0].Query, top[1].Query, top[2].Query})

	empty, err := repo.RecentEntries(ctx, uuid.New(), 10)
	require.NoError(t, err)
	assert.Empty(t, empty)
}
