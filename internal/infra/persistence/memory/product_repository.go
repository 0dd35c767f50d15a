package memory

import (
	"context"
	"slices"
	"sort"
	"strings"
	"sync"
	"time"

	"vendorradar/internal/domain/entity"
	"vendorradar/internal/domain/repository"

	"github.com/google/uuid"
)

// ProductRepository is a map-backed repository.ProductRepository.
type ProductRepository struct {
	mu       sync.RWMutex
	products map[uuid.UUID]*entity.Product
}

var _ repository.ProductRepository = (*ProductRepository)(nil)

func NewProductRepository() *ProductRepository {
	return &ProductRepository{products: make(map[uuid.UUID]*entity.Product)}
}

func (repo *ProductRepository) CreateProduct(_ context.Context, product *entity.Product) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	if product.ID == uuid.Nil {
		product.ID = uuid.New()
	}
	now := time.Now()
	product.CreatedAt = now
	product.UpdatedAt = now
	repo.products[product.ID] = cloneProduct(product)

	return nil
}

func (repo *ProductRepository) FindProductByID(_ context.Context, id uuid.UUID) (*entity.Product, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	product, ok := repo.products[id]
	if !ok {
		return nil, repository.ErrProductNotFound
	}

	return cloneProduct(product), nil
}

func (repo *ProductRepository) FindProductsByVendor(_ context.Context, vendorID uuid.UUID, page repository.Page) ([]*entity.Product, int64, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	var owned []*entity.Product
	for _, product := range repo.products {
		if product.VendorID == vendorID {
			owned = append(owned, product)
		}
	}
	sort.SliceStable(owned, func(i, j int) bool {
		return owned[i].CreatedAt.After(owned[j].CreatedAt)
	})

	total := int64(len(owned))
	start := min(page.Offset(), len(owned))
	end := len(owned)
	if page.Size > 0 {
		end = min(start+page.Size, len(owned))
	}

	products := make([]*entity.Product, 0, end-start)
	for _, product := range owned[start:end] {
		products = append(products, cloneProduct(product))
	}

	return products, total, nil
}

// FindAvailableProducts returns results sorted by ID so callers see a stable order.
func (repo *ProductRepository) FindAvailableProducts(_ context.Context, filter repository.ProductFilter) ([]*entity.Product, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	var products []*entity.Product
	for _, product := range repo.products {
		if matchesFilter(product, filter) {
			products = append(products, cloneProduct(product))
		}
	}
	sort.Slice(products, func(i, j int) bool {
		return products[i].ID.String() < products[j].ID.String()
	})

	return products, nil
}

func (repo *ProductRepository) CountProductsByVendor(_ context.Context, vendorID uuid.UUID) (int64, int64, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	var total, available int64
	for _, product := range repo.products {
		if product.VendorID != vendorID {
			continue
		}
		total++
		if product.IsAvailable {
			available++
		}
	}

	return total, available, nil
}

func (repo *ProductRepository) UpdateProduct(_ context.Context, product *entity.Product) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	existing, ok := repo.products[product.ID]
	if !ok {
		return repository.ErrProductNotFound
	}

	updated := cloneProduct(product)
	updated.VendorID = existing.VendorID
	updated.CreatedAt = existing.CreatedAt
	updated.UpdatedAt = time.Now()
	repo.products[product.ID] = updated
	product.UpdatedAt = updated.UpdatedAt

	return nil
}

func (repo *ProductRepository) DeleteProduct(_ context.Context, id uuid.UUID) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	if _, ok := repo.products[id]; !ok {
		return repository.ErrProductNotFound
	}
	delete(repo.products, id)

	return nil
}

func matchesFilter(product *entity.Product, filter repository.ProductFilter) bool {
	if !product.IsAvailable {
		return false
	}
	if filter.Category != nil && product.Category != *filter.Category {
		return false
	}
	if filter.Organic != nil && product.Organic != *filter.Organic {
		return false
	}
	if filter.Local != nil && product.Local != *filter.Local {
		return false
	}
	if len(filter.Terms) == 0 {
		return true
	}

	name := strings.ToLower(product.Name)
	description := strings.ToLower(product.Description)
	for _, term := range filter.Terms {
		if strings.Contains(name, term) || strings.Contains(description, term) {
			return true
		}
		if slices.ContainsFunc(product.Tags, func(tag string) bool { return strings.Contains(tag, term) }) {
			return true
		}
	}

	return false
}

func cloneProduct(product *entity.Product) *entity.Product {
	copied := *product
	copied.Images = slices.Clone(product.Images)
	copied.Tags = slices.Clone(product.Tags)

	return &copied
}
