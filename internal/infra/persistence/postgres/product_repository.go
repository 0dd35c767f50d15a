package postgres

import (
	"context"

	domainerrors "vendorradar/internal/domain/errors"
	"vendorradar/internal/domain/entity"
	"vendorradar/internal/domain/repository"
	"vendorradar/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// productRepository implements the repository.ProductRepository interface.
type productRepository struct {
	db *gorm.DB
}

// NewProductRepository is the constructor for productRepository.
func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &productRepository{db: db}
}

func (repo *productRepository) CreateProduct(ctx context.Context, product *entity.Product) error {
	if product.ID == uuid.Nil {
		product.ID = uuid.New()
	}
	productM := fromProductDomain(product)

	if err := repo.db.WithContext(ctx).Create(productM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrVendorNotFound
		}
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("product violates a table constraint")
		}

		return errors.Wrap(err, "failed to create product")
	}

	product.CreatedAt = productM.CreatedAt
	product.UpdatedAt = productM.UpdatedAt

	return nil
}

func (repo *productRepository) FindProductByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	var productM model.ProductModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&productM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product by ID")
	}

	return toProductDomain(&productM), nil
}

func (repo *productRepository) FindProductsByVendor(ctx context.Context, vendorID uuid.UUID, page repository.Page) ([]*entity.Product, int64, error) {
	byVendor := func() *gorm.DB {
		return repo.db.WithContext(ctx).Model(&model.ProductModel{}).Where("vendor_id = ?", vendorID)
	}

	var total int64
	if err := byVendor().Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count vendor products")
	}

	var productModels []*model.ProductModel
	if err := byVendor().
		Order("created_at DESC").
		Offset(page.Offset()).
		Limit(page.Size).
		Find(&productModels).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to list vendor products")
	}

	return toProductDomainList(productModels), total, nil
}

// FindAvailableProducts narrows by SQL; callers rescore every row, so the term
// match on the jsonb tags text may over-match.
func (repo *productRepository) FindAvailableProducts(ctx context.Context, filter repository.ProductFilter) ([]*entity.Product, error) {
	query := repo.db.WithContext(ctx).Where("is_available = ?", true)

	if filter.Category != nil {
		query = query.Where("category = ?", filter.Category.String())
	}
	if filter.Organic != nil {
		query = query.Where("organic = ?", *filter.Organic)
	}
	if filter.Local != nil {
		query = query.Where("local = ?", *filter.Local)
	}

	if len(filter.Terms) > 0 {
		termMatch := repo.db.WithContext(ctx)
		for i, term := range filter.Terms {
			pattern := "%" + term + "%"
			cond := "name ILIKE ? OR description ILIKE ? OR tags::text ILIKE ?"
			if i == 0 {
				termMatch = termMatch.Where(cond, pattern, pattern, pattern)
			} else {
				termMatch = termMatch.Or(cond, pattern, pattern, pattern)
			}
		}
		query = query.Where(termMatch)
	}

	var productModels []*model.ProductModel
	if err := query.Find(&productModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find available products")
	}

	return toProductDomainList(productModels), nil
}

func (repo *productRepository) CountProductsByVendor(ctx context.Context, vendorID uuid.UUID) (int64, int64, error) {
	var counts struct {
		Total     int64
		Available int64
	}

	if err := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Select("COUNT(*) AS total, COUNT(*) FILTER (WHERE is_available) AS available").
		Where("vendor_id = ?", vendorID).
		Scan(&counts).Error; err != nil {
		return 0, 0, errors.Wrap(err, "failed to count vendor products")
	}

	return counts.Total, counts.Available, nil
}

func (repo *productRepository) UpdateProduct(ctx context.Context, product *entity.Product) error {
	productM := fromProductDomain(product)

	result := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("id = ?", product.ID).
		Select("name", "description", "category", "price", "unit", "quantity",
			"is_available", "images", "tags", "organic", "local", "updated_at").
		Updates(productM)
	if result.Error != nil {
		if isCheckConstraintViolation(result.Error) {
			return domainerrors.ErrValidationFailed.WrapMessage("product violates a table constraint")
		}

		return errors.Wrap(result.Error, "failed to update product")
	}

	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	product.UpdatedAt = productM.UpdatedAt

	return nil
}

func (repo *productRepository) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.ProductModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete product")
	}

	// If no rows were affected, it means the product was not found.
	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toProductDomain(data *model.ProductModel) *entity.Product {
	if data == nil {
		return nil
	}

	return &entity.Product{
		ID:          data.ID,
		VendorID:    data.VendorID,
		Name:        data.Name,
		Description: data.Description,
		Category:    entity.Category(data.Category),
		Price:       data.Price,
		Unit:        entity.Unit(data.Unit),
		Quantity:    data.Quantity,
		IsAvailable: data.IsAvailable,
		Images:      nonNilStrings(data.Images),
		Tags:        nonNilStrings(data.Tags),
		Organic:     data.Organic,
		Local:       data.Local,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

func toProductDomainList(models []*model.ProductModel) []*entity.Product {
	products := make([]*entity.Product, 0, len(models))
	for _, productM := range models {
		products = append(products, toProductDomain(productM))
	}

	return products
}

func fromProductDomain(data *entity.Product) *model.ProductModel {
	if data == nil {
		return nil
	}

	return &model.ProductModel{
		ID:          data.ID,
		VendorID:    data.VendorID,
		Name:        data.Name,
		Description: data.Description,
		Category:    data.Category.String(),
		Price:       data.Price,
		Unit:        data.Unit.String(),
		Quantity:    data.Quantity,
		IsAvailable: data.IsAvailable,
		Images:      nonNilStrings(data.Images),
		Tags:        nonNilStrings(data.Tags),
		Organic:     data.Organic,
		Local:       data.Local,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

func nonNilStrings(values []string) []string {
	if values == nil {
		return []string{}
	}

	return values
}
