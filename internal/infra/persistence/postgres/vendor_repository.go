// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"time"

	"vendorradar/internal/domain/entity"
	"vendorradar/internal/domain/repository"
	"vendorradar/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// vendorRepository implements the repository.VendorRepository interface.
type vendorRepository struct {
	db *gorm.DB
}

// NewVendorRepository is the constructor for vendorRepository.
func NewVendorRepository(db *gorm.DB) repository.VendorRepository {
	return &vendorRepository{db: db}
}

func (repo *vendorRepository) CreateVendor(ctx context.Context, vendor *entity.Vendor) error {
	if vendor.ID == uuid.Nil {
		vendor.ID = uuid.New()
	}
	vendorM := fromVendorDomain(vendor)

	if err := repo.db.WithContext(ctx).Create(vendorM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrVendorEmailTaken
		}

		return errors.Wrap(err, "failed to create vendor")
	}

	vendor.CreatedAt = vendorM.CreatedAt
	vendor.UpdatedAt = vendorM.UpdatedAt

	return nil
}

func (repo *vendorRepository) FindVendorByID(ctx context.Context, id uuid.UUID) (*entity.Vendor, error) {
	var vendorM model.VendorModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&vendorM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrVendorNotFound
		}

		return nil, errors.Wrap(err, "failed to find vendor by ID")
	}

	return toVendorDomain(&vendorM), nil
}

func (repo *vendorRepository) FindVendorByEmail(ctx context.Context, email string) (*entity.Vendor, error) {
	var vendorM model.VendorModel
	if err := repo.db.WithContext(ctx).Where("email = ?", email).First(&vendorM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrVendorNotFound
		}

		return nil, errors.Wrap(err, "failed to find vendor by email")
	}

	return toVendorDomain(&vendorM), nil
}

func (repo *vendorRepository) FindVendorsByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Vendor, error) {
	if len(ids) == 0 {
		return []*entity.Vendor{}, nil
	}

	var vendorModels []*model.VendorModel
	if err := repo.db.WithContext(ctx).Where("id IN ?", ids).Find(&vendorModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find vendors by IDs")
	}

	return toVendorDomainList(vendorModels), nil
}

func (repo *vendorRepository) ListLocatedVendors(ctx context.Context) ([]*entity.Vendor, error) {
	var vendorModels []*model.VendorModel
	if err := repo.db.WithContext(ctx).
		Where("longitude IS NOT NULL AND latitude IS NOT NULL").
		Find(&vendorModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list located vendors")
	}

	return toVendorDomainList(vendorModels), nil
}

func (repo *vendorRepository) UpdateVendorLocation(ctx context.Context, id uuid.UUID, location *entity.VendorLocation) error {
	lon, lat := location.Coordinates.Lon(), location.Coordinates.Lat()
	updatedAt := location.LastUpdateTimestamp

	return repo.updateColumns(ctx, id, map[string]any{
		"longitude":            lon,
		"latitude":             lat,
		"address":              location.Address,
		"city":                 location.City,
		"state":                location.State,
		"zip_code":             location.ZipCode,
		"last_location_update": updatedAt,
	})
}

func (repo *vendorRepository) UpdateVendorAvailability(ctx context.Context, id uuid.UUID, isAvailable bool) error {
	return repo.updateColumns(ctx, id, map[string]any{"is_available": isAvailable})
}

func (repo *vendorRepository) UpdateVendorProfile(ctx context.Context, vendor *entity.Vendor) error {
	return repo.updateColumns(ctx, vendor.ID, map[string]any{
		"name":          vendor.Name,
		"phone":         vendor.Phone,
		"business_name": vendor.BusinessName,
		"description":   vendor.Description,
		"opening_start": vendor.OperatingHours.Start,
		"opening_end":   vendor.OperatingHours.End,
	})
}

func (repo *vendorRepository) UpdateVendorPassword(ctx context.Context, id uuid.UUID, passwordHash string) error {
	return repo.updateColumns(ctx, id, map[string]any{"password_hash": passwordHash})
}

func (repo *vendorRepository) updateColumns(ctx context.Context, id uuid.UUID, columns map[string]any) error {
	columns["updated_at"] = time.Now()

	result := repo.db.WithContext(ctx).
		Model(&model.VendorModel{}).
		Where("id = ?", id).
		Updates(columns)
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update vendor")
	}

	if result.RowsAffected == 0 {
		return repository.ErrVendorNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toVendorDomain converts a GORM VendorModel to a domain Vendor entity.
func toVendorDomain(data *model.VendorModel) *entity.Vendor {
	if data == nil {
		return nil
	}

	vendor := &entity.Vendor{
		ID:           data.ID,
		Name:         data.Name,
		Email:        data.Email,
		PasswordHash: data.PasswordHash,
		Phone:        data.Phone,
		BusinessName: data.BusinessName,
		Description:  data.Description,
		IsAvailable:  data.IsAvailable,
		OperatingHours: entity.OperatingHours{
			Start: data.OpeningStart,
			End:   data.OpeningEnd,
		},
		Rating:       data.Rating,
		TotalRatings: data.TotalRatings,
		IsVerified:   data.IsVerified,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}

	if data.Longitude != nil && data.Latitude != nil {
		location := &entity.VendorLocation{
			Coordinates: orb.Point{*data.Longitude, *data.Latitude},
			Address:     data.Address,
			City:        data.City,
			State:       data.State,
			ZipCode:     data.ZipCode,
		}
		if data.LastLocationUpdate != nil {
			location.LastUpdateTimestamp = *data.LastLocationUpdate
		}
		vendor.Location = location
	}

	return vendor
}

func toVendorDomainList(models []*model.VendorModel) []*entity.Vendor {
	vendors := make([]*entity.Vendor, 0, len(models))
	for _, vendorM := range models {
		vendors = append(vendors, toVendorDomain(vendorM))
	}

	return vendors
}

// fromVendorDomain converts a domain Vendor entity to a GORM VendorModel.
func fromVendorDomain(data *entity.Vendor) *model.VendorModel {
	if data == nil {
		return nil
	}

	vendorM := &model.VendorModel{
		ID:           data.ID,
		Name:         data.Name,
		Email:        data.Email,
		PasswordHash: data.PasswordHash,
		Phone:        data.Phone,
		BusinessName: data.BusinessName,
		Description:  data.Description,
		IsAvailable:  data.IsAvailable,
		OpeningStart: data.OperatingHours.Start,
		OpeningEnd:   data.OperatingHours.End,
		Rating:       data.Rating,
		TotalRatings: data.TotalRatings,
		IsVerified:   data.IsVerified,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}

	if data.Location != nil {
		lon, lat := data.Location.Coordinates.Lon(), data.Location.Coordinates.Lat()
		vendorM.Longitude = &lon
		vendorM.Latitude = &lat
		vendorM.Address = data.Location.Address
		vendorM.City = data.Location.City
		vendorM.State = data.Location.State
		vendorM.ZipCode = data.Location.ZipCode
		if !data.Location.LastUpdateTimestamp.IsZero() {
			updatedAt := data.Location.LastUpdateTimestamp
			vendorM.LastLocationUpdate = &updatedAt
		}
	}

	return vendorM
}
