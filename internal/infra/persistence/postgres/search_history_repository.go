package postgres

import (
	"context"

	"vendorradar/internal/domain/entity"
	"vendorradar/internal/domain/repository"
	"vendorradar/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// searchHistoryRepository implements the repository.SearchHistoryRepository interface.
type searchHistoryRepository struct {
	db *gorm.DB
}

// NewSearchHistoryRepository is the constructor for searchHistoryRepository.
func NewSearchHistoryRepository(db *gorm.DB) repository.SearchHistoryRepository {
	return &searchHistoryRepository{db: db}
}

// PrependEntry inserts and trims in one transaction so a reader never sees more than limit rows.
func (repo *searchHistoryRepository) PrependEntry(ctx context.Context, customerID uuid.UUID, entry entity.SearchHistoryEntry, limit int) error {
	entryM := fromSearchHistoryDomain(customerID, entry)

	return repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(entryM).Error; err != nil {
			if isForeignKeyConstraintViolation(err) {
				return repository.ErrCustomerNotFound
			}

			return errors.Wrap(err, "failed to insert search history entry")
		}

		keep := tx.Model(&model.SearchHistoryModel{}).
			Select("id").
			Where("customer_id = ?", customerID).
			Order("id DESC").
			Limit(limit)

		if err := tx.
			Where("customer_id = ? AND id NOT IN (?)", customerID, keep).
			Delete(&model.SearchHistoryModel{}).Error; err != nil {
			return errors.Wrap(err, "failed to trim search history")
		}

		return nil
	})
}

func (repo *searchHistoryRepository) RecentEntries(ctx context.Context, customerID uuid.UUID, limit int) ([]entity.SearchHistoryEntry, error) {
	var entryModels []*model.SearchHistoryModel
	if err := repo.db.WithContext(ctx).
		Where("customer_id = ?", customerID).
		Order("id DESC").
		Limit(limit).
		Find(&entryModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list search history")
	}

	entries := make([]entity.SearchHistoryEntry, 0, len(entryModels))
	for _, entryM := range entryModels {
		entries = append(entries, toSearchHistoryDomain(entryM))
	}

	return entries, nil
}

// --- Mapper Functions ---

func toSearchHistoryDomain(data *model.SearchHistoryModel) entity.SearchHistoryEntry {
	entry := entity.SearchHistoryEntry{
		Query:        data.Query,
		Timestamp:    data.SearchedAt,
		ResultsCount: data.ResultsCount,
	}
	if data.Longitude != nil && data.Latitude != nil {
		entry.Coordinates = &orb.Point{*data.Longitude, *data.Latitude}
	}

	return entry
}

func fromSearchHistoryDomain(customerID uuid.UUID, entry entity.SearchHistoryEntry) *model.SearchHistoryModel {
	entryM := &model.SearchHistoryModel{
		CustomerID:   customerID,
		Query:        entry.Query,
		SearchedAt:   entry.Timestamp,
		ResultsCount: entry.ResultsCount,
	}
	if entry.Coordinates != nil {
		lon, lat := entry.Coordinates.Lon(), entry.Coordinates.Lat()
		entryM.Longitude = &lon
		entryM.Latitude = &lat
	}

	return entryM
}
