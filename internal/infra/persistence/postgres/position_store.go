package postgres

import (
	"context"

	"vendorradar/config"
	"vendorradar/internal/domain/service"
	"vendorradar/internal/geo"
	"vendorradar/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// positionStore is the PostGIS-backed service.PositionStore.
type positionStore struct {
	db      *gorm.DB
	padding float64
}

// NewPositionStore is the constructor for the PostGIS position store.
func NewPositionStore(db *gorm.DB, cfg *config.Config) service.PositionStore {
	padding := 1.0
	if cfg.Proximity != nil && cfg.Proximity.CandidatePadding > 1 {
		padding = cfg.Proximity.CandidatePadding
	}

	return &positionStore{db: db, padding: padding}
}

func (s *positionStore) Put(ctx context.Context, position service.VendorPosition) error {
	positionM := &model.VendorPositionModel{
		VendorID:   position.VendorID,
		Longitude:  position.Point.Lon(),
		Latitude:   position.Point.Lat(),
		ReportedAt: position.UpdatedAt,
	}

	if err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "vendor_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"longitude", "latitude", "reported_at"}),
	}).Create(positionM).Error; err != nil {
		return errors.Wrap(err, "failed to upsert vendor position")
	}

	return nil
}

func (s *positionStore) Get(ctx context.Context, vendorIDs []uuid.UUID) (map[uuid.UUID]service.VendorPosition, error) {
	found := make(map[uuid.UUID]service.VendorPosition, len(vendorIDs))
	if len(vendorIDs) == 0 {
		return found, nil
	}

	var positionModels []*model.VendorPositionModel
	if err := s.db.WithContext(ctx).Where("vendor_id IN ?", vendorIDs).Find(&positionModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to get vendor positions")
	}

	for _, positionM := range positionModels {
		found[positionM.VendorID] = toVendorPosition(positionM)
	}

	return found, nil
}

// Candidates uses the GIST index on the generated geography column.
func (s *positionStore) Candidates(ctx context.Context, center orb.Point, radiusKm float64) ([]service.VendorPosition, error) {
	var positionModels []*model.VendorPositionModel

	query := `
		SELECT vendor_id, longitude, latitude, reported_at
		FROM vendor_positions
		WHERE ST_DWithin(
		  position,
		  ST_SetSRID(ST_MakePoint(?, ?), 4326)::geography,
		  ?
		)
	`

	if err := s.db.WithContext(ctx).
		Raw(query, center.Lon(), center.Lat(), geo.KmToMeters(radiusKm*s.padding)).
		Scan(&positionModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to query vendor positions within radius")
	}

	candidates := make([]service.VendorPosition, 0, len(positionModels))
	for _, positionM := range positionModels {
		candidates = append(candidates, toVendorPosition(positionM))
	}

	return candidates, nil
}

func toVendorPosition(data *model.VendorPositionModel) service.VendorPosition {
	return service.VendorPosition{
		VendorID:  data.VendorID,
		Point:     orb.Point{data.Longitude, data.Latitude},
		UpdatedAt: data.ReportedAt,
	}
}
