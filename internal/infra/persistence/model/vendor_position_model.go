package model

import (
	"time"

	"github.com/google/uuid"
)

// VendorPositionModel mirrors the 'vendor_positions' table used by the PostGIS position store.
// The geography column 'position' is generated from Longitude/Latitude and carries a GIST index.
type VendorPositionModel struct {
	VendorID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Longitude  float64   `gorm:"type:double precision;not null"`
	Latitude   float64   `gorm:"type:double precision;not null"`
	ReportedAt time.Time `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (VendorPositionModel) TableName() string {
	return "vendor_positions"
}

// AllModels lists every table created by the migration, in dependency order.
func AllModels() []any {
	return []any{
		&VendorModel{},
		&ProductModel{},
		&CustomerModel{},
		&SearchHistoryModel{},
		&VendorPositionModel{},
	}
}
