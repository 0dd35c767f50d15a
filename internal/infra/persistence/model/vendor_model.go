package model

import (
	"time"

	"github.com/google/uuid"
)

// VendorModel mirrors the 'vendors' table.
// The geography column 'location' is generated from Longitude/Latitude by the
// migration and is only used from raw PostGIS queries.
type VendorModel struct {
	ID                 uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Name               string    `gorm:"type:varchar(50);not null"`
	Email              string    `gorm:"type:varchar(255);unique;not null"`
	PasswordHash       string    `gorm:"type:varchar(255);not null"`
	Phone              string    `gorm:"type:varchar(20);not null"`
	BusinessName       string    `gorm:"type:varchar(100);not null"`
	Description        string    `gorm:"type:varchar(500)"`
	Longitude          *float64  `gorm:"type:double precision"`
	Latitude           *float64  `gorm:"type:double precision"`
	Address            string    `gorm:"type:text"`
	City               string    `gorm:"type:varchar(100)"`
	State              string    `gorm:"type:varchar(100)"`
	ZipCode            string    `gorm:"type:varchar(20)"`
	LastLocationUpdate *time.Time
	IsAvailable        bool   `gorm:"not null;default:false;index"`
	OpeningStart       string `gorm:"type:varchar(5);not null;default:'08:00'"`
	OpeningEnd         string `gorm:"type:varchar(5);not null;default:'18:00'"`
	Rating             float64
	TotalRatings       int
	IsVerified         bool `gorm:"not null;default:false"`
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// TableName explicitly sets the table name for GORM.
func (VendorModel) TableName() string {
	return "vendors"
}
