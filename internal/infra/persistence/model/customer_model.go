package model

import (
	"time"

	"github.com/google/uuid"
)

// PreferencesData is the jsonb payload of customers.preferences.
type PreferencesData struct {
	Categories  []string `json:"categories"`
	MaxDistance float64  `json:"maxDistance"`
	Organic     bool     `json:"organic"`
	Local       bool     `json:"local"`
}

// CustomerModel mirrors the 'customers' table.
type CustomerModel struct {
	ID              uuid.UUID       `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Name            string          `gorm:"type:varchar(50);not null"`
	Email           string          `gorm:"type:varchar(255);unique;not null"`
	PasswordHash    string          `gorm:"type:varchar(255);not null"`
	Phone           string          `gorm:"type:varchar(20)"`
	Longitude       *float64        `gorm:"type:double precision"`
	Latitude        *float64        `gorm:"type:double precision"`
	Address         string          `gorm:"type:text"`
	City            string          `gorm:"type:varchar(100)"`
	State           string          `gorm:"type:varchar(100)"`
	ZipCode         string          `gorm:"type:varchar(20)"`
	Preferences     PreferencesData `gorm:"serializer:json;type:jsonb;not null"`
	FavoriteVendors []uuid.UUID     `gorm:"serializer:json;type:jsonb;not null;default:'[]'"`
	IsActive        bool            `gorm:"not null;default:true"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (CustomerModel) TableName() string {
	return "customers"
}

// SearchHistoryModel mirrors the 'search_history_entries' table.
// Insertion order is the serial ID; newest entries have the highest ID.
type SearchHistoryModel struct {
	ID           int64     `gorm:"primaryKey;autoIncrement"`
	CustomerID   uuid.UUID `gorm:"type:uuid;not null;index:idx_history_customer_id,priority:1"`
	Query        string    `gorm:"type:varchar(200);not null"`
	Longitude    *float64  `gorm:"type:double precision"`
	Latitude     *float64  `gorm:"type:double precision"`
	SearchedAt   time.Time `gorm:"not null"`
	ResultsCount int       `gorm:"not null;default:0"`

	Customer *CustomerModel `gorm:"foreignKey:CustomerID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (SearchHistoryModel) TableName() string {
	return "search_history_entries"
}
