package model

import (
	"time"

	"github.com/google/uuid"
)

// ProductModel mirrors the 'products' table. Images and Tags are stored as jsonb.
type ProductModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	VendorID    uuid.UUID `gorm:"type:uuid;not null;index:idx_products_vendor_created"`
	Name        string    `gorm:"type:varchar(100);not null"`
	Description string    `gorm:"type:varchar(500)"`
	Category    string    `gorm:"type:varchar(20);not null;index"`
	Price       float64   `gorm:"type:numeric(12,2);not null"`
	Unit        string    `gorm:"type:varchar(20);not null"`
	Quantity    float64   `gorm:"not null;default:0"`
	IsAvailable bool      `gorm:"not null;default:true;index"`
	Images      []string  `gorm:"serializer:json;type:jsonb;not null;default:'[]'"`
	Tags        []string  `gorm:"serializer:json;type:jsonb;not null;default:'[]'"`
	Organic     bool      `gorm:"not null;default:false"`
	Local       bool      `gorm:"not null;default:false"`
	CreatedAt   time.Time `gorm:"index:idx_products_vendor_created,sort:desc"`
	UpdatedAt   time.Time

	Vendor *VendorModel `gorm:"foreignKey:VendorID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}
