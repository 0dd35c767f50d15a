package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Category is the closed set of product categories.
type Category string

const (
	CategoryFruits     Category = "fruits"
	CategoryVegetables Category = "vegetables"
	CategoryDairy      Category = "dairy"
	CategoryMeat       Category = "meat"
	CategoryBeverages  Category = "beverages"
	CategorySnacks     Category = "snacks"
	CategoryBakery     Category = "bakery"
	CategoryGrocery    Category = "grocery"
	CategoryOther      Category = "other"
)

// String returns the string representation of the Category.
func (c Category) String() string {
	return string(c)
}

// IsValid checks if the Category is a valid value.
func (c Category) IsValid() bool {
	switch c {
	case CategoryFruits, CategoryVegetables, CategoryDairy, CategoryMeat, CategoryBeverages,
		CategorySnacks, CategoryBakery, CategoryGrocery, CategoryOther:
		return true
	default:
		return false
	}
}

// Unit is the closed set of selling units.
type Unit string

const (
	UnitKg     Unit = "kg"
	UnitLb     Unit = "lb"
	UnitPiece  Unit = "piece"
	UnitDozen  Unit = "dozen"
	UnitLiter  Unit = "liter"
	UnitGallon Unit = "gallon"
	UnitPack   Unit = "pack"
	UnitBunch  Unit = "bunch"
	UnitBag    Unit = "bag"
)

// String returns the string representation of the Unit.
func (u Unit) String() string {
	return string(u)
}

// IsValid checks if the Unit is a valid value.
func (u Unit) IsValid() bool {
	switch u {
	case UnitKg, UnitLb, UnitPiece, UnitDozen, UnitLiter, UnitGallon, UnitPack, UnitBunch, UnitBag:
		return true
	default:
		return false
	}
}

// Product belongs to exactly one vendor. Distance is never stored on it.
type Product struct {
	ID          uuid.UUID `json:"id"`
	VendorID    uuid.UUID `json:"vendorId"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Category    Category  `json:"category"`
	Price       float64   `json:"price"`
	Unit        Unit      `json:"unit"`
	Quantity    float64   `json:"quantity"`
	IsAvailable bool      `json:"isAvailable"`
	Images      []string  `json:"images"`
	Tags        []string  `json:"tags"`
	Organic     bool      `json:"organic"`
	Local       bool      `json:"local"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// NormalizeTags lowercases and trims tags, dropping empty ones.
func NormalizeTags(tags []string) []string {
	normalized := make([]string, 0, len(tags))
	for _, tag := range tags {
		tag = strings.ToLower(strings.TrimSpace(tag))
		if tag != "" {
			normalized = append(normalized, tag)
		}
	}

	return normalized
}

// ProductWithDistance pairs a product with its owning vendor and that vendor's distance in kilometers.
type ProductWithDistance struct {
	Product  *Product
	Vendor   *Vendor
	Distance float64
}
