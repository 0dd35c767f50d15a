package usecase

import (
	"context"

	"vendorradar/internal/domain/entity"

	"github.com/paulmach/orb"
)

// SearchQuery is a text query around an origin point.
// Zero MaxDistanceKm and Limit fall back to the configured defaults.
type SearchQuery struct {
	Query         string
	Origin        orb.Point
	MaxDistanceKm float64
	Category      *entity.Category
	Organic       *bool
	Local         *bool
	Limit         int
}

// SearchResult holds the matched products, nearest vendor first, and the vendors that own them.
type SearchResult struct {
	Products []*entity.ProductWithDistance
	Vendors  []*entity.VendorWithDistance
}

// SearchUsecase runs product searches anchored to a location.
type SearchUsecase interface {
	Search(ctx context.Context, query *SearchQuery) (*SearchResult, error)
}
