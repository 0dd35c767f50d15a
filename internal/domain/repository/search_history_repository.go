package repository

import (
	"context"

	"vendorradar/internal/domain/entity"

	"github.com/google/uuid"
)

// SearchHistoryRepository stores each customer's bounded query log.
type SearchHistoryRepository interface {
	// PrependEntry adds entry as the newest one and evicts the oldest entries beyond limit.
	PrependEntry(ctx context.Context, customerID uuid.UUID, entry entity.SearchHistoryEntry, limit int) error

	// RecentEntries returns at most limit entries, newest first.
	RecentEntries(ctx context.Context, customerID uuid.UUID, limit int) ([]entity.SearchHistoryEntry, error)
}
