package memory

import (
	"context"
	"sync"

	"vendorradar/internal/domain/entity"
	"vendorradar/internal/domain/repository"

	"github.com/google/uuid"
)

// SearchHistoryRepository keeps each customer's entries newest first.
type SearchHistoryRepository struct {
	mu      sync.RWMutex
	entries map[uuid.UUID][]entity.SearchHistoryEntry
}

var _ repository.SearchHistoryRepository = (*SearchHistoryRepository)(nil)

func NewSearchHistoryRepository() *SearchHistoryRepository {
	return &SearchHistoryRepository{entries: make(map[uuid.UUID][]entity.SearchHistoryEntry)}
}

func (repo *SearchHistoryRepository) PrependEntry(_ context.Context, customerID uuid.UUID, entry entity.SearchHistoryEntry, limit int) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	if entry.Coordinates != nil {
		point := *entry.Coordinates
		entry.Coordinates = &point
	}

	current := repo.entries[customerID]
	next := make([]entity.SearchHistoryEntry, 0, min(len(current)+1, max(limit, 1)))
	next = append(next, entry)
	next = append(next, current...)
	if limit > 0 && len(next) > limit {
		next = next[:limit]
	}
	repo.entries[customerID] = next

	return nil
}

func (repo *SearchHistoryRepository) RecentEntries(_ context.Context, customerID uuid.UUID, limit int) ([]entity.SearchHistoryEntry, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	current := repo.entries[customerID]
	if limit > 0 && len(current) > limit {
		current = current[:limit]
	}

	entries := make([]entity.SearchHistoryEntry, len(current))
	copy(entries, current)

	return entries, nil
}
