package usecase

import (
	"context"

	"vendorradar/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
)

// AddHistoryInput is one query to log for a customer.
type AddHistoryInput struct {
	Query        string
	Coordinates  *orb.Point
	ResultsCount int
}

// HistoryUsecase manages the bounded search log and the suggestions derived from it.
type HistoryUsecase interface {
	AddEntry(ctx context.Context, customerID uuid.UUID, input *AddHistoryInput) error

	// History returns the newest entries first; limit <= 0 uses the default.
	History(ctx context.Context, customerID uuid.UUID, limit int) ([]entity.SearchHistoryEntry, error)

	// Suggestions ranks recent query words; limit <= 0 uses the default.
	Suggestions(ctx context.Context, customerID uuid.UUID, limit int) ([]string, error)
}
