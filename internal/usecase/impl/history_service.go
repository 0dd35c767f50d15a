package impl

import (
	"context"
	"log/slog"
	"slices"
	"strings"
	"time"

	"vendorradar/config"
	deliverycontext "vendorradar/internal/delivery/context"
	"vendorradar/internal/domain/entity"
	domainerrors "vendorradar/internal/domain/errors"
	"vendorradar/internal/domain/repository"
	"vendorradar/internal/geo"
	"vendorradar/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

const defaultHistoryLimit = 20

type historyService struct {
	historyRepo repository.SearchHistoryRepository
	cfg         *config.HistoryConfig
	now         func() time.Time
	logger      *slog.Logger
}

// HistoryServiceParams holds dependencies for HistoryService, injected by Fx.
type HistoryServiceParams struct {
	fx.In

	HistoryRepo repository.SearchHistoryRepository
	Config      *config.Config
	Logger      *slog.Logger
}

// NewHistoryService creates the search history service.
func NewHistoryService(params HistoryServiceParams) usecase.HistoryUsecase {
	var historyCfg *config.HistoryConfig
	if params.Config != nil {
		historyCfg = params.Config.History
	}
	if historyCfg == nil {
		historyCfg = &config.HistoryConfig{
			Cap:                    50,
			SuggestionWindow:       10,
			DefaultSuggestionLimit: 5,
			DefaultSuggestions:     []string{"fruits", "vegetables", "dairy", "snacks"},
		}
	}

	logger := params.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &historyService{
		historyRepo: params.HistoryRepo,
		cfg:         historyCfg,
		now:         time.Now,
		logger:      logger,
	}
}

func (srv *historyService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// AddEntry logs a query as the customer's newest history entry.
func (srv *historyService) AddEntry(ctx context.Context, customerID uuid.UUID, input *usecase.AddHistoryInput) error {
	if input == nil || strings.TrimSpace(input.Query) == "" {
		return domainerrors.ErrValidationFailed.WithDetails("search query is required")
	}
	if input.ResultsCount < 0 {
		return domainerrors.ErrValidationFailed.WithDetails("results count must be non-negative")
	}
	if input.Coordinates != nil {
		if err := geo.Validate(*input.Coordinates); err != nil {
			return domainerrors.ErrInvalidCoordinates.WithDetails(err.Error())
		}
	}

	entry := entity.SearchHistoryEntry{
		Query:        strings.TrimSpace(input.Query),
		Coordinates:  input.Coordinates,
		Timestamp:    srv.now().UTC(),
		ResultsCount: input.ResultsCount,
	}

	if err := srv.historyRepo.PrependEntry(ctx, customerID, entry, srv.cfg.Cap); err != nil {
		return domainerrors.NewInfrastructureError(err, "prepend search history entry")
	}

	srv.log(ctx).Debug("Search history entry added", slog.String("customer_id", customerID.String()))

	return nil
}

// History returns the customer's newest entries first.
func (srv *historyService) History(ctx context.Context, customerID uuid.UUID, limit int) ([]entity.SearchHistoryEntry, error) {
	if limit <= 0 {
		limit = defaultHistoryLimit
	}
	if limit > srv.cfg.Cap {
		limit = srv.cfg.Cap
	}

	entries, err := srv.historyRepo.RecentEntries(ctx, customerID, limit)
	if err != nil {
		return nil, domainerrors.NewInfrastructureError(err, "load search history")
	}

	return entries, nil
}

// Suggestions derives ranked words from recent queries, or returns the popular categories when there are none.
func (srv *historyService) Suggestions(ctx context.Context, customerID uuid.UUID, limit int) ([]string, error) {
	if limit <= 0 {
		limit = srv.cfg.DefaultSuggestionLimit
	}

	entries, err := srv.historyRepo.RecentEntries(ctx, customerID, srv.cfg.SuggestionWindow)
	if err != nil {
		return nil, domainerrors.NewInfrastructureError(err, "load search history")
	}

	suggestions := RankSuggestions(entries, srv.cfg.SuggestionWindow, limit)
	if len(suggestions) > 0 {
		return suggestions, nil
	}

	fallback := slices.Clone(srv.cfg.DefaultSuggestions)
	if len(fallback) > limit {
		fallback = fallback[:limit]
	}

	return fallback, nil
}
