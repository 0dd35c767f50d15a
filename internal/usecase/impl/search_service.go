package impl

import (
	"cmp"
	"context"
	"log/slog"
	"math"
	"slices"
	"strings"
	"unicode"

	"vendorradar/config"
	deliverycontext "vendorradar/internal/delivery/context"
	"vendorradar/internal/domain/entity"
	domainerrors "vendorradar/internal/domain/errors"
	"vendorradar/internal/domain/repository"
	"vendorradar/internal/geo"
	"vendorradar/internal/usecase"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/fx"
)

// Relevance weights of the text-match stage.
const (
	nameWeight        = 5
	tagWeight         = 3
	descriptionWeight = 1
)

// searchCandidate is a product travelling through the pipeline.
type searchCandidate struct {
	product  *entity.Product
	score    int
	vendor   *entity.Vendor
	distance float64
}

// searchStage narrows the candidate set. Stages run in order and never reorder their input.
type searchStage struct {
	name string
	run  func(ctx context.Context, query *usecase.SearchQuery, candidates []*searchCandidate) ([]*searchCandidate, error)
}

type searchService struct {
	productRepo repository.ProductRepository
	vendorRepo  repository.VendorRepository
	index       usecase.ProximityIndex
	cfg         *config.SearchConfig
	stages      []searchStage
	tracer      trace.Tracer
	logger      *slog.Logger
}

// SearchServiceParams holds dependencies for SearchService, injected by Fx.
type SearchServiceParams struct {
	fx.In

	ProductRepo repository.ProductRepository
	VendorRepo  repository.VendorRepository
	Index       usecase.ProximityIndex
	Config      *config.Config
	Logger      *slog.Logger
}

// NewSearchService creates the search engine.
func NewSearchService(params SearchServiceParams) usecase.SearchUsecase {
	var searchCfg *config.SearchConfig
	if params.Config != nil {
		searchCfg = params.Config.Search
	}
	if searchCfg == nil {
		searchCfg = &config.SearchConfig{DefaultMaxDistanceKm: 10, DefaultLimit: 20, MaxLimit: 50}
	}

	logger := params.Logger
	if logger == nil {
		logger = slog.Default()
	}

	srv := &searchService{
		productRepo: params.ProductRepo,
		vendorRepo:  params.VendorRepo,
		index:       params.Index,
		cfg:         searchCfg,
		tracer:      otel.Tracer(tracerName),
		logger:      logger,
	}
	srv.stages = []searchStage{
		{name: "text_match", run: srv.textMatchStage},
		{name: "vendor_availability", run: srv.vendorAvailabilityStage},
		{name: "distance", run: distanceStage},
	}

	return srv
}

func (srv *searchService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Search runs the stage pipeline, then the vendor-centric proximity query over the vendors that survived it.
func (srv *searchService) Search(ctx context.Context, query *usecase.SearchQuery) (*usecase.SearchResult, error) {
	normalized, err := srv.normalize(query)
	if err != nil {
		return nil, err
	}

	ctx, span := srv.tracer.Start(ctx, "SearchService.Search", trace.WithAttributes(
		attribute.Float64("max_distance_km", normalized.MaxDistanceKm),
		attribute.Int("limit", normalized.Limit),
	))
	defer span.End()

	var candidates []*searchCandidate
	seenVendors := make(map[uuid.UUID]struct{})
	for _, stage := range srv.stages {
		candidates, err = srv.runStage(ctx, stage, normalized, candidates)
		if err != nil {
			span.SetStatus(codes.Error, err.Error())

			return nil, err
		}
		if stage.name == "vendor_availability" {
			for _, candidate := range candidates {
				seenVendors[candidate.vendor.ID] = struct{}{}
			}
		}
	}

	slices.SortStableFunc(candidates, func(a, b *searchCandidate) int {
		return cmp.Compare(a.distance, b.distance)
	})
	if len(candidates) > normalized.Limit {
		candidates = candidates[:normalized.Limit]
	}

	products := make([]*entity.ProductWithDistance, 0, len(candidates))
	for _, candidate := range candidates {
		products = append(products, &entity.ProductWithDistance{
			Product:  candidate.product,
			Vendor:   candidate.vendor,
			Distance: candidate.distance,
		})
	}

	vendors := []*entity.VendorWithDistance{}
	if len(seenVendors) > 0 {
		vendors, err = srv.index.FindWithin(ctx, normalized.Origin, normalized.MaxDistanceKm, func(vendor *entity.Vendor) bool {
			_, ok := seenVendors[vendor.ID]

			return ok
		})
		if err != nil {
			span.SetStatus(codes.Error, err.Error())

			return nil, err
		}
	}

	srv.log(ctx).Debug("Search completed",
		slog.String("query", normalized.Query),
		slog.Int("products", len(products)),
		slog.Int("vendors", len(vendors)))

	return &usecase.SearchResult{Products: products, Vendors: vendors}, nil
}

func (srv *searchService) runStage(
	ctx context.Context,
	stage searchStage,
	query *usecase.SearchQuery,
	candidates []*searchCandidate,
) ([]*searchCandidate, error) {
	ctx, span := srv.tracer.Start(ctx, "SearchStage."+stage.name, trace.WithAttributes(
		attribute.Int("input", len(candidates)),
	))
	defer span.End()

	out, err := stage.run(ctx, query, candidates)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())

		return nil, err
	}
	span.SetAttributes(attribute.Int("output", len(out)))

	return out, nil
}

// normalize validates the query and fills in the configured defaults.
func (srv *searchService) normalize(query *usecase.SearchQuery) (*usecase.SearchQuery, error) {
	if query == nil || strings.TrimSpace(query.Query) == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("search query is required")
	}
	if err := geo.Validate(query.Origin); err != nil {
		return nil, domainerrors.ErrInvalidCoordinates.WithDetails(err.Error())
	}
	if query.Category != nil && !query.Category.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown category " + query.Category.String())
	}

	normalized := *query
	normalized.Query = strings.TrimSpace(query.Query)

	switch {
	case math.IsNaN(normalized.MaxDistanceKm) || normalized.MaxDistanceKm < 0:
		return nil, domainerrors.ErrValidationFailed.WithDetails("max distance must be positive")
	case normalized.MaxDistanceKm == 0:
		normalized.MaxDistanceKm = srv.cfg.DefaultMaxDistanceKm
	}

	switch {
	case normalized.Limit <= 0:
		normalized.Limit = srv.cfg.DefaultLimit
	case normalized.Limit > srv.cfg.MaxLimit:
		normalized.Limit = srv.cfg.MaxLimit
	}

	return &normalized, nil
}

// textMatchStage loads the available products matching the filters and keeps those with a positive relevance.
func (srv *searchService) textMatchStage(
	ctx context.Context,
	query *usecase.SearchQuery,
	_ []*searchCandidate,
) ([]*searchCandidate, error) {
	terms := searchTerms(query.Query)

	products, err := srv.productRepo.FindAvailableProducts(ctx, repository.ProductFilter{
		Terms:    terms,
		Category: query.Category,
		Organic:  query.Organic,
		Local:    query.Local,
	})
	if err != nil {
		return nil, domainerrors.NewInfrastructureError(err, "find available products")
	}

	candidates := make([]*searchCandidate, 0, len(products))
	for _, product := range products {
		if !product.IsAvailable || !matchesFilters(product, query) {
			continue
		}

		score := relevance(product, terms)
		if score == 0 {
			continue
		}
		candidates = append(candidates, &searchCandidate{product: product, score: score})
	}

	return candidates, nil
}

// vendorAvailabilityStage attaches the owning vendor and drops products whose vendor is offline or unlocated.
func (srv *searchService) vendorAvailabilityStage(
	ctx context.Context,
	_ *usecase.SearchQuery,
	candidates []*searchCandidate,
) ([]*searchCandidate, error) {
	if len(candidates) == 0 {
		return candidates, nil
	}

	ids := make([]uuid.UUID, 0, len(candidates))
	seen := make(map[uuid.UUID]struct{}, len(candidates))
	for _, candidate := range candidates {
		if _, ok := seen[candidate.product.VendorID]; ok {
			continue
		}
		seen[candidate.product.VendorID] = struct{}{}
		ids = append(ids, candidate.product.VendorID)
	}

	vendors, err := srv.vendorRepo.FindVendorsByIDs(ctx, ids)
	if err != nil {
		return nil, domainerrors.NewInfrastructureError(err, "load product vendors")
	}

	byID := make(map[uuid.UUID]*entity.Vendor, len(vendors))
	for _, vendor := range vendors {
		byID[vendor.ID] = vendor
	}

	kept := candidates[:0]
	for _, candidate := range candidates {
		vendor, ok := byID[candidate.product.VendorID]
		if !ok || !vendor.IsAvailable || !vendor.HasLocation() {
			continue
		}
		candidate.vendor = vendor
		kept = append(kept, candidate)
	}

	return kept, nil
}

// distanceStage computes the full-precision distance to each vendor and drops those beyond the limit.
func distanceStage(
	_ context.Context,
	query *usecase.SearchQuery,
	candidates []*searchCandidate,
) ([]*searchCandidate, error) {
	kept := candidates[:0]
	for _, candidate := range candidates {
		candidate.distance = geo.Distance(query.Origin, candidate.vendor.Location.Coordinates)
		if candidate.distance > query.MaxDistanceKm {
			continue
		}
		kept = append(kept, candidate)
	}

	return kept, nil
}

// searchTerms lowercases the query and splits it on anything that is not a letter or a digit.
func searchTerms(query string) []string {
	fields := strings.FieldsFunc(strings.ToLower(query), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})

	terms := make([]string, 0, len(fields))
	seen := make(map[string]struct{}, len(fields))
	for _, field := range fields {
		if _, ok := seen[field]; ok {
			continue
		}
		seen[field] = struct{}{}
		terms = append(terms, field)
	}

	return terms
}

// relevance scores substring matches of every term: name 5, any tag 3, description 1.
func relevance(product *entity.Product, terms []string) int {
	name := strings.ToLower(product.Name)
	description := strings.ToLower(product.Description)

	score := 0
	for _, term := range terms {
		if strings.Contains(name, term) {
			score += nameWeight
		}
		if slices.ContainsFunc(product.Tags, func(tag string) bool {
			return strings.Contains(strings.ToLower(tag), term)
		}) {
			score += tagWeight
		}
		if strings.Contains(description, term) {
			score += descriptionWeight
		}
	}

	return score
}

// matchesFilters re-applies the attribute filters so every repository backend behaves the same.
func matchesFilters(product *entity.Product, query *usecase.SearchQuery) bool {
	if query.Category != nil && product.Category != *query.Category {
		return false
	}
	if query.Organic != nil && product.Organic != *query.Organic {
		return false
	}
	if query.Local != nil && product.Local != *query.Local {
		return false
	}

	return true
}
