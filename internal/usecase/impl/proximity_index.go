package impl

import (
	"cmp"
	"context"
	"log/slog"
	"math"
	"slices"
	"time"

	deliverycontext "vendorradar/internal/delivery/context"
	"vendorradar/internal/domain/entity"
	domainerrors "vendorradar/internal/domain/errors"
	"vendorradar/internal/domain/repository"
	"vendorradar/internal/domain/service"
	"vendorradar/internal/geo"
	"vendorradar/internal/usecase"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/pkg/errors"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/fx"
)

const tracerName = "vendorradar/usecase"

// proximityIndex implements the ProximityIndex interface on top of a position store.
// Vendor records stay authoritative; the store only narrows the candidate set.
type proximityIndex struct {
	vendorRepo repository.VendorRepository
	store      service.PositionStore
	locks      *keyedMutex
	now        func() time.Time
	tracer     trace.Tracer
	logger     *slog.Logger
}

// ProximityIndexParams holds dependencies for the proximity index, injected by Fx.
type ProximityIndexParams struct {
	fx.In

	VendorRepo repository.VendorRepository
	Store      service.PositionStore
	Logger     *slog.Logger
}

// NewProximityIndex creates the proximity index.
func NewProximityIndex(params ProximityIndexParams) usecase.ProximityIndex {
	return newProximityIndex(params.VendorRepo, params.Store, params.Logger, time.Now)
}

func newProximityIndex(
	vendorRepo repository.VendorRepository,
	store service.PositionStore,
	logger *slog.Logger,
	now func() time.Time,
) *proximityIndex {
	if logger == nil {
		logger = slog.Default()
	}

	return &proximityIndex{
		vendorRepo: vendorRepo,
		store:      store,
		locks:      newKeyedMutex(),
		now:        now,
		tracer:     otel.Tracer(tracerName),
		logger:     logger,
	}
}

func (idx *proximityIndex) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, idx.logger)
}

// FindWithin returns every available vendor whose recorded coordinate is within radiusKm of center.
func (idx *proximityIndex) FindWithin(
	ctx context.Context,
	center orb.Point,
	radiusKm float64,
	predicate usecase.VendorPredicate,
) ([]*entity.VendorWithDistance, error) {
	if err := geo.Validate(center); err != nil {
		return nil, domainerrors.ErrInvalidCoordinates.WithDetails(err.Error())
	}
	if math.IsNaN(radiusKm) || radiusKm < 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("radius must be a non-negative number")
	}

	ctx, span := idx.tracer.Start(ctx, "ProximityIndex.FindWithin", trace.WithAttributes(
		attribute.Float64("radius_km", radiusKm),
	))
	defer span.End()

	candidates, err := idx.store.Candidates(ctx, center, radiusKm)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())

		return nil, domainerrors.NewInfrastructureError(err, "query position store")
	}
	span.SetAttributes(attribute.Int("candidates", len(candidates)))

	if len(candidates) == 0 {
		return []*entity.VendorWithDistance{}, nil
	}

	ids := make([]uuid.UUID, 0, len(candidates))
	for _, candidate := range candidates {
		if geo.Distance(center, candidate.Point) <= radiusKm {
			ids = append(ids, candidate.VendorID)
		}
	}

	vendors, err := idx.vendorRepo.FindVendorsByIDs(ctx, ids)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())

		return nil, domainerrors.NewInfrastructureError(err, "load candidate vendors")
	}

	results := make([]*entity.VendorWithDistance, 0, len(vendors))
	for _, vendor := range vendors {
		if !vendor.IsAvailable || !vendor.HasLocation() {
			continue
		}
		if predicate != nil && !predicate(vendor) {
			continue
		}

		// The record may be newer than the store entry, so the exact check runs on the record.
		distance := geo.Distance(center, vendor.Location.Coordinates)
		if distance > radiusKm {
			continue
		}

		results = append(results, &entity.VendorWithDistance{Vendor: vendor, Distance: distance})
	}

	sortByDistance(results)
	span.SetAttributes(attribute.Int("results", len(results)))

	return results, nil
}

// Update replaces the vendor's position. Coordinates are validated before anything is written.
func (idx *proximityIndex) Update(ctx context.Context, vendorID uuid.UUID, input *usecase.LocationInput) (*entity.VendorLocation, error) {
	if input == nil {
		return nil, domainerrors.ErrInvalidCoordinates.WithDetails("coordinates are required")
	}
	if err := geo.Validate(input.Coordinates); err != nil {
		return nil, domainerrors.ErrInvalidCoordinates.WithDetails(err.Error())
	}

	ctx, span := idx.tracer.Start(ctx, "ProximityIndex.Update")
	defer span.End()

	// Address merging and the timestamp bump read the previous location.
	unlock := idx.locks.Lock(vendorID)
	defer unlock()

	vendor, err := idx.vendorRepo.FindVendorByID(ctx, vendorID)
	if err != nil {
		if errors.Is(err, repository.ErrVendorNotFound) {
			return nil, domainerrors.ErrVendorNotFound
		}

		return nil, domainerrors.NewInfrastructureError(err, "load vendor")
	}

	location := mergeLocation(vendor.Location, input)
	location.LastUpdateTimestamp = nextTimestamp(vendor.Location, idx.now())

	if err := idx.vendorRepo.UpdateVendorLocation(ctx, vendorID, location); err != nil {
		span.SetStatus(codes.Error, err.Error())
		if errors.Is(err, repository.ErrVendorNotFound) {
			return nil, domainerrors.ErrVendorNotFound
		}

		return nil, domainerrors.NewInfrastructureError(err, "persist vendor location")
	}

	if err := idx.store.Put(ctx, service.VendorPosition{
		VendorID:  vendorID,
		Point:     location.Coordinates,
		UpdatedAt: location.LastUpdateTimestamp,
	}); err != nil {
		span.SetStatus(codes.Error, err.Error())

		return nil, domainerrors.NewInfrastructureError(err, "write position store")
	}

	return location, nil
}

// Warm loads every located vendor into the store, clearing it first when the store supports it.
func (idx *proximityIndex) Warm(ctx context.Context) (int, error) {
	vendors, err := idx.vendorRepo.ListLocatedVendors(ctx)
	if err != nil {
		return 0, domainerrors.NewInfrastructureError(err, "list located vendors")
	}

	if resetter, ok := idx.store.(service.PositionStoreResetter); ok {
		if err := resetter.Reset(ctx); err != nil {
			return 0, domainerrors.NewInfrastructureError(err, "reset position store")
		}
	}

	loaded := 0
	for _, vendor := range vendors {
		if !vendor.HasLocation() {
			continue
		}
		if err := geo.Validate(vendor.Location.Coordinates); err != nil {
			idx.log(ctx).Warn("Skipping vendor with invalid stored coordinates",
				slog.String("vendor_id", vendor.ID.String()), slog.Any("error", err))

			continue
		}

		if err := idx.store.Put(ctx, service.VendorPosition{
			VendorID:  vendor.ID,
			Point:     vendor.Location.Coordinates,
			UpdatedAt: vendor.Location.LastUpdateTimestamp,
		}); err != nil {
			return loaded, domainerrors.NewInfrastructureError(err, "write position store")
		}
		loaded++
	}

	idx.log(ctx).Info("Position store warmed", slog.Int("vendors", loaded))

	return loaded, nil
}

// mergeLocation applies the reported coordinates and keeps address fields the report leaves out.
func mergeLocation(previous *entity.VendorLocation, input *usecase.LocationInput) *entity.VendorLocation {
	location := &entity.VendorLocation{Coordinates: input.Coordinates}
	if previous != nil {
		location.Address = previous.Address
		location.City = previous.City
		location.State = previous.State
		location.ZipCode = previous.ZipCode
	}

	applyNonEmpty(&location.Address, input.Address)
	applyNonEmpty(&location.City, input.City)
	applyNonEmpty(&location.State, input.State)
	applyNonEmpty(&location.ZipCode, input.ZipCode)

	return location
}

func applyNonEmpty(dst *string, value *string) {
	if value != nil && *value != "" {
		*dst = *value
	}
}

// nextTimestamp keeps lastUpdateTimestamp strictly increasing per vendor even when the clock stalls.
func nextTimestamp(previous *entity.VendorLocation, now time.Time) time.Time {
	now = now.UTC().Truncate(time.Millisecond)
	if previous == nil || now.After(previous.LastUpdateTimestamp) {
		return now
	}

	return previous.LastUpdateTimestamp.UTC().Add(time.Millisecond)
}

func sortByDistance(results []*entity.VendorWithDistance) {
	slices.SortStableFunc(results, func(a, b *entity.VendorWithDistance) int {
		return cmp.Compare(a.Distance, b.Distance)
	})
}
