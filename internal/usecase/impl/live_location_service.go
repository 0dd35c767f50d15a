package impl

import (
	"context"
	"log/slog"

	"vendorradar/config"
	deliverycontext "vendorradar/internal/delivery/context"
	domainerrors "vendorradar/internal/domain/errors"
	"vendorradar/internal/domain/repository"
	"vendorradar/internal/domain/service"
	"vendorradar/internal/geo"
	"vendorradar/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type liveLocationService struct {
	vendorRepo repository.VendorRepository
	index      usecase.ProximityIndex
	rule       LocationReportRule
	events     eventPublisher
	locks      *keyedMutex
	logger     *slog.Logger
}

// LiveLocationServiceParams holds dependencies for LiveLocationService, injected by Fx.
type LiveLocationServiceParams struct {
	fx.In

	VendorRepo  repository.VendorRepository
	Index       usecase.ProximityIndex
	Broadcaster service.Broadcaster
	Config      *config.Config
	Logger      *slog.Logger
}

// NewLiveLocationService creates the handler of streamed vendor positions.
func NewLiveLocationService(params LiveLocationServiceParams) usecase.LiveLocationUsecase {
	autoActivate := true
	if params.Config != nil && params.Config.Realtime != nil {
		autoActivate = params.Config.Realtime.AutoActivateOnLocationReport
	}

	logger := params.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &liveLocationService{
		vendorRepo: params.VendorRepo,
		index:      params.Index,
		rule:       NewAutoActivateRule(autoActivate),
		events:     eventPublisher{broadcaster: params.Broadcaster, logger: logger},
		locks:      newKeyedMutex(),
		logger:     logger,
	}
}

func (srv *liveLocationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ReportLocation applies one streamed position. Reports of the same vendor are applied one at a time.
func (srv *liveLocationService) ReportLocation(ctx context.Context, report *usecase.LiveLocationReport) error {
	if report == nil {
		return domainerrors.ErrValidationFailed.WithDetails("empty report")
	}

	vendorID, err := uuid.Parse(report.VendorID)
	if err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("vendorId is not a valid id")
	}

	point, err := geo.PointFromSlice(report.Coordinates)
	if err != nil {
		return domainerrors.ErrInvalidCoordinates.WithDetails(err.Error())
	}

	unlock := srv.locks.Lock(vendorID)
	defer unlock()

	vendor, err := srv.vendorRepo.FindVendorByID(ctx, vendorID)
	if err != nil {
		if errors.Is(err, repository.ErrVendorNotFound) {
			return domainerrors.ErrVendorNotFound
		}

		return domainerrors.NewInfrastructureError(err, "load vendor")
	}

	location, err := srv.index.Update(ctx, vendorID, &usecase.LocationInput{
		Coordinates: point,
		Address:     report.Address,
	})
	if err != nil {
		return err
	}

	if srv.rule.ActivateOnReport(vendor) {
		if err := srv.vendorRepo.UpdateVendorAvailability(ctx, vendorID, true); err != nil {
			// The position is already stored; availability stays stale until the next report.
			return domainerrors.NewInfrastructureError(err, "activate vendor")
		}
		srv.log(ctx).Info("Vendor activated by location report",
			slog.String("vendor_id", vendorID.String()),
			slog.String("rule", srv.rule.Name()))
		srv.events.availabilityUpdated(ctx, vendorID, true)
	}

	srv.events.locationUpdated(ctx, vendorID, location)

	return nil
}
