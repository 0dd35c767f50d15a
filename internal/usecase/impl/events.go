package impl

import (
	"context"
	"log/slog"

	deliverycontext "vendorradar/internal/delivery/context"
	"vendorradar/internal/domain/entity"
	"vendorradar/internal/domain/service"

	"github.com/google/uuid"
)

// eventPublisher sends vendor state changes to the broadcaster. Failures are logged, never returned:
// the state change has already been persisted when an event goes out.
type eventPublisher struct {
	broadcaster service.Broadcaster
	logger      *slog.Logger
}

func (p eventPublisher) locationUpdated(ctx context.Context, vendorID uuid.UUID, location *entity.VendorLocation) {
	p.publish(ctx, service.EventLocationUpdated, service.LocationUpdatedPayload{
		VendorID:           vendorID.String(),
		Location:           location,
		LastLocationUpdate: location.LastUpdateTimestamp,
	})
}

func (p eventPublisher) availabilityUpdated(ctx context.Context, vendorID uuid.UUID, isAvailable bool) {
	p.publish(ctx, service.EventAvailabilityUpdated, service.AvailabilityUpdatedPayload{
		VendorID:    vendorID.String(),
		IsAvailable: isAvailable,
	})
}

func (p eventPublisher) publish(ctx context.Context, name string, payload any) {
	logger := deliverycontext.GetLoggerOrDefault(ctx, p.logger)
	if p.broadcaster == nil {
		return
	}

	event, err := service.NewRealtimeEvent(name, payload)
	if err != nil {
		logger.Error("Failed to encode realtime event", slog.String("event", name), slog.Any("error", err))

		return
	}
	event.RequestID = deliverycontext.GetRequestIDFromContext(ctx)

	if err := p.broadcaster.Broadcast(ctx, event); err != nil {
		logger.Warn("Broadcast failed", slog.String("event", name), slog.Any("error", err))
	}
}
