package realtime

import (
	"context"

	"vendorradar/internal/domain/service"

	"go.uber.org/fx"
)

// Module provides the hub as the local event sink and the websocket handler
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(
		NewHub,
		func(hub *Hub) service.EventSink { return hub },
		NewHandler,
	),
	fx.Invoke(func(lc fx.Lifecycle, hub *Hub) {
		lc.Append(fx.Hook{
			OnStop: func(context.Context) error {
				hub.Close()

				return nil
			},
		})
	}),
)
