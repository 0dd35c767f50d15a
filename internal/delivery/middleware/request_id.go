package middleware

import (
	"log/slog"

	deliverycontext "vendorradar/internal/delivery/context"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.opentelemetry.io/otel/trace"
)

// RequestIDMiddleware generates or extracts a unique Request ID for each request and creates a request-scoped logger
type RequestIDMiddleware struct {
	logger *slog.Logger
}

// NewRequestIDMiddleware creates a new Request ID middleware
func NewRequestIDMiddleware(logger *slog.Logger) *RequestIDMiddleware {
	return &RequestIDMiddleware{
		logger: logger,
	}
}

// Process reuses the client's X-Request-Id or mints one, and stores it with a child logger on the request context.
// When a span is active its trace id joins the logger too.
func (m *RequestIDMiddleware) Process(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID := c.Request().Header.Get(deliverycontext.HeaderXRequestID)
		if requestID == "" {
			requestID = uuid.New().String()
		}

		deliverycontext.SetRequestID(c, requestID)
		c.Response().Header().Set(deliverycontext.HeaderXRequestID, requestID)

		ctx := c.Request().Context()
		base := m.logger
		if spanCtx := trace.SpanContextFromContext(ctx); spanCtx.HasTraceID() {
			base = base.With(slog.String("trace_id", spanCtx.TraceID().String()))
			trace.SpanFromContext(ctx).SetAttributes(requestIDAttr(requestID))
		}

		ctx, _ = deliverycontext.WithRequest(ctx, requestID, base)
		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}
