// Package handler receives realtime events pushed by the message broker.
package handler

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"vendorradar/config"
	deliverycontext "vendorradar/internal/delivery/context"
	"vendorradar/internal/infra/pubsub"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

// TokenValidator checks a Google-signed OIDC token for the given audience.
type TokenValidator func(ctx context.Context, token, audience string) (*idtoken.Payload, error)

// PushHandler hands pushed events to the local relay.
type PushHandler struct {
	verifyPushAuth bool
	audience       string
	validate       TokenValidator
	relay          *pubsub.Relay
	logger         *slog.Logger
}

// PushHandlerParams holds dependencies for the PushHandler
type PushHandlerParams struct {
	fx.In

	Config    *config.Config
	Relay     *pubsub.Relay
	Logger    *slog.Logger
	Validator TokenValidator `optional:"true"`
}

// NewPushHandler creates a new push handler
func NewPushHandler(params PushHandlerParams) *PushHandler {
	h := &PushHandler{
		relay:    params.Relay,
		logger:   params.Logger,
		validate: params.Validator,
	}
	if ps := params.Config.PubSub; ps != nil {
		h.verifyPushAuth = ps.VerifyPushAuth
		h.audience = ps.PushAudience
	}
	if h.validate == nil {
		h.validate = idtoken.Validate
	}

	return h
}

// HandlePush handles POST /push. Malformed bodies are answered with 400 so the broker stops retrying them.
func (h *PushHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()

	if h.verifyPushAuth {
		if err := h.verifyToken(c.Request()); err != nil {
			h.logger.Warn("[Relay] Invalid push token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	var pushMsg pubsub.PushMessage
	if err := c.Bind(&pushMsg); err != nil {
		h.logger.Warn("[Relay] Failed to parse push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	event, err := pushMsg.Decode()
	if err != nil {
		h.logger.Warn("[Relay] Failed to decode pushed event",
			slog.String("message_id", pushMsg.Message.MessageID),
			slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	// Priority: message attributes > event field > X-Request-Id > fresh id
	requestID := pushMsg.Message.Attributes[pubsub.AttrRequestID]
	if requestID == "" {
		requestID = event.RequestID
	}
	if requestID == "" {
		requestID = deliverycontext.GetRequestIDFromContext(ctx)
	}
	if requestID == "" {
		requestID = uuid.NewString()
	}
	_, reqLogger := deliverycontext.WithRequest(ctx, requestID, h.logger)

	if !h.relay.Accept(event, pushMsg.Origin()) {
		reqLogger.Debug("[Relay] Skipped own event", slog.String("event", event.Event))

		return c.NoContent(http.StatusOK)
	}

	reqLogger.Debug("[Relay] Delivered pushed event",
		slog.String("event", event.Event),
		slog.String("message_id", pushMsg.Message.MessageID),
		slog.String("subscription", pushMsg.Subscription))

	return c.NoContent(http.StatusOK)
}

func (h *PushHandler) verifyToken(req *http.Request) error {
	authHeader := req.Header.Get(echo.HeaderAuthorization)
	if authHeader == "" {
		return errors.New("missing authorization header")
	}

	token, ok := strings.CutPrefix(authHeader, "Bearer ")
	if !ok {
		return errors.New("invalid authorization header format")
	}

	// Without a configured audience the endpoint URL is expected.
	audience := h.audience
	if audience == "" {
		scheme := "https"
		if req.TLS == nil {
			scheme = "http"
		}
		audience = fmt.Sprintf("%s://%s%s", scheme, req.Host, req.URL.Path)
	}

	payload, err := h.validate(req.Context(), token, audience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}

	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}

	return nil
}
