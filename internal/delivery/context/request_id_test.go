package context

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestWithRequest(t *testing.T) {
	base := slog.New(slog.NewTextHandler(io.Discard, nil))

	ctx, logger := WithRequest(context.Background(), "req-1", base)

	assert.Equal(t, "req-1", GetRequestIDFromContext(ctx))
	assert.Same(t, logger, GetLogger(ctx))
	assert.Same(t, logger, GetLoggerOrDefault(ctx, base))
	assert.Same(t, base, GetLoggerOrDefault(context.Background(), base))
	assert.Empty(t, GetRequestIDFromContext(context.Background()))
}

func TestGetRequestID(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(HeaderXRequestID, "from-header")
	c := e.NewContext(req, httptest.NewRecorder())

	assert.Equal(t, "from-header", GetRequestID(c))

	SetRequestID(c, "stored")
	assert.Equal(t, "stored", GetRequestID(c))
}
