package telemetry

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"testing"

	"vendorradar/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.uber.org/fx/fxtest"
)

func TestNew_DisabledInstallsNoop(t *testing.T) {
	lc := fxtest.NewLifecycle(t)
	tp, err := New(Params{
		Lc:     lc,
		Config: &config.Config{},
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	require.NoError(t, err)

	_, span := tp.Tracer("test").Start(context.Background(), "noop")
	assert.False(t, span.SpanContext().IsValid())
	span.End()
}

func TestNewExporter(t *testing.T) {
	var buf bytes.Buffer

	exporter, err := newExporter(context.Background(), &config.TelemetryConfig{}, &buf)
	require.NoError(t, err)

	tp := sdktrace.NewTracerProvider(sdktrace.WithSyncer(exporter))
	_, span := tp.Tracer("test").Start(context.Background(), "search")
	span.End()
	require.NoError(t, tp.Shutdown(context.Background()))
	assert.Contains(t, buf.String(), `"Name":"search"`)

	_, err = newExporter(context.Background(), &config.TelemetryConfig{Exporter: "zipkin"}, &buf)
	assert.Error(t, err)
}

func TestSampler(t *testing.T) {
	assert.Equal(t, sdktrace.AlwaysSample().Description(), sampler(0).Description())
	assert.Equal(t, sdktrace.AlwaysSample().Description(), sampler(1).Description())
	assert.Equal(t, sdktrace.TraceIDRatioBased(0.25).Description(), sampler(0.25).Description())
}
