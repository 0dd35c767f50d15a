// Package telemetry configures the OpenTelemetry tracer provider.
package telemetry

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"

	"vendorradar/config"
	"vendorradar/internal/domain/constants"
	"vendorradar/internal/domain/lifecycle"

	"github.com/pkg/errors"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
	"go.uber.org/fx"
)

const defaultOTLPEndpoint = "localhost:4317"

// Params defines the parameters required for the tracer provider
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// New installs the global tracer provider. With telemetry disabled a no-op provider is installed instead.
func New(params Params) (trace.TracerProvider, error) {
	tc := params.Config.Telemetry
	if tc == nil || !tc.Enabled {
		tp := noop.NewTracerProvider()
		otel.SetTracerProvider(tp)

		return tp, nil
	}

	exporter, err := newExporter(context.Background(), tc, os.Stdout)
	if err != nil {
		return nil, err
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(newResource(params.Config)),
		sdktrace.WithSampler(sdktrace.ParentBased(sampler(tc.SampleRatio))),
	)
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	params.Logger.Info("Telemetry enabled",
		slog.String("exporter", exporterName(tc)),
		slog.Float64("sample_ratio", tc.SampleRatio))

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			shutdownCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
			defer cancel()

			return errors.Wrap(tp.Shutdown(shutdownCtx), "shutdown tracer provider")
		},
	})

	return tp, nil
}

func newExporter(ctx context.Context, tc *config.TelemetryConfig, stdout io.Writer) (sdktrace.SpanExporter, error) {
	switch exporterName(tc) {
	case constants.TelemetryExporterStdout:
		exporter, err := stdouttrace.New(stdouttrace.WithWriter(stdout))

		return exporter, errors.Wrap(err, "create stdout exporter")
	case constants.TelemetryExporterOTLP:
		endpoint := tc.Endpoint
		if endpoint == "" {
			endpoint = defaultOTLPEndpoint
		}
		exporter, err := otlptracegrpc.New(ctx,
			otlptracegrpc.WithEndpoint(endpoint),
			otlptracegrpc.WithInsecure(),
		)

		return exporter, errors.Wrap(err, "create otlp exporter")
	default:
		return nil, errors.Errorf("unknown telemetry exporter: %s", tc.Exporter)
	}
}

func exporterName(tc *config.TelemetryConfig) string {
	name := strings.ToLower(strings.TrimSpace(tc.Exporter))
	if name == "" {
		return constants.TelemetryExporterStdout
	}

	return name
}

func newResource(cfg *config.Config) *resource.Resource {
	res, err := resource.Merge(resource.Default(), resource.NewSchemaless(
		attribute.String("service.name", cfg.Env.ServiceName),
		attribute.String("deployment.environment", cfg.Env.Env),
	))
	if err != nil {
		// Schema conflicts only drop the default attributes.
		return resource.NewSchemaless(attribute.String("service.name", cfg.Env.ServiceName))
	}

	return res
}

func sampler(ratio float64) sdktrace.Sampler {
	switch {
	case ratio <= 0 || ratio >= 1:
		return sdktrace.AlwaysSample()
	default:
		return sdktrace.TraceIDRatioBased(ratio)
	}
}
