// Package tracing sets up OpenTelemetry export over OTLP/HTTP
package tracing

import (
	"context"

	"github-activity/internal/platform/config"
	perr "github-activity/internal/platform/errors"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
)

// Shutdown flushes pending spans
type Shutdown func(context.Context) error

func noop(context.Context) error { return nil }

// Setup installs a global tracer provider exporting to cfg ENDPOINT (an OTLP/HTTP URL)
// Tracing is off when ENDPOINT is unset or ENABLED is false; the global provider is then left alone
func Setup(ctx context.Context, cfg config.Conf, service string) (Shutdown, error) {
	if !cfg.MayBool("ENABLED", true) {
		return noop, nil
	}
	endpoint := cfg.MayURL("ENDPOINT", "")
	if endpoint == "" {
		return noop, nil
	}

	exp, err := otlptracehttp.New(ctx, otlptracehttp.WithEndpointURL(endpoint))
	if err != nil {
		return noop, perr.Wrapf(err, perr.ErrorCodeInvalidArgument, "otlp exporter")
	}
	res, err := resource.New(ctx, resource.WithAttributes(semconv.ServiceName(service)))
	if err != nil {
		return noop, perr.Wrapf(err, perr.ErrorCodeUnknown, "otel resource")
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exp),
		sdktrace.WithResource(res),
		sdktrace.WithSampler(sdktrace.ParentBased(sdktrace.TraceIDRatioBased(cfg.MayRatio("SAMPLE_RATIO", 1)))),
	)
	otel.SetTracerProvider(tp)
	return tp.Shutdown, nil
}
