// Package tracing builds the tracer provider handed to the API transport.
package tracing

import (
	"context"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"ledgerdesk/internal/platform/config"
)

const serviceName = "ledgerdesk"

// Tracing is the provider and propagator used for outgoing API calls.
type Tracing struct {
	Provider   trace.TracerProvider
	Propagator propagation.TextMapPropagator
	shutdown   func(context.Context) error
}

// Propagator injects W3C trace context and baggage headers.
func Propagator() propagation.TextMapPropagator {
	return propagation.NewCompositeTextMapPropagator(propagation.TraceContext{}, propagation.Baggage{})
}

// New exports spans over OTLP/HTTP when an endpoint is configured. Without
// one, spans are dropped but trace headers are still propagated. The result
// is also installed as the global provider and propagator.
func New(ctx context.Context, cfg config.TraceConfig, logger zerolog.Logger) (*Tracing, error) {
	t, err := build(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}
	otel.SetTracerProvider(t.Provider)
	otel.SetTextMapPropagator(t.Propagator)
	return t, nil
}

func build(ctx context.Context, cfg config.TraceConfig, logger zerolog.Logger) (*Tracing, error) {
	if cfg.Endpoint == "" {
		logger.Debug().Msg("tracing disabled: no endpoint configured")
		return &Tracing{
			Provider:   noop.NewTracerProvider(),
			Propagator: Propagator(),
			shutdown:   func(context.Context) error { return nil },
		}, nil
	}

	exporter, err := otlptracehttp.New(ctx, otlptracehttp.WithEndpointURL(cfg.Endpoint))
	if err != nil {
		return nil, err
	}
	res, err := resource.New(ctx, resource.WithAttributes(semconv.ServiceName(serviceName)))
	if err != nil {
		return nil, err
	}
	logger.Debug().Str("endpoint", cfg.Endpoint).Msg("tracing enabled")
	return WithProcessor(sdktrace.NewBatchSpanProcessor(exporter), res), nil
}

// WithProcessor builds an SDK provider that hands every span to processor.
func WithProcessor(processor sdktrace.SpanProcessor, res *resource.Resource) *Tracing {
	opts := []sdktrace.TracerProviderOption{sdktrace.WithSpanProcessor(processor)}
	if res != nil {
		opts = append(opts, sdktrace.WithResource(res))
	}
	tp := sdktrace.NewTracerProvider(opts...)
	return &Tracing{Provider: tp, Propagator: Propagator(), shutdown: tp.Shutdown}
}

// Close flushes pending spans.
func (t *Tracing) Close() error {
	return t.shutdown(context.Background())
}
