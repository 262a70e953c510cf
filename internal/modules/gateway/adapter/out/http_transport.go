package out

import (
	"net/http"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"

	gatewayout "ledgerdesk/internal/modules/gateway/port/out"
)

// NewHTTPClient returns the client used for API calls. Each request gets a
// client span from tp and carries its trace context in the headers. No
// timeout is set: each call lives exactly as long as the caller's context.
func NewHTTPClient(tp trace.TracerProvider, propagator propagation.TextMapPropagator) gatewayout.HTTPDoer {
	return &http.Client{
		Transport: otelhttp.NewTransport(http.DefaultTransport,
			otelhttp.WithTracerProvider(tp),
			otelhttp.WithPropagators(propagator),
			otelhttp.WithSpanNameFormatter(func(_ string, r *http.Request) string {
				return r.Method + " " + r.URL.Path
			}),
		),
	}
}
