package tracing_test

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"ledgerdesk/internal/platform/config"
	"ledgerdesk/internal/platform/tracing"
)

func TestDisabledTracingDropsSpans(t *testing.T) {
	tr, err := tracing.New(context.Background(), config.TraceConfig{}, zerolog.Nop())
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	_, span := tr.Provider.Tracer("test").Start(context.Background(), "noop")
	if span.IsRecording() {
		t.Fatalf("expected a non-recording span without an endpoint")
	}
	span.End()
	if err := tr.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
}

func TestEndpointBuildsExportingProvider(t *testing.T) {
	tr, err := tracing.New(context.Background(), config.TraceConfig{Endpoint: "http://127.0.0.1:4318"}, zerolog.Nop())
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	_, span := tr.Provider.Tracer("test").Start(context.Background(), "exported")
	if !span.IsRecording() {
		t.Fatalf("expected a recording span with an endpoint")
	}
	// Nothing ended, so shutdown has nothing to send.
	if err := tr.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
}

func TestWithProcessorRecordsEndedSpans(t *testing.T) {
	t.Parallel()
	recorder := tracetest.NewSpanRecorder()
	tr := tracing.WithProcessor(recorder, nil)

	_, span := tr.Provider.Tracer("test").Start(context.Background(), "GET /invoices")
	span.End()

	ended := recorder.Ended()
	if len(ended) != 1 || ended[0].Name() != "GET /invoices" {
		t.Fatalf("unexpected spans: %+v", ended)
	}
	if err := tr.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
}
