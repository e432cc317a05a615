package observability

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func TestDefaultTracerConfig(t *testing.T) {
	cfg := DefaultTracerConfig("railroad")

	if cfg.ServiceName != "railroad" {
		t.Errorf("expected ServiceName 'railroad', got %s", cfg.ServiceName)
	}
	if cfg.Endpoint != "localhost:4318" {
		t.Errorf("expected Endpoint 'localhost:4318', got %s", cfg.Endpoint)
	}
	if cfg.SampleRate != 1.0 {
		t.Errorf("expected SampleRate 1.0, got %f", cfg.SampleRate)
	}
	if !cfg.Insecure {
		t.Error("expected Insecure to be true")
	}
}

func TestDefaultMeterConfig(t *testing.T) {
	cfg := DefaultMeterConfig("railroad")

	if cfg.ServiceName != "railroad" {
		t.Errorf("expected ServiceName 'railroad', got %s", cfg.ServiceName)
	}
	if cfg.Interval != 15*time.Second {
		t.Errorf("expected Interval 15s, got %v", cfg.Interval)
	}
}

func TestStartInvocationSpan(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	otel.SetTracerProvider(tp)
	defer otel.SetTracerProvider(sdktrace.NewTracerProvider())

	ctx, span := StartInvocationSpan(context.Background(), "jlink")
	RecordInvocation(ctx, "jlink", 120*time.Millisecond, 0, false)
	span.End()

	spans := recorder.Ended()
	if len(spans) != 1 {
		t.Fatalf("expected 1 span, got %d", len(spans))
	}
	if spans[0].Name() != "jlink.run" {
		t.Errorf("expected span name 'jlink.run', got %q", spans[0].Name())
	}

	var sawTool, sawExit bool
	for _, attr := range spans[0].Attributes() {
		switch string(attr.Key) {
		case AttrTool:
			sawTool = attr.Value.AsString() == "jlink"
		case AttrExitCode:
			sawExit = attr.Value.AsInt64() == 0
		}
	}
	if !sawTool {
		t.Error("expected tool.name attribute on span")
	}
	if !sawExit {
		t.Error("expected tool.exit_code attribute on span")
	}
}

func TestRecordInvocationError(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	otel.SetTracerProvider(tp)
	defer otel.SetTracerProvider(sdktrace.NewTracerProvider())

	ctx, span := StartInvocationSpan(context.Background(), "jar")
	RecordInvocationError(ctx, "jar", errors.New("boom"))
	span.End()

	spans := recorder.Ended()
	if len(spans) != 1 {
		t.Fatalf("expected 1 span, got %d", len(spans))
	}
	if len(spans[0].Events()) == 0 {
		t.Error("expected a recorded error event on the span")
	}
}

func TestRecordInvocationWithoutProviders(t *testing.T) {
	// Must be a no-op, not a panic, when no SDK is installed.
	ctx := context.Background()
	RecordInvocation(ctx, "jar", time.Second, 1, true)
	RecordInvocationError(ctx, "jar", errors.New("boom"))
}
