package tracing

import (
	"context"
	"errors"
	"testing"

	"go.opentelemetry.io/otel/trace"
)

func TestSetupDisabledReturnsNoopProvider(t *testing.T) {
	provider, err := Setup(Config{Enabled: false})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := provider.Shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown of disabled provider should be a no-op: %v", err)
	}
}

func TestRecordErrorIgnoresNilSpanAndError(t *testing.T) {
	RecordError(nil, errors.New("boom"), "should not panic")
	RecordError(trace.SpanFromContext(context.Background()), nil, "should not panic")
}

func TestSetAttributesIgnoresNilSpan(t *testing.T) {
	SetAttributes(nil, map[string]interface{}{"facility.id": "a"})
}

func TestStripScheme(t *testing.T) {
	cases := map[string]string{
		"http://localhost:4318":  "localhost:4318",
		"https://collector:4318": "collector:4318",
		"collector:4318":         "collector:4318",
	}
	for in, want := range cases {
		if got := stripScheme(in); got != want {
			t.Errorf("stripScheme(%q) = %q, want %q", in, got, want)
		}
	}
}
