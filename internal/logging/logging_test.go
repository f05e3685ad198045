package logging

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestWithSessionIDPropagatesThroughContext(t *testing.T) {
	ctx := NewContext(context.Background(), slog.New(slog.NewTextHandler(httptest.NewRecorder(), nil)))
	ctx = WithSessionID(ctx, "sess-123")

	if got := SessionIDFromContext(ctx); got != "sess-123" {
		t.Fatalf("expected session id sess-123, got %q", got)
	}
}

func TestIsSensitiveKeyRedactsKnownFields(t *testing.T) {
	for _, key := range []string{"password", "api_key", "Authorization"} {
		if !isSensitiveKey(key) {
			t.Errorf("expected %q to be treated as sensitive", key)
		}
	}
	if isSensitiveKey("facility_id") {
		t.Errorf("facility_id should not be redacted")
	}
}

func TestHTTPMiddlewareLogs(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(httptest.NewRecorder(), nil))
	mw := HTTPMiddleware(logger)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rr := httptest.NewRecorder()

	mw(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})).ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rr.Code)
	}
}
