package observability

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestNewMetricsHandlerRegistersCollectors(t *testing.T) {
	h := NewMetricsHandler()

	h.ObserveRequest("/transition-risk/analysis", "2xx", 120*time.Millisecond)
	h.FacilitiesAnalysed.WithLabelValues("transition").Add(3)
	h.SessionCount.Set(2)
	h.WeatherFallbacks.Inc()

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rr := httptest.NewRecorder()
	h.Handler().ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rr.Code)
	}

	body := rr.Body.String()
	for _, want := range []string{
		"riskcore_request_duration_seconds",
		"riskcore_requests_total",
		"riskcore_facilities_analysed_total",
		"riskcore_active_sessions",
		"riskcore_weather_fallbacks_total",
	} {
		if !strings.Contains(body, want) {
			t.Errorf("expected metrics output to contain %q", want)
		}
	}
}

func TestRegisterCollectorRejectsDuplicate(t *testing.T) {
	h := NewMetricsHandler()
	if err := h.RegisterCollector(h.SessionCount); err == nil {
		t.Fatalf("expected error registering an already-registered collector")
	}
}

func TestNewMetricsHandlerWithRegistryUsesGivenRegistry(t *testing.T) {
	h := NewMetricsHandlerWithRegistry(nil)
	if h.Registry() == nil {
		t.Fatalf("expected a non-nil registry even when nil is passed in")
	}
}
