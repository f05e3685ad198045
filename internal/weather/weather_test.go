package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func annualMaxima(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = 60 + float64(i%10)
	}
	return out
}

func TestFetchStatsFallsBackWithoutBaseURL(t *testing.T) {
	c := New(Config{})
	stats, err := c.FetchStats(context.Background(), 35.5, 129.0)
	require.NoError(t, err)
	assert.Equal(t, SourceDefault, stats.Source)
}

func TestFetchStatsLiveSuccess(t *testing.T) {
	var hits int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		resp := archiveResponse{}
		resp.Daily.PrecipitationAnnualMaxMM = annualMaxima(30)
		resp.Daily.TemperatureMaxC = []float64{34, 35, 20, 36}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(resp)
	}))
	defer server.Close()

	c := New(Config{BaseURL: server.URL})
	stats, err := c.FetchStats(context.Background(), 35.5, 129.0)
	require.NoError(t, err)
	assert.Equal(t, SourceLiveAPI, stats.Source)
	assert.Equal(t, int32(1), atomic.LoadInt32(&hits))
}

func TestFetchStatsFallsBackOnUpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	c := New(Config{BaseURL: server.URL})
	stats, err := c.FetchStats(context.Background(), 10, 10)
	require.NoError(t, err)
	assert.Equal(t, SourceDefault, stats.Source)
}

func TestFetchStatsRejectsAlreadyCancelledContext(t *testing.T) {
	c := New(Config{})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := c.FetchStats(ctx, 1, 1)
	assert.ErrorIs(t, err, context.Canceled)
}

// Testable property 7: concurrent fetches for the same key collapse
// to a single HTTP request and all callers receive the same result.
func TestFetchStatsSingleFlightCollapsesConcurrentRequests(t *testing.T) {
	var hits int32
	block := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		<-block
		resp := archiveResponse{}
		resp.Daily.PrecipitationAnnualMaxMM = annualMaxima(30)
		resp.Daily.TemperatureMaxC = []float64{34}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(resp)
	}))
	defer server.Close()

	c := New(Config{BaseURL: server.URL})

	const concurrency = 8
	results := make(chan Stats, concurrency)
	for i := 0; i < concurrency; i++ {
		go func() {
			stats, err := c.FetchStats(context.Background(), 12.34, 56.78)
			require.NoError(t, err)
			results <- stats
		}()
	}

	time.Sleep(20 * time.Millisecond)
	close(block)

	first := <-results
	for i := 1; i < concurrency; i++ {
		got := <-results
		assert.Equal(t, first, got)
	}
	assert.Equal(t, int32(1), atomic.LoadInt32(&hits), "expected exactly one upstream request for identical concurrent keys")
}

func TestFetchStatsCacheExpiresOnFakeClock(t *testing.T) {
	var hits int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		resp := archiveResponse{}
		resp.Daily.PrecipitationAnnualMaxMM = annualMaxima(30)
		resp.Daily.TemperatureMaxC = []float64{20}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(resp)
	}))
	defer server.Close()

	now := time.Now()
	clock := func() time.Time { return now }

	c := New(Config{BaseURL: server.URL, Now: clock, CacheTTL: time.Hour})

	_, err := c.FetchStats(context.Background(), 1, 1)
	require.NoError(t, err)
	assert.Equal(t, int32(1), atomic.LoadInt32(&hits))

	_, err = c.FetchStats(context.Background(), 1, 1)
	require.NoError(t, err)
	assert.Equal(t, int32(1), atomic.LoadInt32(&hits), "cache hit should not re-fetch")

	now = now.Add(2 * time.Hour)
	_, err = c.FetchStats(context.Background(), 1, 1)
	require.NoError(t, err)
	assert.Equal(t, int32(2), atomic.LoadInt32(&hits), "expired cache entry should re-fetch")
}

func TestRound25(t *testing.T) {
	cases := map[float64]float64{
		35.49: 35.5, 35.37: 35.25, -0.1: 0, 10.01: 10,
	}
	for in, want := range cases {
		assert.InDeltaf(t, want, round25(in), 1e-9, fmt.Sprintf("round25(%v)", in))
	}
}
