// Package weather fetches historical precipitation and temperature
// statistics for a coordinate, fits Gumbel flood parameters, and
// caches the result with a 1-hour TTL, falling back to latitude-band
// defaults whenever the remote archive is unavailable (spec.md §4.6).
//
// The HTTP shape follows the teacher's connector pattern: a config-
// validated constructor, http.NewRequestWithContext, and a bounded
// http.Client.Timeout. Concurrent fetches for the same rounded
// coordinate collapse through golang.org/x/sync/singleflight.
package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/climatefin/riskcore/internal/riskmath"
)

const (
	// DefaultCacheTTL is how long a fetched (or defaulted) statistic
	// set stays valid for its coordinate.
	DefaultCacheTTL = time.Hour
	// DefaultFetchTimeout bounds a single remote HTTP fetch.
	DefaultFetchTimeout = 10 * time.Second
	// yearsOfHistory is the span of annual maxima requested from the
	// archive for the Gumbel fit.
	yearsOfHistory = 30
	// heatwaveThresholdCelsius is the daily max temperature above which
	// a day counts toward the annual heatwave-day count.
	heatwaveThresholdCelsius = 33.0

	// SourceLiveAPI tags statistics successfully fetched from the
	// remote archive.
	SourceLiveAPI = "open_meteo_api"
	// SourceDefault tags statistics produced by the latitude-band
	// fallback, used whenever the remote fetch fails or is skipped.
	SourceDefault = "hardcoded_config"
)

// Stats is the per-coordinate result the physical-risk engine
// consumes: fitted Gumbel flood parameters, an annual heatwave-day
// count, a standardised drought index, and the data source tag.
type Stats struct {
	Gumbel       riskmath.GumbelParams
	HeatwaveDays float64
	DroughtIndex float64
	Source       string
}

type cacheKey struct {
	lat float64
	lon float64
}

type cacheEntry struct {
	stats     Stats
	expiresAt time.Time
}

// Config configures a Client.
type Config struct {
	BaseURL      string
	FetchTimeout time.Duration
	CacheTTL     time.Duration
	// Now is the clock used for cache expiry; defaults to time.Now.
	// Tests inject a fake clock to exercise TTL behaviour without
	// sleeping in real time.
	Now func() time.Time
}

// Client fetches and caches historical weather statistics.
type Client struct {
	httpClient   *http.Client
	baseURL      string
	fetchTimeout time.Duration
	cacheTTL     time.Duration
	now          func() time.Time

	mu    sync.RWMutex
	cache map[cacheKey]cacheEntry

	group singleflight.Group
}

// New builds a Client from cfg, applying defaults for zero-valued
// fields.
func New(cfg Config) *Client {
	if cfg.FetchTimeout <= 0 {
		cfg.FetchTimeout = DefaultFetchTimeout
	}
	if cfg.CacheTTL <= 0 {
		cfg.CacheTTL = DefaultCacheTTL
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	return &Client{
		httpClient:   &http.Client{Timeout: cfg.FetchTimeout},
		baseURL:      cfg.BaseURL,
		fetchTimeout: cfg.FetchTimeout,
		cacheTTL:     cfg.CacheTTL,
		now:          cfg.Now,
		cache:        make(map[cacheKey]cacheEntry),
	}
}

// round25 rounds a coordinate to the nearest 0.25 degree, per spec.md
// §4.6's cache-key rounding rule.
func round25(v float64) float64 {
	return math.Round(v/0.25) * 0.25
}

// FetchStats returns historical statistics for (lat, lon), serving a
// cached value when non-expired, collapsing concurrent fetches for the
// same rounded coordinate, and falling back to latitude-band defaults
// whenever the remote archive cannot be reached before ctx or the
// fetch timeout expires. FetchStats only returns an error when ctx is
// already done when called; upstream failures degrade to a
// SourceDefault result rather than failing the caller.
func (c *Client) FetchStats(ctx context.Context, lat, lon float64) (Stats, error) {
	if err := ctx.Err(); err != nil {
		return Stats{}, err
	}

	key := cacheKey{lat: round25(lat), lon: round25(lon)}
	if stats, ok := c.lookupCache(key); ok {
		return stats, nil
	}

	sfKey := fmt.Sprintf("%.2f,%.2f", key.lat, key.lon)
	result, err, _ := c.group.Do(sfKey, func() (interface{}, error) {
		if stats, ok := c.lookupCache(key); ok {
			return stats, nil
		}
		stats := c.fetchOrFallback(ctx, key.lat, key.lon)
		c.storeCache(key, stats)
		return stats, nil
	})
	if err != nil {
		return Stats{}, err
	}
	return result.(Stats), nil
}

func (c *Client) lookupCache(key cacheKey) (Stats, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	entry, ok := c.cache[key]
	if !ok || !c.now().Before(entry.expiresAt) {
		return Stats{}, false
	}
	return entry.stats, true
}

func (c *Client) storeCache(key cacheKey, stats Stats) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cache[key] = cacheEntry{stats: stats, expiresAt: c.now().Add(c.cacheTTL)}
}

func (c *Client) fetchOrFallback(ctx context.Context, lat, lon float64) Stats {
	if c.baseURL == "" {
		return defaultStats(lat)
	}
	fetchCtx, cancel := context.WithTimeout(ctx, c.fetchTimeout)
	defer cancel()

	stats, err := c.fetchLive(fetchCtx, lat, lon)
	if err != nil {
		return defaultStats(lat)
	}
	return stats
}

type archiveResponse struct {
	Daily struct {
		PrecipitationAnnualMaxMM []float64 `json:"precipitation_annual_max_mm"`
		TemperatureMaxC          []float64 `json:"temperature_2m_max"`
	} `json:"daily"`
}

func (c *Client) fetchLive(ctx context.Context, lat, lon float64) (Stats, error) {
	url := fmt.Sprintf("%s/v1/archive?latitude=%.2f&longitude=%.2f&years=%d", c.baseURL, lat, lon, yearsOfHistory)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return Stats{}, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Stats{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Stats{}, fmt.Errorf("weather: archive returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return Stats{}, err
	}

	var parsed archiveResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return Stats{}, err
	}
	if len(parsed.Daily.PrecipitationAnnualMaxMM) < 2 {
		return Stats{}, fmt.Errorf("weather: insufficient precipitation history")
	}

	gumbel := riskmath.FitGumbel(parsed.Daily.PrecipitationAnnualMaxMM)

	var heatwaveDays float64
	for _, t := range parsed.Daily.TemperatureMaxC {
		if t >= heatwaveThresholdCelsius {
			heatwaveDays++
		}
	}
	years := float64(len(parsed.Daily.TemperatureMaxC))
	if years > 0 {
		heatwaveDays = heatwaveDays / years * 365
	}

	droughtIndex := standardisedDeficit(parsed.Daily.PrecipitationAnnualMaxMM)

	return Stats{Gumbel: gumbel, HeatwaveDays: heatwaveDays, DroughtIndex: droughtIndex, Source: SourceLiveAPI}, nil
}

// standardisedDeficit computes a crude standardised precipitation
// index: the z-score of the most recent sample against the sample
// mean and standard deviation, negative values indicating deficit.
func standardisedDeficit(samples []float64) float64 {
	n := len(samples)
	if n < 2 {
		return 0
	}
	var sum float64
	for _, s := range samples {
		sum += s
	}
	mean := sum / float64(n)
	var sumSq float64
	for _, s := range samples {
		d := s - mean
		sumSq += d * d
	}
	stddev := math.Sqrt(sumSq / float64(n-1))
	if stddev == 0 {
		return 0
	}
	latest := samples[n-1]
	return (latest - mean) / stddev
}

// DefaultStats returns the latitude-band fallback statistics for lat
// without attempting any remote fetch, tagged SourceDefault. The
// physical-risk engine calls this directly when useLiveWeather is
// false, rather than routing through a Client.
func DefaultStats(lat float64) Stats {
	return defaultStats(lat)
}

// defaultStats produces latitude-band fallback statistics used
// whenever the remote archive is unreachable, tagged SourceDefault.
func defaultStats(lat float64) Stats {
	abs := lat
	if abs < 0 {
		abs = -abs
	}
	location := 80 - 0.5*abs
	scale := riskmath.Clamp(20-0.1*abs, 5, 20)
	heatwaveDays := riskmath.Clamp(40-0.3*abs, 5, 40)
	droughtIndex := -0.2 - 0.01*abs

	return Stats{
		Gumbel:       riskmath.GumbelParams{Location: location, Scale: scale},
		HeatwaveDays: heatwaveDays,
		DroughtIndex: droughtIndex,
		Source:       SourceDefault,
	}
}
