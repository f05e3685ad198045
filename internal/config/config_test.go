package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadAppliesDefaults(t *testing.T) {
	t.Setenv(envHTTPPort, "")
	t.Setenv(envPortFallback, "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, defaultHTTPPort, cfg.Server.Port)
	assert.Equal(t, EnvDevelopment, cfg.Server.Env)
	assert.Equal(t, defaultSessionTTL, cfg.Session.TTL)
	assert.Equal(t, defaultWeatherFetchTimeout, cfg.Weather.FetchTimeout)
}

func TestLoadReadsPortFromEnv(t *testing.T) {
	t.Setenv(envHTTPPort, "9100")
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 9100, cfg.Server.Port)
	assert.Equal(t, ":9100", cfg.ServerAddress())
}

func TestLoadFallsBackToPlatformPortConvention(t *testing.T) {
	t.Setenv(envHTTPPort, "")
	t.Setenv(envPortFallback, "5000")
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 5000, cfg.Server.Port)
}

func TestNormalizeEnvRecognisesAliases(t *testing.T) {
	assert.Equal(t, EnvProduction, normalizeEnv("prod"))
	assert.Equal(t, EnvStaging, normalizeEnv("preview"))
	assert.Equal(t, EnvTest, normalizeEnv("testing"))
	assert.Equal(t, EnvDevelopment, normalizeEnv("bogus"))
}

func TestAllowedOriginsParsesCommaSeparatedList(t *testing.T) {
	t.Setenv(envAllowedOrigins, "https://a.example, https://b.example")
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.Server.AllowedOrigins)
}

func TestIsProductionIsTestIsDevelopment(t *testing.T) {
	cfg := Config{Server: ServerConfig{Env: EnvProduction}}
	assert.True(t, cfg.IsProduction())
	assert.False(t, cfg.IsDevelopment())
	assert.False(t, cfg.IsTest())
}
