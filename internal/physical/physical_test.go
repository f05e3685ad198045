package physical

import (
	"context"
	"testing"

	"github.com/climatefin/riskcore/internal/climate"
	"github.com/climatefin/riskcore/internal/facility"
	"github.com/climatefin/riskcore/internal/registry"
	"github.com/climatefin/riskcore/internal/weather"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEngine(t *testing.T) *Engine {
	t.Helper()
	reg := registry.Load()
	return NewEngine(reg, climate.Load(), weather.New(weather.Config{}))
}

// coastalSteelFacility is the S4 end-to-end test fixture from spec.md
// §8: facility G at (35.5N, 129.0E), assets 1e9, coastal.
func coastalSteelFacility() facility.Facility {
	coastal := true
	return facility.Facility{
		ID: "g", Name: "Facility G", Sector: "steel",
		Latitude: 35.5, Longitude: 129.0, Coastal: &coastal,
		Scope1: 1_000_000, Scope2: 200_000, Scope3: 500_000,
		Revenue: 2e9, EBITDA: 2e8, AssetValue: 1e9,
	}
}

func TestAssessCanonicalHazardOrder(t *testing.T) {
	engine := newEngine(t)
	result, err := engine.Assess(context.Background(), []facility.Facility{coastalSteelFacility()}, registry.ScenarioBelow2C, 2040, false)
	require.NoError(t, err)

	hazards := result.Facilities[0].Hazards
	require.Len(t, hazards, len(registry.HazardOrder))
	for i, want := range registry.HazardOrder {
		assert.Equal(t, want, hazards[i].Hazard)
	}
}

// S4: expected annual loss is positive and the typhoon hazard buckets
// as High risk for the coastal fixture at 35.5N, in the 30-45 degree
// band just outside the 10-30 degree tropical-cyclone belt.
func TestS4CoastalFacilityTyphoonHighRisk(t *testing.T) {
	engine := newEngine(t)
	result, err := engine.Assess(context.Background(), []facility.Facility{coastalSteelFacility()}, registry.ScenarioBelow2C, 2040, false)
	require.NoError(t, err)

	fr := result.Facilities[0]
	assert.Greater(t, fr.ExpectedAnnualLoss, 0.0)

	var typhoon HazardAssessment
	for _, hz := range fr.Hazards {
		if hz.Hazard == registry.HazardTyphoon {
			typhoon = hz
		}
	}
	assert.Equal(t, RiskHigh, typhoon.RiskLevel)
}

// Invariant 9: assess(F, s, y, false) is bit-identical across runs.
func TestAssessDeterministicAcrossRuns(t *testing.T) {
	engine := newEngine(t)
	facilities := []facility.Facility{coastalSteelFacility()}

	first, err := engine.Assess(context.Background(), facilities, registry.ScenarioBelow2C, 2040, false)
	require.NoError(t, err)
	second, err := engine.Assess(context.Background(), facilities, registry.ScenarioBelow2C, 2040, false)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestAssessNonCoastalSkipsSeaLevelRiseLoss(t *testing.T) {
	engine := newEngine(t)
	nonCoastal := false
	f := coastalSteelFacility()
	f.Coastal = &nonCoastal

	result, err := engine.Assess(context.Background(), []facility.Facility{f}, registry.ScenarioBelow2C, 2040, false)
	require.NoError(t, err)

	for _, hz := range result.Facilities[0].Hazards {
		if hz.Hazard == registry.HazardSeaLevelRise {
			assert.Equal(t, 0.0, hz.ExpectedAnnualLoss)
			assert.Equal(t, RiskLow, hz.RiskLevel)
		}
	}
}

func TestAssessOutputOrderMatchesInputOrder(t *testing.T) {
	engine := newEngine(t)
	f1 := coastalSteelFacility()
	f2 := coastalSteelFacility()
	f2.ID = "h"

	result, err := engine.Assess(context.Background(), []facility.Facility{f1, f2}, registry.ScenarioBelow2C, 2040, false)
	require.NoError(t, err)
	require.Len(t, result.Facilities, 2)
	assert.Equal(t, "g", result.Facilities[0].FacilityID)
	assert.Equal(t, "h", result.Facilities[1].FacilityID)
}

func TestAssessRejectsUnknownScenario(t *testing.T) {
	engine := newEngine(t)
	_, err := engine.Assess(context.Background(), []facility.Facility{coastalSteelFacility()}, "bogus", 2040, false)
	assert.ErrorIs(t, err, registry.ErrInvalidScenario)
}

func TestAssessRejectsAlreadyCancelledContext(t *testing.T) {
	engine := newEngine(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := engine.Assess(ctx, []facility.Facility{coastalSteelFacility()}, registry.ScenarioBelow2C, 2040, false)
	assert.ErrorIs(t, err, context.Canceled)
}

// When useLiveWeather fetches fail or time out, the facility falls
// back to defaults without failing the request, and data_source
// reports hardcoded_config.
func TestAssessFallsBackToDefaultsWhenLiveWeatherUnavailable(t *testing.T) {
	reg := registry.Load()
	engine := NewEngine(reg, climate.Load(), weather.New(weather.Config{BaseURL: "http://127.0.0.1:0"}))

	result, err := engine.Assess(context.Background(), []facility.Facility{coastalSteelFacility()}, registry.ScenarioBelow2C, 2040, true)
	require.NoError(t, err)
	assert.Equal(t, weather.SourceDefault, result.Facilities[0].DataSource)
}

func TestAssessUnknownSectorWarnsAndDefaults(t *testing.T) {
	engine := newEngine(t)
	f := coastalSteelFacility()
	f.Sector = "not_a_sector"

	result, err := engine.Assess(context.Background(), []facility.Facility{f}, registry.ScenarioBelow2C, 2040, false)
	require.NoError(t, err)
	assert.NotEmpty(t, result.Facilities[0].Warnings)
}
