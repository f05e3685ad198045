// Package climate maps (scenario, year) to physical climate variables:
// warming above the pre-industrial baseline, sea-level rise, and
// latitude-band hazard multipliers, following the IPCC AR6 scaling
// tables referenced by spec.md §2's "Climate science" component.
package climate

import (
	"github.com/climatefin/riskcore/internal/registry"
	"github.com/climatefin/riskcore/internal/riskmath"
)

// Science holds the immutable warming and sea-level-rise calibration
// tables for all four scenarios, built once at startup.
type Science struct {
	warming map[registry.ScenarioID][]riskmath.Point
	slr     map[registry.ScenarioID][]riskmath.Point
}

// Load builds the climate-science tables.
func Load() *Science {
	return &Science{
		warming: warmingTables(),
		slr:     seaLevelRiseTables(),
	}
}

// WarmingAt returns the scenario's projected warming, in degrees
// Celsius above the pre-industrial baseline, for year (piecewise-
// linear between calibration points, clamped outside their range).
func (s *Science) WarmingAt(scenario registry.ScenarioID, year int) float64 {
	points, ok := s.warming[scenario]
	if !ok {
		points = s.warming[registry.ScenarioCurrentPolicies]
	}
	return riskmath.Interpolate(points, float64(year))
}

// SeaLevelRiseAt returns the scenario's projected sea-level rise, in
// metres above the 2020 baseline, for year.
func (s *Science) SeaLevelRiseAt(scenario registry.ScenarioID, year int) float64 {
	points, ok := s.slr[scenario]
	if !ok {
		points = s.slr[registry.ScenarioCurrentPolicies]
	}
	return riskmath.Interpolate(points, float64(year))
}

// ClimateMultiplier converts a warming level into the damage
// multiplier applied to flood loss: each degree of warming above the
// pre-industrial baseline adds 15% to event severity (linear, not
// compounded; never below 1), per the
// IPCC AR6 WG1 precipitation-intensity scaling referenced for flood
// depth-damage adjustment.
func ClimateMultiplier(warmingCelsius float64) float64 {
	m := 1 + 0.15*warmingCelsius
	if m < 1 {
		return 1
	}
	return m
}

// RegionalMultipliers returns the heatwave-day and drought-severity
// multipliers for a facility's latitude band, from the IPCC AR6
// regional scaling table: low latitudes (below 23.5 degrees) see the
// largest drought amplification (1.30); mid latitudes (23.5-45
// degrees) see the largest heatwave-day amplification (1.25); high
// latitudes see the smallest of both (1.05 heatwave, 0.85 drought).
func RegionalMultipliers(latitude float64) (heatwave, drought float64) {
	abs := latitude
	if abs < 0 {
		abs = -abs
	}
	switch {
	case abs < 23.5:
		return 1.10, 1.30
	case abs < 45:
		return 1.25, 1.10
	default:
		return 1.05, 0.85
	}
}

func warmingTables() map[registry.ScenarioID][]riskmath.Point {
	return map[registry.ScenarioID][]riskmath.Point{
		registry.ScenarioNetZero2050: {
			{X: 2024, Y: 1.2}, {X: 2030, Y: 1.3}, {X: 2040, Y: 1.4}, {X: 2050, Y: 1.5},
		},
		registry.ScenarioBelow2C: {
			{X: 2024, Y: 1.2}, {X: 2030, Y: 1.4}, {X: 2040, Y: 1.7}, {X: 2050, Y: 1.9},
		},
		registry.ScenarioDelayedTransition: {
			{X: 2024, Y: 1.2}, {X: 2030, Y: 1.5}, {X: 2040, Y: 2.0}, {X: 2050, Y: 2.3},
		},
		registry.ScenarioCurrentPolicies: {
			{X: 2024, Y: 1.2}, {X: 2030, Y: 1.6}, {X: 2040, Y: 2.2}, {X: 2050, Y: 2.7},
		},
	}
}

func seaLevelRiseTables() map[registry.ScenarioID][]riskmath.Point {
	return map[registry.ScenarioID][]riskmath.Point{
		registry.ScenarioNetZero2050: {
			{X: 2024, Y: 0.02}, {X: 2030, Y: 0.05}, {X: 2040, Y: 0.10}, {X: 2050, Y: 0.15},
		},
		registry.ScenarioBelow2C: {
			{X: 2024, Y: 0.02}, {X: 2030, Y: 0.06}, {X: 2040, Y: 0.13}, {X: 2050, Y: 0.20},
		},
		registry.ScenarioDelayedTransition: {
			{X: 2024, Y: 0.02}, {X: 2030, Y: 0.06}, {X: 2040, Y: 0.15}, {X: 2050, Y: 0.25},
		},
		registry.ScenarioCurrentPolicies: {
			{X: 2024, Y: 0.02}, {X: 2030, Y: 0.07}, {X: 2040, Y: 0.18}, {X: 2050, Y: 0.32},
		},
	}
}
