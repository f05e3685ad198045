package registry

import "github.com/climatefin/riskcore/internal/riskmath"

// buildScenarios returns the four NGFS-style reference futures with
// their eight-point calibration curves (2024-2050, ascending year
// order) for both pricing regimes.
func buildScenarios() map[ScenarioID]Scenario {
	scenarios := []Scenario{
		{
			ID:          ScenarioNetZero2050,
			Name:        "Net Zero 2050",
			Citation:    "NGFS Phase IV, Net Zero 2050",
			Description: "Ambitious climate policy, early and coordinated global action reaching net zero by 2050.",
			GlobalPriceUSD: []riskmath.Point{
				{X: 2024, Y: 40}, {X: 2026, Y: 55}, {X: 2028, Y: 75}, {X: 2030, Y: 95},
				{X: 2035, Y: 140}, {X: 2040, Y: 180}, {X: 2045, Y: 220}, {X: 2050, Y: 250},
			},
			KETSPriceKRW: []riskmath.Point{
				{X: 2024, Y: 25_000}, {X: 2026, Y: 32_000}, {X: 2028, Y: 40_000}, {X: 2030, Y: 50_000},
				{X: 2035, Y: 70_000}, {X: 2040, Y: 90_000}, {X: 2045, Y: 110_000}, {X: 2050, Y: 130_000},
			},
			ReductionTarget: 0.90,
			TargetYear:      2050,
			InflectionYear:  2030,
			Steepness:       0.25,
			CreditSpread:    0.015,
		},
		{
			ID:          ScenarioBelow2C,
			Name:        "Below 2°C",
			Citation:    "NGFS Phase IV, Below 2°C",
			Description: "Gradual, less coordinated policy holding warming just below 2°C.",
			GlobalPriceUSD: []riskmath.Point{
				{X: 2024, Y: 35}, {X: 2026, Y: 45}, {X: 2028, Y: 60}, {X: 2030, Y: 75},
				{X: 2035, Y: 105}, {X: 2040, Y: 130}, {X: 2045, Y: 155}, {X: 2050, Y: 180},
			},
			KETSPriceKRW: []riskmath.Point{
				{X: 2024, Y: 22_000}, {X: 2026, Y: 27_000}, {X: 2028, Y: 33_000}, {X: 2030, Y: 40_000},
				{X: 2035, Y: 55_000}, {X: 2040, Y: 70_000}, {X: 2045, Y: 85_000}, {X: 2050, Y: 100_000},
			},
			ReductionTarget: 0.75,
			TargetYear:      2050,
			InflectionYear:  2033,
			Steepness:       0.3,
			CreditSpread:    0.010,
		},
		{
			ID:          ScenarioDelayedTransition,
			Name:        "Delayed Transition",
			Citation:    "NGFS Phase IV, Delayed Transition",
			Description: "Policy action delayed to the mid-2030s then tightened abruptly, elevating transition risk.",
			GlobalPriceUSD: []riskmath.Point{
				{X: 2024, Y: 20}, {X: 2026, Y: 22}, {X: 2028, Y: 25}, {X: 2030, Y: 28},
				{X: 2035, Y: 35}, {X: 2040, Y: 90}, {X: 2045, Y: 150}, {X: 2050, Y: 190},
			},
			KETSPriceKRW: []riskmath.Point{
				{X: 2024, Y: 15_000}, {X: 2026, Y: 16_000}, {X: 2028, Y: 18_000}, {X: 2030, Y: 20_000},
				{X: 2035, Y: 25_000}, {X: 2040, Y: 55_000}, {X: 2045, Y: 90_000}, {X: 2050, Y: 115_000},
			},
			ReductionTarget: 0.55,
			TargetYear:      2050,
			InflectionYear:  2042,
			Steepness:       0.650,
			CreditSpread:    0.025,
		},
		{
			ID:          ScenarioCurrentPolicies,
			Name:        "Current Policies",
			Citation:    "NGFS Phase IV, Current Policies",
			Description: "No material tightening beyond policies already enacted.",
			GlobalPriceUSD: []riskmath.Point{
				{X: 2024, Y: 15}, {X: 2026, Y: 16}, {X: 2028, Y: 17}, {X: 2030, Y: 18},
				{X: 2035, Y: 20}, {X: 2040, Y: 22}, {X: 2045, Y: 24}, {X: 2050, Y: 26},
			},
			KETSPriceKRW: []riskmath.Point{
				{X: 2024, Y: 12_000}, {X: 2026, Y: 12_500}, {X: 2028, Y: 13_000}, {X: 2030, Y: 13_500},
				{X: 2035, Y: 14_500}, {X: 2040, Y: 15_500}, {X: 2045, Y: 16_500}, {X: 2050, Y: 17_500},
			},
			ReductionTarget: 0.20,
			TargetYear:      2050,
			InflectionYear:  2048,
			Steepness:       2.50,
			CreditSpread:    0.005,
		},
	}

	out := make(map[ScenarioID]Scenario, len(scenarios))
	for _, s := range scenarios {
		out[s.ID] = s
	}
	return out
}
