package climate

import (
	"testing"

	"github.com/climatefin/riskcore/internal/registry"
	"github.com/stretchr/testify/assert"
)

func TestWarmingMonotoneAcrossCalibrationYears(t *testing.T) {
	s := Load()
	prev := s.WarmingAt(registry.ScenarioCurrentPolicies, 2024)
	for _, y := range []int{2030, 2040, 2050} {
		got := s.WarmingAt(registry.ScenarioCurrentPolicies, y)
		assert.GreaterOrEqual(t, got, prev)
		prev = got
	}
}

func TestWarmingClampsOutsideRange(t *testing.T) {
	s := Load()
	at2024 := s.WarmingAt(registry.ScenarioNetZero2050, 2024)
	assert.Equal(t, at2024, s.WarmingAt(registry.ScenarioNetZero2050, 1990))
	at2050 := s.WarmingAt(registry.ScenarioNetZero2050, 2050)
	assert.Equal(t, at2050, s.WarmingAt(registry.ScenarioNetZero2050, 2100))
}

func TestCurrentPoliciesWarmsMoreThanNetZero(t *testing.T) {
	s := Load()
	assert.Greater(t,
		s.WarmingAt(registry.ScenarioCurrentPolicies, 2050),
		s.WarmingAt(registry.ScenarioNetZero2050, 2050),
	)
}

func TestClimateMultiplierNeverBelowOne(t *testing.T) {
	assert.Equal(t, 1.0, ClimateMultiplier(-5))
	assert.Greater(t, ClimateMultiplier(2), 1.0)
}

func TestRegionalMultipliersByLatitudeBand(t *testing.T) {
	hw, dr := RegionalMultipliers(10)
	assert.Equal(t, 1.10, hw)
	assert.Equal(t, 1.30, dr)

	hw, dr = RegionalMultipliers(-35)
	assert.Equal(t, 1.25, hw)
	assert.Equal(t, 1.10, dr)

	hw, dr = RegionalMultipliers(60)
	assert.Equal(t, 1.05, hw)
	assert.Equal(t, 0.85, dr)
}
