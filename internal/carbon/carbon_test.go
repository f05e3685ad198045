package carbon

import (
	"testing"

	"github.com/climatefin/riskcore/internal/registry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPricer(t *testing.T) *Pricer {
	t.Helper()
	return New(registry.Load())
}

// Invariant 1: prices are non-negative for every scenario/year, and
// monotone non-decreasing for net_zero_2050 and below_2c.
func TestPriceAtNonNegativeAndMonotoneForAggressiveScenarios(t *testing.T) {
	p := newPricer(t)
	for _, scenario := range []registry.ScenarioID{
		registry.ScenarioNetZero2050, registry.ScenarioBelow2C,
		registry.ScenarioDelayedTransition, registry.ScenarioCurrentPolicies,
	} {
		var prev float64 = -1
		for y := 2024; y <= 2050; y++ {
			price, _, err := p.PriceAt(scenario, registry.RegimeGlobal, y)
			require.NoError(t, err)
			assert.GreaterOrEqualf(t, price.Amount, 0.0, "scenario %s year %d", scenario, y)

			if scenario == registry.ScenarioNetZero2050 || scenario == registry.ScenarioBelow2C {
				if prev >= 0 {
					assert.GreaterOrEqualf(t, price.Amount, prev, "scenario %s should be monotone at year %d", scenario, y)
				}
			}
			prev = price.Amount
		}
	}
}

func TestPriceAtClampsOutsideCalibrationRange(t *testing.T) {
	p := newPricer(t)
	early, warnings, err := p.PriceAt(registry.ScenarioNetZero2050, registry.RegimeGlobal, 1990)
	require.NoError(t, err)
	assert.NotEmpty(t, warnings)

	atStart, _, err := p.PriceAt(registry.ScenarioNetZero2050, registry.RegimeGlobal, 2024)
	require.NoError(t, err)
	assert.Equal(t, atStart.Amount, early.Amount)
}

func TestPriceAtUnknownScenarioAndRegime(t *testing.T) {
	p := newPricer(t)
	_, _, err := p.PriceAt("bogus", registry.RegimeGlobal, 2030)
	assert.ErrorIs(t, err, registry.ErrInvalidScenario)

	_, _, err = p.PriceAt(registry.ScenarioNetZero2050, "bogus", 2030)
	assert.ErrorIs(t, err, registry.ErrInvalidRegime)
}

func TestPriceAtKETSReturnsKRW(t *testing.T) {
	p := newPricer(t)
	price, _, err := p.PriceAt(registry.ScenarioNetZero2050, registry.RegimeKETS, 2030)
	require.NoError(t, err)
	assert.Equal(t, "KRW", price.Currency)
	assert.Greater(t, price.Amount, 0.0)
}

// Invariant 2: allocation fraction stays in [0, 1] and is monotone
// non-increasing in year.
func TestAllocationFractionBoundedAndNonIncreasing(t *testing.T) {
	p := newPricer(t)
	prev := 2.0
	for y := 2024; y <= 2060; y++ {
		frac, _, err := p.AllocationFraction("steel", y)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, frac, 0.0)
		assert.LessOrEqual(t, frac, 1.0)
		assert.LessOrEqual(t, frac, prev)
		prev = frac
	}
}

func TestAllocationFractionUnknownSectorWarnsAndDefaults(t *testing.T) {
	p := newPricer(t)
	frac, warnings, err := p.AllocationFraction("not_a_sector", 2024)
	require.NoError(t, err)
	assert.NotEmpty(t, warnings)
	assert.GreaterOrEqual(t, frac, 0.0)
}

func TestBuildPathOrderedAscending(t *testing.T) {
	p := newPricer(t)
	path, err := p.BuildPath(registry.ScenarioBelow2C, registry.RegimeGlobal, 2025, 2035)
	require.NoError(t, err)
	require.Len(t, path, 11)
	for i, pt := range path {
		assert.Equal(t, 2025+i, pt.Year)
	}
}
