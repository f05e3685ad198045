package registry

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadScenarios(t *testing.T) {
	r := Load()
	for _, id := range allScenarioIDs {
		s, err := r.Scenario(id)
		require.NoError(t, err)
		assert.Len(t, s.GlobalPriceUSD, 8)
		assert.Len(t, s.KETSPriceKRW, 8)
		assert.Equal(t, id, s.ID)
	}
}

func TestScenarioUnknownID(t *testing.T) {
	r := Load()
	_, err := r.Scenario("does_not_exist")
	assert.ErrorIs(t, err, ErrInvalidScenario)
}

func TestSectorUnknownTagFallsBackToDefault(t *testing.T) {
	r := Load()
	s, err := r.Sector("not_a_sector")
	assert.ErrorIs(t, err, ErrUnknownSector)
	assert.Equal(t, "default", s.Tag)
}

func TestSectorCarbonIntensiveHaveStrandedAssetRate(t *testing.T) {
	r := Load()
	carbonIntensive := []string{"steel", "cement", "chemicals", "power_generation", "oil_gas", "mining"}
	for _, tag := range carbonIntensive {
		s, err := r.Sector(tag)
		require.NoError(t, err)
		assert.Greaterf(t, s.StrandedAssetRate, 0.0, "sector %s should have a nonzero stranded-asset rate", tag)
	}

	nonIntensive := []string{"aviation", "shipping", "automotive", "agriculture"}
	for _, tag := range nonIntensive {
		s, err := r.Sector(tag)
		require.NoError(t, err)
		assert.Equalf(t, 0.0, s.StrandedAssetRate, "sector %s should have zero stranded-asset rate", tag)
	}
}

func TestFrameworkCategoryWeightsSumToOne(t *testing.T) {
	r := Load()
	for _, id := range allFrameworkIDs {
		f, err := r.Framework(id)
		require.NoError(t, err)
		var sum float64
		for _, c := range f.Categories {
			sum += c.Weight
		}
		assert.InDelta(t, 1.0, sum, 1e-9, "framework %s category weights must sum to 1.0", id)
		assert.Len(t, f.Items, 12)
	}
}

func TestFrameworkUnknownID(t *testing.T) {
	r := Load()
	_, err := r.Framework("not_a_framework")
	assert.True(t, errors.Is(err, ErrInvalidFramework))
}

func TestValidateRegime(t *testing.T) {
	assert.NoError(t, ValidateRegime(RegimeGlobal))
	assert.NoError(t, ValidateRegime(RegimeKETS))
	assert.ErrorIs(t, ValidateRegime("nonsense"), ErrInvalidRegime)
}

func TestHazardOrderIsCanonicalAndStable(t *testing.T) {
	assert.Equal(t, []HazardType{
		HazardFlood, HazardTyphoon, HazardHeatwave, HazardDrought, HazardSeaLevelRise,
	}, HazardOrder)
}
