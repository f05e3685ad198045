package esg

import (
	"testing"

	"github.com/climatefin/riskcore/internal/facility"
	"github.com/climatefin/riskcore/internal/registry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// allScope12NoScope3 is the S5 end-to-end test fixture from spec.md
// §8: a portfolio that fully reports Scope 1/2 but carries no Scope 3
// disclosure at all.
func allScope12NoScope3() []facility.Facility {
	return []facility.Facility{
		{ID: "a", Sector: "steel", Scope1: 1_000_000, Scope2: 200_000, Scope3: 0, Revenue: 1e9, AssetValue: 1e9},
		{ID: "b", Sector: "cement", Scope1: 500_000, Scope2: 100_000, Scope3: 0, Revenue: 5e8, AssetValue: 5e8},
	}
}

// S5: a TCFD assessment with full Scope1/2 disclosure and no Scope3
// scores in the 70-90 band, and the top gap-analysis item is the
// Scope 3 checklist item with medium or high remediation effort.
func TestS5TCFDFullScope12NoScope3(t *testing.T) {
	engine := NewEngine(registry.Load())
	result, err := engine.Assess(allScope12NoScope3(), registry.FrameworkTCFD)
	require.NoError(t, err)

	assert.GreaterOrEqual(t, result.OverallScore, 70.0)
	assert.LessOrEqual(t, result.OverallScore, 90.0)

	require.NotEmpty(t, result.GapAnalysis)
	top := result.GapAnalysis[0]
	assert.Equal(t, "metrics_scope3_disclosure", top.Key)
	assert.Contains(t, []registry.EffortLevel{registry.EffortMedium, registry.EffortHigh}, top.Effort)
}

func TestFrameworkCategoryWeightsDriveOverallScoreWithinBounds(t *testing.T) {
	engine := NewEngine(registry.Load())
	for _, id := range []registry.FrameworkID{registry.FrameworkTCFD, registry.FrameworkISSB, registry.FrameworkKSSB} {
		result, err := engine.Assess(allScope12NoScope3(), id)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, result.OverallScore, 0.0)
		assert.LessOrEqual(t, result.OverallScore, 100.0)
		for _, cat := range result.Categories {
			assert.GreaterOrEqual(t, cat.Score, 0.0)
			assert.LessOrEqual(t, cat.Score, 100.0)
		}
	}
}

func TestFullyCompliantPortfolioScoresMaximal(t *testing.T) {
	engine := NewEngine(registry.Load())
	facilities := []facility.Facility{
		{ID: "a", Sector: "steel", Scope1: 1, Scope2: 1, Scope3: 1, Revenue: 1, AssetValue: 1},
	}
	result, err := engine.Assess(facilities, registry.FrameworkTCFD)
	require.NoError(t, err)

	for _, it := range result.Items {
		if it.Key == "risk_scope12_disclosure" || it.Key == "metrics_scope3_disclosure" {
			assert.Equal(t, registry.StatusCompliant, it.Status)
		}
	}
}

func TestEmptyPortfolioNonCompliantOnScopeItems(t *testing.T) {
	engine := NewEngine(registry.Load())
	result, err := engine.Assess(nil, registry.FrameworkTCFD)
	require.NoError(t, err)

	for _, it := range result.Items {
		if it.Key == "risk_scope12_disclosure" || it.Key == "metrics_scope3_disclosure" {
			assert.Equal(t, registry.StatusNonCompliant, it.Status)
		}
	}
}

func TestComplianceLevelThresholds(t *testing.T) {
	cases := []struct {
		score float64
		want  string
	}{
		{95, levelSeonDo},
		{85, levelUsu},
		{70, levelYangHo},
		{55, levelBoTong},
		{30, levelMiHeub},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, complianceLevel(tc.score))
	}
}

func TestMaturityLevelMatchesComplianceThresholds(t *testing.T) {
	assert.Equal(t, 5, maturityLevel(95))
	assert.Equal(t, 1, maturityLevel(10))
}

func TestAssessRejectsUnknownFramework(t *testing.T) {
	engine := NewEngine(registry.Load())
	_, err := engine.Assess(allScope12NoScope3(), "bogus")
	assert.ErrorIs(t, err, registry.ErrInvalidFramework)
}

func TestGapAnalysisSortedDescendingByPriorityScore(t *testing.T) {
	engine := NewEngine(registry.Load())
	result, err := engine.Assess(allScope12NoScope3(), registry.FrameworkISSB)
	require.NoError(t, err)

	for i := 1; i < len(result.GapAnalysis); i++ {
		assert.GreaterOrEqual(t, result.GapAnalysis[i-1].PriorityScore, result.GapAnalysis[i].PriorityScore)
	}
}
