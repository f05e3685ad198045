package reporting

import (
	"archive/zip"
	"bytes"
	"testing"

	"github.com/climatefin/riskcore/internal/esg"
	"github.com/climatefin/riskcore/internal/facility"
	"github.com/climatefin/riskcore/internal/physical"
	"github.com/climatefin/riskcore/internal/registry"
	"github.com/climatefin/riskcore/internal/transition"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleInput(t *testing.T) Input {
	t.Helper()
	facilities := []facility.Facility{
		{ID: "a", Name: "Facility A", Sector: "steel", Scope1: 1_000_000, Scope2: 200_000, Revenue: 1e9, AssetValue: 1e9},
	}
	esgEngine := esg.NewEngine(registry.Load())
	esgResult, err := esgEngine.Assess(facilities, registry.FrameworkTCFD)
	require.NoError(t, err)

	return Input{
		ESG: esgResult,
		Transition: transition.Result{
			Scenario: registry.ScenarioNetZero2050,
			Facilities: []transition.FacilityResult{
				{FacilityID: "a", DeltaNPV: -1.2e9},
			},
		},
		Physical: physical.Result{
			Scenario: registry.ScenarioBelow2C,
			Year:     2040,
			Facilities: []physical.FacilityResult{
				{FacilityID: "a", ExpectedAnnualLoss: 3.4e6},
			},
		},
		Facilities: facilities,
	}
}

func TestGenerateProducesAllCanonicalSheets(t *testing.T) {
	gen := NewGenerator()
	bundle := gen.Generate(sampleInput(t))

	for _, name := range SheetOrder {
		sheet, ok := bundle[name]
		require.True(t, ok, "missing sheet %q", name)
		require.NotEmpty(t, sheet, "sheet %q has no header row", name)
	}
}

func TestOverviewSheetReflectsAggregates(t *testing.T) {
	gen := NewGenerator()
	bundle := gen.Generate(sampleInput(t))

	found := map[string]string{}
	for _, row := range bundle["overview"][1:] {
		found[row[0]] = row[1]
	}
	assert.Equal(t, "1", found["facility_count"])
	assert.Contains(t, found["portfolio_delta_npv_usd"], "$")
}

func TestRawDataSheetHasOneRowPerFacility(t *testing.T) {
	gen := NewGenerator()
	bundle := gen.Generate(sampleInput(t))
	assert.Len(t, bundle["raw_data"], 2) // header + 1 facility
}

func TestGapAnalysisSheetMatchesESGResultOrder(t *testing.T) {
	gen := NewGenerator()
	in := sampleInput(t)
	bundle := gen.Generate(in)

	require.Len(t, bundle["gap_analysis"], len(in.ESG.GapAnalysis)+1)
	assert.Equal(t, in.ESG.GapAnalysis[0].Key, bundle["gap_analysis"][1][0])
}

func TestEncodeCSVRoundTrips(t *testing.T) {
	gen := NewGenerator()
	rows := [][]string{{"a", "b"}, {"1", "2"}}
	out, err := gen.EncodeCSV(rows)
	require.NoError(t, err)
	assert.Contains(t, string(out), "a,b")
}

func TestEncodeZipContainsOneEntryPerSheet(t *testing.T) {
	gen := NewGenerator()
	bundle := gen.Generate(sampleInput(t))
	out, err := gen.EncodeZip(bundle)
	require.NoError(t, err)

	zr, err := zip.NewReader(bytes.NewReader(out), int64(len(out)))
	require.NoError(t, err)
	assert.Len(t, zr.File, len(SheetOrder))
}

func TestFormatCurrencyGroupsThousands(t *testing.T) {
	gen := NewGenerator()
	assert.Equal(t, "$1,234,567.89", gen.formatCurrency(1234567.89, "$"))
}
