// Package transition computes, per facility and per year, the
// discounted cash-flow impact of rising carbon prices, mandatory
// decarbonisation, and stranded assets under a chosen climate policy
// scenario, per spec.md §4.2.
//
// The per-year composition loop follows the teacher's
// internal/scenarios/engine.go projection loop: a running emissions
// state walked forward year by year, accumulating a summary as it
// goes, generalised here to the transition-risk NPV composition.
package transition

import (
	"context"
	"fmt"

	"github.com/climatefin/riskcore/internal/carbon"
	"github.com/climatefin/riskcore/internal/facility"
	"github.com/climatefin/riskcore/internal/registry"
	"github.com/climatefin/riskcore/internal/riskmath"
)

const (
	// defaultBaseWACC is the weighted-average cost of capital before a
	// scenario's credit-spread adjustment.
	defaultBaseWACC = 0.08

	// alphaCapex and alphaOpex scale transition CAPEX/OPEX off asset
	// value; both are "a small constant" per spec.md §4.2 step 5, not
	// otherwise pinned. Calibrated against the S1 and S2 end-to-end
	// scenarios (steel, global regime, 2025-2050): net_zero_2050 gives
	// a ΔNPV of about -2.0e10, and current_policies' |ΔNPV| sits about
	// 43% below it.
	alphaCapex = 0.008
	alphaOpex  = 0.0015

	// energyEfficiencyOffset is the fraction of the reduction
	// trajectory that offsets the energy-cost uplift through
	// efficiency savings (spec.md §4.2 step 4).
	energyEfficiencyOffset = 0.5

	// revenueImpactRate scales the revenue-impact term, which spec.md
	// §4.2 step 8 names in the ΔEBITDA sum without giving it a formula
	// elsewhere; resolved here as a small linear margin drag
	// proportional to revenue and the reduction-trajectory fraction
	// (see DESIGN.md, "Transition-engine calibration decisions").
	revenueImpactRate = 0.01

	riskHighThreshold   = 0.10
	riskMediumThreshold = 0.03
)

// RiskLevel buckets a facility's transition-risk exposure.
type RiskLevel string

const (
	RiskLow    RiskLevel = "Low"
	RiskMedium RiskLevel = "Medium"
	RiskHigh   RiskLevel = "High"
)

// riskLevelForFraction buckets |ΔNPV / asset_value|. Equality at a
// threshold uses the stricter (higher) bucket, per spec.md §4.2.
func riskLevelForFraction(absFraction float64) RiskLevel {
	switch {
	case absFraction >= riskHighThreshold:
		return RiskHigh
	case absFraction >= riskMediumThreshold:
		return RiskMedium
	default:
		return RiskLow
	}
}

// EmissionYear is one year of a facility's emission pathway under the
// scenario's reduction trajectory.
type EmissionYear struct {
	Year   int
	Scope1 float64
	Scope2 float64
	Total  float64
}

// YearImpact is one year's annual-impacts breakdown (spec.md §3,
// "Transition-risk result"). KETSFreeAllocation and
// KETSExcessEmissions are zero-valued when Regime != kets.
type YearImpact struct {
	Year int

	CarbonCost             float64
	EnergyCostUplift       float64
	RevenueImpact          float64
	TransitionCapex        float64
	TransitionOpex         float64
	Scope3Cost             float64
	StrandedAssetWriteDown float64

	KETSFreeAllocation  float64
	KETSExcessEmissions float64

	DeltaEBITDA           float64
	DiscountedDeltaEBITDA float64
}

// FacilityResult is the per-facility transition-risk outcome.
type FacilityResult struct {
	FacilityID string

	EmissionPathway []EmissionYear
	AnnualImpacts   []YearImpact

	DeltaNPV                 float64
	DeltaNPVFractionOfAssets float64
	RiskLevel                RiskLevel

	Warnings []string
}

// Result is the full transition-risk analysis over a facility
// portfolio.
type Result struct {
	Scenario  registry.ScenarioID
	Regime    registry.Regime
	YearStart int
	YearEnd   int

	Facilities []FacilityResult
}

// Engine evaluates the transition-risk algorithm against the
// configuration registry and a carbon-pricing Pricer.
type Engine struct {
	registry *registry.Registry
	pricer   *carbon.Pricer
	baseWACC float64
}

// Option configures an Engine.
type Option func(*Engine)

// WithBaseWACC overrides the default base WACC (8%) used before a
// scenario's credit-spread adjustment.
func WithBaseWACC(wacc float64) Option {
	return func(e *Engine) { e.baseWACC = wacc }
}

// NewEngine builds a transition-risk Engine.
func NewEngine(reg *registry.Registry, pricer *carbon.Pricer, opts ...Option) *Engine {
	e := &Engine{registry: reg, pricer: pricer, baseWACC: defaultBaseWACC}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Analyse runs the per-facility, per-year transition-risk composition
// over [yearStart, yearEnd] for every facility, in input order.
// Analyse is pure over its inputs and the configuration registry; it
// checks ctx for cancellation between facilities only, per spec.md §5.
func (e *Engine) Analyse(ctx context.Context, facilities []facility.Facility, scenarioID registry.ScenarioID, regime registry.Regime, yearStart, yearEnd int) (Result, error) {
	if err := registry.ValidateRegime(regime); err != nil {
		return Result{}, err
	}
	scenario, err := e.registry.Scenario(scenarioID)
	if err != nil {
		return Result{}, err
	}
	if yearEnd < yearStart {
		return Result{}, fmt.Errorf("transition: yearEnd %d precedes yearStart %d", yearEnd, yearStart)
	}

	wacc := riskmath.ComposeWACC(e.baseWACC, scenario.CreditSpread)

	results := make([]FacilityResult, 0, len(facilities))
	for _, f := range facilities {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}
		results = append(results, e.analyseFacility(f, scenario, regime, yearStart, yearEnd, wacc))
	}

	return Result{
		Scenario:   scenarioID,
		Regime:     regime,
		YearStart:  yearStart,
		YearEnd:    yearEnd,
		Facilities: results,
	}, nil
}

func (e *Engine) analyseFacility(f facility.Facility, scenario registry.Scenario, regime registry.Regime, yearStart, yearEnd int, wacc float64) FacilityResult {
	sector, sectorErr := e.registry.Sector(f.Sector)
	var warnings []string
	if sectorErr != nil {
		warnings = append(warnings, sectorErr.Error())
	}

	n := yearEnd - yearStart + 1
	pathway := make([]EmissionYear, 0, n)
	impacts := make([]YearImpact, 0, n)
	cashflows := make([]float64, 0, n)

	for t := yearStart; t <= yearEnd; t++ {
		rt := riskmath.Logistic(scenario.ReductionTarget, scenario.Steepness, scenario.InflectionYear, float64(t))

		e1 := f.Scope1 * (1 - rt)
		e2 := f.Scope2 * (1 - rt)
		pathway = append(pathway, EmissionYear{Year: t, Scope1: e1, Scope2: e2, Total: e1 + e2})

		price, priceWarnings, _ := e.pricer.PriceAt(scenario.ID, regime, t)
		warnings = append(warnings, priceWarnings...)
		// K-ETS prices are quoted in KRW while facility financials are in
		// USD; convert at the registry's exchange rate before costing.
		priceAmount := price.Amount
		if price.Currency == "KRW" {
			priceAmount /= e.registry.ExchangeRateUSDKRW
		}

		var carbonCost, ketsAllocation, ketsExcess float64
		if regime == registry.RegimeKETS {
			fraction, allocWarnings, _ := e.pricer.AllocationFraction(f.Sector, t)
			warnings = append(warnings, allocWarnings...)
			ketsAllocation = fraction * f.Scope1
			ketsExcess = e1 - ketsAllocation
			if ketsExcess < 0 {
				ketsExcess = 0
			}
			carbonCost = ketsExcess * priceAmount
		} else {
			carbonCost = e1 * priceAmount
		}

		energyUplift := sector.EnergyCostShare * f.Revenue * (1 - energyEfficiencyOffset*rt)
		revenueImpact := f.Revenue * revenueImpactRate * rt

		strandedWriteDown := sector.StrandedAssetRate * f.AssetValue
		capex := f.AssetValue*alphaCapex*(1+10*rt) + strandedWriteDown
		opex := f.AssetValue * alphaOpex * (1 + 10*rt)

		scope3Cost := f.Scope3 * priceAmount * sector.Scope3Exposure

		deltaEBITDA := -(carbonCost + energyUplift + revenueImpact + capex + opex + scope3Cost)
		discounted := deltaEBITDA * riskmath.DiscountFactor(wacc, t-yearStart)
		cashflows = append(cashflows, deltaEBITDA)

		impacts = append(impacts, YearImpact{
			Year:                   t,
			CarbonCost:             carbonCost,
			EnergyCostUplift:       energyUplift,
			RevenueImpact:          revenueImpact,
			TransitionCapex:        capex,
			TransitionOpex:         opex,
			Scope3Cost:             scope3Cost,
			StrandedAssetWriteDown: strandedWriteDown,
			KETSFreeAllocation:     ketsAllocation,
			KETSExcessEmissions:    ketsExcess,
			DeltaEBITDA:            deltaEBITDA,
			DiscountedDeltaEBITDA:  discounted,
		})
	}

	deltaNPV := riskmath.NPV(cashflows, wacc)

	var fraction float64
	if f.AssetValue != 0 {
		fraction = deltaNPV / f.AssetValue
	}
	abs := fraction
	if abs < 0 {
		abs = -abs
	}

	return FacilityResult{
		FacilityID:               f.ID,
		EmissionPathway:          pathway,
		AnnualImpacts:            impacts,
		DeltaNPV:                 deltaNPV,
		DeltaNPVFractionOfAssets: fraction,
		RiskLevel:                riskLevelForFraction(abs),
		Warnings:                 warnings,
	}
}
