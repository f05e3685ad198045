// Package registry holds the configuration data tables the rest of the
// risk engines parameterise against: scenario definitions, sector
// parameters, regulatory-framework checklists, and the K-ETS exchange
// rate. Everything here is loaded once at process startup into
// immutable structures (see spec.md §9, "Configuration as data") — no
// exported type in this package is mutated after Load returns.
package registry

import (
	"errors"
	"fmt"

	"github.com/climatefin/riskcore/internal/riskmath"
)

// Sentinel errors for caller-supplied tags that do not resolve against
// the configuration tables.
var (
	ErrInvalidScenario  = errors.New("registry: unrecognised scenario")
	ErrInvalidRegime    = errors.New("registry: unrecognised pricing regime")
	ErrInvalidFramework = errors.New("registry: unrecognised disclosure framework")
	// ErrUnknownSector is not a request-failing error: the caller is
	// expected to surface it as a warning and continue with the
	// `default` sector parameters, per spec.md §9's open question.
	ErrUnknownSector = errors.New("registry: unrecognised sector, defaults applied")
)

// ScenarioID identifies one of the four NGFS-style reference futures.
type ScenarioID string

const (
	ScenarioNetZero2050       ScenarioID = "net_zero_2050"
	ScenarioBelow2C           ScenarioID = "below_2c"
	ScenarioDelayedTransition ScenarioID = "delayed_transition"
	ScenarioCurrentPolicies  ScenarioID = "current_policies"
)

// Regime selects the carbon-pricing currency and market.
type Regime string

const (
	RegimeGlobal Regime = "global"
	RegimeKETS   Regime = "kets"
)

// FrameworkID identifies a disclosure-readiness framework.
type FrameworkID string

const (
	FrameworkTCFD FrameworkID = "tcfd"
	FrameworkISSB FrameworkID = "issb"
	FrameworkKSSB FrameworkID = "kssb"
)

// HazardType enumerates the five physical hazards, in the canonical
// evaluation order required by spec.md §4.3.
type HazardType string

const (
	HazardFlood        HazardType = "flood"
	HazardTyphoon      HazardType = "typhoon"
	HazardHeatwave     HazardType = "heatwave"
	HazardDrought      HazardType = "drought"
	HazardSeaLevelRise HazardType = "sea_level_rise"
)

// HazardOrder is the fixed, deterministic evaluation order for hazards.
var HazardOrder = []HazardType{
	HazardFlood, HazardTyphoon, HazardHeatwave, HazardDrought, HazardSeaLevelRise,
}

// Scenario is one reference future: a warming trajectory, a carbon
// price path (global calibration points plus, for K-ETS, its own
// Korean-market calibration points), a year-yearEnd reduction target,
// and the WACC credit-spread adjustment it implies.
type Scenario struct {
	ID          ScenarioID
	Name        string
	Citation    string
	Description string

	// GlobalPriceUSD are the eight (year, USD/tCO2e) calibration points
	// for the global pricing regime, in ascending year order.
	GlobalPriceUSD []riskmath.Point

	// KETSPriceKRW are the Korean allowance market's own calibration
	// points (year, KRW/tCO2e), blended with the exchange-rate-converted
	// global path when Regime == RegimeKETS.
	KETSPriceKRW []riskmath.Point

	// ReductionTarget is the fraction of baseline emissions eliminated
	// by TargetYear (the logistic curve's asymptote).
	ReductionTarget float64
	TargetYear      int

	// InflectionYear and Steepness parameterise the logistic emission
	// reduction trajectory: r(t) = target / (1 + exp(-k*(t-t0))).
	InflectionYear float64
	Steepness      float64

	// CreditSpread is added to the base WACC to obtain the scenario-
	// adjusted discount rate.
	CreditSpread float64
}

// Sector holds the cost-structure and hazard-sensitivity parameters
// keyed by facility sector tag.
type Sector struct {
	Tag      string
	Citation string

	EnergyCostShare    float64 // of revenue, at baseline
	StrandedAssetRate  float64 // annual write-down rate, 0 for non-carbon-intensive sectors
	LearningRate       float64 // technology cost decline per year
	KETSBaseAllocation float64 // free-allocation fraction at 2024
	KETSTighten        float64 // annual tightening step
	Scope3Exposure     float64 // scope-3 cost exposure factor

	HazardSensitivity map[HazardType]float64

	// DefaultLatitudeBand anchors weather-statistics defaults when a
	// facility's own coordinates are unavailable for a derived lookup.
	DefaultLatitudeBand float64
	Coastal             bool
}

// EffortLevel is a coarse remediation-effort bucket used by the ESG
// gap-analysis priority score.
type EffortLevel string

const (
	EffortLow    EffortLevel = "low"
	EffortMedium EffortLevel = "medium"
	EffortHigh   EffortLevel = "high"
)

// EffortWeight maps an EffortLevel to the divisor used when computing
// priority_score = impact / effort_weight.
func EffortWeight(e EffortLevel) float64 {
	switch e {
	case EffortLow:
		return 1
	case EffortMedium:
		return 2
	case EffortHigh:
		return 3
	default:
		return 2
	}
}

// ItemEvaluator names how a checklist item's compliance status is
// derived. "static" items carry a fixed baseline status representing
// assumed disclosure-process maturity; "scope1_2" and "scope3" items
// are derived from the analysed portfolio's reported emissions.
type ItemEvaluator string

const (
	EvaluatorStatic  ItemEvaluator = "static"
	EvaluatorScope12 ItemEvaluator = "scope1_2_disclosure"
	EvaluatorScope3  ItemEvaluator = "scope3_disclosure"
)

// ItemStatus is a checklist item's compliance state.
type ItemStatus string

const (
	StatusCompliant    ItemStatus = "compliant"
	StatusPartial      ItemStatus = "partial"
	StatusNonCompliant ItemStatus = "non_compliant"
)

// Score returns the numeric contribution of a status toward its
// category's weighted-maturity score.
func (s ItemStatus) Score() float64 {
	switch s {
	case StatusCompliant:
		return 1.0
	case StatusPartial:
		return 0.5
	default:
		return 0.0
	}
}

// ChecklistItem is one item within a framework category.
type ChecklistItem struct {
	Key            string
	CategoryKey    string
	Description    string
	Recommendation string
	Evaluator      ItemEvaluator
	// StaticStatus is used when Evaluator == EvaluatorStatic.
	StaticStatus ItemStatus
	Effort       EffortLevel
}

// Category is one weighted pillar of a disclosure framework.
type Category struct {
	Key    string
	Name   string
	Weight float64
}

// Framework is a disclosure-readiness framework: weighted categories,
// a flat list of checklist items tagged to those categories, and a
// static regulatory-deadline schedule.
type Framework struct {
	ID                  FrameworkID
	Name                string
	Citation            string
	Categories          []Category
	Items               []ChecklistItem
	RegulatoryDeadlines []string
}

// Registry is the immutable set of configuration tables loaded at
// startup.
type Registry struct {
	scenarios map[ScenarioID]Scenario
	sectors   map[string]Sector
	framework map[FrameworkID]Framework

	// ExchangeRateUSDKRW converts global USD/tCO2e prices into KRW
	// before blending with the K-ETS market's own calibration points.
	ExchangeRateUSDKRW float64
}

// Load builds the registry's immutable data tables. It is called once
// at process startup; the returned Registry is safe for concurrent
// read-only use without further synchronisation.
func Load() *Registry {
	r := &Registry{
		scenarios:           buildScenarios(),
		sectors:             buildSectors(),
		framework:           buildFrameworks(),
		ExchangeRateUSDKRW:  1_350.0,
	}
	return r
}

// Scenario looks up a scenario by id.
func (r *Registry) Scenario(id ScenarioID) (Scenario, error) {
	s, ok := r.scenarios[id]
	if !ok {
		return Scenario{}, fmt.Errorf("%w: %q", ErrInvalidScenario, id)
	}
	return s, nil
}

// Scenarios returns all scenarios in a stable, canonical order.
func (r *Registry) Scenarios() []Scenario {
	out := make([]Scenario, 0, len(allScenarioIDs))
	for _, id := range allScenarioIDs {
		out = append(out, r.scenarios[id])
	}
	return out
}

// Sector looks up sector parameters by tag. An unrecognised tag
// returns the `default` sector parameters together with
// ErrUnknownSector so callers can surface a warning without failing
// the request.
func (r *Registry) Sector(tag string) (Sector, error) {
	if s, ok := r.sectors[tag]; ok {
		return s, nil
	}
	return r.sectors["default"], fmt.Errorf("%w: %q", ErrUnknownSector, tag)
}

// Sectors returns the ten canonical sector tags (excluding `default`),
// in a stable order.
func (r *Registry) Sectors() []string {
	out := make([]string, len(canonicalSectorTags))
	copy(out, canonicalSectorTags)
	return out
}

// Framework looks up a disclosure framework by id.
func (r *Registry) Framework(id FrameworkID) (Framework, error) {
	f, ok := r.framework[id]
	if !ok {
		return Framework{}, fmt.Errorf("%w: %q", ErrInvalidFramework, id)
	}
	return f, nil
}

// Frameworks returns all frameworks in a stable, canonical order.
func (r *Registry) Frameworks() []Framework {
	out := make([]Framework, 0, len(allFrameworkIDs))
	for _, id := range allFrameworkIDs {
		out = append(out, r.framework[id])
	}
	return out
}

// ValidateRegime checks that regime is one of the two recognised
// pricing regimes.
func ValidateRegime(regime Regime) error {
	switch regime {
	case RegimeGlobal, RegimeKETS:
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrInvalidRegime, regime)
	}
}

var allScenarioIDs = []ScenarioID{
	ScenarioNetZero2050, ScenarioBelow2C, ScenarioDelayedTransition, ScenarioCurrentPolicies,
}

var allFrameworkIDs = []FrameworkID{FrameworkTCFD, FrameworkISSB, FrameworkKSSB}
