// Package engine is the request-scoped facade composing the carbon,
// climate, transition-risk, physical-risk, and ESG-scoring engines
// against one immutable configuration registry, plus the session
// store and report generator. It is what internal/api/http and
// cmd/cli call into; neither talks to the individual engine packages
// directly (spec.md §5's "a single request's engines are cooperative").
package engine

import (
	"context"
	"errors"
	"fmt"

	"github.com/climatefin/riskcore/internal/carbon"
	"github.com/climatefin/riskcore/internal/climate"
	"github.com/climatefin/riskcore/internal/esg"
	"github.com/climatefin/riskcore/internal/facility"
	"github.com/climatefin/riskcore/internal/observability"
	"github.com/climatefin/riskcore/internal/physical"
	"github.com/climatefin/riskcore/internal/registry"
	"github.com/climatefin/riskcore/internal/reporting"
	"github.com/climatefin/riskcore/internal/session"
	"github.com/climatefin/riskcore/internal/transition"
	"github.com/climatefin/riskcore/internal/weather"
)

// ErrCancelled wraps context.Canceled at the facade boundary so HTTP
// handlers can map it to a client-abort status without importing the
// context package's sentinel directly (spec.md §7).
var ErrCancelled = errors.New("engine: request cancelled")

// ErrDeadlineExceeded wraps context.DeadlineExceeded at the facade
// boundary, mapped to HTTP 408 by the adapter.
var ErrDeadlineExceeded = errors.New("engine: deadline exceeded")

// translateCtxErr maps context cancellation into the facade's own
// sentinels, per spec.md §7's error taxonomy.
func translateCtxErr(err error) error {
	switch {
	case errors.Is(err, context.Canceled):
		return ErrCancelled
	case errors.Is(err, context.DeadlineExceeded):
		return ErrDeadlineExceeded
	default:
		return err
	}
}

// AllScenarios is the four-scenario comparison order (spec.md §6,
// `/transition-risk/comparison`).
var AllScenarios = []registry.ScenarioID{
	registry.ScenarioNetZero2050,
	registry.ScenarioBelow2C,
	registry.ScenarioDelayedTransition,
	registry.ScenarioCurrentPolicies,
}

// Engine wires the configuration registry and every core risk engine
// together. It holds no per-request state, and neither do
// carbon.Pricer and climate.Science: both are stateless wrappers over
// the immutable registry that interpolate their tables afresh on every
// call. Pricing and warming lookups are not memoised, per request or
// otherwise.
type Engine struct {
	registry   *registry.Registry
	transition *transition.Engine
	physical   *physical.Engine
	esg        *esg.Engine
	weather    *weather.Client
	sessions   *session.Store
	reports    *reporting.Generator
	metrics    *observability.MetricsHandler
}

// Config bundles the dependencies an Engine is built from.
type Config struct {
	Registry      *registry.Registry
	WeatherClient *weather.Client
	Sessions      *session.Store
	Metrics       *observability.MetricsHandler
}

// New builds an Engine. A nil Metrics is valid; metrics calls become
// no-ops.
func New(cfg Config) *Engine {
	reg := cfg.Registry
	if reg == nil {
		reg = registry.Load()
	}
	science := climate.Load()
	pricer := carbon.New(reg)

	return &Engine{
		registry:   reg,
		transition: transition.NewEngine(reg, pricer),
		physical:   physical.NewEngine(reg, science, cfg.WeatherClient),
		esg:        esg.NewEngine(reg),
		weather:    cfg.WeatherClient,
		sessions:   cfg.Sessions,
		reports:    reporting.NewGenerator(),
		metrics:    cfg.Metrics,
	}
}

// Scenarios lists the configured reference futures.
func (e *Engine) Scenarios() []registry.Scenario {
	return e.registry.Scenarios()
}

// Scenario returns one scenario's detail.
func (e *Engine) Scenario(id registry.ScenarioID) (registry.Scenario, error) {
	return e.registry.Scenario(id)
}

// Sectors lists the configured sector tags.
func (e *Engine) Sectors() []string {
	return e.registry.Sectors()
}

// Frameworks lists the configured disclosure-readiness frameworks.
func (e *Engine) Frameworks() []registry.Framework {
	return e.registry.Frameworks()
}

// TransitionAnalysis runs the transition-risk engine over facilities
// for one scenario/regime pair across [yearStart, yearEnd].
func (e *Engine) TransitionAnalysis(ctx context.Context, facilities []facility.Facility, scenarioID registry.ScenarioID, regime registry.Regime, yearStart, yearEnd int) (transition.Result, error) {
	result, err := e.transition.Analyse(ctx, facilities, scenarioID, regime, yearStart, yearEnd)
	if err != nil {
		return transition.Result{}, translateCtxErr(err)
	}
	e.observeFacilities("transition", len(facilities))
	return result, nil
}

// TransitionSummary aggregates a transition analysis into portfolio-
// level totals: summed ΔNPV and a count of facilities per risk level.
type TransitionSummary struct {
	Scenario        registry.ScenarioID
	Regime          registry.Regime
	TotalDeltaNPV   float64
	FacilityCount   int
	RiskLevelCounts map[transition.RiskLevel]int
}

// TransitionSummary runs the analysis and reduces it to portfolio
// totals.
func (e *Engine) TransitionSummary(ctx context.Context, facilities []facility.Facility, scenarioID registry.ScenarioID, regime registry.Regime, yearStart, yearEnd int) (TransitionSummary, error) {
	result, err := e.TransitionAnalysis(ctx, facilities, scenarioID, regime, yearStart, yearEnd)
	if err != nil {
		return TransitionSummary{}, err
	}

	summary := TransitionSummary{
		Scenario:        scenarioID,
		Regime:          regime,
		FacilityCount:   len(result.Facilities),
		RiskLevelCounts: make(map[transition.RiskLevel]int, 3),
	}
	for _, fr := range result.Facilities {
		summary.TotalDeltaNPV += fr.DeltaNPV
		summary.RiskLevelCounts[fr.RiskLevel]++
	}
	return summary, nil
}

// TransitionComparison runs the transition-risk analysis once per
// scenario in AllScenarios, for the same regime and year range, in
// input-facility order within each scenario result.
func (e *Engine) TransitionComparison(ctx context.Context, facilities []facility.Facility, regime registry.Regime, yearStart, yearEnd int) ([]transition.Result, error) {
	results := make([]transition.Result, 0, len(AllScenarios))
	for _, scenarioID := range AllScenarios {
		if err := ctx.Err(); err != nil {
			return nil, translateCtxErr(err)
		}
		result, err := e.transition.Analyse(ctx, facilities, scenarioID, regime, yearStart, yearEnd)
		if err != nil {
			return nil, translateCtxErr(err)
		}
		results = append(results, result)
	}
	return results, nil
}

// PhysicalAssessment runs the five-hazard physical-risk engine over
// facilities for one scenario and year.
func (e *Engine) PhysicalAssessment(ctx context.Context, facilities []facility.Facility, scenarioID registry.ScenarioID, year int, useLiveWeather bool) (physical.Result, error) {
	result, err := e.physical.Assess(ctx, facilities, scenarioID, year, useLiveWeather)
	if err != nil {
		return physical.Result{}, translateCtxErr(err)
	}
	e.observeFacilities("physical", len(facilities))
	return result, nil
}

// ESGAssessment scores a portfolio's disclosure readiness against
// framework.
func (e *Engine) ESGAssessment(facilities []facility.Facility, framework registry.FrameworkID) (esg.Result, error) {
	result, err := e.esg.Assess(facilities, framework)
	if err != nil {
		return esg.Result{}, err
	}
	e.observeFacilities("esg", len(facilities))
	return result, nil
}

// DisclosureReport composes a transition analysis, a physical
// assessment, and an ESG assessment over the same portfolio into the
// multi-sheet tabular artefact of spec.md §6 ("Report artefact").
func (e *Engine) DisclosureReport(ctx context.Context, facilities []facility.Facility, framework registry.FrameworkID, scenarioID registry.ScenarioID, regime registry.Regime, year int) (reporting.Bundle, error) {
	esgResult, err := e.ESGAssessment(facilities, framework)
	if err != nil {
		return nil, err
	}
	transitionResult, err := e.TransitionAnalysis(ctx, facilities, scenarioID, regime, year, year)
	if err != nil {
		return nil, err
	}
	physicalResult, err := e.PhysicalAssessment(ctx, facilities, scenarioID, year, false)
	if err != nil {
		return nil, err
	}

	return e.reports.Generate(reporting.Input{
		ESG:        esgResult,
		Transition: transitionResult,
		Physical:   physicalResult,
		Facilities: facilities,
	}), nil
}

// CreateSession stores a partner's uploaded portfolio and returns its
// opaque id.
func (e *Engine) CreateSession(companyName string, facilities []facility.Facility) (string, error) {
	if e.sessions == nil {
		return "", fmt.Errorf("engine: session store not configured")
	}
	return e.sessions.Create(companyName, facilities)
}

// Session returns the stored session for id.
func (e *Engine) Session(id string) (session.Session, error) {
	if e.sessions == nil {
		return session.Session{}, session.ErrSessionNotFound
	}
	return e.sessions.Get(id)
}

// DeleteSession removes a partner session.
func (e *Engine) DeleteSession(id string) {
	if e.sessions == nil {
		return
	}
	e.sessions.Delete(id)
}

// SessionFacilities resolves the facility portfolio a session-scoped
// route should analyse.
func (e *Engine) SessionFacilities(id string) ([]facility.Facility, error) {
	if e.sessions == nil {
		return nil, session.ErrSessionNotFound
	}
	return e.sessions.ListFacilities(id)
}

func (e *Engine) observeFacilities(engineName string, n int) {
	if e.metrics == nil {
		return
	}
	e.metrics.FacilitiesAnalysed.WithLabelValues(engineName).Add(float64(n))
}
