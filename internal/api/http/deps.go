package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/climatefin/riskcore/internal/api/http/responders"
	"github.com/climatefin/riskcore/internal/engine"
	"github.com/climatefin/riskcore/internal/facility"
	"github.com/climatefin/riskcore/internal/registry"
	"github.com/climatefin/riskcore/internal/seed"
	"github.com/climatefin/riskcore/internal/session"
)

const (
	defaultYearStart = 2025
	defaultYearEnd   = 2050
)

// handlerDependencies fans the engine facade and logger out to the
// individual route handlers.
type handlerDependencies struct {
	engine *engine.Engine
	logger *slog.Logger
}

func newHandlerDependencies(cfg RouterConfig) *handlerDependencies {
	return &handlerDependencies{engine: cfg.Engine, logger: cfg.Logger}
}

// -----------------------------------------------------------------------------
// Liveness
// -----------------------------------------------------------------------------

func (d *handlerDependencies) health(w http.ResponseWriter, r *http.Request) {
	responders.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// -----------------------------------------------------------------------------
// Scenario, sector, and framework listings
// -----------------------------------------------------------------------------

func (d *handlerDependencies) listScenarios(w http.ResponseWriter, r *http.Request) {
	responders.JSON(w, http.StatusOK, d.engine.Scenarios())
}

func (d *handlerDependencies) getScenario(w http.ResponseWriter, r *http.Request) {
	id := registry.ScenarioID(r.PathValue("id"))
	scenario, err := d.engine.Scenario(id)
	if err != nil {
		writeError(w, err)
		return
	}
	responders.JSON(w, http.StatusOK, scenario)
}

func (d *handlerDependencies) listSectors(w http.ResponseWriter, r *http.Request) {
	responders.JSON(w, http.StatusOK, d.engine.Sectors())
}

func (d *handlerDependencies) listFrameworks(w http.ResponseWriter, r *http.Request) {
	responders.JSON(w, http.StatusOK, d.engine.Frameworks())
}

func (d *handlerDependencies) listFacilities(w http.ResponseWriter, r *http.Request) {
	all := seed.Facilities()
	sector := r.URL.Query().Get("sector")
	if sector == "" {
		responders.JSON(w, http.StatusOK, all)
		return
	}
	filtered := make([]facility.Facility, 0, len(all))
	for _, f := range all {
		if f.Sector == sector {
			filtered = append(filtered, f)
		}
	}
	responders.JSON(w, http.StatusOK, filtered)
}

// -----------------------------------------------------------------------------
// Transition-risk endpoints
// -----------------------------------------------------------------------------

func (d *handlerDependencies) transitionAnalysis(w http.ResponseWriter, r *http.Request) {
	scenarioID, regime := parseScenarioAndRegime(r)
	result, err := d.engine.TransitionAnalysis(r.Context(), seed.Facilities(), scenarioID, regime, defaultYearStart, defaultYearEnd)
	if err != nil {
		writeError(w, err)
		return
	}
	responders.JSON(w, http.StatusOK, result)
}

func (d *handlerDependencies) transitionSummary(w http.ResponseWriter, r *http.Request) {
	scenarioID, regime := parseScenarioAndRegime(r)
	summary, err := d.engine.TransitionSummary(r.Context(), seed.Facilities(), scenarioID, regime, defaultYearStart, defaultYearEnd)
	if err != nil {
		writeError(w, err)
		return
	}
	responders.JSON(w, http.StatusOK, summary)
}

func (d *handlerDependencies) transitionComparison(w http.ResponseWriter, r *http.Request) {
	_, regime := parseScenarioAndRegime(r)
	results, err := d.engine.TransitionComparison(r.Context(), seed.Facilities(), regime, defaultYearStart, defaultYearEnd)
	if err != nil {
		writeError(w, err)
		return
	}
	responders.JSON(w, http.StatusOK, results)
}

// -----------------------------------------------------------------------------
// Physical-risk endpoints
// -----------------------------------------------------------------------------

func (d *handlerDependencies) physicalAssessment(w http.ResponseWriter, r *http.Request) {
	scenarioID, year, useAPIData := parsePhysicalParams(r)
	result, err := d.engine.PhysicalAssessment(r.Context(), seed.Facilities(), scenarioID, year, useAPIData)
	if err != nil {
		writeError(w, err)
		return
	}
	responders.JSON(w, http.StatusOK, result)
}

type physicalSimulateRequest struct {
	Scenario   registry.ScenarioID `json:"scenario"`
	Year       int                 `json:"year"`
	UseAPIData bool                `json:"use_api_data"`
	Facilities []facility.Facility `json:"facilities"`
}

func (d *handlerDependencies) physicalSimulate(w http.ResponseWriter, r *http.Request) {
	var req physicalSimulateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		responders.BadRequest(w, "invalid_request", "invalid JSON payload")
		return
	}
	if err := validateFacilities(req.Facilities); err != nil {
		responders.BadRequest(w, "invalid_facility", err.Error())
		return
	}
	if req.Scenario == "" {
		req.Scenario = registry.ScenarioNetZero2050
	}
	if req.Year == 0 {
		req.Year = defaultYearEnd
	}

	result, err := d.engine.PhysicalAssessment(r.Context(), req.Facilities, req.Scenario, req.Year, req.UseAPIData)
	if err != nil {
		writeError(w, err)
		return
	}
	responders.JSON(w, http.StatusOK, result)
}

// -----------------------------------------------------------------------------
// ESG endpoints
// -----------------------------------------------------------------------------

func (d *handlerDependencies) esgAssessment(w http.ResponseWriter, r *http.Request) {
	framework := parseFramework(r)
	result, err := d.engine.ESGAssessment(seed.Facilities(), framework)
	if err != nil {
		writeError(w, err)
		return
	}
	responders.JSON(w, http.StatusOK, result)
}

func (d *handlerDependencies) esgDisclosureData(w http.ResponseWriter, r *http.Request) {
	framework := parseFramework(r)
	result, err := d.engine.ESGAssessment(seed.Facilities(), framework)
	if err != nil {
		writeError(w, err)
		return
	}
	responders.JSON(w, http.StatusOK, map[string]any{
		"framework":            result.Framework,
		"categories":           result.Categories,
		"items":                result.Items,
		"regulatory_deadlines": result.RegulatoryDeadlines,
	})
}

func (d *handlerDependencies) esgDisclosureReport(w http.ResponseWriter, r *http.Request) {
	framework := parseFramework(r)
	scenarioID, regime := parseScenarioAndRegime(r)
	year := parseYear(r, defaultYearEnd)

	bundle, err := d.engine.DisclosureReport(r.Context(), seed.Facilities(), framework, scenarioID, regime, year)
	if err != nil {
		writeError(w, err)
		return
	}
	responders.JSON(w, http.StatusOK, bundle)
}

// -----------------------------------------------------------------------------
// Partner-session endpoints
// -----------------------------------------------------------------------------

type createSessionRequest struct {
	CompanyName string              `json:"company_name"`
	Facilities  []facility.Facility `json:"facilities"`
}

func (d *handlerDependencies) createSession(w http.ResponseWriter, r *http.Request) {
	var req createSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		responders.BadRequest(w, "invalid_request", "invalid JSON payload")
		return
	}
	if err := validateFacilities(req.Facilities); err != nil {
		responders.BadRequest(w, "invalid_facility", err.Error())
		return
	}

	id, err := d.engine.CreateSession(req.CompanyName, req.Facilities)
	if err != nil {
		writeError(w, err)
		return
	}
	responders.Created(w, map[string]string{"partner_id": id})
}

func (d *handlerDependencies) getSession(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	sess, err := d.engine.Session(id)
	if err != nil {
		writeError(w, err)
		return
	}
	responders.JSON(w, http.StatusOK, sess)
}

func (d *handlerDependencies) deleteSession(w http.ResponseWriter, r *http.Request) {
	d.engine.DeleteSession(r.PathValue("id"))
	responders.NoContent(w)
}

// -----------------------------------------------------------------------------
// Session-scoped variants
// -----------------------------------------------------------------------------

func (d *handlerDependencies) sessionTransitionAnalysis(w http.ResponseWriter, r *http.Request) {
	facilities, ok := d.resolveSessionFacilities(w, r)
	if !ok {
		return
	}
	scenarioID, regime := parseScenarioAndRegime(r)
	result, err := d.engine.TransitionAnalysis(r.Context(), facilities, scenarioID, regime, defaultYearStart, defaultYearEnd)
	if err != nil {
		writeError(w, err)
		return
	}
	responders.JSON(w, http.StatusOK, result)
}

func (d *handlerDependencies) sessionTransitionSummary(w http.ResponseWriter, r *http.Request) {
	facilities, ok := d.resolveSessionFacilities(w, r)
	if !ok {
		return
	}
	scenarioID, regime := parseScenarioAndRegime(r)
	summary, err := d.engine.TransitionSummary(r.Context(), facilities, scenarioID, regime, defaultYearStart, defaultYearEnd)
	if err != nil {
		writeError(w, err)
		return
	}
	responders.JSON(w, http.StatusOK, summary)
}

func (d *handlerDependencies) sessionTransitionComparison(w http.ResponseWriter, r *http.Request) {
	facilities, ok := d.resolveSessionFacilities(w, r)
	if !ok {
		return
	}
	_, regime := parseScenarioAndRegime(r)
	results, err := d.engine.TransitionComparison(r.Context(), facilities, regime, defaultYearStart, defaultYearEnd)
	if err != nil {
		writeError(w, err)
		return
	}
	responders.JSON(w, http.StatusOK, results)
}

func (d *handlerDependencies) sessionPhysicalAssessment(w http.ResponseWriter, r *http.Request) {
	facilities, ok := d.resolveSessionFacilities(w, r)
	if !ok {
		return
	}
	scenarioID, year, useAPIData := parsePhysicalParams(r)
	result, err := d.engine.PhysicalAssessment(r.Context(), facilities, scenarioID, year, useAPIData)
	if err != nil {
		writeError(w, err)
		return
	}
	responders.JSON(w, http.StatusOK, result)
}

func (d *handlerDependencies) sessionESGAssessment(w http.ResponseWriter, r *http.Request) {
	facilities, ok := d.resolveSessionFacilities(w, r)
	if !ok {
		return
	}
	result, err := d.engine.ESGAssessment(facilities, parseFramework(r))
	if err != nil {
		writeError(w, err)
		return
	}
	responders.JSON(w, http.StatusOK, result)
}

func (d *handlerDependencies) sessionESGDisclosureData(w http.ResponseWriter, r *http.Request) {
	facilities, ok := d.resolveSessionFacilities(w, r)
	if !ok {
		return
	}
	result, err := d.engine.ESGAssessment(facilities, parseFramework(r))
	if err != nil {
		writeError(w, err)
		return
	}
	responders.JSON(w, http.StatusOK, map[string]any{
		"framework":            result.Framework,
		"categories":           result.Categories,
		"items":                result.Items,
		"regulatory_deadlines": result.RegulatoryDeadlines,
	})
}

func (d *handlerDependencies) sessionESGDisclosureReport(w http.ResponseWriter, r *http.Request) {
	facilities, ok := d.resolveSessionFacilities(w, r)
	if !ok {
		return
	}
	framework := parseFramework(r)
	scenarioID, regime := parseScenarioAndRegime(r)
	year := parseYear(r, defaultYearEnd)

	bundle, err := d.engine.DisclosureReport(r.Context(), facilities, framework, scenarioID, regime, year)
	if err != nil {
		writeError(w, err)
		return
	}
	responders.JSON(w, http.StatusOK, bundle)
}

func (d *handlerDependencies) resolveSessionFacilities(w http.ResponseWriter, r *http.Request) ([]facility.Facility, bool) {
	id := r.PathValue("id")
	facilities, err := d.engine.SessionFacilities(id)
	if err != nil {
		writeError(w, err)
		return nil, false
	}
	return facilities, true
}

// -----------------------------------------------------------------------------
// Parameter parsing
// -----------------------------------------------------------------------------

func parseScenarioAndRegime(r *http.Request) (registry.ScenarioID, registry.Regime) {
	scenario := registry.ScenarioID(r.URL.Query().Get("scenario"))
	if scenario == "" {
		scenario = registry.ScenarioNetZero2050
	}
	regime := registry.Regime(r.URL.Query().Get("pricing_regime"))
	if regime == "" {
		regime = registry.RegimeGlobal
	}
	return scenario, regime
}

func parseFramework(r *http.Request) registry.FrameworkID {
	framework := registry.FrameworkID(r.URL.Query().Get("framework"))
	if framework == "" {
		framework = registry.FrameworkTCFD
	}
	return framework
}

func parseYear(r *http.Request, fallback int) int {
	raw := r.URL.Query().Get("year")
	if raw == "" {
		return fallback
	}
	year, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return year
}

func parsePhysicalParams(r *http.Request) (registry.ScenarioID, int, bool) {
	scenario := registry.ScenarioID(r.URL.Query().Get("scenario"))
	if scenario == "" {
		scenario = registry.ScenarioNetZero2050
	}
	year := parseYear(r, defaultYearEnd)
	useAPIData := r.URL.Query().Get("use_api_data") == "true"
	return scenario, year, useAPIData
}

func validateFacilities(facilities []facility.Facility) error {
	var errs []error
	for _, f := range facilities {
		if err := f.Validate(); err != nil {
			errs = append(errs, err)
		}
	}
	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	return nil
}

// -----------------------------------------------------------------------------
// Error mapping (spec.md §7)
// -----------------------------------------------------------------------------

func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, registry.ErrInvalidScenario),
		errors.Is(err, registry.ErrInvalidFramework),
		errors.Is(err, registry.ErrInvalidRegime):
		responders.Error(w, http.StatusBadRequest, "invalid_parameter", err.Error())
	case errors.Is(err, session.ErrSessionNotFound):
		responders.Error(w, http.StatusNotFound, "not_found", "session not found")
	case errors.Is(err, engine.ErrDeadlineExceeded):
		responders.Error(w, http.StatusRequestTimeout, "deadline_exceeded", err.Error())
	case errors.Is(err, engine.ErrCancelled):
		responders.Error(w, 499, "cancelled", err.Error())
	default:
		responders.InternalError(w, err.Error())
	}
}
