// Package http provides the thin HTTP routing and handler layer for
// riskcore's REST surface.
//
// Route Structure:
//
//	GET    /health                               - Liveness probe (public)
//	GET    /scenarios                            - Scenario list
//	GET    /scenarios/{id}                        - Scenario detail
//	GET    /company/facilities                    - Seed facility portfolio
//	GET    /company/sectors                       - Sector tag list
//	GET    /transition-risk/analysis              - Per-facility transition result
//	GET    /transition-risk/summary               - Portfolio transition summary
//	GET    /transition-risk/comparison            - Four-scenario comparison
//	GET    /physical-risk/assessment              - Per-facility physical result
//	POST   /physical-risk/simulate                - Physical result over posted facilities
//	GET    /esg/assessment                        - ESG disclosure-readiness score
//	GET    /esg/disclosure-data                   - Disclosure narrative + metrics
//	GET    /esg/reports/disclosure                - Multi-sheet tabular artefact
//	GET    /esg/frameworks                        - Framework list
//	POST   /partner/sessions                      - Create a partner session
//	GET    /partner/sessions/{id}                 - Session info
//	DELETE /partner/sessions/{id}                 - Delete session
//	GET    /partner/sessions/{id}/...              - Session-scoped variants of seven GETs above:
//	                                                 transition-risk analysis/summary/comparison,
//	                                                 physical-risk assessment, and esg assessment/
//	                                                 disclosure-data/reports/disclosure; the other
//	                                                 GET routes have no session-scoped form
package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/climatefin/riskcore/internal/api/http/responders"
	"github.com/climatefin/riskcore/internal/engine"
	"github.com/climatefin/riskcore/internal/logging"
	"github.com/climatefin/riskcore/internal/observability"
)

// RouterConfig holds the dependencies the router wires onto its
// routes.
type RouterConfig struct {
	Engine  *engine.Engine
	Logger  *slog.Logger
	Metrics *observability.MetricsHandler

	// AllowedOrigins configures narrow CORS per spec.md §1's framing of
	// CORS as part of the thin adapter, not a separate gateway.
	AllowedOrigins []string
}

// NewRouter builds the HTTP handler tree for cfg.
func NewRouter(cfg RouterConfig) http.Handler {
	if cfg.Logger == nil {
		cfg.Logger = slog.Default().With("component", "http-router")
	}

	r := &router{cfg: cfg, deps: newHandlerDependencies(cfg)}

	mux := http.NewServeMux()
	r.register(mux)

	var handler http.Handler = mux
	handler = corsMiddleware(cfg.AllowedOrigins)(handler)
	handler = logging.HTTPMiddleware(cfg.Logger)(handler)
	if cfg.Metrics != nil {
		handler = metricsMiddleware(cfg.Metrics)(handler)
	}
	return handler
}

// router encapsulates route registration.
type router struct {
	cfg  RouterConfig
	deps *handlerDependencies
}

func (r *router) register(mux *http.ServeMux) {
	mux.HandleFunc("GET /health", r.deps.health)

	mux.HandleFunc("GET /scenarios", r.deps.listScenarios)
	mux.HandleFunc("GET /scenarios/{id}", r.deps.getScenario)
	mux.HandleFunc("GET /company/facilities", r.deps.listFacilities)
	mux.HandleFunc("GET /company/sectors", r.deps.listSectors)

	mux.HandleFunc("GET /transition-risk/analysis", r.deps.transitionAnalysis)
	mux.HandleFunc("GET /transition-risk/summary", r.deps.transitionSummary)
	mux.HandleFunc("GET /transition-risk/comparison", r.deps.transitionComparison)

	mux.HandleFunc("GET /physical-risk/assessment", r.deps.physicalAssessment)
	mux.HandleFunc("POST /physical-risk/simulate", r.deps.physicalSimulate)

	mux.HandleFunc("GET /esg/assessment", r.deps.esgAssessment)
	mux.HandleFunc("GET /esg/disclosure-data", r.deps.esgDisclosureData)
	mux.HandleFunc("GET /esg/reports/disclosure", r.deps.esgDisclosureReport)
	mux.HandleFunc("GET /esg/frameworks", r.deps.listFrameworks)

	mux.HandleFunc("POST /partner/sessions", r.deps.createSession)
	mux.HandleFunc("GET /partner/sessions/{id}", r.deps.getSession)
	mux.HandleFunc("DELETE /partner/sessions/{id}", r.deps.deleteSession)

	// Session-scoped variants: the facility portfolio comes from the
	// session rather than a query parameter or request body.
	mux.HandleFunc("GET /partner/sessions/{id}/transition-risk/analysis", r.deps.sessionTransitionAnalysis)
	mux.HandleFunc("GET /partner/sessions/{id}/transition-risk/summary", r.deps.sessionTransitionSummary)
	mux.HandleFunc("GET /partner/sessions/{id}/transition-risk/comparison", r.deps.sessionTransitionComparison)
	mux.HandleFunc("GET /partner/sessions/{id}/physical-risk/assessment", r.deps.sessionPhysicalAssessment)
	mux.HandleFunc("GET /partner/sessions/{id}/esg/assessment", r.deps.sessionESGAssessment)
	mux.HandleFunc("GET /partner/sessions/{id}/esg/disclosure-data", r.deps.sessionESGDisclosureData)
	mux.HandleFunc("GET /partner/sessions/{id}/esg/reports/disclosure", r.deps.sessionESGDisclosureReport)
}

// corsMiddleware applies a narrow allow-list CORS policy, skipping the
// header entirely when no origin is configured.
func corsMiddleware(allowedOrigins []string) func(http.Handler) http.Handler {
	allowed := make(map[string]struct{}, len(allowedOrigins))
	for _, o := range allowedOrigins {
		allowed[o] = struct{}{}
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			origin := req.Header.Get("Origin")
			if _, ok := allowed[origin]; ok {
				responders.SetCORSHeaders(w, origin, []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions})
			}
			if req.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}
			next.ServeHTTP(w, req)
		})
	}
}

// metricsMiddleware records request latency and outcome per route
// pattern.
func metricsMiddleware(metrics *observability.MetricsHandler) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			start := time.Now()
			sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(sw, req)
			metrics.ObserveRequest(req.Pattern, statusClass(sw.status), time.Since(start))
		})
	}
}

type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}

func statusClass(status int) string {
	switch {
	case status >= 500:
		return "5xx"
	case status >= 400:
		return "4xx"
	case status >= 300:
		return "3xx"
	default:
		return "2xx"
	}
}
