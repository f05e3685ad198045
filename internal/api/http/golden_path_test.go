// Package http provides golden-path integration tests for the complete
// scenario-selection to disclosure-report flow, exercised over a real
// httptest server rather than calling handlers directly.
package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/climatefin/riskcore/internal/engine"
	"github.com/climatefin/riskcore/internal/session"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	e := engine.New(engine.Config{Sessions: session.NewStore()})
	router := NewRouter(RouterConfig{Engine: e})
	return httptest.NewServer(router)
}

// TestGoldenPathPartnerSession is spec.md §8 scenario S6: create a
// partner session with one facility, analyse it, delete it, and
// confirm it is gone.
func TestGoldenPathPartnerSession(t *testing.T) {
	srv := newTestServer(t)
	defer srv.Close()

	t.Log("Step 1: create a partner session with one facility")
	body, _ := json.Marshal(map[string]any{
		"company_name": "Acme Steel",
		"facilities": []map[string]any{{
			"id": "f1", "name": "Plant One", "sector": "steel",
			"latitude": 37.5, "longitude": 127.0,
			"scope1": 1e6, "scope2": 2e5, "scope3": 5e5,
			"revenue": 1e9, "ebitda": 1e8, "asset_value": 2e9,
		}},
	})
	resp, err := http.Post(srv.URL+"/partner/sessions", "application/json", bytes.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var created map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&created))
	id := created["partner_id"]
	assert.Len(t, id, 36)

	t.Log("Step 2: analyse the session's one facility")
	resp, err = http.Get(srv.URL + "/partner/sessions/" + id + "/transition-risk/analysis?scenario=net_zero_2050")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var result struct {
		Facilities []json.RawMessage `json:"Facilities"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	assert.Len(t, result.Facilities, 1)

	t.Log("Step 3: delete the session")
	req, _ := http.NewRequest(http.MethodDelete, srv.URL+"/partner/sessions/"+id, nil)
	resp, err = http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	t.Log("Step 4: subsequent get returns 404")
	resp, err = http.Get(srv.URL + "/partner/sessions/" + id)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

// TestGoldenPathDisclosureReport exercises the unscoped disclosure
// report endpoint over the seed portfolio.
func TestGoldenPathDisclosureReport(t *testing.T) {
	srv := newTestServer(t)
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/esg/reports/disclosure?framework=tcfd&scenario=net_zero_2050&year=2030")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var bundle map[string][][]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&bundle))
	assert.Contains(t, bundle, "overview")
	assert.Contains(t, bundle, "gap_analysis")
}

// TestInvalidScenarioReturnsBadRequest covers spec.md §7's error
// taxonomy: an unrecognised scenario id maps to HTTP 400.
func TestInvalidScenarioReturnsBadRequest(t *testing.T) {
	srv := newTestServer(t)
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/transition-risk/analysis?scenario=not_a_real_scenario")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

// TestUnknownSessionReturnsNotFound covers the indistinguishable
// unknown-vs-expired wording of spec.md §4.5 invariant (iv).
func TestUnknownSessionReturnsNotFound(t *testing.T) {
	srv := newTestServer(t)
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/partner/sessions/does-not-exist")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
