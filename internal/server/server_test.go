package server

import (
	"math"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	json "github.com/goccy/go-json"
)

func postJSON(t *testing.T, handler http.Handler, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func decodeResponse(t *testing.T, rec *httptest.ResponseRecorder) evaluateResponse {
	t.Helper()
	var resp evaluateResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	return resp
}

func TestHandleEvaluate(t *testing.T) {
	handler := NewHandler(nil, 0, "test")

	body := `{
		"tenantLabel": "Acme Corp",
		"nla": "1,000",
		"addonPct": 5,
		"rent": "15",
		"durationMonths": 60,
		"rentFreeMonths": 5,
		"agentFeeMonths": 2,
		"fitOutMode": "perNLA",
		"fitOutPerNLA": 300,
		"scenarios": [{"name": "Optimistic", "overrides": {"rent": "20"}}]
	}`

	rec := postJSON(t, handler, "/api/evaluate", body)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("content type = %q", ct)
	}

	resp := decodeResponse(t, rec)
	if resp.Tenant != "Acme Corp" {
		t.Errorf("tenant = %q", resp.Tenant)
	}
	if math.Abs(resp.Chain.GLA-1050) > 1e-9 {
		t.Errorf("gla = %v, expected 1050", resp.Chain.GLA)
	}
	if math.Abs(resp.Chain.NER4-534750.0/63000.0) > 1e-9 {
		t.Errorf("ner4 = %v, expected %v", resp.Chain.NER4, 534750.0/63000.0)
	}
	if resp.Chain.DeviationPct == nil {
		t.Error("expected a deviation with a nonzero headline")
	}
	if len(resp.Waterfall) != 6 {
		t.Fatalf("expected 6 waterfall steps, got %d", len(resp.Waterfall))
	}
	if !resp.Waterfall[0].IsTotal || !resp.Waterfall[5].IsTotal {
		t.Error("waterfall anchors missing")
	}
	if len(resp.Scenarios) != 1 || resp.Scenarios[0].Name != "Optimistic" {
		t.Fatalf("scenarios = %+v", resp.Scenarios)
	}
	if resp.Scenarios[0].NER <= resp.Chain.NER4 {
		t.Error("higher rent scenario should beat the baseline NER")
	}
	if !strings.HasPrefix(resp.CSV, `"kind","label","value"`) {
		t.Errorf("csv payload missing header: %q", resp.CSV)
	}
	if resp.Duration == "" {
		t.Error("duration missing")
	}
}

func TestHandleEvaluateEmptyBody(t *testing.T) {
	handler := NewHandler(nil, 0, "test")

	// An empty object is a valid form state: everything defaults to zero
	// and the engine degrades to finite zeros instead of failing.
	rec := postJSON(t, handler, "/api/evaluate", `{}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	resp := decodeResponse(t, rec)
	if resp.Chain.NER4 != 0 {
		t.Errorf("ner4 = %v, expected 0 for empty inputs", resp.Chain.NER4)
	}
	if len(resp.Warnings) == 0 {
		t.Error("expected degenerate-input warnings")
	}
}

func TestHandleEvaluateMethodNotAllowed(t *testing.T) {
	handler := NewHandler(nil, 0, "test")

	req := httptest.NewRequest(http.MethodGet, "/api/evaluate", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("status = %d, expected 405", rec.Code)
	}
}

func TestHandleEvaluateInvalidJSON(t *testing.T) {
	handler := NewHandler(nil, 0, "test")

	rec := postJSON(t, handler, "/api/evaluate", `{"nla": `)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, expected 400", rec.Code)
	}
}

func TestHandleEvaluateBodyTooLarge(t *testing.T) {
	handler := NewHandler(nil, 16, "test")

	rec := postJSON(t, handler, "/api/evaluate", `{"tenantLabel": "this body exceeds sixteen bytes"}`)
	if rec.Code != http.StatusRequestEntityTooLarge {
		t.Errorf("status = %d, expected 413", rec.Code)
	}
}

func TestHandleProjectImport(t *testing.T) {
	handler := NewHandler(nil, 0, "test")

	blob := `{"tenantLabel": "Acme Corp", "nla": "1000", "addonPct": "5", "rent": "15",
		"durationMonths": "60", "rentFreeMonths": "5", "agentFeeMonths": "2",
		"fitOutMode": "perNLA", "fitOutPerNLA": "300"}`
	body, err := json.Marshal(map[string]string{"project": url.QueryEscape(blob)})
	if err != nil {
		t.Fatalf("failed to build request: %v", err)
	}

	rec := postJSON(t, handler, "/api/project/import", string(body))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	resp := decodeResponse(t, rec)
	if resp.Tenant != "Acme Corp" {
		t.Errorf("tenant = %q", resp.Tenant)
	}
	if math.Abs(resp.Chain.NER4-534750.0/63000.0) > 1e-9 {
		t.Errorf("ner4 = %v, expected %v", resp.Chain.NER4, 534750.0/63000.0)
	}
}

func TestHandleProjectImportMissingBlob(t *testing.T) {
	handler := NewHandler(nil, 0, "test")

	rec := postJSON(t, handler, "/api/project/import", `{}`)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, expected 400", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "missing project blob") {
		t.Errorf("unexpected error body %q", rec.Body.String())
	}
}

func TestHandleProjectImportBadBlob(t *testing.T) {
	handler := NewHandler(nil, 0, "test")

	body, _ := json.Marshal(map[string]string{"project": "%zz"})
	rec := postJSON(t, handler, "/api/project/import", string(body))
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, expected 400", rec.Code)
	}
}

func TestHandleVersion(t *testing.T) {
	handler := NewHandler(nil, 0, "1.2.3")

	req := httptest.NewRequest(http.MethodGet, "/api/version", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var payload map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
		t.Fatalf("failed to decode version response: %v", err)
	}
	if payload["version"] != "1.2.3" {
		t.Errorf("version = %q", payload["version"])
	}
}

func TestHandleVersionDefaultsToDev(t *testing.T) {
	handler := NewHandler(nil, 0, "   ")

	req := httptest.NewRequest(http.MethodGet, "/api/version", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	var payload map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
		t.Fatalf("failed to decode version response: %v", err)
	}
	if payload["version"] != "dev" {
		t.Errorf("version = %q, expected dev", payload["version"])
	}
}
