// Package server exposes the calculation engine over HTTP for the form
// UI: one endpoint evaluating raw form inputs, one importing saved
// project blobs, and a version probe.
package server

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	json "github.com/goccy/go-json"
	"go.uber.org/zap"

	"github.com/iwvelando/lease-ner/internal/config"
	"github.com/iwvelando/lease-ner/internal/project"
	"github.com/iwvelando/lease-ner/internal/report"
	"github.com/iwvelando/lease-ner/pkg/constants"
	"github.com/iwvelando/lease-ner/pkg/lease"
	"github.com/iwvelando/lease-ner/pkg/output"
)

type handler struct {
	logger      *zap.Logger
	maxBodySize int64
	version     string
}

// NewHandler constructs the HTTP handler that serves the evaluation API.
func NewHandler(logger *zap.Logger, maxBodySize int64, version string) http.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}

	if maxBodySize <= 0 {
		maxBodySize = constants.DefaultMaxBodySizeBytes
	}

	trimmedVersion := strings.TrimSpace(version)
	if trimmedVersion == "" {
		trimmedVersion = "dev"
	}

	h := &handler{logger: logger, maxBodySize: maxBodySize, version: trimmedVersion}

	mux := http.NewServeMux()

	// Evaluation endpoint for form-driven updates
	mux.HandleFunc("/api/evaluate", h.handleEvaluate)

	// Saved-project import endpoint
	mux.HandleFunc("/api/project/import", h.handleProjectImport)

	// Version endpoint for UI metadata
	mux.HandleFunc("/api/version", h.handleVersion)

	return mux
}

type evaluateResponse struct {
	Tenant    string           `json:"tenant,omitempty"`
	Chain     chainPayload     `json:"chain"`
	Waterfall []stepPayload    `json:"waterfall"`
	Scenarios []scenarioResult `json:"scenarios,omitempty"`
	Warnings  []string         `json:"warnings,omitempty"`
	CSV       string           `json:"csv"`
	Duration  string           `json:"duration"`
}

type chainPayload struct {
	GLA          float64  `json:"gla"`
	Months       float64  `json:"months"`
	Gross        float64  `json:"gross"`
	TotalFit     float64  `json:"totalFit"`
	AgentFees    float64  `json:"agentFees"`
	NER1         float64  `json:"ner1"`
	NER2         float64  `json:"ner2"`
	NER3         float64  `json:"ner3"`
	NER4         float64  `json:"ner4"`
	DeviationPct *float64 `json:"deviationPct,omitempty"`
}

type stepPayload struct {
	Label      string  `json:"label"`
	Baseline   float64 `json:"baseline"`
	Delta      float64 `json:"delta"`
	IsTotal    bool    `json:"isTotal"`
	ShowsLabel bool    `json:"showsLabel"`
}

type scenarioResult struct {
	Name         string   `json:"name"`
	NER          float64  `json:"ner"`
	DeviationPct *float64 `json:"deviationPct,omitempty"`
}

func (h *handler) handleEvaluate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	start := time.Now()
	blob, ok := h.decodeBody(w, r, "server.handleEvaluate")
	if !ok {
		return
	}

	conf := &config.Configuration{Lease: project.DefaultLease()}
	project.MergeLease(&conf.Lease, blob)
	conf.Scenarios = project.ExtractScenarios(blob["scenarios"])

	h.runEvaluation(w, conf, start, "server.handleEvaluate")
}

func (h *handler) handleProjectImport(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	start := time.Now()
	blob, ok := h.decodeBody(w, r, "server.handleProjectImport")
	if !ok {
		return
	}

	encoded, _ := blob["project"].(string)
	if encoded == "" {
		h.respondError(w, http.StatusBadRequest, "missing project blob", "server.handleProjectImport")
		return
	}

	conf, err := project.Decode(encoded)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, err.Error(), "server.handleProjectImport")
		return
	}

	h.runEvaluation(w, conf, start, "server.handleProjectImport")
}

func (h *handler) handleVersion(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]string{
		"version": h.version,
	})
}

func (h *handler) decodeBody(w http.ResponseWriter, r *http.Request, op string) (map[string]interface{}, bool) {
	if h.maxBodySize > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, h.maxBodySize)
	}

	var payload map[string]interface{}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			h.respondError(w, http.StatusRequestEntityTooLarge,
				fmt.Sprintf("request exceeds limit of %d bytes", h.maxBodySize), op)
			return nil, false
		}
		h.respondError(w, http.StatusBadRequest, fmt.Sprintf("failed to decode request: %v", err), op)
		return nil, false
	}
	if payload == nil {
		payload = make(map[string]interface{})
	}
	return payload, true
}

func (h *handler) runEvaluation(w http.ResponseWriter, conf *config.Configuration, start time.Time, op string) {
	rep, err := report.Evaluate(h.logger, *conf)
	if err != nil {
		h.respondError(w, http.StatusInternalServerError, fmt.Sprintf("failed to evaluate lease: %v", err), op)
		return
	}

	elapsed := time.Since(start)
	response := evaluateResponse{
		Tenant:    rep.Params.TenantLabel,
		Chain:     buildChainPayload(rep),
		Waterfall: buildStepPayloads(rep.Waterfall),
		Scenarios: buildScenarioResults(rep),
		Warnings:  rep.Warnings,
		CSV:       output.CsvString(rep),
		Duration:  elapsed.String(),
	}

	h.logger.Info("lease evaluated",
		zap.String("op", op),
		zap.Float64("ner", rep.Baseline.NER4),
		zap.Int("scenarios", len(response.Scenarios)),
		zap.Duration("duration", elapsed),
	)

	h.writeJSON(w, http.StatusOK, response)
}

func buildChainPayload(rep *report.Report) chainPayload {
	payload := chainPayload{
		GLA:       rep.Baseline.GLA,
		Months:    rep.Baseline.Months,
		Gross:     rep.Baseline.Gross,
		TotalFit:  rep.Baseline.TotalFit,
		AgentFees: rep.Baseline.AgentFees,
		NER1:      rep.Baseline.NER1,
		NER2:      rep.Baseline.NER2,
		NER3:      rep.Baseline.NER3,
		NER4:      rep.Baseline.NER4,
	}
	if deviation, ok := rep.Deviation(rep.Baseline.NER4); ok {
		payload.DeviationPct = &deviation
	}
	return payload
}

func buildStepPayloads(steps []lease.WaterfallStep) []stepPayload {
	payloads := make([]stepPayload, 0, len(steps))
	for _, step := range steps {
		payloads = append(payloads, stepPayload{
			Label:      step.Label,
			Baseline:   step.Baseline,
			Delta:      step.Delta,
			IsTotal:    step.IsTotal,
			ShowsLabel: step.Significant(),
		})
	}
	return payloads
}

func buildScenarioResults(rep *report.Report) []scenarioResult {
	if len(rep.Scenarios) == 0 {
		return nil
	}

	results := make([]scenarioResult, 0, len(rep.Scenarios))
	for _, scenario := range rep.Scenarios {
		result := scenarioResult{Name: scenario.Name, NER: scenario.Chain.NER4}
		if deviation, ok := rep.Deviation(scenario.Chain.NER4); ok {
			d := deviation
			result.DeviationPct = &d
		}
		results = append(results, result)
	}
	return results
}

func (h *handler) respondError(w http.ResponseWriter, status int, msg string, op string) {
	h.logger.Error("evaluation request failed",
		zap.String("op", op),
		zap.Int("status", status),
		zap.String("error", msg),
	)

	h.writeJSON(w, status, map[string]string{"error": msg})
}

func (h *handler) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.Error("failed to write JSON response", zap.Error(err))
	}
}
