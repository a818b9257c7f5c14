// Package report coordinates one full evaluation: parse and guard the
// inputs, reconcile the fit-out fields, compute the baseline NER chain,
// decompose it into waterfall steps, and resolve each comparison
// scenario against the same baseline snapshot.
package report

import (
	"github.com/iwvelando/lease-ner/internal/config"
	"github.com/iwvelando/lease-ner/pkg/lease"
	"go.uber.org/zap"
)

// ScenarioResult pairs a scenario name with its recomputed chain. NER4
// of the chain is the comparable figure.
type ScenarioResult struct {
	Name  string
	Chain lease.Chain
}

// Report holds everything a caller needs to render one evaluation.
type Report struct {
	Params    lease.ParameterSet // reconciled baseline inputs
	Baseline  lease.Chain
	Waterfall []lease.WaterfallStep
	Scenarios []ScenarioResult
	Warnings  []string
}

// Deviation returns the percent deviation of a NER figure from the
// baseline headline rent, with ok=false when no headline is set.
func (r *Report) Deviation(ner float64) (float64, bool) {
	return lease.DeviationFromHeadline(ner, r.Params.Rent)
}

// Evaluate runs the engine over a loaded configuration. The steps always
// execute in the same order: reconcile, chain, waterfall, then each
// scenario independently against the reconciled baseline. Every input
// has already been degraded to a finite value, so evaluation cannot
// fail; the error return is reserved for future coordination steps and
// is currently always nil.
func Evaluate(logger *zap.Logger, conf config.Configuration) (*Report, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	params := conf.Lease.ToParameterSet()
	if writes := lease.Reconcile(&params); writes > 0 {
		logger.Debug("reconciled fit-out fields",
			zap.String("op", "report.Evaluate"),
			zap.Int("writes", writes),
		)
	}

	chain := lease.ComputeChain(params)
	result := &Report{
		Params:    params,
		Baseline:  chain,
		Waterfall: lease.BuildWaterfall(chain, params.Rent),
		Warnings:  conf.ValidateConfiguration(),
	}

	for _, scenario := range conf.ToScenarios() {
		resolved := lease.ResolveScenario(params, scenario.Overrides)
		logger.Debug("resolved scenario",
			zap.String("op", "report.Evaluate"),
			zap.String("scenario", scenario.Name),
			zap.Int("overrides", len(scenario.Overrides)),
			zap.Float64("ner", resolved.NER4),
		)
		result.Scenarios = append(result.Scenarios, ScenarioResult{
			Name:  scenario.Name,
			Chain: resolved,
		})
	}

	logger.Info("evaluation complete",
		zap.String("op", "report.Evaluate"),
		zap.Float64("ner", chain.NER4),
		zap.Int("scenarios", len(result.Scenarios)),
	)

	return result, nil
}
