package lease

import (
	"math"

	"github.com/iwvelando/lease-ner/pkg/constants"
	"github.com/iwvelando/lease-ner/pkg/mathutil"
)

// Waterfall step labels, in chart order.
const (
	StepHeadline = "Headline"
	StepRentFree = "RF"
	StepFitOut   = "FO"
	StepAgentFee = "AF"
	StepUnf      = "UC"
	StepFinal    = "Final NER"
)

// WaterfallStep is one bar of the NER decomposition chart. Baseline is
// the cumulative value before the step, Delta the signed change it
// contributes, and IsTotal marks the two absolute anchors (headline rent
// and final NER).
type WaterfallStep struct {
	Label    string
	Baseline float64
	Delta    float64
	IsTotal  bool
}

// Significant reports whether the step's delta is large enough to render
// a value label: its two-decimal rounding must reach the display
// threshold. Anchors always render.
func (s WaterfallStep) Significant() bool {
	if s.IsTotal {
		return true
	}
	return math.Abs(mathutil.Round(s.Delta)) >= constants.DisplayThreshold
}

// BuildWaterfall decomposes a computed chain into the six ordered chart
// steps. The running baseline is folded over the full-precision deltas,
// never recomputed per step, so the anchors and intermediate bars cannot
// drift apart through rounding.
func BuildWaterfall(chain Chain, rent float64) []WaterfallStep {
	steps := make([]WaterfallStep, 0, 6)
	steps = append(steps, WaterfallStep{Label: StepHeadline, Delta: rent, IsTotal: true})

	running := rent
	for _, part := range []struct {
		label string
		delta float64
	}{
		{StepRentFree, chain.NER1 - rent},
		{StepFitOut, chain.NER2 - chain.NER1},
		{StepAgentFee, chain.NER3 - chain.NER2},
		{StepUnf, chain.NER4 - chain.NER3},
	} {
		steps = append(steps, WaterfallStep{Label: part.label, Baseline: running, Delta: part.delta})
		running += part.delta
	}

	steps = append(steps, WaterfallStep{Label: StepFinal, Delta: running, IsTotal: true})
	return steps
}
