package lease

import (
	"github.com/iwvelando/lease-ner/pkg/constants"
	"github.com/iwvelando/lease-ner/pkg/mathutil"
)

// Reconcile recomputes the two non-authoritative fit-out fields from the
// field selected by FitOutMode so that
//
//	FitOutTotal == FitOutPerNLA * NLA == FitOutPerGLA * GLA
//
// holds within constants.Epsilon. A derived field is only written when it
// differs from its stored value by more than Epsilon, which keeps the
// reconciler from feeding its own writes back into another update cycle.
// It must be run after every change to NLA, AddonPct, FitOutMode, or any
// fit-out field, and is idempotent: a second run with unchanged inputs
// performs zero writes.
//
// The returned count is the number of fields actually rewritten.
func Reconcile(p *ParameterSet) int {
	gla := p.GLA()

	var perNLA, perGLA, total float64
	switch p.FitOutMode {
	case FitOutPerGLA:
		perGLA = p.FitOutPerGLA
		total = perGLA * gla
		perNLA = mathutil.SafeDivide(total, p.NLA)
	case FitOutTotal:
		total = p.FitOutTotal
		perNLA = mathutil.SafeDivide(total, p.NLA)
		perGLA = mathutil.SafeDivide(total, gla)
	default:
		perNLA = p.FitOutPerNLA
		total = perNLA * p.NLA
		perGLA = mathutil.SafeDivide(total, gla)
	}

	writes := 0
	if !mathutil.WithinTolerance(p.FitOutPerNLA, perNLA, constants.Epsilon) {
		p.FitOutPerNLA = perNLA
		writes++
	}
	if !mathutil.WithinTolerance(p.FitOutPerGLA, perGLA, constants.Epsilon) {
		p.FitOutPerGLA = perGLA
		writes++
	}
	if !mathutil.WithinTolerance(p.FitOutTotal, total, constants.Epsilon) {
		p.FitOutTotal = total
		writes++
	}
	return writes
}
