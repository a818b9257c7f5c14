package lease

import (
	"github.com/iwvelando/lease-ner/pkg/constants"
	"github.com/iwvelando/lease-ner/pkg/mathutil"
)

// Chain holds one full NER computation: the geometry, the gross income,
// each cost block, and the four progressive NER figures.
type Chain struct {
	GLA       float64
	Months    float64 // billable months after the rent-free period
	Gross     float64 // contracted income over the billable term
	TotalFit  float64
	AgentFees float64
	Denom     float64 // amortization base: full duration * GLA, floored
	NER1      float64 // after rent-free
	NER2      float64 // after fit-out
	NER3      float64 // after agent fees
	NER4      float64 // after unforeseen costs; the reported NER
}

// ComputeChain evaluates the NER waterfall for one parameter set.
//
// The fit-out total is resolved from the field FitOutMode marks as
// authoritative rather than from the reconciled copies, so a chain
// computed between a field edit and its reconciliation cannot read a
// stale derived value.
//
// Gross income covers only the billable months, while the denominator
// amortizes over the full duration; rent-free savings are spread across
// the whole term. NER values may legitimately go negative when costs
// exceed income, and are never NaN or infinite.
func ComputeChain(p ParameterSet) Chain {
	gla := p.GLA()
	months := mathutil.Max(0, float64(p.DurationMonths)-p.RentFreeMonths)
	gross := p.Rent * gla * months

	var totalFit float64
	switch p.FitOutMode {
	case FitOutPerGLA:
		totalFit = p.FitOutPerGLA * gla
	case FitOutTotal:
		totalFit = p.FitOutTotal
	default:
		totalFit = p.FitOutPerNLA * p.NLA
	}

	agentFees := p.AgentFeeMonths * p.Rent * gla
	denom := mathutil.Max(constants.DenominatorFloor, float64(p.DurationMonths)*gla)

	return Chain{
		GLA:       gla,
		Months:    months,
		Gross:     gross,
		TotalFit:  totalFit,
		AgentFees: agentFees,
		Denom:     denom,
		NER1:      gross / denom,
		NER2:      (gross - totalFit) / denom,
		NER3:      (gross - totalFit - agentFees) / denom,
		NER4:      (gross - totalFit - agentFees - p.UnforeseenTotal) / denom,
	}
}

// DeviationFromHeadline returns the percent deviation of a NER figure
// from the headline rent. No deviation is defined against a zero base,
// so ok is false when rent is not positive.
func DeviationFromHeadline(ner, rent float64) (float64, bool) {
	if rent <= 0 {
		return 0, false
	}
	return mathutil.CalculatePercentage(ner-rent, rent), true
}
