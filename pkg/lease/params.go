// Package lease provides the pure calculation core for net effective rent:
// the lease parameter set, fit-out reconciliation, the NER waterfall chain,
// and scenario resolution against a baseline.
//
// Every function here is total over its input domain. Malformed or
// degenerate inputs (zero areas, rent-free periods exceeding the lease
// term) degrade to finite results rather than errors; see the numparse
// and mathutil packages for the guards applied on the way in.
package lease

import (
	"github.com/iwvelando/lease-ner/pkg/mathutil"
)

// FitOutMode selects which of the three fit-out fields is authoritative.
type FitOutMode string

const (
	// FitOutPerNLA drives fit-out from the per-NLA rate.
	FitOutPerNLA FitOutMode = "perNLA"

	// FitOutPerGLA drives fit-out from the per-GLA rate.
	FitOutPerGLA FitOutMode = "perGLA"

	// FitOutTotal drives fit-out from the absolute total.
	FitOutTotal FitOutMode = "total"
)

// ParseFitOutMode normalizes a mode string, defaulting to FitOutPerNLA
// for anything unrecognized.
func ParseFitOutMode(s string) FitOutMode {
	switch FitOutMode(s) {
	case FitOutPerGLA:
		return FitOutPerGLA
	case FitOutTotal:
		return FitOutTotal
	default:
		return FitOutPerNLA
	}
}

// ParameterSet holds the canonical numeric inputs for one lease. All
// fields are already parsed and guarded; areas, rents, months, and costs
// are non-negative and finite.
type ParameterSet struct {
	TenantLabel     string
	NLA             float64 // sqm, net lettable area
	AddonPct        float64 // percent of NLA added as common area
	Rent            float64 // currency/sqm/month headline rent
	DurationMonths  int
	RentFreeMonths  float64
	AgentFeeMonths  float64 // fee as a multiple of one month's gross rent
	UnforeseenTotal float64
	FitOutMode      FitOutMode
	FitOutPerNLA    float64
	FitOutPerGLA    float64
	FitOutTotal     float64
}

// GLA returns the gross lettable area: NLA plus the add-on share.
func (p *ParameterSet) GLA() float64 {
	return p.NLA + mathutil.ApplyPercentage(p.NLA, p.AddonPct)
}
