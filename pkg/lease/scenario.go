package lease

import "strings"

// Override field names accepted by ResolveScenario. Keys outside this set
// are ignored, matching the shallow-merge contract for saved projects.
const (
	FieldNLA             = "nla"
	FieldAddonPct        = "addonPct"
	FieldRent            = "rent"
	FieldDurationMonths  = "durationMonths"
	FieldRentFreeMonths  = "rentFreeMonths"
	FieldAgentFeeMonths  = "agentFeeMonths"
	FieldUnforeseenTotal = "unforeseenTotal"
	FieldFitOutPerNLA    = "fitOutPerNLA"
)

var canonicalFields = map[string]string{
	strings.ToLower(FieldNLA):             FieldNLA,
	strings.ToLower(FieldAddonPct):        FieldAddonPct,
	strings.ToLower(FieldRent):            FieldRent,
	strings.ToLower(FieldDurationMonths):  FieldDurationMonths,
	strings.ToLower(FieldRentFreeMonths):  FieldRentFreeMonths,
	strings.ToLower(FieldAgentFeeMonths):  FieldAgentFeeMonths,
	strings.ToLower(FieldUnforeseenTotal): FieldUnforeseenTotal,
	strings.ToLower(FieldFitOutPerNLA):    FieldFitOutPerNLA,
}

// CanonicalField maps a case-insensitive override key to its canonical
// field name. Config loaders lowercase YAML keys, so override keys must
// be matched without case before resolution.
func CanonicalField(key string) (string, bool) {
	name, ok := canonicalFields[strings.ToLower(key)]
	return name, ok
}

// Overrides is a sparse diff against the baseline parameter set: an
// absent key means "inherit baseline".
type Overrides map[string]float64

// Scenario is an identifier plus a sparse set of parameter overrides. A
// scenario never owns a full parameter set.
type Scenario struct {
	Name      string
	Overrides Overrides
}

// ResolveScenario merges the scenario's overrides onto the baseline and
// recomputes the NER chain. The baseline is passed by value and is never
// mutated.
//
// Scenario fit-out is always fitOutPerNLA * nla using the effective
// values, regardless of the baseline's fit-out mode. Scenarios only
// support per-NLA fit-out entry; this is a deliberate simplification of
// the baseline engine.
func ResolveScenario(baseline ParameterSet, overrides Overrides) Chain {
	effective := baseline
	effective.FitOutMode = FitOutPerNLA

	for key, value := range overrides {
		switch key {
		case FieldNLA:
			effective.NLA = value
		case FieldAddonPct:
			effective.AddonPct = value
		case FieldRent:
			effective.Rent = value
		case FieldDurationMonths:
			effective.DurationMonths = int(value)
		case FieldRentFreeMonths:
			effective.RentFreeMonths = value
		case FieldAgentFeeMonths:
			effective.AgentFeeMonths = value
		case FieldUnforeseenTotal:
			effective.UnforeseenTotal = value
		case FieldFitOutPerNLA:
			effective.FitOutPerNLA = value
		}
	}

	return ComputeChain(effective)
}
