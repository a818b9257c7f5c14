package lease

import (
	"math"
	"testing"
)

func TestResolveScenarioOverrideIsolation(t *testing.T) {
	baseline := workedExample()
	baselineChain := ComputeChain(baseline)

	resolved := ResolveScenario(baseline, Overrides{FieldRent: 20})

	expected := baseline
	expected.Rent = 20
	expectedChain := ComputeChain(expected)
	if math.Abs(resolved.NER4-expectedChain.NER4) > 1e-9 {
		t.Errorf("scenario ner4 = %v, expected %v", resolved.NER4, expectedChain.NER4)
	}

	// The baseline itself must be untouched by resolution.
	if baseline.Rent != 15 {
		t.Errorf("baseline rent mutated to %v", baseline.Rent)
	}
	if after := ComputeChain(baseline); math.Abs(after.NER4-baselineChain.NER4) > 1e-12 {
		t.Errorf("baseline ner4 changed from %v to %v", baselineChain.NER4, after.NER4)
	}
}

func TestResolveScenarioInheritsBaseline(t *testing.T) {
	baseline := workedExample()
	resolved := ResolveScenario(baseline, Overrides{})

	expected := ComputeChain(baseline)
	if math.Abs(resolved.NER4-expected.NER4) > 1e-9 {
		t.Errorf("empty overrides ner4 = %v, expected baseline %v", resolved.NER4, expected.NER4)
	}
}

func TestResolveScenarioAllFields(t *testing.T) {
	baseline := workedExample()
	overrides := Overrides{
		FieldNLA:             2000,
		FieldAddonPct:        10,
		FieldRent:            18,
		FieldDurationMonths:  36,
		FieldRentFreeMonths:  2,
		FieldAgentFeeMonths:  1,
		FieldUnforeseenTotal: 5000,
		FieldFitOutPerNLA:    250,
	}

	resolved := ResolveScenario(baseline, overrides)

	expected := ComputeChain(ParameterSet{
		NLA:             2000,
		AddonPct:        10,
		Rent:            18,
		DurationMonths:  36,
		RentFreeMonths:  2,
		AgentFeeMonths:  1,
		UnforeseenTotal: 5000,
		FitOutMode:      FitOutPerNLA,
		FitOutPerNLA:    250,
	})

	if math.Abs(resolved.NER4-expected.NER4) > 1e-9 {
		t.Errorf("ner4 = %v, expected %v", resolved.NER4, expected.NER4)
	}
}

func TestResolveScenarioFitOutAlwaysPerNLA(t *testing.T) {
	// Baseline driven by absolute total; its reconciled per-NLA rate is 500.
	baseline := ParameterSet{
		NLA:            1000,
		AddonPct:       5,
		Rent:           15,
		DurationMonths: 60,
		FitOutMode:     FitOutTotal,
		FitOutTotal:    500000,
	}
	Reconcile(&baseline)

	// Doubling the NLA in a scenario must scale fit-out with it, because
	// scenarios always apply perNLA * nla, never the baseline's total.
	resolved := ResolveScenario(baseline, Overrides{FieldNLA: 2000})
	if math.Abs(resolved.TotalFit-1000000) > 1e-6 {
		t.Errorf("scenario totalFit = %v, expected 1000000", resolved.TotalFit)
	}
}

func TestResolveScenarioIgnoresUnknownKeys(t *testing.T) {
	baseline := workedExample()
	expected := ComputeChain(baseline)

	resolved := ResolveScenario(baseline, Overrides{"bogusField": 99, "fitOutTotal": 1})
	if math.Abs(resolved.NER4-expected.NER4) > 1e-9 {
		t.Errorf("unknown keys changed ner4 from %v to %v", expected.NER4, resolved.NER4)
	}
}
