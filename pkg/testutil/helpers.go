// Package testutil provides common utility functions for testing.
package testutil

import (
	"github.com/iwvelando/lease-ner/internal/report"
	"github.com/iwvelando/lease-ner/pkg/lease"
)

// BaselineParams returns the reference lease used throughout the tests:
// 1000 sqm NLA with a 5% add-on, 15/sqm/month over 60 months with 5
// months rent-free, a 2-month agent fee, and 300/sqm fit-out.
func BaselineParams() lease.ParameterSet {
	return lease.ParameterSet{
		TenantLabel:    "Acme Corp",
		NLA:            1000,
		AddonPct:       5,
		Rent:           15,
		DurationMonths: 60,
		RentFreeMonths: 5,
		AgentFeeMonths: 2,
		FitOutMode:     lease.FitOutPerNLA,
		FitOutPerNLA:   300,
	}
}

// FindScenario finds a scenario result by name in the results slice.
// Returns a pointer to the result if found, nil otherwise.
func FindScenario(results []report.ScenarioResult, name string) *report.ScenarioResult {
	for i := range results {
		if results[i].Name == name {
			return &results[i]
		}
	}
	return nil
}
