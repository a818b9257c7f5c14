// Package validation provides common validation utilities.
package validation

import (
	"fmt"
	"sort"

	"github.com/iwvelando/lease-ner/pkg/constants"
	"github.com/iwvelando/lease-ner/pkg/lease"
)

// ValidateOutputFormat checks if the output format is one of the supported formats.
func ValidateOutputFormat(format string) error {
	if format != constants.OutputFormatPretty && format != constants.OutputFormatCSV {
		return fmt.Errorf("expected output format of %s or %s, got %s",
			constants.OutputFormatPretty, constants.OutputFormatCSV, format)
	}
	return nil
}

var knownOverrideFields = map[string]struct{}{
	lease.FieldNLA:             {},
	lease.FieldAddonPct:        {},
	lease.FieldRent:            {},
	lease.FieldDurationMonths:  {},
	lease.FieldRentFreeMonths:  {},
	lease.FieldAgentFeeMonths:  {},
	lease.FieldUnforeseenTotal: {},
	lease.FieldFitOutPerNLA:    {},
}

// LeaseWarnings inspects a guarded parameter set plus the configured
// scenario names and their override keys, and returns human-readable
// warnings. Nothing here is fatal: the engine clamps every one of these
// conditions to a finite result, the warnings just surface them.
func LeaseWarnings(params lease.ParameterSet, scenarioNames []string, overrideKeys map[string][]string) []string {
	var warnings []string

	if params.RentFreeMonths > float64(params.DurationMonths) {
		warnings = append(warnings,
			fmt.Sprintf("Rent-free period (%.1f months) exceeds lease duration (%d months); billable term clamps to zero",
				params.RentFreeMonths, params.DurationMonths))
	}
	if params.NLA == 0 {
		warnings = append(warnings, "NLA is zero; all NER figures degrade to zero")
	}
	if params.DurationMonths == 0 {
		warnings = append(warnings, "Lease duration is zero; all NER figures degrade to zero")
	}

	if len(scenarioNames) > constants.MaxScenarios {
		warnings = append(warnings,
			fmt.Sprintf("%d scenarios configured but only %d comparison slots are displayed",
				len(scenarioNames), constants.MaxScenarios))
	}

	for _, name := range scenarioNames {
		keys := append([]string(nil), overrideKeys[name]...)
		sort.Strings(keys)
		for _, key := range keys {
			if _, ok := knownOverrideFields[key]; !ok {
				warnings = append(warnings,
					fmt.Sprintf("Scenario '%s' overrides unknown field '%s'; it will be ignored", name, key))
			}
		}
	}

	return warnings
}
