// Package output provides utilities for formatting and displaying
// evaluation results. The engine itself never formats; everything
// display-related lives here.
package output

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/iwvelando/lease-ner/internal/report"
	"github.com/iwvelando/lease-ner/pkg/format"
)

// PrettyFormat outputs a human-readable rather than machine-readable table.
func PrettyFormat(rep *report.Report) {
	if rep == nil {
		return
	}

	p := message.NewPrinter(language.English)

	label := rep.Params.TenantLabel
	if label == "" {
		label = "baseline"
	}
	fmt.Printf("--- Net effective rent for %s ---\n", label)
	_, _ = p.Printf("GLA: %.2f sqm | Billable months: %.1f | Gross rent: %s\n",
		rep.Baseline.GLA, rep.Baseline.Months, format.Currency(rep.Baseline.Gross))
	_, _ = p.Printf("Costs: fit-out %s | agent fees %s | unforeseen %s\n",
		format.Currency(rep.Baseline.TotalFit),
		format.Currency(rep.Baseline.AgentFees),
		format.Currency(rep.Params.UnforeseenTotal))

	fmt.Printf("\nStep      | Value    | Delta\n")
	fmt.Printf("____      | _____    | _____\n")
	for _, step := range rep.Waterfall {
		if step.IsTotal {
			fmt.Printf("%-9s | %8s |\n", step.Label, format.Rate(step.Delta))
			continue
		}
		delta := ""
		if step.Significant() {
			delta = format.Rate(step.Delta)
		}
		fmt.Printf("%-9s | %8s | %s\n", step.Label, format.Rate(step.Baseline+step.Delta), delta)
	}

	fmt.Printf("\nScenario comparison:\n")
	printComparisonRow(rep, "Baseline", rep.Baseline.NER4)
	for _, scenario := range rep.Scenarios {
		printComparisonRow(rep, scenario.Name, scenario.Chain.NER4)
	}

	if len(rep.Warnings) > 0 {
		fmt.Printf("\nWarnings:\n")
		for _, warning := range rep.Warnings {
			fmt.Printf("  - %s\n", warning)
		}
	}
}

func printComparisonRow(rep *report.Report, name string, ner float64) {
	if deviation, ok := rep.Deviation(ner); ok {
		fmt.Printf("%-20s | %8s | %s vs headline\n", name, format.Rate(ner), format.Percent(deviation))
	} else {
		fmt.Printf("%-20s | %8s |\n", name, format.Rate(ner))
	}
}

// CsvFormat outputs in comma-separated value format.
func CsvFormat(rep *report.Report) {
	fmt.Print(CsvString(rep))
}

// CsvString returns the CSV rendering used by both the CLI and the API.
func CsvString(rep *report.Report) string {
	if rep == nil {
		return ""
	}

	var b strings.Builder
	b.WriteString(`"kind","label","value"` + "\n")

	writeRow := func(kind, label string, value float64) {
		b.WriteString(fmt.Sprintf(`"%s","%s","%.2f"`+"\n", kind, label, value))
	}

	writeRow("chain", "gla", rep.Baseline.GLA)
	writeRow("chain", "months", rep.Baseline.Months)
	writeRow("chain", "gross", rep.Baseline.Gross)
	writeRow("chain", "totalFit", rep.Baseline.TotalFit)
	writeRow("chain", "agentFees", rep.Baseline.AgentFees)
	writeRow("chain", "ner1", rep.Baseline.NER1)
	writeRow("chain", "ner2", rep.Baseline.NER2)
	writeRow("chain", "ner3", rep.Baseline.NER3)
	writeRow("chain", "ner4", rep.Baseline.NER4)

	for _, step := range rep.Waterfall {
		writeRow("waterfall", step.Label, step.Delta)
	}

	for _, scenario := range rep.Scenarios {
		writeRow("scenario", scenario.Name, scenario.Chain.NER4)
	}

	return b.String()
}
