// Package constants provides shared constants for the lease-ner application.
package constants

// Numeric tolerances
const (
	// Epsilon is the absolute tolerance for cross-field consistency checks
	// and for suppressing redundant reconciliation writes.
	Epsilon = 1e-9

	// DenominatorFloor is the lower bound applied to the NER amortization
	// denominator so a zero duration or zero GLA never divides by zero.
	DenominatorFloor = 1e-9

	// DecimalPrecision is the precision for currency rounding (2 decimal places)
	DecimalPrecision = 100

	// DisplayThreshold is the minimum rounded magnitude a waterfall delta
	// must have before it renders a value label.
	DisplayThreshold = 0.005

	// PercentageMultiplier is used for percentage conversions
	PercentageMultiplier = 100.0
)

// Scenario constants
const (
	// MaxScenarios is the number of comparison slots the form exposes
	// alongside the baseline.
	MaxScenarios = 3
)

// Output format constants
const (
	// OutputFormatPretty is the human-readable output format
	OutputFormatPretty = "pretty"

	// OutputFormatCSV is the CSV output format
	OutputFormatCSV = "csv"
)

// Configuration file constants
const (
	// DefaultConfigFile is the default configuration file name
	DefaultConfigFile = "lease.yaml"

	// DefaultServerConfigFile is the default server configuration file name
	DefaultServerConfigFile = "server-config.yaml"
)

// Server configuration defaults
const (
	// DefaultServerAddress is the default HTTP listen address for the API
	DefaultServerAddress = ":8080"

	// DefaultMaxBodySizeBytes is the default maximum request body size (256 KB)
	DefaultMaxBodySizeBytes int64 = 256 * 1024
)
