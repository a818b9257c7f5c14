// Package config defines the data structures related to configuration and
// includes functions for loading and converting the config.
//
// Every numeric lease field is carried as a raw string: values arrive
// from text inputs, saved projects, or hand-edited YAML, and the tolerant
// parser in pkg/numparse owns all coercion. Quoting numbers in the YAML
// keeps that single parsing path authoritative.
package config

import (
	"fmt"
	"io"

	"github.com/spf13/viper"

	"github.com/iwvelando/lease-ner/pkg/lease"
	"github.com/iwvelando/lease-ner/pkg/numparse"
	"github.com/iwvelando/lease-ner/pkg/validation"
)

// Configuration holds all configuration for lease-ner.
type Configuration struct {
	Lease     LeaseConfig
	Scenarios []ScenarioConfig
	Logging   LoggingConfig `yaml:"logging,omitempty"`
	Output    OutputConfig  `yaml:"output,omitempty"`
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `yaml:"level,omitempty"`      // debug, info, warn, error
	Format     string `yaml:"format,omitempty"`     // json, console
	OutputFile string `yaml:"outputFile,omitempty"` // optional file output
}

// OutputConfig holds output format configuration options
type OutputConfig struct {
	Format string `yaml:"format,omitempty"` // pretty, csv
}

// LeaseConfig holds the baseline lease inputs as raw text.
type LeaseConfig struct {
	TenantLabel     string `yaml:"tenantLabel,omitempty"`
	NLA             string `yaml:"nla"`
	AddonPct        string `yaml:"addonPct"`
	Rent            string `yaml:"rent"`
	DurationMonths  string `yaml:"durationMonths"`
	RentFreeMonths  string `yaml:"rentFreeMonths"`
	AgentFeeMonths  string `yaml:"agentFeeMonths"`
	UnforeseenTotal string `yaml:"unforeseenTotal"`
	FitOutMode      string `yaml:"fitOutMode"`
	FitOutPerNLA    string `yaml:"fitOutPerNLA"`
	FitOutPerGLA    string `yaml:"fitOutPerGLA"`
	FitOutTotal     string `yaml:"fitOutTotal"`
}

// ScenarioConfig holds one comparison scenario: a name and a sparse set
// of field overrides, values as raw text.
type ScenarioConfig struct {
	Name      string
	Overrides map[string]string
}

// LoadConfiguration takes a file path as input and loads the YAML-formatted
// configuration there.
func LoadConfiguration(configPath string) (*Configuration, error) {
	v := viper.New()
	v.SetConfigFile(configPath)
	v.AutomaticEnv()

	v.SetConfigType("yml")

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file, %s", err)
	}

	var configuration Configuration
	err := v.Unmarshal(&configuration)
	if err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %s", err)
	}

	return &configuration, nil
}

// LoadConfigurationFromReader loads a YAML-formatted configuration from
// an in-memory source, e.g. an HTTP request body.
func LoadConfigurationFromReader(r io.Reader) (*Configuration, error) {
	v := viper.New()
	v.SetConfigType("yml")

	if err := v.ReadConfig(r); err != nil {
		return nil, fmt.Errorf("error reading config data, %s", err)
	}

	var configuration Configuration
	err := v.Unmarshal(&configuration)
	if err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %s", err)
	}

	return &configuration, nil
}

// ToParameterSet converts the raw lease inputs into a guarded parameter
// set. Malformed text parses to 0, negatives clamp to 0, and the
// duration floors to whole months.
func (l LeaseConfig) ToParameterSet() lease.ParameterSet {
	return lease.ParameterSet{
		TenantLabel:     l.TenantLabel,
		NLA:             numparse.ParseClamped(l.NLA, 0),
		AddonPct:        numparse.ParseClamped(l.AddonPct, 0),
		Rent:            numparse.ParseClamped(l.Rent, 0),
		DurationMonths:  numparse.ParseMonths(l.DurationMonths),
		RentFreeMonths:  numparse.ParseClamped(l.RentFreeMonths, 0),
		AgentFeeMonths:  numparse.ParseClamped(l.AgentFeeMonths, 0),
		UnforeseenTotal: numparse.ParseClamped(l.UnforeseenTotal, 0),
		FitOutMode:      lease.ParseFitOutMode(l.FitOutMode),
		FitOutPerNLA:    numparse.ParseClamped(l.FitOutPerNLA, 0),
		FitOutPerGLA:    numparse.ParseClamped(l.FitOutPerGLA, 0),
		FitOutTotal:     numparse.ParseClamped(l.FitOutTotal, 0),
	}
}

// ToScenario converts one scenario config into an engine scenario,
// parsing each override value with the same tolerant policy as the
// baseline fields. Viper lowercases YAML keys, so override keys are
// mapped back to their canonical names; unknown keys pass through
// untouched and surface in validation warnings.
func (s ScenarioConfig) ToScenario() lease.Scenario {
	overrides := make(lease.Overrides, len(s.Overrides))
	for key, raw := range s.Overrides {
		if name, ok := lease.CanonicalField(key); ok {
			key = name
		}
		overrides[key] = numparse.ParseClamped(raw, 0)
	}
	return lease.Scenario{Name: s.Name, Overrides: overrides}
}

// ToScenarios returns all configured comparison scenarios as engine
// scenarios, in config order.
func (c *Configuration) ToScenarios() []lease.Scenario {
	scenarios := make([]lease.Scenario, 0, len(c.Scenarios))
	for _, sc := range c.Scenarios {
		scenarios = append(scenarios, sc.ToScenario())
	}
	return scenarios
}

// ValidateConfiguration performs general validation of the configuration
// and returns warnings. Warnings never block an evaluation.
func (c *Configuration) ValidateConfiguration() []string {
	params := c.Lease.ToParameterSet()
	scenarios := c.ToScenarios()

	names := make([]string, 0, len(scenarios))
	overrideKeys := make(map[string][]string, len(scenarios))
	for _, sc := range scenarios {
		names = append(names, sc.Name)
		keys := make([]string, 0, len(sc.Overrides))
		for key := range sc.Overrides {
			keys = append(keys, key)
		}
		overrideKeys[sc.Name] = keys
	}

	return validation.LeaseWarnings(params, names, overrideKeys)
}
