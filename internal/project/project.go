// Package project loads saved project blobs: URL-encoded JSON produced
// by the form's save feature. The blob is merged shallowly onto the
// default lease inputs. Unknown keys are ignored and missing keys keep
// their defaults, so old or partial saves always load.
package project

import (
	"fmt"
	"net/url"
	"strconv"

	json "github.com/goccy/go-json"

	"github.com/iwvelando/lease-ner/internal/config"
	"github.com/iwvelando/lease-ner/pkg/lease"
)

// DefaultLease returns the lease inputs a fresh form starts from.
func DefaultLease() config.LeaseConfig {
	return config.LeaseConfig{
		NLA:             "0",
		AddonPct:        "0",
		Rent:            "0",
		DurationMonths:  "0",
		RentFreeMonths:  "0",
		AgentFeeMonths:  "0",
		UnforeseenTotal: "0",
		FitOutMode:      string(lease.FitOutPerNLA),
		FitOutPerNLA:    "0",
		FitOutPerGLA:    "0",
		FitOutTotal:     "0",
	}
}

// Decode parses a URL-encoded JSON project blob and merges it onto the
// defaults. Only decode and unescape failures are errors; individual
// field values follow the usual tolerant numeric policy downstream.
func Decode(encoded string) (*config.Configuration, error) {
	decoded, err := url.QueryUnescape(encoded)
	if err != nil {
		return nil, fmt.Errorf("failed to unescape project blob: %w", err)
	}

	var blob map[string]interface{}
	if err := json.Unmarshal([]byte(decoded), &blob); err != nil {
		return nil, fmt.Errorf("failed to decode project blob: %w", err)
	}

	conf := &config.Configuration{Lease: DefaultLease()}
	MergeLease(&conf.Lease, blob)
	conf.Scenarios = ExtractScenarios(blob["scenarios"])
	return conf, nil
}

// MergeLease overlays known lease keys from a decoded blob onto dst.
// Values may be strings or JSON numbers; anything else keeps the default.
func MergeLease(dst *config.LeaseConfig, blob map[string]interface{}) {
	fields := map[string]*string{
		"tenantLabel":     &dst.TenantLabel,
		"nla":             &dst.NLA,
		"addonPct":        &dst.AddonPct,
		"rent":            &dst.Rent,
		"durationMonths":  &dst.DurationMonths,
		"rentFreeMonths":  &dst.RentFreeMonths,
		"agentFeeMonths":  &dst.AgentFeeMonths,
		"unforeseenTotal": &dst.UnforeseenTotal,
		"fitOutMode":      &dst.FitOutMode,
		"fitOutPerNLA":    &dst.FitOutPerNLA,
		"fitOutPerGLA":    &dst.FitOutPerGLA,
		"fitOutTotal":     &dst.FitOutTotal,
	}

	for key, target := range fields {
		if raw, ok := blob[key]; ok {
			if text, ok := coerceString(raw); ok {
				*target = text
			}
		}
	}
}

// ExtractScenarios reads the optional scenarios list from a decoded
// blob. Malformed entries are skipped, never errors.
func ExtractScenarios(raw interface{}) []config.ScenarioConfig {
	list, ok := raw.([]interface{})
	if !ok {
		return nil
	}

	scenarios := make([]config.ScenarioConfig, 0, len(list))
	for i, entry := range list {
		obj, ok := entry.(map[string]interface{})
		if !ok {
			continue
		}

		scenario := config.ScenarioConfig{Name: fmt.Sprintf("Scenario %d", i+1)}
		if name, ok := coerceString(obj["name"]); ok && name != "" {
			scenario.Name = name
		}

		if overrides, ok := obj["overrides"].(map[string]interface{}); ok {
			scenario.Overrides = make(map[string]string, len(overrides))
			for key, value := range overrides {
				if text, ok := coerceString(value); ok {
					scenario.Overrides[key] = text
				}
			}
		}
		scenarios = append(scenarios, scenario)
	}
	return scenarios
}

// coerceString accepts the two value shapes saved projects contain,
// strings and JSON numbers, and rejects everything else.
func coerceString(value interface{}) (string, bool) {
	switch v := value.(type) {
	case string:
		return v, true
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), true
	case json.Number:
		return v.String(), true
	}
	return "", false
}
