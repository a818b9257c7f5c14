package format

import "testing"

func TestCurrency(t *testing.T) {
	tests := []struct {
		name     string
		amount   float64
		expected string
	}{
		{"Zero", 0, "$0.00"},
		{"Small amount", 12.5, "$12.50"},
		{"Thousands separator", 1234.56, "$1,234.56"},
		{"Millions", 1234567.89, "$1,234,567.89"},
		{"Negative", -1234.56, "-$1,234.56"},
		{"Worked example gross", 866250, "$866,250.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Currency(tt.amount); got != tt.expected {
				t.Errorf("Currency(%v) = %q, expected %q", tt.amount, got, tt.expected)
			}
		})
	}
}

func TestWholeCurrency(t *testing.T) {
	tests := []struct {
		name     string
		amount   float64
		expected string
	}{
		{"Rounds up", 1234.56, "$1,235"},
		{"Rounds down", 1234.4, "$1,234"},
		{"Negative", -300000.2, "-$300,000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := WholeCurrency(tt.amount); got != tt.expected {
				t.Errorf("WholeCurrency(%v) = %q, expected %q", tt.amount, got, tt.expected)
			}
		})
	}
}

func TestRate(t *testing.T) {
	tests := []struct {
		name     string
		value    float64
		expected string
	}{
		{"Headline", 15.0, "15.00"},
		{"Rounded NER", 8.488095, "8.49"},
		{"Negative", -1.25, "-1.25"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Rate(tt.value); got != tt.expected {
				t.Errorf("Rate(%v) = %q, expected %q", tt.value, got, tt.expected)
			}
		})
	}
}

func TestPercent(t *testing.T) {
	if got := Percent(-8.333333); got != "-8.33%" {
		t.Errorf("Percent(-8.333333) = %q, expected \"-8.33%%\"", got)
	}
	if got := Percent(0); got != "0.00%" {
		t.Errorf("Percent(0) = %q, expected \"0.00%%\"", got)
	}
}
