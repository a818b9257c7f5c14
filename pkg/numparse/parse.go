// Package numparse converts free-form numeric text into finite numbers.
//
// Inputs come straight from text fields and saved project files, so they
// may use either the comma or the dot convention for the decimal point,
// carry thousands separators, or be outright garbage. Parsing never
// fails: anything that does not yield a finite number degrades to 0.
package numparse

import (
	"math"
	"strconv"
	"strings"
)

var whitespaceReplacer = strings.NewReplacer(
	" ", "",
	"\t", "",
	" ", "",
	" ", "",
)

// Parse converts locale-ambiguous numeric text into a float64.
//
// Disambiguation policy:
//   - both separators present: the one appearing last is the decimal
//     point, the other groups thousands ("1.234,56" -> 1234.56,
//     "1,234.56" -> 1234.56)
//   - a single comma and no dot: decimal comma ("1,5" -> 1.5), unless
//     exactly three digits follow, which reads as thousands grouping
//     ("1,234" -> 1234)
//   - otherwise commas group thousands and any dot is the decimal point
//
// Malformed or non-finite input ("abc", "1.2.3", "") returns 0.
func Parse(text string) float64 {
	s := whitespaceReplacer.Replace(text)

	lastDot := strings.LastIndex(s, ".")
	lastComma := strings.LastIndex(s, ",")

	switch {
	case lastDot >= 0 && lastComma > lastDot:
		// Decimal comma with dot-grouped thousands.
		s = strings.ReplaceAll(s, ".", "")
		i := strings.LastIndex(s, ",")
		s = s[:i] + "." + s[i+1:]
	case lastDot < 0 && lastComma >= 0 && strings.Count(s, ",") == 1:
		if isThousandsGroup(s[lastComma+1:]) {
			s = strings.ReplaceAll(s, ",", "")
		} else {
			s = strings.Replace(s, ",", ".", 1)
		}
	default:
		s = strings.ReplaceAll(s, ",", "")
	}

	n, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(n) || math.IsInf(n, 0) {
		return 0
	}
	return n
}

func isThousandsGroup(frac string) bool {
	if len(frac) != 3 {
		return false
	}
	for _, r := range frac {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// ParseClamped parses text and clamps the result to be at least min.
func ParseClamped(text string, min float64) float64 {
	n := Parse(text)
	if n < min {
		return min
	}
	return n
}

// ParseMonths parses text as a whole number of months: clamped to be
// non-negative and floored to an integer.
func ParseMonths(text string) int {
	n := Parse(text)
	if n < 0 {
		return 0
	}
	return int(math.Floor(n))
}
