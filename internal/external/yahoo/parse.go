package yahoo

import (
	"math"
	"strconv"
	"strings"
)

// Numeric coercion helpers for quote-table cells. The pages format
// numbers for humans: thousands separators, percent signs wrapped in
// parentheses, dashes for missing values.

// parseFloat parses a float cell, stripping thousands separators.
func parseFloat(s string) (float64, bool) {
	s = strings.TrimSpace(strings.ReplaceAll(s, ",", ""))
	s = strings.TrimPrefix(s, "+")
	if s == "" || s == "-" || s == "N/A" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// parsePercent parses a percentage cell such as "(+2.45%)" or "-1.30%".
func parsePercent(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	s = strings.Trim(s, "()")
	s = strings.TrimSuffix(s, "%")
	return parseFloat(s)
}

// parseVolume parses an integer volume cell, accepting the suffixed
// short form ("64.2M") some tables use.
func parseVolume(s string) (int64, bool) {
	s = strings.TrimSpace(strings.ReplaceAll(s, ",", ""))
	if s == "" || s == "-" {
		return 0, false
	}

	multiplier := int64(1)
	switch s[len(s)-1] {
	case 'B':
		multiplier = 1e9
		s = s[:len(s)-1]
	case 'M':
		multiplier = 1e6
		s = s[:len(s)-1]
	case 'K', 'k':
		multiplier = 1e3
		s = s[:len(s)-1]
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return int64(v * float64(multiplier)), true
}

// parsePE parses a P/E cell; missing values ("N/A", "-") come back as
// NaN, the absent sentinel used throughout the aggregation.
func parsePE(s string) float64 {
	v, ok := parseFloat(s)
	if !ok {
		return math.NaN()
	}
	return v
}
