package analysis

import "strconv"

// marketCapMultipliers maps the suffix of a human-readable market cap
// string to its numeric scale. Read-only; safe for concurrent use.
var marketCapMultipliers = map[byte]float64{
	'T': 1e12,
	'B': 1e9,
	'M': 1e6,
}

// ParseMarketCap converts a suffixed market cap string ("1.25T",
// "350B", "250M") into its numeric value. Suffixes are case-sensitive;
// an unknown trailing character leaves the numeral unscaled, so a plain
// numeric string passes through as-is. Malformed or empty input yields
// 0.0 rather than an error: one dirty field must never block a whole
// sector aggregation.
func ParseMarketCap(raw string) float64 {
	if raw == "" {
		return 0.0
	}

	numeral := raw
	multiplier := 1.0
	if m, ok := marketCapMultipliers[raw[len(raw)-1]]; ok {
		numeral = raw[:len(raw)-1]
		multiplier = m
	}

	value, err := strconv.ParseFloat(numeral, 64)
	if err != nil {
		return 0.0
	}

	return value * multiplier
}
