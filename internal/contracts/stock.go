package contracts

import (
	"encoding/json"
	"math"
)

// NullableFloat is a float64 that treats NaN as "absent".
// It marshals NaN as JSON null and decodes null/absent back to NaN,
// so optional metrics like P/E survive a JSON round trip.
type NullableFloat float64

// Valid reports whether the value is present (not NaN).
func (f NullableFloat) Valid() bool {
	return !math.IsNaN(float64(f))
}

// MarshalJSON encodes NaN as null.
func (f NullableFloat) MarshalJSON() ([]byte, error) {
	if !f.Valid() {
		return []byte("null"), nil
	}
	return json.Marshal(float64(f))
}

// UnmarshalJSON decodes null as NaN.
func (f *NullableFloat) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*f = NullableFloat(math.NaN())
		return nil
	}
	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*f = NullableFloat(v)
	return nil
}

// AbsentPE returns the sentinel for a missing P/E ratio.
func AbsentPE() NullableFloat {
	return NullableFloat(math.NaN())
}

// StockRecord is a single per-stock market record as delivered by the
// fetch layer. Records are read-only inputs to the aggregators; the
// symbol+timestamp pair is unique within one fetch batch.
type StockRecord struct {
	Symbol    string        `json:"symbol"`
	Name      string        `json:"name"`
	Price     float64       `json:"price"`
	Change    float64       `json:"change"`
	ChangePct float64       `json:"change_percentage"`
	Volume    int64         `json:"volume"`
	MarketCap string        `json:"market_cap"`
	Sector    string        `json:"sector,omitempty"`
	PERatio   NullableFloat `json:"pe_ratio"`
	Timestamp string        `json:"timestamp"`
}

// StockProjection is the narrowed view of a StockRecord embedded in
// top/worst/mover lists. It has no identity of its own.
type StockProjection struct {
	Symbol    string  `json:"symbol"`
	Name      string  `json:"name"`
	ChangePct float64 `json:"change_percentage"`
	Volume    int64   `json:"volume"`
}

// Project narrows a record to its projection.
func (r StockRecord) Project() StockProjection {
	return StockProjection{
		Symbol:    r.Symbol,
		Name:      r.Name,
		ChangePct: r.ChangePct,
		Volume:    r.Volume,
	}
}
