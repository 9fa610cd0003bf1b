package analysis

import (
	"math"
	"testing"

	"github.com/wonny/marketbrief/internal/contracts"
)

func TestCategoryAggregate(t *testing.T) {
	agg := NewCategoryAggregatorWithClock(fixedClock(), testLogger())

	records := []contracts.StockRecord{
		{Symbol: "UP", ChangePct: 3.0, Volume: 100},
		{Symbol: "DOWN", ChangePct: -8.0, Volume: 250},
		{Symbol: "FLAT", ChangePct: 0.2, Volume: 50},
	}

	summary := agg.Aggregate(contracts.CategoryMostActive, records)

	if summary.Category != "most_active" {
		t.Errorf("Category = %q, want most_active", summary.Category)
	}
	if summary.Count != 3 {
		t.Errorf("Count = %d, want 3", summary.Count)
	}
	if summary.TotalVolume != 400 {
		t.Errorf("TotalVolume = %d, want 400", summary.TotalVolume)
	}

	// Accumulate the expectation the same way the aggregator does so
	// float64 rounding cannot skew the comparison.
	wantAvg := (3.0 + -8.0 + 0.2) / 3.0
	if math.Abs(summary.AvgChangePct-wantAvg) > 1e-9 {
		t.Errorf("AvgChangePct = %v, want %v", summary.AvgChangePct, wantAvg)
	}

	// Movers ranked by magnitude, signed value preserved.
	if summary.TopMovers[0].Symbol != "DOWN" {
		t.Errorf("TopMovers[0] = %s, want DOWN", summary.TopMovers[0].Symbol)
	}
	if summary.TopMovers[0].ChangePct != -8.0 {
		t.Errorf("TopMovers[0].ChangePct = %v, want -8.0", summary.TopMovers[0].ChangePct)
	}
}

func TestCategoryAggregateEmpty(t *testing.T) {
	agg := NewCategoryAggregatorWithClock(fixedClock(), testLogger())

	// No losers today is a valid outcome, never an error.
	summary := agg.Aggregate(contracts.CategoryLosers, nil)

	if summary.Count != 0 {
		t.Errorf("Count = %d, want 0", summary.Count)
	}
	if summary.AvgChangePct != 0 {
		t.Errorf("AvgChangePct = %v, want 0", summary.AvgChangePct)
	}
	if summary.TotalVolume != 0 {
		t.Errorf("TotalVolume = %d, want 0", summary.TotalVolume)
	}
	if summary.TopMovers == nil || len(summary.TopMovers) != 0 {
		t.Errorf("TopMovers = %v, want empty non-nil slice", summary.TopMovers)
	}
	if summary.Timestamp == "" {
		t.Error("Timestamp is empty")
	}
}
