package analysis

import (
	"errors"
	"math"
	"reflect"
	"testing"
	"time"

	"github.com/wonny/marketbrief/internal/contracts"
	"github.com/wonny/marketbrief/pkg/config"
	"github.com/wonny/marketbrief/pkg/logger"
)

func testLogger() *logger.Logger {
	return logger.New(&config.Config{LogLevel: "error"})
}

func fixedClock() func() time.Time {
	ts := time.Date(2026, 8, 28, 7, 0, 0, 0, time.UTC)
	return func() time.Time { return ts }
}

func TestSectorAggregate(t *testing.T) {
	agg := NewSectorAggregatorWithClock(fixedClock(), testLogger())

	records := []contracts.StockRecord{
		{Symbol: "AAA", Name: "AAA Inc", ChangePct: 2.0, Volume: 100, MarketCap: "1.5T", PERatio: contracts.NullableFloat(20)},
		{Symbol: "BBB", Name: "BBB Inc", ChangePct: -1.0, Volume: 200, MarketCap: "500B", PERatio: contracts.NullableFloat(10)},
		{Symbol: "CCC", Name: "CCC Inc", ChangePct: 5.0, Volume: 50, MarketCap: "garbage", PERatio: contracts.AbsentPE()},
	}

	summary, err := agg.Aggregate("technology", records)
	if err != nil {
		t.Fatalf("Aggregate() error = %v", err)
	}

	if summary.Sector != "technology" {
		t.Errorf("Sector = %q, want technology", summary.Sector)
	}
	if summary.Performance != 2.0 {
		t.Errorf("Performance = %v, want 2.0", summary.Performance)
	}
	if summary.Volume != 350 {
		t.Errorf("Volume = %d, want 350", summary.Volume)
	}
	if summary.MarketCap != 2.0e12 {
		t.Errorf("MarketCap = %v, want 2.0e12", summary.MarketCap)
	}
	if summary.Volatility != 3.0 {
		t.Errorf("Volatility = %v, want 3.0", summary.Volatility)
	}
	if !summary.AveragePE.Valid() || float64(summary.AveragePE) != 15.0 {
		t.Errorf("AveragePE = %v, want 15.0", float64(summary.AveragePE))
	}
	if summary.Timestamp != "2026-08-28T07:00:00Z" {
		t.Errorf("Timestamp = %q", summary.Timestamp)
	}

	wantTop := []string{"CCC", "AAA", "BBB"}
	for i, p := range summary.TopPerformers {
		if p.Symbol != wantTop[i] {
			t.Errorf("TopPerformers[%d] = %s, want %s", i, p.Symbol, wantTop[i])
		}
	}

	wantWorst := []string{"BBB", "AAA", "CCC"}
	for i, p := range summary.WorstPerformers {
		if p.Symbol != wantWorst[i] {
			t.Errorf("WorstPerformers[%d] = %s, want %s", i, p.Symbol, wantWorst[i])
		}
	}
}

func TestSectorAggregateEmptyBatch(t *testing.T) {
	agg := NewSectorAggregator(testLogger())

	_, err := agg.Aggregate("energy", nil)
	if !errors.Is(err, ErrEmptyBatch) {
		t.Errorf("Aggregate() error = %v, want ErrEmptyBatch", err)
	}
}

func TestSectorAggregateSingleRecord(t *testing.T) {
	agg := NewSectorAggregatorWithClock(fixedClock(), testLogger())

	records := []contracts.StockRecord{
		{Symbol: "AAA", ChangePct: 3.5, Volume: 42, MarketCap: "10B", PERatio: contracts.NullableFloat(25)},
	}

	summary, err := agg.Aggregate("utilities", records)
	if err != nil {
		t.Fatalf("Aggregate() error = %v", err)
	}

	// A single record has no spread; volatility is defined as 0, not NaN.
	if summary.Volatility != 0 {
		t.Errorf("Volatility = %v, want 0", summary.Volatility)
	}
	if summary.Performance != 3.5 {
		t.Errorf("Performance = %v, want 3.5", summary.Performance)
	}
	if len(summary.TopPerformers) != 1 || len(summary.WorstPerformers) != 1 {
		t.Errorf("performer lists = %d/%d, want 1/1",
			len(summary.TopPerformers), len(summary.WorstPerformers))
	}
}

func TestSectorAggregateAllPEAbsent(t *testing.T) {
	agg := NewSectorAggregatorWithClock(fixedClock(), testLogger())

	records := []contracts.StockRecord{
		{Symbol: "AAA", ChangePct: 1.0, PERatio: contracts.AbsentPE()},
		{Symbol: "BBB", ChangePct: 2.0, PERatio: contracts.AbsentPE()},
	}

	summary, err := agg.Aggregate("financial", records)
	if err != nil {
		t.Fatalf("Aggregate() error = %v", err)
	}

	if summary.AveragePE.Valid() {
		t.Errorf("AveragePE = %v, want absent", float64(summary.AveragePE))
	}
	if !math.IsNaN(float64(summary.AveragePE)) {
		t.Errorf("absent AveragePE should be NaN")
	}
}

func TestSectorAggregateIdempotent(t *testing.T) {
	agg := NewSectorAggregatorWithClock(fixedClock(), testLogger())

	records := []contracts.StockRecord{
		{Symbol: "AAA", ChangePct: 1.0, Volume: 10, MarketCap: "1B", PERatio: contracts.NullableFloat(12)},
		{Symbol: "BBB", ChangePct: 1.0, Volume: 20, MarketCap: "2B", PERatio: contracts.NullableFloat(14)},
		{Symbol: "CCC", ChangePct: -2.0, Volume: 30, MarketCap: "3B", PERatio: contracts.AbsentPE()},
	}

	first, err := agg.Aggregate("industrial", records)
	if err != nil {
		t.Fatalf("Aggregate() error = %v", err)
	}

	for i := 0; i < 5; i++ {
		again, err := agg.Aggregate("industrial", records)
		if err != nil {
			t.Fatalf("Aggregate() run %d error = %v", i, err)
		}
		if !reflect.DeepEqual(first, again) {
			t.Fatalf("Aggregate() run %d differs:\nfirst = %+v\nagain = %+v", i, first, again)
		}
	}
}
