package analysis

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/wonny/marketbrief/internal/contracts"
	"github.com/wonny/marketbrief/pkg/logger"
)

// ErrEmptyBatch is returned when a sector aggregation receives zero
// records. No sector identity can be computed without at least one
// record; the caller loop is expected to skip that sector and carry on.
var ErrEmptyBatch = errors.New("empty record batch")

// SectorAggregator reduces a sector's record batch into a
// SectorSummary. Pure function of its inputs plus the injected clock;
// safe to run per-sector in parallel.
type SectorAggregator struct {
	now    func() time.Time
	logger *logger.Logger
}

// NewSectorAggregator creates a sector aggregator using the wall clock.
func NewSectorAggregator(log *logger.Logger) *SectorAggregator {
	return NewSectorAggregatorWithClock(time.Now, log)
}

// NewSectorAggregatorWithClock creates a sector aggregator with an
// injected clock for deterministic summaries in tests.
func NewSectorAggregatorWithClock(now func() time.Time, log *logger.Logger) *SectorAggregator {
	return &SectorAggregator{
		now:    now,
		logger: log,
	}
}

// Aggregate builds the summary for one sector. Fails with ErrEmptyBatch
// on an empty batch; every other input degrades gracefully (malformed
// market caps count as 0, absent P/E ratios are excluded from the mean).
func (a *SectorAggregator) Aggregate(sector string, records []contracts.StockRecord) (contracts.SectorSummary, error) {
	if len(records) == 0 {
		return contracts.SectorSummary{}, fmt.Errorf("sector %s: %w", sector, ErrEmptyBatch)
	}

	var (
		sumChangePct float64
		sumVolume    int64
		sumMarketCap float64
		sumPE        float64
		peCount      int
	)

	for _, r := range records {
		sumChangePct += r.ChangePct
		sumVolume += r.Volume
		sumMarketCap += ParseMarketCap(r.MarketCap)
		if r.PERatio.Valid() {
			sumPE += float64(r.PERatio)
			peCount++
		}
	}

	performance := sumChangePct / float64(len(records))

	// NaN propagates when no record carries a P/E; renderers show N/A.
	averagePE := math.NaN()
	if peCount > 0 {
		averagePE = sumPE / float64(peCount)
	}

	summary := contracts.SectorSummary{
		Sector:          sector,
		Performance:     performance,
		Volume:          sumVolume,
		MarketCap:       sumMarketCap,
		TopPerformers:   Project(TopN(records, ByChangePct, DefaultTopN)),
		WorstPerformers: Project(BottomN(records, ByChangePct, DefaultTopN)),
		AveragePE:       contracts.NullableFloat(averagePE),
		Volatility:      sampleStdDev(records, performance),
		Timestamp:       a.now().Format(time.RFC3339),
	}

	a.logger.WithFields(map[string]interface{}{
		"sector":      sector,
		"records":     len(records),
		"performance": summary.Performance,
		"volume":      summary.Volume,
	}).Debug("Sector aggregated")

	return summary, nil
}

// sampleStdDev computes the sample standard deviation (N-1 denominator)
// of change percentage. A single-record batch yields 0, not NaN: the
// convention is fixed here on purpose so downstream formatting never
// sees NaN volatility.
func sampleStdDev(records []contracts.StockRecord, mean float64) float64 {
	if len(records) < 2 {
		return 0
	}

	var sumSq float64
	for _, r := range records {
		d := r.ChangePct - mean
		sumSq += d * d
	}

	return math.Sqrt(sumSq / float64(len(records)-1))
}
