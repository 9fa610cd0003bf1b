package analysis

import (
	"time"

	"github.com/wonny/marketbrief/internal/contracts"
	"github.com/wonny/marketbrief/pkg/logger"
)

// CategoryAggregator reduces a market category batch (gainers, losers,
// most-active) into a CategorySummary. Unlike sectors, an empty
// category is a valid business outcome: no losers today is a fact
// worth reporting, not an error.
type CategoryAggregator struct {
	now    func() time.Time
	logger *logger.Logger
}

// NewCategoryAggregator creates a category aggregator using the wall clock.
func NewCategoryAggregator(log *logger.Logger) *CategoryAggregator {
	return NewCategoryAggregatorWithClock(time.Now, log)
}

// NewCategoryAggregatorWithClock creates a category aggregator with an
// injected clock for deterministic summaries in tests.
func NewCategoryAggregatorWithClock(now func() time.Time, log *logger.Logger) *CategoryAggregator {
	return &CategoryAggregator{
		now:    now,
		logger: log,
	}
}

// Aggregate builds the summary for one category. Top movers are ranked
// by the magnitude of percentage change; the projection keeps the
// signed value so renderers can still show direction.
func (a *CategoryAggregator) Aggregate(category string, records []contracts.StockRecord) contracts.CategorySummary {
	summary := contracts.CategorySummary{
		Category:  category,
		Count:     len(records),
		TopMovers: []contracts.StockProjection{},
		Timestamp: a.now().Format(time.RFC3339),
	}

	if len(records) == 0 {
		return summary
	}

	var sumChangePct float64
	for _, r := range records {
		sumChangePct += r.ChangePct
		summary.TotalVolume += r.Volume
	}

	summary.AvgChangePct = sumChangePct / float64(len(records))
	summary.TopMovers = Project(TopN(records, ByAbsChangePct, DefaultTopN))

	a.logger.WithFields(map[string]interface{}{
		"category":       category,
		"records":        len(records),
		"avg_change_pct": summary.AvgChangePct,
	}).Debug("Category aggregated")

	return summary
}
