package analysis

import (
	"math"
	"sort"

	"github.com/wonny/marketbrief/internal/contracts"
)

// DefaultTopN is the list length used for top/worst performers and
// category top movers.
const DefaultTopN = 5

// MetricFunc extracts the ranking metric from a record.
type MetricFunc func(contracts.StockRecord) float64

// ByChangePct ranks records by signed percentage change.
func ByChangePct(r contracts.StockRecord) float64 { return r.ChangePct }

// ByAbsChangePct ranks records by the magnitude of percentage change,
// ignoring direction. Used for category top movers.
func ByAbsChangePct(r contracts.StockRecord) float64 { return math.Abs(r.ChangePct) }

// TopN returns the n records with the highest metric, in descending
// order. The sort is stable: records with equal metrics keep their
// batch order, so identical input always produces identical output.
// Batches shorter than n come back whole; n <= 0 yields an empty slice.
func TopN(records []contracts.StockRecord, metric MetricFunc, n int) []contracts.StockRecord {
	return rank(records, metric, n, false)
}

// BottomN returns the n records with the lowest metric, in ascending
// order. Same stability and short-batch behavior as TopN.
func BottomN(records []contracts.StockRecord, metric MetricFunc, n int) []contracts.StockRecord {
	return rank(records, metric, n, true)
}

func rank(records []contracts.StockRecord, metric MetricFunc, n int, ascending bool) []contracts.StockRecord {
	if n <= 0 || len(records) == 0 {
		return []contracts.StockRecord{}
	}

	sorted := make([]contracts.StockRecord, len(records))
	copy(sorted, records)

	sort.SliceStable(sorted, func(i, j int) bool {
		if ascending {
			return metric(sorted[i]) < metric(sorted[j])
		}
		return metric(sorted[i]) > metric(sorted[j])
	})

	if n > len(sorted) {
		n = len(sorted)
	}
	return sorted[:n]
}

// Project converts ranked records to the lightweight projections
// embedded in summaries.
func Project(records []contracts.StockRecord) []contracts.StockProjection {
	projected := make([]contracts.StockProjection, 0, len(records))
	for _, r := range records {
		projected = append(projected, r.Project())
	}
	return projected
}
