package contracts

// Market categories served by the upstream quote pages. The slice order
// is the presentation priority used in market reports.
const (
	CategoryMostActive = "most_active"
	CategoryGainers    = "gainers"
	CategoryLosers     = "losers"
)

// DefaultCategoryOrder returns the standard category presentation order.
// Category order carries meaning (most-active first), unlike sector
// order which is ranked by performance.
func DefaultCategoryOrder() []string {
	return []string{CategoryMostActive, CategoryGainers, CategoryLosers}
}

// SectorSummary is the reduction of one sector's record batch.
// Built once per run and never mutated afterwards; the projection
// slices are owned by the summary.
type SectorSummary struct {
	Sector          string            `json:"sector"`
	Performance     float64           `json:"performance"`
	Volume          int64             `json:"volume"`
	MarketCap       float64           `json:"market_cap"`
	TopPerformers   []StockProjection `json:"top_performers"`
	WorstPerformers []StockProjection `json:"worst_performers"`
	AveragePE       NullableFloat     `json:"average_pe"`
	Volatility      float64           `json:"volatility"`
	Timestamp       string            `json:"timestamp"`
}

// CategorySummary is the reduction of one market category's record
// batch. A zero-count summary is a valid state (no losers today).
type CategorySummary struct {
	Category     string            `json:"category"`
	Count        int               `json:"count"`
	AvgChangePct float64           `json:"avg_change_pct"`
	TotalVolume  int64             `json:"total_volume"`
	TopMovers    []StockProjection `json:"top_movers"`
	Timestamp    string            `json:"timestamp"`
}
