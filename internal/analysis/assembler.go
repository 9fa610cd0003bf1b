package analysis

import (
	"sort"

	"github.com/wonny/marketbrief/internal/contracts"
)

// SectorEntry pairs a sector name with its summary in report order.
type SectorEntry struct {
	Sector  string
	Summary contracts.SectorSummary
}

// CategoryEntry pairs a category label with its summary in report order.
type CategoryEntry struct {
	Category string
	Summary  contracts.CategorySummary
}

// AssembleSectorReport orders sector summaries for presentation:
// performance descending, ties broken by sector name ascending. Map
// iteration order is not deterministic, so the tie-break keeps repeated
// runs identical.
func AssembleSectorReport(summaries map[string]contracts.SectorSummary) []SectorEntry {
	entries := make([]SectorEntry, 0, len(summaries))
	for name, summary := range summaries {
		entries = append(entries, SectorEntry{Sector: name, Summary: summary})
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Summary.Performance != entries[j].Summary.Performance {
			return entries[i].Summary.Performance > entries[j].Summary.Performance
		}
		return entries[i].Sector < entries[j].Sector
	})

	return entries
}

// AssembleMarketReport orders category summaries by the caller's
// priority list, not by any metric: category order carries presentation
// meaning (most-active leads the report). Labels missing from the map
// are skipped.
func AssembleMarketReport(categories map[string]contracts.CategorySummary, priority []string) []CategoryEntry {
	entries := make([]CategoryEntry, 0, len(priority))
	for _, label := range priority {
		summary, ok := categories[label]
		if !ok {
			continue
		}
		entries = append(entries, CategoryEntry{Category: label, Summary: summary})
	}
	return entries
}
