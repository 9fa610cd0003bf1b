package report

import (
	"strings"
	"testing"

	"github.com/wonny/marketbrief/internal/analysis"
	"github.com/wonny/marketbrief/internal/contracts"
)

func sectorEntries() []analysis.SectorEntry {
	return []analysis.SectorEntry{
		{
			Sector: "technology",
			Summary: contracts.SectorSummary{
				Sector:      "technology",
				Performance: 2.15,
				Volume:      350,
				MarketCap:   2.5e12,
				Volatility:  3.0,
				AveragePE:   contracts.NullableFloat(24.5),
				TopPerformers: []contracts.StockProjection{
					{Symbol: "AAA", Name: "AAA Inc", ChangePct: 5.0, Volume: 50},
				},
				WorstPerformers: []contracts.StockProjection{
					{Symbol: "BBB", Name: "BBB Inc", ChangePct: -1.0, Volume: 200},
				},
			},
		},
		{
			Sector: "energy",
			Summary: contracts.SectorSummary{
				Sector:      "energy",
				Performance: -0.8,
				MarketCap:   1.2e12,
				AveragePE:   contracts.AbsentPE(),
			},
		},
	}
}

func TestBuildSectorPrompt(t *testing.T) {
	prompt := BuildSectorPrompt(sectorEntries())

	for _, want := range []string{
		"Technology Sector:",
		"- Performance: 2.15%",
		"- Market Cap: $2.50T",
		"- Volume: 350",
		"- Volatility: 3.00%",
		"- Average P/E: 24.50",
		"  - AAA: 5.00%",
		"  - BBB: -1.00%",
		"Energy Sector:",
		"- Average P/E: N/A",
		"Analysis:",
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q", want)
		}
	}

	// Entries render in the given order.
	if strings.Index(prompt, "Technology Sector:") > strings.Index(prompt, "Energy Sector:") {
		t.Error("sectors rendered out of order")
	}
}

func TestBuildMarketPrompt(t *testing.T) {
	entries := []analysis.CategoryEntry{
		{
			Category: contracts.CategoryMostActive,
			Summary: contracts.CategorySummary{
				Category:     "most_active",
				Count:        2,
				AvgChangePct: -2.5,
				TotalVolume:  1000,
				TopMovers: []contracts.StockProjection{
					{Symbol: "TSLA", Name: "Tesla", ChangePct: -8.0, Volume: 900},
				},
			},
		},
		{
			Category: contracts.CategoryLosers,
			Summary: contracts.CategorySummary{
				Category:  "losers",
				Count:     0,
				TopMovers: []contracts.StockProjection{},
			},
		},
	}

	prompt := BuildMarketPrompt(entries)

	for _, want := range []string{
		"Most Active:",
		"- Stocks: 2",
		"- Average Change: -2.50%",
		"- Total Volume: 1000",
		"  - TSLA (Tesla): -8.00% on volume of 900",
		"Losers:",
		"- No activity in this category today",
		"Analysis:",
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}

func TestTitleCase(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"most_active", "Most Active"},
		{"gainers", "Gainers"},
		{"real_estate", "Real Estate"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := titleCase(tt.input); got != tt.want {
			t.Errorf("titleCase(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
