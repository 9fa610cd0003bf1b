package report

import (
	"strings"
	"testing"

	"github.com/wonny/marketbrief/internal/analysis"
	"github.com/wonny/marketbrief/internal/contracts"
)

func TestRenderSectorHTML(t *testing.T) {
	html, err := RenderSectorHTML("Markets were mixed today.\nTech led the gains.", sectorEntries())
	if err != nil {
		t.Fatalf("RenderSectorHTML() error = %v", err)
	}

	for _, want := range []string{
		"Sector Analysis",
		"Markets were mixed today.<br>Tech led the gains.",
		"Technology",
		// html/template escapes the plus sign in text context.
		"&#43;2.15%",
		"$2.50T",
		"Average P/E: 24.50",
		"Average P/E: N/A",
		"AAA Inc",
	} {
		if !strings.Contains(html, want) {
			t.Errorf("rendered HTML missing %q", want)
		}
	}
}

func TestRenderSectorHTMLEscapesAnalysis(t *testing.T) {
	html, err := RenderSectorHTML("<script>alert(1)</script>", sectorEntries())
	if err != nil {
		t.Fatalf("RenderSectorHTML() error = %v", err)
	}

	if strings.Contains(html, "<script>") {
		t.Error("analysis text was not escaped")
	}
	if !strings.Contains(html, "&lt;script&gt;") {
		t.Error("expected escaped script tag in output")
	}
}

func TestRenderMarketHTML(t *testing.T) {
	entries := []analysis.CategoryEntry{
		{
			Category: contracts.CategoryGainers,
			Summary: contracts.CategorySummary{
				Category: "gainers",
				Count:    1,
				TopMovers: []contracts.StockProjection{
					{Symbol: "NVDA", Name: "NVIDIA", ChangePct: 6.3, Volume: 41000000},
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

	html, err := RenderMarketHTML("Risk appetite returned.", entries)
	if err != nil {
		t.Fatalf("RenderMarketHTML() error = %v", err)
	}

	for _, want := range []string{
		"Market Analysis",
		"Risk appetite returned.",
		"Gainers",
		"NVDA",
		"&#43;6.30%",
		"Losers",
		"No activity in this category today.",
	} {
		if !strings.Contains(html, want) {
			t.Errorf("rendered HTML missing %q", want)
		}
	}
}
