package report

import (
	"bytes"
	"encoding/csv"
	"testing"

	"github.com/wonny/marketbrief/internal/analysis"
	"github.com/wonny/marketbrief/internal/contracts"
)

func TestWriteSectorCSV(t *testing.T) {
	var buf bytes.Buffer

	if err := WriteSectorCSV(&buf, sectorEntries()); err != nil {
		t.Fatalf("WriteSectorCSV() error = %v", err)
	}

	rows, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("ReadAll() error = %v", err)
	}

	if len(rows) != 3 {
		t.Fatalf("got %d rows, want 3 (header + 2 sectors)", len(rows))
	}

	if rows[0][0] != "Sector" || rows[0][5] != "Average P/E" {
		t.Errorf("header = %v", rows[0])
	}

	tech := rows[1]
	if tech[0] != "technology" || tech[1] != "2.15" || tech[2] != "350" {
		t.Errorf("technology row = %v", tech)
	}

	energy := rows[2]
	if energy[5] != "N/A" {
		t.Errorf("absent P/E rendered as %q, want N/A", energy[5])
	}
}

func TestWriteMarketCSV(t *testing.T) {
	entries := []analysis.CategoryEntry{
		{
			Category: contracts.CategoryMostActive,
			Summary: contracts.CategorySummary{
				Category:  "most_active",
				Count:     2,
				Timestamp: "2026-08-28T07:00:00Z",
				TopMovers: []contracts.StockProjection{
					{Symbol: "TSLA", Name: "Tesla", ChangePct: -8.0, Volume: 900},
					{Symbol: "AAPL", Name: "Apple", ChangePct: 0.65, Volume: 500},
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

	var buf bytes.Buffer
	if err := WriteMarketCSV(&buf, entries); err != nil {
		t.Fatalf("WriteMarketCSV() error = %v", err)
	}

	rows, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("ReadAll() error = %v", err)
	}

	// Header plus one row per mover; the empty category adds none.
	if len(rows) != 3 {
		t.Fatalf("got %d rows, want 3", len(rows))
	}

	if rows[1][0] != "most_active" || rows[1][1] != "TSLA" || rows[1][3] != "-8.00" {
		t.Errorf("first mover row = %v", rows[1])
	}
}
