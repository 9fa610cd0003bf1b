package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/wonny/marketbrief/internal/analysis"
)

// CSV export of assembled summaries, used by the API when the caller
// asks for format=csv.

// WriteSectorCSV writes the sector report as CSV, one row per sector
// in report order.
func WriteSectorCSV(w io.Writer, entries []analysis.SectorEntry) error {
	writer := csv.NewWriter(w)
	defer writer.Flush()

	headers := []string{
		"Sector", "Performance", "Volume", "Market Cap",
		"Volatility", "Average P/E", "Timestamp",
	}
	if err := writer.Write(headers); err != nil {
		return fmt.Errorf("failed to write CSV headers: %w", err)
	}

	for _, entry := range entries {
		s := entry.Summary
		row := []string{
			entry.Sector,
			strconv.FormatFloat(s.Performance, 'f', 2, 64),
			strconv.FormatInt(s.Volume, 10),
			strconv.FormatFloat(s.MarketCap, 'f', 0, 64),
			strconv.FormatFloat(s.Volatility, 'f', 2, 64),
			formatPE(float64(s.AveragePE)),
			s.Timestamp,
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write sector row: %w", err)
		}
	}

	writer.Flush()
	return writer.Error()
}

// WriteMarketCSV writes the category top movers as CSV, one row per
// mover, categories in priority order.
func WriteMarketCSV(w io.Writer, entries []analysis.CategoryEntry) error {
	writer := csv.NewWriter(w)
	defer writer.Flush()

	headers := []string{"Category", "Symbol", "Name", "Change %", "Volume", "Timestamp"}
	if err := writer.Write(headers); err != nil {
		return fmt.Errorf("failed to write CSV headers: %w", err)
	}

	for _, entry := range entries {
		for _, mover := range entry.Summary.TopMovers {
			row := []string{
				entry.Category,
				mover.Symbol,
				mover.Name,
				strconv.FormatFloat(mover.ChangePct, 'f', 2, 64),
				strconv.FormatInt(mover.Volume, 10),
				entry.Summary.Timestamp,
			}
			if err := writer.Write(row); err != nil {
				return fmt.Errorf("failed to write mover row: %w", err)
			}
		}
	}

	writer.Flush()
	return writer.Error()
}
