package report

import (
	"fmt"
	"math"
	"strings"

	"github.com/wonny/marketbrief/internal/analysis"
)

// System prompts for the text-generation service.
const (
	SectorSystemPrompt = "You are a professional sector analyst. Provide clear, comprehensive, and well-structured sector analysis."
	MarketSystemPrompt = "You are a professional stock market analyst. Provide clear, comprehensive, and well-structured market analysis."
)

// BuildSectorPrompt renders the sector summaries into the analysis
// prompt. Entries are expected in report order (performance descending)
// from the assembler.
func BuildSectorPrompt(entries []analysis.SectorEntry) string {
	var sb strings.Builder

	sb.WriteString("Please analyze the following sector performance data and provide a comprehensive market analysis:\n\n")
	sb.WriteString("Sector Performance Summary:\n\n")

	for _, entry := range entries {
		s := entry.Summary
		fmt.Fprintf(&sb, "%s Sector:\n", titleCase(entry.Sector))
		fmt.Fprintf(&sb, "- Performance: %.2f%%\n", s.Performance)
		fmt.Fprintf(&sb, "- Market Cap: $%.2fT\n", s.MarketCap/1e12)
		fmt.Fprintf(&sb, "- Volume: %d\n", s.Volume)
		fmt.Fprintf(&sb, "- Volatility: %.2f%%\n", s.Volatility)
		fmt.Fprintf(&sb, "- Average P/E: %s\n", formatPE(float64(s.AveragePE)))

		sb.WriteString("\nTop Performers:\n")
		for _, stock := range s.TopPerformers {
			fmt.Fprintf(&sb, "  - %s: %.2f%%\n", stock.Symbol, stock.ChangePct)
		}

		sb.WriteString("\nWorst Performers:\n")
		for _, stock := range s.WorstPerformers {
			fmt.Fprintf(&sb, "  - %s: %.2f%%\n", stock.Symbol, stock.ChangePct)
		}

		sb.WriteString("\n")
	}

	sb.WriteString(`Please provide a detailed analysis covering:
1. Overall sector performance and market trends
2. Sector rotation and relative strength
3. Notable sector-specific developments
4. Risk analysis and sector volatility
5. Market capitalization distribution
6. Investment opportunities and risks
7. Volume analysis and sector participation

Analysis:`)

	return sb.String()
}

// BuildMarketPrompt renders the category summaries into the market
// trends prompt. Entries keep the caller's category priority order.
func BuildMarketPrompt(entries []analysis.CategoryEntry) string {
	var sb strings.Builder

	sb.WriteString("Please analyze the current market conditions based on the following data:\n\n")

	for _, entry := range entries {
		s := entry.Summary
		fmt.Fprintf(&sb, "%s:\n", titleCase(entry.Category))
		fmt.Fprintf(&sb, "- Stocks: %d\n", s.Count)
		if s.Count == 0 {
			sb.WriteString("- No activity in this category today\n\n")
			continue
		}
		fmt.Fprintf(&sb, "- Average Change: %.2f%%\n", s.AvgChangePct)
		fmt.Fprintf(&sb, "- Total Volume: %d\n", s.TotalVolume)

		sb.WriteString("- Top Movers:\n")
		for _, stock := range s.TopMovers {
			fmt.Fprintf(&sb, "  - %s (%s): %.2f%% on volume of %d\n",
				stock.Symbol, stock.Name, stock.ChangePct, stock.Volume)
		}
		sb.WriteString("\n")
	}

	sb.WriteString(`Provide a comprehensive market analysis focusing on:
1. Overall market sentiment and major trends
2. Notable sector movements and patterns
3. Significant individual stock movements and their potential impact
4. Volume analysis and market participation
5. Potential market drivers and implications for investors

Analysis:`)

	return sb.String()
}

// formatPE renders a P/E value, showing N/A for the NaN sentinel.
func formatPE(pe float64) string {
	if math.IsNaN(pe) {
		return "N/A"
	}
	return fmt.Sprintf("%.2f", pe)
}

// titleCase turns a snake_case label into a display heading
// ("most_active" -> "Most Active").
func titleCase(label string) string {
	words := strings.Split(label, "_")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
