package report

import (
	"fmt"
	"html/template"
	"strings"

	"github.com/wonny/marketbrief/internal/analysis"
	"github.com/wonny/marketbrief/internal/contracts"
)

// HTML rendering of the assembled summaries plus the generated
// analysis text, in the layout of the original daily mail.

var templateFuncs = template.FuncMap{
	"pct": func(v float64) string {
		return fmt.Sprintf("%+.2f%%", v)
	},
	"trillions": func(v float64) string {
		return fmt.Sprintf("$%.2fT", v/1e12)
	},
	"pe": func(v contracts.NullableFloat) string {
		if !v.Valid() {
			return "N/A"
		}
		return fmt.Sprintf("%.2f", float64(v))
	},
	"title": titleCase,
	"color": func(v float64) string {
		if v > 0 {
			return "#2e7d32"
		}
		return "#c62828"
	},
	"cardColor": func(v float64) string {
		if v > 0 {
			return "#e8f5e9"
		}
		return "#ffebee"
	},
	"nl2br": func(s string) template.HTML {
		return template.HTML(strings.ReplaceAll(template.HTMLEscapeString(s), "\n", "<br>"))
	},
}

var sectorReportTmpl = template.Must(template.New("sector_report").Funcs(templateFuncs).Parse(`<html>
<body style="font-family: Arial, sans-serif; max-width: 800px; margin: 0 auto;">
	<h2 style="color: #2c3e50;">Sector Analysis</h2>
	<div style="background-color: #f9f9f9; padding: 20px; border-radius: 5px;">
		{{nl2br .Analysis}}
	</div>

	<h3 style="color: #2c3e50; margin-top: 30px;">Sector Performance Overview</h3>
	<div style="display: flex; flex-wrap: wrap; gap: 20px; margin-top: 20px;">
	{{range .Entries}}{{with .Summary}}
		<div style="flex: 1 1 300px; background-color: {{cardColor .Performance}}; padding: 15px; border-radius: 5px;">
			<h4 style="margin: 0; color: #2c3e50;">{{title .Sector}}</h4>
			<div style="color: {{color .Performance}}; font-size: 1.2em; font-weight: bold;">{{pct .Performance}}</div>
			<div style="font-size: 0.9em; color: #555;">
				<div>Volume: {{.Volume}}</div>
				<div>Market Cap: {{trillions .MarketCap}}</div>
				<div>Volatility: {{printf "%.2f%%" .Volatility}}</div>
				<div>Average P/E: {{pe .AveragePE}}</div>
			</div>
		</div>
	{{end}}{{end}}
	</div>

	<h3 style="color: #2c3e50; margin-top: 30px;">Top Performers by Sector</h3>
	{{range .Entries}}
	<h4 style="color: #2c3e50; margin-top: 20px;">{{title .Sector}}</h4>
	<table style="width: 100%; border-collapse: collapse; margin-bottom: 20px;">
		<tr style="background-color: #f2f2f2;">
			<th style="padding: 8px; text-align: left;">Symbol</th>
			<th style="padding: 8px; text-align: left;">Name</th>
			<th style="padding: 8px; text-align: right;">Change %</th>
			<th style="padding: 8px; text-align: right;">Volume</th>
		</tr>
	{{range .Summary.TopPerformers}}
		<tr style="border-bottom: 1px solid #eee;">
			<td style="padding: 8px;">{{.Symbol}}</td>
			<td style="padding: 8px;">{{.Name}}</td>
			<td style="padding: 8px; text-align: right; color: {{color .ChangePct}};">{{pct .ChangePct}}</td>
			<td style="padding: 8px; text-align: right;">{{.Volume}}</td>
		</tr>
	{{end}}
	</table>
	{{end}}
</body>
</html>`))

var marketReportTmpl = template.Must(template.New("market_report").Funcs(templateFuncs).Parse(`<html>
<body style="font-family: Arial, sans-serif; max-width: 800px; margin: 0 auto;">
	<h2 style="color: #2c3e50;">Market Analysis</h2>
	<div style="background-color: #f9f9f9; padding: 20px; border-radius: 5px;">
		{{nl2br .Analysis}}
	</div>

	{{range .Entries}}
	<h3 style="color: #2c3e50; margin-top: 30px;">{{title .Category}}</h3>
	{{if eq .Summary.Count 0}}
	<p style="color: #7f8c8d;">No activity in this category today.</p>
	{{else}}
	<table style="width: 100%; border-collapse: collapse;">
		<tr style="background-color: #f2f2f2;">
			<th style="padding: 8px; text-align: left;">Symbol</th>
			<th style="padding: 8px; text-align: left;">Name</th>
			<th style="padding: 8px; text-align: right;">Change %</th>
			<th style="padding: 8px; text-align: right;">Volume</th>
		</tr>
	{{range .Summary.TopMovers}}
		<tr style="border-bottom: 1px solid #eee;">
			<td style="padding: 8px;">{{.Symbol}}</td>
			<td style="padding: 8px;">{{.Name}}</td>
			<td style="padding: 8px; text-align: right; color: {{color .ChangePct}};">{{pct .ChangePct}}</td>
			<td style="padding: 8px; text-align: right;">{{.Volume}}</td>
		</tr>
	{{end}}
	</table>
	{{end}}
	{{end}}
</body>
</html>`))

// sectorReportData is the template context for the sector report.
type sectorReportData struct {
	Analysis string
	Entries  []analysis.SectorEntry
}

// marketReportData is the template context for the market report.
type marketReportData struct {
	Analysis string
	Entries  []analysis.CategoryEntry
}

// RenderSectorHTML renders the sector report mail body.
func RenderSectorHTML(analysisText string, entries []analysis.SectorEntry) (string, error) {
	var sb strings.Builder
	data := sectorReportData{Analysis: analysisText, Entries: entries}
	if err := sectorReportTmpl.Execute(&sb, data); err != nil {
		return "", fmt.Errorf("render sector report: %w", err)
	}
	return sb.String(), nil
}

// RenderMarketHTML renders the market report mail body.
func RenderMarketHTML(analysisText string, entries []analysis.CategoryEntry) (string, error) {
	var sb strings.Builder
	data := marketReportData{Analysis: analysisText, Entries: entries}
	if err := marketReportTmpl.Execute(&sb, data); err != nil {
		return "", fmt.Errorf("render market report: %w", err)
	}
	return sb.String(), nil
}
