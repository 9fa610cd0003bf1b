package report

import (
	"fmt"
	"html/template"
	"strings"

	"github.com/wonny/marketbrief/internal/contracts"
)

// NewsSystemPrompt primes the model for the daily news summary.
const NewsSystemPrompt = "You are a professional news analyst. Provide clear, comprehensive, and well-structured summaries."

// BuildNewsPrompt renders the fetched articles into the summary prompt.
func BuildNewsPrompt(articles []contracts.NewsArticle) string {
	var sb strings.Builder

	sb.WriteString(`Below are several news articles. Please provide a comprehensive summary focusing on:
- Main themes and trends
- Key developments
- Important implications

Articles:
`)

	for _, article := range articles {
		fmt.Fprintf(&sb, "\nTitle: %s\nDescription: %s\n", article.Title, article.Description)
	}

	sb.WriteString("\nSummary:")

	return sb.String()
}

var newsReportTmpl = template.Must(template.New("news_report").Funcs(templateFuncs).Parse(`<html>
<body style="font-family: Arial, sans-serif; max-width: 800px; margin: 0 auto;">
	<h2 style="color: #2c3e50;">News Summary</h2>
	<div style="background-color: #f9f9f9; padding: 20px; border-radius: 5px;">
		{{nl2br .Summary}}
	</div>

	<h3 style="color: #2c3e50; margin-top: 30px;">Original Articles</h3>
	{{range .Articles}}
	<div style="border-bottom: 1px solid #eee; padding: 15px 0;">
		<h4 style="margin: 0; color: #2c3e50;">
			<a href="{{.Link}}" style="color: #3498db; text-decoration: none;">{{.Title}}</a>
		</h4>
		<p style="color: #7f8c8d; font-size: 0.9em; margin: 5px 0;">{{.Date}}</p>
		<p style="color: #34495e; margin: 10px 0;">{{.Description}}</p>
	</div>
	{{end}}
</body>
</html>`))

// newsReportData is the template context for the news report.
type newsReportData struct {
	Summary  string
	Articles []contracts.NewsArticle
}

// RenderNewsHTML renders the news summary mail body: the generated
// summary followed by the original articles with links.
func RenderNewsHTML(summary string, articles []contracts.NewsArticle) (string, error) {
	var sb strings.Builder
	data := newsReportData{Summary: summary, Articles: articles}
	if err := newsReportTmpl.Execute(&sb, data); err != nil {
		return "", fmt.Errorf("render news report: %w", err)
	}
	return sb.String(), nil
}
