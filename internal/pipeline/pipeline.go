package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/wonny/marketbrief/internal/analysis"
	"github.com/wonny/marketbrief/internal/contracts"
	"github.com/wonny/marketbrief/internal/llm"
	"github.com/wonny/marketbrief/internal/mailer"
	"github.com/wonny/marketbrief/internal/report"
	"github.com/wonny/marketbrief/pkg/logger"
)

// Fetcher supplies record and article batches. The aggregation core
// never fetches; this is the collaborator boundary in front of it.
type Fetcher interface {
	FetchSector(ctx context.Context, sector string) ([]contracts.StockRecord, error)
	FetchMarketOverview(ctx context.Context) (map[string][]contracts.StockRecord, error)
	FetchNews(ctx context.Context, recentOnly bool) ([]contracts.NewsArticle, error)
}

// Pipeline runs fetch, aggregation, analysis, rendering, persistence
// and delivery for one report. Persistence and delivery are optional:
// a nil repository or sender is skipped.
type Pipeline struct {
	sectors     []string
	fetcher     Fetcher
	sectorAgg   *analysis.SectorAggregator
	categoryAgg *analysis.CategoryAggregator
	analyst     llm.Analyst
	sender      mailer.Sender
	repo        *report.Repository
	logger      *logger.Logger
	now         func() time.Time
}

// Result is the outcome of one report run.
type Result struct {
	Kind     string
	Analysis string
	HTML     string
	Subject  string
	Sectors  int
	Skipped  int
}

// New creates a pipeline.
func New(
	sectors []string,
	fetcher Fetcher,
	sectorAgg *analysis.SectorAggregator,
	categoryAgg *analysis.CategoryAggregator,
	analyst llm.Analyst,
	sender mailer.Sender,
	repo *report.Repository,
	log *logger.Logger,
) *Pipeline {
	return &Pipeline{
		sectors:     sectors,
		fetcher:     fetcher,
		sectorAgg:   sectorAgg,
		categoryAgg: categoryAgg,
		analyst:     analyst,
		sender:      sender,
		repo:        repo,
		logger:      log,
		now:         time.Now,
	}
}

// RunSectorReport builds and delivers the sector report. A sector whose
// fetch or aggregation fails is skipped; it simply does not appear in
// the final report. Only a run with zero usable sectors fails.
func (p *Pipeline) RunSectorReport(ctx context.Context) (*Result, error) {
	summaries := make(map[string]contracts.SectorSummary, len(p.sectors))
	skipped := 0

	for _, sector := range p.sectors {
		records, err := p.fetcher.FetchSector(ctx, sector)
		if err != nil {
			p.logger.WithError(err).WithField("sector", sector).Warn("Skipping sector: fetch failed")
			skipped++
			continue
		}

		summary, err := p.sectorAgg.Aggregate(sector, records)
		if err != nil {
			p.logger.WithError(err).WithField("sector", sector).Warn("Skipping sector: aggregation failed")
			skipped++
			continue
		}

		summaries[sector] = summary
	}

	if len(summaries) == 0 {
		return nil, fmt.Errorf("no sector could be summarized (%d skipped)", skipped)
	}

	entries := analysis.AssembleSectorReport(summaries)
	prompt := report.BuildSectorPrompt(entries)

	analysisText, err := p.analyst.Analyze(ctx, report.SectorSystemPrompt, prompt)
	if err != nil {
		return nil, fmt.Errorf("sector analysis: %w", err)
	}

	html, err := report.RenderSectorHTML(analysisText, entries)
	if err != nil {
		return nil, err
	}

	result := &Result{
		Kind:     report.KindSector,
		Analysis: analysisText,
		HTML:     html,
		Subject:  fmt.Sprintf("Sector Analysis Report - %s", p.now().Format("2006-01-02")),
		Sectors:  len(entries),
		Skipped:  skipped,
	}

	if err := p.finish(ctx, result, entries); err != nil {
		return nil, err
	}

	return result, nil
}

// RunMarketReport builds and delivers the market (category) report.
// Empty categories are valid and rendered as such, never errors.
func (p *Pipeline) RunMarketReport(ctx context.Context) (*Result, error) {
	overview, err := p.fetcher.FetchMarketOverview(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch market overview: %w", err)
	}

	categories := make(map[string]contracts.CategorySummary, len(overview))
	for label, records := range overview {
		categories[label] = p.categoryAgg.Aggregate(label, records)
	}

	entries := analysis.AssembleMarketReport(categories, contracts.DefaultCategoryOrder())
	prompt := report.BuildMarketPrompt(entries)

	analysisText, err := p.analyst.Analyze(ctx, report.MarketSystemPrompt, prompt)
	if err != nil {
		return nil, fmt.Errorf("market analysis: %w", err)
	}

	html, err := report.RenderMarketHTML(analysisText, entries)
	if err != nil {
		return nil, err
	}

	result := &Result{
		Kind:     report.KindMarket,
		Analysis: analysisText,
		HTML:     html,
		Subject:  fmt.Sprintf("Daily Market Analysis - %s", p.now().Format("2006-01-02")),
		Sectors:  len(entries),
	}

	if err := p.finish(ctx, result, entries); err != nil {
		return nil, err
	}

	return result, nil
}

// RunNewsReport builds and delivers the daily news summary. Only
// articles published today go into the summary; a day with no fresh
// articles fails the run rather than mailing an empty summary.
func (p *Pipeline) RunNewsReport(ctx context.Context) (*Result, error) {
	articles, err := p.fetcher.FetchNews(ctx, true)
	if err != nil {
		return nil, fmt.Errorf("fetch news: %w", err)
	}
	if len(articles) == 0 {
		return nil, fmt.Errorf("no recent news articles to summarize")
	}

	prompt := report.BuildNewsPrompt(articles)

	summary, err := p.analyst.Analyze(ctx, report.NewsSystemPrompt, prompt)
	if err != nil {
		return nil, fmt.Errorf("news summary: %w", err)
	}

	html, err := report.RenderNewsHTML(summary, articles)
	if err != nil {
		return nil, err
	}

	result := &Result{
		Kind:     report.KindNews,
		Analysis: summary,
		HTML:     html,
		Subject:  fmt.Sprintf("Daily News Summary - %s", p.now().Format("2006-01-02")),
		Sectors:  len(articles),
	}

	if err := p.finish(ctx, result, articles); err != nil {
		return nil, err
	}

	return result, nil
}

// finish persists and delivers a finished report.
func (p *Pipeline) finish(ctx context.Context, result *Result, entries interface{}) error {
	if p.repo != nil {
		summaries, err := json.Marshal(entries)
		if err != nil {
			return fmt.Errorf("marshal summaries: %w", err)
		}

		run := &report.Run{
			Kind:      result.Kind,
			Analysis:  result.Analysis,
			HTML:      result.HTML,
			Summaries: summaries,
		}
		if _, err := p.repo.Save(ctx, run); err != nil {
			return err
		}
	}

	if p.sender != nil {
		if err := p.sender.Send(result.Subject, result.HTML); err != nil {
			return fmt.Errorf("deliver %s report: %w", result.Kind, err)
		}
	}

	p.logger.WithFields(map[string]interface{}{
		"kind":    result.Kind,
		"groups":  result.Sectors,
		"skipped": result.Skipped,
	}).Info("Report run completed")

	return nil
}
