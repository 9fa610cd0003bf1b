package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/wonny/marketbrief/internal/analysis"
	"github.com/wonny/marketbrief/internal/contracts"
	"github.com/wonny/marketbrief/internal/report"
	"github.com/wonny/marketbrief/pkg/logger"
)

// Fetcher supplies record and article batches to the handlers.
type Fetcher interface {
	FetchSector(ctx context.Context, sector string) ([]contracts.StockRecord, error)
	FetchMarketOverview(ctx context.Context) (map[string][]contracts.StockRecord, error)
	FetchNews(ctx context.Context, recentOnly bool) ([]contracts.NewsArticle, error)
}

// SummaryHandler serves on-demand sector and market summaries plus the
// latest persisted report.
type SummaryHandler struct {
	fetcher     Fetcher
	sectorAgg   *analysis.SectorAggregator
	categoryAgg *analysis.CategoryAggregator
	repo        *report.Repository
	sectors     []string
	logger      *logger.Logger
}

// NewSummaryHandler creates a summary handler. repo may be nil when
// persistence is disabled; the latest-report endpoint then returns 503.
func NewSummaryHandler(
	fetcher Fetcher,
	sectorAgg *analysis.SectorAggregator,
	categoryAgg *analysis.CategoryAggregator,
	repo *report.Repository,
	sectors []string,
	log *logger.Logger,
) *SummaryHandler {
	return &SummaryHandler{
		fetcher:     fetcher,
		sectorAgg:   sectorAgg,
		categoryAgg: categoryAgg,
		repo:        repo,
		sectors:     sectors,
		logger:      log,
	}
}

// GetSectors handles GET /api/sector?sector=X|all[&format=csv].
func (h *SummaryHandler) GetSectors(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 60*time.Second)
	defer cancel()

	sector := r.URL.Query().Get("sector")
	if sector == "" {
		writeError(w, http.StatusBadRequest, "please specify sector parameter or use sector=all")
		return
	}

	wanted := h.sectors
	if sector != "all" {
		wanted = []string{sector}
	}

	summaries := make(map[string]contracts.SectorSummary, len(wanted))
	for _, name := range wanted {
		records, err := h.fetcher.FetchSector(ctx, name)
		if err != nil {
			h.logger.WithError(err).WithField("sector", name).Warn("Sector fetch failed")
			continue
		}

		summary, err := h.sectorAgg.Aggregate(name, records)
		if err != nil {
			h.logger.WithError(err).WithField("sector", name).Warn("Sector aggregation failed")
			continue
		}

		summaries[name] = summary
	}

	if len(summaries) == 0 {
		writeError(w, http.StatusBadGateway, fmt.Sprintf("no data available for sector %q", sector))
		return
	}

	entries := analysis.AssembleSectorReport(summaries)

	if r.URL.Query().Get("format") == "csv" {
		writeCSVHeaders(w, "sectors")
		if err := report.WriteSectorCSV(w, entries); err != nil {
			h.logger.WithError(err).Error("Failed to write sector CSV")
		}
		return
	}

	writeSuccess(w, entries)
}

// GetMarket handles GET /api/market[?format=csv].
func (h *SummaryHandler) GetMarket(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 60*time.Second)
	defer cancel()

	overview, err := h.fetcher.FetchMarketOverview(ctx)
	if err != nil {
		writeError(w, http.StatusBadGateway, err.Error())
		return
	}

	categories := make(map[string]contracts.CategorySummary, len(overview))
	for label, records := range overview {
		categories[label] = h.categoryAgg.Aggregate(label, records)
	}

	entries := analysis.AssembleMarketReport(categories, contracts.DefaultCategoryOrder())

	if r.URL.Query().Get("format") == "csv" {
		writeCSVHeaders(w, "market")
		if err := report.WriteMarketCSV(w, entries); err != nil {
			h.logger.WithError(err).Error("Failed to write market CSV")
		}
		return
	}

	writeSuccess(w, entries)
}

// GetNews handles GET /api/news[?recent=true].
func (h *SummaryHandler) GetNews(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 60*time.Second)
	defer cancel()

	recentOnly := r.URL.Query().Get("recent") == "true"

	articles, err := h.fetcher.FetchNews(ctx, recentOnly)
	if err != nil {
		writeError(w, http.StatusBadGateway, err.Error())
		return
	}

	writeSuccess(w, articles)
}

// GetLatestReport handles GET /api/report/latest?kind=sector|market|news.
func (h *SummaryHandler) GetLatestReport(w http.ResponseWriter, r *http.Request) {
	if h.repo == nil {
		writeError(w, http.StatusServiceUnavailable, "report persistence is disabled")
		return
	}

	kind := r.URL.Query().Get("kind")
	if kind == "" {
		kind = report.KindSector
	}
	if kind != report.KindSector && kind != report.KindMarket && kind != report.KindNews {
		writeError(w, http.StatusBadRequest, "kind must be sector, market or news")
		return
	}

	run, err := h.repo.Latest(r.Context(), kind)
	if errors.Is(err, report.ErrNotFound) {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}
	if err != nil {
		h.logger.WithError(err).Error("Failed to load latest report")
		writeError(w, http.StatusInternalServerError, "failed to load report")
		return
	}

	writeSuccess(w, run)
}

func writeSuccess(w http.ResponseWriter, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"status": "success",
		"data":   data,
	})
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{
		"error": msg,
	})
}

func writeCSVHeaders(w http.ResponseWriter, name string) {
	filename := fmt.Sprintf("%s_%s.csv", name, time.Now().Format("20060102_150405"))
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
}
