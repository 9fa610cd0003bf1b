package yahoo

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/wonny/marketbrief/internal/contracts"
)

// categoryPaths maps market category labels to their quote-page paths.
var categoryPaths = map[string]string{
	contracts.CategoryMostActive: "/markets/stocks/most-active/",
	contracts.CategoryGainers:    "/markets/stocks/gainers/",
	contracts.CategoryLosers:     "/markets/stocks/losers/",
}

// FetchCategory fetches the record batch for one market category.
func (c *Client) FetchCategory(ctx context.Context, category string) ([]contracts.StockRecord, error) {
	path, ok := categoryPaths[category]
	if !ok {
		return nil, fmt.Errorf("unknown category: %s", category)
	}

	cacheKey := fmt.Sprintf("category:%s", category)
	var cached []contracts.StockRecord
	if found, _ := c.cache.Get(ctx, cacheKey, &cached); found {
		c.logger.WithFields(map[string]interface{}{
			"category": category,
			"count":    len(cached),
		}).Debug("Category batch served from cache")
		return cached, nil
	}

	html, err := c.fetchHTML(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("fetch category %s: %w", category, err)
	}

	records, err := c.parseQuoteTable(html, "")
	if err != nil {
		return nil, fmt.Errorf("parse category %s: %w", category, err)
	}

	if err := c.cache.Set(ctx, cacheKey, records, c.cacheTTL); err != nil {
		c.logger.WithError(err).Warn("Failed to cache category batch")
	}

	c.logger.WithFields(map[string]interface{}{
		"category": category,
		"count":    len(records),
	}).Info("Fetched category batch")

	return records, nil
}

// FetchMarketOverview fetches all market categories. A category that
// fails to fetch is logged and omitted; the remaining categories still
// make it into the report.
func (c *Client) FetchMarketOverview(ctx context.Context) (map[string][]contracts.StockRecord, error) {
	overview := make(map[string][]contracts.StockRecord, len(categoryPaths))

	for _, category := range contracts.DefaultCategoryOrder() {
		records, err := c.FetchCategory(ctx, category)
		if err != nil {
			c.logger.WithError(err).WithField("category", category).Warn("Failed to fetch category")
			continue
		}
		overview[category] = records
	}

	if len(overview) == 0 {
		return nil, fmt.Errorf("no market category could be fetched")
	}

	return overview, nil
}

// parseQuoteTable extracts stock records from a quote-table page.
// Cells that fail numeric coercion keep their zero value; a row without
// a symbol is dropped.
func (c *Client) parseQuoteTable(html, sector string) ([]contracts.StockRecord, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("parse HTML: %w", err)
	}

	timestamp := c.now().Format(time.RFC3339)
	var records []contracts.StockRecord

	doc.Find("table tbody tr").Each(func(i int, row *goquery.Selection) {
		cells := row.Find("td")
		if cells.Length() < 6 {
			return
		}

		symbol := strings.TrimSpace(cells.Eq(0).Text())
		if symbol == "" {
			return
		}

		record := contracts.StockRecord{
			Symbol:    symbol,
			Name:      strings.TrimSpace(cells.Eq(1).Text()),
			MarketCap: strings.TrimSpace(cells.Eq(6).Text()),
			Sector:    sector,
			PERatio:   contracts.AbsentPE(),
			Timestamp: timestamp,
		}

		if price, ok := parseFloat(cells.Eq(2).Text()); ok {
			record.Price = price
		}
		if change, ok := parseFloat(cells.Eq(3).Text()); ok {
			record.Change = change
		}
		if changePct, ok := parsePercent(cells.Eq(4).Text()); ok {
			record.ChangePct = changePct
		}
		if volume, ok := parseVolume(cells.Eq(5).Text()); ok {
			record.Volume = volume
		}
		if cells.Length() > 7 {
			record.PERatio = contracts.NullableFloat(parsePE(cells.Eq(7).Text()))
		}

		records = append(records, record)
	})

	return records, nil
}
