package yahoo

import (
	"context"
	"fmt"

	"github.com/wonny/marketbrief/internal/contracts"
)

// sectorPaths maps sector names to their quote-page paths.
var sectorPaths = map[string]string{
	"technology":    "/sectors/technology/",
	"healthcare":    "/sectors/healthcare/",
	"financial":     "/sectors/financial-services/",
	"energy":        "/sectors/energy/",
	"consumer":      "/sectors/consumer-cyclical/",
	"industrial":    "/sectors/industrials/",
	"materials":     "/sectors/basic-materials/",
	"utilities":     "/sectors/utilities/",
	"real_estate":   "/sectors/real-estate/",
	"communication": "/sectors/communication-services/",
}

// Sectors returns the sector names this client can fetch.
func Sectors() []string {
	names := make([]string, 0, len(sectorPaths))
	for name := range sectorPaths {
		names = append(names, name)
	}
	return names
}

// ValidSector reports whether a sector name has a quote page.
func ValidSector(name string) bool {
	_, ok := sectorPaths[name]
	return ok
}

// FetchSector fetches the record batch for one sector. Every record in
// the batch carries the sector name.
func (c *Client) FetchSector(ctx context.Context, sector string) ([]contracts.StockRecord, error) {
	path, ok := sectorPaths[sector]
	if !ok {
		return nil, fmt.Errorf("unknown sector: %s", sector)
	}

	cacheKey := fmt.Sprintf("sector:%s", sector)
	var cached []contracts.StockRecord
	if found, _ := c.cache.Get(ctx, cacheKey, &cached); found {
		c.logger.WithFields(map[string]interface{}{
			"sector": sector,
			"count":  len(cached),
		}).Debug("Sector batch served from cache")
		return cached, nil
	}

	html, err := c.fetchHTML(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("fetch sector %s: %w", sector, err)
	}

	records, err := c.parseQuoteTable(html, sector)
	if err != nil {
		return nil, fmt.Errorf("parse sector %s: %w", sector, err)
	}

	if err := c.cache.Set(ctx, cacheKey, records, c.cacheTTL); err != nil {
		c.logger.WithError(err).Warn("Failed to cache sector batch")
	}

	c.logger.WithFields(map[string]interface{}{
		"sector": sector,
		"count":  len(records),
	}).Info("Fetched sector batch")

	return records, nil
}
