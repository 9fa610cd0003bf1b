package yahoo

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/wonny/marketbrief/pkg/config"
	"github.com/wonny/marketbrief/pkg/httputil"
	"github.com/wonny/marketbrief/pkg/logger"
	"github.com/wonny/marketbrief/pkg/redis"
)

// Client fetches stock records from the Yahoo Finance quote pages.
// Fetched batches are cached in Redis for the configured TTL so the
// aggregation pipeline and the API server do not hammer the site.
type Client struct {
	httpClient *httputil.Client
	cache      *redis.Cache
	logger     *logger.Logger
	baseURL    string
	cacheTTL   time.Duration
	now        func() time.Time
}

// NewClient creates a new Yahoo Finance client.
func NewClient(cfg *config.Config, httpClient *httputil.Client, cache *redis.Cache, log *logger.Logger) *Client {
	return &Client{
		httpClient: httpClient,
		cache:      cache,
		logger:     log,
		baseURL:    cfg.Yahoo.BaseURL,
		cacheTTL:   cfg.Yahoo.CacheTTL,
		now:        time.Now,
	}
}

// fetchHTML fetches a quote page and returns its body.
func (c *Client) fetchHTML(ctx context.Context, path string) (string, error) {
	fullURL := fmt.Sprintf("%s%s", c.baseURL, path)

	resp, err := c.httpClient.Get(ctx, fullURL)
	if err != nil {
		return "", fmt.Errorf("HTTP request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response body: %w", err)
	}

	return string(body), nil
}
