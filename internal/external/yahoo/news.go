package yahoo

import (
	"context"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/wonny/marketbrief/internal/contracts"
)

const newsPath = "/news/"

// FetchNews fetches the news stream page and returns its articles.
// With recentOnly set, articles not published today (by the injected
// clock) are dropped, including ones without a date.
func (c *Client) FetchNews(ctx context.Context, recentOnly bool) ([]contracts.NewsArticle, error) {
	cacheKey := fmt.Sprintf("news:recent=%t", recentOnly)
	var cached []contracts.NewsArticle
	if found, _ := c.cache.Get(ctx, cacheKey, &cached); found {
		c.logger.WithField("count", len(cached)).Debug("News batch served from cache")
		return cached, nil
	}

	html, err := c.fetchHTML(ctx, newsPath)
	if err != nil {
		return nil, fmt.Errorf("fetch news: %w", err)
	}

	articles, err := c.parseNewsStream(html, recentOnly)
	if err != nil {
		return nil, fmt.Errorf("parse news: %w", err)
	}

	if err := c.cache.Set(ctx, cacheKey, articles, c.cacheTTL); err != nil {
		c.logger.WithError(err).Warn("Failed to cache news batch")
	}

	c.logger.WithFields(map[string]interface{}{
		"count":  len(articles),
		"recent": recentOnly,
	}).Info("Fetched news batch")

	return articles, nil
}

// parseNewsStream extracts articles from the news stream page. Items
// without a title or link are dropped; relative links are resolved
// against the base URL.
func (c *Client) parseNewsStream(html string, recentOnly bool) ([]contracts.NewsArticle, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("parse HTML: %w", err)
	}

	today := c.now().Format("2006-01-02")
	var articles []contracts.NewsArticle

	doc.Find("article").Each(func(i int, item *goquery.Selection) {
		title := strings.TrimSpace(item.Find("h3").First().Text())
		link, _ := item.Find("a[href]").First().Attr("href")
		link = strings.TrimSpace(link)
		if title == "" || link == "" {
			return
		}
		if strings.HasPrefix(link, "/") {
			link = c.baseURL + link
		}

		date, _ := item.Find("time").First().Attr("datetime")
		if recentOnly && (date == "" || !strings.HasPrefix(date, today)) {
			return
		}

		articles = append(articles, contracts.NewsArticle{
			Title:       title,
			Link:        link,
			Date:        date,
			Description: strings.TrimSpace(item.Find("p").First().Text()),
		})
	})

	return articles, nil
}
