package yahoo

import (
	"testing"
)

const newsStreamHTML = `
<html><body>
<article>
  <h3>Markets rally on rate cut hopes</h3>
  <a href="/news/markets-rally.html">read</a>
  <time datetime="2026-08-28T06:15:00Z">Aug 28</time>
  <p>Stocks opened higher as traders priced in easing.</p>
</article>
<article>
  <h3>Oil slides on supply glut</h3>
  <a href="https://finance.yahoo.com/news/oil-slides.html">read</a>
  <time datetime="2026-08-27T21:40:00Z">Aug 27</time>
  <p>Crude fell for a third session.</p>
</article>
<article>
  <h3>Undated wire item</h3>
  <a href="/news/undated.html">read</a>
  <p>No timestamp on this one.</p>
</article>
<article>
  <a href="/news/titleless.html">read</a>
  <time datetime="2026-08-28T05:00:00Z">Aug 28</time>
</article>
</body></html>`

func newsTestClient() *Client {
	c := testClient()
	c.baseURL = "https://finance.yahoo.com"
	return c
}

func TestParseNewsStream(t *testing.T) {
	c := newsTestClient()

	articles, err := c.parseNewsStream(newsStreamHTML, false)
	if err != nil {
		t.Fatalf("parseNewsStream() error = %v", err)
	}

	// The titleless item is dropped; everything else is kept.
	if len(articles) != 3 {
		t.Fatalf("got %d articles, want 3", len(articles))
	}

	first := articles[0]
	if first.Title != "Markets rally on rate cut hopes" {
		t.Errorf("Title = %q", first.Title)
	}
	if first.Link != "https://finance.yahoo.com/news/markets-rally.html" {
		t.Errorf("relative link not resolved: %q", first.Link)
	}
	if first.Date != "2026-08-28T06:15:00Z" {
		t.Errorf("Date = %q", first.Date)
	}
	if first.Description != "Stocks opened higher as traders priced in easing." {
		t.Errorf("Description = %q", first.Description)
	}

	if articles[1].Link != "https://finance.yahoo.com/news/oil-slides.html" {
		t.Errorf("absolute link changed: %q", articles[1].Link)
	}
	if articles[2].Date != "" {
		t.Errorf("undated article Date = %q, want empty", articles[2].Date)
	}
}

func TestParseNewsStreamRecentOnly(t *testing.T) {
	c := newsTestClient()

	// Client clock is 2026-08-28; yesterday's and undated items drop.
	articles, err := c.parseNewsStream(newsStreamHTML, true)
	if err != nil {
		t.Fatalf("parseNewsStream() error = %v", err)
	}

	if len(articles) != 1 {
		t.Fatalf("got %d articles, want 1", len(articles))
	}
	if articles[0].Title != "Markets rally on rate cut hopes" {
		t.Errorf("Title = %q", articles[0].Title)
	}
}

func TestParseNewsStreamEmptyPage(t *testing.T) {
	c := newsTestClient()

	articles, err := c.parseNewsStream("<html><body></body></html>", false)
	if err != nil {
		t.Fatalf("parseNewsStream() error = %v", err)
	}
	if len(articles) != 0 {
		t.Errorf("got %d articles, want 0", len(articles))
	}
}
