package contracts

// NewsArticle is a single scraped news item. Date is the upstream
// datetime attribute (RFC3339-ish, date part first) and may be empty
// when the page omits it.
type NewsArticle struct {
	Title       string `json:"title"`
	Link        string `json:"link"`
	Date        string `json:"date"`
	Description string `json:"description"`
}
