package model

import "time"

// StatsTimeLayout renders CreatedAt as ISO 8601 in UTC with second precision.
const StatsTimeLayout = "2006-01-02T15:04:05Z"

// URL is the record kept per short code.
type URL struct {
	ShortCode      string    `json:"short_code"`
	OriginalURL    string    `json:"original_url"`
	ClickCount     uint64    `json:"click_count"`
	CreatedAt      time.Time `json:"created_at"`
	AnalyticsToken string    `json:"-"`
}

type CreateURLRequest struct {
	URL string `json:"url" binding:"required"`
}

type ShortenResponse struct {
	ShortCode      string `json:"short_code"`
	ShortURL       string `json:"short_url"`
	AnalyticsToken string `json:"analytics_token"`
}

type StatsResponse struct {
	ShortCode string `json:"short_code"`
	URL       string `json:"url"`
	Clicks    uint64 `json:"clicks"`
	CreatedAt string `json:"created_at"`
}

// NewStatsResponse builds the public view of a record. The token is never part of it.
func NewStatsResponse(u URL) *StatsResponse {
	return &StatsResponse{
		ShortCode: u.ShortCode,
		URL:       u.OriginalURL,
		Clicks:    u.ClickCount,
		CreatedAt: u.CreatedAt.UTC().Format(StatsTimeLayout),
	}
}
