package models

import "time"

// Sentiment values for news articles.
const (
	SentimentBullish = "Bullish"
	SentimentBearish = "Bearish"
	SentimentNeutral = "Neutral"
)

// NewsArticle is a single feed entry. PublishedAt is always in the past
// relative to request time.
type NewsArticle struct {
	ID          string    `json:"id"`
	Headline    string    `json:"headline"`
	Summary     string    `json:"summary"`
	Source      string    `json:"source"`
	PublishedAt time.Time `json:"publishedAt"`
	Category    string    `json:"category"`
	Sentiment   string    `json:"sentiment"`
	IsLive      bool      `json:"isLive"`
}

// MarketTicker is the compact price block merged into the news feed.
type MarketTicker struct {
	Symbol    string  `json:"symbol"`
	Price     float64 `json:"price"`
	Change24h float64 `json:"change24h"`
	IsLive    bool    `json:"isLive"`
}

// APIStatus surfaces the upstream availability flag. It is informational
// only; no limiting happens in this service.
type APIStatus struct {
	Status   string `json:"status"`
	Provider string `json:"provider"`
	Message  string `json:"message,omitempty"`
}

// NewsFeed is the data block of the news endpoint.
type NewsFeed struct {
	Articles     []NewsArticle `json:"articles"`
	MarketTicker MarketTicker  `json:"marketTicker"`
	APIStatus    APIStatus     `json:"apiStatus"`
}
