package models

import "time"

// Meta is the provenance/freshness block of an envelope.
type Meta struct {
	Symbol        string    `json:"symbol,omitempty"`
	TotalArticles int       `json:"totalArticles,omitempty"`
	IsLiveData    bool      `json:"isLiveData"`
	Sources       []string  `json:"sources"`
	LastUpdated   time.Time `json:"lastUpdated"`
}

// Envelope is the uniform wrapper returned by every data endpoint. Success is
// always true there; internal failures downgrade the content, never the
// transport status.
type Envelope struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data"`
	Meta    Meta        `json:"meta"`
}
