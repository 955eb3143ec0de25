package models

// Requests for the HTTP endpoints. Defined in domain for consistency and reuse.

type MarketDataRequest struct {
	Symbol string `query:"symbol" json:"symbol" default:"BTC" validate:"omitempty,alphanum,min=2,max=10"`
}

type TestEmailRequest struct {
	To string `query:"to" json:"to" validate:"required,email"`
}
