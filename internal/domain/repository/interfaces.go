package repository

import (
	"context"

	"MarketLens/internal/domain/models"
)

// QuoteSource fetches a partial live quote for a base symbol (e.g. "BTC").
// Implementations must validate the upstream payload: a non-numeric or
// non-positive price is an error, not a zero-valued delta.
type QuoteSource interface {
	Name() string
	FetchQuote(ctx context.Context, symbol string) (*models.QuoteDelta, error)
}

// MailTransport performs one outbound send attempt. No retries.
type MailTransport interface {
	Send(ctx context.Context, msg *models.MailMessage) error
}

// Metrics abstracts the metrics recorder so use cases don't bind to
// Prometheus directly.
type Metrics interface {
	RecordFetchOutcome(symbol string, live bool)
	RecordEmailResult(sent bool)
	RecordError(kind string)
	RecordLastPrice(symbol string, price float64)
	RecordLatency(op string, seconds float64)
}
