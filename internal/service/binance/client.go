package binance

import (
	"context"
	"fmt"
	"strings"

	"MarketLens/internal/domain/models"
	drepo "MarketLens/internal/domain/repository"
	xhttp "MarketLens/pkg/http"

	"github.com/shopspring/decimal"
)

// Client implements a QuoteSource backed by the Binance spot ticker API.
type Client struct {
	http       *xhttp.Client
	baseURL    string
	quoteAsset string
}

// Option configures Client.
type Option func(*Client)

// New creates a new Binance quote source.
func New(httpClient *xhttp.Client, opts ...Option) drepo.QuoteSource {
	c := &Client{
		http:       httpClient,
		baseURL:    "https://api.binance.com",
		quoteAsset: "USDT",
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// WithBaseURL overrides the API base URL.
func WithBaseURL(u string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimRight(u, "/")
	}
}

// WithQuoteAsset sets the pairing asset (default USDT).
func WithQuoteAsset(asset string) Option {
	return func(c *Client) {
		c.quoteAsset = asset
	}
}

// Name identifies this source in provenance metadata.
func (c *Client) Name() string { return "binance" }

type tickerPayload struct {
	Symbol string `json:"symbol"`
	Price  string `json:"price"`
}

// FetchQuote fetches the latest price for symbol (e.g. "BTC") and returns it
// as a partial delta. The price arrives as a stringified decimal from an
// untrusted upstream; anything non-numeric or non-positive is an error.
func (c *Client) FetchQuote(ctx context.Context, symbol string) (*models.QuoteDelta, error) {
	pair := strings.ToUpper(symbol) + strings.ToUpper(c.quoteAsset)

	var payload tickerPayload
	err := c.http.SendAndParse(ctx, &xhttp.RequestOptions{
		Method:      xhttp.MethodGet,
		URL:         c.baseURL + "/api/v3/ticker/price",
		QueryParams: map[string][]string{"symbol": {pair}},
	}, &payload)
	if err != nil {
		return nil, fmt.Errorf("binance ticker %s: %w", pair, err)
	}

	d, err := decimal.NewFromString(payload.Price)
	if err != nil {
		return nil, fmt.Errorf("binance ticker %s: parse price %q: %w", pair, payload.Price, err)
	}
	if !d.IsPositive() {
		return nil, fmt.Errorf("binance ticker %s: non-positive price %q", pair, payload.Price)
	}

	price := d.InexactFloat64()
	return &models.QuoteDelta{CurrentPrice: &price}, nil
}
