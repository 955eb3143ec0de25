package binance

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	xhttp "MarketLens/pkg/http"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (*httptest.Server, *Client) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	c := New(xhttp.NewClient(), WithBaseURL(srv.URL)).(*Client)
	return srv, c
}

func TestFetchQuote_ParsesStringifiedPrice(t *testing.T) {
	var gotSymbol string
	_, c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotSymbol = r.URL.Query().Get("symbol")
		_ = json.NewEncoder(w).Encode(map[string]string{"symbol": "BTCUSDT", "price": "45000.50000000"})
	})

	delta, err := c.FetchQuote(context.Background(), "BTC")
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if gotSymbol != "BTCUSDT" {
		t.Fatalf("requested symbol %q, want BTCUSDT", gotSymbol)
	}
	if delta.CurrentPrice == nil || *delta.CurrentPrice != 45000.5 {
		t.Fatalf("price = %v, want 45000.5", delta.CurrentPrice)
	}
}

func TestFetchQuote_NonNumericPriceIsError(t *testing.T) {
	_, c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]string{"symbol": "BTCUSDT", "price": "not-a-number"})
	})

	if _, err := c.FetchQuote(context.Background(), "BTC"); err == nil {
		t.Fatalf("expected parse error")
	}
}

func TestFetchQuote_ZeroPriceIsError(t *testing.T) {
	_, c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]string{"symbol": "BTCUSDT", "price": "0"})
	})

	if _, err := c.FetchQuote(context.Background(), "BTC"); err == nil {
		t.Fatalf("zero price must be rejected")
	}
}

func TestFetchQuote_NonSuccessStatusIsError(t *testing.T) {
	_, c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"code":-1121,"msg":"Invalid symbol."}`, http.StatusBadRequest)
	})

	if _, err := c.FetchQuote(context.Background(), "BTC"); err == nil {
		t.Fatalf("expected status error")
	}
}
