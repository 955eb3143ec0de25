package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"MarketLens/internal/catalog"
	"MarketLens/internal/domain/models"
	"MarketLens/internal/usecase"
	"MarketLens/pkg/config"
	xlogger "MarketLens/pkg/logger"
)

type stubSource struct {
	delta *models.QuoteDelta
	err   error
}

func (s *stubSource) Name() string { return "binance" }

func (s *stubSource) FetchQuote(context.Context, string) (*models.QuoteDelta, error) {
	return s.delta, s.err
}

type stubTransport struct {
	err   error
	calls int
}

func (s *stubTransport) Send(context.Context, *models.MailMessage) error {
	s.calls++
	return s.err
}

type nopMetrics struct{}

func (nopMetrics) RecordFetchOutcome(string, bool) {}
func (nopMetrics) RecordEmailResult(bool)          {}
func (nopMetrics) RecordError(string)              {}
func (nopMetrics) RecordLastPrice(string, float64) {}
func (nopMetrics) RecordLatency(string, float64)   {}

func newTestServer(t *testing.T, src *stubSource, tr *stubTransport, mail config.MailConfig) *echo.Echo {
	t.Helper()

	logger, err := xlogger.New(&xlogger.Config{Level: "error", Format: "json", Output: "stderr"})
	require.NoError(t, err)

	reg := catalog.NewRegistry()
	snapshots := usecase.NewSnapshotService(reg, src, nopMetrics{}, logger, time.Second, "BTC")
	news := usecase.NewNewsService(reg, snapshots)
	email := usecase.NewEmailService(mail, tr, nopMetrics{}, logger)

	e := echo.New()
	NewAPIEchoHandler(logger, snapshots, news, email).RegisterRoutes(e)
	return e
}

func completeMailConfig() config.MailConfig {
	return config.MailConfig{
		SenderEmail:  "noreply@example.com",
		TenantID:     "tenant-1",
		ClientID:     "client-1",
		ClientSecret: "secret-1",
		PublicAppURL: "https://app.example.com",
	}
}

func doGet(e *echo.Echo, target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestMarketData_LiveQuote(t *testing.T) {
	price := 45000.5
	e := newTestServer(t, &stubSource{delta: &models.QuoteDelta{CurrentPrice: &price}}, &stubTransport{}, completeMailConfig())

	rec := doGet(e, "/api/market-data?symbol=BTC")
	require.Equal(t, http.StatusOK, rec.Code)

	body := decode(t, rec)
	assert.Equal(t, true, body["success"])

	data := body["data"].(map[string]interface{})
	assert.Equal(t, 45000.5, data["currentPrice"])

	prov := data["provenance"].(map[string]interface{})
	assert.Equal(t, true, prov["isLiveData"])
	assert.Equal(t, "binance", prov["source"])

	meta := body["meta"].(map[string]interface{})
	assert.Equal(t, true, meta["isLiveData"])
	assert.Equal(t, "BTC", meta["symbol"])
}

func TestMarketData_UpstreamFailureStaysTwoHundred(t *testing.T) {
	e := newTestServer(t, &stubSource{err: errors.New("connection refused")}, &stubTransport{}, completeMailConfig())

	rec := doGet(e, "/api/market-data?symbol=BTC")
	require.Equal(t, http.StatusOK, rec.Code)

	body := decode(t, rec)
	assert.Equal(t, true, body["success"])

	data := body["data"].(map[string]interface{})
	assert.Equal(t, 43250.0, data["currentPrice"])

	prov := data["provenance"].(map[string]interface{})
	assert.Equal(t, false, prov["isLiveData"])
	assert.Equal(t, "fallback-catalog", prov["source"])

	meta := body["meta"].(map[string]interface{})
	assert.Equal(t, false, meta["isLiveData"])
}

func TestMarketData_DefaultsSymbol(t *testing.T) {
	e := newTestServer(t, &stubSource{err: errors.New("down")}, &stubTransport{}, completeMailConfig())

	rec := doGet(e, "/api/market-data")
	require.Equal(t, http.StatusOK, rec.Code)

	data := decode(t, rec)["data"].(map[string]interface{})
	assert.Equal(t, "BTC", data["symbol"])
}

func TestMarketData_RejectsMalformedSymbol(t *testing.T) {
	e := newTestServer(t, &stubSource{}, &stubTransport{}, completeMailConfig())

	rec := doGet(e, "/api/market-data?symbol=b!t")
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, false, decode(t, rec)["success"])
}

func TestNews_Feed(t *testing.T) {
	e := newTestServer(t, &stubSource{err: errors.New("down")}, &stubTransport{}, completeMailConfig())

	rec := doGet(e, "/api/news")
	require.Equal(t, http.StatusOK, rec.Code)

	body := decode(t, rec)
	assert.Equal(t, true, body["success"])

	data := body["data"].(map[string]interface{})
	articles := data["articles"].([]interface{})
	assert.Len(t, articles, 6)

	ticker := data["marketTicker"].(map[string]interface{})
	assert.Equal(t, false, ticker["isLive"])

	status := data["apiStatus"].(map[string]interface{})
	assert.Equal(t, "degraded", status["status"])

	meta := body["meta"].(map[string]interface{})
	assert.Equal(t, 6.0, meta["totalArticles"])
	assert.Equal(t, false, meta["isLiveData"])
}

func TestNews_LiveTicker(t *testing.T) {
	price := 45000.5
	e := newTestServer(t, &stubSource{delta: &models.QuoteDelta{CurrentPrice: &price}}, &stubTransport{}, completeMailConfig())

	rec := doGet(e, "/api/news")
	require.Equal(t, http.StatusOK, rec.Code)

	body := decode(t, rec)
	data := body["data"].(map[string]interface{})

	ticker := data["marketTicker"].(map[string]interface{})
	assert.Equal(t, true, ticker["isLive"])
	assert.Equal(t, 45000.5, ticker["price"])

	status := data["apiStatus"].(map[string]interface{})
	assert.Equal(t, "operational", status["status"])

	// Articles stay catalog content even when the ticker is live.
	meta := body["meta"].(map[string]interface{})
	assert.Equal(t, 6.0, meta["totalArticles"])
}

func TestTestEmail_MissingRecipientIsBadRequest(t *testing.T) {
	tr := &stubTransport{}
	e := newTestServer(t, &stubSource{}, tr, completeMailConfig())

	rec := doGet(e, "/api/test-email")
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, 0, tr.calls)
}

func TestTestEmail_IncompleteConfigIsServerError(t *testing.T) {
	cfg := completeMailConfig()
	cfg.ClientSecret = ""
	tr := &stubTransport{}
	e := newTestServer(t, &stubSource{}, tr, cfg)

	rec := doGet(e, "/api/test-email?to=user@example.com")
	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, 0, tr.calls)

	body := decode(t, rec)
	assert.Equal(t, false, body["success"])

	configured := body["configured"].(map[string]interface{})
	assert.Equal(t, false, configured["clientSecret"])
	assert.Equal(t, true, configured["senderEmail"])
}

func TestTestEmail_TransportFailureSurfaced(t *testing.T) {
	tr := &stubTransport{err: errors.New("auth rejected")}
	e := newTestServer(t, &stubSource{}, tr, completeMailConfig())

	rec := doGet(e, "/api/test-email?to=user@example.com")
	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, 1, tr.calls)

	body := decode(t, rec)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "auth rejected", body["error"])
}

func TestTestEmail_Success(t *testing.T) {
	tr := &stubTransport{}
	e := newTestServer(t, &stubSource{}, tr, completeMailConfig())

	rec := doGet(e, "/api/test-email?to=user@example.com")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, tr.calls)

	body := decode(t, rec)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "user@example.com", body["to"])
	assert.Equal(t, "noreply@example.com", body["from"])
	assert.NotEmpty(t, body["timestamp"])
}

func TestHealth(t *testing.T) {
	e := newTestServer(t, &stubSource{}, &stubTransport{}, completeMailConfig())

	rec := doGet(e, "/healthz")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", decode(t, rec)["status"])
}
