package api

import (
	"time"

	models "MarketLens/internal/domain/models"
	"MarketLens/internal/usecase"
	xhttp "MarketLens/pkg/http"
	xlogger "MarketLens/pkg/logger"

	"github.com/labstack/echo/v4"
)

// APIEchoHandler wires the HTTP surface: market data, news feed, and the
// verification-email test endpoint.
type APIEchoHandler struct {
	logger    *xlogger.Logger
	snapshots *usecase.SnapshotService
	news      *usecase.NewsService
	email     *usecase.EmailService
}

func NewAPIEchoHandler(
	logger *xlogger.Logger,
	snapshots *usecase.SnapshotService,
	news *usecase.NewsService,
	email *usecase.EmailService,
) *APIEchoHandler {
	return &APIEchoHandler{
		logger:    logger,
		snapshots: snapshots,
		news:      news,
		email:     email,
	}
}

func (h *APIEchoHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/api")
	g.GET("/market-data", h.MarketData)
	g.GET("/news", h.News)
	g.GET("/test-email", h.TestEmail)
	e.GET("/healthz", h.Health)
}

// MarketData always answers 200 with a schema-complete snapshot; live versus
// fallback shows up only in provenance and meta.
func (h *APIEchoHandler) MarketData(c echo.Context) error {
	req := &models.MarketDataRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	out := h.snapshots.GetSnapshot(c.Request().Context(), req.Symbol)

	return xhttp.SuccessResponse(c, models.Envelope{
		Success: true,
		Data:    out.Snapshot,
		Meta: models.Meta{
			Symbol:      out.Snapshot.Symbol,
			IsLiveData:  out.Live,
			Sources:     []string{out.Snapshot.Provenance.Source},
			LastUpdated: time.Now().UTC(),
		},
	})
}
