package api

import (
	"time"

	"MarketLens/internal/catalog"
	models "MarketLens/internal/domain/models"
	xhttp "MarketLens/pkg/http"

	"github.com/labstack/echo/v4"
)

// News serves the fixed article list with a live-or-fallback market ticker.
func (h *APIEchoHandler) News(c echo.Context) error {
	feed, live := h.news.GetFeed(c.Request().Context())

	sources := make([]string, 0, 2)
	sources = append(sources, catalog.SourceName)
	if live {
		sources = append(sources, feed.APIStatus.Provider)
	}

	return xhttp.SuccessResponse(c, models.Envelope{
		Success: true,
		Data:    feed,
		Meta: models.Meta{
			TotalArticles: len(feed.Articles),
			IsLiveData:    live,
			Sources:       sources,
			LastUpdated:   time.Now().UTC(),
		},
	})
}
