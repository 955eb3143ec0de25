package api

import (
	xhttp "MarketLens/pkg/http"

	"github.com/labstack/echo/v4"
)

// Health is a liveness probe. The service has no hard dependencies: it can
// always answer from the fallback catalog.
func (h *APIEchoHandler) Health(c echo.Context) error {
	return xhttp.SuccessResponse(c, map[string]string{"status": "ok"})
}
