package api

import (
	"crypto/rand"
	"encoding/hex"
	"time"

	models "MarketLens/internal/domain/models"
	xhttp "MarketLens/pkg/http"
	xlogger "MarketLens/pkg/logger"

	"github.com/labstack/echo/v4"
)

type testEmailSuccess struct {
	Success   bool      `json:"success"`
	Message   string    `json:"message"`
	To        string    `json:"to"`
	From      string    `json:"from"`
	Timestamp time.Time `json:"timestamp"`
}

// TestEmail sends a verification email to the given recipient. Unlike the
// data endpoints, failures here are surfaced: a silent degradation would hide
// a delivery failure the caller needs to act on.
func (h *APIEchoHandler) TestEmail(c echo.Context) error {
	req := &models.TestEmailRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	if !h.email.ConfigComplete() {
		return xhttp.AppErrorResponse(c, xhttp.ConfigError("mail configuration incomplete").
			WithParam("configured", h.email.Readiness()))
	}

	res := h.email.SendVerification(c.Request().Context(), req.To, newTestToken())
	if !res.Success {
		h.logger.Error("test email failed",
			xlogger.String("to", req.To),
			xlogger.String("reason", res.Error),
		)
		return xhttp.AppErrorResponse(c, xhttp.InternalError(res.Error))
	}

	return xhttp.SuccessResponse(c, testEmailSuccess{
		Success:   true,
		Message:   "verification email sent",
		To:        req.To,
		From:      h.email.Sender(),
		Timestamp: *res.Timestamp,
	})
}

func newTestToken() string {
	b := make([]byte, 16)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}
