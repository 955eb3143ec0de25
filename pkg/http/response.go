package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
)

// SuccessResponse writes a 200 response with the payload as-is. Data endpoints
// own their envelope shape, so no extra wrapper is added here.
func SuccessResponse(c echo.Context, data interface{}) error {
	return c.JSON(http.StatusOK, data)
}

// BadRequestResponse writes a 400 with validation details.
func BadRequestResponse(c echo.Context, details interface{}) error {
	return c.JSON(http.StatusBadRequest, ErrorBody{
		Success: false,
		Error:   http.StatusText(http.StatusBadRequest),
		Details: details,
	})
}

// InternalServerErrorResponse writes a generic 500.
func InternalServerErrorResponse(c echo.Context) error {
	return c.JSON(http.StatusInternalServerError, ErrorBody{
		Success: false,
		Error:   "Something went wrong",
	})
}

// AppErrorResponse maps an AppError to its status, merging its params into the
// body top-level; anything else becomes a generic 500 so internal detail never
// leaks.
func AppErrorResponse(c echo.Context, err error) error {
	var appErr *AppError
	if errors.As(err, &appErr) {
		body := map[string]interface{}{
			"success": false,
			"error":   appErr.Message,
		}
		for k, v := range appErr.Params {
			body[k] = v
		}
		return c.JSON(appErr.Status, body)
	}
	return InternalServerErrorResponse(c)
}
