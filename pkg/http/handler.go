package http

import "github.com/labstack/echo/v4"

// Handler registers its routes on the server's echo instance. The server owns
// middleware and lifecycle; handlers own paths.
type Handler interface {
	RegisterRoutes(e *echo.Echo)
}
