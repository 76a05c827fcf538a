package http

import (
	"log/slog"
	"net/http"

	"pizza/internal/generated/servers"

	"github.com/labstack/echo/v4"
)

var _ servers.ServerInterface = (*Server)(nil)

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	h      Handlers
	logger *slog.Logger
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(h Handlers, logger *slog.Logger) *Server {
	return &Server{
		h:      h,
		logger: logger.With("component", "http_server"),
	}
}

func invalidBody(ctx echo.Context) error {
	return ctx.JSON(http.StatusBadRequest, servers.Error{
		Code:    http.StatusBadRequest,
		Message: "Invalid request body",
	})
}
