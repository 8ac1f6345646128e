package http

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"oorms/internal/core/application/usecases/queries"
	"oorms/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// Server serves the read-only board.
type Server struct {
	getFloorPlanHandler    queries.GetFloorPlanQueryHandler
	getSeatOrderHandler    queries.GetSeatOrderQueryHandler
	getKitchenBoardHandler queries.GetKitchenBoardQueryHandler
	feed                   *KitchenFeed
	logger                 *slog.Logger
}

// NewServer creates a new HTTP server with the required query handlers.
func NewServer(
	getFloorPlanHandler queries.GetFloorPlanQueryHandler,
	getSeatOrderHandler queries.GetSeatOrderQueryHandler,
	getKitchenBoardHandler queries.GetKitchenBoardQueryHandler,
	feed *KitchenFeed,
	logger *slog.Logger,
) *Server {
	return &Server{
		getFloorPlanHandler:    getFloorPlanHandler,
		getSeatOrderHandler:    getSeatOrderHandler,
		getKitchenBoardHandler: getKitchenBoardHandler,
		feed:                   feed,
		logger:                 logger.With("component", "HTTPServer"),
	}
}

// Register mounts the middleware and the routes on e.
func (s *Server) Register(e *echo.Echo) {
	e.Use(middleware.Recover())
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogStatus:   true,
		LogURI:      true,
		LogMethod:   true,
		LogLatency:  true,
		LogError:    true,
		HandleError: true,
		LogValuesFunc: func(_ echo.Context, v middleware.RequestLoggerValues) error {
			attrs := []any{
				"method", v.Method,
				"uri", v.URI,
				"status", v.Status,
				"latency", v.Latency,
			}
			if v.Error != nil {
				s.logger.Error("request failed", append(attrs, "error", v.Error)...)
				return nil
			}
			s.logger.Info("request", attrs...)
			return nil
		},
	}))

	e.GET("/health", s.Health)

	api := e.Group("/api/v1")
	api.GET("/tables", s.GetTables)
	api.GET("/tables/:table/seats/:seat/order", s.GetSeatOrder)
	api.GET("/kitchen", s.GetKitchenBoard)
	api.GET("/kitchen/feed", s.feed.Handle)
}

// Health handles GET /health.
func (s *Server) Health(c echo.Context) error {
	return c.String(http.StatusOK, "healthy")
}

// GetTables handles GET /api/v1/tables - the floor plan.
func (s *Server) GetTables(c echo.Context) error {
	plan, err := s.getFloorPlanHandler.Handle(c.Request().Context(), queries.NewGetFloorPlanQuery())
	if err != nil {
		return s.fail(c, err, "Failed to retrieve tables")
	}

	return c.JSON(http.StatusOK, toTables(plan))
}

// GetSeatOrder handles GET /api/v1/tables/:table/seats/:seat/order.
func (s *Server) GetSeatOrder(c echo.Context) error {
	tableNumber, err := strconv.Atoi(c.Param("table"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Table must be a number",
		})
	}
	seat, err := strconv.Atoi(c.Param("seat"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Seat must be a number",
		})
	}

	query, err := queries.NewGetSeatOrderQuery(tableNumber, seat)
	if err != nil {
		return c.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		})
	}

	seatOrder, err := s.getSeatOrderHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err, "Failed to retrieve order")
	}

	return c.JSON(http.StatusOK, toSeatOrder(seatOrder))
}

// GetKitchenBoard handles GET /api/v1/kitchen.
func (s *Server) GetKitchenBoard(c echo.Context) error {
	board, err := s.getKitchenBoardHandler.Handle(c.Request().Context(), queries.NewGetKitchenBoardQuery())
	if err != nil {
		return s.fail(c, err, "Failed to retrieve kitchen board")
	}

	return c.JSON(http.StatusOK, toKitchenBoard(board))
}

// fail maps domain errors to status codes. Unexpected errors keep their
// details in the log and out of the response.
func (s *Server) fail(c echo.Context, err error, message string) error {
	switch {
	case errors.Is(err, errs.ErrValueIsOutOfRange), errors.Is(err, errs.ErrObjectNotFound):
		return c.JSON(http.StatusNotFound, Error{Code: http.StatusNotFound, Message: err.Error()})
	case errors.Is(err, errs.ErrValueIsInvalid), errors.Is(err, errs.ErrValueIsRequired):
		return c.JSON(http.StatusBadRequest, Error{Code: http.StatusBadRequest, Message: err.Error()})
	default:
		s.logger.Error(message, "error", err)
		return c.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: message,
		})
	}
}
