package httpserver

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/restaurant/internal/service"
	"github.com/Skotchmaster/restaurant/internal/transport"
)

// ErrorHandler renders every error as {"error": "<message>"}.
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	msg := http.StatusText(code)

	var he *echo.HTTPError
	if errors.As(err, &he) {
		code = he.Code
		switch m := he.Message.(type) {
		case string:
			msg = m
		case error:
			msg = m.Error()
		case nil:
			msg = http.StatusText(code)
		default:
			msg = fmt.Sprint(m)
		}
	}

	if c.Request().Method == http.MethodHead {
		_ = c.NoContent(code)
		return
	}
	_ = c.JSON(code, transport.ErrorResponse{Error: msg})
}

// fail maps a service error onto an HTTP error and logs it under op.
// notFound replaces the generic message for 404s.
func fail(l *slog.Logger, op string, err error, notFound string) *echo.HTTPError {
	var (
		code int
		msg  string
	)
	switch {
	case errors.Is(err, service.ErrValidation):
		code, msg = http.StatusBadRequest, err.Error()
	case errors.Is(err, service.ErrNotFound):
		code, msg = http.StatusNotFound, notFound
	case errors.Is(err, service.ErrConflict):
		code, msg = http.StatusUnprocessableEntity, "A customer with this email already exists"
	case errors.Is(err, service.ErrInUse):
		code, msg = http.StatusConflict, "Record is still referenced by other records"
	case errors.Is(err, service.ErrUnauthorized):
		code, msg = http.StatusUnauthorized, "Unauthorized"
	default:
		l.Error(op+"_failed", "status", http.StatusInternalServerError, "reason", "internal error", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Internal server error")
	}

	l.Warn(op+"_failed", "status", code, "error", err)
	return echo.NewHTTPError(code, msg)
}

func parseID(c echo.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "id must be a positive integer")
	}
	return uint(id), nil
}

func invalidBody(l *slog.Logger, op string, err error) *echo.HTTPError {
	l.Warn(op+"_failed", "status", http.StatusBadRequest, "reason", "invalid body", "error", err)
	return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
}
