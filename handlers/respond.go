package handlers

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
)

// Error bodies are always {message, detail?}; detail carries the raw
// failure text on 500s.

func badRequest(c echo.Context, message string) error {
	return c.JSON(http.StatusBadRequest, map[string]string{"message": message})
}

func notFound(c echo.Context, message string) error {
	return c.JSON(http.StatusNotFound, map[string]string{"message": message})
}

func serverError(c echo.Context, err error) error {
	return c.JSON(http.StatusInternalServerError, map[string]string{
		"message": "Server error",
		"detail":  err.Error(),
	})
}

// HTTPErrorHandler is the terminal formatter: anything that escapes a
// handler (panics recovered by middleware, echo routing errors) still
// goes out as a {message, detail?} body.
func HTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	if he, ok := err.(*echo.HTTPError); ok {
		_ = c.JSON(he.Code, map[string]string{"message": fmt.Sprintf("%v", he.Message)})
		return
	}
	_ = serverError(c, err)
}

// RouteNotFound answers every unmatched path.
func RouteNotFound(c echo.Context) error {
	return c.JSON(http.StatusNotFound, map[string]string{"message": "Route not found"})
}
