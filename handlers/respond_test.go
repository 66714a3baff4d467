package handlers

import (
	"errors"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestRouteNotFoundBody(t *testing.T) {
	c, rec := jsonRequest(http.MethodGet, "/api/nope", "")

	assert.NoError(t, RouteNotFound(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)

	body := map[string]string{}
	decodeBody(t, rec, &body)
	assert.Equal(t, map[string]string{"message": "Route not found"}, body)
}

func TestHTTPErrorHandlerFormatsHTTPError(t *testing.T) {
	c, rec := jsonRequest(http.MethodGet, "/", "")

	HTTPErrorHandler(echo.NewHTTPError(http.StatusMethodNotAllowed, "Method Not Allowed"), c)

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	body := map[string]string{}
	decodeBody(t, rec, &body)
	assert.Equal(t, "Method Not Allowed", body["message"])
}

func TestHTTPErrorHandlerFormatsUnknownError(t *testing.T) {
	c, rec := jsonRequest(http.MethodGet, "/", "")

	HTTPErrorHandler(errors.New("boom"), c)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	body := map[string]string{}
	decodeBody(t, rec, &body)
	assert.Equal(t, "Server error", body["message"])
	assert.Equal(t, "boom", body["detail"])
}
