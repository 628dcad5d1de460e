package middleware

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestLogger_WritesAccessLine(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	e := echo.New()
	e.HTTPErrorHandler = CustomHTTPErrorHandler
	e.Use(RequestID(), RequestLogger(logger))
	e.GET("/api/budget", func(c echo.Context) error {
		return c.NoContent(http.StatusNoContent)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/budget?month=3&year=2024", nil)
	req.Header.Set(TraceIDHeader, "log-trace")
	e.ServeHTTP(httptest.NewRecorder(), req)

	var line map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "request", line["msg"])
	assert.Equal(t, "INFO", line["level"])
	assert.Equal(t, "log-trace", line["trace_id"])
	assert.Equal(t, "/api/budget?month=3&year=2024", line["uri"])
	assert.EqualValues(t, http.StatusNoContent, line["status"])
}

func TestRequestLogger_WarnsOnClientErrors(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	e := echo.New()
	e.HTTPErrorHandler = CustomHTTPErrorHandler
	e.Use(RequestLogger(logger))

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/nowhere", nil))

	require.Equal(t, http.StatusNotFound, rec.Code)
	var line map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "WARN", line["level"])
	assert.EqualValues(t, http.StatusNotFound, line["status"])
}
