package handlers

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubHealthChecker struct {
	err error
}

func (s stubHealthChecker) HealthCheck() error {
	return s.err
}

func TestHealthCheck(t *testing.T) {
	e := newTestEcho()

	c, rec := newTestContext(e, http.MethodGet, "/health", nil)
	require.NoError(t, NewHealthCheckHandler(stubHealthChecker{}).HealthCheck(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"healthy"`)

	c, rec = newTestContext(e, http.MethodGet, "/health", nil)
	require.NoError(t, NewHealthCheckHandler(stubHealthChecker{err: errors.New("down")}).HealthCheck(c))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	resp, err := decodeError(rec)
	require.NoError(t, err)
	assert.Equal(t, "SYSTEM_003", resp.Error.Code)
}
