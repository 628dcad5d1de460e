package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"finance-tracker/internal/errors"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

type PanicRecoveryTestSuite struct {
	suite.Suite
	echo *echo.Echo
}

func (s *PanicRecoveryTestSuite) SetupTest() {
	s.echo = echo.New()
}

func TestPanicRecoveryTestSuite(t *testing.T) {
	suite.Run(t, new(PanicRecoveryTestSuite))
}

func (s *PanicRecoveryTestSuite) TestRecoversWithSystemError() {
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(httptest.NewRequest(http.MethodGet, "/api/networth", nil), rec)
	c.Set(TraceIDContextKey, "panic-trace")

	handler := PanicRecovery()(func(c echo.Context) error {
		panic("boom")
	})

	s.NotPanics(func() { _ = handler(c) })
	s.Equal(http.StatusInternalServerError, rec.Code)

	var body errors.ErrorResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	s.Equal(string(errors.SystemInternalError), body.Error.Code)
	s.Equal("panic-trace", body.Error.TraceID)
}

func (s *PanicRecoveryTestSuite) TestUnknownTraceWhenMissing() {
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

	_ = PanicRecovery()(func(c echo.Context) error {
		panic(42)
	})(c)

	s.Contains(rec.Body.String(), `"trace_id":"unknown"`)
}

func (s *PanicRecoveryTestSuite) TestPassesThroughNormalResponses() {
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

	err := PanicRecovery()(func(c echo.Context) error {
		return c.String(http.StatusOK, "fine")
	})(c)

	s.NoError(err)
	s.Equal(http.StatusOK, rec.Code)
	s.Equal("fine", rec.Body.String())
}

func (s *PanicRecoveryTestSuite) TestReraisesAbortHandler() {
	c := s.echo.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

	handler := PanicRecovery()(func(c echo.Context) error {
		panic(http.ErrAbortHandler)
	})

	s.Panics(func() { _ = handler(c) })
}
