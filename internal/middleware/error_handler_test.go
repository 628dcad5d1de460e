package middleware

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"finance-tracker/internal/errors"
	"finance-tracker/internal/validation"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

type ErrorHandlerTestSuite struct {
	suite.Suite
	echo *echo.Echo
}

func (s *ErrorHandlerTestSuite) SetupTest() {
	s.echo = echo.New()
	s.echo.HTTPErrorHandler = CustomHTTPErrorHandler
}

func TestErrorHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ErrorHandlerTestSuite))
}

func (s *ErrorHandlerTestSuite) handle(err error) (*httptest.ResponseRecorder, errors.ErrorResponse) {
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(httptest.NewRequest(http.MethodGet, "/api/unknown", nil), rec)
	c.Set(TraceIDContextKey, "handler-trace")

	CustomHTTPErrorHandler(err, c)

	var body errors.ErrorResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	return rec, body
}

func (s *ErrorHandlerTestSuite) TestUnknownRouteMapsToRouteNotFound() {
	rec, body := s.handle(echo.ErrNotFound)

	s.Equal(http.StatusNotFound, rec.Code)
	s.Equal(string(errors.RouteNotFound), body.Error.Code)
	s.Equal("handler-trace", body.Error.TraceID)
}

func (s *ErrorHandlerTestSuite) TestMethodNotAllowedIsValidationError() {
	rec, body := s.handle(echo.ErrMethodNotAllowed)

	s.Equal(http.StatusMethodNotAllowed, rec.Code)
	s.Equal(string(errors.ValidationGeneral), body.Error.Code)
}

func (s *ErrorHandlerTestSuite) TestHTTPErrorKeepsStringMessage() {
	_, body := s.handle(echo.NewHTTPError(http.StatusBadRequest, "malformed JSON body"))

	s.Equal("malformed JSON body", body.Error.Message)
}

func (s *ErrorHandlerTestSuite) TestValidatorErrorsBecomeFieldDetails() {
	type payload struct {
		Amount string `json:"amount" validate:"required"`
		Month  int    `json:"month" validate:"month"`
	}
	err := validation.GetValidator().Struct(payload{Month: 13})
	s.Require().Error(err)

	rec, body := s.handle(err)

	s.Equal(http.StatusBadRequest, rec.Code)
	s.Equal(string(errors.ValidationGeneral), body.Error.Code)
	s.Equal([]string{"amount: is required", "month: must be between 1 and 12"}, body.Error.Details)
}

func (s *ErrorHandlerTestSuite) TestUnexpectedErrorHidesInternals() {
	rec, body := s.handle(fmt.Errorf("dial tcp 10.0.0.5:5432: connection refused"))

	s.Equal(http.StatusInternalServerError, rec.Code)
	s.Equal(string(errors.SystemInternalError), body.Error.Code)
	s.NotContains(rec.Body.String(), "10.0.0.5")
}

func (s *ErrorHandlerTestSuite) TestCommittedResponseIsLeftAlone() {
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	s.Require().NoError(c.String(http.StatusOK, "done"))

	CustomHTTPErrorHandler(echo.ErrNotFound, c)

	s.Equal(http.StatusOK, rec.Code)
	s.Equal("done", rec.Body.String())
}

func TestMapHTTPStatusToErrorCode(t *testing.T) {
	tests := map[int]errors.ErrorCode{
		http.StatusNotFound:            errors.RouteNotFound,
		http.StatusBadRequest:          errors.ValidationGeneral,
		http.StatusUnauthorized:        errors.ValidationGeneral,
		http.StatusTooManyRequests:     errors.SystemRateLimitExceeded,
		http.StatusInternalServerError: errors.SystemInternalError,
		http.StatusServiceUnavailable:  errors.SystemServiceUnavailable,
		http.StatusTeapot:              errors.SystemUnexpectedError,
	}
	for status, want := range tests {
		if got := mapHTTPStatusToErrorCode(status); got != want {
			t.Errorf("status %d: got %s, want %s", status, got, want)
		}
	}
}
