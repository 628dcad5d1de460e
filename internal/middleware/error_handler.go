package middleware

import (
	stderrors "errors"
	"log/slog"
	"net/http"
	"strconv"

	"finance-tracker/internal/errors"
	"finance-tracker/internal/validation"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var apiErrorsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "finance_api_errors_total",
		Help: "Total number of API errors by code, route, and status",
	},
	[]string{"code", "route", "status"},
)

// CustomHTTPErrorHandler renders every error that escapes a handler (unknown
// routes, bad methods, oversized bodies, stray validator errors) in the
// standard error envelope.
func CustomHTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	traceID := GetTraceID(c)
	if traceID == "" {
		traceID = "unknown"
	}

	var (
		errorResponse *errors.ErrorResponse
		httpStatus    int
		echoErr       *echo.HTTPError
		fieldErrs     validator.ValidationErrors
	)

	switch {
	case stderrors.As(err, &echoErr):
		errorResponse = errors.NewErrorResponse(
			mapHTTPStatusToErrorCode(echoErr.Code),
			traceID,
			errors.WithMessage(httpErrorMessage(echoErr)),
		)
		httpStatus = echoErr.Code
	case stderrors.As(err, &fieldErrs):
		errorResponse = errors.NewValidationError(validation.FieldMessages(fieldErrs), traceID)
		httpStatus = http.StatusBadRequest
	default:
		errorResponse = errors.NewSystemError(traceID)
		httpStatus = http.StatusInternalServerError
	}

	logLevel := slog.LevelWarn
	if httpStatus >= http.StatusInternalServerError {
		logLevel = slog.LevelError
	}
	slog.Log(c.Request().Context(), logLevel, "HTTP error occurred",
		"trace_id", traceID,
		"error_code", errorResponse.Error.Code,
		"status", httpStatus,
		"path", c.Request().URL.Path,
		"method", c.Request().Method,
		"error", err.Error(),
	)

	apiErrorsTotal.WithLabelValues(errorResponse.Error.Code, c.Path(), strconv.Itoa(httpStatus)).Inc()

	if sendErr := c.JSON(httpStatus, errorResponse); sendErr != nil {
		slog.Error("Failed to send error response", "trace_id", traceID, "error", sendErr.Error())
	}
}

func httpErrorMessage(err *echo.HTTPError) string {
	if msg, ok := err.Message.(string); ok {
		return msg
	}
	return http.StatusText(err.Code)
}

// mapHTTPStatusToErrorCode maps framework-level HTTP statuses onto error codes
func mapHTTPStatusToErrorCode(status int) errors.ErrorCode {
	switch status {
	case http.StatusNotFound:
		return errors.RouteNotFound
	case http.StatusBadRequest, http.StatusUnauthorized, http.StatusForbidden,
		http.StatusMethodNotAllowed, http.StatusRequestEntityTooLarge,
		http.StatusUnsupportedMediaType, http.StatusUnprocessableEntity:
		return errors.ValidationGeneral
	case http.StatusTooManyRequests:
		return errors.SystemRateLimitExceeded
	case http.StatusInternalServerError:
		return errors.SystemInternalError
	case http.StatusServiceUnavailable:
		return errors.SystemServiceUnavailable
	default:
		return errors.SystemUnexpectedError
	}
}
