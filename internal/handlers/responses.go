package handlers

import (
	stderrors "errors"
	"log/slog"
	"net/http"

	"finance-tracker/internal/errors"
	"finance-tracker/internal/period"
	"finance-tracker/internal/services"
	"finance-tracker/internal/validation"

	"github.com/labstack/echo/v4"
)

// STANDARDIZED ERROR HANDLING PATTERNS
//
// All handlers must use the following standardized error response functions:
//
// 1. SendError - For client errors (4xx responses)
//    Use cases:
//    - Validation errors: SendError(c, errors.ValidationGeneral, errors.WithDetails("..."))
//    - Not found errors: SendError(c, errors.BudgetNotFound)
//
// 2. SendServiceError - For any error returned by a service. Known domain errors
//    become 4xx responses, everything else goes through SendSystemError.
//
// 3. SendSystemError - For system/internal errors (500 responses)
//    The internal error is logged, never returned to the client.
//
// DO NOT USE:
//    - echo.NewHTTPError() - Use SendError or SendSystemError instead
//    - Direct c.JSON() for errors - Use the helper functions

const (
	// TraceIDContextKey is the context key for storing the trace ID
	TraceIDContextKey = "trace_id"
)

// SuccessResponse represents a standard success response
type SuccessResponse struct {
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
	Meta    interface{} `json:"meta,omitempty"`
}

// ErrorResponse is an alias for the standardized error response type
type ErrorResponse = errors.ErrorResponse

var notFoundCodes = map[string]errors.ErrorCode{
	services.EntityIncome:      errors.IncomeNotFound,
	services.EntityExpenditure: errors.ExpenditureNotFound,
	services.EntityBudget:      errors.BudgetNotFound,
	services.EntityAsset:       errors.AssetNotFound,
	services.EntityLiability:   errors.LiabilityNotFound,
	services.EntityNetWorth:    errors.NetWorthNotFound,
}

// getTraceID extracts the trace ID from the Echo context
func getTraceID(c echo.Context) string {
	traceID, ok := c.Get(TraceIDContextKey).(string)
	if !ok {
		return ""
	}
	return traceID
}

func respond(c echo.Context, status int, data interface{}, message string) error {
	return c.JSON(status, SuccessResponse{Data: data, Message: message})
}

// SendError sends a standardized error response with trace ID from context
func SendError(c echo.Context, code errors.ErrorCode, opts ...errors.ErrorOption) error {
	traceID := getTraceID(c)
	errorResponse := errors.NewErrorResponse(code, traceID, opts...)
	return c.JSON(errorResponse.GetHTTPStatus(), errorResponse)
}

// SendValidationErrors sends field level validation failures
func SendValidationErrors(c echo.Context, fields map[string]string) error {
	errorResponse := errors.NewValidationError(fields, getTraceID(c))
	return c.JSON(http.StatusBadRequest, errorResponse)
}

// SendRequestValidationError reports a c.Validate failure
func SendRequestValidationError(c echo.Context, err error) error {
	if fields := validation.FieldMessages(err); fields != nil {
		return SendValidationErrors(c, fields)
	}
	return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
}

// SendServiceError maps the service error taxonomy onto API error codes
func SendServiceError(c echo.Context, err error) error {
	var (
		notFound *services.NotFoundError
		conflict *services.ConflictError
		invalid  *services.ValidationError
	)
	switch {
	case stderrors.As(err, &invalid):
		if stderrors.Is(err, period.ErrInvalidPeriod) {
			return SendError(c, errors.ValidationInvalidPeriod, errors.WithDetails(invalid.Fields["period"]))
		}
		return SendValidationErrors(c, invalid.Fields)
	case stderrors.As(err, &notFound):
		code, ok := notFoundCodes[notFound.Entity]
		if !ok {
			code = errors.RouteNotFound
		}
		return SendError(c, code, errors.WithMessage(notFound.Error()))
	case stderrors.As(err, &conflict):
		return SendError(c, errors.ConflictConcurrentModification)
	default:
		return SendSystemError(c, err)
	}
}

// SendSystemError wraps a system error with generic message and logs the internal error
func SendSystemError(c echo.Context, err error) error {
	traceID := getTraceID(c)
	slog.ErrorContext(c.Request().Context(), "Request failed",
		"trace_id", traceID,
		"path", c.Request().URL.Path,
		"method", c.Request().Method,
		"error", err,
	)
	return c.JSON(http.StatusInternalServerError, errors.NewSystemError(traceID))
}
