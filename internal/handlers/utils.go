package handlers

import (
	"fmt"
	"strconv"
	"time"

	"finance-tracker/internal/errors"
	"finance-tracker/internal/models"
	"finance-tracker/internal/period"
	"finance-tracker/internal/services"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// paramError is a malformed path or query parameter
type paramError struct {
	code    errors.ErrorCode
	field   string
	message string
}

func (e *paramError) Error() string {
	return fmt.Sprintf("%s: %s", e.field, e.message)
}

func sendParamError(c echo.Context, err error) error {
	if pe, ok := err.(*paramError); ok {
		return SendError(c, pe.code, errors.WithDetails(pe.Error()))
	}
	return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
}

// getIntQuery parses a required integer query parameter
func getIntQuery(c echo.Context, name string) (int, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return 0, &paramError{code: errors.ValidationRequiredField, field: name, message: "is required"}
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, &paramError{code: errors.ValidationInvalidFormat, field: name, message: "must be an integer"}
	}
	return value, nil
}

// getPeriodQuery reads the year and month query parameters. Range checks are left
// to the services so invalid periods are reported the same way everywhere.
func getPeriodQuery(c echo.Context) (year, month int, err error) {
	if year, err = getIntQuery(c, "year"); err != nil {
		return 0, 0, err
	}
	if month, err = getIntQuery(c, "month"); err != nil {
		return 0, 0, err
	}
	return year, month, nil
}

// getHistoryRangeQuery returns nil when no range parameter is present. A partial range is an error.
func getHistoryRangeQuery(c echo.Context) (*services.HistoryRange, error) {
	names := []string{"startYear", "startMonth", "endYear", "endMonth"}
	present := 0
	for _, name := range names {
		if c.QueryParam(name) != "" {
			present++
		}
	}
	if present == 0 {
		return nil, nil
	}

	values := make([]int, len(names))
	for i, name := range names {
		v, err := getIntQuery(c, name)
		if err != nil {
			return nil, err
		}
		values[i] = v
	}
	return &services.HistoryRange{
		StartYear:  values[0],
		StartMonth: values[1],
		EndYear:    values[2],
		EndMonth:   values[3],
	}, nil
}

func getIDParam(c echo.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, &paramError{code: errors.ValidationInvalidID, field: "id", message: "must be a positive integer"}
	}
	return uint(id), nil
}

// parseAmount converts a validated decimal string
func parseAmount(field, raw string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, &paramError{code: errors.ValidationInvalidAmount, field: field, message: "must be a decimal amount"}
	}
	return amount, nil
}

func parseDate(raw string) (time.Time, error) {
	date, err := period.ParseDate(raw)
	if err != nil {
		return time.Time{}, &paramError{code: errors.ValidationInvalidDate, field: "date", message: "must be a date in YYYY-MM-DD format"}
	}
	return date, nil
}

func parseCategory(raw string) (models.Category, error) {
	category, err := models.ParseCategory(raw)
	if err != nil {
		return "", &paramError{code: errors.ValidationInvalidCategory, field: "category", message: err.Error()}
	}
	return category, nil
}
