package handlers

import (
	"net/http"

	"finance-tracker/internal/dto"
	"finance-tracker/internal/errors"
	"finance-tracker/internal/services"

	"github.com/labstack/echo/v4"
)

// IncomeHandler handles income HTTP requests
type IncomeHandler struct {
	incomeService services.IncomeServiceInterface
}

// NewIncomeHandler creates a new income handler
func NewIncomeHandler(incomeService services.IncomeServiceInterface) *IncomeHandler {
	return &IncomeHandler{incomeService: incomeService}
}

// ListIncome returns the incomes of a month
// @Router /income [get]
func (h *IncomeHandler) ListIncome(c echo.Context) error {
	year, month, err := getPeriodQuery(c)
	if err != nil {
		return sendParamError(c, err)
	}

	incomes, err := h.incomeService.ListByPeriod(c.Request().Context(), year, month)
	if err != nil {
		return SendServiceError(c, err)
	}

	return respond(c, http.StatusOK, dto.NewIncomeListResponse(incomes), "")
}

// GetTotal returns the sum of a month's incomes
// @Router /income/total [get]
func (h *IncomeHandler) GetTotal(c echo.Context) error {
	year, month, err := getPeriodQuery(c)
	if err != nil {
		return sendParamError(c, err)
	}

	total, err := h.incomeService.TotalByPeriod(c.Request().Context(), year, month)
	if err != nil {
		return SendServiceError(c, err)
	}

	return respond(c, http.StatusOK, dto.NewTotalResponse(year, month, total), "")
}

// CreateIncome records a new income
// @Router /income [post]
func (h *IncomeHandler) CreateIncome(c echo.Context) error {
	var req dto.IncomeRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(req); err != nil {
		return SendRequestValidationError(c, err)
	}

	amount, err := parseAmount("amount", req.Amount)
	if err != nil {
		return sendParamError(c, err)
	}
	date, err := parseDate(req.Date)
	if err != nil {
		return sendParamError(c, err)
	}

	income, err := h.incomeService.Create(c.Request().Context(), amount, req.Description, date)
	if err != nil {
		return SendServiceError(c, err)
	}

	return respond(c, http.StatusCreated, dto.NewIncomeResponse(income), "Income created successfully")
}

// UpdateIncome replaces an income's fields. A stale version yields 409.
// @Router /income/{id} [put]
func (h *IncomeHandler) UpdateIncome(c echo.Context) error {
	id, err := getIDParam(c)
	if err != nil {
		return sendParamError(c, err)
	}

	var req dto.IncomeRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(req); err != nil {
		return SendRequestValidationError(c, err)
	}

	amount, err := parseAmount("amount", req.Amount)
	if err != nil {
		return sendParamError(c, err)
	}
	date, err := parseDate(req.Date)
	if err != nil {
		return sendParamError(c, err)
	}

	income, err := h.incomeService.Update(c.Request().Context(), id, amount, req.Description, date, req.Version)
	if err != nil {
		return SendServiceError(c, err)
	}

	return respond(c, http.StatusOK, dto.NewIncomeResponse(income), "Income updated successfully")
}

// DeleteIncome removes an income
// @Router /income/{id} [delete]
func (h *IncomeHandler) DeleteIncome(c echo.Context) error {
	id, err := getIDParam(c)
	if err != nil {
		return sendParamError(c, err)
	}

	if err := h.incomeService.Delete(c.Request().Context(), id); err != nil {
		return SendServiceError(c, err)
	}

	return respond(c, http.StatusOK, nil, "Income deleted successfully")
}
