package handlers

import (
	"net/http"

	"finance-tracker/internal/dto"
	"finance-tracker/internal/errors"
	"finance-tracker/internal/models"
	"finance-tracker/internal/services"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// ExpenditureHandler handles expenditure HTTP requests
type ExpenditureHandler struct {
	expenditureService services.ExpenditureServiceInterface
}

// NewExpenditureHandler creates a new expenditure handler
func NewExpenditureHandler(expenditureService services.ExpenditureServiceInterface) *ExpenditureHandler {
	return &ExpenditureHandler{expenditureService: expenditureService}
}

type expenditureInput struct {
	amount   decimal.Decimal
	category models.Category
	req      dto.ExpenditureRequest
}

// bindExpenditure binds and validates the request body. A nil input means the error
// response has already been written.
func bindExpenditure(c echo.Context) (*expenditureInput, error) {
	var in expenditureInput
	if err := c.Bind(&in.req); err != nil {
		return nil, SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(in.req); err != nil {
		return nil, SendRequestValidationError(c, err)
	}

	var err error
	if in.amount, err = parseAmount("amount", in.req.Amount); err != nil {
		return nil, sendParamError(c, err)
	}
	if in.category, err = parseCategory(in.req.Category); err != nil {
		return nil, sendParamError(c, err)
	}
	return &in, nil
}

// ListExpenditures returns the expenditures of a month
// @Router /expenditure [get]
func (h *ExpenditureHandler) ListExpenditures(c echo.Context) error {
	year, month, err := getPeriodQuery(c)
	if err != nil {
		return sendParamError(c, err)
	}

	expenditures, err := h.expenditureService.ListByPeriod(c.Request().Context(), year, month)
	if err != nil {
		return SendServiceError(c, err)
	}

	return respond(c, http.StatusOK, dto.NewExpenditureListResponse(expenditures), "")
}

// GetTotal returns the sum of a month's expenditures
// @Router /expenditure/total [get]
func (h *ExpenditureHandler) GetTotal(c echo.Context) error {
	year, month, err := getPeriodQuery(c)
	if err != nil {
		return sendParamError(c, err)
	}

	total, err := h.expenditureService.TotalByPeriod(c.Request().Context(), year, month)
	if err != nil {
		return SendServiceError(c, err)
	}

	return respond(c, http.StatusOK, dto.NewTotalResponse(year, month, total), "")
}

// CreateExpenditure records a new expenditure
// @Router /expenditure [post]
func (h *ExpenditureHandler) CreateExpenditure(c echo.Context) error {
	in, err := bindExpenditure(c)
	if in == nil {
		return err
	}
	date, err := parseDate(in.req.Date)
	if err != nil {
		return sendParamError(c, err)
	}

	expenditure, err := h.expenditureService.Create(c.Request().Context(), in.amount, in.req.Description, in.category, date)
	if err != nil {
		return SendServiceError(c, err)
	}

	return respond(c, http.StatusCreated, dto.NewExpenditureResponse(expenditure), "Expenditure created successfully")
}

// UpdateExpenditure replaces an expenditure's fields. A stale version yields 409.
// @Router /expenditure/{id} [put]
func (h *ExpenditureHandler) UpdateExpenditure(c echo.Context) error {
	id, err := getIDParam(c)
	if err != nil {
		return sendParamError(c, err)
	}
	in, err := bindExpenditure(c)
	if in == nil {
		return err
	}
	date, err := parseDate(in.req.Date)
	if err != nil {
		return sendParamError(c, err)
	}

	expenditure, err := h.expenditureService.Update(c.Request().Context(), id, in.amount, in.req.Description, in.category, date, in.req.Version)
	if err != nil {
		return SendServiceError(c, err)
	}

	return respond(c, http.StatusOK, dto.NewExpenditureResponse(expenditure), "Expenditure updated successfully")
}

// DeleteExpenditure removes an expenditure
// @Router /expenditure/{id} [delete]
func (h *ExpenditureHandler) DeleteExpenditure(c echo.Context) error {
	id, err := getIDParam(c)
	if err != nil {
		return sendParamError(c, err)
	}

	if err := h.expenditureService.Delete(c.Request().Context(), id); err != nil {
		return SendServiceError(c, err)
	}

	return respond(c, http.StatusOK, nil, "Expenditure deleted successfully")
}
