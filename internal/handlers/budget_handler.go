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

// BudgetHandler handles budget and budget tracking HTTP requests
type BudgetHandler struct {
	budgetService   services.BudgetServiceInterface
	trackingService services.BudgetTrackingServiceInterface
}

// NewBudgetHandler creates a new budget handler
func NewBudgetHandler(budgetService services.BudgetServiceInterface, trackingService services.BudgetTrackingServiceInterface) *BudgetHandler {
	return &BudgetHandler{
		budgetService:   budgetService,
		trackingService: trackingService,
	}
}

type budgetInput struct {
	amount   decimal.Decimal
	category models.Category
	req      dto.BudgetRequest
}

// bindBudget binds and validates the request body. A nil input means the error
// response has already been written.
func bindBudget(c echo.Context) (*budgetInput, error) {
	var in budgetInput
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

// ListBudgets returns the budgets of a month
// @Router /budget [get]
func (h *BudgetHandler) ListBudgets(c echo.Context) error {
	year, month, err := getPeriodQuery(c)
	if err != nil {
		return sendParamError(c, err)
	}

	budgets, err := h.budgetService.ListByPeriod(c.Request().Context(), year, month)
	if err != nil {
		return SendServiceError(c, err)
	}

	return respond(c, http.StatusOK, dto.NewBudgetListResponse(budgets), "")
}

// GetBudgetByCategory returns the first budget of a category in a month
// @Router /budget/category [get]
func (h *BudgetHandler) GetBudgetByCategory(c echo.Context) error {
	category, err := parseCategory(c.QueryParam("category"))
	if err != nil {
		return sendParamError(c, err)
	}
	year, month, err := getPeriodQuery(c)
	if err != nil {
		return sendParamError(c, err)
	}

	budget, err := h.budgetService.GetByCategory(c.Request().Context(), category, year, month)
	if err != nil {
		return SendServiceError(c, err)
	}

	return respond(c, http.StatusOK, dto.NewBudgetResponse(budget), "")
}

// CreateBudget records a new budget
// @Router /budget [post]
func (h *BudgetHandler) CreateBudget(c echo.Context) error {
	in, err := bindBudget(c)
	if in == nil {
		return err
	}
	date, err := parseDate(in.req.Date)
	if err != nil {
		return sendParamError(c, err)
	}

	budget, err := h.budgetService.Create(c.Request().Context(), in.amount, in.category, date)
	if err != nil {
		return SendServiceError(c, err)
	}

	return respond(c, http.StatusCreated, dto.NewBudgetResponse(budget), "Budget created successfully")
}

// UpdateBudget replaces a budget's fields. A stale version yields 409.
// @Router /budget/{id} [put]
func (h *BudgetHandler) UpdateBudget(c echo.Context) error {
	id, err := getIDParam(c)
	if err != nil {
		return sendParamError(c, err)
	}
	in, err := bindBudget(c)
	if in == nil {
		return err
	}
	date, err := parseDate(in.req.Date)
	if err != nil {
		return sendParamError(c, err)
	}

	budget, err := h.budgetService.Update(c.Request().Context(), id, in.amount, in.category, date, in.req.Version)
	if err != nil {
		return SendServiceError(c, err)
	}

	return respond(c, http.StatusOK, dto.NewBudgetResponse(budget), "Budget updated successfully")
}

// DeleteBudget removes a budget
// @Router /budget/{id} [delete]
func (h *BudgetHandler) DeleteBudget(c echo.Context) error {
	id, err := getIDParam(c)
	if err != nil {
		return sendParamError(c, err)
	}

	if err := h.budgetService.Delete(c.Request().Context(), id); err != nil {
		return SendServiceError(c, err)
	}

	return respond(c, http.StatusOK, nil, "Budget deleted successfully")
}

// GetBudgetTracking compares each budget of the month with the spend in its category
// @Router /budget-tracking [get]
func (h *BudgetHandler) GetBudgetTracking(c echo.Context) error {
	year, month, err := getPeriodQuery(c)
	if err != nil {
		return sendParamError(c, err)
	}

	rows, err := h.trackingService.GetBudgetTracking(c.Request().Context(), month, year)
	if err != nil {
		return SendServiceError(c, err)
	}

	return respond(c, http.StatusOK, dto.NewBudgetTrackingResponse(rows), "")
}
