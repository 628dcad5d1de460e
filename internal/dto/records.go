package dto

import (
	"time"

	"finance-tracker/internal/models"
	"finance-tracker/internal/period"

	"github.com/shopspring/decimal"
)

// Record Request DTOs

// IncomeRequest represents the request payload for creating or updating an income
type IncomeRequest struct {
	Amount      string `json:"amount" validate:"required,positive_amount,money_scale"`
	Description string `json:"description" validate:"required,min=1,max=255"`
	Date        string `json:"date" validate:"required,calendar_date"`
	Version     *int   `json:"version,omitempty" validate:"omitempty,min=1"`
}

// ExpenditureRequest represents the request payload for creating or updating an expenditure
type ExpenditureRequest struct {
	Amount      string `json:"amount" validate:"required,positive_amount,money_scale"`
	Description string `json:"description" validate:"max=255"`
	Category    string `json:"category" validate:"required,category"`
	Date        string `json:"date" validate:"required,calendar_date"`
	Version     *int   `json:"version,omitempty" validate:"omitempty,min=1"`
}

// BudgetRequest represents the request payload for creating or updating a budget
type BudgetRequest struct {
	Amount   string `json:"amount" validate:"required,positive_amount,money_scale"`
	Category string `json:"category" validate:"required,category"`
	Date     string `json:"date" validate:"required,calendar_date"`
	Version  *int   `json:"version,omitempty" validate:"omitempty,min=1"`
}

// Record Response DTOs

// IncomeResponse represents an income in API responses
type IncomeResponse struct {
	ID          uint      `json:"id"`
	Amount      string    `json:"amount"`
	Description string    `json:"description"`
	Date        string    `json:"date"`
	Version     int       `json:"version"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// ExpenditureResponse represents an expenditure in API responses
type ExpenditureResponse struct {
	ID          uint      `json:"id"`
	Amount      string    `json:"amount"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Date        string    `json:"date"`
	Version     int       `json:"version"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// BudgetResponse represents a budget in API responses
type BudgetResponse struct {
	ID        uint      `json:"id"`
	Amount    string    `json:"amount"`
	Category  string    `json:"category"`
	Date      string    `json:"date"`
	Version   int       `json:"version"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TotalResponse represents the sum of a month's records
type TotalResponse struct {
	Year  int    `json:"year"`
	Month int    `json:"month"`
	Total string `json:"total"`
}

// FormatAmount renders money with exactly two decimals
func FormatAmount(amount decimal.Decimal) string {
	return amount.StringFixed(2)
}

func formatDate(t time.Time) string {
	return t.Format(period.DateLayout)
}

func NewIncomeResponse(income *models.Income) IncomeResponse {
	return IncomeResponse{
		ID:          income.ID,
		Amount:      FormatAmount(income.Amount),
		Description: income.Description,
		Date:        formatDate(income.Date),
		Version:     income.Version,
		CreatedAt:   income.CreatedAt,
		UpdatedAt:   income.UpdatedAt,
	}
}

func NewIncomeListResponse(incomes []models.Income) []IncomeResponse {
	resp := make([]IncomeResponse, 0, len(incomes))
	for i := range incomes {
		resp = append(resp, NewIncomeResponse(&incomes[i]))
	}
	return resp
}

func NewExpenditureResponse(expenditure *models.Expenditure) ExpenditureResponse {
	return ExpenditureResponse{
		ID:          expenditure.ID,
		Amount:      FormatAmount(expenditure.Amount),
		Description: expenditure.Description,
		Category:    expenditure.Category.String(),
		Date:        formatDate(expenditure.Date),
		Version:     expenditure.Version,
		CreatedAt:   expenditure.CreatedAt,
		UpdatedAt:   expenditure.UpdatedAt,
	}
}

func NewExpenditureListResponse(expenditures []models.Expenditure) []ExpenditureResponse {
	resp := make([]ExpenditureResponse, 0, len(expenditures))
	for i := range expenditures {
		resp = append(resp, NewExpenditureResponse(&expenditures[i]))
	}
	return resp
}

func NewBudgetResponse(budget *models.Budget) BudgetResponse {
	return BudgetResponse{
		ID:        budget.ID,
		Amount:    FormatAmount(budget.Amount),
		Category:  budget.Category.String(),
		Date:      formatDate(budget.Date),
		Version:   budget.Version,
		CreatedAt: budget.CreatedAt,
		UpdatedAt: budget.UpdatedAt,
	}
}

func NewBudgetListResponse(budgets []models.Budget) []BudgetResponse {
	resp := make([]BudgetResponse, 0, len(budgets))
	for i := range budgets {
		resp = append(resp, NewBudgetResponse(&budgets[i]))
	}
	return resp
}

func NewTotalResponse(year, month int, total decimal.Decimal) TotalResponse {
	return TotalResponse{Year: year, Month: month, Total: FormatAmount(total)}
}
