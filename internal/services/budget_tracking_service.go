package services

import (
	"context"
	"fmt"
	"time"

	"finance-tracker/internal/models"
	"finance-tracker/internal/repositories"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

type budgetTrackingService struct {
	budgets      repositories.BudgetRepositoryInterface
	expenditures repositories.ExpenditureRepositoryInterface
	logger       FinanceLoggerInterface
	metrics      MetricsRecorderInterface
}

// NewBudgetTrackingService creates a new BudgetTrackingServiceInterface instance
func NewBudgetTrackingService(
	budgets repositories.BudgetRepositoryInterface,
	expenditures repositories.ExpenditureRepositoryInterface,
	logger FinanceLoggerInterface,
	metrics MetricsRecorderInterface,
) BudgetTrackingServiceInterface {
	return &budgetTrackingService{
		budgets:      budgets,
		expenditures: expenditures,
		logger:       logger,
		metrics:      metrics,
	}
}

// GetBudgetTracking returns one row per budget of the month with the amount spent in its
// category. Categories without a budget produce no row; duplicate budgets each get one.
func (s *budgetTrackingService) GetBudgetTracking(ctx context.Context, month, year int) ([]models.BudgetTrackingRow, error) {
	started := time.Now()

	p, err := resolvePeriod(year, month)
	if err != nil {
		s.logger.LogValidationFailure(ctx, "budget_tracking", err.Error())
		return nil, err
	}
	start, end := p.Range()

	budgets, err := s.budgets.FindByDateRange(ctx, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to get budgets for %s: %w", p, err)
	}
	expenditures, err := s.expenditures.FindByDateRange(ctx, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to get expenditures for %s: %w", p, err)
	}

	rows := BuildTrackingRows(budgets, expenditures)

	overBudget := 0
	for _, row := range rows {
		if row.PercentageUsed.GreaterThan(hundred) {
			overBudget++
		}
	}

	duration := time.Since(started)
	s.metrics.RecordProcessingTime(MetricBudgetTracking, duration)
	s.metrics.RecordGauge(MetricOverBudgetCategories, float64(overBudget), nil)
	s.logger.LogBudgetTrackingComputed(ctx, p.String(), len(rows), duration)

	return rows, nil
}

// BuildTrackingRows joins budgets with expenditure totals by category
func BuildTrackingRows(budgets []models.Budget, expenditures []models.Expenditure) []models.BudgetTrackingRow {
	spentByCategory := make(map[models.Category]decimal.Decimal)
	for _, e := range expenditures {
		spentByCategory[e.Category] = spentByCategory[e.Category].Add(e.Amount)
	}

	rows := make([]models.BudgetTrackingRow, 0, len(budgets))
	for _, b := range budgets {
		spent := spentByCategory[b.Category]
		rows = append(rows, models.BudgetTrackingRow{
			BudgetID:       b.ID,
			Category:       b.Category,
			Budget:         b.Amount,
			Spent:          spent,
			PercentageUsed: PercentageUsed(spent, b.Amount),
		})
	}
	return rows
}

// PercentageUsed returns spent as a percentage of budget rounded half up to two places.
// A budget that is not positive yields zero.
func PercentageUsed(spent, budget decimal.Decimal) decimal.Decimal {
	if !budget.IsPositive() {
		return decimal.Zero
	}
	return spent.Mul(hundred).DivRound(budget, 2)
}
