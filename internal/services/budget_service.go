package services

import (
	"context"
	"fmt"
	"time"

	"finance-tracker/internal/models"
	"finance-tracker/internal/repositories"

	"github.com/shopspring/decimal"
)

type budgetService struct {
	repo   repositories.BudgetRepositoryInterface
	events recordEvents
}

// NewBudgetService creates a new BudgetServiceInterface instance
func NewBudgetService(repo repositories.BudgetRepositoryInterface, logger FinanceLoggerInterface, metrics MetricsRecorderInterface) BudgetServiceInterface {
	return &budgetService{
		repo:   repo,
		events: newRecordEvents(EntityBudget, logger, metrics),
	}
}

// Create stores a new budget. A second budget for the same category and month is
// accepted; tracking reports each one separately.
func (s *budgetService) Create(ctx context.Context, amount decimal.Decimal, category models.Category, date time.Time) (*models.Budget, error) {
	budget, err := models.NewBudget(amount, category, date)
	if err != nil {
		return nil, s.events.invalid(ctx, "create_budget", err)
	}

	if err := s.repo.Create(ctx, &budget); err != nil {
		return nil, fmt.Errorf("failed to create budget: %w", translateRepositoryError(EntityBudget, 0, err))
	}

	s.events.created(ctx, budget.ID)
	return &budget, nil
}

func (s *budgetService) ListByPeriod(ctx context.Context, year, month int) ([]models.Budget, error) {
	p, err := resolvePeriod(year, month)
	if err != nil {
		return nil, err
	}

	start, end := p.Range()
	budgets, err := s.repo.FindByDateRange(ctx, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list budgets for %s: %w", p, err)
	}
	return budgets, nil
}

// GetByCategory returns the earliest budget for the category in the month
func (s *budgetService) GetByCategory(ctx context.Context, category models.Category, year, month int) (*models.Budget, error) {
	if !models.IsValidCategory(string(category)) {
		return nil, asValidationError(models.ErrInvalidCategory)
	}
	p, err := resolvePeriod(year, month)
	if err != nil {
		return nil, err
	}

	start, end := p.Range()
	budget, err := s.repo.FindFirstByCategoryAndDateRange(ctx, category, start, end)
	if err != nil {
		return nil, translateRepositoryError(EntityBudget, 0, err)
	}
	return budget, nil
}

func (s *budgetService) Update(ctx context.Context, id uint, amount decimal.Decimal, category models.Category, date time.Time, expectedVersion *int) (*models.Budget, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, translateRepositoryError(EntityBudget, id, err)
	}

	updated, err := existing.WithChanges(amount, category, date)
	if err != nil {
		return nil, s.events.invalid(ctx, "update_budget", err)
	}

	version := resolveVersion(existing.Version, expectedVersion)
	if err := s.repo.UpdateWithOptimisticLock(ctx, &updated, version); err != nil {
		return nil, s.events.updateFailed(ctx, id, version, err)
	}

	s.events.updated(ctx, updated.ID, updated.Version)
	return &updated, nil
}

func (s *budgetService) Delete(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return translateRepositoryError(EntityBudget, id, err)
	}
	s.events.deleted(ctx, id)
	return nil
}
