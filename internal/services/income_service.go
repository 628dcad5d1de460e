package services

import (
	"context"
	"fmt"
	"time"

	"finance-tracker/internal/models"
	"finance-tracker/internal/repositories"

	"github.com/shopspring/decimal"
)

type incomeService struct {
	repo   repositories.IncomeRepositoryInterface
	events recordEvents
}

// NewIncomeService creates a new IncomeServiceInterface instance
func NewIncomeService(repo repositories.IncomeRepositoryInterface, logger FinanceLoggerInterface, metrics MetricsRecorderInterface) IncomeServiceInterface {
	return &incomeService{
		repo:   repo,
		events: newRecordEvents(EntityIncome, logger, metrics),
	}
}

// Create validates and stores a new income
func (s *incomeService) Create(ctx context.Context, amount decimal.Decimal, description string, date time.Time) (*models.Income, error) {
	income, err := models.NewIncome(amount, description, date)
	if err != nil {
		return nil, s.events.invalid(ctx, "create_income", err)
	}

	if err := s.repo.Create(ctx, &income); err != nil {
		return nil, fmt.Errorf("failed to create income: %w", translateRepositoryError(EntityIncome, 0, err))
	}

	s.events.created(ctx, income.ID)
	return &income, nil
}

// ListByPeriod returns the incomes dated within the month
func (s *incomeService) ListByPeriod(ctx context.Context, year, month int) ([]models.Income, error) {
	p, err := resolvePeriod(year, month)
	if err != nil {
		return nil, err
	}

	start, end := p.Range()
	incomes, err := s.repo.FindByDateRange(ctx, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list incomes for %s: %w", p, err)
	}
	return incomes, nil
}

// TotalByPeriod sums the incomes dated within the month
func (s *incomeService) TotalByPeriod(ctx context.Context, year, month int) (decimal.Decimal, error) {
	incomes, err := s.ListByPeriod(ctx, year, month)
	if err != nil {
		return decimal.Zero, err
	}

	total := decimal.Zero
	for _, income := range incomes {
		total = total.Add(income.Amount)
	}
	return total, nil
}

// Update replaces the income's fields if it has not been modified since expectedVersion.
// A nil expectedVersion uses the version currently stored.
func (s *incomeService) Update(ctx context.Context, id uint, amount decimal.Decimal, description string, date time.Time, expectedVersion *int) (*models.Income, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, translateRepositoryError(EntityIncome, id, err)
	}

	updated, err := existing.WithChanges(amount, description, date)
	if err != nil {
		return nil, s.events.invalid(ctx, "update_income", err)
	}

	version := resolveVersion(existing.Version, expectedVersion)
	if err := s.repo.UpdateWithOptimisticLock(ctx, &updated, version); err != nil {
		return nil, s.events.updateFailed(ctx, id, version, err)
	}

	s.events.updated(ctx, updated.ID, updated.Version)
	return &updated, nil
}

// Delete removes the income
func (s *incomeService) Delete(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return translateRepositoryError(EntityIncome, id, err)
	}
	s.events.deleted(ctx, id)
	return nil
}
