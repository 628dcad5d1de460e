package services

import (
	"context"
	"fmt"
	"time"

	"finance-tracker/internal/models"
	"finance-tracker/internal/repositories"

	"github.com/shopspring/decimal"
)

type expenditureService struct {
	repo   repositories.ExpenditureRepositoryInterface
	events recordEvents
}

// NewExpenditureService creates a new ExpenditureServiceInterface instance
func NewExpenditureService(repo repositories.ExpenditureRepositoryInterface, logger FinanceLoggerInterface, metrics MetricsRecorderInterface) ExpenditureServiceInterface {
	return &expenditureService{
		repo:   repo,
		events: newRecordEvents(EntityExpenditure, logger, metrics),
	}
}

func (s *expenditureService) Create(ctx context.Context, amount decimal.Decimal, description string, category models.Category, date time.Time) (*models.Expenditure, error) {
	expenditure, err := models.NewExpenditure(amount, description, category, date)
	if err != nil {
		return nil, s.events.invalid(ctx, "create_expenditure", err)
	}

	if err := s.repo.Create(ctx, &expenditure); err != nil {
		return nil, fmt.Errorf("failed to create expenditure: %w", translateRepositoryError(EntityExpenditure, 0, err))
	}

	s.events.created(ctx, expenditure.ID)
	return &expenditure, nil
}

func (s *expenditureService) ListByPeriod(ctx context.Context, year, month int) ([]models.Expenditure, error) {
	p, err := resolvePeriod(year, month)
	if err != nil {
		return nil, err
	}

	start, end := p.Range()
	expenditures, err := s.repo.FindByDateRange(ctx, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenditures for %s: %w", p, err)
	}
	return expenditures, nil
}

func (s *expenditureService) TotalByPeriod(ctx context.Context, year, month int) (decimal.Decimal, error) {
	expenditures, err := s.ListByPeriod(ctx, year, month)
	if err != nil {
		return decimal.Zero, err
	}

	total := decimal.Zero
	for _, expenditure := range expenditures {
		total = total.Add(expenditure.Amount)
	}
	return total, nil
}

func (s *expenditureService) Update(ctx context.Context, id uint, amount decimal.Decimal, description string, category models.Category, date time.Time, expectedVersion *int) (*models.Expenditure, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, translateRepositoryError(EntityExpenditure, id, err)
	}

	updated, err := existing.WithChanges(amount, description, category, date)
	if err != nil {
		return nil, s.events.invalid(ctx, "update_expenditure", err)
	}

	version := resolveVersion(existing.Version, expectedVersion)
	if err := s.repo.UpdateWithOptimisticLock(ctx, &updated, version); err != nil {
		return nil, s.events.updateFailed(ctx, id, version, err)
	}

	s.events.updated(ctx, updated.ID, updated.Version)
	return &updated, nil
}

func (s *expenditureService) Delete(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return translateRepositoryError(EntityExpenditure, id, err)
	}
	s.events.deleted(ctx, id)
	return nil
}
