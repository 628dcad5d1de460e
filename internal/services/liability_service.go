package services

import (
	"context"
	"fmt"

	"finance-tracker/internal/models"
	"finance-tracker/internal/repositories"

	"github.com/shopspring/decimal"
)

type liabilityService struct {
	repo   repositories.LiabilityRepositoryInterface
	events recordEvents
}

// NewLiabilityService creates a new LiabilityServiceInterface instance
func NewLiabilityService(repo repositories.LiabilityRepositoryInterface, logger FinanceLoggerInterface, metrics MetricsRecorderInterface) LiabilityServiceInterface {
	return &liabilityService{
		repo:   repo,
		events: newRecordEvents(EntityLiability, logger, metrics),
	}
}

// Save creates a liability when id is 0, otherwise replaces the fields of the existing one
func (s *liabilityService) Save(ctx context.Context, id uint, year, month int, amount decimal.Decimal, comment string) (*models.Liability, error) {
	liability, err := models.NewLiability(year, month, amount, comment)
	if err != nil {
		return nil, s.events.invalid(ctx, "save_liability", err)
	}

	if id != 0 {
		existing, err := s.repo.GetByID(ctx, id)
		if err != nil {
			return nil, translateRepositoryError(EntityLiability, id, err)
		}
		liability.ID = existing.ID
		liability.CreatedAt = existing.CreatedAt
	}

	if err := s.repo.Save(ctx, &liability); err != nil {
		return nil, fmt.Errorf("failed to save liability: %w", translateRepositoryError(EntityLiability, id, err))
	}

	if id == 0 {
		s.events.created(ctx, liability.ID)
	} else {
		s.events.updated(ctx, liability.ID, 0)
	}
	return &liability, nil
}

func (s *liabilityService) ListByPeriod(ctx context.Context, year, month int) ([]models.Liability, error) {
	if _, err := resolvePeriod(year, month); err != nil {
		return nil, err
	}

	liabilities, err := s.repo.FindByYearAndMonth(ctx, year, month)
	if err != nil {
		return nil, fmt.Errorf("failed to list liabilities: %w", err)
	}
	return liabilities, nil
}

func (s *liabilityService) TotalByPeriod(ctx context.Context, year, month int) (decimal.Decimal, error) {
	liabilities, err := s.ListByPeriod(ctx, year, month)
	if err != nil {
		return decimal.Zero, err
	}

	items := make([]models.LineItem, 0, len(liabilities))
	for _, l := range liabilities {
		items = append(items, l.LineItem)
	}
	return models.SumLineItems(items), nil
}

func (s *liabilityService) Delete(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return translateRepositoryError(EntityLiability, id, err)
	}
	s.events.deleted(ctx, id)
	return nil
}
