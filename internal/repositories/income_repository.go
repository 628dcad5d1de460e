package repositories

import (
	"context"
	"fmt"
	"time"

	"finance-tracker/internal/models"

	"gorm.io/gorm"
)

// incomeRepository implements IncomeRepositoryInterface
type incomeRepository struct {
	db *gorm.DB
}

// NewIncomeRepository creates a new income repository
func NewIncomeRepository(db *gorm.DB) IncomeRepositoryInterface {
	return &incomeRepository{
		db: db,
	}
}

// Create creates a new income
func (r *incomeRepository) Create(ctx context.Context, income *models.Income) error {
	if err := r.db.WithContext(ctx).Create(income).Error; err != nil {
		return fmt.Errorf("failed to create income: %w", err)
	}
	return nil
}

// GetByID retrieves an income by ID
func (r *incomeRepository) GetByID(ctx context.Context, id uint) (*models.Income, error) {
	var income models.Income
	if err := r.db.WithContext(ctx).First(&income, id).Error; err != nil {
		return nil, translateNotFound(err, "get income")
	}
	return &income, nil
}

// FindByDateRange retrieves incomes dated within [start, end], oldest first
func (r *incomeRepository) FindByDateRange(ctx context.Context, start, end time.Time) ([]models.Income, error) {
	var incomes []models.Income
	if err := r.db.WithContext(ctx).
		Where("date BETWEEN ? AND ?", start, end).
		Order("date ASC, id ASC").
		Find(&incomes).Error; err != nil {
		return nil, fmt.Errorf("failed to get incomes by date range: %w", err)
	}
	return incomes, nil
}

// UpdateWithOptimisticLock updates an income with optimistic locking
func (r *incomeRepository) UpdateWithOptimisticLock(ctx context.Context, income *models.Income, expectedVersion int) error {
	err := updateVersioned(ctx, r.db, &models.Income{}, income.ID, expectedVersion, map[string]interface{}{
		"amount":      income.Amount,
		"description": income.Description,
		"date":        income.Date,
	})
	if err != nil {
		return err
	}
	income.Version = expectedVersion + 1
	return nil
}

// Delete removes an income by ID
func (r *incomeRepository) Delete(ctx context.Context, id uint) error {
	return deleteByID(ctx, r.db, &models.Income{}, id)
}
