package repositories

import (
	"context"
	"fmt"
	"time"

	"finance-tracker/internal/models"

	"gorm.io/gorm"
)

// expenditureRepository implements ExpenditureRepositoryInterface
type expenditureRepository struct {
	db *gorm.DB
}

// NewExpenditureRepository creates a new expenditure repository
func NewExpenditureRepository(db *gorm.DB) ExpenditureRepositoryInterface {
	return &expenditureRepository{
		db: db,
	}
}

// Create creates a new expenditure
func (r *expenditureRepository) Create(ctx context.Context, expenditure *models.Expenditure) error {
	if err := r.db.WithContext(ctx).Create(expenditure).Error; err != nil {
		return fmt.Errorf("failed to create expenditure: %w", err)
	}
	return nil
}

// GetByID retrieves an expenditure by ID
func (r *expenditureRepository) GetByID(ctx context.Context, id uint) (*models.Expenditure, error) {
	var expenditure models.Expenditure
	if err := r.db.WithContext(ctx).First(&expenditure, id).Error; err != nil {
		return nil, translateNotFound(err, "get expenditure")
	}
	return &expenditure, nil
}

// FindByDateRange retrieves expenditures dated within [start, end], oldest first
func (r *expenditureRepository) FindByDateRange(ctx context.Context, start, end time.Time) ([]models.Expenditure, error) {
	var expenditures []models.Expenditure
	if err := r.db.WithContext(ctx).
		Where("date BETWEEN ? AND ?", start, end).
		Order("date ASC, id ASC").
		Find(&expenditures).Error; err != nil {
		return nil, fmt.Errorf("failed to get expenditures by date range: %w", err)
	}
	return expenditures, nil
}

// UpdateWithOptimisticLock updates an expenditure with optimistic locking
func (r *expenditureRepository) UpdateWithOptimisticLock(ctx context.Context, expenditure *models.Expenditure, expectedVersion int) error {
	err := updateVersioned(ctx, r.db, &models.Expenditure{}, expenditure.ID, expectedVersion, map[string]interface{}{
		"amount":      expenditure.Amount,
		"description": expenditure.Description,
		"category":    expenditure.Category,
		"date":        expenditure.Date,
	})
	if err != nil {
		return err
	}
	expenditure.Version = expectedVersion + 1
	return nil
}

// Delete removes an expenditure by ID
func (r *expenditureRepository) Delete(ctx context.Context, id uint) error {
	return deleteByID(ctx, r.db, &models.Expenditure{}, id)
}
