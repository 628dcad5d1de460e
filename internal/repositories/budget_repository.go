package repositories

import (
	"context"
	"fmt"
	"time"

	"finance-tracker/internal/models"

	"gorm.io/gorm"
)

// budgetRepository implements BudgetRepositoryInterface
type budgetRepository struct {
	db *gorm.DB
}

// NewBudgetRepository creates a new budget repository
func NewBudgetRepository(db *gorm.DB) BudgetRepositoryInterface {
	return &budgetRepository{
		db: db,
	}
}

// Create creates a new budget
func (r *budgetRepository) Create(ctx context.Context, budget *models.Budget) error {
	if err := r.db.WithContext(ctx).Create(budget).Error; err != nil {
		return fmt.Errorf("failed to create budget: %w", err)
	}
	return nil
}

// GetByID retrieves a budget by ID
func (r *budgetRepository) GetByID(ctx context.Context, id uint) (*models.Budget, error) {
	var budget models.Budget
	if err := r.db.WithContext(ctx).First(&budget, id).Error; err != nil {
		return nil, translateNotFound(err, "get budget")
	}
	return &budget, nil
}

// FindByDateRange retrieves budgets dated within [start, end] in insertion order.
// Duplicate budgets for the same category are all returned.
func (r *budgetRepository) FindByDateRange(ctx context.Context, start, end time.Time) ([]models.Budget, error) {
	var budgets []models.Budget
	if err := r.db.WithContext(ctx).
		Where("date BETWEEN ? AND ?", start, end).
		Order("id ASC").
		Find(&budgets).Error; err != nil {
		return nil, fmt.Errorf("failed to get budgets by date range: %w", err)
	}
	return budgets, nil
}

// FindFirstByCategoryAndDateRange returns the earliest created budget for the category in range
func (r *budgetRepository) FindFirstByCategoryAndDateRange(ctx context.Context, category models.Category, start, end time.Time) (*models.Budget, error) {
	var budget models.Budget
	if err := r.db.WithContext(ctx).
		Where("category = ? AND date BETWEEN ? AND ?", category, start, end).
		Order("id ASC").
		First(&budget).Error; err != nil {
		return nil, translateNotFound(err, "get budget by category")
	}
	return &budget, nil
}

// UpdateWithOptimisticLock updates a budget with optimistic locking
func (r *budgetRepository) UpdateWithOptimisticLock(ctx context.Context, budget *models.Budget, expectedVersion int) error {
	err := updateVersioned(ctx, r.db, &models.Budget{}, budget.ID, expectedVersion, map[string]interface{}{
		"amount":   budget.Amount,
		"category": budget.Category,
		"date":     budget.Date,
	})
	if err != nil {
		return err
	}
	budget.Version = expectedVersion + 1
	return nil
}

// Delete removes a budget by ID
func (r *budgetRepository) Delete(ctx context.Context, id uint) error {
	return deleteByID(ctx, r.db, &models.Budget{}, id)
}
