package repositories

import (
	"context"
	"fmt"

	"finance-tracker/internal/models"

	"gorm.io/gorm"
)

// liabilityRepository implements LiabilityRepositoryInterface
type liabilityRepository struct {
	db *gorm.DB
}

// NewLiabilityRepository creates a new liability repository
func NewLiabilityRepository(db *gorm.DB) LiabilityRepositoryInterface {
	return &liabilityRepository{
		db: db,
	}
}

// Save creates the liability when it has no ID, otherwise replaces the stored fields
func (r *liabilityRepository) Save(ctx context.Context, liability *models.Liability) error {
	if liability.ID == 0 {
		if err := r.db.WithContext(ctx).Create(liability).Error; err != nil {
			return fmt.Errorf("failed to create liability: %w", err)
		}
		return nil
	}
	return saveLineItem(ctx, r.db, &models.Liability{}, &liability.LineItem)
}

// GetByID retrieves a liability by ID
func (r *liabilityRepository) GetByID(ctx context.Context, id uint) (*models.Liability, error) {
	var liability models.Liability
	if err := r.db.WithContext(ctx).First(&liability, id).Error; err != nil {
		return nil, translateNotFound(err, "get liability")
	}
	return &liability, nil
}

// FindByYearAndMonth retrieves the liabilities booked against a month
func (r *liabilityRepository) FindByYearAndMonth(ctx context.Context, year, month int) ([]models.Liability, error) {
	var liabilities []models.Liability
	if err := r.db.WithContext(ctx).
		Where("year_value = ? AND month_value = ?", year, month).
		Order("id ASC").
		Find(&liabilities).Error; err != nil {
		return nil, fmt.Errorf("failed to get liabilities by period: %w", err)
	}
	return liabilities, nil
}

// Delete removes a liability by ID
func (r *liabilityRepository) Delete(ctx context.Context, id uint) error {
	return deleteByID(ctx, r.db, &models.Liability{}, id)
}
