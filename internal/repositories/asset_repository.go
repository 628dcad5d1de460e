package repositories

import (
	"context"
	"fmt"
	"time"

	"finance-tracker/internal/models"

	"gorm.io/gorm"
)

// assetRepository implements AssetRepositoryInterface
type assetRepository struct {
	db *gorm.DB
}

// NewAssetRepository creates a new asset repository
func NewAssetRepository(db *gorm.DB) AssetRepositoryInterface {
	return &assetRepository{
		db: db,
	}
}

// Save creates the asset when it has no ID, otherwise replaces the stored fields
func (r *assetRepository) Save(ctx context.Context, asset *models.Asset) error {
	if asset.ID == 0 {
		if err := r.db.WithContext(ctx).Create(asset).Error; err != nil {
			return fmt.Errorf("failed to create asset: %w", err)
		}
		return nil
	}
	return saveLineItem(ctx, r.db, &models.Asset{}, &asset.LineItem)
}

// GetByID retrieves an asset by ID
func (r *assetRepository) GetByID(ctx context.Context, id uint) (*models.Asset, error) {
	var asset models.Asset
	if err := r.db.WithContext(ctx).First(&asset, id).Error; err != nil {
		return nil, translateNotFound(err, "get asset")
	}
	return &asset, nil
}

// FindByYearAndMonth retrieves the assets booked against a month
func (r *assetRepository) FindByYearAndMonth(ctx context.Context, year, month int) ([]models.Asset, error) {
	var assets []models.Asset
	if err := r.db.WithContext(ctx).
		Where("year_value = ? AND month_value = ?", year, month).
		Order("id ASC").
		Find(&assets).Error; err != nil {
		return nil, fmt.Errorf("failed to get assets by period: %w", err)
	}
	return assets, nil
}

// Delete removes an asset by ID
func (r *assetRepository) Delete(ctx context.Context, id uint) error {
	return deleteByID(ctx, r.db, &models.Asset{}, id)
}

// saveLineItem overwrites an existing line item row, failing with ErrRecordNotFound if it is gone
func saveLineItem(ctx context.Context, db *gorm.DB, model interface{}, item *models.LineItem) error {
	if err := item.Validate(); err != nil {
		return err
	}
	now := time.Now().UTC()
	result := db.WithContext(ctx).Model(model).
		Where("id = ?", item.ID).
		Updates(map[string]interface{}{
			"year_value":  item.Year,
			"month_value": item.Month,
			"amount":      item.Amount,
			"comment":     item.Comment,
			"updated_at":  now,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update line item: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrRecordNotFound
	}
	item.UpdatedAt = now
	return nil
}
