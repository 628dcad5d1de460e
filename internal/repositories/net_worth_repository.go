package repositories

import (
	"context"
	"fmt"
	"time"

	"finance-tracker/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// netWorthRepository implements NetWorthRepositoryInterface
type netWorthRepository struct {
	db *gorm.DB
}

// NewNetWorthRepository creates a new net worth repository
func NewNetWorthRepository(db *gorm.DB) NetWorthRepositoryInterface {
	return &netWorthRepository{
		db: db,
	}
}

// FindByYearAndMonth retrieves the snapshot for a month
func (r *netWorthRepository) FindByYearAndMonth(ctx context.Context, year, month int) (*models.NetWorth, error) {
	var netWorth models.NetWorth
	if err := r.db.WithContext(ctx).
		Where("year_value = ? AND month_value = ?", year, month).
		First(&netWorth).Error; err != nil {
		return nil, translateNotFound(err, "get net worth")
	}
	return &netWorth, nil
}

// Upsert inserts the snapshot or overwrites the totals of the existing one for
// the same month, then reloads the stored row into netWorth.
func (r *netWorthRepository) Upsert(ctx context.Context, netWorth *models.NetWorth) error {
	if err := netWorth.Validate(); err != nil {
		return err
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return upsertNetWorth(tx, netWorth)
	})
}

// UpsertFromLineItems totals the month's assets and liabilities and stores them as its snapshot
func (r *netWorthRepository) UpsertFromLineItems(ctx context.Context, year, month int) (*models.NetWorth, error) {
	var netWorth *models.NetWorth

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var assets []models.Asset
		if err := tx.Where("year_value = ? AND month_value = ?", year, month).Find(&assets).Error; err != nil {
			return fmt.Errorf("failed to get assets by period: %w", err)
		}
		var liabilities []models.Liability
		if err := tx.Where("year_value = ? AND month_value = ?", year, month).Find(&liabilities).Error; err != nil {
			return fmt.Errorf("failed to get liabilities by period: %w", err)
		}

		assetItems := make([]models.LineItem, 0, len(assets))
		for _, a := range assets {
			assetItems = append(assetItems, a.LineItem)
		}
		liabilityItems := make([]models.LineItem, 0, len(liabilities))
		for _, l := range liabilities {
			liabilityItems = append(liabilityItems, l.LineItem)
		}

		snapshot, err := models.NewNetWorth(year, month, models.SumLineItems(assetItems), models.SumLineItems(liabilityItems))
		if err != nil {
			return err
		}
		if err := upsertNetWorth(tx, &snapshot); err != nil {
			return err
		}
		netWorth = &snapshot
		return nil
	})
	if err != nil {
		return nil, err
	}
	return netWorth, nil
}

// FindAllOrdered retrieves every snapshot in chronological order
func (r *netWorthRepository) FindAllOrdered(ctx context.Context) ([]models.NetWorth, error) {
	var history []models.NetWorth
	if err := r.db.WithContext(ctx).
		Order("year_value ASC, month_value ASC").
		Find(&history).Error; err != nil {
		return nil, fmt.Errorf("failed to get net worth history: %w", err)
	}
	return history, nil
}

// FindInBox retrieves snapshots whose year lies in [startYear, endYear] and whose
// month lies in [startMonth, endMonth], in chronological order. The two bounds are
// applied independently, so a range crossing a year boundary selects a box rather
// than a contiguous span.
func (r *netWorthRepository) FindInBox(ctx context.Context, startYear, startMonth, endYear, endMonth int) ([]models.NetWorth, error) {
	var history []models.NetWorth
	if err := r.db.WithContext(ctx).
		Where("year_value BETWEEN ? AND ? AND month_value BETWEEN ? AND ?", startYear, endYear, startMonth, endMonth).
		Order("year_value ASC, month_value ASC").
		Find(&history).Error; err != nil {
		return nil, fmt.Errorf("failed to get net worth history in range: %w", err)
	}
	return history, nil
}

func upsertNetWorth(tx *gorm.DB, netWorth *models.NetWorth) error {
	now := time.Now().UTC()
	err := tx.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "year_value"}, {Name: "month_value"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"assets":      netWorth.Assets,
			"liabilities": netWorth.Liabilities,
			"version":     gorm.Expr("net_worth.version + 1"),
			"updated_at":  now,
		}),
	}).Create(netWorth).Error
	if err != nil {
		return fmt.Errorf("failed to upsert net worth: %w", err)
	}

	var stored models.NetWorth
	if err := tx.Where("year_value = ? AND month_value = ?", netWorth.Year, netWorth.Month).
		First(&stored).Error; err != nil {
		return fmt.Errorf("failed to reload net worth: %w", err)
	}
	*netWorth = stored
	return nil
}
