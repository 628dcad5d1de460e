package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"finance-tracker/internal/models"

	"gorm.io/gorm"
)

var (
	ErrRecordNotFound = errors.New("record not found")
)

// updateVersioned applies fields to the row identified by id only while its stored
// version still equals expectedVersion, bumping the version in the same statement.
// A missing row yields ErrRecordNotFound, a stale version ErrOptimisticLockConflict.
func updateVersioned(ctx context.Context, db *gorm.DB, model interface{}, id uint, expectedVersion int, fields map[string]interface{}) error {
	fields["version"] = gorm.Expr("version + 1")
	fields["updated_at"] = time.Now().UTC()

	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(model).
			Where("id = ? AND version = ?", id, expectedVersion).
			Updates(fields)
		if result.Error != nil {
			return fmt.Errorf("failed to update with optimistic lock: %w", result.Error)
		}
		if result.RowsAffected > 0 {
			return nil
		}

		var count int64
		if err := tx.Model(model).Where("id = ?", id).Count(&count).Error; err != nil {
			return fmt.Errorf("failed to check record existence: %w", err)
		}
		if count == 0 {
			return ErrRecordNotFound
		}
		return models.ErrOptimisticLockConflict
	})
}

// deleteByID removes the row and reports ErrRecordNotFound when nothing was deleted
func deleteByID(ctx context.Context, db *gorm.DB, model interface{}, id uint) error {
	result := db.WithContext(ctx).Delete(model, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete record: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrRecordNotFound
	}
	return nil
}

func translateNotFound(err error, action string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrRecordNotFound
	}
	return fmt.Errorf("failed to %s: %w", action, err)
}
