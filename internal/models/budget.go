package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Budget is the amount allocated to a category for the month containing Date.
// At most one budget per category and month is intended but not enforced.
type Budget struct {
	ID        uint            `gorm:"primaryKey" json:"id"`
	Amount    decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"amount"`
	Category  Category        `gorm:"type:varchar(32);not null;index" json:"category"`
	Date      time.Time       `gorm:"type:date;not null;index" json:"date"`
	Version   int             `gorm:"not null;default:1" json:"version"`
	CreatedAt time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time       `gorm:"not null" json:"updated_at"`
}

// NewBudget builds a validated Budget
func NewBudget(amount decimal.Decimal, category Category, date time.Time) (Budget, error) {
	budget := Budget{
		Amount:   amount,
		Category: category,
		Date:     calendarDate(date),
		Version:  1,
	}
	return budget, budget.Validate()
}

// WithChanges returns a copy of the budget carrying the replacement fields
func (b Budget) WithChanges(amount decimal.Decimal, category Category, date time.Time) (Budget, error) {
	updated := b
	updated.Amount = amount
	updated.Category = category
	updated.Date = calendarDate(date)
	return updated, updated.Validate()
}

// BeforeCreate hook for Budget
func (b *Budget) BeforeCreate(tx *gorm.DB) error {
	if b.Version == 0 {
		b.Version = 1
	}
	b.Date = calendarDate(b.Date)
	return b.Validate()
}

// Validate validates the budget fields
func (b *Budget) Validate() error {
	if err := validatePositive(b.Amount); err != nil {
		return err
	}
	if !IsValidCategory(string(b.Category)) {
		return ErrInvalidCategory
	}
	return validateDate(b.Date)
}

func (b Budget) GetID() uint     { return b.ID }
func (b Budget) GetVersion() int { return b.Version }

// TableName returns the table name for Budget
func (Budget) TableName() string {
	return "budgets"
}
