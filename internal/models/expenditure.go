package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Expenditure represents money spent in a category on a calendar date
type Expenditure struct {
	ID          uint            `gorm:"primaryKey" json:"id"`
	Amount      decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"amount"`
	Description string          `gorm:"type:varchar(255)" json:"description"`
	Category    Category        `gorm:"type:varchar(32);not null;index" json:"category"`
	Date        time.Time       `gorm:"type:date;not null;index" json:"date"`
	Version     int             `gorm:"not null;default:1" json:"version"`
	CreatedAt   time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt   time.Time       `gorm:"not null" json:"updated_at"`
}

// NewExpenditure builds a validated Expenditure
func NewExpenditure(amount decimal.Decimal, description string, category Category, date time.Time) (Expenditure, error) {
	expenditure := Expenditure{
		Amount:      amount,
		Description: description,
		Category:    category,
		Date:        calendarDate(date),
		Version:     1,
	}
	return expenditure, expenditure.Validate()
}

// WithChanges returns a copy of the expenditure carrying the replacement fields
func (e Expenditure) WithChanges(amount decimal.Decimal, description string, category Category, date time.Time) (Expenditure, error) {
	updated := e
	updated.Amount = amount
	updated.Description = description
	updated.Category = category
	updated.Date = calendarDate(date)
	return updated, updated.Validate()
}

// BeforeCreate hook for Expenditure
func (e *Expenditure) BeforeCreate(tx *gorm.DB) error {
	if e.Version == 0 {
		e.Version = 1
	}
	e.Date = calendarDate(e.Date)
	return e.Validate()
}

// Validate validates the expenditure fields. Description is optional.
func (e *Expenditure) Validate() error {
	if err := validatePositive(e.Amount); err != nil {
		return err
	}
	if !IsValidCategory(string(e.Category)) {
		return ErrInvalidCategory
	}
	return validateDate(e.Date)
}

func (e Expenditure) GetID() uint     { return e.ID }
func (e Expenditure) GetVersion() int { return e.Version }

// TableName returns the table name for Expenditure
func (Expenditure) TableName() string {
	return "expenditures"
}
