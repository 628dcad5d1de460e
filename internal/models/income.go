package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Income represents money received on a calendar date
type Income struct {
	ID          uint            `gorm:"primaryKey" json:"id"`
	Amount      decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"amount"`
	Description string          `gorm:"type:varchar(255);not null" json:"description"`
	Date        time.Time       `gorm:"type:date;not null;index" json:"date"`
	Version     int             `gorm:"not null;default:1" json:"version"`
	CreatedAt   time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt   time.Time       `gorm:"not null" json:"updated_at"`
}

// NewIncome builds a validated Income
func NewIncome(amount decimal.Decimal, description string, date time.Time) (Income, error) {
	income := Income{
		Amount:      amount,
		Description: description,
		Date:        calendarDate(date),
		Version:     1,
	}
	return income, income.Validate()
}

// WithChanges returns a copy of the income carrying the replacement fields
func (i Income) WithChanges(amount decimal.Decimal, description string, date time.Time) (Income, error) {
	updated := i
	updated.Amount = amount
	updated.Description = description
	updated.Date = calendarDate(date)
	return updated, updated.Validate()
}

// BeforeCreate hook for Income
func (i *Income) BeforeCreate(tx *gorm.DB) error {
	if i.Version == 0 {
		i.Version = 1
	}
	i.Date = calendarDate(i.Date)
	return i.Validate()
}

// Validate validates the income fields
func (i *Income) Validate() error {
	if err := validatePositive(i.Amount); err != nil {
		return err
	}
	if err := validateDescription(i.Description); err != nil {
		return err
	}
	return validateDate(i.Date)
}

func (i Income) GetID() uint     { return i.ID }
func (i Income) GetVersion() int { return i.Version }

// TableName returns the table name for Income
func (Income) TableName() string {
	return "incomes"
}
