package models

import (
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidAmount          = errors.New("amount must be greater than 0")
	ErrNegativeAmount         = errors.New("amount cannot be negative")
	ErrDescriptionRequired    = errors.New("description is required")
	ErrDateRequired           = errors.New("date is required")
	ErrInvalidYear            = errors.New("year must be positive")
	ErrInvalidMonth           = errors.New("month must be between 1 and 12")
	ErrOptimisticLockConflict = errors.New("optimistic lock conflict: version mismatch")
)

// Versioned is implemented by records guarded by optimistic locking
type Versioned interface {
	GetID() uint
	GetVersion() int
}

func validatePositive(amount decimal.Decimal) error {
	if amount.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidAmount
	}
	return nil
}

func validateYearMonth(year, month int) error {
	if year <= 0 {
		return ErrInvalidYear
	}
	if month < 1 || month > 12 {
		return ErrInvalidMonth
	}
	return nil
}

func validateDescription(description string) error {
	if strings.TrimSpace(description) == "" {
		return ErrDescriptionRequired
	}
	return nil
}

func validateDate(date time.Time) error {
	if date.IsZero() {
		return ErrDateRequired
	}
	return nil
}

func calendarDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// SumAmounts adds up amounts exactly
func SumAmounts(amounts ...decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, a := range amounts {
		total = total.Add(a)
	}
	return total
}
