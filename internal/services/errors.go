package services

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"finance-tracker/internal/models"
	"finance-tracker/internal/period"
	"finance-tracker/internal/repositories"
)

var (
	ErrNotFound               = errors.New("not found")
	ErrConcurrentModification = errors.New("concurrent modification")
)

// Entity names used in error messages and log events
const (
	EntityIncome      = "Income"
	EntityExpenditure = "Expenditure"
	EntityBudget      = "Budget"
	EntityAsset       = "Asset"
	EntityLiability   = "Liability"
	EntityNetWorth    = "NetWorth"
)

// NotFoundError reports a missing record; it matches ErrNotFound with errors.Is
type NotFoundError struct {
	Entity string
	ID     uint
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

func (e *NotFoundError) Unwrap() error {
	return ErrNotFound
}

// ConflictError reports a stale version on update; it matches ErrConcurrentModification
type ConflictError struct {
	Entity string
	ID     uint
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s was modified by another user. Please refresh and try again.", e.Entity)
}

func (e *ConflictError) Unwrap() error {
	return ErrConcurrentModification
}

// ValidationError carries field level messages for input the domain rejected
type ValidationError struct {
	Fields map[string]string
	Err    error
}

func NewValidationError(field, message string, cause error) *ValidationError {
	return &ValidationError{
		Fields: map[string]string{field: message},
		Err:    cause,
	}
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for field, message := range e.Fields {
		parts = append(parts, field+": "+message)
	}
	sort.Strings(parts)
	return "validation failed: " + strings.Join(parts, ", ")
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

var modelErrorFields = map[error]string{
	models.ErrInvalidAmount:       "amount",
	models.ErrNegativeAmount:      "amount",
	models.ErrDescriptionRequired: "description",
	models.ErrDateRequired:        "date",
	models.ErrInvalidYear:         "year",
	models.ErrInvalidMonth:        "month",
	models.ErrInvalidCategory:     "category",
	period.ErrInvalidPeriod:       "period",
}

// asValidationError converts model and period validation failures into a ValidationError.
// Any other error is returned unchanged.
func asValidationError(err error) error {
	if err == nil {
		return nil
	}
	for sentinel, field := range modelErrorFields {
		if errors.Is(err, sentinel) {
			return NewValidationError(field, err.Error(), err)
		}
	}
	return err
}

// translateRepositoryError maps repository sentinels onto the service taxonomy
func translateRepositoryError(entity string, id uint, err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, repositories.ErrRecordNotFound):
		return &NotFoundError{Entity: entity, ID: id}
	case errors.Is(err, models.ErrOptimisticLockConflict):
		return &ConflictError{Entity: entity, ID: id}
	default:
		return asValidationError(err)
	}
}

func resolvePeriod(year, month int) (period.Period, error) {
	p, err := period.New(year, month)
	if err != nil {
		return period.Period{}, asValidationError(err)
	}
	return p, nil
}
