package validation

import (
	"reflect"
	"strings"
	"sync"
	"time"

	"finance-tracker/internal/models"
	"finance-tracker/internal/period"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// Validator wraps the go-playground validator with finance rules and json field names
type Validator struct {
	validate *validator.Validate
}

// GetValidate returns the underlying validator.Validate instance for use with Echo
func (v *Validator) GetValidate() *validator.Validate {
	return v.validate
}

// Struct validates a request struct
func (v *Validator) Struct(s interface{}) error {
	return v.validate.Struct(s)
}

var (
	instance     *Validator
	instanceOnce sync.Once
)

// GetValidator returns the shared validator instance
func GetValidator() *Validator {
	instanceOnce.Do(func() {
		instance = NewValidator()
	})
	return instance
}

// NewValidator creates a new validator instance with custom rules and configuration
func NewValidator() *Validator {
	v := validator.New()

	_ = v.RegisterValidation("positive_amount", validatePositiveAmount)
	_ = v.RegisterValidation("non_negative_amount", validateNonNegativeAmount)
	_ = v.RegisterValidation("money_scale", validateMoneyScale)
	_ = v.RegisterValidation("category", validateCategory)
	_ = v.RegisterValidation("month", validateMonth)
	_ = v.RegisterValidation("calendar_date", validateCalendarDate)

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &Validator{validate: v}
}

func parseAmount(fl validator.FieldLevel) (decimal.Decimal, bool) {
	if fl.Field().Kind() != reflect.String {
		return decimal.Zero, false
	}
	amount, err := decimal.NewFromString(strings.TrimSpace(fl.Field().String()))
	if err != nil {
		return decimal.Zero, false
	}
	return amount, true
}

// validatePositiveAmount accepts a decimal string greater than 0
func validatePositiveAmount(fl validator.FieldLevel) bool {
	amount, ok := parseAmount(fl)
	return ok && amount.IsPositive()
}

// validateNonNegativeAmount accepts a decimal string of 0 or more
func validateNonNegativeAmount(fl validator.FieldLevel) bool {
	amount, ok := parseAmount(fl)
	return ok && !amount.IsNegative()
}

// validateMoneyScale rejects amounts with more than 2 decimal places or more than
// 13 integer digits, the limits of a decimal(15,2) column
func validateMoneyScale(fl validator.FieldLevel) bool {
	amount, ok := parseAmount(fl)
	if !ok {
		return false
	}
	if !amount.Equal(amount.Truncate(2)) {
		return false
	}
	return amount.Abs().LessThan(decimal.New(1, 13))
}

func validateCategory(fl validator.FieldLevel) bool {
	_, err := models.ParseCategory(fl.Field().String())
	return err == nil
}

func validateMonth(fl validator.FieldLevel) bool {
	switch fl.Field().Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		m := fl.Field().Int()
		return m >= 1 && m <= 12
	default:
		return false
	}
}

// validateCalendarDate accepts YYYY-MM-DD
func validateCalendarDate(fl validator.FieldLevel) bool {
	_, err := time.Parse(period.DateLayout, fl.Field().String())
	return err == nil
}
