package models

import (
	"errors"
	"strings"
)

var ErrInvalidCategory = errors.New("invalid category")

// Category is the closed set of spending categories shared by expenditures and budgets
type Category string

const (
	CategoryGroceries      Category = "GROCERIES"
	CategoryUtilities      Category = "UTILITIES"
	CategoryMortgage       Category = "MORTGAGE"
	CategoryEntertainment  Category = "ENTERTAINMENT"
	CategoryTransportation Category = "TRANSPORTATION"
	CategoryInvestments    Category = "INVESTMENTS"
	CategorySavings        Category = "SAVINGS"
	CategoryOther          Category = "OTHER"
)

// AllCategories returns all valid categories in declaration order
func AllCategories() []Category {
	return []Category{
		CategoryGroceries,
		CategoryUtilities,
		CategoryMortgage,
		CategoryEntertainment,
		CategoryTransportation,
		CategoryInvestments,
		CategorySavings,
		CategoryOther,
	}
}

// IsValidCategory checks if a category string is valid
func IsValidCategory(category string) bool {
	_, err := ParseCategory(category)
	return err == nil
}

// ParseCategory converts a case-insensitive name into a Category
func ParseCategory(value string) (Category, error) {
	normalized := Category(strings.ToUpper(strings.TrimSpace(value)))
	for _, c := range AllCategories() {
		if c == normalized {
			return c, nil
		}
	}
	return "", ErrInvalidCategory
}

func (c Category) String() string {
	return string(c)
}
