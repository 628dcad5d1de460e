package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// LineItem is one amount booked against a (year, month). Several line items may
// exist for the same month; they are summed into monthly totals.
type LineItem struct {
	ID        uint            `gorm:"primaryKey" json:"id"`
	Year      int             `gorm:"column:year_value;not null;index:,composite:period" json:"year"`
	Month     int             `gorm:"column:month_value;not null;index:,composite:period" json:"month"`
	Amount    decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"amount"`
	Comment   string          `gorm:"type:varchar(255)" json:"comment"`
	CreatedAt time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time       `gorm:"not null" json:"updated_at"`
}

func newLineItem(year, month int, amount decimal.Decimal, comment string) (LineItem, error) {
	item := LineItem{
		Year:    year,
		Month:   month,
		Amount:  amount,
		Comment: comment,
	}
	return item, item.Validate()
}

// Validate validates the line item fields
func (l *LineItem) Validate() error {
	if err := validateYearMonth(l.Year, l.Month); err != nil {
		return err
	}
	return validatePositive(l.Amount)
}

// Asset is a line item on the assets side of a month's balance sheet
type Asset struct {
	LineItem
}

// NewAsset builds a validated Asset
func NewAsset(year, month int, amount decimal.Decimal, comment string) (Asset, error) {
	item, err := newLineItem(year, month, amount, comment)
	return Asset{LineItem: item}, err
}

// BeforeCreate hook for Asset
func (a *Asset) BeforeCreate(tx *gorm.DB) error {
	return a.Validate()
}

// TableName returns the table name for Asset
func (Asset) TableName() string {
	return "assets"
}

// Liability is a line item on the liabilities side of a month's balance sheet
type Liability struct {
	LineItem
}

// NewLiability builds a validated Liability
func NewLiability(year, month int, amount decimal.Decimal, comment string) (Liability, error) {
	item, err := newLineItem(year, month, amount, comment)
	return Liability{LineItem: item}, err
}

// BeforeCreate hook for Liability
func (l *Liability) BeforeCreate(tx *gorm.DB) error {
	return l.Validate()
}

// TableName returns the table name for Liability
func (Liability) TableName() string {
	return "liabilities"
}

// SumLineItems totals the amounts of the given line items
func SumLineItems(items []LineItem) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.Amount)
	}
	return total
}
