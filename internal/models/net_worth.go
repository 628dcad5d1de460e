package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// NetWorth is the per-month snapshot of asset and liability totals.
// There is at most one row per (year, month).
type NetWorth struct {
	ID          uint            `gorm:"primaryKey" json:"id"`
	Year        int             `gorm:"column:year_value;not null;uniqueIndex:idx_net_worth_period" json:"year"`
	Month       int             `gorm:"column:month_value;not null;uniqueIndex:idx_net_worth_period" json:"month"`
	Assets      decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0" json:"assets"`
	Liabilities decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0" json:"liabilities"`
	Version     int             `gorm:"not null;default:1" json:"version"`
	CreatedAt   time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt   time.Time       `gorm:"not null" json:"updated_at"`
}

// NewNetWorth builds a validated snapshot
func NewNetWorth(year, month int, assets, liabilities decimal.Decimal) (NetWorth, error) {
	nw := NetWorth{
		Year:        year,
		Month:       month,
		Assets:      assets,
		Liabilities: liabilities,
		Version:     1,
	}
	return nw, nw.Validate()
}

// BeforeCreate hook for NetWorth
func (n *NetWorth) BeforeCreate(tx *gorm.DB) error {
	if n.Version == 0 {
		n.Version = 1
	}
	return n.Validate()
}

// Validate validates the snapshot fields
func (n *NetWorth) Validate() error {
	if err := validateYearMonth(n.Year, n.Month); err != nil {
		return err
	}
	if n.Assets.IsNegative() || n.Liabilities.IsNegative() {
		return ErrNegativeAmount
	}
	return nil
}

// NetValue returns assets minus liabilities
func (n NetWorth) NetValue() decimal.Decimal {
	return n.Assets.Sub(n.Liabilities)
}

// TableName returns the table name for NetWorth
func (NetWorth) TableName() string {
	return "net_worth"
}
