package models

import "github.com/shopspring/decimal"

// BudgetTrackingRow compares one budget against the category's spend for the month
type BudgetTrackingRow struct {
	BudgetID       uint            `json:"budget_id"`
	Category       Category        `json:"category"`
	Budget         decimal.Decimal `json:"budget"`
	Spent          decimal.Decimal `json:"spent"`
	PercentageUsed decimal.Decimal `json:"percentage_used"`
}

// NetWorthPoint is one entry of a net worth series
type NetWorthPoint struct {
	Year     int             `json:"year"`
	Month    int             `json:"month"`
	NetWorth decimal.Decimal `json:"net_worth"`
}

// NetWorthStats summarises a chronologically ordered net worth history
type NetWorthStats struct {
	Count                int             `json:"count"`
	Current              decimal.Decimal `json:"current"`
	OneMonthChange       decimal.Decimal `json:"one_month_change"`
	ThreeMonthChange     decimal.Decimal `json:"three_month_change"`
	AverageMonthlyChange decimal.Decimal `json:"average_monthly_change"`
	Highest              decimal.Decimal `json:"highest"`
	Lowest               decimal.Decimal `json:"lowest"`
	Series               []NetWorthPoint `json:"series"`
}
