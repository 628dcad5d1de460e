package dto

import (
	"time"

	"finance-tracker/internal/models"
)

// Balance sheet Request DTOs

// LineItemRequest represents the request payload for saving an asset or liability.
// An omitted or zero id creates a new line item.
type LineItemRequest struct {
	ID      uint   `json:"id"`
	Year    int    `json:"year" validate:"required,min=1"`
	Month   int    `json:"month" validate:"required,month"`
	Amount  string `json:"amount" validate:"required,positive_amount,money_scale"`
	Comment string `json:"comment" validate:"max=255"`
}

// NetWorthRequest represents the request payload for saving a month's net worth totals
type NetWorthRequest struct {
	Year        int    `json:"year" validate:"required,min=1"`
	Month       int    `json:"month" validate:"required,month"`
	Assets      string `json:"assets" validate:"required,non_negative_amount,money_scale"`
	Liabilities string `json:"liabilities" validate:"required,non_negative_amount,money_scale"`
}

// Balance sheet Response DTOs

// LineItemResponse represents an asset or liability in API responses
type LineItemResponse struct {
	ID        uint      `json:"id"`
	Year      int       `json:"year"`
	Month     int       `json:"month"`
	Amount    string    `json:"amount"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// NetWorthResponse represents a monthly net worth snapshot
type NetWorthResponse struct {
	ID          uint      `json:"id"`
	Year        int       `json:"year"`
	Month       int       `json:"month"`
	Assets      string    `json:"assets"`
	Liabilities string    `json:"liabilities"`
	NetWorth    string    `json:"netWorth"`
	Version     int       `json:"version"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// NetWorthPointResponse is one entry of the stats series
type NetWorthPointResponse struct {
	Year     int    `json:"year"`
	Month    int    `json:"month"`
	NetWorth string `json:"netWorth"`
}

// NetWorthStatsResponse summarises a net worth history
type NetWorthStatsResponse struct {
	Count                int                     `json:"count"`
	Current              string                  `json:"current"`
	Change1Month         string                  `json:"change1Month"`
	Change3Month         string                  `json:"change3Month"`
	AverageMonthlyChange string                  `json:"averageMonthlyChange"`
	Highest              string                  `json:"highest"`
	Lowest               string                  `json:"lowest"`
	Series               []NetWorthPointResponse `json:"series"`
}

// BudgetTrackingResponse compares one budget with the month's spend in its category
type BudgetTrackingResponse struct {
	BudgetID       uint    `json:"budgetId"`
	Category       string  `json:"category"`
	Budget         string  `json:"budget"`
	Spent          string  `json:"spent"`
	PercentageUsed float64 `json:"percentageUsed"`
}

func newLineItemResponse(item models.LineItem) LineItemResponse {
	return LineItemResponse{
		ID:        item.ID,
		Year:      item.Year,
		Month:     item.Month,
		Amount:    FormatAmount(item.Amount),
		Comment:   item.Comment,
		CreatedAt: item.CreatedAt,
		UpdatedAt: item.UpdatedAt,
	}
}

func NewAssetResponse(asset *models.Asset) LineItemResponse {
	return newLineItemResponse(asset.LineItem)
}

func NewAssetListResponse(assets []models.Asset) []LineItemResponse {
	resp := make([]LineItemResponse, 0, len(assets))
	for _, a := range assets {
		resp = append(resp, newLineItemResponse(a.LineItem))
	}
	return resp
}

func NewLiabilityResponse(liability *models.Liability) LineItemResponse {
	return newLineItemResponse(liability.LineItem)
}

func NewLiabilityListResponse(liabilities []models.Liability) []LineItemResponse {
	resp := make([]LineItemResponse, 0, len(liabilities))
	for _, l := range liabilities {
		resp = append(resp, newLineItemResponse(l.LineItem))
	}
	return resp
}

func NewNetWorthResponse(netWorth *models.NetWorth) NetWorthResponse {
	return NetWorthResponse{
		ID:          netWorth.ID,
		Year:        netWorth.Year,
		Month:       netWorth.Month,
		Assets:      FormatAmount(netWorth.Assets),
		Liabilities: FormatAmount(netWorth.Liabilities),
		NetWorth:    FormatAmount(netWorth.NetValue()),
		Version:     netWorth.Version,
		UpdatedAt:   netWorth.UpdatedAt,
	}
}

func NewNetWorthListResponse(history []models.NetWorth) []NetWorthResponse {
	resp := make([]NetWorthResponse, 0, len(history))
	for i := range history {
		resp = append(resp, NewNetWorthResponse(&history[i]))
	}
	return resp
}

func NewNetWorthStatsResponse(stats *models.NetWorthStats) NetWorthStatsResponse {
	series := make([]NetWorthPointResponse, 0, len(stats.Series))
	for _, p := range stats.Series {
		series = append(series, NetWorthPointResponse{Year: p.Year, Month: p.Month, NetWorth: FormatAmount(p.NetWorth)})
	}
	return NetWorthStatsResponse{
		Count:                stats.Count,
		Current:              FormatAmount(stats.Current),
		Change1Month:         FormatAmount(stats.OneMonthChange),
		Change3Month:         FormatAmount(stats.ThreeMonthChange),
		AverageMonthlyChange: FormatAmount(stats.AverageMonthlyChange),
		Highest:              FormatAmount(stats.Highest),
		Lowest:               FormatAmount(stats.Lowest),
		Series:               series,
	}
}

func NewBudgetTrackingResponse(rows []models.BudgetTrackingRow) []BudgetTrackingResponse {
	resp := make([]BudgetTrackingResponse, 0, len(rows))
	for _, row := range rows {
		resp = append(resp, BudgetTrackingResponse{
			BudgetID:       row.BudgetID,
			Category:       row.Category.String(),
			Budget:         FormatAmount(row.Budget),
			Spent:          FormatAmount(row.Spent),
			PercentageUsed: row.PercentageUsed.Round(2).InexactFloat64(),
		})
	}
	return resp
}
