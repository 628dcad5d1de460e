package services

import (
	"context"
	"time"

	"finance-tracker/internal/models"

	"github.com/shopspring/decimal"
)

// HistoryRange bounds a net worth history query. Years and months are filtered independently.
type HistoryRange struct {
	StartYear  int
	StartMonth int
	EndYear    int
	EndMonth   int
}

// IncomeServiceInterface defines income business operations
type IncomeServiceInterface interface {
	Create(ctx context.Context, amount decimal.Decimal, description string, date time.Time) (*models.Income, error)
	ListByPeriod(ctx context.Context, year, month int) ([]models.Income, error)
	TotalByPeriod(ctx context.Context, year, month int) (decimal.Decimal, error)
	Update(ctx context.Context, id uint, amount decimal.Decimal, description string, date time.Time, expectedVersion *int) (*models.Income, error)
	Delete(ctx context.Context, id uint) error
}

// ExpenditureServiceInterface defines expenditure business operations
type ExpenditureServiceInterface interface {
	Create(ctx context.Context, amount decimal.Decimal, description string, category models.Category, date time.Time) (*models.Expenditure, error)
	ListByPeriod(ctx context.Context, year, month int) ([]models.Expenditure, error)
	TotalByPeriod(ctx context.Context, year, month int) (decimal.Decimal, error)
	Update(ctx context.Context, id uint, amount decimal.Decimal, description string, category models.Category, date time.Time, expectedVersion *int) (*models.Expenditure, error)
	Delete(ctx context.Context, id uint) error
}

// BudgetServiceInterface defines budget business operations
type BudgetServiceInterface interface {
	Create(ctx context.Context, amount decimal.Decimal, category models.Category, date time.Time) (*models.Budget, error)
	ListByPeriod(ctx context.Context, year, month int) ([]models.Budget, error)
	GetByCategory(ctx context.Context, category models.Category, year, month int) (*models.Budget, error)
	Update(ctx context.Context, id uint, amount decimal.Decimal, category models.Category, date time.Time, expectedVersion *int) (*models.Budget, error)
	Delete(ctx context.Context, id uint) error
}

// BudgetTrackingServiceInterface compares budgets with actual spend
type BudgetTrackingServiceInterface interface {
	GetBudgetTracking(ctx context.Context, month, year int) ([]models.BudgetTrackingRow, error)
}

// AssetServiceInterface defines asset line item operations. An id of 0 on Save creates a new asset.
type AssetServiceInterface interface {
	Save(ctx context.Context, id uint, year, month int, amount decimal.Decimal, comment string) (*models.Asset, error)
	ListByPeriod(ctx context.Context, year, month int) ([]models.Asset, error)
	TotalByPeriod(ctx context.Context, year, month int) (decimal.Decimal, error)
	Delete(ctx context.Context, id uint) error
}

// LiabilityServiceInterface defines liability line item operations. An id of 0 on Save creates a new liability.
type LiabilityServiceInterface interface {
	Save(ctx context.Context, id uint, year, month int, amount decimal.Decimal, comment string) (*models.Liability, error)
	ListByPeriod(ctx context.Context, year, month int) ([]models.Liability, error)
	TotalByPeriod(ctx context.Context, year, month int) (decimal.Decimal, error)
	Delete(ctx context.Context, id uint) error
}

// NetWorthServiceInterface manages monthly net worth snapshots and their history
type NetWorthServiceInterface interface {
	// GetNetWorth returns nil without error when the month has no snapshot
	GetNetWorth(ctx context.Context, year, month int) (*models.NetWorth, error)
	SaveOrUpdate(ctx context.Context, year, month int, assets, liabilities decimal.Decimal) (*models.NetWorth, error)
	RecalculateFromLineItems(ctx context.Context, year, month int) (*models.NetWorth, error)
	GetHistory(ctx context.Context) ([]models.NetWorth, error)
	GetHistoryInRange(ctx context.Context, rng HistoryRange) ([]models.NetWorth, error)
	GetStats(ctx context.Context, rng *HistoryRange) (*models.NetWorthStats, error)
}

type MetricsRecorderInterface interface {
	IncrementCounter(name string, tags map[string]string)
	RecordProcessingTime(name string, duration time.Duration)
	RecordGauge(name string, value float64, tags map[string]string)
}

type FinanceLoggerInterface interface {
	LogRecordCreated(ctx context.Context, entity string, id uint)
	LogRecordUpdated(ctx context.Context, entity string, id uint, version int)
	LogRecordDeleted(ctx context.Context, entity string, id uint)
	LogConcurrentModification(ctx context.Context, entity string, id uint, expectedVersion int)
	LogBudgetTrackingComputed(ctx context.Context, period string, rows int, duration time.Duration)
	LogNetWorthSaved(ctx context.Context, period string, assets, liabilities string, source string)
	LogValidationFailure(ctx context.Context, operation string, errorMsg string)
}
