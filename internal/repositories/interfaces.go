package repositories

import (
	"context"
	"time"

	"finance-tracker/internal/models"
)

// IncomeRepositoryInterface defines the contract for income repository operations
type IncomeRepositoryInterface interface {
	Create(ctx context.Context, income *models.Income) error
	GetByID(ctx context.Context, id uint) (*models.Income, error)
	FindByDateRange(ctx context.Context, start, end time.Time) ([]models.Income, error)
	UpdateWithOptimisticLock(ctx context.Context, income *models.Income, expectedVersion int) error
	Delete(ctx context.Context, id uint) error
}

// ExpenditureRepositoryInterface defines the contract for expenditure repository operations
type ExpenditureRepositoryInterface interface {
	Create(ctx context.Context, expenditure *models.Expenditure) error
	GetByID(ctx context.Context, id uint) (*models.Expenditure, error)
	FindByDateRange(ctx context.Context, start, end time.Time) ([]models.Expenditure, error)
	UpdateWithOptimisticLock(ctx context.Context, expenditure *models.Expenditure, expectedVersion int) error
	Delete(ctx context.Context, id uint) error
}

// BudgetRepositoryInterface defines the contract for budget repository operations
type BudgetRepositoryInterface interface {
	Create(ctx context.Context, budget *models.Budget) error
	GetByID(ctx context.Context, id uint) (*models.Budget, error)
	FindByDateRange(ctx context.Context, start, end time.Time) ([]models.Budget, error)
	FindFirstByCategoryAndDateRange(ctx context.Context, category models.Category, start, end time.Time) (*models.Budget, error)
	UpdateWithOptimisticLock(ctx context.Context, budget *models.Budget, expectedVersion int) error
	Delete(ctx context.Context, id uint) error
}

// AssetRepositoryInterface defines the contract for asset line item operations
type AssetRepositoryInterface interface {
	Save(ctx context.Context, asset *models.Asset) error
	GetByID(ctx context.Context, id uint) (*models.Asset, error)
	FindByYearAndMonth(ctx context.Context, year, month int) ([]models.Asset, error)
	Delete(ctx context.Context, id uint) error
}

// LiabilityRepositoryInterface defines the contract for liability line item operations
type LiabilityRepositoryInterface interface {
	Save(ctx context.Context, liability *models.Liability) error
	GetByID(ctx context.Context, id uint) (*models.Liability, error)
	FindByYearAndMonth(ctx context.Context, year, month int) ([]models.Liability, error)
	Delete(ctx context.Context, id uint) error
}

// NetWorthRepositoryInterface defines the contract for net worth snapshot operations
type NetWorthRepositoryInterface interface {
	FindByYearAndMonth(ctx context.Context, year, month int) (*models.NetWorth, error)
	Upsert(ctx context.Context, netWorth *models.NetWorth) error
	UpsertFromLineItems(ctx context.Context, year, month int) (*models.NetWorth, error)
	FindAllOrdered(ctx context.Context) ([]models.NetWorth, error)
	FindInBox(ctx context.Context, startYear, startMonth, endYear, endMonth int) ([]models.NetWorth, error)
}
