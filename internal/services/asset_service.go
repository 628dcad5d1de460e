package services

import (
	"context"
	"fmt"

	"finance-tracker/internal/models"
	"finance-tracker/internal/repositories"

	"github.com/shopspring/decimal"
)

type assetService struct {
	repo   repositories.AssetRepositoryInterface
	events recordEvents
}

// NewAssetService creates a new AssetServiceInterface instance
func NewAssetService(repo repositories.AssetRepositoryInterface, logger FinanceLoggerInterface, metrics MetricsRecorderInterface) AssetServiceInterface {
	return &assetService{
		repo:   repo,
		events: newRecordEvents(EntityAsset, logger, metrics),
	}
}

// Save creates an asset when id is 0, otherwise replaces the fields of the existing one
func (s *assetService) Save(ctx context.Context, id uint, year, month int, amount decimal.Decimal, comment string) (*models.Asset, error) {
	asset, err := models.NewAsset(year, month, amount, comment)
	if err != nil {
		return nil, s.events.invalid(ctx, "save_asset", err)
	}

	if id != 0 {
		existing, err := s.repo.GetByID(ctx, id)
		if err != nil {
			return nil, translateRepositoryError(EntityAsset, id, err)
		}
		asset.ID = existing.ID
		asset.CreatedAt = existing.CreatedAt
	}

	if err := s.repo.Save(ctx, &asset); err != nil {
		return nil, fmt.Errorf("failed to save asset: %w", translateRepositoryError(EntityAsset, id, err))
	}

	if id == 0 {
		s.events.created(ctx, asset.ID)
	} else {
		s.events.updated(ctx, asset.ID, 0)
	}
	return &asset, nil
}

func (s *assetService) ListByPeriod(ctx context.Context, year, month int) ([]models.Asset, error) {
	if _, err := resolvePeriod(year, month); err != nil {
		return nil, err
	}

	assets, err := s.repo.FindByYearAndMonth(ctx, year, month)
	if err != nil {
		return nil, fmt.Errorf("failed to list assets: %w", err)
	}
	return assets, nil
}

func (s *assetService) TotalByPeriod(ctx context.Context, year, month int) (decimal.Decimal, error) {
	assets, err := s.ListByPeriod(ctx, year, month)
	if err != nil {
		return decimal.Zero, err
	}

	items := make([]models.LineItem, 0, len(assets))
	for _, a := range assets {
		items = append(items, a.LineItem)
	}
	return models.SumLineItems(items), nil
}

func (s *assetService) Delete(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return translateRepositoryError(EntityAsset, id, err)
	}
	s.events.deleted(ctx, id)
	return nil
}
