package services

import (
	"context"
	"errors"
	"fmt"

	"finance-tracker/internal/models"
	"finance-tracker/internal/repositories"

	"github.com/shopspring/decimal"
)

const (
	netWorthSourceManual    = "manual"
	netWorthSourceLineItems  = "line_items"
)

type netWorthService struct {
	repo    repositories.NetWorthRepositoryInterface
	logger  FinanceLoggerInterface
	metrics MetricsRecorderInterface
}

// NewNetWorthService creates a new NetWorthServiceInterface instance
func NewNetWorthService(repo repositories.NetWorthRepositoryInterface, logger FinanceLoggerInterface, metrics MetricsRecorderInterface) NetWorthServiceInterface {
	return &netWorthService{
		repo:    repo,
		logger:  logger,
		metrics: metrics,
	}
}

func (s *netWorthService) GetNetWorth(ctx context.Context, year, month int) (*models.NetWorth, error) {
	if _, err := resolvePeriod(year, month); err != nil {
		return nil, err
	}

	netWorth, err := s.repo.FindByYearAndMonth(ctx, year, month)
	if errors.Is(err, repositories.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get net worth: %w", err)
	}
	return netWorth, nil
}

// SaveOrUpdate stores the month's totals, replacing any snapshot already recorded for it
func (s *netWorthService) SaveOrUpdate(ctx context.Context, year, month int, assets, liabilities decimal.Decimal) (*models.NetWorth, error) {
	netWorth, err := models.NewNetWorth(year, month, assets, liabilities)
	if err != nil {
		s.logger.LogValidationFailure(ctx, "save_net_worth", err.Error())
		return nil, asValidationError(err)
	}

	if err := s.repo.Upsert(ctx, &netWorth); err != nil {
		return nil, fmt.Errorf("failed to save net worth: %w", asValidationError(err))
	}

	s.saved(ctx, &netWorth, netWorthSourceManual)
	return &netWorth, nil
}

// RecalculateFromLineItems rebuilds the month's snapshot from its asset and liability line items
func (s *netWorthService) RecalculateFromLineItems(ctx context.Context, year, month int) (*models.NetWorth, error) {
	if _, err := resolvePeriod(year, month); err != nil {
		s.logger.LogValidationFailure(ctx, "recalculate_net_worth", err.Error())
		return nil, err
	}

	netWorth, err := s.repo.UpsertFromLineItems(ctx, year, month)
	if err != nil {
		return nil, fmt.Errorf("failed to recalculate net worth: %w", asValidationError(err))
	}

	s.saved(ctx, netWorth, netWorthSourceLineItems)
	return netWorth, nil
}

func (s *netWorthService) saved(ctx context.Context, netWorth *models.NetWorth, source string) {
	s.metrics.IncrementCounter(MetricNetWorthUpserts, map[string]string{"source": source})
	s.metrics.RecordGauge(MetricNetWorthValue, netWorth.NetValue().InexactFloat64(), nil)
	s.logger.LogNetWorthSaved(ctx, fmt.Sprintf("%04d-%02d", netWorth.Year, netWorth.Month),
		netWorth.Assets.StringFixed(2), netWorth.Liabilities.StringFixed(2), source)
}

func (s *netWorthService) GetHistory(ctx context.Context) ([]models.NetWorth, error) {
	history, err := s.repo.FindAllOrdered(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get net worth history: %w", err)
	}
	return history, nil
}

// GetHistoryInRange filters years and months independently, so a range spanning a
// year boundary selects the same months of every year in the range.
func (s *netWorthService) GetHistoryInRange(ctx context.Context, rng HistoryRange) ([]models.NetWorth, error) {
	if err := rng.validate(); err != nil {
		return nil, err
	}

	history, err := s.repo.FindInBox(ctx, rng.StartYear, rng.StartMonth, rng.EndYear, rng.EndMonth)
	if err != nil {
		return nil, fmt.Errorf("failed to get net worth history in range: %w", err)
	}
	return history, nil
}

// GetStats summarises the full history, or the boxed history when rng is set
func (s *netWorthService) GetStats(ctx context.Context, rng *HistoryRange) (*models.NetWorthStats, error) {
	var (
		history []models.NetWorth
		err     error
	)
	if rng == nil {
		history, err = s.GetHistory(ctx)
	} else {
		history, err = s.GetHistoryInRange(ctx, *rng)
	}
	if err != nil {
		return nil, err
	}

	stats := ComputeStats(history)
	return &stats, nil
}

func (r HistoryRange) validate() error {
	if _, err := resolvePeriod(r.StartYear, r.StartMonth); err != nil {
		return err
	}
	_, err := resolvePeriod(r.EndYear, r.EndMonth)
	return err
}

// ComputeStats derives change and extreme figures from a chronologically ordered history
func ComputeStats(history []models.NetWorth) models.NetWorthStats {
	stats := models.NetWorthStats{
		Count:                len(history),
		Current:              decimal.Zero,
		OneMonthChange:       decimal.Zero,
		ThreeMonthChange:     decimal.Zero,
		AverageMonthlyChange: decimal.Zero,
		Highest:              decimal.Zero,
		Lowest:               decimal.Zero,
		Series:               make([]models.NetWorthPoint, 0, len(history)),
	}
	if len(history) == 0 {
		return stats
	}

	values := make([]decimal.Decimal, len(history))
	for i, nw := range history {
		values[i] = nw.NetValue()
		stats.Series = append(stats.Series, models.NetWorthPoint{
			Year:     nw.Year,
			Month:    nw.Month,
			NetWorth: values[i],
		})
	}

	n := len(values)
	last := values[n-1]
	stats.Current = last
	stats.Highest = decimal.Max(values[0], values[1:]...)
	stats.Lowest = decimal.Min(values[0], values[1:]...)

	if n >= 2 {
		stats.OneMonthChange = last.Sub(values[n-2])
		stats.AverageMonthlyChange = last.Sub(values[0]).DivRound(decimal.NewFromInt(int64(n-1)), 2)
	}
	switch {
	case n >= 4:
		stats.ThreeMonthChange = last.Sub(values[n-4])
	case n >= 2:
		stats.ThreeMonthChange = last.Sub(values[0])
	}

	return stats
}
