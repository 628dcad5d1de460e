package services

import (
	"context"
	"errors"
	"testing"

	"finance-tracker/internal/models"
	"finance-tracker/internal/repositories/repository_mocks"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

// BudgetTrackingServiceSuite defines the test suite for BudgetTrackingServiceInterface
type BudgetTrackingServiceSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	budgets      *repository_mocks.MockBudgetRepositoryInterface
	expenditures *repository_mocks.MockExpenditureRepositoryInterface
	metrics      *recordingMetrics
	service      BudgetTrackingServiceInterface
	ctx          context.Context
}

func (s *BudgetTrackingServiceSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.budgets = repository_mocks.NewMockBudgetRepositoryInterface(s.ctrl)
	s.expenditures = repository_mocks.NewMockExpenditureRepositoryInterface(s.ctrl)
	s.metrics = newRecordingMetrics()
	s.service = NewBudgetTrackingService(s.budgets, s.expenditures, newTestFinanceLogger(), s.metrics)
	s.ctx = context.Background()
}

func (s *BudgetTrackingServiceSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestBudgetTrackingServiceSuite(t *testing.T) {
	suite.Run(t, new(BudgetTrackingServiceSuite))
}

func budget(id uint, category models.Category, amount string) models.Budget {
	return models.Budget{ID: id, Category: category, Amount: decimal.RequireFromString(amount), Date: utcDate(2024, 3, 1)}
}

func spend(category models.Category, amount string) models.Expenditure {
	return models.Expenditure{Category: category, Amount: decimal.RequireFromString(amount), Date: utcDate(2024, 3, 10)}
}

func (s *BudgetTrackingServiceSuite) TestGetBudgetTracking_HalfSpent() {
	start, end := utcDate(2024, 3, 1), utcDate(2024, 3, 31)
	s.budgets.EXPECT().FindByDateRange(gomock.Any(), start, end).
		Return([]models.Budget{budget(1, models.CategoryGroceries, "300")}, nil)
	s.expenditures.EXPECT().FindByDateRange(gomock.Any(), start, end).Return([]models.Expenditure{
		spend(models.CategoryGroceries, "100"),
		spend(models.CategoryGroceries, "50"),
		spend(models.CategoryUtilities, "80"),
	}, nil)

	rows, err := s.service.GetBudgetTracking(s.ctx, 3, 2024)

	s.Require().NoError(err)
	s.Require().Len(rows, 1)
	s.Equal(models.CategoryGroceries, rows[0].Category)
	s.Equal("300.00", rows[0].Budget.StringFixed(2))
	s.Equal("150.00", rows[0].Spent.StringFixed(2))
	s.Equal("50.00", rows[0].PercentageUsed.StringFixed(2))
	s.Equal(1, s.metrics.timings[MetricBudgetTracking])
	s.Equal(float64(0), s.metrics.gauges[MetricOverBudgetCategories])
}

func (s *BudgetTrackingServiceSuite) TestGetBudgetTracking_DuplicateBudgetsEachGetARow() {
	s.budgets.EXPECT().FindByDateRange(gomock.Any(), gomock.Any(), gomock.Any()).Return([]models.Budget{
		budget(1, models.CategoryGroceries, "100"),
		budget(2, models.CategoryGroceries, "400"),
	}, nil)
	s.expenditures.EXPECT().FindByDateRange(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]models.Expenditure{spend(models.CategoryGroceries, "200")}, nil)

	rows, err := s.service.GetBudgetTracking(s.ctx, 3, 2024)

	s.Require().NoError(err)
	s.Require().Len(rows, 2)
	s.Equal(uint(1), rows[0].BudgetID)
	s.Equal("200.00", rows[0].PercentageUsed.StringFixed(2))
	s.Equal("50.00", rows[1].PercentageUsed.StringFixed(2))
	s.Equal(float64(1), s.metrics.gauges[MetricOverBudgetCategories])
}

func (s *BudgetTrackingServiceSuite) TestGetBudgetTracking_InvalidMonthSkipsRepositories() {
	_, err := s.service.GetBudgetTracking(s.ctx, 0, 2024)

	var validationErr *ValidationError
	s.ErrorAs(err, &validationErr)
}

func (s *BudgetTrackingServiceSuite) TestGetBudgetTracking_RepositoryFailure() {
	dbErr := errors.New("timeout")
	s.budgets.EXPECT().FindByDateRange(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, dbErr)

	_, err := s.service.GetBudgetTracking(s.ctx, 3, 2024)

	s.ErrorIs(err, dbErr)
}

func TestBuildTrackingRows_NoSpendIsZero(t *testing.T) {
	rows := BuildTrackingRows([]models.Budget{budget(1, models.CategoryMortgage, "1200")}, nil)

	assert.Len(t, rows, 1)
	assert.True(t, rows[0].Spent.IsZero())
	assert.True(t, rows[0].PercentageUsed.IsZero())
}

func TestPercentageUsed(t *testing.T) {
	tests := []struct {
		spent, budget, want string
	}{
		{"150", "300", "50.00"},
		{"10", "0", "0.00"},
		{"10", "-5", "0.00"},
		{"1", "3", "33.33"},
		{"2", "3", "66.67"},
		{"0.005", "1", "0.50"},
		{"450", "300", "150.00"},
	}
	for _, tt := range tests {
		got := PercentageUsed(decimal.RequireFromString(tt.spent), decimal.RequireFromString(tt.budget))
		assert.Equal(t, tt.want, got.StringFixed(2), "%s of %s", tt.spent, tt.budget)
	}
}
