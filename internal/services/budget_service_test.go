package services

import (
	"context"
	"testing"

	"finance-tracker/internal/models"
	"finance-tracker/internal/repositories"
	"finance-tracker/internal/repositories/repository_mocks"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

// BudgetServiceSuite defines the test suite for BudgetServiceInterface
type BudgetServiceSuite struct {
	suite.Suite
	ctrl    *gomock.Controller
	repo    *repository_mocks.MockBudgetRepositoryInterface
	service BudgetServiceInterface
	ctx     context.Context
}

func (s *BudgetServiceSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.repo = repository_mocks.NewMockBudgetRepositoryInterface(s.ctrl)
	s.service = NewBudgetService(s.repo, newTestFinanceLogger(), newRecordingMetrics())
	s.ctx = context.Background()
}

func (s *BudgetServiceSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestBudgetServiceSuite(t *testing.T) {
	suite.Run(t, new(BudgetServiceSuite))
}

func (s *BudgetServiceSuite) TestCreate_AllowsDuplicateCategory() {
	s.repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil).Times(2)

	_, err := s.service.Create(s.ctx, decimal.NewFromInt(300), models.CategoryGroceries, utcDate(2024, 3, 1))
	s.NoError(err)
	_, err = s.service.Create(s.ctx, decimal.NewFromInt(100), models.CategoryGroceries, utcDate(2024, 3, 1))
	s.NoError(err)
}

func (s *BudgetServiceSuite) TestGetByCategory_Found() {
	budget := &models.Budget{ID: 2, Amount: decimal.NewFromInt(300), Category: models.CategoryGroceries, Date: utcDate(2024, 3, 1)}
	s.repo.EXPECT().FindFirstByCategoryAndDateRange(gomock.Any(), models.CategoryGroceries, utcDate(2024, 3, 1), utcDate(2024, 3, 31)).
		Return(budget, nil)

	found, err := s.service.GetByCategory(s.ctx, models.CategoryGroceries, 2024, 3)

	s.NoError(err)
	s.Equal(uint(2), found.ID)
}

func (s *BudgetServiceSuite) TestGetByCategory_NoneIsNotFound() {
	s.repo.EXPECT().FindFirstByCategoryAndDateRange(gomock.Any(), models.CategoryMortgage, gomock.Any(), gomock.Any()).
		Return(nil, repositories.ErrRecordNotFound)

	_, err := s.service.GetByCategory(s.ctx, models.CategoryMortgage, 2024, 3)

	s.ErrorIs(err, ErrNotFound)
	s.EqualError(err, "Budget not found")
}

func (s *BudgetServiceSuite) TestGetByCategory_ValidatesInput() {
	_, err := s.service.GetByCategory(s.ctx, models.Category("PETS"), 2024, 3)
	s.ErrorIs(err, models.ErrInvalidCategory)

	_, err = s.service.GetByCategory(s.ctx, models.CategoryMortgage, 0, 3)
	var validationErr *ValidationError
	s.ErrorAs(err, &validationErr)
}

func (s *BudgetServiceSuite) TestUpdate_Conflict() {
	stored := &models.Budget{ID: 9, Amount: decimal.NewFromInt(300), Category: models.CategoryGroceries, Date: utcDate(2024, 3, 1), Version: 3}
	s.repo.EXPECT().GetByID(gomock.Any(), uint(9)).Return(stored, nil)
	s.repo.EXPECT().UpdateWithOptimisticLock(gomock.Any(), gomock.Any(), 2).Return(models.ErrOptimisticLockConflict)

	_, err := s.service.Update(s.ctx, 9, decimal.NewFromInt(350), models.CategoryGroceries, utcDate(2024, 3, 1), intPtr(2))

	s.ErrorIs(err, ErrConcurrentModification)
	s.EqualError(err, "Budget was modified by another user. Please refresh and try again.")
}

func (s *BudgetServiceSuite) TestListByPeriod() {
	s.repo.EXPECT().FindByDateRange(gomock.Any(), utcDate(2024, 12, 1), utcDate(2024, 12, 31)).
		Return([]models.Budget{{ID: 1}, {ID: 2}}, nil)

	budgets, err := s.service.ListByPeriod(s.ctx, 2024, 12)

	s.NoError(err)
	s.Len(budgets, 2)
}
