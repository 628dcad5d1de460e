package services

import (
	"context"
	"testing"

	"finance-tracker/internal/models"
	"finance-tracker/internal/repositories"
	"finance-tracker/internal/repositories/repository_mocks"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

// ExpenditureServiceSuite defines the test suite for ExpenditureServiceInterface
type ExpenditureServiceSuite struct {
	suite.Suite
	ctrl    *gomock.Controller
	repo    *repository_mocks.MockExpenditureRepositoryInterface
	metrics *recordingMetrics
	service ExpenditureServiceInterface
	ctx     context.Context
}

func (s *ExpenditureServiceSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.repo = repository_mocks.NewMockExpenditureRepositoryInterface(s.ctrl)
	s.metrics = newRecordingMetrics()
	s.service = NewExpenditureService(s.repo, newTestFinanceLogger(), s.metrics)
	s.ctx = context.Background()
}

func (s *ExpenditureServiceSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestExpenditureServiceSuite(t *testing.T) {
	suite.Run(t, new(ExpenditureServiceSuite))
}

func (s *ExpenditureServiceSuite) TestCreate_Success() {
	description := gofakeit.Company()
	s.repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, expenditure *models.Expenditure) error {
			expenditure.ID = 11
			return nil
		})

	expenditure, err := s.service.Create(s.ctx, decimal.RequireFromString("42.10"), description, models.CategoryGroceries, utcDate(2024, 3, 9))

	s.NoError(err)
	s.Equal(uint(11), expenditure.ID)
	s.Equal(models.CategoryGroceries, expenditure.Category)
	s.Equal(utcDate(2024, 3, 9), expenditure.Date)
}

func (s *ExpenditureServiceSuite) TestCreate_RejectsUnknownCategory() {
	_, err := s.service.Create(s.ctx, decimal.NewFromInt(5), "Coffee", models.Category("COFFEE"), utcDate(2024, 3, 9))

	var validationErr *ValidationError
	s.Require().ErrorAs(err, &validationErr)
	s.Contains(validationErr.Fields, "category")
	s.Zero(s.metrics.counter(MetricRecordsCreated))
}

func (s *ExpenditureServiceSuite) TestTotalByPeriod() {
	s.repo.EXPECT().FindByDateRange(gomock.Any(), utcDate(2023, 4, 1), utcDate(2023, 4, 30)).Return([]models.Expenditure{
		{ID: 1, Amount: decimal.RequireFromString("120.00"), Category: models.CategoryGroceries},
		{ID: 2, Amount: decimal.RequireFromString("30.55"), Category: models.CategoryUtilities},
	}, nil)

	total, err := s.service.TotalByPeriod(s.ctx, 2023, 4)

	s.NoError(err)
	s.Equal("150.55", total.StringFixed(2))
}

func (s *ExpenditureServiceSuite) TestUpdate_ChangesCategory() {
	stored := &models.Expenditure{
		ID: 5, Amount: decimal.NewFromInt(10), Description: "Bus", Category: models.CategoryOther,
		Date: utcDate(2024, 1, 2), Version: 4,
	}
	s.repo.EXPECT().GetByID(gomock.Any(), uint(5)).Return(stored, nil)
	s.repo.EXPECT().UpdateWithOptimisticLock(gomock.Any(), gomock.Any(), 4).Return(nil)

	updated, err := s.service.Update(s.ctx, 5, decimal.NewFromInt(10), "Bus", models.CategoryTransportation, utcDate(2024, 1, 2), intPtr(4))

	s.NoError(err)
	s.Equal(models.CategoryTransportation, updated.Category)
	s.Equal(models.CategoryOther, stored.Category)
}

func (s *ExpenditureServiceSuite) TestUpdate_RowDeletedConcurrentlyIsNotFound() {
	stored := &models.Expenditure{
		ID: 5, Amount: decimal.NewFromInt(10), Description: "Bus", Category: models.CategoryOther,
		Date: utcDate(2024, 1, 2), Version: 1,
	}
	s.repo.EXPECT().GetByID(gomock.Any(), uint(5)).Return(stored, nil)
	s.repo.EXPECT().UpdateWithOptimisticLock(gomock.Any(), gomock.Any(), 1).Return(repositories.ErrRecordNotFound)

	_, err := s.service.Update(s.ctx, 5, decimal.NewFromInt(12), "Bus", models.CategoryOther, utcDate(2024, 1, 2), nil)

	s.ErrorIs(err, ErrNotFound)
	s.Zero(s.metrics.counter(MetricConcurrentModification))
}

func (s *ExpenditureServiceSuite) TestDelete_Missing() {
	s.repo.EXPECT().Delete(gomock.Any(), uint(8)).Return(repositories.ErrRecordNotFound)

	err := s.service.Delete(s.ctx, 8)

	s.EqualError(err, "Expenditure not found")
}
