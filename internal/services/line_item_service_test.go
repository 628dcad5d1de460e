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

// LineItemServiceSuite covers AssetServiceInterface and LiabilityServiceInterface
type LineItemServiceSuite struct {
	suite.Suite
	ctrl          *gomock.Controller
	assetRepo     *repository_mocks.MockAssetRepositoryInterface
	liabilityRepo *repository_mocks.MockLiabilityRepositoryInterface
	metrics       *recordingMetrics
	assets        AssetServiceInterface
	liabilities   LiabilityServiceInterface
	ctx           context.Context
}

func (s *LineItemServiceSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.assetRepo = repository_mocks.NewMockAssetRepositoryInterface(s.ctrl)
	s.liabilityRepo = repository_mocks.NewMockLiabilityRepositoryInterface(s.ctrl)
	s.metrics = newRecordingMetrics()
	logger := newTestFinanceLogger()
	s.assets = NewAssetService(s.assetRepo, logger, s.metrics)
	s.liabilities = NewLiabilityService(s.liabilityRepo, logger, s.metrics)
	s.ctx = context.Background()
}

func (s *LineItemServiceSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestLineItemServiceSuite(t *testing.T) {
	suite.Run(t, new(LineItemServiceSuite))
}

func (s *LineItemServiceSuite) TestAssetSave_CreatesWhenIDIsZero() {
	comment := gofakeit.Company()
	s.assetRepo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, asset *models.Asset) error {
			s.Zero(asset.ID)
			asset.ID = 21
			return nil
		})

	asset, err := s.assets.Save(s.ctx, 0, 2024, 6, decimal.NewFromInt(100), comment)

	s.Require().NoError(err)
	s.Equal(uint(21), asset.ID)
	s.Equal(comment, asset.Comment)
	s.Equal(1, s.metrics.counter(MetricRecordsCreated))
}

func (s *LineItemServiceSuite) TestAssetSave_ReplacesExisting() {
	existing := &models.Asset{LineItem: models.LineItem{ID: 21, Year: 2024, Month: 6, Amount: decimal.NewFromInt(100)}}
	s.assetRepo.EXPECT().GetByID(gomock.Any(), uint(21)).Return(existing, nil)
	s.assetRepo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, asset *models.Asset) error {
			s.Equal(uint(21), asset.ID)
			s.Equal("250.00", asset.Amount.StringFixed(2))
			return nil
		})

	_, err := s.assets.Save(s.ctx, 21, 2024, 6, decimal.NewFromInt(250), "Brokerage")

	s.NoError(err)
	s.Equal(1, s.metrics.counter(MetricRecordsUpdated))
}

func (s *LineItemServiceSuite) TestAssetSave_MissingIDIsNotFound() {
	s.assetRepo.EXPECT().GetByID(gomock.Any(), uint(404)).Return(nil, repositories.ErrRecordNotFound)

	_, err := s.assets.Save(s.ctx, 404, 2024, 6, decimal.NewFromInt(250), "Brokerage")

	s.ErrorIs(err, ErrNotFound)
	s.EqualError(err, "Asset not found")
}

func (s *LineItemServiceSuite) TestAssetSave_RejectsInvalidInput() {
	_, err := s.assets.Save(s.ctx, 0, 2024, 6, decimal.Zero, "Nothing")
	var validationErr *ValidationError
	s.ErrorAs(err, &validationErr)

	_, err = s.assets.Save(s.ctx, 0, 2024, 0, decimal.NewFromInt(1), "Nothing")
	s.ErrorAs(err, &validationErr)
	s.Contains(validationErr.Fields, "month")
}

func (s *LineItemServiceSuite) TestAssetTotalByPeriod() {
	s.assetRepo.EXPECT().FindByYearAndMonth(gomock.Any(), 2024, 6).Return([]models.Asset{
		{LineItem: models.LineItem{ID: 1, Amount: decimal.NewFromInt(100)}},
		{LineItem: models.LineItem{ID: 2, Amount: decimal.NewFromInt(50)}},
	}, nil)

	total, err := s.assets.TotalByPeriod(s.ctx, 2024, 6)

	s.NoError(err)
	s.Equal("150.00", total.StringFixed(2))
}

func (s *LineItemServiceSuite) TestLiabilityTotalByPeriod() {
	s.liabilityRepo.EXPECT().FindByYearAndMonth(gomock.Any(), 2024, 6).Return([]models.Liability{
		{LineItem: models.LineItem{ID: 1, Amount: decimal.NewFromInt(30)}},
	}, nil)

	total, err := s.liabilities.TotalByPeriod(s.ctx, 2024, 6)

	s.NoError(err)
	s.Equal("30.00", total.StringFixed(2))
}

func (s *LineItemServiceSuite) TestLiabilityListByPeriod_InvalidYear() {
	_, err := s.liabilities.ListByPeriod(s.ctx, 0, 6)

	var validationErr *ValidationError
	s.ErrorAs(err, &validationErr)
}

func (s *LineItemServiceSuite) TestLiabilityDelete() {
	s.liabilityRepo.EXPECT().Delete(gomock.Any(), uint(3)).Return(nil)
	s.liabilityRepo.EXPECT().Delete(gomock.Any(), uint(4)).Return(repositories.ErrRecordNotFound)

	s.NoError(s.liabilities.Delete(s.ctx, 3))
	s.EqualError(s.liabilities.Delete(s.ctx, 4), "Liability not found")
}

func (s *LineItemServiceSuite) TestLiabilitySave_Create() {
	s.liabilityRepo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)

	liability, err := s.liabilities.Save(s.ctx, 0, 2024, 6, decimal.RequireFromString("30.00"), "Card")

	s.NoError(err)
	s.Equal("Card", liability.Comment)
}
