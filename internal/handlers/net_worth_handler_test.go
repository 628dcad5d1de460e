package handlers

import (
	"net/http"
	"testing"

	"finance-tracker/internal/dto"
	"finance-tracker/internal/models"
	"finance-tracker/internal/services"
	"finance-tracker/internal/services/service_mocks"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

// NetWorthHandlerSuite defines the test suite for NetWorthHandler and LineItemHandler
type NetWorthHandlerSuite struct {
	suite.Suite
	ctrl             *gomock.Controller
	netWorthService  *service_mocks.MockNetWorthServiceInterface
	assetService     *service_mocks.MockAssetServiceInterface
	liabilityService *service_mocks.MockLiabilityServiceInterface
	handler          *NetWorthHandler
	lineItemHandler  *LineItemHandler
	echo             *echo.Echo
}

func (s *NetWorthHandlerSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.netWorthService = service_mocks.NewMockNetWorthServiceInterface(s.ctrl)
	s.assetService = service_mocks.NewMockAssetServiceInterface(s.ctrl)
	s.liabilityService = service_mocks.NewMockLiabilityServiceInterface(s.ctrl)
	s.handler = NewNetWorthHandler(s.netWorthService)
	s.lineItemHandler = NewLineItemHandler(s.assetService, s.liabilityService)
	s.echo = newTestEcho()
}

func (s *NetWorthHandlerSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestNetWorthHandlerSuite(t *testing.T) {
	suite.Run(t, new(NetWorthHandlerSuite))
}

func (s *NetWorthHandlerSuite) TestGetNetWorth_Absent() {
	s.netWorthService.EXPECT().GetNetWorth(gomock.Any(), 2024, 5).Return(nil, nil)

	c, rec := newTestContext(s.echo, http.MethodGet, "/api/networth?year=2024&month=5", nil)

	s.NoError(s.handler.GetNetWorth(c))
	s.Equal(http.StatusOK, rec.Code)

	env, err := decodeEnvelope(rec, nil)
	s.Require().NoError(err)
	s.Empty(env.Data)
	s.Equal("No net worth recorded for this month", env.Message)
}

func (s *NetWorthHandlerSuite) TestSaveNetWorth() {
	s.netWorthService.EXPECT().SaveOrUpdate(gomock.Any(), 2024, 5, gomock.Any(), gomock.Any()).
		Return(&models.NetWorth{ID: 1, Year: 2024, Month: 5, Assets: decimal.NewFromInt(5000), Liabilities: decimal.NewFromInt(1200), Version: 1}, nil)

	c, rec := newTestContext(s.echo, http.MethodPost, "/api/networth", dto.NetWorthRequest{
		Year: 2024, Month: 5, Assets: "5000", Liabilities: "1200",
	})

	s.NoError(s.handler.SaveNetWorth(c))
	s.Equal(http.StatusOK, rec.Code)

	var resp dto.NetWorthResponse
	_, err := decodeEnvelope(rec, &resp)
	s.Require().NoError(err)
	s.Equal("3800.00", resp.NetWorth)
}

func (s *NetWorthHandlerSuite) TestSaveNetWorth_AcceptsZeroLiabilities() {
	s.netWorthService.EXPECT().SaveOrUpdate(gomock.Any(), 2024, 5, gomock.Any(), gomock.Any()).
		Return(&models.NetWorth{Year: 2024, Month: 5, Assets: decimal.NewFromInt(10)}, nil)

	c, rec := newTestContext(s.echo, http.MethodPost, "/api/networth", dto.NetWorthRequest{
		Year: 2024, Month: 5, Assets: "10", Liabilities: "0",
	})

	s.NoError(s.handler.SaveNetWorth(c))
	s.Equal(http.StatusOK, rec.Code)
}

func (s *NetWorthHandlerSuite) TestSaveNetWorth_InvalidMonth() {
	c, rec := newTestContext(s.echo, http.MethodPost, "/api/networth", dto.NetWorthRequest{
		Year: 2024, Month: 13, Assets: "10", Liabilities: "0",
	})

	s.NoError(s.handler.SaveNetWorth(c))
	s.Equal(http.StatusBadRequest, rec.Code)

	resp, err := decodeError(rec)
	s.Require().NoError(err)
	s.Equal([]string{"month: must be between 1 and 12"}, resp.Error.Details)
}

func (s *NetWorthHandlerSuite) TestRecalculateNetWorth() {
	s.netWorthService.EXPECT().RecalculateFromLineItems(gomock.Any(), 2024, 6).
		Return(&models.NetWorth{Year: 2024, Month: 6, Assets: decimal.NewFromInt(150), Liabilities: decimal.NewFromInt(30)}, nil)

	c, rec := newTestContext(s.echo, http.MethodPost, "/api/networth/recalculate?year=2024&month=6", nil)

	s.NoError(s.handler.RecalculateNetWorth(c))
	s.Equal(http.StatusOK, rec.Code)

	var resp dto.NetWorthResponse
	_, err := decodeEnvelope(rec, &resp)
	s.Require().NoError(err)
	s.Equal("120.00", resp.NetWorth)
}

func (s *NetWorthHandlerSuite) TestGetHistory_FullAndBoxed() {
	s.netWorthService.EXPECT().GetHistory(gomock.Any()).Return([]models.NetWorth{{Year: 2024, Month: 1}}, nil)
	c, rec := newTestContext(s.echo, http.MethodGet, "/api/networth/history", nil)
	s.NoError(s.handler.GetHistory(c))
	s.Equal(http.StatusOK, rec.Code)

	s.netWorthService.EXPECT().
		GetHistoryInRange(gomock.Any(), services.HistoryRange{StartYear: 2023, StartMonth: 11, EndYear: 2024, EndMonth: 2}).
		Return(nil, nil)
	c, rec = newTestContext(s.echo, http.MethodGet, "/api/networth/history?startYear=2023&startMonth=11&endYear=2024&endMonth=2", nil)
	s.NoError(s.handler.GetHistory(c))
	s.Equal(http.StatusOK, rec.Code)
}

func (s *NetWorthHandlerSuite) TestGetHistory_PartialRange() {
	c, rec := newTestContext(s.echo, http.MethodGet, "/api/networth/history?startYear=2023", nil)

	s.NoError(s.handler.GetHistory(c))
	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *NetWorthHandlerSuite) TestGetStats() {
	s.netWorthService.EXPECT().GetStats(gomock.Any(), nil).Return(&models.NetWorthStats{
		Count:                4,
		Current:              decimal.NewFromInt(1200),
		OneMonthChange:       decimal.NewFromInt(150),
		ThreeMonthChange:     decimal.NewFromInt(200),
		AverageMonthlyChange: decimal.RequireFromString("66.67"),
		Highest:              decimal.NewFromInt(1200),
		Lowest:               decimal.NewFromInt(1000),
	}, nil)

	c, rec := newTestContext(s.echo, http.MethodGet, "/api/networth/stats", nil)

	s.NoError(s.handler.GetStats(c))
	s.Equal(http.StatusOK, rec.Code)

	var resp dto.NetWorthStatsResponse
	_, err := decodeEnvelope(rec, &resp)
	s.Require().NoError(err)
	s.Equal("66.67", resp.AverageMonthlyChange)
	s.Equal("200.00", resp.Change3Month)
	s.Empty(resp.Series)
}

func (s *NetWorthHandlerSuite) TestSaveAsset_CreateAndReplace() {
	comment := gofakeit.Company()
	s.assetService.EXPECT().Save(gomock.Any(), uint(0), 2024, 6, gomock.Any(), comment).
		Return(&models.Asset{LineItem: models.LineItem{ID: 4, Year: 2024, Month: 6, Amount: decimal.NewFromInt(100), Comment: comment}}, nil)

	c, rec := newTestContext(s.echo, http.MethodPost, "/api/assets", dto.LineItemRequest{
		Year: 2024, Month: 6, Amount: "100", Comment: comment,
	})
	s.NoError(s.lineItemHandler.SaveAsset(c))
	s.Equal(http.StatusCreated, rec.Code)

	s.assetService.EXPECT().Save(gomock.Any(), uint(4), 2024, 6, gomock.Any(), comment).
		Return(nil, &services.NotFoundError{Entity: services.EntityAsset, ID: 4})

	c, rec = newTestContext(s.echo, http.MethodPost, "/api/assets", dto.LineItemRequest{
		ID: 4, Year: 2024, Month: 6, Amount: "100", Comment: comment,
	})
	s.NoError(s.lineItemHandler.SaveAsset(c))
	s.Equal(http.StatusNotFound, rec.Code)

	resp, err := decodeError(rec)
	s.Require().NoError(err)
	s.Equal("ASSET_001", resp.Error.Code)
}

func (s *NetWorthHandlerSuite) TestGetLiabilityTotal() {
	s.liabilityService.EXPECT().TotalByPeriod(gomock.Any(), 2024, 6).Return(decimal.NewFromInt(30), nil)

	c, rec := newTestContext(s.echo, http.MethodGet, "/api/liabilities/total?year=2024&month=6", nil)

	s.NoError(s.lineItemHandler.GetLiabilityTotal(c))
	s.Equal(http.StatusOK, rec.Code)

	var resp dto.TotalResponse
	_, err := decodeEnvelope(rec, &resp)
	s.Require().NoError(err)
	s.Equal("30.00", resp.Total)
}

func (s *NetWorthHandlerSuite) TestDeleteLiability_NotFound() {
	s.liabilityService.EXPECT().Delete(gomock.Any(), uint(12)).
		Return(&services.NotFoundError{Entity: services.EntityLiability, ID: 12})

	c, rec := newTestContext(s.echo, http.MethodDelete, "/api/liabilities/12", nil)
	withID(c, "12")

	s.NoError(s.lineItemHandler.DeleteLiability(c))
	s.Equal(http.StatusNotFound, rec.Code)
}
