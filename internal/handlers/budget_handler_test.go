package handlers

import (
	"net/http"
	"testing"
	"time"

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

// BudgetHandlerSuite defines the test suite for BudgetHandler and ExpenditureHandler
type BudgetHandlerSuite struct {
	suite.Suite
	ctrl               *gomock.Controller
	budgetService      *service_mocks.MockBudgetServiceInterface
	trackingService    *service_mocks.MockBudgetTrackingServiceInterface
	expenditureService *service_mocks.MockExpenditureServiceInterface
	handler            *BudgetHandler
	expenditureHandler *ExpenditureHandler
	echo               *echo.Echo
}

func (s *BudgetHandlerSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.budgetService = service_mocks.NewMockBudgetServiceInterface(s.ctrl)
	s.trackingService = service_mocks.NewMockBudgetTrackingServiceInterface(s.ctrl)
	s.expenditureService = service_mocks.NewMockExpenditureServiceInterface(s.ctrl)
	s.handler = NewBudgetHandler(s.budgetService, s.trackingService)
	s.expenditureHandler = NewExpenditureHandler(s.expenditureService)
	s.echo = newTestEcho()
}

func (s *BudgetHandlerSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestBudgetHandlerSuite(t *testing.T) {
	suite.Run(t, new(BudgetHandlerSuite))
}

func (s *BudgetHandlerSuite) TestCreateBudget_ParsesCategoryCaseInsensitively() {
	s.budgetService.EXPECT().
		Create(gomock.Any(), gomock.Any(), models.CategoryGroceries, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)).
		Return(&models.Budget{ID: 3, Amount: decimal.NewFromInt(300), Category: models.CategoryGroceries, Version: 1}, nil)

	c, rec := newTestContext(s.echo, http.MethodPost, "/api/budget", dto.BudgetRequest{
		Amount: "300", Category: "groceries", Date: "2024-03-01",
	})

	s.NoError(s.handler.CreateBudget(c))
	s.Equal(http.StatusCreated, rec.Code)

	var resp dto.BudgetResponse
	_, err := decodeEnvelope(rec, &resp)
	s.Require().NoError(err)
	s.Equal("GROCERIES", resp.Category)
	s.Equal("300.00", resp.Amount)
}

func (s *BudgetHandlerSuite) TestCreateBudget_UnknownCategory() {
	c, rec := newTestContext(s.echo, http.MethodPost, "/api/budget", dto.BudgetRequest{
		Amount: "300", Category: "PETS", Date: "2024-03-01",
	})

	s.NoError(s.handler.CreateBudget(c))
	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *BudgetHandlerSuite) TestGetBudgetByCategory_NotFound() {
	s.budgetService.EXPECT().GetByCategory(gomock.Any(), models.CategoryMortgage, 2024, 3).
		Return(nil, &services.NotFoundError{Entity: services.EntityBudget})

	c, rec := newTestContext(s.echo, http.MethodGet, "/api/budget/category?category=mortgage&year=2024&month=3", nil)

	s.NoError(s.handler.GetBudgetByCategory(c))
	s.Equal(http.StatusNotFound, rec.Code)

	resp, err := decodeError(rec)
	s.Require().NoError(err)
	s.Equal("BUDGET_001", resp.Error.Code)
	s.Equal("Budget not found", resp.Error.Message)
}

func (s *BudgetHandlerSuite) TestGetBudgetTracking() {
	s.trackingService.EXPECT().GetBudgetTracking(gomock.Any(), 3, 2024).Return([]models.BudgetTrackingRow{
		{
			BudgetID:       1,
			Category:       models.CategoryGroceries,
			Budget:         decimal.NewFromInt(100),
			Spent:          decimal.NewFromInt(50),
			PercentageUsed: decimal.RequireFromString("50.00"),
		},
	}, nil)

	c, rec := newTestContext(s.echo, http.MethodGet, "/api/budget-tracking?year=2024&month=3", nil)

	s.NoError(s.handler.GetBudgetTracking(c))
	s.Equal(http.StatusOK, rec.Code)

	var rows []dto.BudgetTrackingResponse
	_, err := decodeEnvelope(rec, &rows)
	s.Require().NoError(err)
	s.Require().Len(rows, 1)
	s.Equal("GROCERIES", rows[0].Category)
	s.Equal("100.00", rows[0].Budget)
	s.Equal("50.00", rows[0].Spent)
	s.Equal(50.0, rows[0].PercentageUsed)
}

func (s *BudgetHandlerSuite) TestDeleteBudget() {
	s.budgetService.EXPECT().Delete(gomock.Any(), uint(2)).Return(nil)

	c, rec := newTestContext(s.echo, http.MethodDelete, "/api/budget/2", nil)
	withID(c, "2")

	s.NoError(s.handler.DeleteBudget(c))
	s.Equal(http.StatusOK, rec.Code)
}

func (s *BudgetHandlerSuite) TestCreateExpenditure_DescriptionOptional() {
	s.expenditureService.EXPECT().
		Create(gomock.Any(), gomock.Any(), "", models.CategoryUtilities, gomock.Any()).
		Return(&models.Expenditure{ID: 8, Amount: decimal.NewFromInt(15), Category: models.CategoryUtilities}, nil)

	c, rec := newTestContext(s.echo, http.MethodPost, "/api/expenditure", dto.ExpenditureRequest{
		Amount: "15", Category: "UTILITIES", Date: "2024-03-02",
	})

	s.NoError(s.expenditureHandler.CreateExpenditure(c))
	s.Equal(http.StatusCreated, rec.Code)
}

func (s *BudgetHandlerSuite) TestUpdateExpenditure_Conflict() {
	s.expenditureService.EXPECT().
		Update(gomock.Any(), uint(8), gomock.Any(), gomock.Any(), models.CategoryOther, gomock.Any(), gomock.Any()).
		Return(nil, &services.ConflictError{Entity: services.EntityExpenditure, ID: 8})

	c, rec := newTestContext(s.echo, http.MethodPut, "/api/expenditure/8", dto.ExpenditureRequest{
		Amount: "15", Description: gofakeit.Company(), Category: "other", Date: "2024-03-02",
	})
	withID(c, "8")

	s.NoError(s.expenditureHandler.UpdateExpenditure(c))
	s.Equal(http.StatusConflict, rec.Code)
}

func (s *BudgetHandlerSuite) TestListExpenditures_BadYear() {
	c, rec := newTestContext(s.echo, http.MethodGet, "/api/expenditure?year=twenty&month=3", nil)

	s.NoError(s.expenditureHandler.ListExpenditures(c))
	s.Equal(http.StatusBadRequest, rec.Code)

	resp, err := decodeError(rec)
	s.Require().NoError(err)
	s.Equal("VALIDATION_003", resp.Error.Code)
}
