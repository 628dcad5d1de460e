package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"finance-tracker/internal/config"
	"finance-tracker/internal/database"
	"finance-tracker/internal/handlers"
	"finance-tracker/internal/middleware"
	"finance-tracker/internal/repositories"
	"finance-tracker/internal/services"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	bodyLimit            = "1M"
	visitorSweepInterval = time.Minute
)

// Server owns the Echo instance and everything hanging off the route table
type Server struct {
	echo    *echo.Echo
	config  *config.Config
	limiter *middleware.RateLimiter
}

// Services bundles the domain services the HTTP layer depends on
type Services struct {
	Income         services.IncomeServiceInterface
	Expenditure    services.ExpenditureServiceInterface
	Budget         services.BudgetServiceInterface
	BudgetTracking services.BudgetTrackingServiceInterface
	Asset          services.AssetServiceInterface
	Liability      services.LiabilityServiceInterface
	NetWorth       services.NetWorthServiceInterface
}

// NewServices wires repositories over db into the domain services
func NewServices(db *database.DB, logger *slog.Logger) *Services {
	financeLogger := services.NewFinanceLogger(logger)
	metrics := services.NewPrometheusMetrics()

	budgets := repositories.NewBudgetRepository(db.DB)
	expenditures := repositories.NewExpenditureRepository(db.DB)

	return &Services{
		Income:         services.NewIncomeService(repositories.NewIncomeRepository(db.DB), financeLogger, metrics),
		Expenditure:    services.NewExpenditureService(expenditures, financeLogger, metrics),
		Budget:         services.NewBudgetService(budgets, financeLogger, metrics),
		BudgetTracking: services.NewBudgetTrackingService(budgets, expenditures, financeLogger, metrics),
		Asset:          services.NewAssetService(repositories.NewAssetRepository(db.DB), financeLogger, metrics),
		Liability:      services.NewLiabilityService(repositories.NewLiabilityRepository(db.DB), financeLogger, metrics),
		NetWorth:       services.NewNetWorthService(repositories.NewNetWorthRepository(db.DB), financeLogger, metrics),
	}
}

// New builds the Echo instance with the middleware chain and all routes registered
func New(cfg *config.Config, health handlers.HealthChecker, svc *Services, logger *slog.Logger) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = middleware.CustomHTTPErrorHandler
	e.Validator = handlers.NewValidator()

	s := &Server{
		echo:    e,
		config:  cfg,
		limiter: middleware.NewRateLimiter(cfg.Security),
	}

	// order matters: the trace ID must exist before anything logs or fails
	e.Use(middleware.RequestID())
	e.Use(middleware.PanicRecovery())
	e.Use(middleware.RequestLogger(logger))
	e.Use(middleware.SecurityHeaders())
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins:  cfg.Server.CORSAllowOrigins,
		AllowMethods:  []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders:  []string{echo.HeaderContentType, middleware.TraceIDHeader},
		ExposeHeaders: []string{middleware.TraceIDHeader},
	}))
	e.Use(echomw.BodyLimit(bodyLimit))

	s.registerRoutes(health, svc)
	return s
}

func (s *Server) registerRoutes(health handlers.HealthChecker, svc *Services) {
	e := s.echo

	e.GET("/health", handlers.NewHealthCheckHandler(health).HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	api := e.Group("/api", s.limiter.Middleware())

	income := handlers.NewIncomeHandler(svc.Income)
	api.GET("/income", income.ListIncome)
	api.GET("/income/total", income.GetTotal)
	api.POST("/income", income.CreateIncome)
	api.PUT("/income/:id", income.UpdateIncome)
	api.DELETE("/income/:id", income.DeleteIncome)

	expenditure := handlers.NewExpenditureHandler(svc.Expenditure)
	api.GET("/expenditure", expenditure.ListExpenditures)
	api.GET("/expenditure/total", expenditure.GetTotal)
	api.POST("/expenditure", expenditure.CreateExpenditure)
	api.PUT("/expenditure/:id", expenditure.UpdateExpenditure)
	api.DELETE("/expenditure/:id", expenditure.DeleteExpenditure)

	budget := handlers.NewBudgetHandler(svc.Budget, svc.BudgetTracking)
	api.GET("/budget", budget.ListBudgets)
	api.GET("/budget/category", budget.GetBudgetByCategory)
	api.POST("/budget", budget.CreateBudget)
	api.PUT("/budget/:id", budget.UpdateBudget)
	api.DELETE("/budget/:id", budget.DeleteBudget)
	api.GET("/budget-tracking", budget.GetBudgetTracking)

	lineItems := handlers.NewLineItemHandler(svc.Asset, svc.Liability)
	api.GET("/assets", lineItems.ListAssets)
	api.GET("/assets/total", lineItems.GetAssetTotal)
	api.POST("/assets", lineItems.SaveAsset)
	api.DELETE("/assets/:id", lineItems.DeleteAsset)
	api.GET("/liabilities", lineItems.ListLiabilities)
	api.GET("/liabilities/total", lineItems.GetLiabilityTotal)
	api.POST("/liabilities", lineItems.SaveLiability)
	api.DELETE("/liabilities/:id", lineItems.DeleteLiability)

	netWorth := handlers.NewNetWorthHandler(svc.NetWorth)
	api.GET("/networth", netWorth.GetNetWorth)
	api.POST("/networth", netWorth.SaveNetWorth)
	api.GET("/networth/history", netWorth.GetHistory)
	api.GET("/networth/stats", netWorth.GetStats)
	api.POST("/networth/recalculate", netWorth.RecalculateNetWorth)
}

// Handler exposes the router, mainly for tests
func (s *Server) Handler() http.Handler {
	return s.echo
}

// Run serves until ctx is cancelled, then drains in-flight requests within
// the configured shutdown timeout.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:         net.JoinHostPort(s.config.Server.Host, s.config.Server.Port),
		Handler:      s.echo,
		ReadTimeout:  s.config.Server.ReadTimeout,
		WriteTimeout: s.config.Server.WriteTimeout,
	}

	sweepCtx, stopSweep := context.WithCancel(ctx)
	defer stopSweep()
	go s.limiter.Run(sweepCtx, visitorSweepInterval)

	errCh := make(chan error, 1)
	go func() {
		slog.Info("HTTP server listening", "addr", srv.Addr, "env", s.config.Server.Environment)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	slog.Info("Shutting down HTTP server", "timeout", s.config.Server.ShutdownTimeout)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.config.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}
	return <-errCh
}
