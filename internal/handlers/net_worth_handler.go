package handlers

import (
	"net/http"

	"finance-tracker/internal/dto"
	"finance-tracker/internal/errors"
	"finance-tracker/internal/models"
	"finance-tracker/internal/services"

	"github.com/labstack/echo/v4"
)

// NetWorthHandler handles net worth snapshot and history HTTP requests
type NetWorthHandler struct {
	netWorthService services.NetWorthServiceInterface
}

// NewNetWorthHandler creates a new net worth handler
func NewNetWorthHandler(netWorthService services.NetWorthServiceInterface) *NetWorthHandler {
	return &NetWorthHandler{netWorthService: netWorthService}
}

// GetNetWorth returns a month's snapshot. A month without one is not an error.
// @Router /networth [get]
func (h *NetWorthHandler) GetNetWorth(c echo.Context) error {
	year, month, err := getPeriodQuery(c)
	if err != nil {
		return sendParamError(c, err)
	}

	netWorth, err := h.netWorthService.GetNetWorth(c.Request().Context(), year, month)
	if err != nil {
		return SendServiceError(c, err)
	}
	if netWorth == nil {
		return respond(c, http.StatusOK, nil, "No net worth recorded for this month")
	}

	return respond(c, http.StatusOK, dto.NewNetWorthResponse(netWorth), "")
}

// SaveNetWorth stores a month's totals, replacing any existing snapshot
// @Router /networth [post]
func (h *NetWorthHandler) SaveNetWorth(c echo.Context) error {
	var req dto.NetWorthRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(req); err != nil {
		return SendRequestValidationError(c, err)
	}

	assets, err := parseAmount("assets", req.Assets)
	if err != nil {
		return sendParamError(c, err)
	}
	liabilities, err := parseAmount("liabilities", req.Liabilities)
	if err != nil {
		return sendParamError(c, err)
	}

	netWorth, err := h.netWorthService.SaveOrUpdate(c.Request().Context(), req.Year, req.Month, assets, liabilities)
	if err != nil {
		return SendServiceError(c, err)
	}

	return respond(c, http.StatusOK, dto.NewNetWorthResponse(netWorth), "Net worth saved successfully")
}

// RecalculateNetWorth rebuilds a month's snapshot from its asset and liability line items
// @Router /networth/recalculate [post]
func (h *NetWorthHandler) RecalculateNetWorth(c echo.Context) error {
	year, month, err := getPeriodQuery(c)
	if err != nil {
		return sendParamError(c, err)
	}

	netWorth, err := h.netWorthService.RecalculateFromLineItems(c.Request().Context(), year, month)
	if err != nil {
		return SendServiceError(c, err)
	}

	return respond(c, http.StatusOK, dto.NewNetWorthResponse(netWorth), "Net worth recalculated successfully")
}

// GetHistory returns every snapshot, or those inside the startYear/startMonth/endYear/endMonth box
// @Router /networth/history [get]
func (h *NetWorthHandler) GetHistory(c echo.Context) error {
	rng, err := getHistoryRangeQuery(c)
	if err != nil {
		return sendParamError(c, err)
	}

	ctx := c.Request().Context()
	var history []models.NetWorth
	if rng == nil {
		history, err = h.netWorthService.GetHistory(ctx)
	} else {
		history, err = h.netWorthService.GetHistoryInRange(ctx, *rng)
	}
	if err != nil {
		return SendServiceError(c, err)
	}

	return respond(c, http.StatusOK, dto.NewNetWorthListResponse(history), "")
}

// GetStats summarises the history selected the same way as GetHistory
// @Router /networth/stats [get]
func (h *NetWorthHandler) GetStats(c echo.Context) error {
	rng, err := getHistoryRangeQuery(c)
	if err != nil {
		return sendParamError(c, err)
	}

	stats, err := h.netWorthService.GetStats(c.Request().Context(), rng)
	if err != nil {
		return SendServiceError(c, err)
	}

	return respond(c, http.StatusOK, dto.NewNetWorthStatsResponse(stats), "")
}
