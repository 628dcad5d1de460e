package handlers

import (
	"net/http"

	"finance-tracker/internal/dto"
	"finance-tracker/internal/errors"
	"finance-tracker/internal/services"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// LineItemHandler handles asset and liability HTTP requests
type LineItemHandler struct {
	assetService     services.AssetServiceInterface
	liabilityService services.LiabilityServiceInterface
}

// NewLineItemHandler creates a new asset and liability handler
func NewLineItemHandler(assetService services.AssetServiceInterface, liabilityService services.LiabilityServiceInterface) *LineItemHandler {
	return &LineItemHandler{
		assetService:     assetService,
		liabilityService: liabilityService,
	}
}

func bindLineItem(c echo.Context) (*dto.LineItemRequest, decimal.Decimal, error) {
	var req dto.LineItemRequest
	if err := c.Bind(&req); err != nil {
		return nil, decimal.Zero, SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(req); err != nil {
		return nil, decimal.Zero, SendRequestValidationError(c, err)
	}
	amount, err := parseAmount("amount", req.Amount)
	if err != nil {
		return nil, decimal.Zero, sendParamError(c, err)
	}
	return &req, amount, nil
}

// ListAssets returns the assets booked against a month
// @Router /assets [get]
func (h *LineItemHandler) ListAssets(c echo.Context) error {
	year, month, err := getPeriodQuery(c)
	if err != nil {
		return sendParamError(c, err)
	}

	assets, err := h.assetService.ListByPeriod(c.Request().Context(), year, month)
	if err != nil {
		return SendServiceError(c, err)
	}

	return respond(c, http.StatusOK, dto.NewAssetListResponse(assets), "")
}

// GetAssetTotal returns the sum of a month's assets
// @Router /assets/total [get]
func (h *LineItemHandler) GetAssetTotal(c echo.Context) error {
	year, month, err := getPeriodQuery(c)
	if err != nil {
		return sendParamError(c, err)
	}

	total, err := h.assetService.TotalByPeriod(c.Request().Context(), year, month)
	if err != nil {
		return SendServiceError(c, err)
	}

	return respond(c, http.StatusOK, dto.NewTotalResponse(year, month, total), "")
}

// SaveAsset creates an asset, or replaces the one named by the body's id
// @Router /assets [post]
func (h *LineItemHandler) SaveAsset(c echo.Context) error {
	req, amount, err := bindLineItem(c)
	if req == nil {
		return err
	}

	asset, err := h.assetService.Save(c.Request().Context(), req.ID, req.Year, req.Month, amount, req.Comment)
	if err != nil {
		return SendServiceError(c, err)
	}

	status := http.StatusOK
	if req.ID == 0 {
		status = http.StatusCreated
	}
	return respond(c, status, dto.NewAssetResponse(asset), "Asset saved successfully")
}

// DeleteAsset removes an asset
// @Router /assets/{id} [delete]
func (h *LineItemHandler) DeleteAsset(c echo.Context) error {
	id, err := getIDParam(c)
	if err != nil {
		return sendParamError(c, err)
	}

	if err := h.assetService.Delete(c.Request().Context(), id); err != nil {
		return SendServiceError(c, err)
	}

	return respond(c, http.StatusOK, nil, "Asset deleted successfully")
}

// ListLiabilities returns the liabilities booked against a month
// @Router /liabilities [get]
func (h *LineItemHandler) ListLiabilities(c echo.Context) error {
	year, month, err := getPeriodQuery(c)
	if err != nil {
		return sendParamError(c, err)
	}

	liabilities, err := h.liabilityService.ListByPeriod(c.Request().Context(), year, month)
	if err != nil {
		return SendServiceError(c, err)
	}

	return respond(c, http.StatusOK, dto.NewLiabilityListResponse(liabilities), "")
}

// GetLiabilityTotal returns the sum of a month's liabilities
// @Router /liabilities/total [get]
func (h *LineItemHandler) GetLiabilityTotal(c echo.Context) error {
	year, month, err := getPeriodQuery(c)
	if err != nil {
		return sendParamError(c, err)
	}

	total, err := h.liabilityService.TotalByPeriod(c.Request().Context(), year, month)
	if err != nil {
		return SendServiceError(c, err)
	}

	return respond(c, http.StatusOK, dto.NewTotalResponse(year, month, total), "")
}

// SaveLiability creates a liability, or replaces the one named by the body's id
// @Router /liabilities [post]
func (h *LineItemHandler) SaveLiability(c echo.Context) error {
	req, amount, err := bindLineItem(c)
	if req == nil {
		return err
	}

	liability, err := h.liabilityService.Save(c.Request().Context(), req.ID, req.Year, req.Month, amount, req.Comment)
	if err != nil {
		return SendServiceError(c, err)
	}

	status := http.StatusOK
	if req.ID == 0 {
		status = http.StatusCreated
	}
	return respond(c, status, dto.NewLiabilityResponse(liability), "Liability saved successfully")
}

// DeleteLiability removes a liability
// @Router /liabilities/{id} [delete]
func (h *LineItemHandler) DeleteLiability(c echo.Context) error {
	id, err := getIDParam(c)
	if err != nil {
		return sendParamError(c, err)
	}

	if err := h.liabilityService.Delete(c.Request().Context(), id); err != nil {
		return SendServiceError(c, err)
	}

	return respond(c, http.StatusOK, nil, "Liability deleted successfully")
}
