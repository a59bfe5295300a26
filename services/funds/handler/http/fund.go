package http

import (
	"net/http"
	"strconv"

	"github.com/fundlink/backoffice/internal/pkg/logger"
	"github.com/fundlink/backoffice/internal/pkg/models"
	"github.com/fundlink/backoffice/internal/utils"
	"github.com/fundlink/backoffice/services/funds"
	"github.com/labstack/echo/v4"
)

// FundHandler handles HTTP requests for fund operations
type FundHandler struct {
	fundUC funds.FundUC
}

// NewFundHandler creates a new fund handler
func NewFundHandler(fundUC funds.FundUC) *FundHandler {
	return &FundHandler{fundUC: fundUC}
}

// CreateFund handles fund creation requests
func (h *FundHandler) CreateFund(c echo.Context) error {
	var fund models.Fund
	if err := c.Bind(&fund); err != nil {
		logger.Warn("Invalid request payload for fund creation", logger.Err(err))
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	if err := h.fundUC.CreateFund(c.Request().Context(), &fund); err != nil {
		logger.Error("Failed to create fund",
			logger.Err(err),
			logger.Int("fund_id", fund.ID),
		)
		return utils.InternalServerErrorResponse(c, "Failed to create fund")
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Fund created successfully", fund)
}

// GetFundByID handles fund retrieval requests
func (h *FundHandler) GetFundByID(c echo.Context) error {
	fundID, err := strconv.Atoi(c.Param("fundId"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid fund ID")
	}

	fund, err := h.fundUC.GetFundByID(c.Request().Context(), fundID)
	if err != nil {
		logger.Error("Failed to retrieve fund", logger.Err(err), logger.Int("fund_id", fundID))
		return utils.InternalServerErrorResponse(c, "Failed to retrieve fund")
	}
	if fund == nil {
		return utils.NotFoundResponse(c, "Fund not found")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Fund retrieved successfully", fund)
}

// GetAllFunds handles listing requests
func (h *FundHandler) GetAllFunds(c echo.Context) error {
	result, err := h.fundUC.GetAllFunds(c.Request().Context())
	if err != nil {
		logger.Error("Failed to retrieve funds", logger.Err(err))
		return utils.InternalServerErrorResponse(c, "Failed to retrieve funds")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Funds retrieved successfully", result)
}

// UpdateFund handles fund update requests
func (h *FundHandler) UpdateFund(c echo.Context) error {
	fundID, err := strconv.Atoi(c.Param("fundId"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid fund ID")
	}

	var fund models.Fund
	if err := c.Bind(&fund); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	fund.ID = fundID

	if err := h.fundUC.UpdateFund(c.Request().Context(), &fund); err != nil {
		logger.Error("Failed to update fund", logger.Err(err), logger.Int("fund_id", fundID))
		return utils.InternalServerErrorResponse(c, "Failed to update fund")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Fund updated successfully", fund)
}

// DeleteFund handles fund deletion requests
func (h *FundHandler) DeleteFund(c echo.Context) error {
	fundID, err := strconv.Atoi(c.Param("fundId"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid fund ID")
	}

	if err := h.fundUC.DeleteFund(c.Request().Context(), fundID); err != nil {
		logger.Error("Failed to delete fund", logger.Err(err), logger.Int("fund_id", fundID))
		return utils.InternalServerErrorResponse(c, "Failed to delete fund")
	}

	return c.NoContent(http.StatusNoContent)
}
