package http

import (
	"net/http"
	"strconv"

	"github.com/fundlink/backoffice/internal/pkg/logger"
	"github.com/fundlink/backoffice/internal/pkg/models"
	"github.com/fundlink/backoffice/internal/utils"
	"github.com/fundlink/backoffice/services/linkages"
	"github.com/labstack/echo/v4"
)

// LinkageHandler handles HTTP requests for active linkage operations
type LinkageHandler struct {
	linkageUC linkages.LinkageUC
}

// NewLinkageHandler creates a new linkage handler
func NewLinkageHandler(linkageUC linkages.LinkageUC) *LinkageHandler {
	return &LinkageHandler{linkageUC: linkageUC}
}

// CreateLinkage handles linkage creation requests
func (h *LinkageHandler) CreateLinkage(c echo.Context) error {
	var linkage models.ActiveLinkage
	if err := c.Bind(&linkage); err != nil {
		logger.Warn("Invalid request payload for linkage creation", logger.Err(err))
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	if err := h.linkageUC.CreateLinkage(c.Request().Context(), &linkage); err != nil {
		logger.Error("Failed to create linkage",
			logger.Err(err),
			logger.String("customer_id", linkage.CustomerID),
			logger.Int("fund_id", linkage.FundID),
		)
		return utils.InternalServerErrorResponse(c, "Failed to create linkage")
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Linkage created successfully", linkage)
}

// GetLinkageByKey handles retrieval of a single linkage
func (h *LinkageHandler) GetLinkageByKey(c echo.Context) error {
	customerID := c.Param("customerId")
	fundID, err := strconv.Atoi(c.Param("fundId"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid fund ID")
	}

	linkage, err := h.linkageUC.GetLinkageByKey(c.Request().Context(), customerID, fundID)
	if err != nil {
		logger.Error("Failed to retrieve linkage", logger.Err(err),
			logger.String("customer_id", customerID), logger.Int("fund_id", fundID))
		return utils.InternalServerErrorResponse(c, "Failed to retrieve linkage")
	}
	if linkage == nil {
		return utils.NotFoundResponse(c, "Linkage not found")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Linkage retrieved successfully", linkage)
}

// GetLinkagesByCustomer handles listing a customer's open positions
func (h *LinkageHandler) GetLinkagesByCustomer(c echo.Context) error {
	customerID := c.Param("customerId")
	if customerID == "" {
		return utils.BadRequestResponse(c, "Invalid customer ID")
	}

	result, err := h.linkageUC.GetLinkagesByCustomer(c.Request().Context(), customerID)
	if err != nil {
		logger.Error("Failed to retrieve linkages", logger.Err(err), logger.String("customer_id", customerID))
		return utils.InternalServerErrorResponse(c, "Failed to retrieve linkages")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Linkages retrieved successfully", result)
}

// GetLinkagesByCategory handles listing a customer's positions in a category
func (h *LinkageHandler) GetLinkagesByCategory(c echo.Context) error {
	customerID := c.Param("customerId")
	category := c.Param("category")

	result, err := h.linkageUC.GetLinkagesByCategory(c.Request().Context(), customerID, category)
	if err != nil {
		logger.Error("Failed to retrieve linkages by category", logger.Err(err),
			logger.String("customer_id", customerID), logger.String("category", category))
		return utils.InternalServerErrorResponse(c, "Failed to retrieve linkages")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Linkages retrieved successfully", result)
}

// DeleteLinkage handles linkage deletion requests
func (h *LinkageHandler) DeleteLinkage(c echo.Context) error {
	customerID := c.Param("customerId")
	fundID, err := strconv.Atoi(c.Param("fundId"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid fund ID")
	}

	if err := h.linkageUC.DeleteLinkage(c.Request().Context(), customerID, fundID); err != nil {
		logger.Error("Failed to delete linkage", logger.Err(err),
			logger.String("customer_id", customerID), logger.Int("fund_id", fundID))
		return utils.InternalServerErrorResponse(c, "Failed to delete linkage")
	}

	return c.NoContent(http.StatusNoContent)
}
