package http

import (
	"net/http"

	"github.com/fundlink/backoffice/internal/pkg/logger"
	"github.com/fundlink/backoffice/internal/pkg/models"
	"github.com/fundlink/backoffice/internal/utils"
	"github.com/fundlink/backoffice/services/customers"
	"github.com/labstack/echo/v4"
)

// CustomerHandler handles HTTP requests for customer operations
type CustomerHandler struct {
	customerUC customers.CustomerUC
}

// NewCustomerHandler creates a new customer handler
func NewCustomerHandler(customerUC customers.CustomerUC) *CustomerHandler {
	return &CustomerHandler{customerUC: customerUC}
}

// CreateCustomer handles customer creation requests
func (h *CustomerHandler) CreateCustomer(c echo.Context) error {
	var customer models.Customer
	if err := c.Bind(&customer); err != nil {
		logger.Warn("Invalid request payload for customer creation", logger.Err(err))
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	if err := h.customerUC.CreateCustomer(c.Request().Context(), &customer); err != nil {
		logger.Error("Failed to create customer",
			logger.Err(err),
			logger.String("customer_id", customer.IdentificationNumber),
		)
		return utils.InternalServerErrorResponse(c, "Failed to create customer")
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Customer created successfully", customer)
}

// GetCustomerByID handles customer retrieval requests
func (h *CustomerHandler) GetCustomerByID(c echo.Context) error {
	customerID := c.Param("customerId")
	if customerID == "" {
		return utils.BadRequestResponse(c, "Invalid customer ID")
	}

	customer, err := h.customerUC.GetCustomerByID(c.Request().Context(), customerID)
	if err != nil {
		logger.Error("Failed to retrieve customer", logger.Err(err), logger.String("customer_id", customerID))
		return utils.InternalServerErrorResponse(c, "Failed to retrieve customer")
	}
	if customer == nil {
		return utils.NotFoundResponse(c, "Customer not found")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Customer retrieved successfully", customer)
}

// UpdateCustomer handles customer update requests
func (h *CustomerHandler) UpdateCustomer(c echo.Context) error {
	customerID := c.Param("customerId")
	if customerID == "" {
		return utils.BadRequestResponse(c, "Invalid customer ID")
	}

	var customer models.Customer
	if err := c.Bind(&customer); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	customer.IdentificationNumber = customerID

	if err := h.customerUC.UpdateCustomer(c.Request().Context(), &customer); err != nil {
		logger.Error("Failed to update customer", logger.Err(err), logger.String("customer_id", customerID))
		return utils.InternalServerErrorResponse(c, "Failed to update customer")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Customer updated successfully", customer)
}

// DeleteCustomer handles customer deletion requests
func (h *CustomerHandler) DeleteCustomer(c echo.Context) error {
	customerID := c.Param("customerId")
	if customerID == "" {
		return utils.BadRequestResponse(c, "Invalid customer ID")
	}

	if err := h.customerUC.DeleteCustomer(c.Request().Context(), customerID); err != nil {
		logger.Error("Failed to delete customer", logger.Err(err), logger.String("customer_id", customerID))
		return utils.InternalServerErrorResponse(c, "Failed to delete customer")
	}

	return c.NoContent(http.StatusNoContent)
}
