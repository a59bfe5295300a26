package handler

import (
	"github.com/fundlink/backoffice/services/customers/handler/http"
	"github.com/labstack/echo/v4"
)

// Handler coordinates the customer service HTTP handlers
type Handler struct {
	customerHandler *http.CustomerHandler
}

// NewHandler creates and initializes the customer handlers
func NewHandler(customerHandler *http.CustomerHandler) *Handler {
	return &Handler{customerHandler: customerHandler}
}

// RegisterRoutes registers the customer endpoints
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	group := e.Group("/api/customers")
	group.POST("", h.customerHandler.CreateCustomer)
	group.GET("/:customerId", h.customerHandler.GetCustomerByID)
	group.PUT("/:customerId", h.customerHandler.UpdateCustomer)
	group.DELETE("/:customerId", h.customerHandler.DeleteCustomer)
}
