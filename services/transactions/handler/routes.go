package handler

import (
	"github.com/fundlink/backoffice/services/transactions/handler/http"
	"github.com/labstack/echo/v4"
)

// Handler coordinates the transaction service HTTP handlers
type Handler struct {
	transactionHandler *http.TransactionHandler
}

// NewHandler creates and initializes the transaction handlers
func NewHandler(transactionHandler *http.TransactionHandler) *Handler {
	return &Handler{transactionHandler: transactionHandler}
}

// RegisterRoutes registers the transaction endpoints
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	group := e.Group("/api/transactions")
	group.POST("", h.transactionHandler.CreateTransaction)
	group.GET("", h.transactionHandler.GetAllTransactions)
	group.GET("/:transactionId", h.transactionHandler.GetTransactionByID)
	group.GET("/fund/:fundId", h.transactionHandler.GetTransactionsByFundID)
	group.GET("/customer/:customerId", h.transactionHandler.GetTransactionsByCustomerID)
	group.DELETE("/:transactionId", h.transactionHandler.DeleteTransaction)
}
