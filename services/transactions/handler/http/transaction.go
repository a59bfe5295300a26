package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/fundlink/backoffice/internal/pkg/logger"
	"github.com/fundlink/backoffice/internal/pkg/models"
	"github.com/fundlink/backoffice/internal/utils"
	"github.com/fundlink/backoffice/services/transactions"
	"github.com/labstack/echo/v4"
)

// TransactionHandler handles HTTP requests for transaction operations
type TransactionHandler struct {
	transactionUC transactions.TransactionUC
}

// NewTransactionHandler creates a new transaction handler
func NewTransactionHandler(transactionUC transactions.TransactionUC) *TransactionHandler {
	return &TransactionHandler{transactionUC: transactionUC}
}

// CreateTransaction runs the transaction workflow for an OPENING or CLOSURE
// request. Precondition failures map to 404 (missing entities) or 422
// (business rule violations); malformed requests map to 400.
func (h *TransactionHandler) CreateTransaction(c echo.Context) error {
	var tx models.Transaction
	if err := c.Bind(&tx); err != nil {
		logger.Warn("Invalid request payload for transaction creation", logger.Err(err))
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	if err := h.transactionUC.CreateTransaction(c.Request().Context(), &tx); err != nil {
		return h.classifyWorkflowError(c, &tx, err)
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Transaction created successfully", tx)
}

func (h *TransactionHandler) classifyWorkflowError(c echo.Context, tx *models.Transaction, err error) error {
	switch {
	case errors.Is(err, transactions.ErrFundNotFound),
		errors.Is(err, transactions.ErrCustomerNotFound):
		return utils.NotFoundResponse(c, err.Error())
	case errors.Is(err, transactions.ErrAmountBelowMinimum),
		errors.Is(err, transactions.ErrInsufficientBalance),
		errors.Is(err, transactions.ErrDuplicateLinkage),
		errors.Is(err, transactions.ErrLinkageNotFound):
		return utils.UnprocessableEntityResponse(c, err.Error())
	case errors.Is(err, transactions.ErrInvalidOperationType),
		errors.Is(err, transactions.ErrInvalidAmount):
		return utils.BadRequestResponse(c, err.Error())
	}

	logger.Error("Failed to create transaction",
		logger.Err(err),
		logger.String("customer_id", tx.CustomerID),
		logger.Int("fund_id", tx.FundID),
	)
	return utils.InternalServerErrorResponse(c, "Failed to create transaction")
}

// GetTransactionByID handles transaction retrieval requests
func (h *TransactionHandler) GetTransactionByID(c echo.Context) error {
	transactionID := c.Param("transactionId")

	tx, err := h.transactionUC.GetTransactionByID(c.Request().Context(), transactionID)
	if err != nil {
		logger.Error("Failed to retrieve transaction",
			logger.Err(err),
			logger.String("transaction_id", transactionID),
		)
		return utils.InternalServerErrorResponse(c, "Failed to retrieve transaction")
	}
	if tx == nil {
		return utils.NotFoundResponse(c, "Transaction not found")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Transaction retrieved successfully", tx)
}

// GetAllTransactions handles listing requests
func (h *TransactionHandler) GetAllTransactions(c echo.Context) error {
	result, err := h.transactionUC.GetAllTransactions(c.Request().Context())
	if err != nil {
		logger.Error("Failed to retrieve transactions", logger.Err(err))
		return utils.InternalServerErrorResponse(c, "Failed to retrieve transactions")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Transactions retrieved successfully", result)
}

// GetTransactionsByFundID handles fund history requests
func (h *TransactionHandler) GetTransactionsByFundID(c echo.Context) error {
	fundID, err := strconv.Atoi(c.Param("fundId"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid fund ID")
	}

	result, err := h.transactionUC.GetTransactionsByFundID(c.Request().Context(), fundID)
	if err != nil {
		logger.Error("Failed to retrieve fund transactions", logger.Err(err), logger.Int("fund_id", fundID))
		return utils.InternalServerErrorResponse(c, "Failed to retrieve transactions")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Transactions retrieved successfully", result)
}

// GetTransactionsByCustomerID handles customer history requests
func (h *TransactionHandler) GetTransactionsByCustomerID(c echo.Context) error {
	customerID := c.Param("customerId")

	result, err := h.transactionUC.GetTransactionsByCustomerID(c.Request().Context(), customerID)
	if err != nil {
		logger.Error("Failed to retrieve customer transactions",
			logger.Err(err),
			logger.String("customer_id", customerID),
		)
		return utils.InternalServerErrorResponse(c, "Failed to retrieve transactions")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Transactions retrieved successfully", result)
}

// DeleteTransaction handles audit record deletion requests
func (h *TransactionHandler) DeleteTransaction(c echo.Context) error {
	transactionID := c.Param("transactionId")

	if err := h.transactionUC.DeleteTransaction(c.Request().Context(), transactionID); err != nil {
		logger.Error("Failed to delete transaction",
			logger.Err(err),
			logger.String("transaction_id", transactionID),
		)
		return utils.InternalServerErrorResponse(c, "Failed to delete transaction")
	}

	return c.NoContent(http.StatusNoContent)
}
