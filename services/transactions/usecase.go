package transactions

import (
	"context"

	"github.com/fundlink/backoffice/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/fundlink/backoffice/services/transactions TransactionUC

// TransactionUC represents the transaction usecase interface. CreateTransaction
// runs the full workflow: cross-entity validation, linkage and balance
// mutation, audit persistence and best-effort notification. The remaining
// operations are pass-through queries against the audit store.
type TransactionUC interface {
	CreateTransaction(ctx context.Context, tx *models.Transaction) error
	GetTransactionByID(ctx context.Context, transactionID string) (*models.Transaction, error)
	GetAllTransactions(ctx context.Context) ([]*models.Transaction, error)
	GetTransactionsByFundID(ctx context.Context, fundID int) ([]*models.Transaction, error)
	GetTransactionsByCustomerID(ctx context.Context, customerID string) ([]*models.Transaction, error)
	DeleteTransaction(ctx context.Context, transactionID string) error
}
