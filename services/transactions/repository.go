package transactions

import (
	"context"

	"github.com/fundlink/backoffice/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/fundlink/backoffice/services/transactions TransactionRepo

// TransactionRepo defines access to the append-only transaction audit log.
// GetByID returns (nil, nil) when no record exists for the given id.
type TransactionRepo interface {
	Create(ctx context.Context, tx *models.Transaction) error
	GetByID(ctx context.Context, transactionID string) (*models.Transaction, error)
	GetAll(ctx context.Context) ([]*models.Transaction, error)
	GetByFundID(ctx context.Context, fundID int) ([]*models.Transaction, error)
	GetByCustomerID(ctx context.Context, customerID string) ([]*models.Transaction, error)
	Delete(ctx context.Context, transactionID string) error
}
