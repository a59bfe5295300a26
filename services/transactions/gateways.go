package transactions

import (
	"context"

	"github.com/fundlink/backoffice/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/fundlink/backoffice/services/transactions TransactionGW

// TransactionGW publishes transaction events for downstream consumers
// (reporting, reconciliation). Publication is best-effort; the workflow
// never rolls back on a publish failure.
type TransactionGW interface {
	PublishTransactionCreated(ctx context.Context, event *models.TransactionEvent) error
}
