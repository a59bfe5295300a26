package gateway

import (
	"context"

	"github.com/fundlink/backoffice/internal/pkg/models"
	"github.com/fundlink/backoffice/internal/pkg/nsq"
)

const topicTransactionCreated = "transactions.created"

// TransactionGW publishes transaction events to NSQ
type TransactionGW struct {
	cfg      *models.Config
	producer *nsq.Producer
}

// NewTransactionGW creates a new transaction gateway
func NewTransactionGW(cfg *models.Config, producer *nsq.Producer) *TransactionGW {
	return &TransactionGW{
		cfg:      cfg,
		producer: producer,
	}
}

// PublishTransactionCreated emits an event for a persisted transaction
func (g *TransactionGW) PublishTransactionCreated(_ context.Context, event *models.TransactionEvent) error {
	return g.producer.Publish(topicTransactionCreated, event)
}
