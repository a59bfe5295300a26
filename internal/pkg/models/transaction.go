package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// OperationType is the closed set of transaction operation types.
type OperationType string

const (
	// OperationOpening creates a linkage and debits the customer's balance
	OperationOpening OperationType = "OPENING"
	// OperationClosure removes a linkage and credits back its linked amount
	OperationClosure OperationType = "CLOSURE"
)

// Valid reports whether the operation type is a known member of the set.
func (o OperationType) Valid() bool {
	return o == OperationOpening || o == OperationClosure
}

// NotificationChannel identifies how the customer is notified of a
// successful transaction.
type NotificationChannel string

const (
	ChannelEmail NotificationChannel = "EMAIL"
	ChannelSMS   NotificationChannel = "SMS"
	ChannelNone  NotificationChannel = ""
)

// Transaction is the immutable audit record of an accepted workflow run.
// FundName is denormalized from the fund at transaction time.
type Transaction struct {
	TransactionID    string              `json:"transaction_id" db:"transaction_id"`
	CustomerID       string              `json:"customer_id" db:"customer_id"`
	FundID           int                 `json:"fund_id" db:"fund_id"`
	FundName         string              `json:"fund_name" db:"fund_name"`
	OperationType    OperationType       `json:"operation_type" db:"operation_type"`
	Amount           decimal.Decimal     `json:"amount" db:"amount"`
	Timestamp        time.Time           `json:"timestamp" db:"timestamp"`
	NotificationType NotificationChannel `json:"notification_type" db:"notification_type"`
}

// TransactionEvent is published to NSQ after a transaction is persisted.
type TransactionEvent struct {
	TransactionID string          `json:"transaction_id"`
	CustomerID    string          `json:"customer_id"`
	FundID        int             `json:"fund_id"`
	OperationType OperationType   `json:"operation_type"`
	Amount        decimal.Decimal `json:"amount"`
	Timestamp     time.Time       `json:"timestamp"`
}
