package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/fundlink/backoffice/internal/pkg/database"
	"github.com/fundlink/backoffice/internal/pkg/models"
	"github.com/jmoiron/sqlx"
)

// TransactionRepo persists the transaction audit log in PostgreSQL
type TransactionRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewTransactionRepo creates a new transaction repository
func NewTransactionRepo(cfg *models.Config, client *database.PostgresClient) *TransactionRepo {
	return &TransactionRepo{
		cfg: cfg,
		db:  client.GetDB(),
	}
}

// Create appends a transaction record. Records are never updated afterwards.
func (r *TransactionRepo) Create(ctx context.Context, tx *models.Transaction) error {
	query := `
		INSERT INTO transactions (
			transaction_id, customer_id, fund_id, fund_name,
			operation_type, amount, timestamp, notification_type
		) VALUES (
			:transaction_id, :customer_id, :fund_id, :fund_name,
			:operation_type, :amount, :timestamp, :notification_type
		)`

	_, err := r.db.NamedExecContext(ctx, query, tx)
	return err
}

// GetByID fetches one transaction, returning (nil, nil) when absent
func (r *TransactionRepo) GetByID(ctx context.Context, transactionID string) (*models.Transaction, error) {
	var tx models.Transaction
	err := r.db.GetContext(ctx, &tx,
		`SELECT * FROM transactions WHERE transaction_id = $1`, transactionID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &tx, nil
}

// GetAll returns the full history, newest first
func (r *TransactionRepo) GetAll(ctx context.Context) ([]*models.Transaction, error) {
	var txs []*models.Transaction
	err := r.db.SelectContext(ctx, &txs,
		`SELECT * FROM transactions ORDER BY timestamp DESC`)
	if err != nil {
		return nil, err
	}
	return txs, nil
}

// GetByFundID returns the history for one fund, newest first
func (r *TransactionRepo) GetByFundID(ctx context.Context, fundID int) ([]*models.Transaction, error) {
	var txs []*models.Transaction
	err := r.db.SelectContext(ctx, &txs,
		`SELECT * FROM transactions WHERE fund_id = $1 ORDER BY timestamp DESC`, fundID)
	if err != nil {
		return nil, err
	}
	return txs, nil
}

// GetByCustomerID returns the history for one customer, newest first
func (r *TransactionRepo) GetByCustomerID(ctx context.Context, customerID string) ([]*models.Transaction, error) {
	var txs []*models.Transaction
	err := r.db.SelectContext(ctx, &txs,
		`SELECT * FROM transactions WHERE customer_id = $1 ORDER BY timestamp DESC`, customerID)
	if err != nil {
		return nil, err
	}
	return txs, nil
}

// Delete removes one audit record
func (r *TransactionRepo) Delete(ctx context.Context, transactionID string) error {
	_, err := r.db.ExecContext(ctx,
		`DELETE FROM transactions WHERE transaction_id = $1`, transactionID)
	return err
}
