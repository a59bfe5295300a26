package database

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

const transactionsSchema = `
CREATE TABLE IF NOT EXISTS transactions (
	transaction_id    TEXT PRIMARY KEY,
	customer_id       TEXT NOT NULL,
	fund_id           INTEGER NOT NULL,
	fund_name         TEXT NOT NULL,
	operation_type    TEXT NOT NULL,
	amount            NUMERIC(20, 4) NOT NULL,
	timestamp         TIMESTAMPTZ NOT NULL,
	notification_type TEXT NOT NULL DEFAULT ''
);

CREATE INDEX IF NOT EXISTS idx_transactions_fund_id ON transactions (fund_id);
CREATE INDEX IF NOT EXISTS idx_transactions_customer_id ON transactions (customer_id);
`

// Migrate bootstraps the audit schema at startup so a fresh environment
// needs no manual table setup.
func Migrate(ctx context.Context, db *sqlx.DB) error {
	if _, err := db.ExecContext(ctx, transactionsSchema); err != nil {
		return fmt.Errorf("failed to create transactions table: %w", err)
	}
	return nil
}
