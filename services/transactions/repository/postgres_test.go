package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fundlink/backoffice/internal/pkg/models"
)

func setupTransactionRepoTest(t *testing.T) (*TransactionRepo, sqlmock.Sqlmock, func()) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	sqlxDB := sqlx.NewDb(mockDB, "sqlmock")

	repo := &TransactionRepo{
		cfg: &models.Config{},
		db:  sqlxDB,
	}

	cleanup := func() {
		sqlxDB.Close()
	}

	return repo, mock, cleanup
}

func transactionColumns() []string {
	return []string{
		"transaction_id", "customer_id", "fund_id", "fund_name",
		"operation_type", "amount", "timestamp", "notification_type",
	}
}

func TestCreateTransaction(t *testing.T) {
	repo, mock, cleanup := setupTransactionRepoTest(t)
	defer cleanup()

	tx := &models.Transaction{
		TransactionID:    "7a1d2e3f-0000-4000-8000-000000000001",
		CustomerID:       "CUST-001",
		FundID:           3,
		FundName:         "DEUDAPRIVADA",
		OperationType:    models.OperationOpening,
		Amount:           decimal.NewFromInt(75000),
		Timestamp:        time.Now().UTC(),
		NotificationType: models.ChannelEmail,
	}

	mock.ExpectExec("^INSERT INTO transactions").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Create(context.Background(), tx)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateTransactionError(t *testing.T) {
	repo, mock, cleanup := setupTransactionRepoTest(t)
	defer cleanup()

	mock.ExpectExec("^INSERT INTO transactions").
		WillReturnError(errors.New("connection refused"))

	err := repo.Create(context.Background(), &models.Transaction{
		TransactionID: "7a1d2e3f-0000-4000-8000-000000000002",
		OperationType: models.OperationClosure,
		Amount:        decimal.NewFromInt(100),
	})
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetTransactionByID(t *testing.T) {
	testCases := []struct {
		name          string
		transactionID string
		mockSetup     func(mock sqlmock.Sqlmock)
		assertFunc    func(t *testing.T, tx *models.Transaction, err error)
	}{
		{
			name:          "Success",
			transactionID: "7a1d2e3f-0000-4000-8000-000000000003",
			mockSetup: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows(transactionColumns()).
					AddRow(
						"7a1d2e3f-0000-4000-8000-000000000003", "CUST-001", 1, "FPV_BTG_PACTUAL_RECAUDADORA",
						"OPENING", "75000", time.Now(), "EMAIL",
					)
				mock.ExpectQuery("^SELECT (.+) FROM transactions WHERE transaction_id").
					WithArgs("7a1d2e3f-0000-4000-8000-000000000003").
					WillReturnRows(rows)
			},
			assertFunc: func(t *testing.T, tx *models.Transaction, err error) {
				assert.NoError(t, err)
				require.NotNil(t, tx)
				assert.Equal(t, "CUST-001", tx.CustomerID)
				assert.Equal(t, 1, tx.FundID)
				assert.Equal(t, models.OperationOpening, tx.OperationType)
				assert.True(t, tx.Amount.Equal(decimal.NewFromInt(75000)))
			},
		},
		{
			name:          "Not Found",
			transactionID: "missing",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("^SELECT (.+) FROM transactions WHERE transaction_id").
					WithArgs("missing").
					WillReturnRows(sqlmock.NewRows(transactionColumns()))
			},
			assertFunc: func(t *testing.T, tx *models.Transaction, err error) {
				assert.NoError(t, err)
				assert.Nil(t, tx)
			},
		},
		{
			name:          "Database Error",
			transactionID: "any",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("^SELECT (.+) FROM transactions WHERE transaction_id").
					WithArgs("any").
					WillReturnError(errors.New("connection refused"))
			},
			assertFunc: func(t *testing.T, tx *models.Transaction, err error) {
				assert.Error(t, err)
				assert.Nil(t, tx)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo, mock, cleanup := setupTransactionRepoTest(t)
			defer cleanup()

			tc.mockSetup(mock)

			tx, err := repo.GetByID(context.Background(), tc.transactionID)
			tc.assertFunc(t, tx, err)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestGetAllTransactions(t *testing.T) {
	repo, mock, cleanup := setupTransactionRepoTest(t)
	defer cleanup()

	rows := sqlmock.NewRows(transactionColumns()).
		AddRow("id-1", "CUST-001", 1, "FPV_BTG_PACTUAL_RECAUDADORA", "OPENING", "75000", time.Now(), "EMAIL").
		AddRow("id-2", "CUST-002", 2, "FPV_BTG_PACTUAL_ECOPETROL", "CLOSURE", "125000", time.Now(), "SMS")

	mock.ExpectQuery("^SELECT (.+) FROM transactions ORDER BY timestamp DESC").
		WillReturnRows(rows)

	txs, err := repo.GetAll(context.Background())
	assert.NoError(t, err)
	require.Len(t, txs, 2)
	assert.Equal(t, "id-1", txs[0].TransactionID)
	assert.Equal(t, models.OperationClosure, txs[1].OperationType)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetTransactionsByFundID(t *testing.T) {
	repo, mock, cleanup := setupTransactionRepoTest(t)
	defer cleanup()

	rows := sqlmock.NewRows(transactionColumns()).
		AddRow("id-1", "CUST-001", 3, "DEUDAPRIVADA", "OPENING", "50000", time.Now(), "")

	mock.ExpectQuery("^SELECT (.+) FROM transactions WHERE fund_id").
		WithArgs(3).
		WillReturnRows(rows)

	txs, err := repo.GetByFundID(context.Background(), 3)
	assert.NoError(t, err)
	require.Len(t, txs, 1)
	assert.Equal(t, 3, txs[0].FundID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetTransactionsByCustomerID(t *testing.T) {
	repo, mock, cleanup := setupTransactionRepoTest(t)
	defer cleanup()

	rows := sqlmock.NewRows(transactionColumns()).
		AddRow("id-1", "CUST-001", 1, "FPV_BTG_PACTUAL_RECAUDADORA", "OPENING", "75000", time.Now(), "EMAIL").
		AddRow("id-2", "CUST-001", 4, "FDO-ACCIONES", "CLOSURE", "250000", time.Now(), "EMAIL")

	mock.ExpectQuery("^SELECT (.+) FROM transactions WHERE customer_id").
		WithArgs("CUST-001").
		WillReturnRows(rows)

	txs, err := repo.GetByCustomerID(context.Background(), "CUST-001")
	assert.NoError(t, err)
	require.Len(t, txs, 2)
	for _, tx := range txs {
		assert.Equal(t, "CUST-001", tx.CustomerID)
	}
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteTransaction(t *testing.T) {
	repo, mock, cleanup := setupTransactionRepoTest(t)
	defer cleanup()

	mock.ExpectExec("^DELETE FROM transactions WHERE transaction_id").
		WithArgs("id-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Delete(context.Background(), "id-1")
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
