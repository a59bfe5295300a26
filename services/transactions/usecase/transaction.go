package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/fundlink/backoffice/internal/pkg/lock"
	"github.com/fundlink/backoffice/internal/pkg/logger"
	"github.com/fundlink/backoffice/internal/pkg/models"
	"github.com/fundlink/backoffice/services/customers"
	"github.com/fundlink/backoffice/services/funds"
	"github.com/fundlink/backoffice/services/linkages"
	"github.com/fundlink/backoffice/services/notifications"
	"github.com/fundlink/backoffice/services/transactions"
	"github.com/google/uuid"
)

// TransactionUC implements the transactions.TransactionUC interface
type TransactionUC struct {
	cfg          *models.Config
	repo         transactions.TransactionRepo
	fundRepo     funds.FundRepo
	customerRepo customers.CustomerRepo
	linkageRepo  linkages.LinkageRepo
	notifier     notifications.NotificationGW
	gateway      transactions.TransactionGW
	locks        *lock.KeyedMutex
}

// NewTransactionUC creates a new transaction use case. gateway may be nil
// when event publication is disabled.
func NewTransactionUC(
	cfg *models.Config,
	repo transactions.TransactionRepo,
	fundRepo funds.FundRepo,
	customerRepo customers.CustomerRepo,
	linkageRepo linkages.LinkageRepo,
	notifier notifications.NotificationGW,
	gateway transactions.TransactionGW,
) transactions.TransactionUC {
	return &TransactionUC{
		cfg:          cfg,
		repo:         repo,
		fundRepo:     fundRepo,
		customerRepo: customerRepo,
		linkageRepo:  linkageRepo,
		notifier:     notifier,
		gateway:      gateway,
		locks:        lock.NewKeyedMutex(),
	}
}

// CreateTransaction runs the transaction workflow. Validation is fail-fast:
// the first failing check aborts with no mutation. On success the linkage
// and balance mutations are applied before the audit record is written, so
// a persisted transaction is proof the mutation happened. Notification and
// event publication are best-effort and never roll anything back.
//
// The read-validate-write sequence is serialized per (customer, fund) pair;
// the linkage repository's conditional create backs this up at the store
// level.
func (uc *TransactionUC) CreateTransaction(ctx context.Context, tx *models.Transaction) error {
	if !tx.OperationType.Valid() {
		return fmt.Errorf("operation type %q is not supported: %w", string(tx.OperationType), transactions.ErrInvalidOperationType)
	}
	if !tx.Amount.IsPositive() {
		return fmt.Errorf("the amount %s is not positive: %w", tx.Amount, transactions.ErrInvalidAmount)
	}

	lockKey := fmt.Sprintf("%s:%d", tx.CustomerID, tx.FundID)
	uc.locks.Lock(lockKey)
	defer uc.locks.Unlock(lockKey)

	fund, err := uc.fundRepo.GetByID(ctx, tx.FundID)
	if err != nil {
		return fmt.Errorf("failed to look up fund: %w", err)
	}
	if fund == nil {
		return fmt.Errorf("the fund with ID %d does not exist: %w", tx.FundID, transactions.ErrFundNotFound)
	}

	// Snapshot the fund name; later fund edits must not rewrite history
	tx.FundName = fund.Name

	customer, err := uc.customerRepo.GetByID(ctx, tx.CustomerID)
	if err != nil {
		return fmt.Errorf("failed to look up customer: %w", err)
	}
	if customer == nil {
		return fmt.Errorf("the customer with ID %s does not exist: %w", tx.CustomerID, transactions.ErrCustomerNotFound)
	}

	if tx.Amount.LessThan(fund.MinimumAmount) {
		return fmt.Errorf("the amount must be greater than or equal to the minimum required for the fund %s: %w", fund.Name, transactions.ErrAmountBelowMinimum)
	}

	switch tx.OperationType {
	case models.OperationOpening:
		if customer.AvailableBalance.LessThan(tx.Amount) {
			return fmt.Errorf("insufficient balance to link to the fund %s: %w", fund.Name, transactions.ErrInsufficientBalance)
		}

		existing, err := uc.linkageRepo.GetByKey(ctx, tx.CustomerID, tx.FundID)
		if err != nil {
			return fmt.Errorf("failed to look up linkage: %w", err)
		}
		if existing != nil {
			return fmt.Errorf("the fund %s already has an opening for the customer %s: %w", fund.Name, customer.Name, transactions.ErrDuplicateLinkage)
		}

		created, err := uc.linkageRepo.CreateIfAbsent(ctx, &models.ActiveLinkage{
			FundID:       tx.FundID,
			FundName:     fund.Name,
			CustomerID:   tx.CustomerID,
			LinkedAmount: tx.Amount,
			LinkageDate:  time.Now().UTC(),
			Category:     fund.Category,
		})
		if err != nil {
			return fmt.Errorf("failed to create linkage: %w", err)
		}
		if !created {
			return fmt.Errorf("the fund %s already has an opening for the customer %s: %w", fund.Name, customer.Name, transactions.ErrDuplicateLinkage)
		}

		customer.AvailableBalance = customer.AvailableBalance.Sub(tx.Amount)

	case models.OperationClosure:
		existing, err := uc.linkageRepo.GetByKey(ctx, tx.CustomerID, tx.FundID)
		if err != nil {
			return fmt.Errorf("failed to look up linkage: %w", err)
		}
		if existing == nil {
			return fmt.Errorf("the fund %s does not have an opening for the customer %s: %w", fund.Name, customer.Name, transactions.ErrLinkageNotFound)
		}

		if err := uc.linkageRepo.Delete(ctx, tx.CustomerID, tx.FundID); err != nil {
			return fmt.Errorf("failed to delete linkage: %w", err)
		}

		// The refund is always the originally linked amount; the request
		// amount on a closure is informational only
		customer.AvailableBalance = customer.AvailableBalance.Add(existing.LinkedAmount)
	}

	if err := uc.customerRepo.Update(ctx, customer); err != nil {
		return fmt.Errorf("failed to update customer balance: %w", err)
	}

	tx.TransactionID = uuid.New().String()
	tx.Timestamp = time.Now().UTC()

	if err := uc.repo.Create(ctx, tx); err != nil {
		return fmt.Errorf("failed to create transaction: %w", err)
	}

	uc.notify(ctx, tx, fund, customer)
	uc.publishEvent(ctx, tx)

	return nil
}

// notify dispatches the success notification on the requested channel.
// Delivery failures are logged only; the transaction already committed.
func (uc *TransactionUC) notify(ctx context.Context, tx *models.Transaction, fund *models.Fund, customer *models.Customer) {
	message := fmt.Sprintf(
		"A transaction of type %s for an amount of %s has been made in the fund %s.",
		tx.OperationType, tx.Amount, fund.Name,
	)

	var (
		sent bool
		err  error
	)
	switch tx.NotificationType {
	case models.ChannelEmail:
		sent, err = uc.notifier.SendEmail(ctx, "Transaction Notification", message, customer.Email)
	case models.ChannelSMS:
		sent, err = uc.notifier.SendSMS(ctx, message, customer.Phone)
	default:
		return
	}

	if err != nil || !sent {
		logger.Warn("Transaction notification not delivered",
			logger.String("transaction_id", tx.TransactionID),
			logger.String("channel", string(tx.NotificationType)),
			logger.Err(err),
		)
	}
}

// publishEvent emits the transaction event when a gateway is configured
func (uc *TransactionUC) publishEvent(ctx context.Context, tx *models.Transaction) {
	if uc.gateway == nil {
		return
	}

	event := &models.TransactionEvent{
		TransactionID: tx.TransactionID,
		CustomerID:    tx.CustomerID,
		FundID:        tx.FundID,
		OperationType: tx.OperationType,
		Amount:        tx.Amount,
		Timestamp:     tx.Timestamp,
	}
	if err := uc.gateway.PublishTransactionCreated(ctx, event); err != nil {
		logger.Warn("Failed to publish transaction event",
			logger.String("transaction_id", tx.TransactionID),
			logger.Err(err),
		)
	}
}

// GetTransactionByID retrieves a transaction; (nil, nil) when absent
func (uc *TransactionUC) GetTransactionByID(ctx context.Context, transactionID string) (*models.Transaction, error) {
	return uc.repo.GetByID(ctx, transactionID)
}

// GetAllTransactions retrieves the full audit history
func (uc *TransactionUC) GetAllTransactions(ctx context.Context) ([]*models.Transaction, error) {
	return uc.repo.GetAll(ctx)
}

// GetTransactionsByFundID retrieves the history for one fund
func (uc *TransactionUC) GetTransactionsByFundID(ctx context.Context, fundID int) ([]*models.Transaction, error) {
	return uc.repo.GetByFundID(ctx, fundID)
}

// GetTransactionsByCustomerID retrieves the history for one customer
func (uc *TransactionUC) GetTransactionsByCustomerID(ctx context.Context, customerID string) ([]*models.Transaction, error) {
	return uc.repo.GetByCustomerID(ctx, customerID)
}

// DeleteTransaction removes an audit record (administrative surface)
func (uc *TransactionUC) DeleteTransaction(ctx context.Context, transactionID string) error {
	return uc.repo.Delete(ctx, transactionID)
}
