package transactions

import "errors"

// Precondition errors surfaced by the transaction workflow. Handlers
// classify them with errors.Is; the wrapped message carries the fund and
// customer names the contract requires.
var (
	ErrFundNotFound         = errors.New("fund does not exist")
	ErrCustomerNotFound     = errors.New("customer does not exist")
	ErrAmountBelowMinimum   = errors.New("amount below fund minimum")
	ErrInsufficientBalance  = errors.New("insufficient balance")
	ErrDuplicateLinkage     = errors.New("linkage already exists")
	ErrLinkageNotFound      = errors.New("linkage does not exist")
	ErrInvalidOperationType = errors.New("invalid operation type")
	ErrInvalidAmount        = errors.New("amount must be positive")
)
