package models

import (
	"github.com/shopspring/decimal"
)

// Customer represents a customer of the fund back office.
// IdentificationNumber is the unique business key; AvailableBalance is only
// mutated by the transaction workflow or an administrative update and must
// never go negative.
type Customer struct {
	IdentificationNumber string          `json:"identification_number" db:"identification_number"`
	Name                 string          `json:"name" db:"name"`
	AvailableBalance     decimal.Decimal `json:"available_balance" db:"available_balance"`
	Email                string          `json:"email" db:"email"`
	Phone                string          `json:"phone" db:"phone"`
}
