package models

import (
	"github.com/shopspring/decimal"
)

// Fund represents an investment fund definition
type Fund struct {
	ID            int             `json:"id" db:"id"`
	Name          string          `json:"name" db:"name"`
	MinimumAmount decimal.Decimal `json:"minimum_amount" db:"minimum_amount"`
	Category      string          `json:"category" db:"category"` // Example: "FPV" or "FIC"
}
