package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// ActiveLinkage represents an open position tying a customer to a fund.
// At most one active linkage exists per (customer, fund) pair. FundName and
// Category are snapshots taken at opening time; later fund edits must not
// change them.
type ActiveLinkage struct {
	FundID       int             `json:"fund_id"`
	FundName     string          `json:"fund_name"`
	CustomerID   string          `json:"customer_id"`
	LinkedAmount decimal.Decimal `json:"linked_amount"`
	LinkageDate  time.Time       `json:"linkage_date"`
	Category     string          `json:"category"` // Example: "FPV" or "FIC"
}
