package models

import (
	"github.com/shopspring/decimal"
)

// Transaction represents a single signed monetary entry belonging to a user.
// Positive amounts are income, negative amounts are expenses.
type Transaction struct {
	ID        int64           `json:"id"`
	UserID    string          `json:"user_id"`
	Title     string          `json:"title"`
	Amount    decimal.Decimal `json:"amount"` // fixed at 2 decimal digits
	Category  string          `json:"category"`
	CreatedAt Date            `json:"created_at"` // assigned by storage, date precision only
}
