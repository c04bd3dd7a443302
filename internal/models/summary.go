package models

import "github.com/shopspring/decimal"

// Summary is the aggregate view of one user's ledger. Expenses is a
// non-positive sum, so Balance always equals Income plus Expenses.
type Summary struct {
	Balance  decimal.Decimal `json:"balance"`
	Income   decimal.Decimal `json:"income"`
	Expenses decimal.Decimal `json:"expenses"`
}

// AmountFilter selects which rows a sum aggregate covers.
type AmountFilter int

const (
	FilterAll     AmountFilter = iota // every row
	FilterIncome                      // amount > 0
	FilterExpense                     // amount < 0
)
