package interfaces

import (
	"context"

	"github.com/sheikh-saqib/personal-finance-ledger/internal/models"
	"github.com/shopspring/decimal"
)

// TransactionStore is the storage port for the transactions table. Every
// method executes exactly one statement; no client-side transactions are
// opened because no operation touches more than one row set.
type TransactionStore interface {
	// Insert persists a new transaction and returns the full row,
	// including the storage-assigned id and created_at.
	Insert(ctx context.Context, userID, title string, amount decimal.Decimal, category string) (models.Transaction, error)

	// FindByUser returns the user's transactions ordered by created_at
	// descending, id descending as the same-day tie-break. An unknown
	// user yields an empty slice, not an error.
	FindByUser(ctx context.Context, userID string) ([]models.Transaction, error)

	// DeleteByID removes the row and returns it. found is false when no
	// row matched; err is reserved for store failures.
	DeleteByID(ctx context.Context, id int64) (tx models.Transaction, found bool, err error)

	// SumByUser sums the amounts of the user's rows matching the filter,
	// returning decimal zero when none match.
	SumByUser(ctx context.Context, userID string, filter models.AmountFilter) (decimal.Decimal, error)
}
