package ledger

import (
	"context"
	"os"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	interfaces "github.com/sheikh-saqib/personal-finance-ledger/internal/interfaces"
	"github.com/sheikh-saqib/personal-finance-ledger/internal/models"
	"github.com/sheikh-saqib/personal-finance-ledger/internal/models/events"
)

var logger = zerolog.New(os.Stdout).With().Timestamp().Str("component", "ledger").Logger()

// Ledger is the core service: it validates inputs, enforces the transaction
// invariants and delegates persistence to the store. It holds no mutable
// state, so any number of calls may run concurrently; per-statement atomicity
// of the store is the only isolation relied on.
type Ledger struct {
	store     interfaces.TransactionStore
	publisher interfaces.EventPublisher
}

// NewLedger is a constructor function that creates a new Ledger instance.
// We pass in a storage implementation (Postgres, memory, etc.) and an event
// publisher; pass a NopPublisher when events are not wired.
func NewLedger(store interfaces.TransactionStore, publisher interfaces.EventPublisher) *Ledger {
	return &Ledger{
		store:     store,
		publisher: publisher,
	}
}

// CreateParams carries the caller-supplied fields of a new transaction.
// Amount is a pointer so that an absent amount can be told apart from a
// legitimate zero amount.
type CreateParams struct {
	UserID   string
	Title    string
	Amount   *decimal.Decimal
	Category string
}

// CreateTransaction validates params and persists a new transaction,
// returning the stored row with its assigned id and created_at.
func (l *Ledger) CreateTransaction(ctx context.Context, params CreateParams) (models.Transaction, error) {
	if params.UserID == "" || params.Title == "" || params.Category == "" || params.Amount == nil {
		return models.Transaction{}, ValidationError{Message: "missing required fields"}
	}

	tx, err := l.store.Insert(ctx, params.UserID, params.Title, *params.Amount, params.Category)
	if err != nil {
		return models.Transaction{}, StorageError{Err: err}
	}

	l.publish(ctx, tx.UserID, events.TransactionCreated{
		EventID:       uuid.New(),
		TransactionID: tx.ID,
		UserID:        tx.UserID,
		Title:         tx.Title,
		Amount:        tx.Amount,
		Category:      tx.Category,
		OccurredAt:    time.Now().UTC(),
	})
	return tx, nil
}

// ListTransactions returns the user's transactions, newest date first. A
// user with no transactions yields an empty slice.
func (l *Ledger) ListTransactions(ctx context.Context, userID string) ([]models.Transaction, error) {
	transactions, err := l.store.FindByUser(ctx, userID)
	if err != nil {
		return nil, StorageError{Err: err}
	}
	return transactions, nil
}

// DeleteTransaction removes the transaction named by rawID. rawID must parse
// as an integer; storage is not touched otherwise.
func (l *Ledger) DeleteTransaction(ctx context.Context, rawID string) error {
	id, err := strconv.ParseInt(rawID, 10, 64)
	if err != nil {
		return ValidationError{Message: "invalid transaction id"}
	}

	deleted, found, err := l.store.DeleteByID(ctx, id)
	if err != nil {
		return StorageError{Err: err}
	}
	if !found {
		return ErrTransactionNotFound
	}

	l.publish(ctx, deleted.UserID, events.TransactionDeleted{
		EventID:       uuid.New(),
		TransactionID: deleted.ID,
		UserID:        deleted.UserID,
		OccurredAt:    time.Now().UTC(),
	})
	return nil
}

// Summarize computes the user's balance, income and expense totals. Each
// aggregate is zero when no rows match, so balance == income + expenses
// holds for every user, including ones the ledger has never seen.
func (l *Ledger) Summarize(ctx context.Context, userID string) (models.Summary, error) {
	balance, err := l.store.SumByUser(ctx, userID, models.FilterAll)
	if err != nil {
		return models.Summary{}, StorageError{Err: err}
	}

	income, err := l.store.SumByUser(ctx, userID, models.FilterIncome)
	if err != nil {
		return models.Summary{}, StorageError{Err: err}
	}

	expenses, err := l.store.SumByUser(ctx, userID, models.FilterExpense)
	if err != nil {
		return models.Summary{}, StorageError{Err: err}
	}

	return models.Summary{
		Balance:  balance,
		Income:   income,
		Expenses: expenses,
	}, nil
}

// publish sends an event best-effort: a broker failure is logged but never
// fails the ledger operation that produced it.
func (l *Ledger) publish(ctx context.Context, key string, event any) {
	if l.publisher == nil {
		return
	}
	if err := l.publisher.Publish(ctx, key, event); err != nil {
		logger.Warn().Err(err).Msg("failed to publish transaction event")
	}
}
