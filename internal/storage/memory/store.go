package memory

import (
	"context"
	"sort"
	"sync"

	interfaces "github.com/sheikh-saqib/personal-finance-ledger/internal/interfaces"
	"github.com/sheikh-saqib/personal-finance-ledger/internal/models"
	"github.com/shopspring/decimal"
)

// MemoryTransactionStore is an in-memory implementation of
// interfaces.TransactionStore. It mirrors the Postgres store's semantics
// (serial ids, date-only created_at, ordering, zero-valued sums) and is safe
// for concurrent use. Used by tests and local runs without a database.
type MemoryTransactionStore struct {
	mu           sync.Mutex
	nextID       int64
	transactions []models.Transaction
}

func NewMemoryTransactionStore() *MemoryTransactionStore {
	return &MemoryTransactionStore{
		nextID:       1,
		transactions: make([]models.Transaction, 0),
	}
}

func (m *MemoryTransactionStore) Insert(ctx context.Context, userID, title string, amount decimal.Decimal, category string) (models.Transaction, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	tx := models.Transaction{
		ID:        m.nextID,
		UserID:    userID,
		Title:     title,
		Amount:    amount,
		Category:  category,
		CreatedAt: models.Today(),
	}
	m.nextID++
	m.transactions = append(m.transactions, tx)
	return tx, nil
}

func (m *MemoryTransactionStore) FindByUser(ctx context.Context, userID string) ([]models.Transaction, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	result := make([]models.Transaction, 0)
	for _, tx := range m.transactions {
		if tx.UserID == userID {
			result = append(result, tx)
		}
	}

	// created_at descending, id descending on same-day ties, matching the
	// Postgres store's ORDER BY.
	sort.Slice(result, func(i, j int) bool {
		if !result[i].CreatedAt.Equal(result[j].CreatedAt) {
			return result[i].CreatedAt.After(result[j].CreatedAt)
		}
		return result[i].ID > result[j].ID
	})
	return result, nil
}

func (m *MemoryTransactionStore) DeleteByID(ctx context.Context, id int64) (models.Transaction, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i, tx := range m.transactions {
		if tx.ID == id {
			m.transactions = append(m.transactions[:i], m.transactions[i+1:]...)
			return tx, true, nil
		}
	}
	return models.Transaction{}, false, nil
}

func (m *MemoryTransactionStore) SumByUser(ctx context.Context, userID string, filter models.AmountFilter) (decimal.Decimal, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	sum := decimal.Zero
	for _, tx := range m.transactions {
		if tx.UserID != userID {
			continue
		}
		switch filter {
		case models.FilterIncome:
			if tx.Amount.Cmp(decimal.Zero) <= 0 {
				continue
			}
		case models.FilterExpense:
			if tx.Amount.Cmp(decimal.Zero) >= 0 {
				continue
			}
		}
		sum = sum.Add(tx.Amount)
	}
	return sum, nil
}

// Compile-time check: ensure MemoryTransactionStore implements TransactionStore
var _ interfaces.TransactionStore = (*MemoryTransactionStore)(nil)
