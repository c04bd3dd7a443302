package ledger

import (
	"context"

	"github.com/sheikh-saqib/personal-finance-ledger/internal/models"
	"github.com/shopspring/decimal"
)

// MockTransactionStore is a mock implementation of interfaces.TransactionStore
type MockTransactionStore struct {
	InsertFunc     func(ctx context.Context, userID, title string, amount decimal.Decimal, category string) (models.Transaction, error)
	FindByUserFunc func(ctx context.Context, userID string) ([]models.Transaction, error)
	DeleteByIDFunc func(ctx context.Context, id int64) (models.Transaction, bool, error)
	SumByUserFunc  func(ctx context.Context, userID string, filter models.AmountFilter) (decimal.Decimal, error)

	InsertCalls     int
	DeleteByIDCalls int
}

func (m *MockTransactionStore) Insert(ctx context.Context, userID, title string, amount decimal.Decimal, category string) (models.Transaction, error) {
	m.InsertCalls++
	if m.InsertFunc != nil {
		return m.InsertFunc(ctx, userID, title, amount, category)
	}
	return models.Transaction{}, nil
}

func (m *MockTransactionStore) FindByUser(ctx context.Context, userID string) ([]models.Transaction, error) {
	if m.FindByUserFunc != nil {
		return m.FindByUserFunc(ctx, userID)
	}
	return []models.Transaction{}, nil
}

func (m *MockTransactionStore) DeleteByID(ctx context.Context, id int64) (models.Transaction, bool, error) {
	m.DeleteByIDCalls++
	if m.DeleteByIDFunc != nil {
		return m.DeleteByIDFunc(ctx, id)
	}
	return models.Transaction{}, false, nil
}

func (m *MockTransactionStore) SumByUser(ctx context.Context, userID string, filter models.AmountFilter) (decimal.Decimal, error) {
	if m.SumByUserFunc != nil {
		return m.SumByUserFunc(ctx, userID, filter)
	}
	return decimal.Zero, nil
}

// MockPublisher records published events.
type MockPublisher struct {
	PublishFunc func(ctx context.Context, key string, event any) error
	Events      []any
}

func (m *MockPublisher) Publish(ctx context.Context, key string, event any) error {
	m.Events = append(m.Events, event)
	if m.PublishFunc != nil {
		return m.PublishFunc(ctx, key, event)
	}
	return nil
}
