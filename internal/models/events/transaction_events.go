package events

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type TransactionCreated struct {
	EventID       uuid.UUID       `json:"event_id"`
	TransactionID int64           `json:"transaction_id"`
	UserID        string          `json:"user_id"`
	Title         string          `json:"title"`
	Amount        decimal.Decimal `json:"amount"`
	Category      string          `json:"category"`
	OccurredAt    time.Time       `json:"occurred_at"`
}

type TransactionDeleted struct {
	EventID       uuid.UUID `json:"event_id"`
	TransactionID int64     `json:"transaction_id"`
	UserID        string    `json:"user_id"`
	OccurredAt    time.Time `json:"occurred_at"`
}
