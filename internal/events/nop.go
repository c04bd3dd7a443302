package events

import (
	"context"

	interfaces "github.com/sheikh-saqib/personal-finance-ledger/internal/interfaces"
)

// NopPublisher discards every event. Used when no brokers are configured
// and in tests.
type NopPublisher struct{}

func (NopPublisher) Publish(ctx context.Context, key string, event any) error {
	return nil
}

var _ interfaces.EventPublisher = NopPublisher{}
