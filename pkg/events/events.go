// Package events publishes customer lifecycle events to a message broker.
// Publishing is best effort: callers log failures and carry on.
package events

import (
	"context"
	"time"
)

const (
	TypeCustomerSignedUp       = "customer.signed_up"
	TypeCustomerProviderLinked = "customer.provider_linked"
)

type CustomerEvent struct {
	Type       string    `json:"type"`
	CustomerID int64     `json:"customer_id"`
	Email      string    `json:"email"`
	Role       string    `json:"role"`
	Provider   string    `json:"provider,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

type Publisher interface {
	Publish(ctx context.Context, event CustomerEvent) error
	Close() error
}

type noopPublisher struct{}

// NewNoopPublisher is used when no broker is configured.
func NewNoopPublisher() Publisher { return noopPublisher{} }

func (noopPublisher) Publish(context.Context, CustomerEvent) error { return nil }
func (noopPublisher) Close() error { return nil }
