package services

import "context"

// Event names published on the audit stream.
const (
	EventPurchaseRecorded   = "purchase.recorded"
	EventPurchaseDeleted    = "purchase.deleted"
	EventPaymentRecorded    = "vendor.payment.recorded"
	EventAdjustmentRecorded = "vendor.adjustment.recorded"
)

// EventPublisher publishes domain events to the audit stream. Implementations
// must be safe for concurrent use; a nil-safe no-op implementation is used
// when no broker is configured.
type EventPublisher interface {
	Publish(ctx context.Context, eventType string, payload any) error
	Close() error
}
