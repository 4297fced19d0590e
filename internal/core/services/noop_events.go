package services

import (
	"context"

	portssvc "github.com/vendorkhata/vendor_khata_app/internal/core/ports/services"
)

// noopEventPublisher drops all events. Used when no broker is configured.
type noopEventPublisher struct{}

// NewNoopEventPublisher returns an event publisher that discards everything.
func NewNoopEventPublisher() portssvc.EventPublisher {
	return noopEventPublisher{}
}

var _ portssvc.EventPublisher = noopEventPublisher{}

func (noopEventPublisher) Publish(ctx context.Context, eventType string, payload any) error {
	return nil
}

func (noopEventPublisher) Close() error { return nil }
