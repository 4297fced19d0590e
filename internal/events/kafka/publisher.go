// Package kafka publishes audit events to the configured Kafka topic.
package kafka

import (
	"context"
	"encoding/json"
	"time"

	"github.com/segmentio/kafka-go"

	portssvc "github.com/vendorkhata/vendor_khata_app/internal/core/ports/services"
)

// Publisher writes audit events as JSON messages keyed by event type.
type Publisher struct {
	writer *kafka.Writer
}

// NewPublisher creates a publisher targeting the given brokers and topic.
func NewPublisher(brokers []string, topic string) *Publisher {
	return &Publisher{
		writer: &kafka.Writer{
			Addr:     kafka.TCP(brokers...),
			Topic:    topic,
			Balancer: &kafka.LeastBytes{},
		},
	}
}

var _ portssvc.EventPublisher = (*Publisher)(nil)

// envelope is the wire format for one audit event.
type envelope struct {
	EventType  string    `json:"eventType"`
	OccurredAt time.Time `json:"occurredAt"`
	Payload    any       `json:"payload"`
}

func (p *Publisher) Publish(ctx context.Context, eventType string, payload any) error {
	data, err := json.Marshal(envelope{
		EventType:  eventType,
		OccurredAt: time.Now().UTC(),
		Payload:    payload,
	})
	if err != nil {
		return err
	}

	return p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(eventType),
		Value: data,
	})
}

func (p *Publisher) Close() error {
	return p.writer.Close()
}
