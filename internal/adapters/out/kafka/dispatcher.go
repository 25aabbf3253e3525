// Package kafka implements the outbound event dispatcher on top of a Kafka
// topic. Publication is fire-and-forget from the caller's perspective; the
// broker provides at-least-once delivery to downstream consumers.
package kafka

import (
	"context"
	"encoding/json"
	"fmt"

	"oms/internal/core/domain/events"

	"github.com/segmentio/kafka-go"
)

// Dispatcher publishes event envelopes to a single Kafka topic.
type Dispatcher struct {
	writer *kafka.Writer
}

// NewDispatcher creates a dispatcher writing to the given brokers and topic.
func NewDispatcher(brokers []string, topic string) *Dispatcher {
	return &Dispatcher{
		writer: &kafka.Writer{
			Addr:     kafka.TCP(brokers...),
			Topic:    topic,
			Balancer: &kafka.LeastBytes{},
		},
	}
}

// Dispatch publishes the envelopes in one batch. The envelope id keys the
// message so redeliveries are deduplicable downstream.
func (d *Dispatcher) Dispatch(ctx context.Context, messages []events.EventMessage) error {
	if len(messages) == 0 {
		return nil
	}

	kafkaMessages := make([]kafka.Message, len(messages))
	for i, message := range messages {
		value, err := json.Marshal(message)
		if err != nil {
			return fmt.Errorf("marshal event %s: %w", message.Type, err)
		}

		kafkaMessages[i] = kafka.Message{
			Key:   []byte(message.ID.String()),
			Value: value,
		}
	}

	if err := d.writer.WriteMessages(ctx, kafkaMessages...); err != nil {
		return fmt.Errorf("write event messages: %w", err)
	}

	return nil
}

// Close releases the underlying writer.
func (d *Dispatcher) Close() error {
	return d.writer.Close()
}
