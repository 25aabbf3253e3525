// Package kafka implements the inbound event projection. A consumer group
// bound to the service's application identity receives order-detail creation
// events produced by the partitioning service and drives detail creation.
package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"sync"

	"oms/internal/core/application/usecases/commands"
	"oms/internal/core/domain/events"
	"oms/internal/core/domain/model/kernel"

	"github.com/segmentio/kafka-go"
)

// Projection consumes order-detail creation events. Handler failures are
// logged and the event is dropped; redelivery policy belongs to the bus.
type Projection struct {
	reader  *kafka.Reader
	handler commands.CreateOrderDetailsCommandHandler
	logger  *slog.Logger

	cancel context.CancelFunc
	done   sync.WaitGroup
}

// NewProjection creates a projection reading the given topic as a member of
// the given consumer group.
func NewProjection(
	brokers []string,
	topic string,
	groupID string,
	handler commands.CreateOrderDetailsCommandHandler,
	logger *slog.Logger,
) *Projection {
	return &Projection{
		reader: kafka.NewReader(kafka.ReaderConfig{
			Brokers: brokers,
			Topic:   topic,
			GroupID: groupID,
		}),
		handler: handler,
		logger:  logger,
	}
}

// Start begins consuming in a background goroutine. The loop runs until Stop
// is called or the parent context is cancelled.
func (p *Projection) Start(ctx context.Context) {
	ctx, p.cancel = context.WithCancel(ctx)

	p.done.Add(1)
	go func() {
		defer p.done.Done()
		p.run(ctx)
	}()
}

// Stop cancels the consume loop and releases the consumer group membership.
func (p *Projection) Stop() error {
	if p.cancel != nil {
		p.cancel()
	}
	err := p.reader.Close()
	p.done.Wait()
	return err
}

func (p *Projection) run(ctx context.Context) {
	for {
		message, err := p.reader.ReadMessage(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, io.EOF) {
				return
			}
			p.logger.Error("read event message", slog.Any("error", err))
			continue
		}

		p.handleMessage(ctx, message)
	}
}

// handleMessage decodes and dispatches a single event. All failures are
// logged and the offset advances regardless.
func (p *Projection) handleMessage(ctx context.Context, message kafka.Message) {
	var envelope events.EventMessage
	if err := json.Unmarshal(message.Value, &envelope); err != nil {
		p.logger.Error("decode event envelope", slog.Any("error", err))
		return
	}

	if envelope.Type != events.TypeCreateOrderDetail {
		return
	}

	var event events.CreateOrderDetailEvent
	if err := json.Unmarshal(envelope.Data, &event); err != nil {
		p.logger.Error("decode order detail event",
			slog.String("eventId", envelope.ID.String()), slog.Any("error", err))
		return
	}

	cmd, err := buildCommand(event)
	if err != nil {
		p.logger.Error("build order details command",
			slog.String("eventId", envelope.ID.String()), slog.Any("error", err))
		return
	}

	if err = p.handler.Handle(ctx, cmd); err != nil {
		p.logger.Error("create order details",
			slog.String("orderId", event.OrderID.String()), slog.Any("error", err))
	}
}

func buildCommand(event events.CreateOrderDetailEvent) (commands.CreateOrderDetailsCommand, error) {
	orderID, err := kernel.UUIDFromBytes(event.OrderID[:])
	if err != nil {
		return commands.CreateOrderDetailsCommand{}, err
	}

	parts := make([]commands.TranslationOperationPart, 0, len(event.TranslationOperations))
	for _, op := range event.TranslationOperations {
		id, opErr := kernel.UUIDFromBytes(op.ID[:])
		if opErr != nil {
			return commands.CreateOrderDetailsCommand{}, opErr
		}
		parts = append(parts, commands.TranslationOperationPart{
			ID:                  id,
			CharCount:           op.CharCount,
			CharCountWithSpaces: op.CharCountWithSpaces,
		})
	}

	return commands.NewCreateOrderDetailsCommand(orderID, parts)
}
