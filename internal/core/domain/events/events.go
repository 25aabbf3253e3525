// Package events defines the domain event payloads this service publishes and
// consumes, together with the EventMessage envelope they travel in on the bus.
package events

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Event type identifiers carried in the EventMessage envelope. Consumers bind
// handlers by type, so these names are part of the wire contract.
const (
	TypeCreateDocumentPart = "CreateDocumentPartEvent"
	TypeCreateOrderDetail  = "CreateOrderDetailEvent"
	TypeNotifyTranslators  = "NotifyTranslatorsEvent"
)

// EventMessage is the envelope every event travels in. Delivery is
// fire-and-forget from the publisher's perspective; the bus provides
// at-least-once delivery to downstream consumers.
type EventMessage struct {
	ID         uuid.UUID       `json:"id"`
	Type       string          `json:"type"`
	OccurredAt time.Time       `json:"occurredAt"`
	Data       json.RawMessage `json:"data"`
}

// newEventMessage wraps a payload in an envelope with a fresh id.
func newEventMessage(eventType string, payload any) (EventMessage, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return EventMessage{}, err
	}
	return EventMessage{
		ID:         uuid.New(),
		Type:       eventType,
		OccurredAt: time.Now().UTC(),
		Data:       data,
	}, nil
}

// CreateDocumentPartEvent asks the downstream partitioning service to split a
// registered document into the estimated number of parts.
type CreateDocumentPartEvent struct {
	OrderID               uuid.UUID `json:"orderId"`
	TranslationDocumentID uuid.UUID `json:"translationDocumentId"`
	PartCount             int       `json:"partCount"`
	CreatedAt             time.Time `json:"createdAt"`
}

// ToEventMessage wraps the event in an EventMessage envelope.
func (e CreateDocumentPartEvent) ToEventMessage() (EventMessage, error) {
	return newEventMessage(TypeCreateDocumentPart, e)
}

// TranslationOperationPayload describes one document part in a
// CreateOrderDetailEvent, carrying the part's own character counts so each
// resulting order detail can be priced individually.
type TranslationOperationPayload struct {
	ID                  uuid.UUID `json:"id"`
	CharCount           int       `json:"charCount"`
	CharCountWithSpaces int       `json:"charCountWithSpaces"`
}

// CreateOrderDetailEvent is produced by the partitioning service once document
// parts exist; this service consumes it to create the order's details.
type CreateOrderDetailEvent struct {
	OrderID               uuid.UUID                     `json:"orderId"`
	TranslationOperations []TranslationOperationPayload `json:"translationOperations"`
}

// ToEventMessage wraps the event in an EventMessage envelope.
func (e CreateOrderDetailEvent) ToEventMessage() (EventMessage, error) {
	return newEventMessage(TypeCreateOrderDetail, e)
}

// NotifyTranslatorsEvent asks the mail service to notify candidate role
// holders that new work is ready.
type NotifyTranslatorsEvent struct {
	Subject string   `json:"subject"`
	Message string   `json:"message"`
	To      []string `json:"to"`
}

// ToEventMessage wraps the event in an EventMessage envelope.
func (e NotifyTranslatorsEvent) ToEventMessage() (EventMessage, error) {
	return newEventMessage(TypeNotifyTranslators, e)
}
