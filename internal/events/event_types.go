package events

import (
	"time"

	"github.com/google/uuid"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventProductCreated  EventType = "product.created"
	EventProductUpdated  EventType = "product.updated"
	EventProductDeleted  EventType = "product.deleted"
	EventCustomerCreated EventType = "customer.created"
	EventCustomerUpdated EventType = "customer.updated"
	EventCustomerDeleted EventType = "customer.deleted"
	EventStaffCreated    EventType = "staff.created"
	EventStaffUpdated    EventType = "staff.updated"
	EventStaffDeleted    EventType = "staff.deleted"
	EventOrderCreated    EventType = "order.created"
)

// AllEventTypes lists every event the services emit.
var AllEventTypes = []EventType{
	EventProductCreated, EventProductUpdated, EventProductDeleted,
	EventCustomerCreated, EventCustomerUpdated, EventCustomerDeleted,
	EventStaffCreated, EventStaffUpdated, EventStaffDeleted,
	EventOrderCreated,
}

// Known reports whether t is one of AllEventTypes.
func (t EventType) Known() bool {
	for _, known := range AllEventTypes {
		if t == known {
			return true
		}
	}
	return false
}

// Event describes a committed mutation of a single document.
type Event struct {
	ID         string    `json:"id"`
	Type       EventType `json:"type"`
	Collection string    `json:"collection"`
	DocumentID string    `json:"document_id"`
	Timestamp  time.Time `json:"timestamp"`
	Payload    any       `json:"payload,omitempty"`
}

// NewEvent stamps a fresh event id.
func NewEvent(eventType EventType, collection, documentID string, at time.Time, payload any) Event {
	return Event{
		ID:         uuid.NewString(),
		Type:       eventType,
		Collection: collection,
		DocumentID: documentID,
		Timestamp:  at,
		Payload:    payload,
	}
}
