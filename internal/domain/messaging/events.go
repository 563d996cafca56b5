package messaging

import (
	"github.com/google/uuid"
	"github.com/mosslight/storefront/internal/domain/shared"
)

// EventTypeMessageReceived fires when a contact-form message arrives
const EventTypeMessageReceived = "messaging.message.received"

// AggregateTypeMessage is the aggregate type name for messages
const AggregateTypeMessage = "Message"

// MessageReceivedEvent is published when a new message lands in the inbox
type MessageReceivedEvent struct {
	shared.BaseDomainEvent
	SenderID   *uuid.UUID `json:"sender_id,omitempty"`
	SenderName string     `json:"sender_name"`
	Subject    string     `json:"subject"`
}

// NewMessageReceivedEvent creates a new MessageReceivedEvent
func NewMessageReceivedEvent(m *Message) *MessageReceivedEvent {
	return &MessageReceivedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeMessageReceived, AggregateTypeMessage, m.ID),
		SenderID:        m.SenderID,
		SenderName:      m.SenderName,
		Subject:         m.Subject,
	}
}
