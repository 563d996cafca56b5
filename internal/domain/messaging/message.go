package messaging

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/mosslight/storefront/internal/domain/shared"
)

// Message is a contact-form message delivered to the studio inbox.
// SenderID is nil for anonymous visitors.
type Message struct {
	shared.BaseAggregateRoot
	SenderID    *uuid.UUID `gorm:"type:uuid;index"`
	SenderName  string     `gorm:"type:varchar(100);not null"`
	SenderEmail string     `gorm:"type:varchar(255);not null"`
	Subject     string     `gorm:"type:varchar(200)"`
	Body        string     `gorm:"type:text;not null"`
	Read        bool       `gorm:"not null;default:false"`
	ReadAt      *time.Time
}

// TableName returns the table name for GORM
func (Message) TableName() string {
	return "messages"
}

// NewMessage creates an inbox message from a contact-form submission
func NewMessage(senderID *uuid.UUID, senderName, senderEmail, subject, body string) (*Message, error) {
	senderName = strings.TrimSpace(senderName)
	if senderName == "" {
		return nil, shared.NewDomainError("INVALID_SENDER", "Sender name cannot be empty")
	}
	senderEmail = strings.TrimSpace(strings.ToLower(senderEmail))
	if senderEmail == "" || !strings.Contains(senderEmail, "@") {
		return nil, shared.NewDomainError("INVALID_EMAIL", "A valid sender email is required")
	}
	body = strings.TrimSpace(body)
	if body == "" {
		return nil, shared.NewDomainError("INVALID_BODY", "Message body cannot be empty")
	}

	msg := &Message{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		SenderID:          senderID,
		SenderName:        senderName,
		SenderEmail:       senderEmail,
		Subject:           strings.TrimSpace(subject),
		Body:              body,
	}

	msg.AddDomainEvent(NewMessageReceivedEvent(msg))

	return msg, nil
}

// MarkRead flags the message as read. Idempotent.
func (m *Message) MarkRead() {
	if m.Read {
		return
	}
	now := time.Now()
	m.Read = true
	m.ReadAt = &now
	m.UpdatedAt = now
	m.IncrementVersion()
}
