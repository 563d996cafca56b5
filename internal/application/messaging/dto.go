package messaging

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/mosslight/storefront/internal/domain/messaging"
)

// SendMessageRequest represents a contact-form submission
type SendMessageRequest struct {
	Name    string `json:"name" binding:"required,min=1,max=100"`
	Email   string `json:"email" binding:"required,email,max=255"`
	Subject string `json:"subject" binding:"max=200"`
	Body    string `json:"body" binding:"required,min=1,max=10000"`
}

// MessageListFilter represents filter options for the inbox
type MessageListFilter struct {
	UnreadOnly bool `form:"unread_only"`
	Page       int  `form:"page" binding:"omitempty,min=1"`
	PageSize   int  `form:"page_size" binding:"omitempty,min=1,max=100"`
}

// MessageResponse represents an inbox message in API responses
type MessageResponse struct {
	ID          uuid.UUID  `json:"id"`
	SenderID    *uuid.UUID `json:"sender_id,omitempty"`
	SenderName  string     `json:"sender_name"`
	SenderEmail string     `json:"sender_email"`
	Subject     string     `json:"subject"`
	Body        string     `json:"body"`
	Read        bool       `json:"read"`
	CreatedAt   time.Time  `json:"created_at"`
}

// NotificationResponse represents a notification with its decoded payload
type NotificationResponse struct {
	ID        uuid.UUID       `json:"id"`
	Kind      string          `json:"kind"`
	Payload   json.RawMessage `json:"payload"`
	Read      bool            `json:"read"`
	CreatedAt time.Time       `json:"created_at"`
}

// ToMessageResponse converts a domain Message to MessageResponse
func ToMessageResponse(m *messaging.Message) MessageResponse {
	return MessageResponse{
		ID:          m.ID,
		SenderID:    m.SenderID,
		SenderName:  m.SenderName,
		SenderEmail: m.SenderEmail,
		Subject:     m.Subject,
		Body:        m.Body,
		Read:        m.Read,
		CreatedAt:   m.CreatedAt,
	}
}

// ToNotificationResponse converts a domain Notification to NotificationResponse
func ToNotificationResponse(n *messaging.Notification) NotificationResponse {
	return NotificationResponse{
		ID:        n.ID,
		Kind:      string(n.Kind),
		Payload:   json.RawMessage(n.Payload),
		Read:      n.Read,
		CreatedAt: n.CreatedAt,
	}
}
