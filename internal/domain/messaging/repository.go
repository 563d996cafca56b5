package messaging

import (
	"context"

	"github.com/google/uuid"
	"github.com/mosslight/storefront/internal/domain/shared"
)

// MessageRepository defines persistence operations for inbox messages
type MessageRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Message, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]Message, error)
	FindBySender(ctx context.Context, senderID uuid.UUID, filter shared.Filter) ([]Message, error)
	CountUnread(ctx context.Context) (int64, error)
	Save(ctx context.Context, message *Message) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// NotificationRepository defines persistence operations for notifications
type NotificationRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Notification, error)
	FindUnreadByRecipient(ctx context.Context, recipientID uuid.UUID) ([]Notification, error)
	FindByRecipient(ctx context.Context, recipientID uuid.UUID, filter shared.Filter) ([]Notification, error)
	Save(ctx context.Context, notification *Notification) error
	Delete(ctx context.Context, id uuid.UUID) error
}
