package messaging

import (
	"context"

	"github.com/google/uuid"
	"github.com/mosslight/storefront/internal/application/authctx"
	"github.com/mosslight/storefront/internal/domain/messaging"
	"github.com/mosslight/storefront/internal/domain/shared"
	"go.uber.org/zap"
)

// MessageService handles the studio inbox
type MessageService struct {
	messageRepo messaging.MessageRepository
	notifier    *NotificationService
	logger      *zap.Logger
}

// NewMessageService creates a new MessageService
func NewMessageService(messageRepo messaging.MessageRepository, notifier *NotificationService, logger *zap.Logger) *MessageService {
	return &MessageService{
		messageRepo: messageRepo,
		notifier:    notifier,
		logger:      logger,
	}
}

// Send stores a contact-form message and notifies admins. senderID is nil
// for anonymous visitors.
func (s *MessageService) Send(ctx context.Context, senderID *uuid.UUID, req SendMessageRequest) (*MessageResponse, error) {
	msg, err := messaging.NewMessage(senderID, req.Name, req.Email, req.Subject, req.Body)
	if err != nil {
		return nil, err
	}

	if err := s.messageRepo.Save(ctx, msg); err != nil {
		return nil, err
	}

	if err := s.notifier.NotifyAdmins(ctx, messaging.MessageReceivedPayload{
		MessageID:  msg.ID,
		SenderName: msg.SenderName,
		Subject:    msg.Subject,
	}); err != nil {
		s.logger.Warn("failed to notify admins of new message",
			zap.String("message_id", msg.ID.String()),
			zap.Error(err))
	}

	resp := ToMessageResponse(msg)
	return &resp, nil
}

// GetMessages returns the inbox. Admin only.
func (s *MessageService) GetMessages(ctx context.Context, caller authctx.Caller, filter MessageListFilter) ([]MessageResponse, error) {
	if err := caller.RequireAdmin(); err != nil {
		return nil, err
	}

	domainFilter := shared.DefaultFilter()
	if filter.Page > 0 {
		domainFilter.Page = filter.Page
	}
	if filter.PageSize > 0 {
		domainFilter.PageSize = filter.PageSize
	}
	if filter.UnreadOnly {
		domainFilter.Filters["read"] = false
	}

	messages, err := s.messageRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, err
	}

	return toMessageResponses(messages), nil
}

// GetMyMessages returns messages the caller sent while signed in
func (s *MessageService) GetMyMessages(ctx context.Context, caller authctx.Caller) ([]MessageResponse, error) {
	messages, err := s.messageRepo.FindBySender(ctx, caller.UserID, shared.DefaultFilter())
	if err != nil {
		return nil, err
	}
	return toMessageResponses(messages), nil
}

// MarkRead marks an inbox message as read. Admin only.
func (s *MessageService) MarkRead(ctx context.Context, caller authctx.Caller, messageID uuid.UUID) error {
	if err := caller.RequireAdmin(); err != nil {
		return err
	}

	msg, err := s.messageRepo.FindByID(ctx, messageID)
	if err != nil {
		return err
	}

	msg.MarkRead()

	return s.messageRepo.Save(ctx, msg)
}

func toMessageResponses(messages []messaging.Message) []MessageResponse {
	items := make([]MessageResponse, 0, len(messages))
	for i := range messages {
		items = append(items, ToMessageResponse(&messages[i]))
	}
	return items
}
