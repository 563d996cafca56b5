package messaging

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/mosslight/storefront/internal/application/authctx"
	"github.com/mosslight/storefront/internal/domain/identity"
	"github.com/mosslight/storefront/internal/domain/messaging"
	"github.com/mosslight/storefront/internal/domain/shared"
	"go.uber.org/zap"
)

// NotificationService creates and reads in-app notifications. The
// messaging context writes through it directly; shop and review events
// reach it via NotificationEventHandler on the event bus.
type NotificationService struct {
	notificationRepo messaging.NotificationRepository
	userRepo         identity.UserRepository
	logger           *zap.Logger
}

// NewNotificationService creates a new NotificationService
func NewNotificationService(
	notificationRepo messaging.NotificationRepository,
	userRepo identity.UserRepository,
	logger *zap.Logger,
) *NotificationService {
	return &NotificationService{
		notificationRepo: notificationRepo,
		userRepo:         userRepo,
		logger:           logger,
	}
}

// NotifyUser creates a notification for one recipient
func (s *NotificationService) NotifyUser(ctx context.Context, recipientID uuid.UUID, payload messaging.NotificationPayload) error {
	notification, err := messaging.NewNotification(recipientID, payload)
	if err != nil {
		return err
	}
	return s.notificationRepo.Save(ctx, notification)
}

// NotifyAdmins fans a notification out to every admin account
func (s *NotificationService) NotifyAdmins(ctx context.Context, payload messaging.NotificationPayload) error {
	admins, err := s.userRepo.FindByRole(ctx, identity.RoleAdmin)
	if err != nil {
		return err
	}

	for i := range admins {
		if err := s.NotifyUser(ctx, admins[i].ID, payload); err != nil {
			s.logger.Warn("failed to create admin notification",
				zap.String("recipient_id", admins[i].ID.String()),
				zap.Error(err))
		}
	}

	return nil
}

// GetUnread returns the caller's unread notifications, newest first
func (s *NotificationService) GetUnread(ctx context.Context, caller authctx.Caller) ([]NotificationResponse, error) {
	notifications, err := s.notificationRepo.FindUnreadByRecipient(ctx, caller.UserID)
	if err != nil {
		return nil, err
	}

	items := make([]NotificationResponse, 0, len(notifications))
	for i := range notifications {
		items = append(items, ToNotificationResponse(&notifications[i]))
	}
	return items, nil
}

// MarkRead marks one of the caller's notifications as read
func (s *NotificationService) MarkRead(ctx context.Context, caller authctx.Caller, notificationID uuid.UUID) error {
	notification, err := s.notificationRepo.FindByID(ctx, notificationID)
	if err != nil {
		return err
	}

	if notification.RecipientID != caller.UserID {
		return shared.NewDomainError("FORBIDDEN",
			fmt.Sprintf("User %s is not permitted to modify this notification", caller.Identity()))
	}

	notification.MarkRead()

	return s.notificationRepo.Save(ctx, notification)
}
