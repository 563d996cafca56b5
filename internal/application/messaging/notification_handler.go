package messaging

import (
	"context"

	"github.com/mosslight/storefront/internal/domain/messaging"
	"github.com/mosslight/storefront/internal/domain/review"
	"github.com/mosslight/storefront/internal/domain/shared"
	"github.com/mosslight/storefront/internal/domain/shop"
	"go.uber.org/zap"
)

// NotificationEventHandler turns domain events from the shop and review
// contexts into in-app notifications. It subscribes on the event bus, so
// the publishing services never depend on this package.
type NotificationEventHandler struct {
	notifications *NotificationService
	logger        *zap.Logger
}

// NewNotificationEventHandler creates a new NotificationEventHandler
func NewNotificationEventHandler(notifications *NotificationService, logger *zap.Logger) *NotificationEventHandler {
	return &NotificationEventHandler{
		notifications: notifications,
		logger:        logger,
	}
}

// EventTypes returns the event types this handler subscribes to
func (h *NotificationEventHandler) EventTypes() []string {
	return []string{
		shop.EventTypeOrderPlaced,
		shop.EventTypeOrderStatusChanged,
		review.EventTypeReviewSubmitted,
	}
}

// Handle creates the notification for a single event
func (h *NotificationEventHandler) Handle(ctx context.Context, event shared.DomainEvent) error {
	switch e := event.(type) {
	case *shop.OrderPlacedEvent:
		return h.notifications.NotifyAdmins(ctx, messaging.OrderPlacedPayload{
			OrderID:     e.AggregateID(),
			OrderNumber: e.OrderNumber,
			ItemCount:   e.ItemCount,
		})

	case *shop.OrderStatusChangedEvent:
		return h.notifications.NotifyUser(ctx, e.CustomerID, messaging.OrderStatusChangedPayload{
			OrderID:     e.AggregateID(),
			OrderNumber: e.OrderNumber,
			OldStatus:   string(e.OldStatus),
			NewStatus:   string(e.NewStatus),
		})

	case *review.ReviewSubmittedEvent:
		return h.notifications.NotifyAdmins(ctx, messaging.ReviewSubmittedPayload{
			ReviewID:  e.AggregateID(),
			ProductID: e.ProductID,
			Rating:    e.Rating,
		})
	}

	h.logger.Debug("ignoring unhandled event", zap.String("event_type", event.EventType()))
	return nil
}

// Ensure NotificationEventHandler implements shared.EventHandler
var _ shared.EventHandler = (*NotificationEventHandler)(nil)
