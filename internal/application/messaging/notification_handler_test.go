package messaging

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/mosslight/storefront/internal/domain/identity"
	"github.com/mosslight/storefront/internal/domain/messaging"
	"github.com/mosslight/storefront/internal/domain/review"
	"github.com/mosslight/storefront/internal/domain/shared"
	"github.com/mosslight/storefront/internal/domain/shop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newHandler(notificationRepo *MockNotificationRepository, userRepo *MockUserRepository) *NotificationEventHandler {
	service := NewNotificationService(notificationRepo, userRepo, zap.NewNop())
	return NewNotificationEventHandler(service, zap.NewNop())
}

func TestNotificationEventHandlerEventTypes(t *testing.T) {
	handler := newHandler(new(MockNotificationRepository), new(MockUserRepository))

	types := handler.EventTypes()

	assert.Contains(t, types, shop.EventTypeOrderPlaced)
	assert.Contains(t, types, shop.EventTypeOrderStatusChanged)
	assert.Contains(t, types, review.EventTypeReviewSubmitted)
}

func TestNotificationEventHandlerHandle(t *testing.T) {
	ctx := context.Background()

	t.Run("order placed fans out to admins", func(t *testing.T) {
		notificationRepo := new(MockNotificationRepository)
		userRepo := new(MockUserRepository)
		handler := newHandler(notificationRepo, userRepo)

		admin := newAdminUser(t)
		orderID := uuid.New()
		userRepo.On("FindByRole", ctx, identity.RoleAdmin).Return([]identity.User{*admin}, nil)
		notificationRepo.On("Save", ctx, mock.MatchedBy(func(n *messaging.Notification) bool {
			return n.Kind == messaging.KindOrderPlaced && n.RecipientID == admin.ID
		})).Return(nil)

		err := handler.Handle(ctx, &shop.OrderPlacedEvent{
			BaseDomainEvent: shared.NewBaseDomainEvent(shop.EventTypeOrderPlaced, shop.AggregateTypeOrder, orderID),
			OrderNumber:     "ORD-20260829-ABCD1234",
			CustomerID:      uuid.New(),
			ItemCount:       2,
		})

		require.NoError(t, err)
		notificationRepo.AssertExpectations(t)
	})

	t.Run("status change notifies the order's customer", func(t *testing.T) {
		notificationRepo := new(MockNotificationRepository)
		userRepo := new(MockUserRepository)
		handler := newHandler(notificationRepo, userRepo)

		customerID := uuid.New()
		notificationRepo.On("Save", ctx, mock.MatchedBy(func(n *messaging.Notification) bool {
			return n.Kind == messaging.KindOrderStatusChanged && n.RecipientID == customerID
		})).Return(nil)

		err := handler.Handle(ctx, &shop.OrderStatusChangedEvent{
			BaseDomainEvent: shared.NewBaseDomainEvent(shop.EventTypeOrderStatusChanged, shop.AggregateTypeOrder, uuid.New()),
			OrderNumber:     "ORD-20260829-ABCD1234",
			CustomerID:      customerID,
			OldStatus:       shop.OrderStatusPending,
			NewStatus:       shop.OrderStatusShipped,
		})

		require.NoError(t, err)
		notificationRepo.AssertExpectations(t)
	})

	t.Run("review submission fans out to admins", func(t *testing.T) {
		notificationRepo := new(MockNotificationRepository)
		userRepo := new(MockUserRepository)
		handler := newHandler(notificationRepo, userRepo)

		admin := newAdminUser(t)
		userRepo.On("FindByRole", ctx, identity.RoleAdmin).Return([]identity.User{*admin}, nil)
		notificationRepo.On("Save", ctx, mock.MatchedBy(func(n *messaging.Notification) bool {
			return n.Kind == messaging.KindReviewSubmitted
		})).Return(nil)

		err := handler.Handle(ctx, &review.ReviewSubmittedEvent{
			BaseDomainEvent: shared.NewBaseDomainEvent(review.EventTypeReviewSubmitted, review.AggregateTypeReview, uuid.New()),
			ProductID:       uuid.New(),
			CustomerID:      uuid.New(),
			Rating:          5,
		})

		require.NoError(t, err)
		notificationRepo.AssertExpectations(t)
	})

	t.Run("unrelated events are ignored", func(t *testing.T) {
		notificationRepo := new(MockNotificationRepository)
		handler := newHandler(notificationRepo, new(MockUserRepository))

		err := handler.Handle(ctx, &messaging.MessageReceivedEvent{
			BaseDomainEvent: shared.NewBaseDomainEvent(messaging.EventTypeMessageReceived, messaging.AggregateTypeMessage, uuid.New()),
		})

		require.NoError(t, err)
		notificationRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})
}
