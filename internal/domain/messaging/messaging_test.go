package messaging

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMessage(t *testing.T) {
	t.Run("should create a message from an anonymous visitor", func(t *testing.T) {
		msg, err := NewMessage(nil, "Ada", "ADA@Example.com", "Commission", "Do you take commissions?")

		require.NoError(t, err)
		assert.Nil(t, msg.SenderID)
		assert.Equal(t, "ada@example.com", msg.SenderEmail)
		assert.False(t, msg.Read)

		events := msg.GetDomainEvents()
		require.Len(t, events, 1)
		assert.Equal(t, EventTypeMessageReceived, events[0].EventType())
	})

	t.Run("should reject missing fields", func(t *testing.T) {
		_, err := NewMessage(nil, "", "a@b.com", "", "hi")
		assert.Error(t, err)

		_, err = NewMessage(nil, "Ada", "not-an-email", "", "hi")
		assert.Error(t, err)

		_, err = NewMessage(nil, "Ada", "a@b.com", "", "   ")
		assert.Error(t, err)
	})
}

func TestMessageMarkRead(t *testing.T) {
	t.Run("should be idempotent", func(t *testing.T) {
		msg, err := NewMessage(nil, "Ada", "a@b.com", "", "hi")
		require.NoError(t, err)

		msg.MarkRead()
		require.NotNil(t, msg.ReadAt)
		first := *msg.ReadAt

		msg.MarkRead()
		assert.Equal(t, first, *msg.ReadAt)
	})
}

func TestNewNotification(t *testing.T) {
	t.Run("should derive the kind from the payload", func(t *testing.T) {
		recipient := uuid.New()

		n, err := NewNotification(recipient, OrderPlacedPayload{
			OrderID:     uuid.New(),
			OrderNumber: "ORD-2026-0001",
			ItemCount:   2,
		})

		require.NoError(t, err)
		assert.Equal(t, KindOrderPlaced, n.Kind)
		assert.Equal(t, recipient, n.RecipientID)
		assert.False(t, n.Read)
	})

	t.Run("should reject a nil payload or recipient", func(t *testing.T) {
		_, err := NewNotification(uuid.Nil, OrderPlacedPayload{})
		assert.Error(t, err)

		_, err = NewNotification(uuid.New(), nil)
		assert.Error(t, err)
	})
}

func TestNotificationDecodePayload(t *testing.T) {
	t.Run("should round-trip each kind into its payload type", func(t *testing.T) {
		orderID := uuid.New()
		msgID := uuid.New()
		reviewID := uuid.New()

		cases := []struct {
			name    string
			payload NotificationPayload
		}{
			{"order placed", OrderPlacedPayload{OrderID: orderID, OrderNumber: "ORD-1", ItemCount: 3}},
			{"status changed", OrderStatusChangedPayload{OrderID: orderID, OrderNumber: "ORD-1", OldStatus: "pending", NewStatus: "shipped"}},
			{"message received", MessageReceivedPayload{MessageID: msgID, SenderName: "Ada", Subject: "Commission"}},
			{"review submitted", ReviewSubmittedPayload{ReviewID: reviewID, ProductID: uuid.New(), Rating: 5}},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				n, err := NewNotification(uuid.New(), tc.payload)
				require.NoError(t, err)

				decoded, err := n.DecodePayload()
				require.NoError(t, err)
				assert.Equal(t, tc.payload.Kind(), decoded.Kind())
			})
		}
	})

	t.Run("should preserve payload fields", func(t *testing.T) {
		n, err := NewNotification(uuid.New(), OrderStatusChangedPayload{
			OrderNumber: "ORD-7",
			OldStatus:   "pending",
			NewStatus:   "shipped",
		})
		require.NoError(t, err)

		decoded, err := n.DecodePayload()
		require.NoError(t, err)

		payload, ok := decoded.(*OrderStatusChangedPayload)
		require.True(t, ok)
		assert.Equal(t, "shipped", payload.NewStatus)
	})

	t.Run("should fail for an unknown stored kind", func(t *testing.T) {
		n, err := NewNotification(uuid.New(), MessageReceivedPayload{SenderName: "Ada"})
		require.NoError(t, err)
		n.Kind = NotificationKind("carrier_pigeon")

		_, err = n.DecodePayload()
		assert.Error(t, err)
	})
}
