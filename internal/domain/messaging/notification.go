package messaging

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/mosslight/storefront/internal/domain/shared"
)

// NotificationKind is the closed set of notification types. Each kind pairs
// with exactly one payload type; NewNotification enforces the pairing so a
// stored notification always decodes into the right payload.
type NotificationKind string

const (
	KindOrderPlaced        NotificationKind = "order_placed"
	KindOrderStatusChanged NotificationKind = "order_status_changed"
	KindMessageReceived    NotificationKind = "message_received"
	KindReviewSubmitted    NotificationKind = "review_submitted"
)

// IsValid checks if the kind is a known NotificationKind
func (k NotificationKind) IsValid() bool {
	switch k {
	case KindOrderPlaced, KindOrderStatusChanged, KindMessageReceived, KindReviewSubmitted:
		return true
	}
	return false
}

// NotificationPayload is implemented by each kind's payload struct
type NotificationPayload interface {
	Kind() NotificationKind
}

// OrderPlacedPayload notifies admins of a new order
type OrderPlacedPayload struct {
	OrderID     uuid.UUID `json:"order_id"`
	OrderNumber string    `json:"order_number"`
	ItemCount   int       `json:"item_count"`
}

// Kind returns KindOrderPlaced
func (OrderPlacedPayload) Kind() NotificationKind { return KindOrderPlaced }

// OrderStatusChangedPayload notifies a customer that their order moved
type OrderStatusChangedPayload struct {
	OrderID     uuid.UUID `json:"order_id"`
	OrderNumber string    `json:"order_number"`
	OldStatus   string    `json:"old_status"`
	NewStatus   string    `json:"new_status"`
}

// Kind returns KindOrderStatusChanged
func (OrderStatusChangedPayload) Kind() NotificationKind { return KindOrderStatusChanged }

// MessageReceivedPayload notifies admins of a new inbox message
type MessageReceivedPayload struct {
	MessageID  uuid.UUID `json:"message_id"`
	SenderName string    `json:"sender_name"`
	Subject    string    `json:"subject"`
}

// Kind returns KindMessageReceived
func (MessageReceivedPayload) Kind() NotificationKind { return KindMessageReceived }

// ReviewSubmittedPayload notifies admins of a new product review
type ReviewSubmittedPayload struct {
	ReviewID  uuid.UUID `json:"review_id"`
	ProductID uuid.UUID `json:"product_id"`
	Rating    int       `json:"rating"`
}

// Kind returns KindReviewSubmitted
func (ReviewSubmittedPayload) Kind() NotificationKind { return KindReviewSubmitted }

// PayloadData stores a payload as JSON in a single column
type PayloadData json.RawMessage

// Value implements driver.Valuer
func (d PayloadData) Value() (driver.Value, error) {
	if len(d) == 0 {
		return "{}", nil
	}
	return string(d), nil
}

// Scan implements sql.Scanner
func (d *PayloadData) Scan(value any) error {
	switch v := value.(type) {
	case nil:
		*d = nil
		return nil
	case []byte:
		*d = append((*d)[:0], v...)
		return nil
	case string:
		*d = PayloadData(v)
		return nil
	}
	return fmt.Errorf("cannot scan %T into PayloadData", value)
}

// MarshalJSON implements json.Marshaler
func (d PayloadData) MarshalJSON() ([]byte, error) {
	if len(d) == 0 {
		return []byte("null"), nil
	}
	return d, nil
}

// UnmarshalJSON implements json.Unmarshaler
func (d *PayloadData) UnmarshalJSON(data []byte) error {
	*d = append((*d)[:0], data...)
	return nil
}

// Notification is a per-user notification with a kind-tagged payload
type Notification struct {
	shared.BaseAggregateRoot
	RecipientID uuid.UUID        `gorm:"type:uuid;not null;index"`
	Kind        NotificationKind `gorm:"type:varchar(50);not null"`
	Payload     PayloadData      `gorm:"type:jsonb"`
	Read        bool             `gorm:"not null;default:false"`
	ReadAt      *time.Time
}

// TableName returns the table name for GORM
func (Notification) TableName() string {
	return "notifications"
}

// NewNotification creates a notification; the kind comes from the payload,
// so kind and payload can never disagree
func NewNotification(recipientID uuid.UUID, payload NotificationPayload) (*Notification, error) {
	if recipientID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_RECIPIENT", "Recipient ID cannot be empty")
	}
	if payload == nil || !payload.Kind().IsValid() {
		return nil, shared.NewDomainError("INVALID_NOTIFICATION", "Unknown notification payload")
	}

	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, shared.NewDomainError("INVALID_NOTIFICATION", "Could not encode notification payload")
	}

	return &Notification{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		RecipientID:       recipientID,
		Kind:              payload.Kind(),
		Payload:           PayloadData(raw),
	}, nil
}

// MarkRead flags the notification as read. Idempotent.
func (n *Notification) MarkRead() {
	if n.Read {
		return
	}
	now := time.Now()
	n.Read = true
	n.ReadAt = &now
	n.UpdatedAt = now
	n.IncrementVersion()
}

// DecodePayload unmarshals the stored payload into the struct for its kind
func (n *Notification) DecodePayload() (NotificationPayload, error) {
	var payload NotificationPayload
	switch n.Kind {
	case KindOrderPlaced:
		payload = &OrderPlacedPayload{}
	case KindOrderStatusChanged:
		payload = &OrderStatusChangedPayload{}
	case KindMessageReceived:
		payload = &MessageReceivedPayload{}
	case KindReviewSubmitted:
		payload = &ReviewSubmittedPayload{}
	default:
		return nil, shared.NewDomainError("INVALID_NOTIFICATION", fmt.Sprintf("Unknown notification kind %q", n.Kind))
	}
	if err := json.Unmarshal(n.Payload, payload); err != nil {
		return nil, shared.NewDomainError("INVALID_NOTIFICATION", "Could not decode notification payload")
	}
	return payload, nil
}
