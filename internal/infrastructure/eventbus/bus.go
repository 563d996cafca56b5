// Package eventbus provides a synchronous in-process dispatcher for
// domain events. Application services publish the events their
// aggregates raised; subscribed handlers react within the same request.
package eventbus

import (
	"context"
	"sync"

	"github.com/mosslight/storefront/internal/domain/shared"
	"go.uber.org/zap"
)

// InProcessBus routes domain events to handlers registered for their
// event type. Dispatch is synchronous and in publish order.
type InProcessBus struct {
	mu       sync.RWMutex
	handlers map[string][]shared.EventHandler
	catchAll []shared.EventHandler
	logger   *zap.Logger
}

// NewInProcessBus creates a new InProcessBus
func NewInProcessBus(logger *zap.Logger) *InProcessBus {
	return &InProcessBus{
		handlers: make(map[string][]shared.EventHandler),
		logger:   logger.Named("eventbus"),
	}
}

// Subscribe registers a handler. With no explicit event types the
// handler's own EventTypes() is used; an empty result subscribes it to
// every event.
func (b *InProcessBus) Subscribe(handler shared.EventHandler, eventTypes ...string) {
	if len(eventTypes) == 0 {
		eventTypes = handler.EventTypes()
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if len(eventTypes) == 0 {
		b.catchAll = append(b.catchAll, handler)
		return
	}
	for _, eventType := range eventTypes {
		b.handlers[eventType] = append(b.handlers[eventType], handler)
	}
}

// Publish delivers each event to its subscribed handlers. Handler
// failures are logged and do not stop delivery; the first error is
// returned after all events have been dispatched.
func (b *InProcessBus) Publish(ctx context.Context, events ...shared.DomainEvent) error {
	var firstErr error

	for _, event := range events {
		b.mu.RLock()
		targets := make([]shared.EventHandler, 0, len(b.handlers[event.EventType()])+len(b.catchAll))
		targets = append(targets, b.handlers[event.EventType()]...)
		targets = append(targets, b.catchAll...)
		b.mu.RUnlock()

		for _, handler := range targets {
			if err := handler.Handle(ctx, event); err != nil {
				b.logger.Error("event handler failed",
					zap.String("event_type", event.EventType()),
					zap.String("event_id", event.EventID().String()),
					zap.Error(err))
				if firstErr == nil {
					firstErr = err
				}
			}
		}
	}

	return firstErr
}

// Ensure InProcessBus implements shared.EventBus
var _ shared.EventBus = (*InProcessBus)(nil)
