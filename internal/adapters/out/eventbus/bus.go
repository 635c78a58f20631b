// Package eventbus provides an in-memory event bus wiring the lifecycle
// command handlers to the status saga and the notification layer. Delivery is
// synchronous and best-effort: a failing handler is logged and the remaining
// handlers still run, because events are published after the local state is
// already committed.
package eventbus

import (
	"context"
	"log/slog"
	"sync"

	"assistance/internal/core/domain/events"
)

// InMemoryEventBus implements a simple synchronous event bus.
// Events are delivered in the publishing goroutine.
type InMemoryEventBus struct {
	mu       sync.RWMutex
	handlers map[string][]events.Handler
	logger   *slog.Logger
}

var (
	_ events.Publisher  = (*InMemoryEventBus)(nil)
	_ events.Subscriber = (*InMemoryEventBus)(nil)
)

func New(logger *slog.Logger) *InMemoryEventBus {
	return &InMemoryEventBus{
		handlers: make(map[string][]events.Handler),
		logger:   logger,
	}
}

// Publish implements events.Publisher. Handler failures never propagate to
// the publisher: the state change the event describes has already happened.
func (b *InMemoryEventBus) Publish(ctx context.Context, event events.Event) error {
	b.mu.RLock()
	handlers := b.handlers[event.EventType()]
	b.mu.RUnlock()

	b.logger.DebugContext(ctx, "publishing event",
		slog.String("event_type", event.EventType()),
		slog.String("event_id", event.EventID()),
		slog.Int("handler_count", len(handlers)),
	)

	for _, handler := range handlers {
		if err := handler.Handle(ctx, event); err != nil {
			b.logger.ErrorContext(ctx, "event handler failed",
				slog.String("event_type", event.EventType()),
				slog.String("event_id", event.EventID()),
				slog.Any("error", err),
			)
		}
	}

	return nil
}

// Subscribe implements events.Subscriber.
func (b *InMemoryEventBus) Subscribe(eventType string, handler events.Handler) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
	return nil
}

// HandlerFunc is an adapter to use ordinary functions as event handlers.
type HandlerFunc func(ctx context.Context, event events.Event) error

func (f HandlerFunc) Handle(ctx context.Context, event events.Event) error {
	return f(ctx, event)
}
