package events

import (
	"context"
	"sync"

	"orghub-backend/internal/domain"
	"orghub-backend/internal/logger"
)

// Handler receives a dispatched domain event.
type Handler func(ctx context.Context, e domain.Event)

// Dispatcher delivers domain events returned by mutating services to their
// subscribers, decoupling the workflow from notification concerns. Delivery
// is synchronous and in registration order; subscribers that need to be
// fire-and-forget (the mail queue) make their own handlers non-blocking.
type Dispatcher struct {
	mu       sync.RWMutex
	handlers map[string][]Handler
}

func NewDispatcher() *Dispatcher {
	return &Dispatcher{handlers: make(map[string][]Handler)}
}

// Subscribe registers a handler for the named event.
func (d *Dispatcher) Subscribe(eventName string, h Handler) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.handlers[eventName] = append(d.handlers[eventName], h)
}

// Dispatch delivers the event to every subscriber. Subscriber panics are
// recovered and logged so one misbehaving listener cannot take the workflow
// down.
func (d *Dispatcher) Dispatch(ctx context.Context, e domain.Event) {
	d.mu.RLock()
	handlers := d.handlers[e.EventName()]
	d.mu.RUnlock()

	if len(handlers) == 0 {
		logger.Warn("No subscribers for event", "event", e.EventName())
		return
	}

	for _, h := range handlers {
		func() {
			defer func() {
				if r := recover(); r != nil {
					logger.Error("Event subscriber panicked", "event", e.EventName(), "panic", r)
				}
			}()
			h(ctx, e)
		}()
	}
}

// SubscribersCount reports how many handlers are registered for an event.
func (d *Dispatcher) SubscribersCount(eventName string) int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.handlers[eventName])
}
