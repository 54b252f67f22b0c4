package event

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/osse101/SoloLeveler_Go/internal/domain"
)

// Type represents the type of an event
type Type string

// Event represents a generic event in the client
type Event struct {
	Version   string      `json:"version"` // Event schema version (e.g., "1.0")
	Type      Type        `json:"type"`
	Payload   interface{} `json:"payload"`
	Timestamp int64       `json:"timestamp"`
}

// Event types
const (
	// SliceChanged fires after a slice load resolves, successfully or not.
	SliceChanged Type = "slice.changed"

	// OutcomeEmitted fires after every user-triggered action.
	OutcomeEmitted Type = "outcome.emitted"

	// ScreenChanged fires when the current screen changes.
	ScreenChanged Type = "screen.changed"
)

// SliceChangedPayloadV1 is the typed payload for slice change events
type SliceChangedPayloadV1 struct {
	Kind   domain.SliceKind   `json:"kind"`
	Status domain.SliceStatus `json:"status"`
	Error  string             `json:"error,omitempty"`
}

// OutcomePayloadV1 is the typed payload for outcome events
type OutcomePayloadV1 struct {
	Outcome domain.Outcome `json:"outcome"`
}

// ScreenChangedPayloadV1 is the typed payload for screen change events
type ScreenChangedPayloadV1 struct {
	From domain.Screen `json:"from"`
	To   domain.Screen `json:"to"`
}

// NewSliceChangedEvent creates a slice change event
func NewSliceChangedEvent(kind domain.SliceKind, status domain.SliceStatus, loadErr error) Event {
	payload := SliceChangedPayloadV1{Kind: kind, Status: status}
	if loadErr != nil {
		payload.Error = loadErr.Error()
	}
	return Event{
		Version:   EventSchemaVersion,
		Type:      SliceChanged,
		Payload:   payload,
		Timestamp: time.Now().Unix(),
	}
}

// NewOutcomeEvent creates an outcome event
func NewOutcomeEvent(outcome domain.Outcome) Event {
	return Event{
		Version:   EventSchemaVersion,
		Type:      OutcomeEmitted,
		Payload:   OutcomePayloadV1{Outcome: outcome},
		Timestamp: time.Now().Unix(),
	}
}

// NewScreenChangedEvent creates a screen change event
func NewScreenChangedEvent(from, to domain.Screen) Event {
	return Event{
		Version:   EventSchemaVersion,
		Type:      ScreenChanged,
		Payload:   ScreenChangedPayloadV1{From: from, To: to},
		Timestamp: time.Now().Unix(),
	}
}

// Handler is a function that handles an event
type Handler func(ctx context.Context, event Event) error

// Bus defines the interface for an event bus
type Bus interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType Type, handler Handler)
}

// MemoryBus is an in-memory implementation of the Event Bus
type MemoryBus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewMemoryBus creates a new MemoryBus
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{
		handlers: make(map[Type][]Handler),
	}
}

// Publish publishes an event to all subscribers. Handlers run synchronously
// on the publisher's goroutine, in subscription order.
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers := append([]Handler(nil), b.handlers[event.Type]...)
	b.mu.RUnlock()

	var errs []error
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf(LogMsgHandlerErrorFormat, len(errs), event.Type, errs)
	}

	return nil
}

// Subscribe subscribes a handler to an event type
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}
