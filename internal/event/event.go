package event

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/Jauphraux/SoBApp/internal/domain"
)

// Type represents the type of an event
type Type string

// Event represents a domain event on the bus
type Event struct {
	ID       string         `json:"id"`
	Version  string         `json:"version"`
	Type     Type           `json:"type"`
	Payload  any            `json:"payload"`
	Metadata map[string]any `json:"metadata,omitempty"`
}

// GetMetadataValue extracts a value from the event metadata safely
func (e Event) GetMetadataValue(key string) any {
	if e.Metadata == nil {
		return nil
	}
	return e.Metadata[key]
}

// Event types published by the services
const (
	ItemAdded          Type = domain.EventTypeItemAdded
	ItemEquipped       Type = domain.EventTypeItemEquipped
	ItemUnequipped     Type = domain.EventTypeItemUnequipped
	ItemMoved          Type = domain.EventTypeItemMoved
	ItemMerged         Type = domain.EventTypeItemMerged
	ItemSold           Type = domain.EventTypeItemSold
	ItemDiscarded      Type = domain.EventTypeItemDiscarded
	CharacterCreated   Type = domain.EventTypeCharacterCreated
	CharacterDeleted   Type = domain.EventTypeCharacterDeleted
	CharacterLeveledUp Type = domain.EventTypeCharacterLeveledUp
	DarkStoneStored    Type = domain.EventTypeDarkStoneStored
	DarkStoneRetrieved Type = domain.EventTypeDarkStoneRetrieved
	RuleRejected       Type = domain.EventTypeRuleRejected
	CatalogSynced      Type = domain.EventTypeCatalogSynced
	DefinitionCreated  Type = domain.EventTypeDefinitionCreated
)

// AllTypes lists every event type, used by subscribers that watch everything
var AllTypes = []Type{
	ItemAdded, ItemEquipped, ItemUnequipped, ItemMoved, ItemMerged, ItemSold, ItemDiscarded,
	CharacterCreated, CharacterDeleted, CharacterLeveledUp,
	DarkStoneStored, DarkStoneRetrieved, RuleRejected, CatalogSynced, DefinitionCreated,
}

// New wraps a payload in a versioned event
func New(eventType Type, payload any) Event {
	return Event{
		ID:      uuid.NewString(),
		Version: EventSchemaVersion,
		Type:    eventType,
		Payload: payload,
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

// Publish runs every subscriber synchronously and joins their errors
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
