package metrics

import (
	"context"

	"github.com/Jauphraux/SoBApp/internal/domain"
	"github.com/Jauphraux/SoBApp/internal/event"
	"github.com/Jauphraux/SoBApp/internal/logger"
)

// EventMetricsCollector subscribes to events and records metrics
type EventMetricsCollector struct{}

// NewEventMetricsCollector creates a new event metrics collector
func NewEventMetricsCollector() *EventMetricsCollector {
	return &EventMetricsCollector{}
}

// Register subscribes to every event type
func (e *EventMetricsCollector) Register(bus event.Bus) error {
	for _, eventType := range event.AllTypes {
		bus.Subscribe(eventType, e.HandleEvent)
	}
	return nil
}

// HandleEvent processes events and updates metrics. Undecodable payloads
// are counted as handler errors but never fail the publish.
func (e *EventMetricsCollector) HandleEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	EventsPublished.WithLabelValues(string(evt.Type)).Inc()

	if err := e.record(evt); err != nil {
		EventHandlerErrors.WithLabelValues(string(evt.Type)).Inc()
		log.Debug(LogMsgPayloadDecodeFailed, "type", evt.Type, "error", err)
		return nil
	}

	log.Debug(LogMsgMetricsRecorded, "type", evt.Type)
	return nil
}

func (e *EventMetricsCollector) record(evt event.Event) error {
	switch evt.Type {
	case event.ItemEquipped:
		p, err := event.DecodePayload[domain.ItemEquipPayload](evt.Payload)
		if err != nil {
			return err
		}
		slot := p.Slot
		if slot == "" {
			slot = SlotNone
		}
		ItemsEquipped.WithLabelValues(slot).Inc()

	case event.ItemMoved:
		ItemsMoved.WithLabelValues(OutcomeMoved).Inc()

	case event.ItemMerged:
		ItemsMoved.WithLabelValues(OutcomeMerged).Inc()

	case event.ItemSold:
		p, err := event.DecodePayload[domain.ItemSoldPayload](evt.Payload)
		if err != nil {
			return err
		}
		ItemsSold.WithLabelValues(p.ItemName).Add(float64(p.Quantity))
		GoldEarned.Add(float64(p.TotalValue))

	case event.DarkStoneStored:
		DarkStoneTransfers.WithLabelValues(DirectionStored).Inc()

	case event.DarkStoneRetrieved:
		DarkStoneTransfers.WithLabelValues(DirectionRetrieved).Inc()

	case event.RuleRejected:
		p, err := event.DecodePayload[domain.RuleRejectedPayload](evt.Payload)
		if err != nil {
			return err
		}
		RuleRejections.WithLabelValues(p.Rule).Inc()

	case event.CatalogSynced:
		p, err := event.DecodePayload[domain.CatalogSyncedPayload](evt.Payload)
		if err != nil {
			return err
		}
		DefinitionsSynced.WithLabelValues(p.ConfigName).Add(float64(p.Inserted))

	case event.CharacterCreated:
		CharactersCreated.Inc()

	case event.CharacterLeveledUp:
		CharacterLevelUps.Inc()
	}
	return nil
}
