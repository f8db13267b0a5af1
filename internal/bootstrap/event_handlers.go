package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Jauphraux/SoBApp/internal/catalog"
	"github.com/Jauphraux/SoBApp/internal/domain"
	"github.com/Jauphraux/SoBApp/internal/event"
	"github.com/Jauphraux/SoBApp/internal/logger"
	"github.com/Jauphraux/SoBApp/internal/metrics"
)

// RegisterEventHandlers subscribes the metrics collector and the rejection logger
func RegisterEventHandlers(bus event.Bus) error {
	if err := metrics.NewEventMetricsCollector().Register(bus); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedRegisterMetrics, err)
	}
	slog.Info(LogMsgMetricsCollectorRegistered)

	bus.Subscribe(event.RuleRejected, logRejection)
	slog.Info(LogMsgRejectionLoggerRegistered)

	return nil
}

// logRejection records refused rule checks in the session log
func logRejection(ctx context.Context, evt event.Event) error {
	p, err := event.DecodePayload[domain.RuleRejectedPayload](evt.Payload)
	if err != nil {
		return err
	}
	logger.FromContext(ctx).Info(LogMsgRuleRejected,
		"character_id", p.CharacterID,
		"rule", p.Rule,
		"reason", p.Reason)
	return nil
}

// RegisterCatalogInvalidation purges the catalog cache whenever another service
// adds a definition, such as the dark stone created on first store
func RegisterCatalogInvalidation(bus event.Bus, svc catalog.Service) {
	bus.Subscribe(event.DefinitionCreated, func(ctx context.Context, evt event.Event) error {
		p, err := event.DecodePayload[domain.DefinitionCreatedPayload](evt.Payload)
		if err != nil {
			return err
		}
		svc.InvalidateCache(ctx)
		logger.FromContext(ctx).Info(LogMsgDefinitionCreated, "definition_id", p.DefinitionID, "name", p.Name)
		return nil
	})
	slog.Info(LogMsgCatalogInvalidationRegistered)
}
