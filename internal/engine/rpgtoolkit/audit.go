package rpgtoolkit

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/events"
)

// auditPriority runs the audit log after any rule handlers on the same event
const auditPriority = 1000

// SubscribeAudit logs every ship event published on bus. Events record what
// the engine decided; the orchestrator logs separately once the ship is saved.
// It returns the subscription IDs.
func SubscribeAudit(bus events.EventBus, logger *slog.Logger) []string {
	if logger == nil {
		logger = slog.Default()
	}

	handler := auditHandler(logger)
	ids := make([]string, 0, len(EventTypes))
	for _, eventType := range EventTypes {
		ids = append(ids, bus.SubscribeFunc(eventType, auditPriority, handler))
	}
	return ids
}

func auditHandler(logger *slog.Logger) events.HandlerFunc {
	return func(ctx context.Context, event events.Event) error {
		attrs := []any{"event", event.Type()}
		if source := event.Source(); source != nil {
			attrs = append(attrs, "ship_id", source.GetID())
		}
		if target := event.Target(); target != nil {
			attrs = append(attrs,
				"target_type", target.GetType(),
				"target_id", target.GetID())
		}
		logger.DebugContext(ctx, "ship event", attrs...)
		return nil
	}
}
