package metrics

import (
	"context"

	"github.com/osse101/SoloLeveler_Go/internal/domain"
	"github.com/osse101/SoloLeveler_Go/internal/event"
	"github.com/osse101/SoloLeveler_Go/internal/logger"
)

// EventMetricsCollector subscribes to synchronizer events and records metrics
type EventMetricsCollector struct{}

// NewEventMetricsCollector creates a new event metrics collector
func NewEventMetricsCollector() *EventMetricsCollector {
	return &EventMetricsCollector{}
}

// Register subscribes to slice and outcome events
func (e *EventMetricsCollector) Register(bus event.Bus) {
	bus.Subscribe(event.SliceChanged, e.HandleSliceChanged)
	bus.Subscribe(event.OutcomeEmitted, e.HandleOutcome)
}

// HandleSliceChanged counts slice loads by result
func (e *EventMetricsCollector) HandleSliceChanged(ctx context.Context, evt event.Event) error {
	payload, err := event.Decode[event.SliceChangedPayloadV1](evt)
	if err != nil {
		logger.FromContext(ctx).Debug(LogMsgEventPayloadDecode, "type", evt.Type, "error", err)
		return nil
	}
	if payload.Status == domain.StatusLoading {
		return nil
	}
	SliceLoadsTotal.WithLabelValues(string(payload.Kind), payload.Status.String()).Inc()
	return nil
}

// HandleOutcome counts notifications and effects
func (e *EventMetricsCollector) HandleOutcome(ctx context.Context, evt event.Event) error {
	payload, err := event.Decode[event.OutcomePayloadV1](evt)
	if err != nil {
		logger.FromContext(ctx).Debug(LogMsgEventPayloadDecode, "type", evt.Type, "error", err)
		return nil
	}

	if !payload.Outcome.Notification.IsZero() {
		NotificationsTotal.WithLabelValues(string(payload.Outcome.Notification.Level)).Inc()
	}
	for _, fx := range payload.Outcome.Effects {
		EffectsTotal.WithLabelValues(string(fx.Kind)).Inc()
	}
	return nil
}
