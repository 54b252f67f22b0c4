// Package synchronizer keeps the in-memory mirror in step with the server.
// Every mutation goes to the server first; on success the affected slices
// are re-fetched and replaced wholesale. The mirror is never edited
// optimistically.
package synchronizer

import (
	"context"
	"sync"
	"time"

	"github.com/osse101/SoloLeveler_Go/internal/client"
	"github.com/osse101/SoloLeveler_Go/internal/countdown"
	"github.com/osse101/SoloLeveler_Go/internal/domain"
	"github.com/osse101/SoloLeveler_Go/internal/effect"
	"github.com/osse101/SoloLeveler_Go/internal/event"
	"github.com/osse101/SoloLeveler_Go/internal/logger"
	"github.com/osse101/SoloLeveler_Go/internal/mirror"
)

// Synchronizer coordinates the API, the mirror and the event bus
type Synchronizer struct {
	api     client.API
	mirror  *mirror.Mirror
	bus     event.Bus
	effects *effect.Builder

	countdownWarning time.Duration

	mu     sync.RWMutex
	screen domain.Screen
	ticker *countdown.Ticker
}

// Option configures a Synchronizer
type Option func(*Synchronizer)

// WithEffectBuilder overrides the particle source
func WithEffectBuilder(b *effect.Builder) Option {
	return func(s *Synchronizer) { s.effects = b }
}

// WithCountdownWarning overrides the countdown warning threshold
func WithCountdownWarning(d time.Duration) Option {
	return func(s *Synchronizer) { s.countdownWarning = d }
}

// New creates a Synchronizer over api. A nil bus gets an in-memory one.
func New(api client.API, bus event.Bus, opts ...Option) *Synchronizer {
	if bus == nil {
		bus = event.NewMemoryBus()
	}
	s := &Synchronizer{
		api:              api,
		bus:              bus,
		countdownWarning: countdown.DefaultWarning,
		screen:           domain.Screens[0],
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.mirror == nil {
		s.mirror = mirror.New()
	}
	if s.effects == nil {
		s.effects = effect.NewDefaultBuilder()
	}
	return s
}

// Mirror exposes the read side of the state
func (s *Synchronizer) Mirror() *mirror.Mirror {
	return s.mirror
}

// Bus returns the event bus outcomes and slice changes are published on
func (s *Synchronizer) Bus() event.Bus {
	return s.bus
}

// Snapshot is shorthand for Mirror().Snapshot()
func (s *Synchronizer) Snapshot() mirror.Snapshot {
	return s.mirror.Snapshot()
}

// StartCountdown runs the reset countdown, calling onTick once per second
// until Close. Calling it again replaces the previous ticker.
func (s *Synchronizer) StartCountdown(onTick func(countdown.View), opts ...countdown.Option) {
	opts = append([]countdown.Option{countdown.WithWarning(s.countdownWarning)}, opts...)
	t := countdown.NewTicker(onTick, opts...)

	s.mu.Lock()
	prev := s.ticker
	s.ticker = t
	s.mu.Unlock()

	if prev != nil {
		prev.Stop()
	}
	t.Start()
}

// Countdown returns the current countdown view
func (s *Synchronizer) Countdown() countdown.View {
	return countdown.Compute(time.Now(), s.countdownWarning)
}

// Close stops the countdown ticker. In-flight requests finish on their own.
func (s *Synchronizer) Close() {
	s.mu.Lock()
	t := s.ticker
	s.ticker = nil
	s.mu.Unlock()

	if t != nil {
		t.Stop()
	}
}

// publish sends evt and logs handler failures; the caller never sees them
func (s *Synchronizer) publish(ctx context.Context, evt event.Event) {
	if err := s.bus.Publish(ctx, evt); err != nil {
		logger.FromContext(ctx).Warn(LogMsgPublishFailed, "type", evt.Type, "error", err)
	}
}

// emit publishes an outcome and hands it back to the caller
func (s *Synchronizer) emit(ctx context.Context, out domain.Outcome) domain.Outcome {
	if out.Err != nil {
		logger.FromContext(ctx).Info(LogMsgActionFailed, "action", out.Action, "error", out.Err)
	}
	s.publish(ctx, event.NewOutcomeEvent(out))
	return out
}
