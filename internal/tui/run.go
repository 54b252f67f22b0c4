package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/osse101/SoloLeveler_Go/internal/countdown"
	"github.com/osse101/SoloLeveler_Go/internal/event"
	"github.com/osse101/SoloLeveler_Go/internal/synchronizer"
)

// Run drives the terminal client until the user quits or ctx ends.
// It closes s on return.
func Run(ctx context.Context, s *synchronizer.Synchronizer, opts ...tea.ProgramOption) error {
	defer s.Close()

	m := NewModel(ctx, s)
	opts = append([]tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}, opts...)
	p := tea.NewProgram(m, opts...)
	m.out.bind(p.Send)

	subscribe(s.Bus(), m.out)
	s.StartCountdown(func(v countdown.View) {
		m.out.Send(countdownMsg(v))
	})

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run terminal client: %w", err)
	}
	return nil
}

// subscribe forwards bus traffic the model cannot observe from its own
// commands: background slice loads and load-time effects.
func subscribe(bus event.Bus, out *sender) {
	bus.Subscribe(event.SliceChanged, func(_ context.Context, _ event.Event) error {
		out.Send(snapshotMsg{})
		return nil
	})
	bus.Subscribe(event.OutcomeEmitted, func(_ context.Context, evt event.Event) error {
		payload, err := event.Decode[event.OutcomePayloadV1](evt)
		if err != nil {
			return err
		}
		if payload.Outcome.Action == synchronizer.ActionLoad {
			out.Send(outcomeMsg{outcome: payload.Outcome, background: true})
		}
		return nil
	})
}
