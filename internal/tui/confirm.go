package tui

import (
	"context"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
)

// confirmRequestMsg asks the model to show a yes/no prompt. The answer is
// sent on reply exactly once.
type confirmRequestMsg struct {
	prompt string
	reply  chan bool
}

// sender forwards messages into the running program. It is bound after
// the program is created.
type sender struct {
	mu   sync.RWMutex
	send func(tea.Msg)
}

func (s *sender) bind(send func(tea.Msg)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.send = send
}

func (s *sender) Send(msg tea.Msg) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.send == nil {
		return false
	}
	s.send(msg)
	return true
}

// promptConfirmer shows the prompt inside the TUI and blocks until the
// user answers or ctx ends. It runs on a command goroutine, never on the
// update loop.
type promptConfirmer struct {
	out *sender
}

func (c promptConfirmer) Confirm(ctx context.Context, prompt string) (bool, error) {
	reply := make(chan bool, 1)
	if !c.out.Send(confirmRequestMsg{prompt: prompt, reply: reply}) {
		return false, nil
	}
	select {
	case ok := <-reply:
		return ok, nil
	case <-ctx.Done():
		return false, ctx.Err()
	}
}
