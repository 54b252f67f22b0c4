package synchronizer

import (
	"context"
	"fmt"

	"github.com/osse101/SoloLeveler_Go/internal/domain"
	"github.com/osse101/SoloLeveler_Go/internal/event"
)

// Screen returns the current screen
func (s *Synchronizer) Screen() domain.Screen {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.screen
}

// Navigate switches to screen. Entering the leaderboard fetches it.
func (s *Synchronizer) Navigate(ctx context.Context, screen domain.Screen) error {
	if !screen.Valid() {
		return fmt.Errorf("%w: %q", domain.ErrUnknownScreen, screen)
	}

	s.mu.Lock()
	from := s.screen
	s.screen = screen
	s.mu.Unlock()

	if from != screen {
		s.publish(ctx, event.NewScreenChangedEvent(from, screen))
	}

	if screen == domain.ScreenLeaderboard {
		// Failure leaves the previous board visible; the load already logged it
		_ = s.LoadSlice(ctx, domain.SliceLeaderboard)
	}
	return nil
}

// NavigateNext moves one screen forward, wrapping at the end
func (s *Synchronizer) NavigateNext(ctx context.Context) error {
	return s.Navigate(ctx, s.Screen().Next())
}

// NavigatePrev moves one screen back, wrapping at the start
func (s *Synchronizer) NavigatePrev(ctx context.Context) error {
	return s.Navigate(ctx, s.Screen().Prev())
}
