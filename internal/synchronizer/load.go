package synchronizer

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/osse101/SoloLeveler_Go/internal/domain"
	"github.com/osse101/SoloLeveler_Go/internal/effect"
	"github.com/osse101/SoloLeveler_Go/internal/event"
	"github.com/osse101/SoloLeveler_Go/internal/logger"
)

// LoadAll fetches every eager slice concurrently and waits for all of them.
// A failing slice does not affect the others; the joined error is for logging only.
func (s *Synchronizer) LoadAll(ctx context.Context) error {
	hadPlayer := s.mirror.Player() != nil

	errs := s.loadSlices(ctx, domain.EagerSlices)

	if p := s.mirror.Player(); p != nil && !hadPlayer {
		s.emit(ctx, domain.Outcome{
			Action:  ActionLoad,
			Effects: []domain.Effect{effect.LevelProgress(p.LevelProgress())},
		})
	}
	return errs
}

// LoadSlice fetches one slice and replaces it wholesale. On failure the
// slice moves to LoadError and its previous data stays visible.
func (s *Synchronizer) LoadSlice(ctx context.Context, kind domain.SliceKind) error {
	if !kind.Valid() {
		return fmt.Errorf("%w: %q", domain.ErrUnknownSlice, kind)
	}

	gen := s.mirror.BeginLoad(kind)
	s.publish(ctx, event.NewSliceChangedEvent(kind, domain.StatusLoading, nil))

	if err := s.fetch(ctx, kind); err != nil {
		logger.FromContext(ctx).Warn(LogMsgSliceLoadFailed, "slice", kind, "error", err)
		if s.mirror.FailLoad(kind, gen, err) {
			s.publish(ctx, event.NewSliceChangedEvent(kind, domain.StatusLoadError, err))
		}
		return fmt.Errorf("load %s: %w", kind, err)
	}

	s.publish(ctx, event.NewSliceChangedEvent(kind, domain.StatusLoaded, nil))
	return nil
}

// loadSlices loads kinds concurrently. Last-resolved write wins per slice.
func (s *Synchronizer) loadSlices(ctx context.Context, kinds []domain.SliceKind) error {
	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		errs []error
	)
	for _, kind := range kinds {
		wg.Add(1)
		go func(kind domain.SliceKind) {
			defer wg.Done()
			if err := s.LoadSlice(ctx, kind); err != nil {
				mu.Lock()
				errs = append(errs, err)
				mu.Unlock()
			}
		}(kind)
	}
	wg.Wait()
	return errors.Join(errs...)
}

func (s *Synchronizer) fetch(ctx context.Context, kind domain.SliceKind) error {
	switch kind {
	case domain.SlicePlayer:
		p, err := s.api.GetPlayer(ctx)
		if err != nil {
			return err
		}
		s.mirror.SetPlayer(p)
	case domain.SliceTasks:
		t, err := s.api.GetDailyTasks(ctx)
		if err != nil {
			return err
		}
		s.mirror.SetTasks(t)
	case domain.SliceInventory:
		items, err := s.api.GetInventory(ctx)
		if err != nil {
			return err
		}
		s.mirror.SetInventory(items)
	case domain.SliceQuests:
		q, err := s.api.GetQuests(ctx)
		if err != nil {
			return err
		}
		s.mirror.SetQuests(q)
	case domain.SlicePersonalQuests:
		quests, err := s.api.GetPersonalQuests(ctx)
		if err != nil {
			return err
		}
		s.mirror.SetPersonalQuests(quests)
	case domain.SliceShop:
		items, err := s.api.GetShop(ctx)
		if err != nil {
			return err
		}
		s.mirror.SetShop(items)
	case domain.SliceAchievements:
		a, err := s.api.GetAchievements(ctx)
		if err != nil {
			return err
		}
		s.mirror.SetAchievements(a)
	case domain.SliceLeaderboard:
		l, err := s.api.GetLeaderboard(ctx)
		if err != nil {
			return err
		}
		s.mirror.SetLeaderboard(l)
	default:
		return fmt.Errorf("%w: %q", domain.ErrUnknownSlice, kind)
	}
	return nil
}

// currentRank reads the mirrored rank, or "" before the player is loaded
func (s *Synchronizer) currentRank() domain.Rank {
	if p := s.mirror.Player(); p != nil {
		return p.Rank
	}
	return ""
}

// reload re-fetches kinds after a successful mutation and returns the rank
// effect when the player's rank moved away from before, which the caller
// reads ahead of sending the mutation.
func (s *Synchronizer) reload(ctx context.Context, before domain.Rank, kinds ...domain.SliceKind) []domain.Effect {
	logger.FromContext(ctx).Debug(LogMsgReloadAfterAction, "slices", kinds)
	_ = s.loadSlices(ctx, kinds)

	fx, ok := effect.RankChange(before, s.currentRank())
	if !ok {
		return nil
	}
	logger.FromContext(ctx).Info(LogMsgRankChanged, "from", fx.FromRank, "to", fx.ToRank)
	return []domain.Effect{fx}
}
