package synchronizer

import (
	"context"
	"fmt"

	"github.com/osse101/SoloLeveler_Go/internal/client"
	"github.com/osse101/SoloLeveler_Go/internal/domain"
	"github.com/osse101/SoloLeveler_Go/internal/effect"
	"github.com/osse101/SoloLeveler_Go/internal/logger"
	"github.com/osse101/SoloLeveler_Go/internal/view"
)

// CompleteTask marks the task at index as done. On success it reloads the
// tasks and player slices and plays the completion effects, plus the rank
// effect when the rank moved.
func (s *Synchronizer) CompleteTask(ctx context.Context, index int) domain.Outcome {
	if err := s.CanComplete(index); err != nil {
		return s.emit(ctx, failure(ActionCompleteTask, err))
	}

	before := s.currentRank()
	message := MsgTaskCompleted
	if t := s.mirror.Tasks(); t != nil {
		message = fmt.Sprintf(MsgTaskCompletedFormat, t.Tasks[index].Name)
	}

	if err := s.api.CompleteTask(ctx, index); err != nil {
		return s.emit(ctx, failure(ActionCompleteTask, err))
	}

	rankFx := s.reload(ctx, before, domain.SliceTasks, domain.SlicePlayer)
	effects := append([]domain.Effect{
		effect.TaskFlash(index),
		effect.Glow(),
		s.effects.Particles(),
	}, rankFx...)
	return s.emit(ctx, success(ActionCompleteTask, message, effects...))
}

// CanComplete refuses an index outside the mirrored task list. Before the
// tasks slice loads the server decides.
func (s *Synchronizer) CanComplete(index int) error {
	t := s.mirror.Tasks()
	if t == nil {
		return nil
	}
	if index < 0 || index >= len(t.Tasks) {
		return fmt.Errorf("%w: index %d of %d", domain.ErrTaskNotFound, index, len(t.Tasks))
	}
	return nil
}

// CompleteQuest completes a category quest
func (s *Synchronizer) CompleteQuest(ctx context.Context, name string) domain.Outcome {
	before := s.currentRank()
	res, err := s.api.CompleteQuest(ctx, name)
	if err != nil {
		return s.emit(ctx, failure(ActionCompleteQuest, err))
	}
	fx := s.reload(ctx, before, domain.SliceQuests, domain.SlicePlayer)
	return s.emit(ctx, success(ActionCompleteQuest, rewardMessage(MsgQuestCompleted, res), fx...))
}

// AddPersonalQuest validates and creates a user-authored quest. Invalid
// input is refused locally and nothing is sent.
func (s *Synchronizer) AddPersonalQuest(ctx context.Context, name, description string) domain.Outcome {
	quest, err := ValidatePersonalQuest(name, description)
	if err != nil {
		return s.emit(ctx, failure(ActionAddPersonalQuest, err))
	}

	res, err := s.api.AddPersonalQuest(ctx, quest)
	if err != nil {
		return s.emit(ctx, failure(ActionAddPersonalQuest, err))
	}
	s.reload(ctx, "", domain.SlicePersonalQuests, domain.SliceQuests)
	return s.emit(ctx, success(ActionAddPersonalQuest, messageOr(res, MsgPersonalQuestAdded)))
}

// CompletePersonalQuest completes a user-authored quest
func (s *Synchronizer) CompletePersonalQuest(ctx context.Context, id int) domain.Outcome {
	before := s.currentRank()
	res, err := s.api.CompletePersonalQuest(ctx, id)
	if err != nil {
		return s.emit(ctx, failure(ActionCompletePersonalQuest, err))
	}
	fx := s.reload(ctx, before, domain.SlicePersonalQuests, domain.SliceQuests, domain.SlicePlayer)
	return s.emit(ctx, success(ActionCompletePersonalQuest, rewardMessage(MsgQuestCompleted, res), fx...))
}

// DeletePersonalQuest removes a user-authored quest after confirm approves.
// A decline, a failed prompt or a nil confirmer sends nothing.
func (s *Synchronizer) DeletePersonalQuest(ctx context.Context, id int, confirm Confirmer) domain.Outcome {
	if confirm == nil {
		return s.emit(ctx, failure(ActionDeletePersonalQuest, fmt.Errorf("%w: no confirmation available", domain.ErrCancelled)))
	}

	ok, err := confirm.Confirm(ctx, s.deletePrompt(id))
	if err != nil {
		logger.FromContext(ctx).Warn(LogMsgConfirmFailed, "quest_id", id, "error", err)
		return s.emit(ctx, failure(ActionDeletePersonalQuest, fmt.Errorf("%w: %v", domain.ErrCancelled, err)))
	}
	if !ok {
		out := failure(ActionDeletePersonalQuest, domain.ErrCancelled)
		out.Notification.Message = MsgDeleteCancelled
		return s.emit(ctx, out)
	}

	res, err := s.api.DeletePersonalQuest(ctx, id)
	if err != nil {
		return s.emit(ctx, failure(ActionDeletePersonalQuest, err))
	}
	s.reload(ctx, "", domain.SlicePersonalQuests, domain.SliceQuests)
	return s.emit(ctx, success(ActionDeletePersonalQuest, messageOr(res, MsgPersonalQuestDeleted)))
}

func (s *Synchronizer) deletePrompt(id int) string {
	for _, q := range s.mirror.Snapshot().PersonalQuests {
		if q.ID == id {
			return fmt.Sprintf(MsgConfirmDeleteFormat, q.Name)
		}
	}
	return fmt.Sprintf(MsgConfirmDeleteUnknownID, id)
}

// AllocateStat spends one available point on stat
func (s *Synchronizer) AllocateStat(ctx context.Context, stat string) domain.Outcome {
	before := s.currentRank()
	if err := s.api.AllocateStat(ctx, stat); err != nil {
		return s.emit(ctx, failure(ActionAllocateStat, err))
	}
	fx := s.reload(ctx, before, domain.SlicePlayer)
	return s.emit(ctx, success(ActionAllocateStat, fmt.Sprintf(MsgStatAllocatedFormat, view.Title(stat)), fx...))
}

// CanBuy checks the mirrored balance against the mirrored price. When
// either slice is missing the guard cannot decide and lets the server judge.
func (s *Synchronizer) CanBuy(name string) error {
	p := s.mirror.Player()
	item, ok := s.mirror.ShopItem(name)
	if p == nil || !ok {
		return nil
	}
	if !item.Affordable(p.Coins) {
		return fmt.Errorf("%w: %s costs %d, you have %d", domain.ErrInsufficientCoins, item.Name, item.Price, p.Coins)
	}
	return nil
}

// BuyItem purchases a shop item, refusing locally when the mirror says it
// is unaffordable
func (s *Synchronizer) BuyItem(ctx context.Context, name string) domain.Outcome {
	if err := s.CanBuy(name); err != nil {
		return s.emit(ctx, failure(ActionBuyItem, err))
	}

	before := s.currentRank()
	res, err := s.api.BuyItem(ctx, name)
	if err != nil {
		return s.emit(ctx, failure(ActionBuyItem, err))
	}
	fx := s.reload(ctx, before, domain.SlicePlayer, domain.SliceInventory)
	return s.emit(ctx, success(ActionBuyItem, messageOr(res, fmt.Sprintf(MsgItemBoughtFormat, name)), fx...))
}

// CanUse refuses items the mirrored inventory does not hold. Before the
// inventory slice loads the server decides.
func (s *Synchronizer) CanUse(name string) error {
	snap := s.mirror.Snapshot()
	if !snap.Loaded(domain.SliceInventory) {
		return nil
	}
	for _, item := range snap.Inventory {
		if item.Name == name && item.Quantity > 0 {
			return nil
		}
	}
	return fmt.Errorf("%w: %s", domain.ErrItemNotFound, name)
}

// UseItem consumes an inventory item, refusing locally when the mirror
// says it is not held
func (s *Synchronizer) UseItem(ctx context.Context, name string) domain.Outcome {
	if err := s.CanUse(name); err != nil {
		return s.emit(ctx, failure(ActionUseItem, err))
	}

	before := s.currentRank()
	res, err := s.api.UseItem(ctx, name)
	if err != nil {
		return s.emit(ctx, failure(ActionUseItem, err))
	}
	fx := s.reload(ctx, before, domain.SliceInventory, domain.SlicePlayer)
	return s.emit(ctx, success(ActionUseItem, messageOr(res, fmt.Sprintf(MsgItemUsedFormat, name)), fx...))
}

// CanClaim reports whether the mirrored achievement at index is claimable
func (s *Synchronizer) CanClaim(index int) error {
	a, ok := s.mirror.Achievement(index)
	if !ok {
		return fmt.Errorf("%w: index %d", domain.ErrAchievementIndex, index)
	}
	if !a.Claimable() {
		return fmt.Errorf("%w: %s", domain.ErrNotClaimable, a.Name)
	}
	return nil
}

// ClaimAchievement collects an achievement's coins. Only claimable
// achievements are sent.
func (s *Synchronizer) ClaimAchievement(ctx context.Context, index int) domain.Outcome {
	if err := s.CanClaim(index); err != nil {
		return s.emit(ctx, failure(ActionClaimAchievement, err))
	}

	before := s.currentRank()
	res, err := s.api.ClaimAchievement(ctx, index)
	if err != nil {
		return s.emit(ctx, failure(ActionClaimAchievement, err))
	}
	fx := s.reload(ctx, before, domain.SliceAchievements, domain.SlicePlayer)

	message := MsgAchievementClaimed
	if res.CoinsAwarded > 0 {
		message = fmt.Sprintf(MsgCoinsAwardedFormat, MsgAchievementClaimed, res.CoinsAwarded)
	}
	return s.emit(ctx, success(ActionClaimAchievement, message, fx...))
}

// LevelGlow plays the level glow effect. It touches nothing else.
func (s *Synchronizer) LevelGlow(ctx context.Context) domain.Outcome {
	return s.emit(ctx, domain.Outcome{Action: ActionLevelGlow, Effects: []domain.Effect{effect.LevelGlow()}})
}

// Perform dispatches a rendered affordance to its operation. extra carries
// free-form input such as a new quest's name and description.
func (s *Synchronizer) Perform(ctx context.Context, a view.Action, confirm Confirmer, extra ...string) domain.Outcome {
	switch a.Kind {
	case view.ActionCompleteTask:
		return s.CompleteTask(ctx, a.Index)
	case view.ActionCompleteQuest:
		return s.CompleteQuest(ctx, a.Arg)
	case view.ActionAddPersonalQuest:
		var name, description string
		if len(extra) > 0 {
			name = extra[0]
		}
		if len(extra) > 1 {
			description = extra[1]
		}
		return s.AddPersonalQuest(ctx, name, description)
	case view.ActionCompletePersonalQuest:
		return s.CompletePersonalQuest(ctx, a.Index)
	case view.ActionDeletePersonalQuest:
		return s.DeletePersonalQuest(ctx, a.Index, confirm)
	case view.ActionAllocateStat:
		return s.AllocateStat(ctx, a.Arg)
	case view.ActionBuyItem:
		return s.BuyItem(ctx, a.Arg)
	case view.ActionUseItem:
		return s.UseItem(ctx, a.Arg)
	case view.ActionClaimAchievement:
		return s.ClaimAchievement(ctx, a.Index)
	}
	return s.emit(ctx, failure(string(a.Kind), fmt.Errorf("%w: unknown action %q", domain.ErrInvalidInput, a.Kind)))
}

func rewardMessage(base string, res *client.ActionResult) string {
	if res != nil && res.Rewards != nil {
		return fmt.Sprintf(MsgRewardsFormat, base, res.Rewards.XP, res.Rewards.Coins)
	}
	return messageOr(res, base)
}

func messageOr(res *client.ActionResult, fallback string) string {
	if res != nil && res.Message != "" {
		return res.Message
	}
	return fallback
}
