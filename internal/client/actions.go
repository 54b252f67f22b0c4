package client

import (
	"context"

	"github.com/osse101/SoloLeveler_Go/internal/domain"
)

// CompleteTask marks the task at index as done. Only the status matters.
func (c *APIClient) CompleteTask(ctx context.Context, index int) error {
	return c.postStatus(ctx, PathCompleteTask, map[string]int{"task_index": index})
}

// CompleteQuest completes a category quest
func (c *APIClient) CompleteQuest(ctx context.Context, questName string) (*ActionResult, error) {
	return c.postAction(ctx, PathCompleteQuest, map[string]string{"quest_name": questName})
}

// AddPersonalQuest creates a user-authored quest
func (c *APIClient) AddPersonalQuest(ctx context.Context, quest domain.NewPersonalQuest) (*ActionResult, error) {
	return c.postAction(ctx, PathAddPersonalQuest, quest)
}

// CompletePersonalQuest completes a user-authored quest
func (c *APIClient) CompletePersonalQuest(ctx context.Context, questID int) (*ActionResult, error) {
	return c.postAction(ctx, PathCompletePersonalQuest, map[string]int{"quest_id": questID})
}

// DeletePersonalQuest removes a user-authored quest
func (c *APIClient) DeletePersonalQuest(ctx context.Context, questID int) (*ActionResult, error) {
	return c.postAction(ctx, PathDeletePersonalQuest, map[string]int{"quest_id": questID})
}

// AllocateStat spends one available point on a stat. Only the status matters.
func (c *APIClient) AllocateStat(ctx context.Context, statName string) error {
	return c.postStatus(ctx, PathAllocateStat, map[string]string{"stat_name": statName})
}

// BuyItem purchases a shop item
func (c *APIClient) BuyItem(ctx context.Context, itemName string) (*ActionResult, error) {
	return c.postAction(ctx, PathBuyItem, map[string]string{"item_name": itemName})
}

// UseItem consumes an inventory item
func (c *APIClient) UseItem(ctx context.Context, itemName string) (*ActionResult, error) {
	return c.postAction(ctx, PathUseItem, map[string]string{"item_name": itemName})
}

// ClaimAchievement collects the coin reward of an unlocked achievement
func (c *APIClient) ClaimAchievement(ctx context.Context, index int) (*ActionResult, error) {
	return c.postAction(ctx, PathClaimAchievement, map[string]int{"achievement_index": index})
}
