package client

import (
	"context"

	"github.com/osse101/SoloLeveler_Go/internal/domain"
)

// GetPlayer retrieves the player profile
func (c *APIClient) GetPlayer(ctx context.Context) (*domain.PlayerProfile, error) {
	var p domain.PlayerProfile
	if err := c.getJSON(ctx, PathPlayer, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// GetDailyTasks retrieves the daily task list and streak
func (c *APIClient) GetDailyTasks(ctx context.Context) (*domain.DailyTasks, error) {
	var t domain.DailyTasks
	if err := c.getJSON(ctx, PathDailyTasks, &t); err != nil {
		return nil, err
	}
	if t.Tasks == nil {
		t.Tasks = []domain.DailyTask{}
	}
	return &t, nil
}

// GetInventory retrieves owned items
func (c *APIClient) GetInventory(ctx context.Context) ([]domain.InventoryItem, error) {
	items := []domain.InventoryItem{}
	if err := c.getJSON(ctx, PathInventory, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// GetQuests retrieves category quest progress
func (c *APIClient) GetQuests(ctx context.Context) (*domain.Quests, error) {
	var q domain.Quests
	if err := c.getJSON(ctx, PathQuests, &q); err != nil {
		return nil, err
	}
	return &q, nil
}

// GetPersonalQuests retrieves user-authored quests
func (c *APIClient) GetPersonalQuests(ctx context.Context) ([]domain.PersonalQuest, error) {
	quests := []domain.PersonalQuest{}
	if err := c.getJSON(ctx, PathPersonalQuests, &quests); err != nil {
		return nil, err
	}
	return quests, nil
}

// GetShop retrieves the shop catalog
func (c *APIClient) GetShop(ctx context.Context) ([]domain.ShopItem, error) {
	items := []domain.ShopItem{}
	if err := c.getJSON(ctx, PathShop, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// GetAchievements retrieves all achievements, locked and unlocked
func (c *APIClient) GetAchievements(ctx context.Context) ([]domain.Achievement, error) {
	achievements := []domain.Achievement{}
	if err := c.getJSON(ctx, PathAchievements, &achievements); err != nil {
		return nil, err
	}
	return achievements, nil
}

// GetLeaderboard retrieves the ranked player list
func (c *APIClient) GetLeaderboard(ctx context.Context) (*domain.Leaderboard, error) {
	var lb domain.Leaderboard
	if err := c.getJSON(ctx, PathLeaderboard, &lb); err != nil {
		return nil, err
	}
	if lb.Players == nil {
		lb.Players = []domain.LeaderboardEntry{}
	}
	return &lb, nil
}
