package tui

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/SoloLeveler_Go/internal/client"
	"github.com/osse101/SoloLeveler_Go/internal/domain"
)

type MockAPI struct {
	mock.Mock
}

var _ client.API = (*MockAPI)(nil)

func (m *MockAPI) GetPlayer(ctx context.Context) (*domain.PlayerProfile, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PlayerProfile), args.Error(1)
}

func (m *MockAPI) GetDailyTasks(ctx context.Context) (*domain.DailyTasks, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DailyTasks), args.Error(1)
}

func (m *MockAPI) GetInventory(ctx context.Context) ([]domain.InventoryItem, error) {
	args := m.Called(ctx)
	items, _ := args.Get(0).([]domain.InventoryItem)
	return items, args.Error(1)
}

func (m *MockAPI) GetQuests(ctx context.Context) (*domain.Quests, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Quests), args.Error(1)
}

func (m *MockAPI) GetPersonalQuests(ctx context.Context) ([]domain.PersonalQuest, error) {
	args := m.Called(ctx)
	quests, _ := args.Get(0).([]domain.PersonalQuest)
	return quests, args.Error(1)
}

func (m *MockAPI) GetShop(ctx context.Context) ([]domain.ShopItem, error) {
	args := m.Called(ctx)
	items, _ := args.Get(0).([]domain.ShopItem)
	return items, args.Error(1)
}

func (m *MockAPI) GetAchievements(ctx context.Context) ([]domain.Achievement, error) {
	args := m.Called(ctx)
	list, _ := args.Get(0).([]domain.Achievement)
	return list, args.Error(1)
}

func (m *MockAPI) GetLeaderboard(ctx context.Context) (*domain.Leaderboard, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Leaderboard), args.Error(1)
}

func (m *MockAPI) CompleteTask(ctx context.Context, index int) error {
	return m.Called(ctx, index).Error(0)
}

func (m *MockAPI) CompleteQuest(ctx context.Context, questName string) (*client.ActionResult, error) {
	return actionResult(m.Called(ctx, questName))
}

func (m *MockAPI) AddPersonalQuest(ctx context.Context, quest domain.NewPersonalQuest) (*client.ActionResult, error) {
	return actionResult(m.Called(ctx, quest))
}

func (m *MockAPI) CompletePersonalQuest(ctx context.Context, questID int) (*client.ActionResult, error) {
	return actionResult(m.Called(ctx, questID))
}

func (m *MockAPI) DeletePersonalQuest(ctx context.Context, questID int) (*client.ActionResult, error) {
	return actionResult(m.Called(ctx, questID))
}

func (m *MockAPI) AllocateStat(ctx context.Context, statName string) error {
	return m.Called(ctx, statName).Error(0)
}

func (m *MockAPI) BuyItem(ctx context.Context, itemName string) (*client.ActionResult, error) {
	return actionResult(m.Called(ctx, itemName))
}

func (m *MockAPI) UseItem(ctx context.Context, itemName string) (*client.ActionResult, error) {
	return actionResult(m.Called(ctx, itemName))
}

func (m *MockAPI) ClaimAchievement(ctx context.Context, index int) (*client.ActionResult, error) {
	return actionResult(m.Called(ctx, index))
}

func actionResult(args mock.Arguments) (*client.ActionResult, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*client.ActionResult), args.Error(1)
}

// expectReads stubs every read endpoint with a small fixture
func expectReads(api *MockAPI) {
	api.On("GetPlayer", mock.Anything).Return(&domain.PlayerProfile{
		Name: "Jinwoo", Level: 3, CurrentXP: 40, XPToNextLevel: 100, Coins: 120, Rank: domain.RankE,
	}, nil).Maybe()
	api.On("GetDailyTasks", mock.Anything).Return(&domain.DailyTasks{
		Tasks:  []domain.DailyTask{{Name: "Push-ups", Max: 100}, {Name: "Running", Max: 10}},
		Streak: 4,
	}, nil).Maybe()
	api.On("GetInventory", mock.Anything).Return([]domain.InventoryItem{}, nil).Maybe()
	api.On("GetQuests", mock.Anything).Return(&domain.Quests{Categories: map[string]domain.QuestProgress{}}, nil).Maybe()
	api.On("GetPersonalQuests", mock.Anything).Return([]domain.PersonalQuest{{ID: 3, Name: "Meditate"}}, nil).Maybe()
	api.On("GetShop", mock.Anything).Return([]domain.ShopItem{{Name: "Elixir", Price: 50}}, nil).Maybe()
	api.On("GetAchievements", mock.Anything).Return([]domain.Achievement{}, nil).Maybe()
	api.On("GetLeaderboard", mock.Anything).Return(&domain.Leaderboard{}, nil).Maybe()
}
