package synchronizer

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/osse101/SoloLeveler_Go/internal/client"
	"github.com/osse101/SoloLeveler_Go/internal/domain"
	"github.com/osse101/SoloLeveler_Go/internal/effect"
	"github.com/osse101/SoloLeveler_Go/internal/event"
)

// fakeBackend is an in-memory stand-in for the game server
type fakeBackend struct {
	mu sync.Mutex

	player       domain.PlayerProfile
	tasks        domain.DailyTasks
	inventory    []domain.InventoryItem
	quests       map[string]interface{}
	personal     []domain.PersonalQuest
	shop         []domain.ShopItem
	achievements []domain.Achievement
	leaderboard  domain.Leaderboard

	// rankAfterTask replaces the player's rank when a task completes
	rankAfterTask domain.Rank

	calls  map[string]int
	bodies map[string]map[string]interface{}
	fail   map[string]int
}

func newFakeBackend() *fakeBackend {
	next := 20.0
	return &fakeBackend{
		player: domain.PlayerProfile{
			Name: "Jinwoo", Level: 5, CurrentXP: 50, XPToNextLevel: 100,
			Coins: 100, Rank: domain.RankE, PointsToNextRank: &next,
			Stats: domain.StatBlock{AvailablePoints: 1},
		},
		tasks: domain.DailyTasks{
			Tasks: []domain.DailyTask{
				{ID: 1, Name: "Push-ups", Max: 100},
				{ID: 2, Name: "Running", Max: 10},
			},
			Streak: 2,
		},
		inventory: []domain.InventoryItem{{Name: "Potion", Type: domain.ItemTypeConsumable, Quantity: 1}},
		quests: map[string]interface{}{
			domain.QuestDiscipline: domain.QuestProgress{Max: 5},
			"personal_quests":      1,
		},
		personal: []domain.PersonalQuest{{ID: 7, Name: "Read a book"}},
		shop:     []domain.ShopItem{{Name: "Elixir", Price: 50}, {Name: "Crown", Price: 500}},
		achievements: []domain.Achievement{
			{Name: "Locked"},
			{Name: "First Steps", Unlocked: true, RewardCoins: 25},
		},
		leaderboard: domain.Leaderboard{
			CurrentPlayerPosition: 1, TotalPlayers: 1,
			Players: []domain.LeaderboardEntry{{Position: 1, Name: "Jinwoo"}},
		},
		calls:  make(map[string]int),
		bodies: make(map[string]map[string]interface{}),
		fail:   make(map[string]int),
	}
}

func (f *fakeBackend) Calls(path string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[path]
}

func (f *fakeBackend) Body(path string) map[string]interface{} {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.bodies[path]
}

func (f *fakeBackend) Fail(path string, status int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.fail[path] = status
}

func (f *fakeBackend) Update(fn func(f *fakeBackend)) {
	f.mu.Lock()
	defer f.mu.Unlock()
	fn(f)
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func (f *fakeBackend) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.calls[r.URL.Path]++
	if r.Method == http.MethodPost {
		var body map[string]interface{}
		_ = json.NewDecoder(r.Body).Decode(&body)
		f.bodies[r.URL.Path] = body
	}
	if status, ok := f.fail[r.URL.Path]; ok {
		writeJSON(w, status, map[string]string{"error": "backend unavailable"})
		return
	}

	switch r.URL.Path {
	case client.PathPlayer:
		writeJSON(w, http.StatusOK, f.player)
	case client.PathDailyTasks:
		writeJSON(w, http.StatusOK, f.tasks)
	case client.PathInventory:
		writeJSON(w, http.StatusOK, f.inventory)
	case client.PathQuests:
		writeJSON(w, http.StatusOK, f.quests)
	case client.PathPersonalQuests:
		writeJSON(w, http.StatusOK, f.personal)
	case client.PathShop:
		writeJSON(w, http.StatusOK, f.shop)
	case client.PathAchievements:
		writeJSON(w, http.StatusOK, f.achievements)
	case client.PathLeaderboard:
		writeJSON(w, http.StatusOK, f.leaderboard)

	case client.PathCompleteTask:
		idx := int(f.bodies[r.URL.Path]["task_index"].(float64))
		f.tasks.Tasks[idx].Completed = true
		f.tasks.Tasks[idx].Progress = f.tasks.Tasks[idx].Max
		if f.rankAfterTask != "" {
			f.player.Rank = f.rankAfterTask
		}
		w.WriteHeader(http.StatusOK)

	case client.PathCompleteQuest:
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"success": true,
			"rewards": map[string]int{"xp": 50, "coins": 10},
		})

	case client.PathAddPersonalQuest:
		body := f.bodies[r.URL.Path]
		f.personal = append(f.personal, domain.PersonalQuest{ID: 8, Name: body["name"].(string)})
		writeJSON(w, http.StatusOK, map[string]interface{}{"success": true})

	case client.PathDeletePersonalQuest:
		f.personal = nil
		writeJSON(w, http.StatusOK, map[string]interface{}{"success": true})

	case client.PathAllocateStat:
		f.player.Stats.Strength++
		f.player.Stats.AvailablePoints--
		writeJSON(w, http.StatusOK, map[string]interface{}{"success": true})

	case client.PathBuyItem:
		name := f.bodies[r.URL.Path]["item_name"].(string)
		for _, item := range f.shop {
			if item.Name != name {
				continue
			}
			if f.player.Coins < item.Price {
				writeJSON(w, http.StatusOK, map[string]interface{}{"success": false, "error": "Not enough coins"})
				return
			}
			f.player.Coins -= item.Price
			f.inventory = append(f.inventory, domain.InventoryItem{Name: name, Quantity: 1})
		}
		writeJSON(w, http.StatusOK, map[string]interface{}{"success": true})

	case client.PathUseItem:
		name := f.bodies[r.URL.Path]["item_name"].(string)
		kept := f.inventory[:0]
		for _, item := range f.inventory {
			if item.Name == name {
				item.Quantity--
			}
			if item.Quantity > 0 {
				kept = append(kept, item)
			}
		}
		f.inventory = kept
		writeJSON(w, http.StatusOK, map[string]interface{}{"success": true})

	case client.PathClaimAchievement:
		idx := int(f.bodies[r.URL.Path]["achievement_index"].(float64))
		f.achievements[idx].Claimed = true
		f.player.Coins += f.achievements[idx].RewardCoins
		writeJSON(w, http.StatusOK, map[string]interface{}{"success": true, "coins_awarded": f.achievements[idx].RewardCoins})

	default:
		http.NotFound(w, r)
	}
}

// setupTestSync wires a Synchronizer to a fake backend over real HTTP
func setupTestSync(t *testing.T) (*Synchronizer, *fakeBackend, *httptest.Server) {
	t.Helper()

	backend := newFakeBackend()
	server := httptest.NewServer(backend)
	t.Cleanup(server.Close)

	api := client.NewAPIClient(server.URL, "test-key", 2*time.Second)
	s := New(api, event.NewMemoryBus(), WithEffectBuilder(effect.NewBuilder(1)))
	t.Cleanup(s.Close)
	return s, backend, server
}

// recordOutcomes collects every published outcome
func recordOutcomes(bus event.Bus) *[]domain.Outcome {
	var mu sync.Mutex
	var outcomes []domain.Outcome
	bus.Subscribe(event.OutcomeEmitted, func(_ context.Context, evt event.Event) error {
		payload, err := event.DecodePayload[event.OutcomePayloadV1](evt.Payload)
		if err != nil {
			return err
		}
		mu.Lock()
		outcomes = append(outcomes, payload.Outcome)
		mu.Unlock()
		return nil
	})
	return &outcomes
}

func effectOf(out domain.Outcome, kind domain.EffectKind) (domain.Effect, bool) {
	for _, e := range out.Effects {
		if e.Kind == kind {
			return e, true
		}
	}
	return domain.Effect{}, false
}

type recordingConfirmer struct {
	answer  bool
	err     error
	prompts []string
}

func (r *recordingConfirmer) Confirm(_ context.Context, prompt string) (bool, error) {
	r.prompts = append(r.prompts, prompt)
	return r.answer, r.err
}
