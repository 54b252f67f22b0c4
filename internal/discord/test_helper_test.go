package discord

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/osse101/SoloLeveler_Go/internal/client"
	"github.com/osse101/SoloLeveler_Go/internal/domain"
	"github.com/osse101/SoloLeveler_Go/internal/synchronizer"
)

// MockRoundTripper implements http.RoundTripper for intercepting requests
type MockRoundTripper struct {
	RoundTripFunc func(req *http.Request) (*http.Response, error)
}

func (m *MockRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	return m.RoundTripFunc(req)
}

// TestContext bundles a fake game server, a synchronizer talking to it,
// and a Discord session whose API calls are captured instead of sent.
type TestContext struct {
	Server       *httptest.Server
	Mux          *http.ServeMux
	Sync         *synchronizer.Synchronizer
	Bot          *Bot
	Session      *discordgo.Session
	DiscordMocks *MockRoundTripper

	mu        sync.Mutex
	edits     []capturedEdit
	responses []discordgo.InteractionResponse
	failing   map[string]bool
}

// Fail makes the fake server answer 500 on path
func (c *TestContext) Fail(path string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.failing[path] = true
}

func (c *TestContext) isFailing(path string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.failing[path]
}

// capturedEdit mirrors the webhook edit body. Components are decoded
// structurally because discordgo cannot unmarshal its component interface.
type capturedEdit struct {
	Content    *string                   `json:"content"`
	Embeds     []*discordgo.MessageEmbed `json:"embeds"`
	Components []struct {
		Components []capturedButton `json:"components"`
	} `json:"components"`
}

type capturedButton struct {
	Label    string `json:"label"`
	CustomID string `json:"custom_id"`
	Disabled bool   `json:"disabled"`
	Style    int    `json:"style"`
}

// Buttons flattens the edit's button rows
func (e capturedEdit) Buttons() []capturedButton {
	var out []capturedButton
	for _, row := range e.Components {
		out = append(out, row.Components...)
	}
	return out
}

func SetupTestContext(t *testing.T) *TestContext {
	t.Helper()

	ctx := &TestContext{
		Mux:     http.NewServeMux(),
		failing: make(map[string]bool),
	}
	ctx.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if ctx.isFailing(r.URL.Path) {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		ctx.Mux.ServeHTTP(w, r)
	}))

	api := client.NewAPIClient(ctx.Server.URL, "test-api-key", 5*time.Second)
	syncer := synchronizer.New(api, nil)
	ctx.Sync = syncer

	session, err := discordgo.New("Bot test-token")
	if err != nil {
		t.Fatalf("Failed to create mock session: %v", err)
	}
	ctx.Session = session

	// Capture Discord calls: PATCH edits the deferred response, POST is an
	// interaction callback.
	ctx.DiscordMocks = &MockRoundTripper{
		RoundTripFunc: func(req *http.Request) (*http.Response, error) {
			raw, _ := io.ReadAll(req.Body)
			ctx.mu.Lock()
			switch {
			case req.Method == http.MethodPatch:
				var edit capturedEdit
				_ = json.Unmarshal(raw, &edit)
				ctx.edits = append(ctx.edits, edit)
			case req.Method == http.MethodPost && strings.HasSuffix(req.URL.Path, "/callback"):
				var resp discordgo.InteractionResponse
				_ = json.Unmarshal(raw, &resp)
				ctx.responses = append(ctx.responses, resp)
			}
			ctx.mu.Unlock()
			return &http.Response{
				StatusCode: http.StatusOK,
				Body:       io.NopCloser(bytes.NewBufferString("{}")),
				Header:     make(http.Header),
			}, nil
		},
	}
	session.Client = &http.Client{Transport: ctx.DiscordMocks}
	ctx.Bot = newBot(session, Config{AppID: "app"}, syncer)

	t.Cleanup(func() {
		syncer.Close()
		ctx.Server.Close()
	})

	return ctx
}

// Edits returns every captured response edit
func (c *TestContext) Edits() []capturedEdit {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]capturedEdit(nil), c.edits...)
}

// LastEdit returns the most recent response edit
func (c *TestContext) LastEdit(t *testing.T) capturedEdit {
	t.Helper()
	edits := c.Edits()
	if len(edits) == 0 {
		t.Fatal("no response edit captured")
	}
	return edits[len(edits)-1]
}

// Responses returns every captured interaction callback
func (c *TestContext) Responses() []discordgo.InteractionResponse {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]discordgo.InteractionResponse(nil), c.responses...)
}

// Serve registers the default fixture for every read endpoint
func (c *TestContext) Serve(player domain.PlayerProfile, tasks domain.DailyTasks) {
	c.Mux.HandleFunc(client.PathPlayer, func(w http.ResponseWriter, r *http.Request) { WriteJSON(w, player) })
	c.Mux.HandleFunc(client.PathDailyTasks, func(w http.ResponseWriter, r *http.Request) { WriteJSON(w, tasks) })
	c.Mux.HandleFunc(client.PathInventory, func(w http.ResponseWriter, r *http.Request) {
		WriteJSON(w, []domain.InventoryItem{{Name: "Potion", Type: domain.ItemTypeConsumable, Quantity: 2}})
	})
	c.Mux.HandleFunc(client.PathQuests, func(w http.ResponseWriter, r *http.Request) {
		WriteJSON(w, map[string]interface{}{domain.QuestDiscipline: domain.QuestProgress{Max: 5}, "personal_quests": 1})
	})
	c.Mux.HandleFunc(client.PathPersonalQuests, func(w http.ResponseWriter, r *http.Request) {
		WriteJSON(w, []domain.PersonalQuest{{ID: 7, Name: "Read a book"}})
	})
	c.Mux.HandleFunc(client.PathShop, func(w http.ResponseWriter, r *http.Request) {
		WriteJSON(w, []domain.ShopItem{{Name: "Elixir", Price: 50}, {Name: "Crown", Price: 500}})
	})
	c.Mux.HandleFunc(client.PathAchievements, func(w http.ResponseWriter, r *http.Request) {
		WriteJSON(w, []domain.Achievement{{Name: "Locked"}, {Name: "First Steps", Unlocked: true, RewardCoins: 25}})
	})
	c.Mux.HandleFunc(client.PathLeaderboard, func(w http.ResponseWriter, r *http.Request) {
		WriteJSON(w, domain.Leaderboard{CurrentPlayerPosition: 1, TotalPlayers: 1, Players: []domain.LeaderboardEntry{{Position: 1, Name: "Jinwoo"}}})
	})
}

func defaultPlayer() domain.PlayerProfile {
	return domain.PlayerProfile{Name: "Jinwoo", Level: 5, CurrentXP: 50, XPToNextLevel: 100, Coins: 100, Rank: domain.RankE}
}

func defaultTasks() domain.DailyTasks {
	return domain.DailyTasks{Tasks: []domain.DailyTask{{Name: "Push-ups", Max: 100}, {Name: "Running", Max: 10}}, Streak: 2}
}

// Helper to return JSON success
func WriteJSON(w http.ResponseWriter, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(data); err != nil {
		_ = err
	}
}

// commandInteraction builds a slash command interaction from user "u1"
func commandInteraction(name string, options ...*discordgo.ApplicationCommandInteractionDataOption) *discordgo.InteractionCreate {
	return &discordgo.InteractionCreate{
		Interaction: &discordgo.Interaction{
			ID:    "interaction-" + name,
			AppID: "app",
			Token: "token",
			Type:  discordgo.InteractionApplicationCommand,
			Data: discordgo.ApplicationCommandInteractionData{
				Name:    name,
				Options: options,
			},
			Member: &discordgo.Member{
				User: &discordgo.User{ID: "u1", Username: "Tester"},
			},
		},
	}
}

// componentInteraction builds a button press from userID
func componentInteraction(customID, userID string) *discordgo.InteractionCreate {
	return &discordgo.InteractionCreate{
		Interaction: &discordgo.Interaction{
			ID:    "press-" + customID,
			AppID: "app",
			Token: "token",
			Type:  discordgo.InteractionMessageComponent,
			Data: discordgo.MessageComponentInteractionData{
				CustomID:      customID,
				ComponentType: discordgo.ButtonComponent,
			},
			Member: &discordgo.Member{
				User: &discordgo.User{ID: userID, Username: "Tester"},
			},
		},
	}
}

func intOpt(name string, v int) *discordgo.ApplicationCommandInteractionDataOption {
	return &discordgo.ApplicationCommandInteractionDataOption{Name: name, Type: discordgo.ApplicationCommandOptionInteger, Value: float64(v)}
}

func stringOpt(name, v string) *discordgo.ApplicationCommandInteractionDataOption {
	return &discordgo.ApplicationCommandInteractionDataOption{Name: name, Type: discordgo.ApplicationCommandOptionString, Value: v}
}
