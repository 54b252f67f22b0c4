package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/SoloLeveler_Go/internal/domain"
	"github.com/osse101/SoloLeveler_Go/internal/logger"
)

func setupTestServer(t *testing.T) (*http.ServeMux, *APIClient) {
	t.Helper()
	mux := http.NewServeMux()
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return mux, NewAPIClient(server.URL, "test-api-key", time.Second)
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func TestGetPlayer(t *testing.T) {
	mux, c := setupTestServer(t)
	mux.HandleFunc(PathPlayer, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "test-api-key", r.Header.Get(HeaderAPIKey))
		assert.NotEmpty(t, r.Header.Get(HeaderRequestID))
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"level": 5, "coins": 120, "rank": "D", "points_to_next_rank": nil,
			"stats": map[string]interface{}{"strength": 14.75, "available_points": 2},
		})
	})

	p, err := c.GetPlayer(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 5, p.Level)
	assert.Equal(t, 120, p.Coins)
	assert.Equal(t, domain.RankD, p.Rank)
	assert.True(t, p.IsMaxRank())
	assert.Equal(t, 14.75, p.Stats.Strength)
	assert.Equal(t, 2, p.Stats.AvailablePoints)
}

func TestRequestIDPropagates(t *testing.T) {
	mux, c := setupTestServer(t)
	mux.HandleFunc(PathShop, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "req-42", r.Header.Get(HeaderRequestID))
		writeJSON(w, http.StatusOK, []domain.ShopItem{})
	})

	ctx := logger.WithRequestID(context.Background(), "req-42")
	items, err := c.GetShop(ctx)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestGetDailyTasks_NullTasksBecomesEmpty(t *testing.T) {
	mux, c := setupTestServer(t)
	mux.HandleFunc(PathDailyTasks, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]interface{}{"tasks": nil, "streak": 3})
	})

	tasks, err := c.GetDailyTasks(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, tasks.Tasks)
	assert.Empty(t, tasks.Tasks)
	assert.Equal(t, 3, tasks.Streak)
}

func TestGet_NonJSONBodyIsTransportError(t *testing.T) {
	mux, c := setupTestServer(t)
	mux.HandleFunc(PathInventory, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("<html>oops</html>"))
	})

	_, err := c.GetInventory(context.Background())
	require.Error(t, err)
	assert.True(t, IsTransport(err))
	assert.False(t, IsApplication(err))
}

func TestGet_UnreachableServerIsTransportError(t *testing.T) {
	c := NewAPIClient("http://127.0.0.1:1", "", 200*time.Millisecond)

	_, err := c.GetQuests(context.Background())
	require.Error(t, err)
	assert.True(t, IsTransport(err))
}

func TestGet_ErrorStatusIsApplicationError(t *testing.T) {
	mux, c := setupTestServer(t)
	mux.HandleFunc(PathLeaderboard, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{"error": "leaderboard offline"})
	})

	_, err := c.GetLeaderboard(context.Background())
	var appErr *ApplicationError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusServiceUnavailable, appErr.StatusCode)
	assert.Equal(t, "leaderboard offline", appErr.Error())
}

func TestCompleteTask_SendsIndexAndAcceptsEmptyBody(t *testing.T) {
	mux, c := setupTestServer(t)
	mux.HandleFunc(PathCompleteTask, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, ContentTypeJSON, r.Header.Get(HeaderContentType))
		var body map[string]int
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, 2, body["task_index"])
		w.WriteHeader(http.StatusOK)
	})

	require.NoError(t, c.CompleteTask(context.Background(), 2))
}

func TestStatusWithoutErrorPayloadIsTransportError(t *testing.T) {
	tests := []struct {
		name        string
		path        string
		status      int
		contentType string
		body        string
		call        func(c *APIClient) error
	}{
		{
			name:   "empty 400 on complete task",
			path:   PathCompleteTask,
			status: http.StatusBadRequest,
			call:   func(c *APIClient) error { return c.CompleteTask(context.Background(), 9) },
		},
		{
			name:        "proxy html page",
			path:        PathPlayer,
			status:      http.StatusBadGateway,
			contentType: "text/html",
			body:        "<html>502 Bad Gateway</html>",
			call: func(c *APIClient) error {
				_, err := c.GetPlayer(context.Background())
				return err
			},
		},
		{
			name:        "json without a message",
			path:        PathShop,
			status:      http.StatusInternalServerError,
			contentType: ContentTypeJSON,
			body:        `{"status":"down"}`,
			call: func(c *APIClient) error {
				_, err := c.GetShop(context.Background())
				return err
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mux, c := setupTestServer(t)
			mux.HandleFunc(tt.path, func(w http.ResponseWriter, r *http.Request) {
				if tt.contentType != "" {
					w.Header().Set(HeaderContentType, tt.contentType)
				}
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			})

			err := tt.call(c)
			require.Error(t, err)
			assert.True(t, IsTransport(err), "got %v", err)
			assert.False(t, IsApplication(err))
			assert.Contains(t, err.Error(), fmt.Sprintf("unexpected status %d", tt.status))
		})
	}
}

func TestGet_ErrorStatusWithMessageField(t *testing.T) {
	mux, c := setupTestServer(t)
	mux.HandleFunc(PathInventory, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, map[string]string{"message": "no such player"})
	})

	_, err := c.GetInventory(context.Background())
	var appErr *ApplicationError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusNotFound, appErr.StatusCode)
	assert.Equal(t, "no such player", appErr.Error())
}

func TestAllocateStat_ExplicitFailureBody(t *testing.T) {
	mux, c := setupTestServer(t)
	mux.HandleFunc(PathAllocateStat, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]interface{}{"success": false, "error": "no points"})
	})

	err := c.AllocateStat(context.Background(), domain.StatAgility)
	require.Error(t, err)
	assert.True(t, IsApplication(err))
	assert.Equal(t, "no points", err.Error())
}

func TestPostAction_SuccessAndRewards(t *testing.T) {
	mux, c := setupTestServer(t)
	mux.HandleFunc(PathCompleteQuest, func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, domain.QuestDiscipline, body["quest_name"])
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"success": true,
			"rewards": map[string]int{"xp": 50, "coins": 10},
		})
	})

	res, err := c.CompleteQuest(context.Background(), domain.QuestDiscipline)
	require.NoError(t, err)
	require.NotNil(t, res.Rewards)
	assert.Equal(t, 50, res.Rewards.XP)
	assert.Equal(t, 10, res.Rewards.Coins)
}

func TestPostAction_FailurePayload(t *testing.T) {
	mux, c := setupTestServer(t)
	mux.HandleFunc(PathBuyItem, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]interface{}{"success": false, "error": "Not enough coins"})
	})

	res, err := c.BuyItem(context.Background(), "Potion")
	assert.Nil(t, res)
	var appErr *ApplicationError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "Not enough coins", appErr.Message)
}

func TestClaimAchievement_SendsIndex(t *testing.T) {
	mux, c := setupTestServer(t)
	mux.HandleFunc(PathClaimAchievement, func(w http.ResponseWriter, r *http.Request) {
		var body map[string]int
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, 1, body["achievement_index"])
		writeJSON(w, http.StatusOK, map[string]interface{}{"success": true, "coins_awarded": 25})
	})

	res, err := c.ClaimAchievement(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 25, res.CoinsAwarded)
}

func TestAddPersonalQuest_Body(t *testing.T) {
	mux, c := setupTestServer(t)
	mux.HandleFunc(PathAddPersonalQuest, func(w http.ResponseWriter, r *http.Request) {
		var body domain.NewPersonalQuest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "Read", body.Name)
		assert.Equal(t, "20 pages", body.Description)
		writeJSON(w, http.StatusOK, map[string]bool{"success": true})
	})

	_, err := c.AddPersonalQuest(context.Background(), domain.NewPersonalQuest{Name: "Read", Description: "20 pages"})
	require.NoError(t, err)
}
