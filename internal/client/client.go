package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/osse101/SoloLeveler_Go/internal/domain"
	"github.com/osse101/SoloLeveler_Go/internal/logger"
	"github.com/osse101/SoloLeveler_Go/internal/metrics"
)

// DefaultTimeout bounds every request when no client is supplied
const DefaultTimeout = 10 * time.Second

// maxErrorBody caps how much of a failed response is read for an error message
const maxErrorBody = 4 * 1024

// API is the Solo Leveler backend as seen by the client
type API interface {
	GetPlayer(ctx context.Context) (*domain.PlayerProfile, error)
	GetDailyTasks(ctx context.Context) (*domain.DailyTasks, error)
	GetInventory(ctx context.Context) ([]domain.InventoryItem, error)
	GetQuests(ctx context.Context) (*domain.Quests, error)
	GetPersonalQuests(ctx context.Context) ([]domain.PersonalQuest, error)
	GetShop(ctx context.Context) ([]domain.ShopItem, error)
	GetAchievements(ctx context.Context) ([]domain.Achievement, error)
	GetLeaderboard(ctx context.Context) (*domain.Leaderboard, error)

	CompleteTask(ctx context.Context, index int) error
	CompleteQuest(ctx context.Context, questName string) (*ActionResult, error)
	AddPersonalQuest(ctx context.Context, quest domain.NewPersonalQuest) (*ActionResult, error)
	CompletePersonalQuest(ctx context.Context, questID int) (*ActionResult, error)
	DeletePersonalQuest(ctx context.Context, questID int) (*ActionResult, error)
	AllocateStat(ctx context.Context, statName string) error
	BuyItem(ctx context.Context, itemName string) (*ActionResult, error)
	UseItem(ctx context.Context, itemName string) (*ActionResult, error)
	ClaimAchievement(ctx context.Context, index int) (*ActionResult, error)
}

// APIClient handles communication with the Solo Leveler API
type APIClient struct {
	BaseURL string
	Client  *http.Client
	APIKey  string
}

var _ API = (*APIClient)(nil)

// NewAPIClient creates a new API client
func NewAPIClient(baseURL, apiKey string, timeout time.Duration) *APIClient {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &APIClient{
		BaseURL: strings.TrimRight(baseURL, "/"),
		Client: &http.Client{
			Timeout: timeout,
		},
		APIKey: apiKey,
	}
}

// doRequest performs one HTTP request. There are no retries: a failed call
// leaves the caller's view stale until the next explicit reload.
func (c *APIClient) doRequest(ctx context.Context, method, path string, body interface{}) (*http.Response, error) {
	var reqBody io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal body: %w", err)
		}
		reqBody = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	requestID, ok := logger.RequestIDFromContext(ctx)
	if !ok {
		requestID = logger.GenerateRequestID()
	}
	req.Header.Set(HeaderRequestID, requestID)
	if body != nil {
		req.Header.Set(HeaderContentType, ContentTypeJSON)
	}
	if c.APIKey != "" {
		req.Header.Set(HeaderAPIKey, c.APIKey)
	}

	return c.Client.Do(req)
}

// observe records metrics and a debug log for one API call.
func (c *APIClient) observe(ctx context.Context, method, path string, fn func() error) error {
	start := time.Now()
	err := fn()

	outcome := outcomeOK
	switch {
	case IsTransport(err):
		outcome = outcomeTransport
	case IsApplication(err):
		outcome = outcomeApplication
	}
	metrics.APIRequestsTotal.WithLabelValues(path, outcome).Inc()
	metrics.APIRequestDuration.WithLabelValues(path).Observe(time.Since(start).Seconds())
	if err != nil {
		logger.FromContext(ctx).Debug("API request failed", "method", method, "path", path, "error", err)
	}
	return err
}

// send runs a request and returns the body of a 2xx reply.
// Errors come back as *TransportError or *ApplicationError.
func (c *APIClient) send(ctx context.Context, method, path string, body interface{}) ([]byte, error) {
	resp, err := c.doRequest(ctx, method, path, body)
	if err != nil {
		return nil, &TransportError{Endpoint: path, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, statusError(path, resp)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{Endpoint: path, Err: fmt.Errorf("failed to read response: %w", err)}
	}
	return raw, nil
}

func decode(path string, raw []byte, out interface{}) error {
	if err := json.Unmarshal(raw, out); err != nil {
		return &TransportError{Endpoint: path, Err: fmt.Errorf("failed to decode response: %w", err)}
	}
	return nil
}

// getJSON fetches path and decodes the reply into out
func (c *APIClient) getJSON(ctx context.Context, path string, out interface{}) error {
	return c.observe(ctx, http.MethodGet, path, func() error {
		raw, err := c.send(ctx, http.MethodGet, path, nil)
		if err != nil {
			return err
		}
		return decode(path, raw, out)
	})
}

// statusError classifies a non-2xx reply. A reply carrying the server's
// error message is an ApplicationError; anything else (proxy pages, empty
// bodies) is a TransportError since the server never answered the request.
func statusError(path string, resp *http.Response) error {
	unexpected := &TransportError{Endpoint: path, Err: fmt.Errorf("unexpected status %d", resp.StatusCode)}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	if err != nil {
		return unexpected
	}

	var errResp struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(raw, &errResp); err != nil {
		return unexpected
	}

	msg := errResp.Error
	if msg == "" {
		msg = errResp.Message
	}
	if msg == "" {
		return unexpected
	}
	return &ApplicationError{Endpoint: path, StatusCode: resp.StatusCode, Message: msg}
}

// Rewards is what a completed quest paid out
type Rewards struct {
	XP    int `json:"xp"`
	Coins int `json:"coins"`
}

// ActionResult is the common body of mutation endpoints
type ActionResult struct {
	Success      bool     `json:"success"`
	Rewards      *Rewards `json:"rewards,omitempty"`
	CoinsAwarded int      `json:"coins_awarded,omitempty"`
	Message      string   `json:"message,omitempty"`
	Error        string   `json:"error,omitempty"`
}

// postAction posts body and enforces the {success} contract.
func (c *APIClient) postAction(ctx context.Context, path string, body interface{}) (*ActionResult, error) {
	var result ActionResult
	err := c.observe(ctx, http.MethodPost, path, func() error {
		raw, err := c.send(ctx, http.MethodPost, path, body)
		if err != nil {
			return err
		}
		if err := decode(path, raw, &result); err != nil {
			return err
		}
		if !result.Success {
			msg := result.Error
			if msg == "" {
				msg = result.Message
			}
			return &ApplicationError{Endpoint: path, StatusCode: http.StatusOK, Message: msg}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// postStatus posts body where only the status code is meaningful. A JSON
// body that explicitly reports success=false is still treated as a refusal.
func (c *APIClient) postStatus(ctx context.Context, path string, body interface{}) error {
	return c.observe(ctx, http.MethodPost, path, func() error {
		raw, err := c.send(ctx, http.MethodPost, path, body)
		if err != nil {
			return err
		}

		var result struct {
			Success *bool  `json:"success"`
			Error   string `json:"error"`
		}
		if json.Unmarshal(raw, &result) == nil && result.Success != nil && !*result.Success {
			return &ApplicationError{Endpoint: path, StatusCode: http.StatusOK, Message: result.Error}
		}
		return nil
	})
}
