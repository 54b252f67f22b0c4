package bootstrap

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/SoloLeveler_Go/internal/client"
	"github.com/osse101/SoloLeveler_Go/internal/config"
	"github.com/osse101/SoloLeveler_Go/internal/domain"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	return &config.Config{
		APIURL:           "http://localhost:5000",
		HTTPTimeout:      time.Second,
		LogLevel:         "debug",
		LogFormat:        "text",
		Environment:      "test",
		CountdownWarning: 2 * time.Hour,
	}
}

func TestSetupLogger(t *testing.T) {
	t.Run("writes to the log file", func(t *testing.T) {
		cfg := testConfig(t)
		cfg.LogFile = filepath.Join(t.TempDir(), "logs", "client.log")

		closer, err := SetupLogger(cfg, ServiceNameTerminal, "test", nil)
		require.NoError(t, err)
		require.NoError(t, closer.Close())

		data, err := os.ReadFile(cfg.LogFile)
		require.NoError(t, err)
		assert.Contains(t, string(data), LogMsgStarting)
		assert.Contains(t, string(data), ServiceNameTerminal)
	})

	t.Run("writes to the console and reports warnings", func(t *testing.T) {
		cfg := testConfig(t)
		var buf bytes.Buffer

		closer, err := SetupLogger(cfg, ServiceNameDiscord, "test", &buf)
		require.NoError(t, err)
		defer closer.Close()

		assert.Contains(t, buf.String(), LogMsgLoggingInitialized)
		assert.Contains(t, buf.String(), "API_KEY not set")
	})

	t.Run("fails when the log directory cannot be created", func(t *testing.T) {
		cfg := testConfig(t)
		blocker := filepath.Join(t.TempDir(), "file")
		require.NoError(t, os.WriteFile(blocker, nil, 0600))
		cfg.LogFile = filepath.Join(blocker, "client.log")

		_, err := SetupLogger(cfg, ServiceNameTerminal, "test", nil)
		assert.ErrorContains(t, err, LogMsgFailedCreateLogsDir)
	})
}

func TestNewCore_LoadsThroughAPI(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, client.PathPlayer, r.URL.Path)
		w.Header().Set(client.HeaderContentType, client.ContentTypeJSON)
		_ = json.NewEncoder(w).Encode(domain.PlayerProfile{Name: "Jinwoo", Level: 3})
	}))
	defer srv.Close()

	cfg := testConfig(t)
	cfg.APIURL = srv.URL
	core := NewCore(cfg)

	require.NoError(t, core.Sync.LoadSlice(context.Background(), domain.SlicePlayer))
	require.NotNil(t, core.Sync.Mirror().Player())
	assert.Equal(t, "Jinwoo", core.Sync.Mirror().Player().Name)
	assert.Same(t, core.Bus, core.Sync.Bus())
}

func TestStartStatus_DisabledWithoutPort(t *testing.T) {
	core := NewCoreWithAPI(testConfig(t), client.NewAPIClient("http://localhost:1", "", time.Second))
	core.StartStatus(nil)
	assert.Nil(t, core.Status)
}

type stopRecorder struct{ stopped bool }

func (s *stopRecorder) Stop() { s.stopped = true }

func TestGracefulShutdown(t *testing.T) {
	cfg := testConfig(t)
	core := NewCoreWithAPI(cfg, client.NewAPIClient("http://localhost:1", "", time.Second))
	front := &stopRecorder{}

	GracefulShutdown(context.Background(), ShutdownComponents{
		Core:      core,
		Frontends: map[string]Stopper{"discord": front},
	})

	assert.True(t, front.stopped)
}
