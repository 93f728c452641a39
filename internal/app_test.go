package internal

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLogLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, parseLogLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, parseLogLevel("warn"))
	assert.Equal(t, slog.LevelInfo, parseLogLevel("verbose"))
}

func TestNewApp_WiresBackendClient(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/health", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"status": "healthy", "version": "1.0.0", "environment": "test", "timestamp": "2026-01-01T00:00:00Z"}`)
	}))
	t.Cleanup(backend.Close)

	t.Setenv("API_URL", backend.URL)
	t.Setenv("FLUENTBIT_ENABLED", "false")
	t.Setenv("BACKEND_TIMEOUT", "2s")

	application, err := NewApp(Options{
		EnvPath:   filepath.Join(t.TempDir(), "missing.env"),
		LogWriter: io.Discard,
	})
	require.NoError(t, err)
	defer application.Close()

	health, err := application.CheckHealth(context.Background())
	require.NoError(t, err)
	assert.True(t, health.IsHealthy())
	assert.Equal(t, "1.0.0", health.Version)
}
