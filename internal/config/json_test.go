package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJSON_Success(t *testing.T) {
	// Arrange
	dir := t.TempDir()
	p := filepath.Join(dir, "server.json")

	jsonBody := `{
		"app": {"version": "2026.10", "log_level": "info"},
		"storage": {
			"document_path": "/etc/game/config.json",
			"client_download_path": "/var/lib/game/game.txt"
		},
		"server": {"request_timeout": "30s", "shutdown_timeout": "2s"},
		"adapter": {
			"upstream_url": "https://conf.example.com",
			"client_download_url": "https://dl.example.com/latest",
			"request_timeout": "5s"
		},
		"workers": {"resolve_client_download": true}
	}`

	require.NoError(t, os.WriteFile(p, []byte(jsonBody), 0o600))

	// Act
	cfg, err := parseJSON(p)

	// Assert
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "2026.10", cfg.App.Version)
	assert.Equal(t, "info", cfg.App.LogLevel)
	assert.Equal(t, "/etc/game/config.json", cfg.Storage.Document.Path)
	assert.Equal(t, "/var/lib/game/game.txt", cfg.Storage.ClientDownload.Path)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, 2*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, "https://conf.example.com", cfg.Adapter.UpstreamURL)
	assert.Equal(t, "https://dl.example.com/latest", cfg.Adapter.ClientDownloadURL)
	assert.Equal(t, 5*time.Second, cfg.Adapter.RequestTimeout)
	assert.True(t, cfg.Workers.ResolveClientDownload)
	assert.Empty(t, cfg.JSONFilePath)
}

func TestParseJSON_FileNotFound(t *testing.T) {
	cfg, err := parseJSON(filepath.Join(t.TempDir(), "missing.json"))

	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "error reading a json file")
}

func TestParseJSON_InvalidJSON(t *testing.T) {
	p := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(p, []byte(`{"app":`), 0o600))

	cfg, err := parseJSON(p)

	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "error decoding json configs")
}

func TestParseJSON_InvalidDuration(t *testing.T) {
	p := filepath.Join(t.TempDir(), "bad_duration.json")
	require.NoError(t, os.WriteFile(p, []byte(`{"server":{"request_timeout":"later"}}`), 0o600))

	_, err := parseJSON(p)

	require.Error(t, err)
}

func TestParseJSON_NumericDuration(t *testing.T) {
	p := filepath.Join(t.TempDir(), "numeric.json")
	require.NoError(t, os.WriteFile(p, []byte(`{"adapter":{"request_timeout":1000000000}}`), 0o600))

	cfg, err := parseJSON(p)

	require.NoError(t, err)
	assert.Equal(t, time.Second, cfg.Adapter.RequestTimeout)
}

func TestParseJSON_EmptyObject(t *testing.T) {
	p := filepath.Join(t.TempDir(), "empty.json")
	require.NoError(t, os.WriteFile(p, []byte(`{}`), 0o600))

	cfg, err := parseJSON(p)

	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestDuration_MarshalJSON(t *testing.T) {
	b, err := Duration(90 * time.Second).MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `"1m30s"`, string(b))
}
