package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempJSON(t *testing.T, dir, name string, data map[string]any) string {
	t.Helper()
	if dir == "" {
		dir = t.TempDir()
	}
	if name == "" {
		name = "cfg.json"
	}
	path := filepath.Join(dir, name)
	b, err := json.Marshal(data)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, b, 0o600))
	return path
}

func Test_parseFile_SourcesAndPrecedence(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	dir := t.TempDir()
	full := writeTempJSON(t, dir, "full.json", map[string]any{
		"base_url":            "https://community.example/api",
		"request_timeout":     "15s",
		"data_dir":            "/var/lib/cos",
		"database_file":       "s.db",
		"otp_resend_interval": int64(2 * time.Minute),
		"log_level":           "error",
	})
	partial := writeTempJSON(t, dir, "partial.json", map[string]any{
		"log_level": "debug",
	})

	t.Run("loads every field", func(t *testing.T) {
		os.Args = []string{"testbin", "-config", full}

		cfg := &Config{}
		parseFile(cfg)

		assert.Equal(t, Config{
			BaseURL:           "https://community.example/api",
			RequestTimeout:    15 * time.Second,
			DataDir:           "/var/lib/cos",
			DatabaseFile:      "s.db",
			OTPResendInterval: 2 * time.Minute,
			LogLevel:          "error",
		}, *cfg)
	})

	t.Run("absent keys keep earlier values", func(t *testing.T) {
		os.Args = []string{"testbin", "-c", partial}

		var cfg Config
		cfg.LoadDefaults()
		parseFile(&cfg)

		assert.Equal(t, "debug", cfg.LogLevel)
		assert.Equal(t, "http://localhost:8001/api", cfg.BaseURL)
		assert.Equal(t, 30*time.Second, cfg.RequestTimeout)
	})

	t.Run("no flags → no changes", func(t *testing.T) {
		os.Args = []string{"testbin"}

		cfg := &Config{BaseURL: "defaults", RequestTimeout: 42 * time.Second}
		parseFile(cfg)

		assert.Equal(t, "defaults", cfg.BaseURL)
		assert.Equal(t, 42*time.Second, cfg.RequestTimeout)
	})

	t.Run("missing file → panics", func(t *testing.T) {
		os.Args = []string{"testbin", "-c", filepath.Join(dir, "nope.json")}
		require.Panics(t, func() { parseFile(&Config{}) })
	})

	t.Run("invalid JSON → panics", func(t *testing.T) {
		bad := filepath.Join(dir, "bad.json")
		require.NoError(t, os.WriteFile(bad, []byte(`{ this is not valid json`), 0o600))

		os.Args = []string{"testbin", "-config", bad}

		cfg := &Config{}
		require.Panics(t, func() { parseFile(cfg) })
	})
}

func Test_parseFile_YAML(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	dir := t.TempDir()
	path := filepath.Join(dir, "cos.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
base_url: https://community.example/api
request_timeout: 15s
otp_resend_interval: 1m
log_level: debug
`), 0o600))

	os.Args = []string{"testbin", "-c", path}

	var cfg Config
	cfg.LoadDefaults()
	parseFile(&cfg)

	assert.Equal(t, "https://community.example/api", cfg.BaseURL)
	assert.Equal(t, 15*time.Second, cfg.RequestTimeout)
	assert.Equal(t, time.Minute, cfg.OTPResendInterval)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, ".communityos", cfg.DataDir)
}

func Test_decodeFile(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		data    string
		want    string
		wantErr bool
	}{
		{name: "yml extension", path: "a.yml", data: "log_level: info", want: "info"},
		{name: "upper-case extension", path: "a.YAML", data: "log_level: error", want: "error"},
		{name: "json by default", path: "a.conf", data: `{"log_level":"warn"}`, want: "warn"},
		{name: "yaml in a json file", path: "a.json", data: "log_level: info", wantErr: true},
		{name: "bad yaml duration", path: "a.yaml", data: "request_timeout: soon", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fc, err := decodeFile(tt.path, []byte(tt.data))
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, fc.LogLevel)
			assert.Equal(t, tt.want, *fc.LogLevel)
		})
	}
}
