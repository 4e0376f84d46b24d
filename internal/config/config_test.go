package config_test

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"activity-signup-client/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:8081", cfg.HTTPAddr)
	assert.Equal(t, "http://localhost:8000", cfg.APIBaseURL)
	assert.Equal(t, 10*time.Second, cfg.RequestTimeout)
	assert.Equal(t, 5*time.Second, cfg.BannerTTL)
	assert.Empty(t, cfg.CORSAllowedOrigins)
	assert.False(t, cfg.UsesMemoryStorage())
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("API_BASE_URL", "http://school.example:9000/")
	t.Setenv("STORAGE_PATH", config.MemoryStoragePath)
	t.Setenv("BANNER_TTL", "250ms")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://a.example,http://b.example")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "http://school.example:9000", cfg.APIBaseURL)
	assert.True(t, cfg.UsesMemoryStorage())
	assert.Equal(t, 250*time.Millisecond, cfg.BannerTTL)
	assert.Equal(t, []string{"http://a.example", "http://b.example"}, cfg.CORSAllowedOrigins)

	lvl, err := cfg.SlogLevel()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, lvl)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{name: "relative api url", key: "API_BASE_URL", val: "localhost"},
		{name: "bad timeout", key: "REQUEST_TIMEOUT", val: "soon"},
		{name: "zero banner ttl", key: "BANNER_TTL", val: "0s"},
		{name: "unknown log level", key: "LOG_LEVEL", val: "loud"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.val)
			_, err := config.Load()
			assert.Error(t, err)
		})
	}
}

func TestConfig_UIOrigins(t *testing.T) {
	tests := []struct {
		name     string
		cfg      config.Config
		expected []string
	}{
		{
			name:     "Loopback default",
			cfg:      config.Config{HTTPAddr: "127.0.0.1:8081"},
			expected: []string{"http://127.0.0.1:8081", "http://localhost:8081"},
		},
		{
			name:     "All interfaces",
			cfg:      config.Config{HTTPAddr: ":9090"},
			expected: []string{"http://127.0.0.1:9090", "http://localhost:9090"},
		},
		{
			name:     "Named host",
			cfg:      config.Config{HTTPAddr: "school.lan:8081"},
			expected: []string{"http://school.lan:8081"},
		},
		{
			name:     "Explicit origins win",
			cfg:      config.Config{HTTPAddr: "127.0.0.1:8081", CORSAllowedOrigins: []string{"http://a.example"}},
			expected: []string{"http://a.example"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.cfg.UIOrigins())
		})
	}
}
