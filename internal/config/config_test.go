package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfigFile(t, `{
		"port": 9090,
		"provider": "cohere",
		"model": "command",
		"use_browser": true,
		"session_ttl_minutes": 30
	}`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, "cohere", cfg.Provider)
	assert.Equal(t, "command", cfg.Model)
	assert.True(t, cfg.UseBrowser)
	assert.Equal(t, 30, cfg.SessionTTLMinutes)
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	_, err := LoadConfig("")
	assert.Error(t, err)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "absent.json"))
	assert.Error(t, err)
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	path := writeConfigFile(t, "{not json")
	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestFromEnv_APIKeyLookupOrder(t *testing.T) {
	t.Setenv("COHERE_API_KEY", "cohere-key")
	t.Setenv("GEMINI_API_KEY", "gemini-key")

	cfg := &Config{}
	cfg.FromEnv()

	assert.Equal(t, "cohere-key", cfg.APIKey)
}

func TestFromEnv_DoesNotOverrideExisting(t *testing.T) {
	t.Setenv("COHERE_API_KEY", "env-key")
	t.Setenv("LLM_PROVIDER", "gemini")

	cfg := &Config{APIKey: "explicit-key", Provider: "cohere"}
	cfg.FromEnv()

	assert.Equal(t, "explicit-key", cfg.APIKey)
	assert.Equal(t, "cohere", cfg.Provider)
}

func TestFromEnv_Provider(t *testing.T) {
	t.Setenv("LLM_PROVIDER", "gemini")

	cfg := &Config{}
	cfg.FromEnv()

	assert.Equal(t, "gemini", cfg.Provider)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"zero value", Config{}, false},
		{"valid", Config{Port: 8080, Provider: "cohere", SessionTTLMinutes: 60}, false},
		{"gemini provider", Config{Provider: "gemini"}, false},
		{"negative port", Config{Port: -1}, true},
		{"port too large", Config{Port: 70000}, true},
		{"unknown provider", Config{Provider: "openai"}, true},
		{"negative ttl", Config{SessionTTLMinutes: -5}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
