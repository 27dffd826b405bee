// Package config provides configuration loading and validation for the CLI
// and server.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents the application configuration that can be loaded from a
// JSON file. All fields are optional; missing values use defaults or must be
// provided via CLI flags or environment variables.
type Config struct {
	// Server
	Port int `json:"port,omitempty"` // HTTP listen port

	// Generation service
	APIKey   string `json:"api_key,omitempty"`  // Generation API key
	Provider string `json:"provider,omitempty"` // "cohere" (default) or "gemini"
	Model    string `json:"model,omitempty"`    // Model name override
	Endpoint string `json:"endpoint,omitempty"` // Endpoint override (testing)

	// Behavior
	UseBrowser bool `json:"use_browser,omitempty"` // Headless browser fallback for SPA job boards
	Verbose    bool `json:"verbose,omitempty"`     // Print detailed debug information

	// Sessions
	SessionTTLMinutes int `json:"session_ttl_minutes,omitempty"` // Idle session lifetime
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// FromEnv fills unset fields from environment variables. The API key is
// looked up under the provider-specific name first, then the generic one.
func (c *Config) FromEnv() {
	if c.APIKey == "" {
		for _, name := range []string{"COHERE_API_KEY", "GEMINI_API_KEY", "GENERATION_API_KEY"} {
			if v := os.Getenv(name); v != "" {
				c.APIKey = v
				break
			}
		}
	}
	if c.Provider == "" {
		c.Provider = os.Getenv("LLM_PROVIDER")
	}
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be between 0 and 65535")
	}

	switch c.Provider {
	case "", "cohere", "gemini":
	default:
		return fmt.Errorf("config error: unknown provider %q", c.Provider)
	}

	if c.SessionTTLMinutes < 0 {
		return fmt.Errorf("config error: 'session_ttl_minutes' must be non-negative")
	}

	return nil
}
