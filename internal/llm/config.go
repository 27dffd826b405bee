// Package llm provides centralized LLM configuration and client abstractions.
// This package enables easy switching between providers without touching the
// analysis and generation callers.
package llm

// Provider represents an LLM provider
type Provider string

// Provider constants define supported LLM providers
const (
	// ProviderCohere is the hosted Cohere generate endpoint (default)
	ProviderCohere Provider = "cohere"
	// ProviderGemini is the Google Gemini provider
	ProviderGemini Provider = "gemini"
)

// Config holds the provider and model configuration for the application
type Config struct {
	Provider Provider
	Model    string
	// Endpoint overrides the provider's default API endpoint (tests use this)
	Endpoint string
}

// DefaultConfig returns the default configuration (currently Cohere)
func DefaultConfig() *Config {
	return DefaultCohereConfig()
}

// DefaultCohereConfig returns the default Cohere configuration
func DefaultCohereConfig() *Config {
	return &Config{
		Provider: ProviderCohere,
		Model:    "command",
	}
}

// DefaultGeminiConfig returns the default Gemini configuration
func DefaultGeminiConfig() *Config {
	return &Config{
		Provider: ProviderGemini,
		Model:    "gemini-2.5-flash",
	}
}

// GenerateOptions tunes a single generation call. Zero values fall back to
// provider defaults.
type GenerateOptions struct {
	MaxTokens   int
	Temperature float32
}
