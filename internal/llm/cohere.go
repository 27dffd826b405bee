package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// DefaultCohereEndpoint is the hosted generate endpoint.
const DefaultCohereEndpoint = "https://api.cohere.ai/v1/generate"

// defaultHTTPTimeout bounds one generation round trip.
const defaultHTTPTimeout = 60 * time.Second

// APIError represents a non-2xx reply from the generation endpoint.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("generation API error: HTTP %d", e.StatusCode)
}

// CohereClient implements Client against the hosted generate endpoint.
// One POST per call, bearer-token authenticated, no retries; callers own
// their fallback behavior.
type CohereClient struct {
	endpoint   string
	apiKey     string
	model      string
	httpClient *http.Client
}

// generateRequest is the wire body for the generate endpoint.
type generateRequest struct {
	Model             string   `json:"model"`
	Prompt            string   `json:"prompt"`
	MaxTokens         int      `json:"max_tokens"`
	Temperature       float32  `json:"temperature"`
	StopSequences     []string `json:"stop_sequences"`
	ReturnLikelihoods string   `json:"return_likelihoods"`
}

// generateResponse is the wire reply; only the first generation is used.
type generateResponse struct {
	Generations []struct {
		Text string `json:"text"`
	} `json:"generations"`
}

// NewCohereClient creates a client for the hosted generate endpoint.
func NewCohereClient(config *Config, apiKey string) (*CohereClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("API key is required")
	}
	if config == nil {
		config = DefaultCohereConfig()
	}

	endpoint := config.Endpoint
	if endpoint == "" {
		endpoint = DefaultCohereEndpoint
	}

	model := config.Model
	if model == "" {
		model = "command"
	}

	return &CohereClient{
		endpoint:   endpoint,
		apiKey:     apiKey,
		model:      model,
		httpClient: &http.Client{Timeout: defaultHTTPTimeout},
	}, nil
}

// GenerateContent sends one generation request and returns the reply text.
func (c *CohereClient) GenerateContent(ctx context.Context, prompt string, opts *GenerateOptions) (string, error) {
	body := generateRequest{
		Model:             c.model,
		Prompt:            prompt,
		MaxTokens:         2000,
		Temperature:       0.3,
		StopSequences:     []string{},
		ReturnLikelihoods: "NONE",
	}
	if opts != nil {
		if opts.MaxTokens > 0 {
			body.MaxTokens = opts.MaxTokens
		}
		if opts.Temperature > 0 {
			body.Temperature = opts.Temperature
		}
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("generation request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", &APIError{StatusCode: resp.StatusCode, Body: string(respBody)}
	}

	var parsed generateResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return "", fmt.Errorf("failed to parse response: %w", err)
	}
	if len(parsed.Generations) == 0 {
		return "", fmt.Errorf("no generations in response")
	}

	return parsed.Generations[0].Text, nil
}

// Close releases resources held by the client. The HTTP client holds none.
func (c *CohereClient) Close() error {
	return nil
}
