package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, endpoint string) *CohereClient {
	t.Helper()

	client, err := NewCohereClient(&Config{
		Provider: ProviderCohere,
		Model:    "command",
		Endpoint: endpoint,
	}, "test-key")
	require.NoError(t, err)
	return client
}

func TestNewCohereClient_RequiresAPIKey(t *testing.T) {
	_, err := NewCohereClient(DefaultCohereConfig(), "")
	assert.Error(t, err)
}

func TestNewCohereClient_Defaults(t *testing.T) {
	client, err := NewCohereClient(nil, "test-key")
	require.NoError(t, err)

	assert.Equal(t, DefaultCohereEndpoint, client.endpoint)
	assert.Equal(t, "command", client.model)
}

func TestCohereClient_GenerateContent(t *testing.T) {
	var captured generateRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"generations":[{"text":"generated resume content"}]}`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)
	text, err := client.GenerateContent(context.Background(), "improve this resume", &GenerateOptions{
		MaxTokens:   2500,
		Temperature: 0.2,
	})

	require.NoError(t, err)
	assert.Equal(t, "generated resume content", text)

	assert.Equal(t, "command", captured.Model)
	assert.Equal(t, "improve this resume", captured.Prompt)
	assert.Equal(t, 2500, captured.MaxTokens)
	assert.InDelta(t, 0.2, captured.Temperature, 0.001)
	assert.Equal(t, []string{}, captured.StopSequences)
	assert.Equal(t, "NONE", captured.ReturnLikelihoods)
}

func TestCohereClient_DefaultOptions(t *testing.T) {
	var captured generateRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
		_, _ = w.Write([]byte(`{"generations":[{"text":"ok"}]}`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)
	_, err := client.GenerateContent(context.Background(), "prompt", nil)

	require.NoError(t, err)
	assert.Equal(t, 2000, captured.MaxTokens)
	assert.InDelta(t, 0.3, captured.Temperature, 0.001)
}

func TestCohereClient_NonOKStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"message":"rate limited"}`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)
	_, err := client.GenerateContent(context.Background(), "prompt", nil)

	require.Error(t, err)
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusTooManyRequests, apiErr.StatusCode)
	assert.Contains(t, apiErr.Body, "rate limited")
}

func TestCohereClient_EmptyGenerations(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"generations":[]}`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)
	_, err := client.GenerateContent(context.Background(), "prompt", nil)

	assert.Error(t, err)
}

func TestCohereClient_MalformedResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`not json`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)
	_, err := client.GenerateContent(context.Background(), "prompt", nil)

	assert.Error(t, err)
}

func TestCohereClient_ContextCancelled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"generations":[{"text":"ok"}]}`))
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	client := newTestClient(t, server.URL)
	_, err := client.GenerateContent(ctx, "prompt", nil)

	assert.Error(t, err)
}
