package ingestion

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIngestFromURL(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(`<html><body>
			<nav>Menu</nav>
			<div class="job-description">Senior Go Engineer

			Build   resilient   services.</div>
		</body></html>`))
	}))
	defer server.Close()

	text, err := IngestFromURL(context.Background(), server.URL, false)

	require.NoError(t, err)
	assert.Contains(t, text, "Senior Go Engineer")
	assert.Contains(t, text, "Build resilient services.")
	assert.NotContains(t, text, "Menu")
}

func TestIngestFromURL_HTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	_, err := IngestFromURL(context.Background(), server.URL, false)

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrHTTPRequestFailed))
}

func TestIngestFromURL_InvalidURL(t *testing.T) {
	_, err := IngestFromURL(context.Background(), "://nope", false)

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrHTTPRequestFailed))
}
