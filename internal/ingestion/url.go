package ingestion

import (
	"context"
	"fmt"
	"log"

	"github.com/jonathan/resume-builder/internal/fetch"
)

var (
	// ErrHTTPRequestFailed is returned when the HTTP request fails
	ErrHTTPRequestFailed = fmt.Errorf("HTTP request failed")
	// ErrContentExtractionFailed is returned when content extraction fails
	ErrContentExtractionFailed = fmt.Errorf("content extraction failed")
)

// IngestFromURL fetches a job posting from a URL, extracts the main text
// using board-specific selectors, and returns it cleaned. If useBrowser is
// true and the HTTP fetch yields too little text, the page is re-rendered in
// a headless browser before extraction.
func IngestFromURL(ctx context.Context, urlStr string, useBrowser bool) (string, error) {
	platform := fetch.DetectPlatform(urlStr)

	result, err := fetch.URL(ctx, urlStr)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrHTTPRequestFailed, err)
	}

	contentSelectors := fetch.PlatformContentSelectors(platform)
	noiseSelectors := fetch.PlatformNoiseSelectors(platform)

	textContent, err := fetch.ExtractMainText(result.HTML, contentSelectors, noiseSelectors...)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrContentExtractionFailed, err)
	}

	if useBrowser && fetch.ShouldUseBrowser(textContent) {
		browserHTML, browserErr := fetch.WithBrowser(ctx, urlStr)
		if browserErr != nil {
			// Continue with the HTTP content if the browser fails
			log.Printf("[INGEST] browser rendering failed for %s: %v", urlStr, browserErr)
		} else if browserText, extractErr := fetch.ExtractMainText(browserHTML, contentSelectors, noiseSelectors...); extractErr == nil {
			textContent = browserText
		}
	}

	return CleanText(textContent), nil
}
