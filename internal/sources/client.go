package sources

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	log "github.com/sirupsen/logrus"
)

// SourceFetchError is returned when a source answers with a non-2xx status
type SourceFetchError struct {
	Source     string
	URL        string
	StatusCode int
}

func (e *SourceFetchError) Error() string {
	return fmt.Sprintf("failed to load %s data: %s returned status %d", e.Source, e.URL, e.StatusCode)
}

// Client downloads raw dataset files over HTTP
type Client struct {
	httpClient *http.Client
}

// NewClient creates a new Client
func NewClient() *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// NewClientWithHTTPClient creates a Client around an existing http.Client (for testing)
func NewClientWithHTTPClient(httpClient *http.Client) *Client {
	return &Client{httpClient: httpClient}
}

// Fetch performs a single GET of src.URL and returns the body verbatim.
// There is no retry: a failed fetch is fatal to the run.
func (c *Client) Fetch(ctx context.Context, src Source) ([]byte, error) {
	log.Debugf("Fetch %s begins (%s)", src.Name, src.URL)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, src.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request for %s failed: %w", src.Name, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &SourceFetchError{Source: src.Name, URL: src.URL, StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s response: %w", src.Name, err)
	}

	log.Debugf("Fetch %s ends (%d bytes)", src.Name, len(body))
	return body, nil
}
