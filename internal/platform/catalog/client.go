package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Entry is one problem object as returned by the external catalog. Field
// names vary between catalog versions, so entries stay schemaless until the
// selector normalizes them.
type Entry map[string]any

// Client fetches the full problem catalog from an external HTTP source.
// The source is unreliable and optional; callers are expected to treat any
// error as "use the local fallback pool".
type Client struct {
	url        string
	httpClient *http.Client
}

func NewClient(url string, timeout time.Duration) *Client {
	return &Client{
		url:        url,
		httpClient: &http.Client{Timeout: timeout},
	}
}

func (c *Client) FetchAll(ctx context.Context) ([]Entry, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, fmt.Errorf("catalog.FetchAll: %w", err)
	}
	req.Header.Set("User-Agent", "preptrack/1.0")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("catalog.FetchAll: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("catalog.FetchAll read: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("catalog.FetchAll: unexpected status %s", resp.Status)
	}

	var entries []Entry
	if err := json.Unmarshal(body, &entries); err != nil {
		// Non-array or otherwise malformed payload.
		return nil, fmt.Errorf("catalog.FetchAll unmarshal: %w", err)
	}
	return entries, nil
}
