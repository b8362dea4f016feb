package registry

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"forbidden-domains/internal/domain"
)

// Client loads the blocklist from a registry API that serves the blocked
// domain names as a JSON array of strings.
type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		// Make sure we don't end up with "//domains/" in the final URL.
		baseURL: strings.TrimRight(baseURL, "/"),
		http: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// FetchRegistry implements the Fetcher interface.
// It streams /domains/ and builds a reduced blocklist from it.
func (c *Client) FetchRegistry(ctx context.Context) (*domain.Registry, error) {
	ctx, cancel := context.WithTimeout(ctx, 60*time.Second)
	defer cancel()

	u, err := url.Parse(c.baseURL + "/domains/")
	if err != nil {
		return nil, fmt.Errorf("invalid base url: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status: %s", resp.Status)
	}

	dec := json.NewDecoder(resp.Body)

	// Expect a JSON array like: ["example.com", "foo.bar", ...].
	t, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("read opening token: %w", err)
	}
	if d, ok := t.(json.Delim); !ok || d != '[' {
		return nil, fmt.Errorf("expected JSON array from /domains/")
	}

	col := newCollector(1 << 16)
	for dec.More() {
		var raw string
		if err := dec.Decode(&raw); err != nil {
			return nil, fmt.Errorf("decode domain: %w", err)
		}
		col.add(raw)
	}

	if _, err := dec.Token(); err != nil {
		return nil, fmt.Errorf("read closing token: %w", err)
	}

	return col.registry("rknapi", u.String()), nil
}
