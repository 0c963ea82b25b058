// Package datamuse queries the Datamuse similarity API for words that
// sound like a given word.
package datamuse

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

const (
	// DefaultEndpoint is the public Datamuse words endpoint.
	DefaultEndpoint = "https://api.datamuse.com/words"
	// DefaultMaxResults caps how many candidates one query returns.
	DefaultMaxResults = 20

	defaultTimeout = 10 * time.Second
)

// Option is a functional option for configuring a Client.
type Option func(*Client)

// WithEndpoint overrides the API endpoint. Useful for tests.
func WithEndpoint(endpoint string) Option {
	return func(c *Client) {
		if endpoint != "" {
			c.endpoint = endpoint
		}
	}
}

// WithMaxResults caps how many candidates one query may return.
func WithMaxResults(n int) Option {
	return func(c *Client) {
		if n > 0 {
			c.max = n
		}
	}
}

// WithHTTPClient substitutes the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.hc = hc
		}
	}
}

// Client is a minimal Datamuse API client. Safe for concurrent use.
type Client struct {
	hc       *http.Client
	endpoint string
	max      int
}

// NewClient returns a Client configured with the supplied options.
func NewClient(opts ...Option) *Client {
	c := &Client{
		hc:       &http.Client{Timeout: defaultTimeout},
		endpoint: DefaultEndpoint,
		max:      DefaultMaxResults,
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// SimilarSounding returns up to the configured maximum of words the
// service considers similar-sounding to word, best first. Entries without
// a usable word field are skipped. Transport failures and non-2xx statuses
// come back as errors for the caller to degrade.
func (c *Client) SimilarSounding(ctx context.Context, word string) ([]string, error) {
	u := fmt.Sprintf("%s?sl=%s&max=%d", c.endpoint, url.QueryEscape(word), c.max)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", "homofo-cli")

	resp, err := c.hc.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("datamuse returned status: %s", resp.Status)
	}

	var entries []struct {
		Word string `json:"word"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&entries); err != nil {
		return nil, fmt.Errorf("decode datamuse response: %w", err)
	}

	out := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.Word != "" {
			out = append(out, e.Word)
		}
	}
	return out, nil
}
