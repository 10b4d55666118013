// Package github provides a minimal GitHub REST v3 client for gitscout.
// Unauthenticated, read only. The client performs no retries and no caching;
// the querycache layer owns both concerns, so every operation here issues an
// exact, predictable number of requests
package github

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	perr "gitscout/internal/platform/errors"
	"gitscout/internal/platform/logger"
)

const (
	baseURLDefault = "https://api.github.com"
	defaultTimeout = 10 * time.Second
	defaultUA      = "gitscout"
	acceptHeader   = "application/vnd.github+json"

	// pageSize is the per_page used on listing endpoints
	pageSize = 100

	// maxBody caps response reads
	maxBody = 4 << 20

	// connectivityMsg is the one message surfaced for transport-level
	// failures; remote rejections render the service's own message instead
	connectivityMsg = "network error, please check your connection"
)

// Options configures the Client
type Options struct {
	BaseURL   string
	UserAgent string
	Timeout   time.Duration
}

// Client is a stateless GitHub REST client
type Client struct {
	http *http.Client
	opts Options
	log  logger.Logger
	now  func() time.Time
}

// New creates a Client with sane defaults
func New(o Options) *Client {
	if o.BaseURL == "" {
		o.BaseURL = baseURLDefault
	}
	if o.UserAgent == "" {
		o.UserAgent = defaultUA
	}
	if o.Timeout <= 0 {
		o.Timeout = defaultTimeout
	}
	return &Client{
		http: &http.Client{Timeout: o.Timeout},
		opts: o,
		log:  *logger.Named("github"),
		now:  time.Now,
	}
}

// getJSON issues one GET and decodes a 2xx body into out.
// Non-success responses become typed remote rejections carrying the body's
// message (or "HTTP <status>: <statusText>" when the body is absent or
// unparseable) and the HTTP status; transport and decode failures become
// typed connectivity errors with no status
func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.opts.BaseURL+path, nil)
	if err != nil {
		return perr.Wrap(err, perr.ErrorCodeUnavailable, connectivityMsg)
	}
	req.Header.Set("User-Agent", c.opts.UserAgent)
	req.Header.Set("Accept", acceptHeader)

	start := c.now()
	resp, err := c.http.Do(req)
	if err != nil {
		return perr.Wrap(err, perr.ErrorCodeUnavailable, connectivityMsg)
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			c.log.Error().Err(cerr).Str("path", path).Msg("github close body failed")
		}
	}()

	c.log.Debug().
		Str("path", path).
		Int("status", resp.StatusCode).
		Dur("latency", c.now().Sub(start)).
		Msg("github http response")

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBody))
	if err != nil {
		return perr.Wrap(err, perr.ErrorCodeUnavailable, connectivityMsg)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg := fmt.Sprintf("HTTP %d: %s", resp.StatusCode, http.StatusText(resp.StatusCode))
		var am apiMessage
		if err := json.Unmarshal(body, &am); err == nil && am.Message != "" {
			msg = am.Message
		}
		return perr.Remote(resp.StatusCode, msg)
	}

	if err := json.Unmarshal(body, out); err != nil {
		return perr.Wrap(err, perr.ErrorCodeUnavailable, connectivityMsg)
	}
	return nil
}

// Ping checks reachability against the rate-limit endpoint. The endpoint is
// free (it does not consume quota) which makes it a safe startup probe
func (c *Client) Ping(ctx context.Context) error {
	var out struct {
		Resources map[string]any `json:"resources"`
	}
	return c.getJSON(ctx, "/rate_limit", &out)
}
