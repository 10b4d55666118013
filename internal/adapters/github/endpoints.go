package github

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	perr "gitscout/internal/platform/errors"
)

const (
	// defaultSearchLimit is used when the caller passes limit <= 0
	defaultSearchLimit = 5

	// maxSearchLimit caps per_page on the search endpoint
	maxSearchLimit = 100
)

// SearchAccounts returns accounts matching query, capped at limit by the
// server. A trimmed-empty query returns an empty slice without touching the
// network; a zero-result search is a valid success, not a failure
func (c *Client) SearchAccounts(ctx context.Context, query string, limit int) ([]Account, error) {
	q := strings.TrimSpace(query)
	if q == "" {
		return []Account{}, nil
	}
	if limit <= 0 {
		limit = defaultSearchLimit
	}
	if limit > maxSearchLimit {
		limit = maxSearchLimit
	}

	var out searchResponse
	path := fmt.Sprintf("/search/users?q=%s&per_page=%d", url.QueryEscape(q), limit)
	if err := c.getJSON(ctx, path, &out); err != nil {
		return nil, err
	}
	if out.Items == nil {
		out.Items = []Account{}
	}
	return out.Items, nil
}

// GetAccount fetches one account with its extended fields
func (c *Client) GetAccount(ctx context.Context, handle string) (Account, error) {
	if handle == "" {
		return Account{}, perr.WithField(perr.Validationf("handle is required"), "handle")
	}
	var out Account
	if err := c.getJSON(ctx, "/users/"+url.PathEscape(handle), &out); err != nil {
		return Account{}, err
	}
	return out, nil
}

// GetRepositories lists every repository for handle, newest-updated first.
// Pages of 100 are fetched sequentially until a page comes back short: 0 or
// fewer than 100 items ends the walk (the terminal partial page is kept).
// A failure on any page aborts the whole listing, partial results discarded
func (c *Client) GetRepositories(ctx context.Context, handle string) ([]Repository, error) {
	if handle == "" {
		return []Repository{}, nil
	}

	all := []Repository{}
	for page := 1; ; page++ {
		var batch []Repository
		path := fmt.Sprintf(
			"/users/%s/repos?sort=updated&direction=desc&per_page=%d&page=%d",
			url.PathEscape(handle), pageSize, page,
		)
		if err := c.getJSON(ctx, path, &batch); err != nil {
			return nil, err
		}
		all = append(all, batch...)
		if len(batch) < pageSize {
			return all, nil
		}
	}
}

// GetEvents returns the first page of handle's recent public events.
// One page of 100 covers the feed's retention; no further pagination
func (c *Client) GetEvents(ctx context.Context, handle string) ([]Event, error) {
	if handle == "" {
		return []Event{}, nil
	}
	var out []Event
	path := fmt.Sprintf("/users/%s/events/public?per_page=%d", url.PathEscape(handle), pageSize)
	if err := c.getJSON(ctx, path, &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = []Event{}
	}
	return out, nil
}
