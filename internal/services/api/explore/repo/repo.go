// Package repo is the cached access layer for the explore module.
// Every read goes through the query cache; the GitHub client is only
// ever invoked as a cache producer
package repo

import (
	"context"
	"time"

	"gitscout/internal/core/contrib"
	"gitscout/internal/core/normalize"
	"gitscout/internal/platform/querycache"
	"gitscout/internal/services/api/explore/domain"
)

// Windows carries the staleness/retention tuning for each query family
type Windows struct {
	SearchStale     time.Duration
	SearchRetention time.Duration
	DetailStale     time.Duration
	DetailRetention time.Duration
}

// DefaultWindows returns the stock cache windows
func DefaultWindows() Windows {
	return Windows{
		SearchStale:     30 * time.Second,
		SearchRetention: 5 * time.Minute,
		DetailStale:     5 * time.Minute,
		DetailRetention: 15 * time.Minute,
	}
}

// Queries binds the cache store, the remote client, and the per-family
// policies together
type Queries struct {
	cache  *querycache.Store
	client domain.ClientPort

	search  querycache.Policy
	account querycache.Policy
	repos   querycache.Policy
	stats   querycache.Policy

	now func() time.Time
}

// New constructs the explore query layer
func New(cache *querycache.Store, client domain.ClientPort, w Windows) *Queries {
	search := querycache.DefaultPolicy(w.SearchStale, w.SearchRetention)

	account := querycache.DefaultPolicy(w.DetailStale, w.DetailRetention)
	account.Retry = querycache.AccountRetry

	return &Queries{
		cache:   cache,
		client:  client,
		search:  search,
		account: account,
		repos:   querycache.DefaultPolicy(w.DetailStale, w.DetailRetention),
		stats:   querycache.DefaultPolicy(w.DetailStale, w.DetailRetention),
		now:     time.Now,
	}
}

// Search resolves a search query through the cache and seeds each returned
// account under its own detail key so an immediate follow-up click is warm
func (q *Queries) Search(ctx context.Context, query string, limit int) ([]domain.Account, error) {
	folded := normalize.Query(query)
	key := querycache.Key("search", folded, limit)

	accounts, err := querycache.Fetch(ctx, q.cache, key, q.search,
		func(c context.Context) ([]domain.Account, error) {
			return q.client.SearchAccounts(c, query, limit)
		})
	if err != nil {
		return nil, err
	}

	for _, a := range accounts {
		q.cache.Seed(querycache.Key("account", normalize.Handle(a.Login)), a, q.account)
	}
	return accounts, nil
}

// Account resolves a single account through the cache
func (q *Queries) Account(ctx context.Context, handle string) (domain.Account, error) {
	key := querycache.Key("account", normalize.Handle(handle))
	return querycache.Fetch(ctx, q.cache, key, q.account,
		func(c context.Context) (domain.Account, error) {
			return q.client.GetAccount(c, handle)
		})
}

// Repositories resolves the full repository listing through the cache
func (q *Queries) Repositories(ctx context.Context, handle string) ([]domain.Repository, error) {
	key := querycache.Key("repos", normalize.Handle(handle))
	return querycache.Fetch(ctx, q.cache, key, q.repos,
		func(c context.Context) ([]domain.Repository, error) {
			return q.client.GetRepositories(c, handle)
		})
}

// Stats resolves the contribution summary through the cache
func (q *Queries) Stats(ctx context.Context, handle string) (domain.ContributionSummary, error) {
	key := querycache.Key("stats", normalize.Handle(handle))
	return querycache.Fetch(ctx, q.cache, key, q.stats,
		func(c context.Context) (domain.ContributionSummary, error) {
			return contrib.Stats(c, q.client, q.now(), handle)
		})
}
