// Package querycache provides a keyed request-memoization layer for remote
// reads. Values are cached per logical key with independent staleness and
// retention windows, concurrent fetches for one key are coalesced so the
// producer runs at most once per refresh cycle, and failures are retried
// under a per-registration policy before being surfaced.
//
// Stores are plain values wired through dependency injection; there is no
// package-level instance, every test constructs its own.
package querycache

import (
	"context"
	"sync"
	"time"

	"gitscout/internal/platform/logger"

	"github.com/google/uuid"
	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/sync/singleflight"
)

const (
	defaultCapacity = 512
	defaultSweep    = time.Minute
)

// Options configures a Store
type Options struct {
	// Capacity bounds the number of cached entries, LRU beyond that
	Capacity int
	// Sweep is the janitor interval for retention eviction, 0 disables the janitor
	Sweep time.Duration
}

// Store is the cache. One Store serves many logical queries, each identified
// by a rendered Key and governed by the Policy passed to Fetch
type Store struct {
	mu      sync.Mutex
	entries *lru.Cache[string, *entry]
	group   singleflight.Group

	log   logger.Logger
	now   func() time.Time // seam for tests
	sweep time.Duration

	hits      uint64
	misses    uint64
	staleHits uint64
	seeds     uint64
	evictions uint64

	done      chan struct{}
	closeOnce sync.Once
	wg        sync.WaitGroup
}

// entry is owned exclusively by the Store; callers only ever see copies
// through Fetch and Snapshot
type entry struct {
	val       any
	err       error
	hasData   bool
	fetching  bool
	fetchedAt time.Time
	staleAt   time.Time
	lastRead  time.Time
	retention time.Duration
}

// New constructs a Store and starts its janitor when a sweep interval is set
func New(opts Options) *Store {
	if opts.Capacity <= 0 {
		opts.Capacity = defaultCapacity
	}
	s := &Store{
		log:   *logger.Named("querycache"),
		now:   time.Now,
		sweep: opts.Sweep,
		done:  make(chan struct{}),
	}
	c, err := lru.NewWithEvict[string, *entry](opts.Capacity, func(string, *entry) {
		// lru callback runs under our own lock via Add/Remove
		s.evictions++
	})
	if err != nil {
		// only possible with capacity <= 0, guarded above
		panic(err)
	}
	s.entries = c
	if s.sweep > 0 {
		s.wg.Add(1)
		go s.janitor()
	}
	return s
}

// Close stops the janitor. Idempotent
func (s *Store) Close() {
	s.closeOnce.Do(func() { close(s.done) })
	s.wg.Wait()
}

// Fetch returns the cached value for key when fresh, serves a stale value
// immediately while kicking off a coalesced background refresh, and otherwise
// invokes producer (once per key, however many callers arrive) applying the
// policy's retry function between attempts.
//
// A caller whose ctx is canceled detaches from a shared in-flight fetch; the
// fetch itself runs to completion and populates the cache
func Fetch[T any](
	ctx context.Context,
	s *Store,
	key string,
	p Policy,
	producer func(context.Context) (T, error),
) (T, error) {
	var zero T
	if !p.Enabled {
		return zero, nil
	}

	fn := func(c context.Context) (any, error) { return producer(c) }

	s.mu.Lock()
	now := s.now()
	if e, ok := s.entries.Get(key); ok && e.hasData {
		e.lastRead = now
		val, _ := e.val.(T)
		if now.Before(e.staleAt) {
			s.hits++
			s.mu.Unlock()
			return val, nil
		}
		// expired entries are still served immediately while a refresh runs
		s.staleHits++
		refreshing := e.fetching
		s.mu.Unlock()
		if !refreshing {
			s.refresh(key, p, fn)
		}
		return val, nil
	}
	s.misses++
	s.markFetching(key, p, now)
	s.mu.Unlock()

	ch := s.group.DoChan(key, func() (any, error) {
		// detached from any single caller so abandonment cannot cancel a
		// fetch other subscribers share
		return s.produce(context.WithoutCancel(ctx), key, p, fn)
	})

	select {
	case <-ctx.Done():
		return zero, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return zero, res.Err
		}
		v, _ := res.Val.(T)
		return v, nil
	}
}

// Seed pre-populates the entry for key without any I/O, fresh as of seed
// time under the given policy windows. Used to warm derived keys, e.g. a
// single account cached under its own key from a search result page
func (s *Store) Seed(key string, val any, p Policy) {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.now()
	s.seeds++
	s.entries.Add(key, &entry{
		val:       val,
		hasData:   true,
		fetchedAt: now,
		staleAt:   now.Add(p.StaleTime),
		lastRead:  now,
		retention: p.Retention,
	})
}

// Invalidate drops the entry for key, if any
func (s *Store) Invalidate(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries.Remove(key)
}

// refresh runs a coalesced background fetch for a stale key. Nobody waits on
// it; the result lands in the cache for the next reader
func (s *Store) refresh(key string, p Policy, fn func(context.Context) (any, error)) {
	id := uuid.NewString()
	s.mu.Lock()
	s.markFetching(key, p, s.now())
	s.mu.Unlock()
	ch := s.group.DoChan(key, func() (any, error) {
		return s.produce(context.Background(), key, p, fn)
	})
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		res := <-ch
		if res.Err != nil {
			s.log.Debug().Str("refresh_id", id).Str("key", key).Err(res.Err).Msg("background refresh failed")
			return
		}
		s.log.Debug().Str("refresh_id", id).Str("key", key).Msg("background refresh done")
	}()
}

// markFetching flags the entry so Snapshot can report loading state.
// Caller holds s.mu
func (s *Store) markFetching(key string, p Policy, now time.Time) {
	e, ok := s.entries.Get(key)
	if !ok {
		e = &entry{lastRead: now, retention: p.Retention}
		s.entries.Add(key, e)
	}
	e.fetching = true
}

// produce invokes fn, retrying per policy, and writes the outcome to the
// entry. Exactly one produce runs per key at a time (singleflight)
func (s *Store) produce(ctx context.Context, key string, p Policy, fn func(context.Context) (any, error)) (any, error) {
	attempt := 0
	for {
		v, err := fn(ctx)
		if err == nil {
			s.storeSuccess(key, p, v)
			return v, nil
		}
		attempt++
		if p.Retry != nil && p.Retry(attempt, err) {
			s.log.Debug().Str("key", key).Int("attempt", attempt).Err(err).Msg("retrying fetch")
			continue
		}
		s.storeFailure(key, err)
		return nil, err
	}
}

func (s *Store) storeSuccess(key string, p Policy, v any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.now()
	e, ok := s.entries.Get(key)
	if !ok {
		e = &entry{}
		s.entries.Add(key, e)
	}
	e.val = v
	e.err = nil // last failure clears on success
	e.hasData = true
	e.fetching = false
	e.fetchedAt = now
	e.staleAt = now.Add(p.StaleTime)
	e.lastRead = now
	e.retention = p.Retention
}

func (s *Store) storeFailure(key string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if e, ok := s.entries.Get(key); ok {
		e.err = err
		e.fetching = false
	}
}

// janitor evicts entries that have had no readers within their retention window
func (s *Store) janitor() {
	defer s.wg.Done()
	t := time.NewTicker(s.sweep)
	defer t.Stop()
	for {
		select {
		case <-s.done:
			return
		case <-t.C:
			s.sweepExpired()
		}
	}
}

func (s *Store) sweepExpired() {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.now()
	for _, key := range s.entries.Keys() {
		e, ok := s.entries.Peek(key)
		if !ok || e.retention <= 0 || e.fetching {
			continue
		}
		if now.Sub(e.lastRead) >= e.retention {
			s.entries.Remove(key)
		}
	}
}
