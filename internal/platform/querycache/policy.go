package querycache

import (
	"time"

	perr "gitscout/internal/platform/errors"
)

// RetryFunc decides whether to try the producer again. attempt is the number
// of attempts completed so far (1 after the first failure)
type RetryFunc func(attempt int, err error) bool

// Policy governs one logical query registration
type Policy struct {
	// Enabled gates fetching entirely; when false Fetch does no I/O and
	// reports an idle no-data state regardless of cache contents
	Enabled bool

	// StaleTime is how long a successful result is served without refetching.
	// An expired entry is still returned immediately while a background
	// refresh is kicked off
	StaleTime time.Duration

	// Retention is how long an entry survives with no readers before the
	// janitor evicts it. 0 keeps the entry until LRU pressure
	Retention time.Duration

	// Retry is consulted between producer attempts within one fetch cycle
	Retry RetryFunc
}

// DefaultPolicy returns an enabled policy with the default retry
func DefaultPolicy(stale, retention time.Duration) Policy {
	return Policy{
		Enabled:   true,
		StaleTime: stale,
		Retention: retention,
		Retry:     DefaultRetry,
	}
}

// DefaultRetry stops after 3 total attempts and immediately on anything the
// error layer classifies as non-retryable, quota rejections included
func DefaultRetry(attempt int, err error) bool {
	if !perr.Retryable(err) {
		return false
	}
	return attempt < 3
}

// AccountRetry is DefaultRetry plus an immediate stop on not-found, for
// lookups where the resource simply not existing is a terminal answer
func AccountRetry(attempt int, err error) bool {
	if perr.IsNotFound(err) {
		return false
	}
	return DefaultRetry(attempt, err)
}

// NoRetry never retries
func NoRetry(int, error) bool { return false }
