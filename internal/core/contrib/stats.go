package contrib

import (
	"context"
	"time"

	"gitscout/internal/adapters/github"
	perr "gitscout/internal/platform/errors"
)

// Source is the slice of the GitHub client the stats composition needs.
// *github.Client satisfies it
type Source interface {
	GetEvents(ctx context.Context, handle string) ([]github.Event, error)
	GetRepositories(ctx context.Context, handle string) ([]github.Repository, error)
}

// Stats fetches handle's events then repositories (sequentially, the second
// call only after the first succeeds) and aggregates them. Typed errors from
// either call propagate unchanged; anything else is normalized to a typed
// connectivity failure
func Stats(ctx context.Context, src Source, now time.Time, handle string) (Summary, error) {
	if handle == "" {
		return Summary{}, perr.WithField(perr.Validationf("handle is required"), "handle")
	}

	events, err := src.GetEvents(ctx, handle)
	if err != nil {
		return Summary{}, normalize(err)
	}
	repos, err := src.GetRepositories(ctx, handle)
	if err != nil {
		return Summary{}, normalize(err)
	}

	return Aggregate(now, events, repos)
}

// normalize passes typed errors through unchanged and wraps anything else.
// The explicit type check keeps the no-double-wrap rule from depending on
// call ordering
func normalize(err error) error {
	if perr.IsTyped(err) {
		return err
	}
	return perr.Wrap(err, perr.ErrorCodeUnavailable, "network error, please check your connection")
}
