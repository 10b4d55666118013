// Package contrib derives contribution statistics from a user's public
// events and repository list. Pure computation, no I/O
package contrib

import (
	"encoding/json"
	"time"

	"gitscout/internal/adapters/github"
	perr "gitscout/internal/platform/errors"
)

const (
	// windowDays is the trailing activity window, anchored to computation time
	windowDays = 365

	// recentActivityMax bounds the recent-activity feed
	recentActivityMax = 10
)

// Summary is the derived contribution statistics for one account
type Summary struct {
	Commits        int            `json:"total_commits"`
	PullRequests   int            `json:"total_pull_requests"`
	Issues         int            `json:"total_issues"`
	Repositories   int            `json:"total_repositories"`
	RecentActivity []github.Event `json:"recent_activity"`
}

// Aggregate folds events and repositories into a Summary.
//
// Events are filtered to the trailing 365-day window (creation at or after
// the cutoff, source order preserved). PushEvents add their commit count, or
// exactly 1 when the payload carries no enumerable commit list;
// PullRequestEvents and IssuesEvents add 1 to their counters; every other
// type passes through untallied but still counts as recent activity. The
// repository total is the full list length, independent of the window.
//
// An event without a valid creation timestamp is rejected outright rather
// than silently misclassified against the cutoff
func Aggregate(now time.Time, events []github.Event, repos []github.Repository) (Summary, error) {
	cutoff := now.AddDate(0, 0, -windowDays)

	sum := Summary{
		Repositories:   len(repos),
		RecentActivity: []github.Event{},
	}

	for _, ev := range events {
		if ev.CreatedAt.IsZero() {
			return Summary{}, perr.WithField(
				perr.Validationf("event %s has no valid created_at timestamp", ev.ID),
				"created_at",
			)
		}
		if ev.CreatedAt.Before(cutoff) {
			continue
		}

		switch ev.Type {
		case "PushEvent":
			if n, ok := pushCommitCount(ev.Payload); ok {
				sum.Commits += n
			} else {
				sum.Commits++
			}
		case "PullRequestEvent":
			sum.PullRequests++
		case "IssuesEvent":
			sum.Issues++
		}

		if len(sum.RecentActivity) < recentActivityMax {
			sum.RecentActivity = append(sum.RecentActivity, ev)
		}
	}

	return sum, nil
}

// pushCommitCount extracts the commit list length from a PushEvent payload.
// ok is false when the payload is absent, malformed, or has no commits field;
// a present-but-empty list is a real count of zero
func pushCommitCount(payload json.RawMessage) (int, bool) {
	if len(payload) == 0 {
		return 0, false
	}
	var p struct {
		Commits []json.RawMessage `json:"commits"`
	}
	if err := json.Unmarshal(payload, &p); err != nil {
		return 0, false
	}
	if p.Commits == nil {
		return 0, false
	}
	return len(p.Commits), true
}
