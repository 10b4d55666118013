package domain

import (
	"context"
)

// ServicePort defines the explore service interface
type ServicePort interface {
	Search(ctx context.Context, in SearchInput) (SearchResp, error)
	Account(ctx context.Context, handle string) (Account, error)
	Repositories(ctx context.Context, handle string) ([]Repository, error)
	Stats(ctx context.Context, handle string) (ContributionSummary, error)
}

// ClientPort is the slice of the GitHub client the explore module consumes.
// *github.Client satisfies it; tests substitute stubs
type ClientPort interface {
	SearchAccounts(ctx context.Context, query string, limit int) ([]Account, error)
	GetAccount(ctx context.Context, handle string) (Account, error)
	GetRepositories(ctx context.Context, handle string) ([]Repository, error)
	GetEvents(ctx context.Context, handle string) ([]Event, error)
}
