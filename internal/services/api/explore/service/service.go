// Package service implements the explore API facade
package service

import (
	"context"
	"strings"

	perr "gitscout/internal/platform/errors"
	"gitscout/internal/platform/net/http/bind"
	"gitscout/internal/services/api/explore/domain"
	srepo "gitscout/internal/services/api/explore/repo"
)

const (
	defaultSearchLimit = 5
	maxSearchLimit     = 100
)

// Service is the concrete implementation of domain.ServicePort
type Service struct {
	Repo *srepo.Queries
}

// New constructs an explore service
func New(repo *srepo.Queries) *Service {
	if repo == nil {
		panic("explore.Service requires a non-nil query layer")
	}
	return &Service{Repo: repo}
}

// Search returns accounts matching the query. A blank query is a successful
// empty result, not an error, and never reaches the network
func (s *Service) Search(ctx context.Context, in domain.SearchInput) (domain.SearchResp, error) {
	query := strings.TrimSpace(in.Query)
	if query == "" {
		return domain.SearchResp{Query: "", Accounts: []domain.Account{}}, nil
	}

	limit := in.Limit
	if limit <= 0 {
		limit = defaultSearchLimit
	}
	if limit > maxSearchLimit {
		limit = maxSearchLimit
	}

	accounts, err := s.Repo.Search(ctx, query, limit)
	if err != nil {
		return domain.SearchResp{}, err
	}
	if accounts == nil {
		accounts = []domain.Account{}
	}
	return domain.SearchResp{Query: query, Accounts: accounts}, nil
}

// Account returns a single account by handle
func (s *Service) Account(ctx context.Context, handle string) (domain.Account, error) {
	h, err := requireHandle(handle)
	if err != nil {
		return domain.Account{}, err
	}
	return s.Repo.Account(ctx, h)
}

// Repositories returns the full repository listing for handle
func (s *Service) Repositories(ctx context.Context, handle string) ([]domain.Repository, error) {
	h, err := requireHandle(handle)
	if err != nil {
		return nil, err
	}
	repos, err := s.Repo.Repositories(ctx, h)
	if err != nil {
		return nil, err
	}
	if repos == nil {
		repos = []domain.Repository{}
	}
	return repos, nil
}

// Stats returns the trailing-year contribution summary for handle
func (s *Service) Stats(ctx context.Context, handle string) (domain.ContributionSummary, error) {
	h, err := requireHandle(handle)
	if err != nil {
		return domain.ContributionSummary{}, err
	}
	return s.Repo.Stats(ctx, h)
}

// requireHandle rejects blank or malformed handles before any cache or
// network work
func requireHandle(handle string) (string, error) {
	h := strings.TrimSpace(handle)
	if h == "" {
		return "", perr.WithField(perr.Validationf("handle is required"), "handle")
	}
	if err := bind.Field(h, "handle"); err != nil {
		return "", perr.WithField(perr.Validationf("%q is not a valid account handle", h), "handle")
	}
	return h, nil
}
