package service

import (
	"context"
	"sync/atomic"
	"testing"

	"gitscout/internal/adapters/github"
	perr "gitscout/internal/platform/errors"
	"gitscout/internal/platform/querycache"
	"gitscout/internal/services/api/explore/domain"
	srepo "gitscout/internal/services/api/explore/repo"
)

// stubClient counts calls and returns canned data per method
type stubClient struct {
	searchCalls int32
	accountCall int32
	repoCalls   int32
	eventCalls  int32

	accounts []github.Account
	account  github.Account
	repos    []github.Repository
	events   []github.Event
	err      error
}

func (s *stubClient) SearchAccounts(_ context.Context, _ string, _ int) ([]github.Account, error) {
	atomic.AddInt32(&s.searchCalls, 1)
	return s.accounts, s.err
}

func (s *stubClient) GetAccount(_ context.Context, _ string) (github.Account, error) {
	atomic.AddInt32(&s.accountCall, 1)
	return s.account, s.err
}

func (s *stubClient) GetRepositories(_ context.Context, _ string) ([]github.Repository, error) {
	atomic.AddInt32(&s.repoCalls, 1)
	return s.repos, s.err
}

func (s *stubClient) GetEvents(_ context.Context, _ string) ([]github.Event, error) {
	atomic.AddInt32(&s.eventCalls, 1)
	return s.events, s.err
}

func newService(t *testing.T, client domain.ClientPort) *Service {
	t.Helper()
	cache := querycache.New(querycache.Options{Capacity: 64})
	t.Cleanup(cache.Close)
	return New(srepo.New(cache, client, srepo.DefaultWindows()))
}

func TestSearch_BlankQuery_NoNetwork(t *testing.T) {
	t.Parallel()
	stub := &stubClient{}
	svc := newService(t, stub)

	out, err := svc.Search(context.Background(), domain.SearchInput{Query: "   "})
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if out.Accounts == nil || len(out.Accounts) != 0 {
		t.Fatalf("want empty non-nil accounts, got %#v", out.Accounts)
	}
	if n := atomic.LoadInt32(&stub.searchCalls); n != 0 {
		t.Fatalf("client called %d times for blank query", n)
	}
}

func TestSearch_SecondCallServedFromCache(t *testing.T) {
	t.Parallel()
	stub := &stubClient{accounts: []github.Account{{ID: 1, Login: "octocat"}}}
	svc := newService(t, stub)

	for i := 0; i < 2; i++ {
		out, err := svc.Search(context.Background(), domain.SearchInput{Query: "octo"})
		if err != nil {
			t.Fatalf("Search #%d: %v", i+1, err)
		}
		if len(out.Accounts) != 1 || out.Accounts[0].Login != "octocat" {
			t.Fatalf("Search #%d accounts: %#v", i+1, out.Accounts)
		}
	}
	if n := atomic.LoadInt32(&stub.searchCalls); n != 1 {
		t.Fatalf("producer ran %d times, want 1", n)
	}
}

func TestSearch_LimitVariantsAreDistinctQueries(t *testing.T) {
	t.Parallel()
	stub := &stubClient{accounts: []github.Account{{ID: 1, Login: "octocat"}}}
	svc := newService(t, stub)

	if _, err := svc.Search(context.Background(), domain.SearchInput{Query: "octo", Limit: 5}); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.Search(context.Background(), domain.SearchInput{Query: "octo", Limit: 10}); err != nil {
		t.Fatal(err)
	}
	if n := atomic.LoadInt32(&stub.searchCalls); n != 2 {
		t.Fatalf("producer ran %d times, want 2 (one per limit)", n)
	}
}

func TestSearch_DefaultAndZeroLimitShareAKey(t *testing.T) {
	t.Parallel()
	stub := &stubClient{accounts: []github.Account{{ID: 1, Login: "octocat"}}}
	svc := newService(t, stub)

	// limit 0 normalizes to the default before keying
	if _, err := svc.Search(context.Background(), domain.SearchInput{Query: "octo"}); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.Search(context.Background(), domain.SearchInput{Query: "octo", Limit: 5}); err != nil {
		t.Fatal(err)
	}
	if n := atomic.LoadInt32(&stub.searchCalls); n != 1 {
		t.Fatalf("producer ran %d times, want 1", n)
	}
}

func TestSearch_SeedsAccountDetail(t *testing.T) {
	t.Parallel()
	stub := &stubClient{accounts: []github.Account{{ID: 1, Login: "Octocat"}}}
	svc := newService(t, stub)

	if _, err := svc.Search(context.Background(), domain.SearchInput{Query: "octo"}); err != nil {
		t.Fatal(err)
	}

	// detail lookup in any casing must hit the seeded entry, not the client
	acct, err := svc.Account(context.Background(), "OCTOCAT")
	if err != nil {
		t.Fatalf("Account: %v", err)
	}
	if acct.ID != 1 || acct.Login != "Octocat" {
		t.Fatalf("seeded account mismatch: %#v", acct)
	}
	if n := atomic.LoadInt32(&stub.accountCall); n != 0 {
		t.Fatalf("GetAccount called %d times despite seed", n)
	}
}

func TestAccount_BlankHandle_Validation(t *testing.T) {
	t.Parallel()
	stub := &stubClient{}
	svc := newService(t, stub)

	_, err := svc.Account(context.Background(), "  ")
	if err == nil {
		t.Fatal("expected validation error")
	}
	if perr.CodeOf(err) != perr.ErrorCodeValidation {
		t.Fatalf("code = %v, want validation", perr.CodeOf(err))
	}
	if n := atomic.LoadInt32(&stub.accountCall); n != 0 {
		t.Fatalf("client called %d times for blank handle", n)
	}
}

func TestAccount_MalformedHandle_Validation(t *testing.T) {
	t.Parallel()
	stub := &stubClient{}
	svc := newService(t, stub)

	for _, h := range []string{"-octocat", "mona--lisa", "has space", "way/off"} {
		_, err := svc.Account(context.Background(), h)
		if err == nil {
			t.Fatalf("Account(%q): expected validation error", h)
		}
		if perr.CodeOf(err) != perr.ErrorCodeValidation {
			t.Fatalf("Account(%q): code = %v, want validation", h, perr.CodeOf(err))
		}
		te, ok := perr.As(err)
		if !ok {
			t.Fatalf("Account(%q): expected typed error, got %v", h, err)
		}
		if te.Field() != "handle" {
			t.Fatalf("Account(%q): field = %q, want handle", h, te.Field())
		}
	}
	if n := atomic.LoadInt32(&stub.accountCall); n != 0 {
		t.Fatalf("client called %d times for malformed handles", n)
	}
}

func TestRepositories_NilNormalizedToEmpty(t *testing.T) {
	t.Parallel()
	stub := &stubClient{repos: nil}
	svc := newService(t, stub)

	repos, err := svc.Repositories(context.Background(), "octocat")
	if err != nil {
		t.Fatalf("Repositories: %v", err)
	}
	if repos == nil || len(repos) != 0 {
		t.Fatalf("want empty non-nil slice, got %#v", repos)
	}
}

func TestStats_ComposesEventsAndRepos(t *testing.T) {
	t.Parallel()
	stub := &stubClient{
		events: []github.Event{},
		repos:  []github.Repository{{ID: 1, Name: "a"}, {ID: 2, Name: "b"}},
	}
	svc := newService(t, stub)

	sum, err := svc.Stats(context.Background(), "octocat")
	if err != nil {
		t.Fatalf("Stats: %v", err)
	}
	if sum.Repositories != 2 {
		t.Fatalf("Repositories = %d, want 2", sum.Repositories)
	}
	if atomic.LoadInt32(&stub.eventCalls) != 1 || atomic.LoadInt32(&stub.repoCalls) != 1 {
		t.Fatalf("calls events=%d repos=%d, want 1/1",
			atomic.LoadInt32(&stub.eventCalls), atomic.LoadInt32(&stub.repoCalls))
	}
}

func TestStats_RemoteErrorPassesThrough(t *testing.T) {
	t.Parallel()
	stub := &stubClient{err: perr.Remote(403, "API rate limit exceeded")}
	svc := newService(t, stub)

	_, err := svc.Stats(context.Background(), "octocat")
	if err == nil {
		t.Fatal("expected error")
	}
	if perr.StatusOf(err) != 403 {
		t.Fatalf("status = %d, want 403", perr.StatusOf(err))
	}
	var pe *perr.Error
	if p, ok := perr.As(err); ok {
		pe = p
	} else {
		t.Fatal("expected typed error")
	}
	if pe.Message() != "API rate limit exceeded" {
		t.Fatalf("message = %q", pe.Message())
	}
}
