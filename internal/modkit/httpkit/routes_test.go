package httpkit

import (
	"net/http"
	"testing"

	phttp "gitscout/internal/platform/net/http"
)

func TestMountUnder_AppliesMiddlewareAndMounts(t *testing.T) {
	root := &routerRecorder{}

	mwA := func(next http.Handler) http.Handler { return next }
	mwB := func(next http.Handler) http.Handler { return next }

	MountUnder(root, "/accounts", []func(http.Handler) http.Handler{mwA, mwB}, func(sub Router) {
		sub.Get("/search", phttp.Handle(func(r *http.Request) phttp.Response {
			return phttp.NoContent()
		}))
	})

	if len(root.prefixes) != 1 || root.prefixes[0] != "/accounts" {
		t.Fatalf("expected Route(/accounts), got %v", root.prefixes)
	}
	if root.useCalls != 1 || root.lastMWLen != 2 {
		t.Fatalf("expected Use once with 2 middleware, got calls=%d len=%d", root.useCalls, root.lastMWLen)
	}

	rec := root.only(t)
	if rec.verb != "GET" || rec.path != "/search" || rec.ph == nil {
		t.Fatalf("expected GET /search with a handler, got %s %s", rec.verb, rec.path)
	}
}

func TestMountUnder_NoMiddlewareSkipsUse(t *testing.T) {
	root := &routerRecorder{}

	MountUnder(root, "/meta", nil, func(sub Router) {
		sub.Get("/version", phttp.Handle(func(r *http.Request) phttp.Response {
			return phttp.OK("gitscout-api")
		}))
	})

	if root.useCalls != 0 {
		t.Fatalf("Use should not run for an empty middleware slice, got %d calls", root.useCalls)
	}
	if len(root.prefixes) != 1 || root.prefixes[0] != "/meta" {
		t.Fatalf("expected Route(/meta), got %v", root.prefixes)
	}
	rec := root.only(t)
	if rec.verb != "GET" || rec.path != "/version" || rec.ph == nil {
		t.Fatalf("expected GET /version registration, got %+v", rec)
	}
}
