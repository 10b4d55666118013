package httpkit

import (
	"net/http"
	"testing"

	phttp "gitscout/internal/platform/net/http"
)

// routeRec is one recorded registration on the fake router
type routeRec struct {
	verb string
	path string
	ph   phttp.Handler
	h    http.Handler
}

// routerRecorder satisfies the platform Router surface and records what the
// kit does to it, so mounting helpers can be tested without a real mux
type routerRecorder struct {
	prefixes  []string
	useCalls  int
	lastMWLen int
	mountHits int
	recs      []routeRec
}

func (f *routerRecorder) Route(prefix string, fn func(Router)) {
	f.prefixes = append(f.prefixes, prefix)
	fn(f) // pass itself as the subrouter
}

func (f *routerRecorder) Group(fn func(Router)) { fn(f) }

func (f *routerRecorder) Use(mw ...func(http.Handler) http.Handler) {
	f.useCalls++
	f.lastMWLen = len(mw)
}

func (f *routerRecorder) Mux() http.Handler { return http.NewServeMux() }

func (f *routerRecorder) Handle(path string, h http.Handler) {
	f.recs = append(f.recs, routeRec{verb: "HANDLE", path: path, h: h})
}

func (f *routerRecorder) record(verb, path string, h phttp.Handler) {
	f.recs = append(f.recs, routeRec{verb: verb, path: path, ph: h})
}

func (f *routerRecorder) Get(path string, h phttp.Handler)     { f.record("GET", path, h) }
func (f *routerRecorder) Post(path string, h phttp.Handler)    { f.record("POST", path, h) }
func (f *routerRecorder) Put(path string, h phttp.Handler)     { f.record("PUT", path, h) }
func (f *routerRecorder) Patch(path string, h phttp.Handler)   { f.record("PATCH", path, h) }
func (f *routerRecorder) Delete(path string, h phttp.Handler)  { f.record("DELETE", path, h) }
func (f *routerRecorder) Options(path string, h phttp.Handler) { f.record("OPTIONS", path, h) }
func (f *routerRecorder) Head(path string, h phttp.Handler)    { f.record("HEAD", path, h) }

// only returns the single recorded registration, failing on any other count
func (f *routerRecorder) only(t *testing.T) routeRec {
	t.Helper()
	if len(f.recs) != 1 {
		t.Fatalf("expected exactly 1 registration, got %d", len(f.recs))
	}
	return f.recs[0]
}
