package modkit

import (
	"net/http"
	"reflect"
	"testing"

	"gitscout/internal/modkit/httpkit"
)

func TestBuild_Defaults(t *testing.T) {
	t.Parallel()

	b := Build()

	if b.Name != "" || b.Prefix != "" || b.Ports != nil || b.SwaggerOn {
		t.Fatalf("zero-option Build should be all defaults: %+v", b)
	}
	if len(b.Mw) != 0 {
		t.Fatalf("default Mw length = %d, want 0", len(b.Mw))
	}

	// Subrouter defaults to identity, Register to a no-op
	var r httpkit.Router
	if b.Subrouter(r) != r {
		t.Fatal("default Subrouter should be identity")
	}
	defer func() {
		if v := recover(); v != nil {
			t.Fatalf("default Register panicked: %v", v)
		}
	}()
	b.Register(r)
}

func TestBuild_OptionsAndCopySemantics(t *testing.T) {
	t.Parallel()

	// compare funcs by program counter
	fnPtr := func(f func(http.Handler) http.Handler) uintptr {
		return reflect.ValueOf(f).Pointer()
	}

	mwA := func(next http.Handler) http.Handler { return next }
	mwB := func(next http.Handler) http.Handler { return next }
	mid := []func(http.Handler) http.Handler{mwA, mwB}

	subCalled := 0
	regCalled := 0

	type ports struct {
		Prefix string
		Depth  int
	}
	p := ports{Prefix: "/accounts", Depth: 7}

	// internal-only hook wiring via a custom Option (same package)
	hooks := Option(func(c *buildCfg) {
		c.subrouter = func(in httpkit.Router) httpkit.Router {
			subCalled++
			return in
		}
		c.register = func(httpkit.Router) { regCalled++ }
		c.swaggerOn = true
	})

	b := Build(
		WithName("explore"),
		WithPrefix("/api/v1/accounts"),
		WithMiddlewares(mid...),
		WithPorts[ports](p),
		hooks,
	)

	if b.Name != "explore" || b.Prefix != "/api/v1/accounts" || !b.SwaggerOn {
		t.Fatalf("built = %+v", b)
	}
	if got, ok := b.Ports.(ports); !ok || got != p {
		t.Fatal("Ports mismatch after Build")
	}

	// middleware slice is copied, order preserved
	if len(b.Mw) != 2 || fnPtr(b.Mw[0]) != fnPtr(mwA) || fnPtr(b.Mw[1]) != fnPtr(mwB) {
		t.Fatal("Mw contents not preserved")
	}

	// mutating the source slice after Build must not leak into Built.Mw
	mid[0] = func(next http.Handler) http.Handler { return next }
	if fnPtr(b.Mw[0]) != fnPtr(mwA) || fnPtr(b.Mw[1]) != fnPtr(mwB) {
		t.Fatal("Built.Mw changed after source slice mutation")
	}

	// hooks are plumbed through
	var r httpkit.Router
	if out := b.Subrouter(r); out != r {
		t.Fatal("Subrouter did not return its input")
	}
	b.Register(r)
	if subCalled != 1 || regCalled != 1 {
		t.Fatalf("hook invocations: subrouter=%d register=%d", subCalled, regCalled)
	}
}
