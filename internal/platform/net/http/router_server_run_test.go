package http_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"gitscout/internal/platform/config"
	phttp "gitscout/internal/platform/net/http"

	"github.com/go-chi/chi/v5"
)

// Covers the NewServer option hook, Use before routes, Group, the verb
// adapters and the Run/Shutdown lifecycle with ErrServerClosed mapped to nil
func TestServer_RunAndShutdown(t *testing.T) {
	// ephemeral local port so parallel CI runs never collide
	t.Setenv("HTTP_ADDR", "127.0.0.1:0")

	optCalled := false
	srv := phttp.NewServer(config.New(), func(m *chi.Mux) { optCalled = true })
	if !optCalled {
		t.Fatal("NewServer option not invoked")
	}
	if srv.Addr() == "" {
		t.Fatal("Addr() empty")
	}

	r := srv.Router()

	// chi requires middleware before any route registration
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			w.Header().Set("X-Gitscout", "api")
			next.ServeHTTP(w, req)
		})
	})

	r.Group(func(gr phttp.Router) {
		gr.Get("/ping", func(w http.ResponseWriter, _ *http.Request) { _, _ = io.WriteString(w, "pong") })
	})
	r.Post("/accounts", func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusCreated) })
	r.Put("/accounts", func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusAccepted) })
	r.Patch("/accounts", func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusNoContent) })
	r.Delete("/accounts", func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusOK) })

	done := make(chan error, 1)
	go func() { done <- srv.Run(context.Background()) }()
	time.Sleep(50 * time.Millisecond)

	get := func(method, path string) *httptest.ResponseRecorder {
		rec := httptest.NewRecorder()
		r.Mux().ServeHTTP(rec, httptest.NewRequest(method, path, nil))
		return rec
	}

	if rec := get(http.MethodGet, "/ping"); rec.Code != http.StatusOK || rec.Body.String() != "pong" {
		t.Fatalf("/ping: %d %q", rec.Code, rec.Body.String())
	}
	if rec := get(http.MethodGet, "/ping"); rec.Header().Get("X-Gitscout") != "api" {
		t.Fatal("middleware header missing")
	}

	verbs := []struct {
		method string
		want   int
	}{
		{http.MethodPost, http.StatusCreated},
		{http.MethodPut, http.StatusAccepted},
		{http.MethodPatch, http.StatusNoContent},
		{http.MethodDelete, http.StatusOK},
	}
	for _, v := range verbs {
		if rec := get(v.method, "/accounts"); rec.Code != v.want {
			t.Fatalf("%s /accounts = %d, want %d", v.method, rec.Code, v.want)
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		t.Fatalf("Shutdown: %v", err)
	}
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run returned %v after graceful shutdown", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after Shutdown")
	}
}

func TestNewServer_AddrFromEnv(t *testing.T) {
	t.Setenv("HTTP_ADDR", ":12345")
	if srv := phttp.NewServer(config.New()); srv.Addr() != ":12345" {
		t.Fatalf("addr = %q", srv.Addr())
	}
}

func TestServer_Run_ReturnsListenError(t *testing.T) {
	t.Setenv("HTTP_ADDR", "127.0.0.1:abc") // not a TCP port
	if err := phttp.NewServer(config.New()).Run(context.Background()); err == nil {
		t.Fatal("expected listen error")
	}
}
