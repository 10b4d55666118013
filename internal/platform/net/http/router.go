package http

import "net/http"

// Handler is the function signature every route in the project mounts
type Handler = func(http.ResponseWriter, *http.Request)

// Router is the routing surface modules program against. It hides the
// concrete mux so handlers and middleware stay framework neutral
type Router interface {
	Get(path string, h Handler)
	Post(path string, h Handler)
	Put(path string, h Handler)
	Patch(path string, h Handler)
	Delete(path string, h Handler)
	Head(path string, h Handler)
	Options(path string, h Handler)

	Handle(path string, h http.Handler)
	Use(mw ...func(http.Handler) http.Handler)
	Group(fn func(Router))
	Route(pattern string, fn func(Router))

	// Mux returns the underlying handler for wiring into an http.Server
	Mux() http.Handler
}
