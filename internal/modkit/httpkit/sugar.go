package httpkit

import (
	"net/http"

	phttp "gitscout/internal/platform/net/http"
)

// Get mounts a body-less handler under GET and wraps it in the envelope
func Get(r Router, path string, h func(*http.Request) (any, error)) {
	r.Get(path, phttp.CallHandler(h))
}

// GetQuery mounts a GET handler whose input binds from URL query parameters
// and passes validation before the handler runs
func GetQuery[T any](r Router, path string, h func(*http.Request, T) (any, error)) {
	r.Get(path, phttp.QueryHandler(h))
}
