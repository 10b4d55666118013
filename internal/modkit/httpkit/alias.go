// Package httpkit re-exports the platform http surface for modules, so module
// code never imports internal/platform/net/http directly
package httpkit

import (
	"net/http"

	phttp "gitscout/internal/platform/net/http"
)

type (
	// Envelope is the transport envelope type
	Envelope = phttp.Envelope

	// Page is the pagination metadata type
	Page = phttp.Page

	// Response is the HTTP response type
	Response = phttp.Response

	// Handler is the platform handler type
	Handler = phttp.Handler

	// Router is the platform router seam
	Router = phttp.Router
)

// OK wraps data in a 200 response
func OK(data any) Response { return phttp.OK(data) }

// NoContent is a bodyless 204
func NoContent() Response { return phttp.NoContent() }

// Data is an alias for OK
func Data(v any) Response { return phttp.Data(v) }

// Error maps an error to its status and envelope
func Error(err error) Response { return phttp.Error(err) }

// List wraps items together with pagination fields
func List(items any, total, page, size int, cursor string) Response {
	return phttp.List(items, total, page, size, cursor)
}

// Call adapts a handler that takes no request input
func Call(fn func(*http.Request) (any, error)) Handler {
	return phttp.CallHandler(fn)
}

// Handle adapts a Response-returning function directly
func Handle(fn func(*http.Request) Response) Handler {
	return phttp.Handle(fn)
}
