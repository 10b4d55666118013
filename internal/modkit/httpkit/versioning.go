package httpkit

import (
	"net/http"
	"strings"
)

// MountAPI scopes a router under /api/{version}, applies the shared
// middleware stack there and hands the scoped router to mount
//
// example:
//
//	httpkit.MountAPI(r, "v1", httpkit.CommonStack(nil), func(api httpkit.Router) {
//	  explore.MountRoutes(api)
//	})
func MountAPI(r Router, version string, mw []func(http.Handler) http.Handler, mount func(Router)) {
	prefix := "/api/" + strings.TrimPrefix(version, "/")
	r.Route(prefix, func(api Router) {
		if len(mw) > 0 {
			api.Use(mw...)
		}
		mount(api)
	})
}

// MountAPIV1 is MountAPI pinned to v1
func MountAPIV1(r Router, mw []func(http.Handler) http.Handler, mount func(Router)) {
	MountAPI(r, "v1", mw, mount)
}
