package httpkit

import "net/http"

// MountUnder routes a module's handlers beneath prefix, applying the module's
// middleware chain to that subtree only
func MountUnder(r Router, prefix string, mw []func(http.Handler) http.Handler, mount func(Router)) {
	r.Route(prefix, func(sub Router) {
		if len(mw) > 0 {
			sub.Use(mw...)
		}
		mount(sub)
	})
}
