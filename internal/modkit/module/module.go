// Package module holds the module contract and the port plumbing around it
package module

import (
	phttp "gitscout/internal/platform/net/http"
)

// Module mirrors modkit.Module. It lives here as a sibling so a module can
// export its own ports type without an import knot
type Module interface {
	MountRoutes(r phttp.Router)
	Ports() any
	Name() string
}
