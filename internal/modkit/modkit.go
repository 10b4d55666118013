package modkit

import (
	phttp "gitscout/internal/platform/net/http"
)

// Module is what the API composition root asks of every feature module.
// Deliberately tiny so modules only couple through ports
type Module interface {
	// MountRoutes attaches the module's HTTP routes to the router seam
	MountRoutes(r phttp.Router)
	// Ports returns the module's exported capability bundle
	Ports() any
	// Name identifies the module in logs and the registry
	Name() string
}

// Builder is the conventional constructor shape, New(deps, opts...) Module
type Builder func(Deps, ...Option) Module
