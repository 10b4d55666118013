// Package api provides the HTTP API for the application
package api

import (
	"gitscout/internal/adapters/github"
	"gitscout/internal/platform/config"
	"gitscout/internal/platform/logger"
	phttp "gitscout/internal/platform/net/http"
	"gitscout/internal/platform/querycache"

	"gitscout/internal/modkit"
	"gitscout/internal/modkit/httpkit"
	"gitscout/internal/modkit/module"
	"gitscout/internal/modkit/swaggerkit"

	exploremod "gitscout/internal/services/api/explore/module"
	metamod "gitscout/internal/services/api/meta/module"
)

// Options are the API options
type Options struct {
	Config         config.Conf
	Cache          *querycache.Store
	GitHub         *github.Client
	Logger         *logger.Logger
	EnableSwagger  bool
	EnableProfiler bool
}

// Mount mounts the API service onto the given router
func Mount(r phttp.Router, opt Options) {
	// shared deps for modules
	deps := modkit.Deps{
		Cfg:    opt.Config,
		Cache:  opt.Cache,
		GitHub: opt.GitHub,
	}
	if opt.Logger != nil {
		deps.Log = *opt.Logger
	}

	mods := []module.Module{
		metamod.New(deps),
		exploremod.New(deps),
	}

	// versioned API with a common middleware stack
	origins := opt.Config.MayCSV("CORS_ORIGINS", nil)
	httpkit.MountAPIV1(r, httpkit.CommonStack(origins), func(api httpkit.Router) {
		// Swagger + profiler
		swaggerkit.Mount(r, opt.EnableSwagger)
		phttp.MountProfiler(r, "/debug", opt.EnableProfiler)

		for _, m := range mods {
			// register each module's ports under its own name (for cross-module lookups)
			module.Register(m.Name(), m.Ports())

			// mount module routes under its Prefix()
			m.MountRoutes(api)
		}
	})
}
