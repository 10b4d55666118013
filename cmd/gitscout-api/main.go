// @title         Gitscout API
// @version       0.1.0
// @description   Read only endpoints for exploring GitHub accounts

package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"gitscout/internal/adapters/github"
	"gitscout/internal/platform/config"
	"gitscout/internal/platform/logger"
	phttp "gitscout/internal/platform/net/http"
	"gitscout/internal/platform/querycache"

	"gitscout/internal/services/api"
)

func main() {
	// service-scoped config for HTTP etc (GITSCOUT_API_*)
	root := config.New()
	apiCfg := root.Prefix("GITSCOUT_API_")
	ghCfg := root.Prefix("GITSCOUT_GITHUB_")

	// bring up logging early
	l := logger.Get()

	gh := github.New(github.Options{
		BaseURL:   ghCfg.MayString("BASE_URL", ""),
		UserAgent: ghCfg.MayString("USER_AGENT", ""),
		Timeout:   ghCfg.MayDuration("TIMEOUT", 0),
	})

	cache := querycache.New(querycache.Options{
		Capacity: apiCfg.MayInt("CACHE_CAPACITY", 512),
		Sweep:    apiCfg.MayDuration("CACHE_SWEEP", time.Minute),
	})
	defer cache.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// startup reachability check; advisory unless explicitly required
	if err := gh.Ping(ctx); err != nil {
		if apiCfg.MayBool("REQUIRE_GITHUB", false) {
			l.Panic().Err(err).Msg("github unreachable at startup")
		}
		l.Warn().Err(err).Msg("github unreachable at startup, continuing")
	}

	// http server (reads GITSCOUT_API_HTTP_ADDR)
	srv := phttp.NewServer(apiCfg)

	// mount our API
	api.Mount(
		srv.Router(),
		api.Options{
			Config:         apiCfg,
			Cache:          cache,
			GitHub:         gh,
			Logger:         l,
			EnableSwagger:  apiCfg.MayBool("SWAGGER", true),
			EnableProfiler: apiCfg.MayBool("PROFILER", true),
		},
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return srv.Run(gctx) })
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		l.Panic().Err(err).Msg("http server stopped")
	}
}
