// Package modkit provides module wiring and core deps
package modkit

import (
	"gitscout/internal/adapters/github"
	"gitscout/internal/platform/config"
	"gitscout/internal/platform/logger"
	"gitscout/internal/platform/querycache"
)

// Deps carries the shared dependencies handed to every module. Pure wiring,
// fields may be zero in tests, modules nil check what they treat as optional
type Deps struct {
	Log    logger.Logger
	Cfg    config.Conf
	Cache  *querycache.Store
	GitHub *github.Client
}
