// Package version exposes build identification for the running service
package version

// BuildInfo is what /meta/version serves
type BuildInfo struct {
	Service string `json:"service"`
	Version string `json:"version"`
	Commit  string `json:"commit"`
	Date    string `json:"date"`
}

// version, commit and date are stamped at build time, e.g.
// -ldflags "-X 'gitscout/internal/core/version.version=v0.1.0'"
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// Info returns the stamped build identification
func Info() BuildInfo {
	return BuildInfo{
		Service: "gitscout-api",
		Version: version,
		Commit:  commit,
		Date:    date,
	}
}
