// Package version reports build information stamped at link time
package version

import (
	"runtime"
	"runtime/debug"
)

// BuildInfo holds version information about a binary
type BuildInfo struct {
	Service string `json:"service" example:"listingseo-api"`
	Version string `json:"version" example:"v0.3.0"`
	Commit  string `json:"commit" example:"4f2c9e1"`
	Date    string `json:"date" example:"2025-12-01"`
	Go      string `json:"go" example:"go1.25.0"`
}

// Set via -ldflags "-X 'listingseo/internal/core/version.version=v0.3.0'
// -X 'listingseo/internal/core/version.commit=4f2c9e1' -X 'listingseo/internal/core/version.date=2025-12-01'"
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// Service is the name the API reports
const Service = "listingseo-api"

// Info returns the API's build information
func Info() BuildInfo { return For(Service) }

// For returns the build information under a service name. Without ldflags the
// commit falls back to the VCS stamp of the module build, when present
func For(service string) BuildInfo {
	out := BuildInfo{
		Service: service,
		Version: version,
		Commit:  commit,
		Date:    date,
		Go:      runtime.Version(),
	}
	if out.Commit == "none" {
		out.Commit = vcsRevision(out.Commit)
	}
	return out
}

var readBuildInfo = debug.ReadBuildInfo

func vcsRevision(def string) string {
	bi, ok := readBuildInfo()
	if !ok {
		return def
	}
	for _, s := range bi.Settings {
		if s.Key == "vcs.revision" && s.Value != "" {
			if len(s.Value) > 12 {
				return s.Value[:12]
			}
			return s.Value
		}
	}
	return def
}
