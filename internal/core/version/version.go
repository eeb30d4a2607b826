// Package version reports build metadata stamped in with -ldflags
package version

import "runtime/debug"

// BuildInfo is the payload of /meta/version
type BuildInfo struct {
	Service   string `json:"service"`
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	Date      string `json:"date"`
	GoVersion string `json:"go_version,omitempty"`
}

// set with -ldflags "-X github-activity/internal/core/version.version=v0.1.0 -X ...commit=abcd -X ...date=2026-10-01"
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// Info returns the build metadata for service
func Info(service string) BuildInfo {
	bi := BuildInfo{Service: service, Version: version, Commit: commit, Date: date}
	if b, ok := debug.ReadBuildInfo(); ok {
		bi.GoVersion = b.GoVersion
	}
	return bi
}
