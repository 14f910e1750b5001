// Package buildinfo carries version details stamped in at link time, e.g.
//
//	go build -ldflags "-X github.com/janakalyan/loanwatch/internal/buildinfo.Version=v0.3.0" ./cmd/loanwatch
package buildinfo

import "fmt"

var (
	// Version will be set via ldflags during build.
	Version = "dev"
	// Commit will be set via ldflags during build.
	Commit = "none"
	// Date will be set via ldflags during build.
	Date = "unknown"
)

// String formats the build details for --version.
func String() string {
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, Date)
}
