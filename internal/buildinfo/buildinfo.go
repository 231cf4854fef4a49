// Package buildinfo carries version metadata stamped at link time:
//
//	go build -ldflags "-X sineplot/internal/buildinfo.Version=v0.3.0 -X sineplot/internal/buildinfo.Commit=$(git rev-parse --short HEAD)"
package buildinfo

import "fmt"

var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)

// Short returns the version if stamped, else the commit, else "dev".
// It is used in the window title and the HUD.
func Short() string {
	if Version != "" && Version != "dev" {
		return Version
	}
	if Commit != "" && Commit != "unknown" {
		return Commit
	}
	return "dev"
}

// String is the full form logged at startup.
func String() string {
	return fmt.Sprintf("%s (commit %s, built %s)", Version, Commit, Date)
}
