// Package version holds build metadata injected with -ldflags.
package version

import "fmt"

var (
	Current   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

// String returns a one-line build description.
func String() string {
	return fmt.Sprintf("%s (commit %s, built %s)", Current, Commit, BuildTime)
}
