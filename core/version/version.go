// Package version holds build-time version information.
package version

import "fmt"

// Set at build time via -ldflags.
var (
	Version = "dev"
	Commit  = "unknown"
)

// String returns the human-readable version line printed at boot and by
// the version subcommand.
func String() string {
	return fmt.Sprintf("tinybox %s (%s)", Version, Commit)
}
