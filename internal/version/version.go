// Package version holds the build identity of the unitbl binary.
package version

// Set with -ldflags "-X" by the mage Build target.
var (
	Version    = "dev"
	CommitHash = "unknown"
	BuildDate  = "unknown"
)
