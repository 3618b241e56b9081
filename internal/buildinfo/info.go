// Package buildinfo holds version information injected at build time.
package buildinfo

// These are set via -ldflags at release build time.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)
