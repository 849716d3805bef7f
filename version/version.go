// Package version holds the build version of the serpent binary.
package version

// Version is the current release. Overridden at build time via
// -ldflags "-X github.com/serpentlabs/serpent/version.Version=...".
var Version = "0.1.0"
