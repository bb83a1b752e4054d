// Package version exposes the build version of the code2md binary.
package version

// Version is overridden at build time via -ldflags "-X code2md/internal/version.Version=...".
var Version = "0.3.0"
