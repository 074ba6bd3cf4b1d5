// Package version exposes build version information.
//
// Version, git commit, and build time are set at compile time via -ldflags:
//
//	go build -ldflags "-X github.com/kbukum/patternkit/version.Version=1.0.0"
//
// When ldflags are absent, the commit and build time fall back to the VCS
// metadata stamped into the binary by the Go toolchain.
package version
