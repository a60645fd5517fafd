// Package version carries the build version, overridable with
// -ldflags "-X github.com/katalvlaran/seqalign/internal/version.Version=...".
package version

// Version is the released version string.
var Version = "0.3.0"
