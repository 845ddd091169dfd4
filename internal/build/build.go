// Package build holds version metadata set by the linker at release build
// time (-ldflags "-X go.trai.ch/samegraph/internal/build.Version=..."). The
// defaults below are what a `go build` run without those flags sees.
package build

var (
	// Version is the release tag this binary was built from.
	Version = "dev"

	// Commit is the VCS commit hash this binary was built from.
	Commit = "unknown"

	// Date is the build timestamp, RFC3339.
	Date = "unknown"
)
