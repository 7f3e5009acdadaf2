// Package buildinfo holds the version stamped into tabchart at link time:
//
//	go build -ldflags "-X github.com/matzehuels/tabchart/pkg/buildinfo.Version=v0.3.0 \
//	    -X github.com/matzehuels/tabchart/pkg/buildinfo.Commit=$(git rev-parse --short HEAD) \
//	    -X github.com/matzehuels/tabchart/pkg/buildinfo.Date=$(date -u +%Y-%m-%dT%H:%M:%SZ)"
package buildinfo

import "fmt"

// Link-time values. Unstamped builds report dev/none/unknown.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// IsRelease reports whether the binary was stamped with a version.
func IsRelease() bool {
	return Version != "dev"
}

// String returns the formatted build information.
func String() string {
	return fmt.Sprintf("tabchart %s (commit %s, built %s)", Version, Commit, Date)
}

// Template returns the version template string for cobra.
func Template() string {
	return fmt.Sprintf("{{.Name}} %s\ncommit: %s\nbuilt: %s\n", Version, Commit, Date)
}
