// Package version provides build metadata for rtt.
package version

import (
	"fmt"
	"runtime"
	"strings"
)

// Name is the program name used in status lines, logs and version output.
const Name = "rtt"

// Set at build time, e.g.
// go build -ldflags "-X 'rtt/pkg/version.Version=1.0.0' -X 'rtt/pkg/version.Commit=abcdefg' -X 'rtt/pkg/version.BuildTime=2026-10-19T15:04:05Z'"
var (
	Version   = "1.0.0"
	Commit    = ""
	BuildTime = ""
)

// Info describes one build.
type Info struct {
	Name      string
	Version   string
	GitCommit string // empty for local builds
	BuildTime string // empty for local builds
	GoVersion string
	Platform  string // GOOS/GOARCH
}

// Get returns the running binary's build information.
func Get() Info {
	return Info{
		Name:      Name,
		Version:   Version,
		GitCommit: Commit,
		BuildTime: BuildTime,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}
}

// String renders the build on one line, e.g.
// rtt version 1.0.0 (commit: abcdefg) built at 2026-10-19T15:04:05Z with go1.25.4 on linux/amd64
// Commit and build time are left out when they were not stamped.
func (i Info) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s version %s", i.Name, i.Version)
	if i.GitCommit != "" {
		fmt.Fprintf(&b, " (commit: %s)", i.GitCommit)
	}
	if i.BuildTime != "" {
		fmt.Fprintf(&b, " built at %s", i.BuildTime)
	}
	fmt.Fprintf(&b, " with %s on %s", i.GoVersion, i.Platform)
	return b.String()
}
