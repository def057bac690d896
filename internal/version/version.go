// Package version provides build version information for ctxcat.
package version

import (
	"fmt"
	"runtime"
)

// Populated at build time with -ldflags, e.g.
// go build -ldflags "-X 'ctxcat/internal/version.Version=1.2.3'"
var (
	Version   = "dev"
	Commit    = "none"
	BuildTime = "unknown"
)

// Info contains the assembled version information.
type Info struct {
	Version   string
	GitCommit string
	BuildTime string
	GoVersion string
	Platform  string
}

// Get returns the current version information.
func Get() Info {
	return Info{
		Version:   Version,
		GitCommit: Commit,
		BuildTime: BuildTime,
		GoVersion: runtime.Version(),
		Platform:  fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH),
	}
}

// String renders the version information on a single line.
func (i Info) String() string {
	return fmt.Sprintf(
		"ctxcat version %s (commit: %s) built at %s with %s on %s",
		i.Version,
		i.GitCommit,
		i.BuildTime,
		i.GoVersion,
		i.Platform,
	)
}
