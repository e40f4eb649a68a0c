// Package version exposes build and version metadata for the unifying
// package. The version is its own, unrelated to the versions of the wrapped
// libraries.
package version

import (
	"fmt"
	"runtime"
)

var (
	Version   = "1.0.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
	GoVersion = runtime.Version()
)

func GetVersion() string {
	return Version
}

func GetFullVersionInfo() string {
	return fmt.Sprintf("myfinlab %s (commit: %s, built: %s, go: %s)",
		Version, GitCommit, BuildDate, GoVersion)
}
