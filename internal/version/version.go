// Package version reports the hellod build version.
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

// Set at build time, for example:
// go build -ldflags "-X hellod/internal/version.Version=1.0.0 -X hellod/internal/version.Commit=abc123"
var (
	Version   = "0.3.0"
	Commit    = "unknown"
	BuildDate = "unknown"
)

const shortCommitLen = 7

// readBuildInfo is swapped in tests.
var readBuildInfo = debug.ReadBuildInfo

// revision returns the ldflags commit, falling back to the VCS stamp the Go
// toolchain embeds when building from a checkout.
func revision() string {
	if Commit != "unknown" {
		return Commit
	}
	info, ok := readBuildInfo()
	if !ok {
		return Commit
	}
	for _, s := range info.Settings {
		if s.Key == "vcs.revision" && s.Value != "" {
			return s.Value
		}
	}
	return Commit
}

// Info returns the version with an abbreviated commit when one is known,
// e.g. "0.3.0 (abc1234)".
func Info() string {
	if rev := revision(); len(rev) > shortCommitLen {
		return fmt.Sprintf("%s (%s)", Version, rev[:shortCommitLen])
	}
	return Version
}

// Full returns the multi-line output of `hellod version`.
func Full() string {
	return fmt.Sprintf("hellod version %s\nCommit: %s\nBuilt: %s\nGo: %s %s/%s",
		Version, revision(), BuildDate, runtime.Version(), runtime.GOOS, runtime.GOARCH)
}
