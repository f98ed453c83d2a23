// Package version carries build information stamped with -ldflags and
// semver helpers for comparing it.
package version

import (
	"fmt"
	"strings"

	"golang.org/x/mod/semver"
)

// Set at build time:
//
//	go build -ldflags "-X github.com/jaras-platform/jaras/internal/shared/version.Version=v1.2.0"
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildDate = "unknown"
)

// Normalize ensures version string has "v" prefix for semver compatibility.
// Examples: "1.2.3" -> "v1.2.3", "v1.2.3" -> "v1.2.3"
func Normalize(version string) string {
	version = strings.TrimSpace(version)
	if version == "" {
		return ""
	}
	if !strings.HasPrefix(version, "v") {
		return "v" + version
	}
	return version
}

// IsRelease reports whether v is a valid semver release (not "dev").
func IsRelease(v string) bool {
	return semver.IsValid(Normalize(v)) && semver.Prerelease(Normalize(v)) == ""
}

// String renders the build info for `jaras version`.
func String() string {
	return fmt.Sprintf("jaras %s (commit %s, built %s)", Version, Commit, BuildDate)
}
