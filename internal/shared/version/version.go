// Package version reports the agent build and compares it with the version the
// backend advertises.
package version

import (
	"strings"

	"golang.org/x/mod/semver"
)

// Set at build time with -ldflags "-X .../version.Version=1.4.0".
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildDate = "unknown"
)

// Normalize adds the "v" prefix semver expects.
func Normalize(v string) string {
	v = strings.TrimSpace(v)
	if v == "" || strings.HasPrefix(v, "v") {
		return v
	}
	return "v" + v
}

// HasNewerVersion reports whether latest is newer than current. Development
// builds are always considered outdated; an unparsable latest never is.
func HasNewerVersion(current, latest string) bool {
	if latest == "" {
		return false
	}
	if current == "" || current == "dev" {
		return true
	}
	c, l := Normalize(current), Normalize(latest)
	if !semver.IsValid(l) {
		return false
	}
	if !semver.IsValid(c) {
		return true
	}
	return semver.Compare(c, l) < 0
}
