// Package version exposes the build version set through -ldflags.
package version

import "github.com/Masterminds/semver/v3"

// Set at build time with
// -ldflags "-X github.com/rshade/bisko/pkg/version.version=v1.2.3".
var (
	version   = "0.0.0-dev" //nolint:gochecknoglobals // Overridden by ldflags.
	gitCommit = "unknown"   //nolint:gochecknoglobals // Overridden by ldflags.
	buildDate = "unknown"   //nolint:gochecknoglobals // Overridden by ldflags.
)

// GetVersion returns the build version without a leading "v".
func GetVersion() string {
	if v, err := semver.NewVersion(version); err == nil {
		return v.String()
	}
	return version
}

// GetGitCommit returns the commit the binary was built from.
func GetGitCommit() string { return gitCommit }

// GetBuildDate returns the build timestamp.
func GetBuildDate() string { return buildDate }

// IsRelease reports whether the build carries a release version, that is
// one without a prerelease suffix.
func IsRelease() bool {
	v, err := semver.NewVersion(version)
	return err == nil && v.Prerelease() == ""
}
