// Package version exposes the build version of the kvcache binary.
package version

// version is the build version, overridden at release time via
// -ldflags "-X github.com/rshade/kvcache/pkg/version.version=v1.2.3".
//
//nolint:gochecknoglobals // Set by the linker
var version = "dev"

// GetVersion returns the build version string.
func GetVersion() string {
	return version
}
