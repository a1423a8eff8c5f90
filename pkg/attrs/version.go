package attrs

import (
	"fmt"
	"strings"

	"golang.org/x/mod/semver"
)

// SupportedMajor is the bundle format major version this package reads.
const SupportedMajor = "v1"

// checkVersion accepts an empty version or any semver with major v1.
// The leading "v" is optional.
func checkVersion(version string) error {
	version = strings.TrimSpace(version)
	if version == "" {
		return nil
	}
	if !strings.HasPrefix(version, "v") {
		version = "v" + version
	}
	if !semver.IsValid(version) {
		return fmt.Errorf("invalid version %q", version)
	}
	if major := semver.Major(version); major != SupportedMajor {
		return fmt.Errorf("unsupported version %s (want %s.x)", version, SupportedMajor)
	}
	return nil
}
