// Package protocol checks that a variable-store plugin speaks a protocol
// version this build of tokenise understands, and queries plugin metadata.
package protocol

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jmylchreest/tokenise/pkg/plugin"
)

// MinCompatibleVersion is the oldest plugin protocol version tokenise accepts.
const MinCompatibleVersion = "0.1.0"

// Version is a parsed MAJOR.MINOR.PATCH protocol version.
type Version struct {
	Major int
	Minor int
	Patch int
}

// Parse parses a version string in "MAJOR.MINOR.PATCH" format.
func Parse(version string) (Version, error) {
	parts := strings.Split(strings.TrimPrefix(strings.TrimSpace(version), "v"), ".")
	if len(parts) != 3 {
		return Version{}, fmt.Errorf("invalid version format: %s (expected MAJOR.MINOR.PATCH)", version)
	}

	var nums [3]int
	for i, part := range parts {
		n, err := strconv.Atoi(part)
		if err != nil || n < 0 {
			return Version{}, fmt.Errorf("invalid version component %q in %s", part, version)
		}
		nums[i] = n
	}

	return Version{Major: nums[0], Minor: nums[1], Patch: nums[2]}, nil
}

// String returns the string representation of the version.
func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

// Less reports whether v is older than o.
func (v Version) Less(o Version) bool {
	if v.Major != o.Major {
		return v.Major < o.Major
	}
	if v.Minor != o.Minor {
		return v.Minor < o.Minor
	}
	return v.Patch < o.Patch
}

// Current returns the protocol version of this build.
func Current() Version {
	v, err := Parse(plugin.ProtocolVersion)
	if err != nil {
		panic(fmt.Sprintf("invalid ProtocolVersion constant: %v", err))
	}
	return v
}

// CheckCompatible returns an error unless a plugin reporting the given
// protocol version can be used. The major version must match and the
// version must not be older than MinCompatibleVersion; newer minor and
// patch versions are accepted.
func CheckCompatible(pluginVersion string) error {
	v, err := Parse(pluginVersion)
	if err != nil {
		return fmt.Errorf("failed to parse plugin version: %w", err)
	}

	current := Current()
	if v.Major != current.Major {
		return fmt.Errorf("incompatible major version: plugin is %s, tokenise requires %d.x.x", v, current.Major)
	}

	minimum, err := Parse(MinCompatibleVersion)
	if err != nil {
		return fmt.Errorf("failed to parse minimum compatible version: %w", err)
	}
	if v.Less(minimum) {
		return fmt.Errorf("plugin version %s is too old, minimum required is %s", v, minimum)
	}

	return nil
}
