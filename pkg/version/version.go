// Package version provides OpenADR protocol version parsing and comparison.
package version

import (
	"fmt"
	"strconv"
	"strings"
)

// Current is the OpenADR specification version implemented by this library.
const Current = "3.0.1"

// SpecVersion is a parsed "major.minor.patch" protocol version.
type SpecVersion struct {
	Major uint16
	Minor uint16
	Patch uint16
}

// Parse parses a "major.minor" or "major.minor.patch" version string.
func Parse(s string) (SpecVersion, error) {
	parts := strings.Split(s, ".")
	if len(parts) != 2 && len(parts) != 3 {
		return SpecVersion{}, fmt.Errorf("invalid version %q: expected major.minor[.patch]", s)
	}

	nums := make([]uint16, 3)
	for i, p := range parts {
		n, err := strconv.ParseUint(p, 10, 16)
		if err != nil || p == "" {
			return SpecVersion{}, fmt.Errorf("invalid version %q: bad component %q", s, p)
		}
		nums[i] = uint16(n)
	}

	return SpecVersion{Major: nums[0], Minor: nums[1], Patch: nums[2]}, nil
}

// String returns the version as "major.minor.patch".
func (v SpecVersion) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

// Profile returns the profile name VTNs advertise: "major.minor".
func (v SpecVersion) Profile() string {
	return fmt.Sprintf("%d.%d", v.Major, v.Minor)
}

// Compatible returns true if the other version has the same major and
// minor version; OpenADR patch releases do not change the wire contract.
func (v SpecVersion) Compatible(other SpecVersion) bool {
	return v.Major == other.Major && v.Minor == other.Minor
}
