// Package rversion handles R package version strings. R versions are
// sequences of integer components separated by "." or "-" (both separators
// are valid and may be mixed), with no prerelease or build metadata.
package rversion

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// DevComponentFloor is the conventional lower bound for the 4th component of
// an in-development version (e.g. 1.2.3.9000). Versions published to a
// registry carry three components; a 4th component at or above this floor
// marks a snapshot between releases.
const DevComponentFloor = 9000

// ReleaseComponentCount is the component count expected of a released version.
const ReleaseComponentCount = 3

// Components splits an R version string into its integer components.
// Returns an error for an empty string or any non-numeric component.
func Components(version string) ([]int, error) {
	trimmed := strings.TrimSpace(version)
	if trimmed == "" {
		return nil, errors.New("empty version")
	}

	fields := strings.FieldsFunc(trimmed, func(r rune) bool {
		return r == '.' || r == '-'
	})
	// FieldsFunc drops empty fields, so "1..2" would silently collapse.
	// Detect that by re-checking the raw split.
	if len(fields) != len(strings.Split(strings.ReplaceAll(trimmed, "-", "."), ".")) {
		return nil, fmt.Errorf("invalid version %q: empty component", version)
	}

	components := make([]int, len(fields))
	for i, field := range fields {
		n, err := strconv.Atoi(field)
		if err != nil {
			return nil, fmt.Errorf("invalid version %q: component %q is not numeric", version, field)
		}
		components[i] = n
	}
	return components, nil
}

// IsRelease reports whether the version has the canonical three-component
// release form (major.minor.patch).
func IsRelease(version string) (bool, error) {
	components, err := Components(version)
	if err != nil {
		return false, err
	}
	return len(components) == ReleaseComponentCount, nil
}

// IsDev reports whether the components describe an in-development version:
// exactly four components with the 4th at or above DevComponentFloor.
func IsDev(components []int) bool {
	return len(components) == 4 && components[3] >= DevComponentFloor
}
