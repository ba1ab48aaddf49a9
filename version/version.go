// Copyright Vespa.ai. Licensed under the terms of the Apache 2.0 license. See LICENSE in the project root.

package version

import (
	"fmt"
	"strconv"
	"strings"
)

// Version represents a version number of the form major.minor.patch, optionally followed by a fourth build
// component. Game versions carried in map exchange strings use all four components.
type Version struct {
	Major int
	Minor int
	Patch int
	Build int
}

func (v Version) String() string {
	if v.Build != 0 {
		return fmt.Sprintf("%d.%d.%d.%d", v.Major, v.Minor, v.Patch, v.Build)
	}
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

// IsZero returns true if all components of v are zero.
func (v Version) IsZero() bool { return v == Version{} }

// Compare returns a positive integer if v1 is greater than v2, a negative integer if v1 is less than v2 and zero if they
// are equal.
func (v1 Version) Compare(v2 Version) int {
	result := v1.Major - v2.Major
	if result != 0 {
		return result
	}
	result = v1.Minor - v2.Minor
	if result != 0 {
		return result
	}
	result = v1.Patch - v2.Patch
	if result != 0 {
		return result
	}
	return v1.Build - v2.Build
}

// Less returns true if v1 is lower than v2.
func (v1 Version) Less(v2 Version) bool { return v1.Compare(v2) < 0 }

// Parse parses a version number with three or four components from string s. A pre-release label, such as the
// "-devel" of development builds, is ignored.
func Parse(s string) (Version, error) {
	if len(s) > 0 && s[0] == 'v' {
		s = s[1:] // Trim v prefix
	}
	if i := strings.IndexByte(s, '-'); i > 0 {
		s = s[:i]
	}
	parts := strings.Split(s, ".")
	if len(parts) != 3 && len(parts) != 4 {
		return Version{}, fmt.Errorf("invalid version number: %s", s)
	}
	names := []string{"major", "minor", "patch", "build"}
	values := make([]int, 4)
	for i, part := range parts {
		n, err := strconv.Atoi(part)
		if err != nil || n < 0 {
			return Version{}, fmt.Errorf("invalid %s version: %s", names[i], part)
		}
		values[i] = n
	}
	return Version{Major: values[0], Minor: values[1], Patch: values[2], Build: values[3]}, nil
}

// MustParse is like Parse, but panics if s is not a valid version.
func MustParse(s string) Version {
	v, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return v
}
