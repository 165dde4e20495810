package installer

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/hashicorp/go-version"
)

// Version is the three-level Java version used for ordering installers.
type Version struct {
	Major int `json:"major"`
	Minor int `json:"minor"`
	Patch int `json:"patch"`
}

// ParseVersion parses "major.minor.patch". Missing trailing components are zero.
func ParseVersion(s string) (Version, error) {
	parts := strings.Split(strings.TrimSpace(s), ".")
	if len(parts) == 0 || len(parts) > 3 || parts[0] == "" {
		return Version{}, fmt.Errorf("invalid version %q, expected major[.minor[.patch]]", s)
	}

	nums := make([]int, 3)

	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return Version{}, fmt.Errorf("invalid version %q: %w", s, err)
		}

		nums[i] = n
	}

	v := Version{Major: nums[0], Minor: nums[1], Patch: nums[2]}
	if err := v.Validate(); err != nil {
		return Version{}, err
	}

	return v, nil
}

// Validate rejects negative components.
func (v Version) Validate() error {
	if v.Major < 0 || v.Minor < 0 || v.Patch < 0 {
		return fmt.Errorf("invalid installer version %s: components must be non-negative", v)
	}

	return nil
}

// Compare orders versions by major, then minor, then patch.
// It returns -1, 0 or 1.
func (v Version) Compare(other Version) int {
	return v.semver().Compare(other.semver())
}

func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

// MarshalYAML renders the version as a scalar so config files stay readable.
func (v Version) MarshalYAML() (any, error) {
	return v.String(), nil
}

// UnmarshalYAML accepts "major.minor.patch" scalars.
func (v *Version) UnmarshalYAML(unmarshal func(any) error) error {
	var s string
	if err := unmarshal(&s); err != nil {
		return err
	}

	parsed, err := ParseVersion(s)
	if err != nil {
		return err
	}

	*v = parsed

	return nil
}

func (v Version) semver() *version.Version {
	// Segments are validated non-negative integers, so this cannot fail.
	return version.Must(version.NewVersion(v.String()))
}
