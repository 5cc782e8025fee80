package updater

import (
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// VersionPolicy decides when a published version counts as an update
type VersionPolicy string

const (
	// PolicyDiffers reports an update whenever the versions differ as strings,
	// so an older release is offered too.
	PolicyDiffers VersionPolicy = "differs"

	// PolicyNewer reports an update only for a higher semantic version. Non
	// semantic versions (e.g. "dev") fall back to PolicyDiffers.
	PolicyNewer VersionPolicy = "newer"

	DefaultPolicy = PolicyDiffers
)

// Policies returns the selectable policies
func Policies() []VersionPolicy {
	return []VersionPolicy{PolicyDiffers, PolicyNewer}
}

// ParsePolicy converts a stored value to a policy
func ParsePolicy(s string) (VersionPolicy, error) {
	switch VersionPolicy(strings.ToLower(strings.TrimSpace(s))) {
	case PolicyDiffers:
		return PolicyDiffers, nil
	case PolicyNewer:
		return PolicyNewer, nil
	case "":
		return DefaultPolicy, nil
	default:
		return "", fmt.Errorf("unknown version policy: %q", s)
	}
}

// NormalizeVersion trims whitespace and a leading "v" from a tag
func NormalizeVersion(v string) string {
	v = strings.TrimSpace(v)
	if len(v) > 1 && (v[0] == 'v' || v[0] == 'V') {
		return v[1:]
	}
	return v
}

// IsUpdate reports whether latest should replace current under the policy
func (p VersionPolicy) IsUpdate(current, latest string) bool {
	current = NormalizeVersion(current)
	latest = NormalizeVersion(latest)
	if latest == "" {
		return false
	}

	if p == PolicyNewer {
		cur, errCur := semver.NewVersion(current)
		next, errNext := semver.NewVersion(latest)
		if errCur == nil && errNext == nil {
			return next.GreaterThan(cur)
		}
	}

	return latest != current
}
