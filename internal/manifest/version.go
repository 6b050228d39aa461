package manifest

import (
	"errors"
	"fmt"

	"github.com/Masterminds/semver/v3"
)

// ErrInvalidVersion is returned when a manifest version is missing or is not a
// MAJOR.MINOR.PATCH triple.
var ErrInvalidVersion = errors.New("invalid manifest version")

// BumpPatch increments the patch component of a MAJOR.MINOR.PATCH version.
// There is no carry into minor, so "1.2.9" becomes "1.2.10". Any pre-release
// or build suffix is dropped.
func BumpPatch(version string) (string, error) {
	v, err := semver.StrictNewVersion(version)
	if err != nil {
		return "", fmt.Errorf("%w %q: %v", ErrInvalidVersion, version, err)
	}
	return semver.New(v.Major(), v.Minor(), v.Patch()+1, "", "").String(), nil
}

// BumpPatchVersion returns a copy of m with its version patch-bumped. A
// missing or malformed version fails with ErrInvalidVersion.
func BumpPatchVersion(m *Manifest) (*Manifest, error) {
	version, ok := m.Version()
	if !ok {
		return nil, fmt.Errorf("%w: %q is missing or not a string", ErrInvalidVersion, KeyVersion)
	}

	bumped, err := BumpPatch(version)
	if err != nil {
		return nil, err
	}

	out := m.Clone()
	if err := out.Set(KeyVersion, bumped); err != nil {
		return nil, err
	}
	return out, nil
}
