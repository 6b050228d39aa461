package manifest

import (
	"strings"

	"github.com/samber/lo"
)

// rangeOperators are the leading characters stripped by NormalizeVersion.
const rangeOperators = "^~*x"

// DependencyMap maps package names to version ranges.
type DependencyMap map[string]string

// MergeDependencies returns the union of maps. When a package appears in more
// than one map, the value from the later map wins.
func MergeDependencies(maps ...DependencyMap) DependencyMap {
	plain := make([]map[string]string, len(maps))
	for i, m := range maps {
		plain[i] = m
	}
	return lo.Assign(plain...)
}

// Exact returns a copy of d with every version range pinned by NormalizeVersion.
func (d DependencyMap) Exact() DependencyMap {
	return lo.MapValues(d, func(version string, _ string) string {
		return NormalizeVersion(version)
	})
}

// NormalizeVersion strips a single leading range operator (^, ~, * or x) from
// a version range, so "^1.2.3" becomes "1.2.3". Other strings are returned
// unchanged.
func NormalizeVersion(version string) string {
	if version != "" && strings.IndexByte(rangeOperators, version[0]) >= 0 {
		return version[1:]
	}
	return version
}
