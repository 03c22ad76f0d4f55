package search

import (
	"strings"

	"golang.org/x/mod/semver"
)

// STAC API 0.9.0 moved the search endpoint from /stac/search to /search.
const searchPathCutover = "v0.9.0"

// Endpoint returns the request path for the query's API version. Versions
// ordered before 0.9.0 resolve to /stac/search, 0.9.0 and later to /search.
// The comparison is semantic-version order, so 0.10.0 counts as later than
// 0.9.0.
func Endpoint(q Query) string {
	if semver.Compare(canonicalVersion(q.Version), searchPathCutover) < 0 {
		return "/stac/search"
	}
	return "/search"
}

func canonicalVersion(version string) string {
	version = strings.TrimSpace(version)
	if version == "" || strings.HasPrefix(version, "v") {
		return version
	}
	return "v" + version
}
