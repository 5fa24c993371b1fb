package shared

import (
	"strings"
)

const cacheKeySeparator = ":"

// BuildCacheKey joins a prefix and its non-empty parts into a Redis key.
func BuildCacheKey(prefix string, parts ...string) string {
	key := prefix

	for _, part := range parts {
		if part == "" {
			continue
		}

		key += cacheKeySeparator + part
	}

	return key
}

// FileBaseName strips directories a browser may have included in an upload name.
func FileBaseName(name string) string {
	if idx := strings.LastIndexAny(name, `/\`); idx >= 0 {
		return name[idx+1:]
	}

	return name
}
