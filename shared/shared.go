package shared

import (
	"strings"
	"zonecast/shared/constant"
)

// BuildCacheKey joins non-empty parts with the cache key separator.
func BuildCacheKey(parts ...string) string {
	kept := make([]string, 0, len(parts))

	for _, part := range parts {
		if part == constant.Empty {
			continue
		}

		kept = append(kept, part)
	}

	return strings.Join(kept, constant.CacheKeySeparator)
}

// SplitList splits a comma separated list, trimming blanks and dropping empty items.
func SplitList(value string) []string {
	items := make([]string, 0)

	for _, item := range strings.Split(value, ",") {
		item = strings.TrimSpace(item)
		if item == constant.Empty {
			continue
		}

		items = append(items, item)
	}

	return items
}
