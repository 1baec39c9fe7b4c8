package snippet

import (
	"fmt"
	"strings"
)

// BuildTags parses loose tag input into a normalized tag list. It accepts
// a comma-delimited string, a []string, or a []any (a decoded JSON array);
// anything else yields an empty list. Elements are trimmed and empties are
// dropped, order preserved.
func BuildTags(source any) []string {
	var raw []string
	switch v := source.(type) {
	case string:
		raw = strings.Split(v, ",")
	case []string:
		raw = v
	case []any:
		raw = make([]string, 0, len(v))
		for _, e := range v {
			if s, ok := e.(string); ok {
				raw = append(raw, s)
			} else {
				raw = append(raw, fmt.Sprint(e))
			}
		}
	}

	tags := make([]string, 0, len(raw))
	for _, tag := range raw {
		tag = strings.TrimSpace(tag)
		if tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}

// JoinTags renders a tag list as a single display string.
func JoinTags(tags []string) string {
	return strings.Join(tags, ", ")
}
