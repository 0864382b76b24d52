package utils

import (
	"regexp"
	"strings"
)

var hashtagRe = regexp.MustCompile(`#(\w+)`)

// ExtractHashtags returns every lowercased hashtag token in s, in order of
// appearance and without the leading '#'. Repeated tags are repeated in the
// result; callers that need a set deduplicate themselves.
func ExtractHashtags(s string) []string {
	matches := hashtagRe.FindAllStringSubmatch(s, -1)
	if len(matches) == 0 {
		return nil
	}
	tags := make([]string, 0, len(matches))
	for _, m := range matches {
		tags = append(tags, strings.ToLower(m[1]))
	}
	return tags
}
