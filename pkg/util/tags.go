package util

import "strings"

// SplitTags turns a comma separated tag string into a trimmed list.
// Empty entries are dropped.
func SplitTags(csv string) []string {
	tags := []string{}
	for _, t := range strings.Split(csv, ",") {
		t = strings.TrimSpace(t)
		if t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}

func JoinTags(tags []string) string {
	return strings.Join(tags, ",")
}
