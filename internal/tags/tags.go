// Package tags edits the ordered tag list attached to a help request.
//
// Every function returns a fresh slice; callers may keep using the input.
// Tag identity is exact string equality: "Go" and "go" are different tags.
package tags

import (
	"slices"
	"strings"
)

// Add returns tags with tag appended at the end. An empty tag, or one that
// is already present, leaves the list unchanged (a copy is still returned).
func Add(tags []string, tag string) []string {
	out := clone(tags)
	if tag == "" || slices.Contains(out, tag) {
		return out
	}
	return append(out, tag)
}

// Remove returns tags without any element equal to tag.
// The order of the remaining tags is preserved.
func Remove(tags []string, tag string) []string {
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		if t != tag {
			out = append(out, t)
		}
	}
	return out
}

// FromInput builds a tag list from raw form values: each value is trimmed
// and added in order, so blanks and duplicates are dropped.
func FromInput(raw []string) []string {
	out := []string{}
	for _, r := range raw {
		out = Add(out, strings.TrimSpace(r))
	}
	return out
}

// Parse splits a comma-separated tag field and passes the parts through
// FromInput.
func Parse(field string) []string {
	return FromInput(strings.Split(field, ","))
}

func clone(tags []string) []string {
	out := make([]string, len(tags), len(tags)+1)
	copy(out, tags)
	return out
}
