package template

import (
	"regexp"
	"sort"
)

var placeholderPattern = regexp.MustCompile(`\{\{\s*([A-Za-z_][A-Za-z0-9_]*)\s*\}\}`)

// Segment is either constant text or a named placeholder; exactly one of the
// two fields is set.
type Segment struct {
	Text        string
	Placeholder string
}

// Parse splits src into an ordered list of constant text and placeholders.
// Only bare `{{ name }}` references are recognised; anything else is text.
func Parse(src string) []Segment {
	var out []Segment
	last := 0
	for _, loc := range placeholderPattern.FindAllStringSubmatchIndex(src, -1) {
		if loc[0] > last {
			out = append(out, Segment{Text: src[last:loc[0]]})
		}
		out = append(out, Segment{Placeholder: src[loc[2]:loc[3]]})
		last = loc[1]
	}
	if last < len(src) {
		out = append(out, Segment{Text: src[last:]})
	}
	return out
}

// Placeholders returns the distinct placeholder names of src, sorted.
func Placeholders(src string) []string {
	seen := make(map[string]struct{})
	for _, seg := range Parse(src) {
		if seg.Placeholder != "" {
			seen[seg.Placeholder] = struct{}{}
		}
	}
	out := make([]string, 0, len(seen))
	for name := range seen {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
