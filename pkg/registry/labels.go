package registry

import (
	"html"
	"strings"
	"sync"
	"unicode"

	"github.com/microcosm-cc/bluemonday"
)

var (
	displayPolicyOnce sync.Once
	displayPolicy     *bluemonday.Policy
)

// sanitizeDisplay strips any markup from catalogue display strings. The
// strict policy escapes entities, so the result is unescaped again for
// terminal output.
func sanitizeDisplay(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	displayPolicyOnce.Do(func() {
		displayPolicy = bluemonday.StrictPolicy()
	})
	return strings.TrimSpace(html.UnescapeString(displayPolicy.Sanitize(trimmed)))
}

// labelFromName turns a field identifier into a display label:
// "port_number_2g3g" becomes "Port Number 2G3G". A letter is upper-cased when
// it follows a non-letter and lower-cased otherwise.
func labelFromName(name string) string {
	var b strings.Builder
	prevLetter := false
	for _, r := range strings.ReplaceAll(name, "_", " ") {
		if unicode.IsLetter(r) {
			if prevLetter {
				b.WriteRune(unicode.ToLower(r))
			} else {
				b.WriteRune(unicode.ToUpper(r))
			}
			prevLetter = true
			continue
		}
		b.WriteRune(r)
		prevLetter = false
	}
	return b.String()
}
