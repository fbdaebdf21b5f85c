// Package tags pulls delimited fields out of free-form model replies.
//
// Replies are expected to carry fields as <name>...</name> blocks, but
// models drift: they wrap output in code fences, escape angle brackets as
// HTML entities, rename tags or drop them for a "Heading:" line. Sanitize
// and Extract absorb that drift so callers only ever see field text.
package tags

import (
	"regexp"

	"golang.org/x/net/html"
	"golang.org/x/text/unicode/norm"
)

// fencePattern matches a fenced block. An info string ("```xml") is only
// recognized when it ends the opening line.
var fencePattern = regexp.MustCompile("(?s)```(?:[A-Za-z0-9_+.-]*[ \\t]*\\n)?(.*?)```")

// Sanitize decodes HTML entities, removes code-fence delimiters (keeping
// the fenced text) and normalizes to NFC. It is idempotent.
func Sanitize(s string) string {
	if s == "" {
		return ""
	}
	// Each pass strictly shortens the text when it changes anything,
	// so the loop terminates.
	for {
		next := fencePattern.ReplaceAllString(html.UnescapeString(s), "$1")
		if next == s {
			break
		}
		s = next
	}
	return norm.NFC.String(s)
}
