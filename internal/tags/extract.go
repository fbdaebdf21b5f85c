package tags

import (
	"regexp"
	"strings"
	"sync"
)

// patternCache maps an alias to its compiled delimiter pattern.
var patternCache sync.Map

// headingPatterns and stopPatterns are built once for the soft-headed fields.
var (
	headingPatterns = map[string]*regexp.Regexp{}
	stopPatterns    = map[string]*regexp.Regexp{}
)

func init() {
	for field := range softHeaded {
		headingPatterns[field] = regexp.MustCompile(
			`(?i)(?:^|[^\p{L}\p{N}_])(?:` + cueAlternation(headingCues[field]) + `)[ \t*_]*:[ \t*_]*`)

		var others []string
		for other, cues := range headingCues {
			if other != field {
				others = append(others, cues...)
			}
		}
		stopPatterns[field] = regexp.MustCompile(
			`(?i)\n\s*<|\n[ \t#>*_-]*(?:` + cueAlternation(others) + `)[ \t*_]*:`)
	}
}

func cueAlternation(cues []string) string {
	parts := make([]string, len(cues))
	for i, c := range cues {
		parts[i] = strings.ReplaceAll(regexp.QuoteMeta(c), " ", `\s+`)
	}
	return strings.Join(parts, "|")
}

// delimiterPattern returns the compiled <alias>...</alias> pattern. Word
// separators inside the alias ("_", "-", space) are interchangeable.
func delimiterPattern(alias string) *regexp.Regexp {
	if re, ok := patternCache.Load(alias); ok {
		return re.(*regexp.Regexp)
	}

	words := strings.FieldsFunc(alias, func(r rune) bool {
		return r == '_' || r == '-' || r == ' '
	})
	for i, w := range words {
		words[i] = regexp.QuoteMeta(w)
	}
	name := strings.Join(words, `[\s_-]?`)

	re := regexp.MustCompile(`(?is)<\s*` + name + `\s*>(.*?)<\s*/\s*` + name + `\s*>`)
	actual, _ := patternCache.LoadOrStore(alias, re)
	return actual.(*regexp.Regexp)
}

// Extract returns the trimmed content of field in text.
//
// Delimited blocks are tried first, for every alias of the field in order;
// the first non-empty match wins. Soft-headed fields (outline, sanity check)
// then fall back to a "Heading: ..." line, captured up to the next tag
// opening or the next heading of another field. A delimited block that is
// present but empty yields ("", true); callers needing content check v.
func Extract(text, field string) (string, bool) {
	clean := Sanitize(text)
	if clean == "" {
		return "", false
	}

	matchedEmpty := false
	for _, alias := range AliasesFor(field) {
		for _, m := range delimiterPattern(alias).FindAllStringSubmatch(clean, -1) {
			if v := strings.TrimSpace(m[1]); v != "" {
				return v, true
			}
			matchedEmpty = true
		}
	}

	if softHeaded[field] {
		if v, ok := extractHeading(clean, field); ok {
			return v, true
		}
	}
	return "", matchedEmpty
}

func extractHeading(clean, field string) (string, bool) {
	loc := headingPatterns[field].FindStringIndex(clean)
	if loc == nil {
		return "", false
	}
	rest := clean[loc[1]:]
	if stop := stopPatterns[field].FindStringIndex(rest); stop != nil {
		rest = rest[:stop[0]]
	}
	v := strings.TrimSpace(strings.Trim(strings.TrimSpace(rest), "*_"))
	return v, v != ""
}

// ExtractAll extracts every field. The bundle is returned only when all
// fields were found, empty blocks included; otherwise missing lists the
// absent fields in order.
func ExtractAll(text string, fields []string) (bundle map[string]string, missing []string) {
	found := make(map[string]string, len(fields))
	for _, f := range fields {
		v, ok := Extract(text, f)
		if !ok {
			missing = append(missing, f)
			continue
		}
		found[f] = v
	}
	if len(missing) > 0 {
		return nil, missing
	}
	return found, nil
}
