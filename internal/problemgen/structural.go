package problemgen

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
)

// Minimum lengths in runes.
const (
	minProblemRunes = 120
	minOutlineRunes = 60
	minSanityRunes  = 40
	minContentRunes = 12
)

// junkFragments are echoes of our own instructions and placeholder phrases.
// Compared against case-folded text.
var junkFragments = []string{
	"przykładowa treść",
	"tylko w tym tagu",
	"treść…",
	"krótki szkic…",
	"bardzo krótki sanity check…",
	"twoja poprzednia odpowiedź",
	"poprzednia odpowiedź była niepoprawna",
	"uzupełnij poprawną treść",
	"wpisz tutaj",
	"tu wpisz",
	"fill in",
	"correct content",
	"your problem here",
	"placeholder",
	"lorem ipsum",
}

var booleanLiterals = map[string]bool{
	"true": true, "false": true,
	"prawda": true, "fałsz": true, "falsz": true,
	"tak": true, "nie": true,
	"yes": true, "no": true,
}

// mathSignal matches vocabulary that marks a text as a math problem when
// it has no digits.
var mathSignal = regexp.MustCompile(`(?i)liczb|ułam|procent|sum|iloczyn|różnic|równ|nierówn|dziel|wielokrot|oblicz|wyznacz|udowodnij|uzasadnij|ile |pole|obwód|objęto|kąt|trójkąt|prawdopodob|średni|ciąg|funkcj|number|fraction|percent|equation|how many|prove|compute`)

func runeLen(s string) int { return utf8.RuneCountInString(s) }

// isBooleanLiteral reports whether s is nothing but a yes/no word.
func isBooleanLiteral(s string) bool {
	w := strings.TrimFunc(s, func(r rune) bool {
		return unicode.IsSpace(r) || unicode.IsPunct(r)
	})
	return booleanLiterals[cases.Fold().String(w)]
}

// junkReason returns why s is junk, or "" if it looks like real content.
func junkReason(s string) string {
	t := strings.TrimSpace(s)
	if t == "" {
		return "empty"
	}
	if strings.Trim(t, ".…· \t\n") == "" {
		return "placeholder ellipsis"
	}
	if isBooleanLiteral(t) {
		return fmt.Sprintf("boolean literal %q instead of prose", t)
	}
	folded := cases.Fold().String(t)
	for _, frag := range junkFragments {
		if strings.Contains(folded, frag) {
			return fmt.Sprintf("echoed instruction or placeholder %q", frag)
		}
	}
	if runeLen(t) < minContentRunes {
		return "too short to be content"
	}
	return ""
}

func containsFold(text, sub string) bool {
	fold := cases.Fold()
	return strings.Contains(fold.String(text), fold.String(sub))
}

// ProblemValidator rejects junk, short texts, texts without any math
// signal and texts that do not mention the scenario label verbatim.
type ProblemValidator struct{}

func (v *ProblemValidator) Name() string  { return "problem" }
func (v *ProblemValidator) Field() string { return FieldProblem }

func (v *ProblemValidator) Validate(text string, in ItemInput) *ValidationError {
	if reason := junkReason(text); reason != "" {
		return v.fail(reason)
	}
	if n := runeLen(strings.TrimSpace(text)); n < minProblemRunes {
		return v.fail(fmt.Sprintf("problem has %d characters, need at least %d", n, minProblemRunes))
	}
	if !strings.ContainsFunc(text, unicode.IsDigit) && !mathSignal.MatchString(text) {
		return v.fail("problem contains no numbers or mathematical vocabulary")
	}
	if label := in.Scenario.Label; label != "" && !containsFold(text, label) {
		return v.fail(fmt.Sprintf("problem does not mention the scenario %q", label))
	}
	return nil
}

func (v *ProblemValidator) fail(msg string) *ValidationError {
	return &ValidationError{Validator: v.Name(), Field: v.Field(), Message: msg, Retryable: true}
}

// OutlineValidator rejects junk and outlines shorter than minOutlineRunes.
type OutlineValidator struct{}

func (v *OutlineValidator) Name() string  { return "outline" }
func (v *OutlineValidator) Field() string { return FieldOutline }

func (v *OutlineValidator) Validate(text string, _ ItemInput) *ValidationError {
	return minLengthCheck(v.Name(), v.Field(), text, minOutlineRunes)
}

// SanityCheckValidator rejects junk and checks shorter than minSanityRunes.
type SanityCheckValidator struct{}

func (v *SanityCheckValidator) Name() string  { return "sanity-check" }
func (v *SanityCheckValidator) Field() string { return FieldSanityCheck }

func (v *SanityCheckValidator) Validate(text string, _ ItemInput) *ValidationError {
	return minLengthCheck(v.Name(), v.Field(), text, minSanityRunes)
}

func minLengthCheck(name, field, text string, min int) *ValidationError {
	if reason := junkReason(text); reason != "" {
		return &ValidationError{Validator: name, Field: field, Message: reason, Retryable: true}
	}
	if n := runeLen(strings.TrimSpace(text)); n < min {
		return &ValidationError{
			Validator: name,
			Field:     field,
			Message:   fmt.Sprintf("%s has %d characters, need at least %d", field, n, min),
			Retryable: true,
		}
	}
	return nil
}
