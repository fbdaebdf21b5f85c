package tags

// Canonical field names.
const (
	FieldProblem     = "problem"
	FieldOutline     = "solution_outline"
	FieldSanityCheck = "sanity_check"
)

// Aliases lists recognized spellings per canonical field, canonical name
// first. Lookups try them in order.
var Aliases = map[string][]string{
	FieldProblem: {
		"problem", "task", "zadanie", "tresc", "treść", "tresc_zadania", "treść_zadania",
	},
	FieldOutline: {
		"solution_outline", "outline", "solution", "szkic", "szkic_rozwiazania",
		"szkic_rozwiązania", "sketch", "rozwiazanie", "rozwiązanie",
	},
	FieldSanityCheck: {
		"sanity_check", "sanity", "check", "weryfikacja", "sprawdzenie", "kontrola",
	},
}

// headingCues are the "Heading:" forms accepted for soft-headed fields.
// Longer cues come first so "Szkic rozwiązania" wins over "Szkic".
var headingCues = map[string][]string{
	FieldOutline: {
		"szkic rozwiązania", "szkic rozwiazania", "solution outline", "szkic", "outline", "sketch",
	},
	FieldSanityCheck: {
		"sanity check", "sanity", "weryfikacja", "sprawdzenie", "check",
	},
	// Only used to stop a heading capture; problems need real delimiters.
	FieldProblem: {
		"treść zadania", "tresc zadania", "treść", "tresc", "zadanie", "problem",
	},
}

// softHeaded lists fields recoverable from a heading.
var softHeaded = map[string]bool{
	FieldOutline:     true,
	FieldSanityCheck: true,
}

// AliasesFor returns the spellings tried for field. Unknown fields match
// only their own name.
func AliasesFor(field string) []string {
	if a, ok := Aliases[field]; ok {
		return a
	}
	return []string{field}
}
