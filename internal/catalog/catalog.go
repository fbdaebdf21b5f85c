package catalog

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

var (
	ErrUnknownCategory = errors.New("unknown category")
	ErrUnknownLevel    = errors.New("unknown school level")
	ErrUnknownScenario = errors.New("unknown scenario")
)

// Category is a mathematical branch problems are generated for.
type Category struct {
	Key            string // canonical English key
	Label          string // Polish display label
	ChallengeTypes []string
	QualityNote    string
	Aliases        []string
}

// Level is a school stage. Label is the short Polish form used in URLs and output.
type Level struct {
	Key       string
	Label     string
	Guideline string
	Aliases   []string
}

// Scenario is the real-world setting a problem must be woven into.
type Scenario struct {
	Key     string
	Label   string
	Hint    string
	Aliases []string
}

// index holds the static tables with precomputed lookups.
type index struct {
	categories []Category
	levels     []Level
	scenarios  []Scenario

	categoryByAlias map[string]int
	levelByAlias    map[string]int
	scenarioByAlias map[string]int
}

// idx is the package-level index, built once from the seed tables.
var idx *index

func init() {
	if err := validateTables(seedCategories, seedLevels, seedScenarios); err != nil {
		panic(err)
	}
	idx = buildIndex(seedCategories, seedLevels, seedScenarios)
}

func buildIndex(categories []Category, levels []Level, scenarios []Scenario) *index {
	ix := &index{
		categories:      categories,
		levels:          levels,
		scenarios:       scenarios,
		categoryByAlias: make(map[string]int),
		levelByAlias:    make(map[string]int),
		scenarioByAlias: make(map[string]int),
	}
	for i, c := range categories {
		for _, k := range keysOf(c.Key, c.Label, c.Aliases) {
			ix.categoryByAlias[k] = i
		}
	}
	for i, l := range levels {
		for _, k := range keysOf(l.Key, l.Label, l.Aliases) {
			ix.levelByAlias[k] = i
		}
	}
	for i, s := range scenarios {
		for _, k := range keysOf(s.Key, s.Label, s.Aliases) {
			ix.scenarioByAlias[k] = i
		}
	}
	return ix
}

// keysOf returns the normalized lookup keys of an entry: its key, label and aliases.
func keysOf(key, label string, aliases []string) []string {
	keys := make([]string, 0, len(aliases)+2)
	keys = append(keys, normalizeKey(key), normalizeKey(label))
	for _, a := range aliases {
		keys = append(keys, normalizeKey(a))
	}
	return keys
}

// LookupCategory resolves a Polish or English category name or alias.
func LookupCategory(name string) (Category, error) {
	i, ok := idx.categoryByAlias[normalizeKey(name)]
	if !ok {
		return Category{}, fmt.Errorf("%w %q: must be one of %s", ErrUnknownCategory, name, strings.Join(CategoryLabels(), ", "))
	}
	return idx.categories[i], nil
}

// LookupLevel resolves a school level in any accepted form (SP-1-5, liceum, long English form, ...).
func LookupLevel(name string) (Level, error) {
	i, ok := idx.levelByAlias[normalizeKey(name)]
	if !ok {
		return Level{}, fmt.Errorf("%w %q: must be one of %s (long forms also accepted)", ErrUnknownLevel, name, strings.Join(LevelLabels(), ", "))
	}
	return idx.levels[i], nil
}

// LookupScenario resolves a Polish or English scenario name.
func LookupScenario(name string) (Scenario, error) {
	i, ok := idx.scenarioByAlias[normalizeKey(name)]
	if !ok {
		return Scenario{}, fmt.Errorf("%w %q: must be one of %s", ErrUnknownScenario, name, strings.Join(ScenarioLabels(), ", "))
	}
	return idx.scenarios[i], nil
}

// Categories returns all categories in display order.
func Categories() []Category {
	return slices.Clone(idx.categories)
}

// Levels returns all school levels from youngest to oldest.
func Levels() []Level {
	return slices.Clone(idx.levels)
}

// Scenarios returns all scenarios in display order.
func Scenarios() []Scenario {
	return slices.Clone(idx.scenarios)
}

func CategoryLabels() []string {
	out := make([]string, len(idx.categories))
	for i, c := range idx.categories {
		out[i] = c.Label
	}
	return out
}

func LevelLabels() []string {
	out := make([]string, len(idx.levels))
	for i, l := range idx.levels {
		out[i] = l.Label
	}
	return out
}

func ScenarioLabels() []string {
	out := make([]string, len(idx.scenarios))
	for i, s := range idx.scenarios {
		out[i] = s.Label
	}
	return out
}

// CategoryLabel returns the Polish label for a canonical key, or the key itself.
func CategoryLabel(key string) string {
	if c, err := LookupCategory(key); err == nil {
		return c.Label
	}
	return key
}

func LevelLabel(key string) string {
	if l, err := LookupLevel(key); err == nil {
		return l.Label
	}
	return key
}

func ScenarioLabel(key string) string {
	if s, err := LookupScenario(key); err == nil {
		return s.Label
	}
	return key
}

// Validate checks the static tables for structural issues.
func Validate() error {
	return validateTables(idx.categories, idx.levels, idx.scenarios)
}
