package catalog

import (
	"fmt"
	"strings"
)

// validateTables performs structural checks on the seed tables.
// Returns a combined error describing all problems found, or nil if valid.
func validateTables(categories []Category, levels []Level, scenarios []Scenario) error {
	var errs []string

	// Aliases must resolve to exactly one entry within each table
	claim := func(table string, seen map[string]string, owner string, keys []string) {
		for _, k := range keys {
			if prev, ok := seen[k]; ok && prev != owner {
				errs = append(errs, fmt.Sprintf("%s alias %q claimed by both %q and %q", table, k, prev, owner))
				continue
			}
			seen[k] = owner
		}
	}

	catSeen := make(map[string]string)
	for _, c := range categories {
		if c.Key == "" || c.Label == "" {
			errs = append(errs, fmt.Sprintf("category %q: key and label are required", c.Key))
		}
		if len(c.ChallengeTypes) < 2 {
			errs = append(errs, fmt.Sprintf("category %q: need at least 2 challenge types, got %d", c.Key, len(c.ChallengeTypes)))
		}
		if c.QualityNote == "" {
			errs = append(errs, fmt.Sprintf("category %q: missing quality note", c.Key))
		}
		claim("category", catSeen, c.Key, keysOf(c.Key, c.Label, c.Aliases))
	}

	levelSeen := make(map[string]string)
	for _, l := range levels {
		if l.Key == "" || l.Label == "" || l.Guideline == "" {
			errs = append(errs, fmt.Sprintf("level %q: key, label and guideline are required", l.Key))
		}
		claim("level", levelSeen, l.Key, keysOf(l.Key, l.Label, l.Aliases))
	}

	scenarioSeen := make(map[string]string)
	for _, s := range scenarios {
		if s.Key == "" || s.Label == "" || s.Hint == "" {
			errs = append(errs, fmt.Sprintf("scenario %q: key, label and hint are required", s.Key))
		}
		claim("scenario", scenarioSeen, s.Key, keysOf(s.Key, s.Label, s.Aliases))
	}

	if len(errs) > 0 {
		return fmt.Errorf("catalog validation failed:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}
