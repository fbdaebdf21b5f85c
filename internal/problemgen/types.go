package problemgen

import (
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/olympiad/internal/catalog"
	"github.com/abhisek/olympiad/internal/tags"
)

// Item fields requested from the model.
const (
	FieldProblem     = tags.FieldProblem
	FieldOutline     = tags.FieldOutline
	FieldSanityCheck = tags.FieldSanityCheck
)

// Judge fields.
const (
	FieldUnambiguous     = "unambiguous"
	FieldDifficultyOK    = "difficulty_ok"
	FieldInsightPresent  = "insight_present"
	FieldDifficultyScore = "difficulty_score"
	FieldRevisedProblem  = "revised_problem"
)

var (
	itemFields  = []string{FieldProblem, FieldOutline, FieldSanityCheck}
	judgeFields = []string{FieldUnambiguous, FieldDifficultyOK, FieldInsightPresent, FieldDifficultyScore, FieldRevisedProblem}
)

const (
	DefaultCount = 5
	MaxCount     = 20
)

// GenerationRequest is a batch request. Category, Level and Scenario may be
// given in Polish or English; Normalize resolves them to canonical keys.
type GenerationRequest struct {
	Category string `json:"branch"`
	Level    string `json:"school_level"`
	Scenario string `json:"scenario"`

	// Seed makes sampling, fallback content and ordering reproducible.
	// Nil draws a fresh seed.
	Seed *int64 `json:"seed,omitempty"`

	// Count is the number of items to return. Zero means DefaultCount.
	Count int `json:"count,omitempty"`
}

// FieldBundle maps field names to extracted text.
type FieldBundle map[string]string

// Source records which path produced an item's text.
type Source string

const (
	SourceModel    Source = "model"
	SourceFallback Source = "fallback"
)

// GeneratedItem is one problem in a batch. Category, Level and Scenario hold
// Polish display labels.
type GeneratedItem struct {
	ID              int    `json:"id"`
	Category        string `json:"branch"`
	Level           string `json:"school_level"`
	Scenario        string `json:"scenario"`
	ChallengeType   string `json:"challenge_type"`
	Tool            string `json:"tool"`
	Problem         string `json:"problem"`
	SolutionOutline string `json:"solution_outline"`
	Verification    string `json:"verification"`
	Source          Source `json:"source"`
}

// ScoredItem pairs a candidate with the judge's difficulty score (0-10).
type ScoredItem struct {
	Item  GeneratedItem
	Score int
}

// Batch is the result of GenerateBatch.
type Batch struct {
	ID        uuid.UUID         `json:"id"`
	Request   GenerationRequest `json:"request"`
	Items     []GeneratedItem   `json:"challenges"`
	Failures  []ItemFailure     `json:"failures,omitempty"`
	Model     string            `json:"model"`
	CreatedAt time.Time         `json:"created_at"`
}

// ItemInput is the resolved context for a single candidate slot.
type ItemInput struct {
	Index         int
	Category      catalog.Category
	Level         catalog.Level
	Scenario      catalog.Scenario
	ChallengeType string

	// SeedTag is embedded in the prompt and seeds the item's fallback.
	SeedTag int64

	// RevisionHint carries the judge's revised text into a regeneration.
	RevisionHint string
}
