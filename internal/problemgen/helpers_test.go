package problemgen

import (
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/abhisek/olympiad/internal/catalog"
	"github.com/abhisek/olympiad/internal/llm"
)

const (
	validProblem = "Scenariusz: inżynieria. W hali montażowej przygotowano 48 elementów konstrukcji mostu. " +
		"Najpierw zużyto 3/8 wszystkich elementów, potem 1/3 pozostałych. Ile elementów zostało i jaką częścią całości są?"
	validOutline = "Najpierw zużyto 3/8 · 48 = 18 elementów, więc zostaje 48 − 18 = 30. " +
		"Potem zużyto 1/3 · 30 = 10, zostaje 30 − 10 = 20, czyli 20/48 = 5/12 całości."
	validSanity = "Sprawdzenie: 18 + 10 + 20 = 48, a (5/8)·(2/3) = 10/24 = 5/12, więc wynik się zgadza."
)

func validBundle() FieldBundle {
	return FieldBundle{
		FieldProblem:     validProblem,
		FieldOutline:     validOutline,
		FieldSanityCheck: validSanity,
	}
}

func bundleReply(b FieldBundle) string {
	var s strings.Builder
	for _, f := range itemFields {
		s.WriteString(wrap(f, b[f]))
		s.WriteString("\n")
	}
	return s.String()
}

func judgeReply(pass bool, score string) string {
	return judgeReplyWith(pass, score, validProblem)
}

func judgeReplyWith(pass bool, score, revised string) string {
	v := "false"
	if pass {
		v = "true"
	}
	return wrap(FieldUnambiguous, v) + "\n" +
		wrap(FieldDifficultyOK, v) + "\n" +
		wrap(FieldInsightPresent, v) + "\n" +
		wrap(FieldDifficultyScore, score) + "\n" +
		wrap(FieldRevisedProblem, revised)
}

// lastUser returns the final instruction of a request.
func lastUser(req llm.Request) string {
	if len(req.Messages) == 0 {
		return ""
	}
	return req.Messages[len(req.Messages)-1].Content
}

func isJudgeRequest(req llm.Request) bool {
	return req.System == judgeSystemPrompt
}

func testInput(t *testing.T) ItemInput {
	t.Helper()
	cat, err := catalog.LookupCategory("Fractions")
	if err != nil {
		t.Fatalf("lookup category: %v", err)
	}
	lvl, err := catalog.LookupLevel("SP-1-5")
	if err != nil {
		t.Fatalf("lookup level: %v", err)
	}
	scn, err := catalog.LookupScenario("engineering")
	if err != nil {
		t.Fatalf("lookup scenario: %v", err)
	}
	return ItemInput{
		Index:         1,
		Category:      cat,
		Level:         lvl,
		Scenario:      scn,
		ChallengeType: cat.ChallengeTypes[0],
		SeedTag:       7,
	}
}

func testConfig() Config {
	cfg := DefaultConfig()
	cfg.Logger = zerolog.Nop()
	return cfg
}
