package problemgen

import (
	"context"
	"strconv"
	"strings"

	"github.com/abhisek/olympiad/internal/llm"
)

// Verdict is the parsed outcome of a verification pass.
type Verdict struct {
	Unambiguous    bool
	DifficultyOK   bool
	InsightPresent bool
	Score          int
	RevisedProblem string
}

// Passed reports whether all three boolean checks hold.
func (v Verdict) Passed() bool {
	return v.Unambiguous && v.DifficultyOK && v.InsightPresent
}

// parseBool accepts only the literal "true", case-insensitively.
func parseBool(s string) bool {
	return strings.EqualFold(strings.TrimSpace(s), "true")
}

// parseScore reads an integer score clamped to [0,10]; anything else is 0.
func parseScore(s string) int {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return max(0, min(10, v))
}

func parseVerdict(b FieldBundle) Verdict {
	return Verdict{
		Unambiguous:    parseBool(b[FieldUnambiguous]),
		DifficultyOK:   parseBool(b[FieldDifficultyOK]),
		InsightPresent: parseBool(b[FieldInsightPresent]),
		Score:          parseScore(b[FieldDifficultyScore]),
		RevisedProblem: strings.TrimSpace(b[FieldRevisedProblem]),
	}
}

// judge runs the verification pass. A judge that cannot be reached or never
// returns all fields yields a failing verdict with score 0.
func (g *Generator) judge(ctx context.Context, in ItemInput, bundle FieldBundle) Verdict {
	prompt, err := buildJudgePrompt(in, bundle)
	if err != nil {
		g.logger.Warn().Err(err).Int("item", in.Index).Msg("judge prompt failed")
		return Verdict{}
	}
	conv := Conversation{
		System: judgeSystemPrompt,
		Turns:  []llm.Message{llm.UserMessage(prompt)},
	}
	out, err := g.requester.RequestFields(llm.WithPurpose(ctx, llm.PurposeJudge), conv, judgeFields, g.config.Judge)
	if err != nil {
		g.logger.Warn().Err(err).Int("item", in.Index).Msg("verification failed, scoring 0")
		return Verdict{}
	}
	return parseVerdict(out)
}
