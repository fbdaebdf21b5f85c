package problemgen

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/abhisek/olympiad/internal/llm"
)

// strategy is one way of obtaining a valid item bundle.
type strategy struct {
	name   string
	source Source
	run    func(ctx context.Context, in ItemInput, rng *rand.Rand) (FieldBundle, error)
}

// strategies returns the generation tiers, cheapest first.
func (g *Generator) strategies() []strategy {
	return []strategy{
		{name: "bundle", source: SourceModel, run: g.bundleStrategy},
		{name: "per-field", source: SourceModel, run: g.perFieldStrategy},
		{name: "fallback", source: SourceFallback, run: g.fallbackStrategy},
	}
}

// generateBundle runs the tiers in order and returns the first success.
// If every tier fails the errors are joined. Context errors abort at once.
func (g *Generator) generateBundle(ctx context.Context, in ItemInput, rng *rand.Rand) (FieldBundle, Source, error) {
	var errs []error
	for _, s := range g.strategies() {
		bundle, err := s.run(ctx, in, rng)
		if err == nil {
			return bundle, s.source, nil
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, "", ctxErr
		}
		g.logger.Debug().
			Err(err).
			Int("item", in.Index).
			Str("strategy", s.name).
			Msg("strategy failed")
		errs = append(errs, fmt.Errorf("%s: %w", s.name, err))
	}
	return nil, "", errors.Join(errs...)
}

// baseConversation is the generation context shared by the model tiers.
func baseConversation(in ItemInput) Conversation {
	return Conversation{
		System: systemPrompt,
		Turns:  []llm.Message{llm.UserMessage(buildGenerationPrompt(in))},
	}
}

func (g *Generator) bundleStrategy(ctx context.Context, in ItemInput, _ *rand.Rand) (FieldBundle, error) {
	bundle, err := g.requester.RequestFields(ctx, baseConversation(in), itemFields, g.config.Bundle)
	if err != nil {
		return nil, err
	}
	if verr := ValidateBundle(g.config.Validators, bundle, in); verr != nil {
		return nil, verr
	}
	return bundle, nil
}

// perFieldStrategy requests problem, outline and sanity check in turn,
// each in the context of the previous ones.
func (g *Generator) perFieldStrategy(ctx context.Context, in ItemInput, _ *rand.Rand) (FieldBundle, error) {
	conv := baseConversation(in)
	problem, err := g.requestValid(ctx, conv, FieldProblem, g.config.Problem, in)
	if err != nil {
		return nil, err
	}

	conv = conv.With(llm.UserMessage(outlineContext(problem)))
	outline, err := g.requestValid(ctx, conv, FieldOutline, g.config.Outline, in)
	if err != nil {
		return nil, err
	}

	conv = conv.With(llm.UserMessage(sanityContext(outline)))
	sanity, err := g.requestValid(ctx, conv, FieldSanityCheck, g.config.Sanity, in)
	if err != nil {
		return nil, err
	}

	return FieldBundle{FieldProblem: problem, FieldOutline: outline, FieldSanityCheck: sanity}, nil
}

// requestValid requests one field and, when a validator rejects it, sends
// a single corrective sub-turn quoting the rejected text.
func (g *Generator) requestValid(ctx context.Context, conv Conversation, field string, call CallOptions, in ItemInput) (string, error) {
	text, err := g.requester.RequestField(ctx, conv, field, call)
	if err != nil {
		return "", err
	}
	verr := validateField(g.config.Validators, field, text, in)
	if verr == nil {
		return text, nil
	}

	g.logger.Debug().
		Int("item", in.Index).
		Str("field", field).
		Str("validator", verr.Validator).
		Msg(verr.Message)

	corrective := conv.With(llm.UserMessage(correctionPrompt(field, text, verr, in)))
	text, err = g.requester.RequestField(ctx, corrective, field, g.config.Correction)
	if err != nil {
		return "", err
	}
	if verr := validateField(g.config.Validators, field, text, in); verr != nil {
		return "", verr
	}
	return text, nil
}

func (g *Generator) fallbackStrategy(_ context.Context, in ItemInput, rng *rand.Rand) (FieldBundle, error) {
	return Fallback(in.Category.Key, in.Level.Key, in.Scenario.Key, rng)
}
