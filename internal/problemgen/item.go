package problemgen

import (
	"context"
	"math/rand/v2"
	"strings"

	"github.com/abhisek/olympiad/internal/llm"
)

// itemState is a step of a single candidate's lifecycle.
type itemState int

const (
	stateGenerating itemState = iota
	stateVerifying
	stateRevising
	stateDone
)

func (s itemState) String() string {
	switch s {
	case stateGenerating:
		return "generating"
	case stateVerifying:
		return "verifying"
	case stateRevising:
		return "revising"
	case stateDone:
		return "done"
	default:
		return "unknown"
	}
}

const (
	toolLabel = "—"

	notePassed = "(Weryfikator: zadanie jednoznaczne, z właściwą trudnością i wyraźnym insightem.)"
	noteTuning = "(Weryfikator: możliwe dostrojenie jeszcze potrzebne.)"
)

// itemRun drives one candidate slot through
// generating → verifying → (revising → verifying)? → done.
// At most one revision happens.
type itemRun struct {
	g   *Generator
	in  ItemInput
	rng *rand.Rand

	state   itemState
	bundle  FieldBundle
	source  Source
	verdict Verdict
	revised bool
}

func newItemRun(g *Generator, in ItemInput) *itemRun {
	return &itemRun{
		g:   g,
		in:  in,
		rng: rand.New(rand.NewPCG(uint64(in.SeedTag), uint64(in.Index))),
	}
}

func (r *itemRun) run(ctx context.Context) (ScoredItem, error) {
	ctx = llm.WithItem(ctx, r.in.Index)
	for r.state != stateDone {
		if err := ctx.Err(); err != nil {
			return ScoredItem{}, err
		}
		var err error
		switch r.state {
		case stateGenerating:
			err = r.generate(ctx)
		case stateVerifying:
			r.verify(ctx)
		case stateRevising:
			r.revise()
		}
		if err != nil {
			return ScoredItem{}, err
		}
	}
	return r.result(), nil
}

func (r *itemRun) generate(ctx context.Context) error {
	bundle, source, err := r.g.generateBundle(ctx, r.in, r.rng)
	if err != nil {
		// A failed revision keeps the first version and its verdict.
		if r.revised && r.bundle != nil && ctx.Err() == nil {
			r.g.logger.Warn().Err(err).Int("item", r.in.Index).Msg("revision failed, keeping first version")
			r.state = stateDone
			return nil
		}
		return err
	}
	r.bundle, r.source = bundle, source
	r.state = stateVerifying
	return nil
}

func (r *itemRun) verify(ctx context.Context) {
	r.verdict = r.g.judge(ctx, r.in, r.bundle)
	if r.verdict.Passed() || r.revised {
		r.state = stateDone
		return
	}
	r.state = stateRevising
}

// revise regenerates from scratch; the judge's revised text is only a hint.
func (r *itemRun) revise() {
	r.g.logger.Debug().
		Int("item", r.in.Index).
		Int("score", r.verdict.Score).
		Msg("verification failed, regenerating")
	r.revised = true
	r.in.RevisionHint = r.verdict.RevisedProblem
	r.state = stateGenerating
}

func (r *itemRun) result() ScoredItem {
	note := noteTuning
	if r.verdict.Passed() {
		note = notePassed
	}
	return ScoredItem{
		Item: GeneratedItem{
			ID:              r.in.Index,
			Category:        r.in.Category.Label,
			Level:           r.in.Level.Label,
			Scenario:        r.in.Scenario.Label,
			ChallengeType:   r.in.ChallengeType,
			Tool:            toolLabel,
			Problem:         r.bundle[FieldProblem],
			SolutionOutline: r.bundle[FieldOutline],
			Verification:    strings.TrimSpace(r.bundle[FieldSanityCheck] + " " + note),
			Source:          r.source,
		},
		Score: r.verdict.Score,
	}
}
