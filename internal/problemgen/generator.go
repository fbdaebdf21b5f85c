package problemgen

import (
	"context"
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/abhisek/olympiad/internal/catalog"
	"github.com/abhisek/olympiad/internal/llm"
)

// maxTypeRepeats caps how often one challenge type appears in a batch.
const maxTypeRepeats = 2

// seedTagLimit bounds the random tag embedded in each prompt.
const seedTagLimit = 1_000_000_000

// pcgStream is the second PCG word for batch-level generators.
const pcgStream = 0x6f6c796d70696164

// Generator produces ranked batches of olympiad problems using an LLM provider.
type Generator struct {
	provider  llm.Provider
	requester *Requester
	config    Config
	logger    zerolog.Logger
}

// New creates a Generator with the given provider and config.
func New(provider llm.Provider, cfg Config) *Generator {
	return &Generator{
		provider:  provider,
		requester: NewRequester(provider, cfg.Retries, cfg.RepairTemperature, cfg.Logger),
		config:    cfg,
		logger:    cfg.Logger,
	}
}

// ModelID returns the model behind the generator.
func (g *Generator) ModelID() string {
	return g.provider.ModelID()
}

// resolved is a normalized request.
type resolved struct {
	category catalog.Category
	level    catalog.Level
	scenario catalog.Scenario
	count    int
	seed     int64
}

// Normalize resolves aliases to canonical keys, applies the default count
// and draws a seed when none is given.
func Normalize(req GenerationRequest) (GenerationRequest, error) {
	r, err := resolve(req)
	if err != nil {
		return GenerationRequest{}, err
	}
	return r.request(), nil
}

func resolve(req GenerationRequest) (resolved, error) {
	var r resolved
	var err error
	if r.category, err = catalog.LookupCategory(req.Category); err != nil {
		return r, fmt.Errorf("%w: %w", ErrInvalidRequest, err)
	}
	if r.level, err = catalog.LookupLevel(req.Level); err != nil {
		return r, fmt.Errorf("%w: %w", ErrInvalidRequest, err)
	}
	if r.scenario, err = catalog.LookupScenario(req.Scenario); err != nil {
		return r, fmt.Errorf("%w: %w", ErrInvalidRequest, err)
	}

	r.count = req.Count
	if r.count == 0 {
		r.count = DefaultCount
	}
	if r.count < 1 || r.count > MaxCount {
		return r, fmt.Errorf("%w: count must be between 1 and %d, got %d", ErrInvalidRequest, MaxCount, req.Count)
	}

	if req.Seed != nil {
		r.seed = *req.Seed
	} else {
		r.seed = rand.Int64()
	}
	return r, nil
}

func (r resolved) request() GenerationRequest {
	seed := r.seed
	return GenerationRequest{
		Category: r.category.Key,
		Level:    r.level.Key,
		Scenario: r.scenario.Key,
		Seed:     &seed,
		Count:    r.count,
	}
}

// PoolSize is the number of candidates generated for a batch of n.
func PoolSize(n int) int {
	return max(n+2, min(n+5, int(math.Round(1.6*float64(n)))))
}

// PickTypes draws m challenge types from pool. No type appears more than
// twice while the pool allows it; otherwise types are dealt in shuffled
// rounds so counts differ by at most one.
func PickTypes(pool []string, m int, rng *rand.Rand) []string {
	if len(pool) == 0 || m <= 0 {
		return nil
	}
	chosen := make([]string, 0, m)

	if m > maxTypeRepeats*len(pool) {
		for len(chosen) < m {
			for _, i := range rng.Perm(len(pool)) {
				if len(chosen) == m {
					break
				}
				chosen = append(chosen, pool[i])
			}
		}
		return chosen
	}

	counts := make(map[string]int, len(pool))
	for len(chosen) < m {
		t := pool[rng.IntN(len(pool))]
		if counts[t] < maxTypeRepeats {
			chosen = append(chosen, t)
			counts[t]++
		}
	}
	return chosen
}

// GenerateBatch generates PoolSize(n) candidates, ranks them by the judge's
// score and returns the best n, numbered 1..n. Candidates for which every
// strategy failed are reported in Batch.Failures; if none survive the
// batch fails with ErrNoItems.
func (g *Generator) GenerateBatch(ctx context.Context, req GenerationRequest) (*Batch, error) {
	r, err := resolve(req)
	if err != nil {
		return nil, err
	}

	rng := rand.New(rand.NewPCG(uint64(r.seed), pcgStream))

	// The batch generator is consumed in a fixed order before any work
	// starts: types, then seed tags, then (after generation) the shuffle.
	types := PickTypes(r.category.ChallengeTypes, PoolSize(r.count), rng)
	inputs := make([]ItemInput, len(types))
	for i, t := range types {
		inputs[i] = ItemInput{
			Index:         i + 1,
			Category:      r.category,
			Level:         r.level,
			Scenario:      r.scenario,
			ChallengeType: t,
			SeedTag:       1 + rng.Int64N(seedTagLimit),
		}
	}

	g.logger.Info().
		Str("category", r.category.Key).
		Str("level", r.level.Label).
		Str("scenario", r.scenario.Key).
		Int64("seed", r.seed).
		Int("count", r.count).
		Int("pool", len(inputs)).
		Msg("generating batch")

	results, errs, err := g.runItems(ctx, inputs)
	if err != nil {
		return nil, err
	}

	var candidates []ScoredItem
	var failures []ItemFailure
	var causes []error
	for i, in := range inputs {
		if errs[i] != nil {
			failures = append(failures, ItemFailure{
				Index:         in.Index,
				ChallengeType: in.ChallengeType,
				Reason:        errs[i].Error(),
				Err:           errs[i],
			})
			causes = append(causes, errs[i])
			continue
		}
		candidates = append(candidates, results[i])
	}
	if len(candidates) == 0 {
		return nil, fmt.Errorf("%w: %w", ErrNoItems, errors.Join(causes...))
	}

	return &Batch{
		ID:        uuid.New(),
		Request:   r.request(),
		Items:     selectTop(candidates, r.count, rng),
		Failures:  failures,
		Model:     g.provider.ModelID(),
		CreatedAt: time.Now().UTC(),
	}, nil
}

// runItems runs every candidate slot, sequentially or with bounded
// parallelism. Per-item failures are returned in errs; only context
// cancellation fails the whole run.
func (g *Generator) runItems(ctx context.Context, inputs []ItemInput) ([]ScoredItem, []error, error) {
	results := make([]ScoredItem, len(inputs))
	errs := make([]error, len(inputs))

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(max(1, g.config.Concurrency))
	for i, in := range inputs {
		eg.Go(func() error {
			item, err := newItemRun(g, in).run(egCtx)
			if err != nil {
				if ctxErr := egCtx.Err(); ctxErr != nil {
					return ctxErr
				}
				g.logger.Warn().Err(err).Int("item", in.Index).Msg("all strategies failed")
				errs[i] = err
				return nil
			}
			g.logger.Debug().
				Int("item", in.Index).
				Str("source", string(item.Item.Source)).
				Int("score", item.Score).
				Msg("candidate ready")
			results[i] = item
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, nil, fmt.Errorf("generating batch: %w", err)
	}
	return results, errs, nil
}

// selectTop shuffles candidates with rng, stable-sorts them by score
// (highest first) and keeps n, renumbered 1..n. A type already taken twice
// is passed over while other candidates remain.
func selectTop(candidates []ScoredItem, n int, rng *rand.Rand) []GeneratedItem {
	pool := slices.Clone(candidates)
	rng.Shuffle(len(pool), func(i, j int) { pool[i], pool[j] = pool[j], pool[i] })
	slices.SortStableFunc(pool, func(a, b ScoredItem) int { return b.Score - a.Score })

	selected := make([]ScoredItem, 0, n)
	var skipped []ScoredItem
	counts := make(map[string]int)
	for _, c := range pool {
		if len(selected) == n {
			break
		}
		if counts[c.Item.ChallengeType] >= maxTypeRepeats {
			skipped = append(skipped, c)
			continue
		}
		counts[c.Item.ChallengeType]++
		selected = append(selected, c)
	}
	for _, c := range skipped {
		if len(selected) == n {
			break
		}
		selected = append(selected, c)
	}
	// Passed-over candidates may score higher than later picks.
	slices.SortStableFunc(selected, func(a, b ScoredItem) int { return b.Score - a.Score })

	items := make([]GeneratedItem, len(selected))
	for i, c := range selected {
		items[i] = c.Item
		items[i].ID = i + 1
	}
	return items
}
