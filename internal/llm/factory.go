package llm

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/abhisek/olympiad/internal/cache"
	"github.com/abhisek/olympiad/internal/store"
)

// offlineReply is what the "mock" provider says to every prompt. It holds
// no fields, so every item ends up on the deterministic fallback path.
const offlineReply = "Brak odpowiedzi modelu (tryb offline)."

// NewProvider creates a Provider from configuration.
// The result is wrapped: caller → timeout → cache → retry → logging → base.
// eventRepo may be nil, in which case events are not persisted.
func NewProvider(ctx context.Context, cfg Config, eventRepo store.EventRepo) (Provider, error) {
	var base Provider
	var err error

	switch cfg.Provider {
	case "huggingface":
		base, err = NewHuggingFaceProvider(cfg.HuggingFace)
	case "anthropic":
		base, err = NewAnthropicProvider(cfg.Anthropic)
	case "openai":
		base, err = NewOpenAIProvider(cfg.OpenAI)
	case "gemini":
		base, err = NewGeminiProvider(ctx, cfg.Gemini)
	case "openrouter":
		base, err = NewOpenRouterProvider(cfg.OpenRouter)
	case "mock":
		base = NewFuncProvider(func(Request) (string, error) { return offlineReply, nil })
	default:
		return nil, fmt.Errorf("unknown LLM provider: %q", cfg.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}

	p := WithLogging(base, cfg.Provider, eventRepo)
	p = WithRetry(p, cfg.Retry)

	if cfg.Cache.Enabled() {
		rs, err := newResponseStore(ctx, cfg.Cache)
		if err != nil {
			return nil, err
		}
		p = WithCache(p, rs)
	}

	if cfg.Timeout > 0 {
		p = &timeoutProvider{inner: p, timeout: cfg.Timeout}
	}
	return p, nil
}

func newResponseStore(ctx context.Context, cfg CacheConfig) (ResponseStore, error) {
	if cfg.RedisURL != "" {
		rs, err := cache.NewRedisStore(cfg.RedisURL, cfg.TTL)
		if err != nil {
			return nil, fmt.Errorf("initializing redis cache: %w", err)
		}
		if err := rs.Ping(ctx); err != nil {
			return nil, fmt.Errorf("connecting to redis cache: %w", err)
		}
		return rs, nil
	}
	fs := cache.NewFileStore(cfg.Dir)
	if cfg.TTL > 0 {
		n, err := fs.Prune(cfg.TTL)
		if err != nil {
			log.Warn().Err(err).Str("dir", cfg.Dir).Msg("cache prune failed")
		} else if n > 0 {
			log.Debug().Int("removed", n).Str("dir", cfg.Dir).Msg("pruned stale cache entries")
		}
	}
	return fs, nil
}

// timeoutProvider bounds each Generate call, retries included.
type timeoutProvider struct {
	inner   Provider
	timeout time.Duration
}

func (t *timeoutProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	ctx, cancel := context.WithTimeout(ctx, t.timeout)
	defer cancel()
	return t.inner.Generate(ctx, req)
}

func (t *timeoutProvider) ModelID() string {
	return t.inner.ModelID()
}
