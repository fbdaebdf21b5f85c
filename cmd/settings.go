package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/abhisek/olympiad/internal/llm"
	"github.com/abhisek/olympiad/internal/problemgen"
	"github.com/abhisek/olympiad/internal/store"
)

// resolveDBPath returns the database path using --db flag (highest priority),
// then the config file, then OLYMPIAD_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	if p := fileCfg.DB; p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

func openStore(cmd *cobra.Command) (*store.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve database path: %w", err)
	}
	s, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	return s, nil
}

// llmConfig builds the provider config: OLYMPIAD_* env vars, then key
// discovery when no provider was chosen explicitly, then the config file.
func llmConfig(offline bool) (llm.Config, error) {
	cfg := llm.ConfigFromEnv()
	if os.Getenv("OLYMPIAD_LLM_PROVIDER") == "" && cfg.Validate() != nil {
		if found, ok := llm.DiscoverConfig(); ok {
			found.Cache, found.Timeout, found.Retry = cfg.Cache, cfg.Timeout, cfg.Retry
			cfg = found
		}
	}
	fileCfg.ApplyLLM(&cfg)
	if offline {
		cfg.Provider = "mock"
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// newGenerator wires provider, event log and generation settings.
func newGenerator(ctx context.Context, offline bool, concurrency int, events store.EventRepo) (*problemgen.Generator, error) {
	cfg, err := llmConfig(offline)
	if err != nil {
		return nil, fmt.Errorf("LLM provider not configured: %w (use --offline for template-only output)", err)
	}
	provider, err := llm.NewProvider(ctx, cfg, events)
	if err != nil {
		return nil, err
	}

	genCfg := problemgen.DefaultConfig()
	fileCfg.ApplyGeneration(&genCfg)
	if concurrency > 0 {
		genCfg.Concurrency = concurrency
	}
	genCfg.Logger = log.Logger

	log.Debug().Str("provider", cfg.Provider).Str("model", provider.ModelID()).Msg("generator ready")
	return problemgen.New(provider, genCfg), nil
}
