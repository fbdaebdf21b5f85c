package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/abhisek/olympiad/internal/problemgen"
	"github.com/abhisek/olympiad/internal/render"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a batch of problems",
	Long: `Generate a batch of olympiad problems for a branch, school level and scenario.

Names are accepted in Polish or English (see "olympiad meta"). The batch is
stored in the database unless --no-store is given.`,
	Example: `  olympiad generate -b Ułamki -l SP-1-5 -s inżynieria --seed 42
  olympiad generate -b fractions -l "grades 1-5" -s engineering --offline --json`,
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().StringP("branch", "b", "", "Branch (category) of mathematics (required)")
	generateCmd.Flags().StringP("level", "l", "", "School level (required)")
	generateCmd.Flags().StringP("scenario", "s", "", "Scenario woven into every problem (required)")
	generateCmd.Flags().Int64("seed", 0, "Seed for reproducible output (random when unset)")
	generateCmd.Flags().IntP("count", "n", problemgen.DefaultCount, "Number of problems")
	generateCmd.Flags().Int("concurrency", 0, "Candidates generated in parallel (default from config, 1)")
	generateCmd.Flags().Bool("offline", false, "Skip the model and use deterministic templates only")
	generateCmd.Flags().Bool("json", false, "Print the batch as JSON")
	generateCmd.Flags().StringP("out", "o", "", "Also write the batch JSON to this file")
	generateCmd.Flags().Bool("no-store", false, "Do not save the batch")
	generateCmd.Flags().Bool("plain", false, "Disable colors")
	_ = generateCmd.MarkFlagRequired("branch")
	_ = generateCmd.MarkFlagRequired("level")
	_ = generateCmd.MarkFlagRequired("scenario")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	req := problemgen.GenerationRequest{}
	req.Category, _ = cmd.Flags().GetString("branch")
	req.Level, _ = cmd.Flags().GetString("level")
	req.Scenario, _ = cmd.Flags().GetString("scenario")
	req.Count, _ = cmd.Flags().GetInt("count")
	if cmd.Flags().Changed("seed") {
		seed, _ := cmd.Flags().GetInt64("seed")
		req.Seed = &seed
	}

	offline, _ := cmd.Flags().GetBool("offline")
	noStore, _ := cmd.Flags().GetBool("no-store")

	norm, err := problemgen.Normalize(req)
	if err != nil {
		return err
	}
	if !problemgen.HasFallback(norm.Category, norm.Level) {
		if offline {
			return fmt.Errorf("no offline templates for %s / %s", norm.Category, norm.Level)
		}
		log.Warn().
			Str("branch", norm.Category).
			Str("level", norm.Level).
			Msg("no fallback templates; items the model cannot produce will fail")
	}

	s, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer s.Close()

	concurrency, _ := cmd.Flags().GetInt("concurrency")
	gen, err := newGenerator(ctx, offline, concurrency, s.EventRepo())
	if err != nil {
		return err
	}

	batch, err := gen.GenerateBatch(ctx, req)
	if err != nil {
		return fmt.Errorf("generate: %w", err)
	}

	if !noStore {
		rec, err := batch.Record()
		if err != nil {
			return err
		}
		if err := s.BatchRepo().Save(ctx, rec); err != nil {
			return fmt.Errorf("save batch: %w", err)
		}
		log.Debug().Str("batch", rec.ID).Msg("batch saved")
	}

	if out, _ := cmd.Flags().GetString("out"); out != "" {
		data, err := json.MarshalIndent(batch, "", "  ")
		if err != nil {
			return fmt.Errorf("encode batch: %w", err)
		}
		if err := os.WriteFile(out, append(data, '\n'), 0o644); err != nil {
			return fmt.Errorf("write %s: %w", out, err)
		}
	}

	if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		return enc.Encode(batch)
	}
	return newRenderer(cmd).Batch(cmd.OutOrStdout(), batch)
}

func newRenderer(cmd *cobra.Command) *render.Renderer {
	var opts []render.Option
	if plain, _ := cmd.Flags().GetBool("plain"); plain {
		opts = append(opts, render.WithPlain())
	}
	return render.New(opts...)
}
