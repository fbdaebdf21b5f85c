package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/abhisek/olympiad/internal/config"
)

// fileCfg holds the --config file, if any. Zero means no file.
var fileCfg config.FileConfig

var rootCmd = &cobra.Command{
	Use:   "olympiad",
	Short: "Olympiad math problem generator",
	Long: `Olympiad generates batches of challenging Polish math problems with an LLM,
verifies them with a second pass and falls back to deterministic templates
when the model's output is unusable.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		verbose, _ := cmd.Flags().GetCount("verbose")
		setupLogging(verbose)

		if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
			log.Warn().Err(err).Msg("could not read .env")
		}

		if path, _ := cmd.Flags().GetString("config"); path != "" {
			fc, err := config.Load(path)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			fileCfg = fc
		}
		return nil
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides OLYMPIAD_DB env var)")
	rootCmd.PersistentFlags().String("config", "", "Path to a YAML or JSON config file")
	rootCmd.PersistentFlags().CountP("verbose", "v", "Increase log verbosity (-v debug, -vv trace)")

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(metaCmd)
	rootCmd.AddCommand(batchesCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
}

// setupLogging points the global logger at stderr.
func setupLogging(verbose int) {
	level := zerolog.InfoLevel
	switch {
	case verbose == 1:
		level = zerolog.DebugLevel
	case verbose >= 2:
		level = zerolog.TraceLevel
	}
	zerolog.SetGlobalLevel(level)
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly}).
		With().
		Timestamp().
		Logger()
}
