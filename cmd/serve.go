package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/abhisek/olympiad/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	Long: `Serve the generator over HTTP.

Routes: GET /health, GET /meta, GET|POST /generate. The listen port comes from
PORT and allowed origins from CORS_ORIGINS unless overridden by flags or the
config file.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().String("addr", "", "Listen address (default :$PORT or :8000)")
	serveCmd.Flags().StringSlice("cors", nil, "Allowed CORS origins")
	serveCmd.Flags().Bool("offline", false, "Serve template-only batches without a model")
	serveCmd.Flags().Bool("no-store", false, "Do not save served batches")
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg := server.ConfigFromEnv()
	fileCfg.ApplyServer(&cfg)
	if addr, _ := cmd.Flags().GetString("addr"); addr != "" {
		cfg.Addr = addr
	}
	if origins, _ := cmd.Flags().GetStringSlice("cors"); len(origins) > 0 {
		cfg.CORSOrigins = origins
	}

	if verbose, _ := cmd.Flags().GetCount("verbose"); verbose == 0 {
		gin.SetMode(gin.ReleaseMode)
	}

	s, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer s.Close()

	offline, _ := cmd.Flags().GetBool("offline")
	gen, err := newGenerator(ctx, offline, 0, s.EventRepo())
	if err != nil {
		return err
	}

	opts := []server.Option{server.WithLogger(log.Logger)}
	if noStore, _ := cmd.Flags().GetBool("no-store"); !noStore {
		opts = append(opts, server.WithBatchRepo(s.BatchRepo()))
	}
	return server.New(cfg, gen, opts...).Run(ctx)
}
