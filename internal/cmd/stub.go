package cmd

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/ckarenz/bodybuddy/internal/config"
	"github.com/ckarenz/bodybuddy/internal/devserver"
	"github.com/ckarenz/bodybuddy/internal/logging"
	"github.com/spf13/cobra"
)

var stubAddr string

var stubCmd = &cobra.Command{
	Use:   "stub",
	Short: "Run a local stub backend",
	Long: `Run an in-memory stand-in for the BodyBuddy backend on localhost.
It speaks the same REST surface (accounts, tasks, chat, voice) with
canned persona replies, which makes offline use and development
possible without the real service.`,
	RunE: runStub,
}

func init() {
	stubCmd.Flags().StringVar(&stubAddr, "addr", "localhost:8000", "listen address")
	rootCmd.AddCommand(stubCmd)
}

func runStub(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger := logging.NopLogger()
	if cfg.Logging.Enabled {
		logger, err = logging.NewLogger(cfg.Paths.ResolveDataDir(), cfg.Logging.Level)
		if err != nil {
			return fmt.Errorf("failed to open debug log: %w", err)
		}
	}
	defer logger.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	fmt.Printf("stub backend listening on %s\n", stubAddr)
	return devserver.New(logger).ListenAndServe(ctx, stubAddr)
}
