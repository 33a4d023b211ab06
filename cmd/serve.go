package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/phishguard/phishguard/internal/chat"
	"github.com/phishguard/phishguard/internal/config"
	"github.com/phishguard/phishguard/internal/generate"
	"github.com/phishguard/phishguard/internal/llm"
	"github.com/phishguard/phishguard/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd)
	},
}

// runServe builds configuration and dependencies, then serves until
// SIGINT or SIGTERM.
func runServe(cmd *cobra.Command) error {
	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})

	cfg, err := config.FromEnv()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	provider, err := llm.NewProvider(ctx, cfg.LLM)
	if err != nil {
		return fmt.Errorf("build model provider: %w", err)
	}
	log.WithFields(logrus.Fields{
		"provider": cfg.LLM.Provider,
		"model":    provider.ModelID(),
	}).Info("model provider ready")

	srv := server.New(
		cfg.HTTP,
		log,
		generate.NewService(provider, cfg.Generate),
		chat.NewService(provider, cfg.Chat),
	)

	return srv.Run(ctx)
}
