package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/mvaldesr/quizline/internal/app"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve quiz sessions over TCP and websockets",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, logger, err := loadConfig()
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		application, err := app.New(cfg, logger)
		if err != nil {
			return err
		}

		logger.Info().Str("tcp", cfg.TCPAddr).Str("http", cfg.HTTPAddr).Msg("starting quizline server")
		if err := application.Run(ctx); err != nil {
			return err
		}
		logger.Info().Msg("server stopped")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
