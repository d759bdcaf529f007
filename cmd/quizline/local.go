package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/mvaldesr/quizline/internal/app"
	"github.com/mvaldesr/quizline/internal/console"
	"github.com/mvaldesr/quizline/internal/session"
)

var localCmd = &cobra.Command{
	Use:   "local",
	Short: "Run one interactive session on stdin/stdout",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, logger, err := loadConfig()
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		cat, err := app.OpenCatalog(cfg, logger)
		if err != nil {
			return err
		}
		defer cat.Close()

		printer := console.NewPrinter(os.Stdout, true)
		printer.Banner("QUIZLINE", console.TagCyan)
		printer.Line(`Type "help" to list commands.`)

		sess := session.New(session.Config{
			Catalog: cat,
			Input:   session.NewScanLineReader(os.Stdin),
			Printer: printer,
			Logger:  *logger,
		})
		return sess.Run(ctx)
	},
}

func init() {
	rootCmd.AddCommand(localCmd)
}
