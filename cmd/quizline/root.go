package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/mvaldesr/quizline/internal/config"
	"github.com/mvaldesr/quizline/internal/log"
)

var (
	flagConfig   string
	flagLogLevel string
	flagTCPAddr  string
	flagHTTPAddr string
	flagDBPath   string
	flagSeedFile string
	flagInMemory bool
)

var rootCmd = &cobra.Command{
	Use:   "quizline",
	Short: "Line-oriented quiz drilling server",
	Long:  `Quizline serves an interactive quiz catalog over TCP and websockets, with a play mode that asks random questions until the first wrong answer.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flagConfig, "config", "", "path to config file")
	pf.StringVar(&flagLogLevel, "log-level", "", "log level (debug, info, warn, error)")
	pf.StringVar(&flagTCPAddr, "tcp-addr", "", "TCP listen address")
	pf.StringVar(&flagHTTPAddr, "http-addr", "", "HTTP/websocket listen address")
	pf.StringVar(&flagDBPath, "db", "", "path to the sqlite catalog")
	pf.StringVar(&flagSeedFile, "seed", "", "YAML seed file for an empty catalog")
	pf.BoolVar(&flagInMemory, "in-memory", false, "use an in-memory catalog instead of sqlite")
}

// loadConfig resolves defaults, config file, env and flag overrides, and
// builds the logger from the resulting level.
func loadConfig() (config.Config, *zerolog.Logger, error) {
	bootLog := log.New("info")

	cfg, path, err := config.Load(bootLog, flagConfig)
	if err != nil {
		return cfg, nil, err
	}

	cfg.UpdateFrom(config.Config{
		TCPAddr:      flagTCPAddr,
		HTTPAddr:     flagHTTPAddr,
		DatabasePath: flagDBPath,
		SeedFile:     flagSeedFile,
		InMemory:     flagInMemory,
		LogLevel:     flagLogLevel,
	})

	logger := log.New(cfg.LogLevel)
	logger.Debug().Str("config", path).Msg("configuration loaded")
	return cfg, logger, nil
}
