package app

import (
	"context"
	"fmt"
	stdhttp "net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/mvaldesr/quizline/internal/catalog"
	"github.com/mvaldesr/quizline/internal/catalog/memory"
	catalogsqlite "github.com/mvaldesr/quizline/internal/catalog/sqlite"
	"github.com/mvaldesr/quizline/internal/config"
	transporttcp "github.com/mvaldesr/quizline/internal/transport/tcp"
	transportws "github.com/mvaldesr/quizline/internal/transport/ws"
)

// App wires the catalog and both transports together.
type App struct {
	tcp             *transporttcp.Server
	http            *stdhttp.Server
	catalog         catalog.Catalog
	shutdownTimeout time.Duration
	log             *zerolog.Logger
}

// New constructs the application with provided configuration.
func New(cfg config.Config, logger *zerolog.Logger) (*App, error) {
	cat, err := OpenCatalog(cfg, logger)
	if err != nil {
		return nil, err
	}

	return &App{
		tcp:             transporttcp.NewServer(cfg.TCPAddr, cat, logger),
		http:            transportws.NewServer(cat, cfg, logger),
		catalog:         cat,
		shutdownTimeout: cfg.ShutdownTimeout,
		log:             logger,
	}, nil
}

// OpenCatalog opens the configured store and seeds it when empty.
// Shared with the local (stdin) mode.
func OpenCatalog(cfg config.Config, logger *zerolog.Logger) (catalog.Catalog, error) {
	var cat catalog.Catalog
	if cfg.InMemory {
		cat = memory.New()
		logger.Info().Msg("using in-memory catalog")
	} else {
		store, err := catalogsqlite.New(cfg.DatabasePath)
		if err != nil {
			return nil, fmt.Errorf("init catalog: %w", err)
		}
		cat = store
		logger.Info().Str("db_path", cfg.DatabasePath).Msg("catalog initialized")
	}

	seeded, err := catalog.Seed(context.Background(), cat, cfg.SeedFile)
	if err != nil {
		cat.Close()
		return nil, fmt.Errorf("seed catalog: %w", err)
	}
	if seeded > 0 {
		logger.Info().Int("quizzes", seeded).Msg("seeded empty catalog")
	}

	return cat, nil
}

// Run starts both transports and blocks until context cancellation or a
// fatal server error.
func (a *App) Run(ctx context.Context) error {
	tcpErr := make(chan error, 1)
	httpErr := make(chan error, 1)

	go func() {
		tcpErr <- a.tcp.Run(ctx)
	}()

	go func() {
		a.log.Info().Str("addr", a.http.Addr).Msg("http server listening")
		if err := a.http.ListenAndServe(); err != nil && err != stdhttp.ErrServerClosed {
			httpErr <- err
			return
		}
		httpErr <- nil
	}()

	select {
	case err := <-tcpErr:
		a.shutdownHTTP()
		a.cleanup()
		return err
	case err := <-httpErr:
		a.cleanup()
		return err
	case <-ctx.Done():
		a.shutdownHTTP()
		err := <-tcpErr
		a.cleanup()
		return err
	}
}

func (a *App) shutdownHTTP() {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.shutdownTimeout)
	defer cancel()

	a.log.Info().Msg("shutting down http server")
	if err := a.http.Shutdown(shutdownCtx); err != nil {
		a.log.Warn().Err(err).Msg("http shutdown failed")
	}
}

// cleanup closes the catalog store.
func (a *App) cleanup() {
	if a.catalog != nil {
		if err := a.catalog.Close(); err != nil {
			a.log.Warn().Err(err).Msg("failed to close catalog")
		} else {
			a.log.Info().Msg("catalog closed")
		}
	}
}
