package ws

import (
	"fmt"
	stdhttp "net/http"

	"github.com/rs/zerolog"

	"github.com/mvaldesr/quizline/internal/catalog"
	"github.com/mvaldesr/quizline/internal/config"
)

// NewServer builds the HTTP server hosting the websocket endpoint.
func NewServer(cat catalog.Catalog, cfg config.Config, logger *zerolog.Logger) *stdhttp.Server {
	mux := stdhttp.NewServeMux()
	mux.HandleFunc("/health", healthHandler)
	mux.Handle("/ws", NewHandler(cat, logger))

	return &stdhttp.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           mux,
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
	}
}

func healthHandler(w stdhttp.ResponseWriter, _ *stdhttp.Request) {
	_, _ = fmt.Fprint(w, "ok")
}
