// Package ws exposes interactive sessions over websockets. One text frame
// carries one line in either direction; there is no other framing and no
// color output.
package ws

import (
	"context"
	"io"
	stdhttp "net/http"
	"strings"

	"github.com/coder/websocket"
	"github.com/rs/zerolog"

	"github.com/mvaldesr/quizline/internal/catalog"
	"github.com/mvaldesr/quizline/internal/console"
	"github.com/mvaldesr/quizline/internal/session"
)

// Handler upgrades HTTP connections and bridges them to a session.
type Handler struct {
	catalog catalog.Catalog
	log     *zerolog.Logger
}

// NewHandler builds a websocket session handler.
func NewHandler(cat catalog.Catalog, logger *zerolog.Logger) stdhttp.Handler {
	return &Handler{catalog: cat, log: logger}
}

func (h *Handler) ServeHTTP(w stdhttp.ResponseWriter, r *stdhttp.Request) {
	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		InsecureSkipVerify: true,
	})
	if err != nil {
		h.log.Error().Err(err).Msg("ws accept error")
		return
	}
	defer conn.Close(websocket.StatusInternalError, "internal error")

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()

	logger := h.log.With().Str("remote", r.RemoteAddr).Logger()

	printer := console.NewPrinter(&frameWriter{ctx: ctx, conn: conn}, false)
	printer.Line(`Type "help" to list commands.`)

	sess := session.New(session.Config{
		Catalog: h.catalog,
		Input:   &frameReader{conn: conn},
		Printer: printer,
		Logger:  logger,
	})

	if err := sess.Run(ctx); err != nil {
		logger.Warn().Err(err).Msg("session ended with error")
		return
	}

	conn.Close(websocket.StatusNormalClosure, "bye")
}

// frameReader adapts incoming text frames to the session's LineReader.
type frameReader struct {
	conn *websocket.Conn
}

func (r *frameReader) ReadLine(ctx context.Context) (string, error) {
	_, data, err := r.conn.Read(ctx)
	if err != nil {
		status := websocket.CloseStatus(err)
		if status == websocket.StatusNormalClosure || status == websocket.StatusGoingAway {
			return "", io.EOF
		}
		return "", err
	}
	// A client may still send a trailing newline; a line is a line.
	return strings.TrimSpace(string(data)), nil
}

// frameWriter sends each write as one text frame.
type frameWriter struct {
	ctx  context.Context
	conn *websocket.Conn
}

func (w *frameWriter) Write(p []byte) (int, error) {
	text := strings.TrimRight(string(p), "\n")
	if text == "" {
		return len(p), nil
	}
	if err := w.conn.Write(w.ctx, websocket.MessageText, []byte(text)); err != nil {
		return 0, err
	}
	return len(p), nil
}
