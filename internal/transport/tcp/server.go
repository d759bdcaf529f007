// Package tcp exposes interactive sessions over plain TCP: one connection,
// one session, lines in and lines out.
package tcp

import (
	"context"
	"errors"
	"net"
	"sync"

	"github.com/rs/zerolog"

	"github.com/mvaldesr/quizline/internal/catalog"
	"github.com/mvaldesr/quizline/internal/console"
	"github.com/mvaldesr/quizline/internal/session"
)

// Server accepts connections and hands each a fresh session against the
// shared catalog.
type Server struct {
	addr    string
	catalog catalog.Catalog
	log     *zerolog.Logger

	mu    sync.Mutex
	conns map[net.Conn]struct{}
	wg    sync.WaitGroup
}

// NewServer builds a TCP session server listening on addr.
func NewServer(addr string, cat catalog.Catalog, logger *zerolog.Logger) *Server {
	return &Server{
		addr:    addr,
		catalog: cat,
		log:     logger,
		conns:   make(map[net.Conn]struct{}),
	}
}

// Run listens on the configured address and serves until ctx is cancelled.
func (s *Server) Run(ctx context.Context) error {
	listener, err := net.Listen("tcp", s.addr)
	if err != nil {
		return err
	}
	return s.Serve(ctx, listener)
}

// Serve accepts sessions from an existing listener until ctx is cancelled,
// then closes the listener and every live connection and waits for their
// sessions to unwind.
func (s *Server) Serve(ctx context.Context, listener net.Listener) error {
	s.log.Info().Str("addr", listener.Addr().String()).Msg("tcp server listening")

	go func() {
		<-ctx.Done()
		listener.Close()
		s.closeConns()
	}()

	for {
		conn, err := listener.Accept()
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, net.ErrClosed) {
				break
			}
			s.log.Warn().Err(err).Msg("accept failed")
			continue
		}

		s.track(conn)
		s.wg.Add(1)
		go s.handle(ctx, conn)
	}

	s.wg.Wait()
	return nil
}

// handle runs one session for the lifetime of conn. Closing conn is what
// unblocks a pending read, so disconnection abandons any in-flight command
// chain cleanly.
func (s *Server) handle(ctx context.Context, conn net.Conn) {
	defer s.wg.Done()
	defer s.untrack(conn)
	defer conn.Close()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	remote := conn.RemoteAddr().String()
	logger := s.log.With().Str("remote", remote).Logger()

	printer := console.NewPrinter(conn, true)
	printer.Banner("QUIZLINE", console.TagCyan)
	printer.Line(`Type "help" to list commands.`)

	sess := session.New(session.Config{
		Catalog: s.catalog,
		Input:   session.NewScanLineReader(conn),
		Printer: printer,
		Logger:  logger,
	})

	if err := sess.Run(ctx); err != nil {
		logger.Warn().Err(err).Msg("session ended with error")
	}
}

func (s *Server) track(conn net.Conn) {
	s.mu.Lock()
	s.conns[conn] = struct{}{}
	s.mu.Unlock()
}

func (s *Server) untrack(conn net.Conn) {
	s.mu.Lock()
	delete(s.conns, conn)
	s.mu.Unlock()
}

func (s *Server) closeConns() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for conn := range s.conns {
		conn.Close()
	}
}
