// Package session implements the per-connection interactive command loop:
// line dispatch, multi-step prompting, and the randomized play-through.
// Every piece of state here is owned by one session; the shared catalog is
// the only thing sessions have in common.
package session

import (
	"context"
	"errors"
	"io"
	"math/rand/v2"
	"net"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/mvaldesr/quizline/internal/catalog"
	"github.com/mvaldesr/quizline/internal/console"
)

const promptText = "quizline> "

// Config collects the collaborators a session is constructed with.
type Config struct {
	Catalog catalog.Catalog
	Input   LineReader
	Printer *console.Printer
	Logger  zerolog.Logger

	// Rand drives the play-mode draw; nil means a time-seeded source.
	Rand *rand.Rand
}

// Session binds one client's input/output to a dispatcher and transient
// game state. Sessions are independent; many may run concurrently against
// the same catalog.
type Session struct {
	id       string
	catalog  catalog.Catalog
	in       LineReader
	printer  *console.Printer
	prompter *Prompter
	commands map[string]*command
	rng      *rand.Rand
	log      zerolog.Logger
}

// New constructs a session. It emits nothing until Run issues the first
// prompt.
func New(cfg Config) *Session {
	rng := cfg.Rand
	if rng == nil {
		now := time.Now()
		rng = rand.New(rand.NewPCG(uint64(now.UnixNano()), uint64(now.Unix())))
	}

	id := uuid.NewString()
	return &Session{
		id:       id,
		catalog:  cfg.Catalog,
		in:       cfg.Input,
		printer:  cfg.Printer,
		prompter: NewPrompter(cfg.Printer, cfg.Input),
		commands: newCommandTable(),
		rng:      rng,
		log:      cfg.Logger.With().Str("session_id", id).Logger(),
	}
}

// ID returns the session's unique identifier.
func (s *Session) ID() string {
	return s.id
}

// Run drives the read/dispatch loop until quit, disconnect, or ctx
// cancellation. A disconnect mid-command abandons the pending chain; all
// session state dies with the loop.
func (s *Session) Run(ctx context.Context) error {
	s.log.Info().Msg("session started")
	defer s.log.Info().Msg("session closed")

	s.prompt()
	for {
		line, err := s.in.ReadLine(ctx)
		if err != nil {
			if isDisconnect(err) {
				s.log.Debug().Err(err).Msg("client disconnected")
				return nil
			}
			return err
		}

		err = s.dispatch(ctx, line)
		switch {
		case errors.Is(err, ErrQuit):
			return nil
		case isDisconnect(err):
			s.log.Debug().Err(err).Msg("client disconnected mid-command")
			return nil
		case err != nil:
			return err
		}
	}
}

// dispatch resolves one input line and executes its handler chain. Every
// outcome except quit and disconnect ends with exactly one re-prompt.
func (s *Session) dispatch(ctx context.Context, line string) error {
	keyword, arg := splitCommand(line)
	if keyword == "" {
		s.prompt()
		return nil
	}

	cmd, ok := s.commands[keyword]
	if !ok {
		s.printer.Linef("Unknown command %q. Type %q to list commands.", keyword, "help")
		s.prompt()
		return nil
	}

	err := cmd.run(ctx, s, arg)
	if errors.Is(err, ErrQuit) || isDisconnect(err) {
		return err
	}
	if err != nil {
		s.report(err)
	}

	s.prompt()
	return nil
}

// report converts a handler failure to printed error lines. Errors never
// terminate the session.
func (s *Session) report(err error) {
	s.log.Debug().Err(err).Msg("command failed")

	if verr, ok := catalog.AsValidation(err); ok {
		s.printer.Error("the quiz is invalid:")
		for _, msg := range verr.Messages {
			s.printer.Tagged(console.TagRed, "  "+msg)
		}
		return
	}
	s.printer.Error(err.Error())
}

func (s *Session) prompt() {
	s.printer.Prompt(s.printer.Colorize(console.TagCyan, promptText))
}

// isDisconnect reports whether err means the client is gone, as opposed to
// a command-level failure.
func isDisconnect(err error) bool {
	return errors.Is(err, io.EOF) ||
		errors.Is(err, io.ErrClosedPipe) ||
		errors.Is(err, net.ErrClosed) ||
		errors.Is(err, context.Canceled) ||
		errors.Is(err, context.DeadlineExceeded)
}
